package core

import (
	"testing"
)

func TestScanner_Basic(t *testing.T) {
	// 模拟一段简单的路径数据
	scanner := NewScanner("M10,20 l-5.5 .5Z")

	expected := []Token{
		{Cmd: 'M'},
		{Value: 10},
		{Value: 20},
		{Cmd: 'l'},
		{Value: -5.5},
		{Value: 0.5},
		{Cmd: 'Z'},
	}

	for i, exp := range expected {
		if !scanner.Next() {
			t.Fatalf("第 %d 步读取失败: %v", i, scanner.Err())
		}
		if scanner.LastToken != exp {
			t.Errorf("第 %d 步数据不符: 期望 %+v, 得到 %+v", i, exp, scanner.LastToken)
		}
	}

	if scanner.Next() {
		t.Errorf("末尾应当结束, 得到 %+v", scanner.LastToken)
	}
	if err := scanner.Err(); err != nil {
		t.Errorf("不应有错误: %v", err)
	}
}

func TestScanner_CompactNumbers(t *testing.T) {
	scanner := NewScanner("m1.5.5-2")

	var got []float64
	for scanner.Next() {
		if !scanner.LastToken.IsCommand() {
			got = append(got, scanner.LastToken.Value)
		}
	}

	want := []float64{1.5, 0.5, -2}
	if len(got) != len(want) {
		t.Fatalf("期望 %v, 得到 %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("第 %d 个数值: 期望 %v, 得到 %v", i, want[i], got[i])
		}
	}
}

func TestScanner_Invalid(t *testing.T) {
	scanner := NewScanner("M 10 10 X 5")
	for scanner.Next() {
	}
	if scanner.Err() == nil {
		t.Fatal("非法命令应当返回错误")
	}
}

func TestScanner_ArcFlags(t *testing.T) {
	scanner := NewScanner("11100 0")

	var got []float64
	if scanner.NextFlag() {
		got = append(got, scanner.LastToken.Value)
	}
	if scanner.NextFlag() {
		got = append(got, scanner.LastToken.Value)
	}
	for scanner.Next() {
		got = append(got, scanner.LastToken.Value)
	}

	want := []float64{1, 1, 100, 0}
	if len(got) != len(want) {
		t.Fatalf("期望 %v, 得到 %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("第 %d 个数值: 期望 %v, 得到 %v", i, want[i], got[i])
		}
	}

	// 不是标志位时按普通数值读取
	scanner = NewScanner(" , 25")
	if !scanner.NextFlag() || scanner.LastToken.Value != 25 {
		t.Errorf("期望 25, 得到 %+v", scanner.LastToken)
	}
}
