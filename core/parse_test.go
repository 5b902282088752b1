package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValueWithUnits(t *testing.T) {
	s := Settings{Unit: Millimeter, Separator: '.'}

	tests := []struct {
		in   string
		want float64
	}{
		{"10", 10},
		{"10,5", 10.5},
		{"1,000.5", 1000.5},
		{"1.000,5", 1000.5},
		{"-3.25", -3.25},
		{"+2", 2},
		{" 15mm ", 15},
		{"15 mm", 15},
		{"2in", 2},
		{"7abc", 7},
	}
	for _, tt := range tests {
		got, ok := s.ParseValueWithUnits(tt.in)
		require.True(t, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseValueWithUnits_Invalid(t *testing.T) {
	s := Settings{Unit: Millimeter}
	for _, in := range []string{"", "   ", "invalid", "mm10", "1,000,5", "10.", ".5", "1 2"} {
		_, ok := s.ParseValueWithUnits(in)
		assert.False(t, ok, in)
	}
}

func TestParseValueWithUnits_Target(t *testing.T) {
	s := Settings{Unit: Millimeter}

	got, ok := s.ParseValueWithUnits("1in", WithTarget(Millimeter))
	require.True(t, ok)
	assert.InDelta(t, 25.4, got, 1e-9)

	got, ok = s.ParseValueWithUnits("25.4mm", WithTarget(Inch))
	require.True(t, ok)
	assert.InDelta(t, 1, got, 1e-12)

	// 没有后缀不换算
	got, ok = s.ParseValueWithUnits("3", WithTarget(Inch))
	require.True(t, ok)
	assert.Equal(t, 3.0, got)

	// 未知后缀不换算
	got, ok = s.ParseValueWithUnits("3cm", WithTarget(Inch))
	require.True(t, ok)
	assert.Equal(t, 3.0, got)
}

func TestParseValueWithUnits_Implicit(t *testing.T) {
	s := Settings{Unit: Millimeter}

	// 默认不做隐式换算
	got, ok := s.ParseValueWithUnits("1in")
	require.True(t, ok)
	assert.Equal(t, 1.0, got)

	got, ok = s.ParseValueWithUnits("1in", WithImplicitConversion())
	require.True(t, ok)
	assert.InDelta(t, 25.4, got, 1e-9)

	got, ok = s.ParseValueWithUnits("-1,5in", WithImplicitConversion())
	require.True(t, ok)
	assert.InDelta(t, -38.1, got, 1e-9)

	// px 不参与隐式换算
	got, ok = s.ParseValueWithUnits("96px", WithImplicitConversion())
	require.True(t, ok)
	assert.Equal(t, 96.0, got)

	// 显式目标优先
	got, ok = s.ParseValueWithUnits("25.4mm", WithImplicitConversion(), WithTarget(Inch))
	require.True(t, ok)
	assert.InDelta(t, 1, got, 1e-12)
}

func TestNormalizeSeparators(t *testing.T) {
	assert.Equal(t, "10.5", NormalizeSeparators("10,5"))
	assert.Equal(t, "1000.5", NormalizeSeparators("1,000.5"))
	assert.Equal(t, "1000.5", NormalizeSeparators("1.000,5"))
	assert.Equal(t, "1234567.89", NormalizeSeparators("1.234.567,89"))
	assert.Equal(t, "12.5mm", NormalizeSeparators("12.5mm"))
}

func TestUnitsHelpers(t *testing.T) {
	s := Settings{Unit: Inch}

	assert.Equal(t, "15", StripUnitsFromValue(" 15mm "))
	assert.Equal(t, "15,5", StripUnitsFromValue("15,5 in"))
	assert.Equal(t, "15in", s.AddUnitsToValue("15"))
	assert.Equal(t, "15mm", s.AddUnitsToValue("15mm"))
	assert.Equal(t, "", s.AddUnitsToValue("  "))

	assert.Equal(t, 1.0, s.ConvertPixelsToCurrentUnit(96))
	assert.Equal(t, 192.0, s.UnitsToPixels(2))
}

func TestIsEmptyValue(t *testing.T) {
	for _, v := range []string{"", " ", "0", "0.0", "0,0", " 0 "} {
		assert.True(t, IsEmptyValue(v), v)
	}
	for _, v := range []string{"0.5", "00", "1", "-0"} {
		assert.False(t, IsEmptyValue(v), v)
	}
}
