package core

import "strings"

// Settings 是当前的测量设置：显示单位与小数分隔符。
// 所有格式化/解析函数都以它为接收者，不依赖全局状态。
// 非并发安全，只应在调用方线程中修改。
type Settings struct {
	Unit      Unit
	Separator byte // '.' 或 ','
}

// DefaultSettings 默认毫米，分隔符根据系统区域设置探测
func DefaultSettings() Settings {
	return Settings{
		Unit:      Millimeter,
		Separator: DetectSeparator(),
	}
}

// ParseSeparator 识别分隔符配置值，只接受 "." 和 ","
func ParseSeparator(s string) (byte, bool) {
	switch strings.TrimSpace(s) {
	case ".":
		return '.', true
	case ",":
		return ',', true
	}
	return 0, false
}

// DecimalSeparator 返回有效的分隔符，非法值按 '.' 处理
func (s Settings) DecimalSeparator() byte {
	if s.Separator == ',' {
		return ','
	}
	return '.'
}

func (s Settings) applySeparator(str string) string {
	if s.DecimalSeparator() == '.' {
		return str
	}
	return strings.Replace(str, ".", ",", 1)
}
