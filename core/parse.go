package core

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// 符号、整数、可选小数，后面可跟单位字母。单位只能在数字后面
var reValue = regexp.MustCompile(`^([+-]?[0-9]+(?:\.[0-9]+)?)\s*([A-Za-z]*)$`)

type parseOptions struct {
	target    Unit
	hasTarget bool
	implicit  bool
}

// ParseOption 控制 ParseValueWithUnits 的单位换算
type ParseOption func(o *parseOptions)

// WithTarget 结果换算到指定单位(输入带有不同单位后缀时)
func WithTarget(u Unit) ParseOption {
	return func(o *parseOptions) {
		o.target = u
		o.hasTarget = true
	}
}

// WithImplicitConversion 没有指定目标单位时，输入带 mm/in 后缀且与当前单位不同，
// 则换算到当前单位。例如毫米模式下输入 "1in" 得到 25.4
func WithImplicitConversion() ParseOption {
	return func(o *parseOptions) {
		o.implicit = true
	}
}

// NormalizeSeparators 统一小数点。只有 ',' 时视为小数点；
// 同时出现时最右边的一个是小数点，其余都当作千分位去掉
func NormalizeSeparators(input string) string {
	hasComma := strings.Contains(input, ",")
	hasDot := strings.Contains(input, ".")

	switch {
	case hasComma && !hasDot:
		return strings.ReplaceAll(input, ",", ".")
	case hasComma && hasDot:
		i := strings.LastIndexAny(input, ",.")
		head := strings.NewReplacer(",", "", ".", "").Replace(input[:i])
		return head + "." + input[i+1:]
	}

	return input
}

// SplitValue 拆分数值和单位后缀(小写)，无法识别时 ok 为 false
func SplitValue(input string) (value float64, suffix string, ok bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, "", false
	}

	match := reValue.FindStringSubmatch(NormalizeSeparators(input))
	if match == nil {
		return 0, "", false
	}

	value, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, "", false
	}

	return value, strings.ToLower(match[2]), true
}

// ParseValueWithUnits 解析用户输入的数值(可带单位)，失败返回 ok=false
func (s Settings) ParseValueWithUnits(input string, opts ...ParseOption) (float64, bool) {
	var o parseOptions
	for _, opt := range opts {
		opt(&o)
	}

	value, suffix, ok := SplitValue(input)
	if !ok {
		return 0, false
	}
	if suffix == "" {
		return value, true
	}

	from, known := ParseUnit(suffix)

	if o.hasTarget {
		if known && from != o.target {
			value = Convert(value, from, o.target)
		}
		return value, true
	}

	if o.implicit && known && from != Pixel && from != s.Unit {
		value = Convert(value, from, s.Unit)
	}

	return value, true
}

// StripUnitsFromValue 去掉末尾的单位字母，"15mm" -> "15"
func StripUnitsFromValue(value string) string {
	value = strings.TrimSpace(value)
	value = strings.TrimRightFunc(value, unicode.IsLetter)
	return strings.TrimSpace(value)
}

// AddUnitsToValue 没有单位时补上当前单位，"15" -> "15mm"
func (s Settings) AddUnitsToValue(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	last := rune(value[len(value)-1])
	if unicode.IsLetter(last) {
		return value
	}

	return value + s.Unit.String()
}

// ConvertPixelsToCurrentUnit 像素换算到当前单位
func (s Settings) ConvertPixelsToCurrentUnit(px float64) float64 {
	return Convert(px, Pixel, s.Unit)
}

// UnitsToPixels 当前单位换算到像素
func (s Settings) UnitsToPixels(value float64) float64 {
	return Convert(value, s.Unit, Pixel)
}

// IsEmptyValue 空值哨兵：""、"0"、"0.0"、"0,0" 都视为未设置
func IsEmptyValue(value string) bool {
	switch strings.TrimSpace(value) {
	case "", "0", "0.0", "0,0":
		return true
	}
	return false
}
