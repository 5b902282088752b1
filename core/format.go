package core

import (
	"math"
	"strconv"
	"strings"
)

// FormatDisplayNumber 保留 3 位小数并去掉末尾的 0，至少保留一位小数，
// 使用当前分隔符。例如 10 -> "10.0"，10.12 -> "10.12"
func (s Settings) FormatDisplayNumber(value float64) string {
	rounded := math.Round(value*1000) / 1000
	str := trimZeros(strconv.FormatFloat(rounded, 'f', -1, 64), true)
	return s.applySeparator(str)
}

// FormatAngle 归一化到 [0,360) 后保留一位小数
func (s Settings) FormatAngle(degrees float64) string {
	normalized := math.Mod(math.Mod(degrees, 360)+360, 360)
	// 359.96 舍入后为 360.0，需要再回绕
	rounded := math.Round(normalized*10) / 10
	if rounded >= 360 {
		rounded -= 360
	}
	str := strconv.FormatFloat(rounded, 'f', 1, 64)
	if str == "-0.0" {
		str = "0.0"
	}
	return s.applySeparator(str)
}

// FormatWithUnits 定点格式化并附加当前单位简写，始终使用 '.'，用于导出。
// precision 小于 0 时按 3 位处理
func (s Settings) FormatWithUnits(value float64, precision int) string {
	if precision < 0 {
		precision = 3
	}
	str := trimZeros(strconv.FormatFloat(value, 'f', precision, 64), false)
	return str + s.Unit.String()
}

// trimZeros 去掉小数部分末尾的 0，keepOne 为 true 时至少保留一位小数
func trimZeros(str string, keepOne bool) string {
	if str == "NaN" || strings.HasSuffix(str, "Inf") {
		return str
	}

	if strings.Contains(str, ".") {
		str = strings.TrimRight(str, "0")
		str = strings.TrimSuffix(str, ".")
	}
	if keepOne && !strings.Contains(str, ".") {
		str += ".0"
	}

	// 负零
	switch str {
	case "-0":
		str = "0"
	case "-0.0":
		str = "0.0"
	}
	return str
}
