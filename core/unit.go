package core

import "strings"

// 标准换算系数，px 为 CSS 像素(1/96 英寸)，与屏幕物理像素无关
const (
	PxPerInch = 96.0
	MmPerInch = 25.4
)

// Unit 代表测量单位
type Unit int

const (
	Millimeter Unit = iota
	Inch
	Pixel
)

var unitNames = [...]string{
	Millimeter: "mm",
	Inch:       "in",
	Pixel:      "px",
}

// Valid 是否为支持的单位
func (u Unit) Valid() bool {
	return u >= Millimeter && u <= Pixel
}

// String 返回单位简写(mm/in/px)，未知单位返回空串
func (u Unit) String() string {
	if !u.Valid() {
		return ""
	}
	return unitNames[u]
}

// ExportPrecision 导出到文件时保留的小数位数。
// 英寸多保留两位，保证 mm 输入经英寸写出再读回的误差小于 0.001mm
func (u Unit) ExportPrecision() int {
	if u == Inch {
		return 5
	}
	return 3
}

// ParseUnit 根据简写识别单位，不区分大小写
func ParseUnit(s string) (Unit, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for u, name := range unitNames {
		if name == s {
			return Unit(u), true
		}
	}
	return Unit(-1), false
}

// Convert 在 mm/in/px 之间换算，统一以像素为中间量，先合并系数再相乘。
// 同单位原样返回(包括 NaN 与负数)，未知单位也原样返回。
func Convert(value float64, from, to Unit) float64 {
	if from == to {
		return value
	}
	if !from.Valid() || !to.Valid() {
		return value
	}

	var px float64
	switch from {
	case Millimeter:
		px = value * (PxPerInch / MmPerInch)
	case Inch:
		px = value * PxPerInch
	case Pixel:
		px = value
	}

	switch to {
	case Millimeter:
		return px * (MmPerInch / PxPerInch)
	case Inch:
		return px / PxPerInch
	default:
		return px
	}
}
