package core

import (
	"math"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/strconv"
)

// Attr 代表 SVG 元素上的一个属性
type Attr struct {
	Name  string
	Value string
}

// AsString 清洗字符串（去除多余空格）
func (a Attr) AsString() string {
	return strings.TrimSpace(a.Value)
}

// AsPixels 把长度转换为像素。支持 mm/in/px 后缀，没有后缀按像素处理，
// 其他单位(如 %、em)保留数值本身
func (a Attr) AsPixels() (float64, bool) {
	b := []byte(a.AsString())
	num, unit := parse.Dimension(b)
	if num == 0 || num+unit != len(b) {
		return 0, false
	}

	f, n := strconv.ParseFloat(b[:num])
	if n != num || math.IsNaN(f) {
		return 0, false
	}

	if u, ok := ParseUnit(string(b[num:])); ok {
		return Convert(f, u, Pixel), true
	}

	return f, true
}

// Point 代表二维平面上的一个点
type Point struct {
	X, Y float64
}

// BBox 代表包围盒
type BBox struct {
	Min, Max Point
}

// EmptyBBox 返回一个反向的包围盒，可以直接用 Extend 累加
func EmptyBBox() BBox {
	return BBox{
		Min: Point{X: math.MaxFloat64, Y: math.MaxFloat64},
		Max: Point{X: -math.MaxFloat64, Y: -math.MaxFloat64},
	}
}

// Extend 把点并入包围盒
func (b BBox) Extend(p Point) BBox {
	b.Min.X = math.Min(b.Min.X, p.X)
	b.Min.Y = math.Min(b.Min.Y, p.Y)
	b.Max.X = math.Max(b.Max.X, p.X)
	b.Max.Y = math.Max(b.Max.Y, p.Y)
	return b
}

// IsEmpty 没有并入任何点
func (b BBox) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y
}

func (b BBox) Width() float64 {
	if b.IsEmpty() {
		return 0
	}
	return b.Max.X - b.Min.X
}

func (b BBox) Height() float64 {
	if b.IsEmpty() {
		return 0
	}
	return b.Max.Y - b.Min.Y
}
