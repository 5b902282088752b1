package entities

import (
	"github.com/beevik/etree"
	"github.com/zooyer/shaper/core"
)

type Rect struct {
	BaseEntity
	Origin        core.Point
	Width, Height float64
}

func init() {
	Register("rect", func() Entity { return &Rect{BaseEntity: BaseEntity{TypeName: "rect"}} })
}

func (r *Rect) Parse(e *etree.Element) error {
	r.parseBase(e)
	r.Origin.X = pixels(e, "x")
	r.Origin.Y = pixels(e, "y")
	r.Width = pixels(e, "width")
	r.Height = pixels(e, "height")
	return nil
}

func (r *Rect) BBox() core.BBox {
	if r.Width <= 0 || r.Height <= 0 {
		return core.BBox{Min: r.Origin, Max: r.Origin}
	}
	return core.BBox{
		Min: r.Origin,
		Max: core.Point{X: r.Origin.X + r.Width, Y: r.Origin.Y + r.Height},
	}
}

func (r *Rect) Measure() *Measurement {
	return r.measure(r.BBox())
}

// pixels 读取长度属性并换算为像素，缺失或非法时为 0
func pixels(e *etree.Element, key string) float64 {
	px, _ := core.Attr{Name: key, Value: e.SelectAttrValue(key, "")}.AsPixels()
	return px
}
