package entities

import (
	"github.com/beevik/etree"
	"github.com/zooyer/golib/xmath"
	"github.com/zooyer/shaper/core"
)

// 椭圆两半轴相差不超过该值(像素)时按圆处理
const circleEpsilon = 1

type Circle struct {
	BaseEntity
	Center core.Point
	Radius float64
}

type Ellipse struct {
	BaseEntity
	Center core.Point
	RX, RY float64
}

func init() {
	Register("circle", func() Entity { return &Circle{BaseEntity: BaseEntity{TypeName: "circle"}} })
	Register("ellipse", func() Entity { return &Ellipse{BaseEntity: BaseEntity{TypeName: "ellipse"}} })
}

func (c *Circle) Parse(e *etree.Element) error {
	c.parseBase(e)
	c.Center.X = pixels(e, "cx")
	c.Center.Y = pixels(e, "cy")
	c.Radius = pixels(e, "r")
	return nil
}

func (c *Circle) BBox() core.BBox {
	r := max(c.Radius, 0)
	return core.BBox{
		Min: core.Point{X: c.Center.X - r, Y: c.Center.Y - r},
		Max: core.Point{X: c.Center.X + r, Y: c.Center.Y + r},
	}
}

func (c *Circle) Measure() *Measurement {
	m := c.measure(c.BBox())
	if c.Radius > 0 {
		setCircle(m, c.Radius*2)
	}
	return m
}

func (el *Ellipse) Parse(e *etree.Element) error {
	el.parseBase(e)
	el.Center.X = pixels(e, "cx")
	el.Center.Y = pixels(e, "cy")
	el.RX = pixels(e, "rx")
	el.RY = pixels(e, "ry")
	return nil
}

func (el *Ellipse) BBox() core.BBox {
	rx, ry := max(el.RX, 0), max(el.RY, 0)
	return core.BBox{
		Min: core.Point{X: el.Center.X - rx, Y: el.Center.Y - ry},
		Max: core.Point{X: el.Center.X + rx, Y: el.Center.Y + ry},
	}
}

// Measure 接近正圆的椭圆按圆报告直径、半径
func (el *Ellipse) Measure() *Measurement {
	m := el.measure(el.BBox())
	if el.RX > 0 && el.RY > 0 && xmath.Equal(el.RX, el.RY, circleEpsilon) {
		setCircle(m, el.RX+el.RY)
	}
	return m
}

func setCircle(m *Measurement, diameter float64) {
	radius := diameter / 2
	m.DiameterPx = &diameter
	m.RadiusPx = &radius
	m.IsCircle = true
}
