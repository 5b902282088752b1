package entities

import (
	"math"

	"github.com/beevik/etree"
	"github.com/zooyer/shaper/core"
)

type Line struct {
	BaseEntity
	Start, End core.Point
}

func init() {
	Register("line", func() Entity { return &Line{BaseEntity: BaseEntity{TypeName: "line"}} })
}

func (l *Line) Parse(e *etree.Element) error {
	l.parseBase(e)
	l.Start.X = pixels(e, "x1")
	l.Start.Y = pixels(e, "y1")
	l.End.X = pixels(e, "x2")
	l.End.Y = pixels(e, "y2")
	return nil
}

func (l *Line) BBox() core.BBox {
	return core.BBox{
		Min: core.Point{X: math.Min(l.Start.X, l.End.X), Y: math.Min(l.Start.Y, l.End.Y)},
		Max: core.Point{X: math.Max(l.Start.X, l.End.X), Y: math.Max(l.Start.Y, l.End.Y)},
	}
}

func (l *Line) Measure() *Measurement {
	m := l.measure(l.BBox())
	m.Line = &LineEnds{X1: l.Start.X, Y1: l.Start.Y, X2: l.End.X, Y2: l.End.Y}
	return m
}
