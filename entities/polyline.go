package entities

import (
	"fmt"

	"github.com/beevik/etree"
	"github.com/zooyer/shaper/core"
)

// Polyline 同时用于 polyline 和 polygon
type Polyline struct {
	BaseEntity
	Vertices []core.Point
}

func init() {
	Register("polyline", func() Entity { return &Polyline{BaseEntity: BaseEntity{TypeName: "polyline"}} })
	Register("polygon", func() Entity { return &Polyline{BaseEntity: BaseEntity{TypeName: "polygon"}} })
}

func (l *Polyline) Parse(e *etree.Element) error {
	l.parseBase(e)

	var (
		s = core.NewScanner(e.SelectAttrValue("points", ""))
		x float64
		n int
	)
	for s.Next() {
		t := s.LastToken
		if t.IsCommand() {
			return fmt.Errorf("%s: unexpected %q in points", l.TypeName, t.Cmd)
		}
		if n%2 == 0 {
			x = t.Value
		} else {
			l.Vertices = append(l.Vertices, core.Point{X: x, Y: t.Value})
		}
		n++
	}

	return s.Err()
}

func (l *Polyline) BBox() core.BBox {
	if len(l.Vertices) == 0 {
		return core.BBox{}
	}
	box := core.EmptyBBox()
	for _, v := range l.Vertices {
		box = box.Extend(v)
	}
	return box
}

func (l *Polyline) Measure() *Measurement {
	return l.measure(l.BBox())
}
