package utils

import (
	"fmt"
	"math"

	"github.com/zooyer/shaper/core"
	"github.com/zooyer/shaper/entities"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Item 是一项测量数据，Value 已按当前单位格式化
type Item struct {
	Name  string
	Value string
}

var labels = map[string]string{
	"rect":     "Rectangle",
	"circle":   "Circle",
	"ellipse":  "Ellipse",
	"line":     "Line",
	"polygon":  "Polygon",
	"polyline": "Polyline",
	"path":     "Path",
}

var title = cases.Title(language.Und, cases.NoLower)

// Describe 生成元素的可读描述，如 "Rectangle: 10.0mm x 5.0mm"
func Describe(m *entities.Measurement, s core.Settings) string {
	label, ok := labels[m.TagName]
	if !ok {
		if m.TagName == "" {
			return "Unknown element"
		}
		return title.String(m.TagName) + " element"
	}

	items := MeasurementsList(m, s)
	if len(items) == 0 {
		return label + " (complex geometry)"
	}

	switch {
	case m.TagName == "line":
		return fmt.Sprintf("%s: length %s, angle %s", label, items[0].Value, items[1].Value)
	case m.IsCircle:
		return fmt.Sprintf("%s: diameter %s, radius %s", label, items[0].Value, items[1].Value)
	default:
		return fmt.Sprintf("%s: %s x %s", label, items[0].Value, items[1].Value)
	}
}

// MeasurementsList 返回结构化的测量数据。
// 宽高都为 0 说明测量失败，不返回任何数据
func MeasurementsList(m *entities.Measurement, s core.Settings) []Item {
	if _, ok := labels[m.TagName]; !ok {
		return nil
	}

	switch {
	case m.TagName == "line":
		dx, dy := m.WidthPx, m.HeightPx
		if m.Line != nil {
			dx, dy = m.Line.X2-m.Line.X1, m.Line.Y2-m.Line.Y1
		}
		return []Item{
			{Name: "Length", Value: length(math.Hypot(dx, dy), s)},
			{Name: "Angle", Value: s.FormatAngle(math.Atan2(dy, dx)*180/math.Pi) + "°"},
		}
	case m.IsCircle:
		diameter := math.Max(m.WidthPx, m.HeightPx)
		if m.DiameterPx != nil {
			diameter = *m.DiameterPx
		}
		radius := diameter / 2
		if m.RadiusPx != nil {
			radius = *m.RadiusPx
		}
		return []Item{
			{Name: "Diameter", Value: length(diameter, s)},
			{Name: "Radius", Value: length(radius, s)},
		}
	case m.WidthPx > 0 || m.HeightPx > 0:
		return []Item{
			{Name: "Width", Value: length(m.WidthPx, s)},
			{Name: "Height", Value: length(m.HeightPx, s)},
		}
	}

	return nil
}

func length(px float64, s core.Settings) string {
	return s.FormatDisplayNumber(s.ConvertPixelsToCurrentUnit(px)) + s.Unit.String()
}
