package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvert_KnownValues(t *testing.T) {
	assert.Equal(t, 96.0, Convert(25.4, Millimeter, Pixel))
	assert.Equal(t, 96.0, Convert(1, Inch, Pixel))
	assert.Equal(t, 25.4, Convert(96, Pixel, Millimeter))
	assert.Equal(t, 1.0, Convert(96, Pixel, Inch))
	assert.InDelta(t, 25.4, Convert(1, Inch, Millimeter), 1e-9)
	assert.InDelta(t, 1, Convert(25.4, Millimeter, Inch), 1e-12)
}

func TestConvert_SameUnit(t *testing.T) {
	for _, u := range []Unit{Millimeter, Inch, Pixel} {
		assert.Equal(t, -3.5, Convert(-3.5, u, u))
		assert.True(t, math.IsNaN(Convert(math.NaN(), u, u)), u.String())
	}
}

func TestConvert_UnknownUnit(t *testing.T) {
	assert.Equal(t, 12.0, Convert(12, Unit(42), Millimeter))
	assert.Equal(t, 12.0, Convert(12, Inch, Unit(-1)))
}

func TestConvert_RoundTrip(t *testing.T) {
	units := []Unit{Millimeter, Inch, Pixel}
	values := []float64{0, 0.001, 1, 3.175, 12.7, 25.4, 96, 1234.5678, -42.42}

	for _, v := range values {
		for _, u1 := range units {
			for _, u2 := range units {
				back := Convert(Convert(v, u1, u2), u2, u1)
				tolerance := math.Max(math.Abs(v)*1e-9, 1e-12)
				assert.InDelta(t, v, back, tolerance, "%v %s->%s->%s", v, u1, u2, u1)
			}
		}
	}
}

func TestExportRoundTrip(t *testing.T) {
	for _, u := range []Unit{Millimeter, Inch} {
		s := Settings{Unit: u}
		for _, mm := range []float64{3, 6.35, 12, 15, 0.1, -1.5} {
			px := Convert(mm, Millimeter, Pixel)
			text := s.FormatWithUnits(s.ConvertPixelsToCurrentUnit(px), u.ExportPrecision())
			back, ok := s.ParseValueWithUnits(text, WithTarget(Millimeter))
			assert.True(t, ok, text)
			assert.InDelta(t, mm, back, 0.001, "%s", text)
		}
	}
}

func TestParseUnit(t *testing.T) {
	tests := map[string]Unit{
		"mm":   Millimeter,
		"IN":   Inch,
		" px ": Pixel,
	}
	for s, want := range tests {
		got, ok := ParseUnit(s)
		assert.True(t, ok, s)
		assert.Equal(t, want, got, s)
	}

	_, ok := ParseUnit("cm")
	assert.False(t, ok)
	assert.Equal(t, "", Unit(7).String())
}
