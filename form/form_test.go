package form

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zooyer/shaper"
	"github.com/zooyer/shaper/core"
	"github.com/zooyer/shaper/entities"
)

const sample = `<svg xmlns="http://www.w3.org/2000/svg" xmlns:shaper="http://www.shapertools.com/namespaces/shaper">
  <rect id="part" width="100" height="50" shaper:cutType="inside" shaper:cutDepth="15mm"/>
  <circle id="hole" cx="10" cy="10" r="5"/>
</svg>`

func setup(t *testing.T, unit core.Unit) (*shaper.Document, *core.Settings, *Form) {
	t.Helper()
	doc, err := shaper.Load(strings.NewReader(sample))
	require.NoError(t, err)

	settings := &core.Settings{Unit: unit, Separator: '.'}
	return doc, settings, New(doc, settings, nil)
}

func cutDepth(t *testing.T, doc *shaper.Document, id string) *float64 {
	t.Helper()
	m, err := doc.Measurement(id)
	require.NoError(t, err)
	return m.Attributes().CutDepth
}

func TestForm_EndToEnd(t *testing.T) {
	doc, settings, f := setup(t, core.Millimeter)

	before := cutDepth(t, doc, "part")
	require.NotNil(t, before)
	assert.InDelta(t, 56.69, *before, 0.01)

	// 切换到英寸后打开表单
	settings.Unit = core.Inch
	require.NoError(t, f.Open("part"))
	assert.Equal(t, "0.591", f.Value(entities.CutDepth))
	assert.Equal(t, "inside", f.CutType())
	assert.Equal(t, "", f.Value(entities.ToolDia))

	// 不做修改直接保存
	require.NoError(t, f.Save())
	saved := cutDepth(t, doc, "part")
	require.NotNil(t, saved)
	assert.InDelta(t, *before, *saved, 1e-9)

	var buf bytes.Buffer
	require.NoError(t, doc.Export(&buf, *settings))
	assert.Contains(t, buf.String(), `shaper:cutDepth="0.59055in"`)
}

func TestForm_ToggleNoDrift(t *testing.T) {
	_, _, f := setup(t, core.Millimeter)
	require.NoError(t, f.Open("part"))

	raw := f.Raw(entities.CutDepth)
	for i := 0; i < 10; i++ {
		f.ToggleUnit(core.Inch)
		assert.Equal(t, "0.591", f.Value(entities.CutDepth))
		f.ToggleUnit(core.Millimeter)
		assert.Equal(t, "15.0", f.Value(entities.CutDepth))
	}
	assert.Equal(t, raw, f.Raw(entities.CutDepth))
}

func TestForm_TypeAndBlur(t *testing.T) {
	doc, settings, f := setup(t, core.Millimeter)
	require.NoError(t, f.Open("hole"))

	f.Type(entities.ToolDia, "0,25in")
	// 失去焦点前原始值不变
	assert.True(t, math.IsNaN(f.Raw(entities.ToolDia)))
	f.Blur(entities.ToolDia)
	assert.InDelta(t, 6.35, f.Raw(entities.ToolDia), 1e-9)
	assert.Equal(t, "6.35", f.Value(entities.ToolDia))

	f.Type(entities.CutOffset, "-1.5")
	f.Type(entities.CutDepth, "garbage")
	f.SetCutType("pocket")
	require.NoError(t, f.Save())

	m, err := doc.Measurement("hole")
	require.NoError(t, err)
	set := m.Attributes()
	assert.Equal(t, "pocket", set.CutType)
	require.NotNil(t, set.ToolDia)
	assert.InDelta(t, 24, *set.ToolDia, 1e-9)
	require.NotNil(t, set.CutOffset)
	assert.InDelta(t, settings.UnitsToPixels(-1.5), *set.CutOffset, 1e-9)
	assert.Nil(t, set.CutDepth)
}

func TestForm_ClearField(t *testing.T) {
	doc, _, f := setup(t, core.Millimeter)
	require.NoError(t, f.Open("part"))

	f.Type(entities.CutDepth, "0")
	f.Blur(entities.CutDepth)
	assert.Equal(t, "", f.Value(entities.CutDepth))

	require.NoError(t, f.Save())
	assert.Nil(t, cutDepth(t, doc, "part"))
}

func TestForm_NegativeDepth(t *testing.T) {
	_, _, f := setup(t, core.Millimeter)
	require.NoError(t, f.Open("part"))

	f.Type(entities.CutDepth, "-3")
	err := f.Save()
	assert.True(t, errors.Is(err, entities.ErrNegativeValue), "%v", err)
}

func TestForm_Errors(t *testing.T) {
	_, _, f := setup(t, core.Millimeter)

	assert.True(t, errors.Is(f.Save(), ErrNotOpen))
	assert.True(t, errors.Is(f.Open("missing"), shaper.ErrUnknownElement))
}

func TestForm_RejectedSaveKeepsElement(t *testing.T) {
	doc, _, f := setup(t, core.Millimeter)
	m, err := doc.Measurement("part")
	require.NoError(t, err)

	before := make(map[string]string)
	for k, v := range m.ShaperAttributes {
		before[k] = v
	}

	require.NoError(t, f.Open("part"))
	f.SetCutType("pocket")
	f.Type(entities.CutDepth, "-3")
	f.Type(entities.ToolDia, "6")

	err = f.Save()
	assert.ErrorIs(t, err, entities.ErrNegativeValue)
	assert.Equal(t, before, m.ShaperAttributes)
}
