package store

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zooyer/shaper/core"
	"github.com/zooyer/shaper/entities"
)

func TestState_SaveLoad(t *testing.T) {
	var (
		radius   = 5.0
		diameter = 10.0
		ms       = map[string]*entities.Measurement{
			"a": {TagName: "rect", WidthPx: 10, HeightPx: 20, ShaperAttributes: map[string]string{"shaper:cutType": "inside"}},
			"b": {TagName: "circle", WidthPx: 10, HeightPx: 10, DiameterPx: &diameter, RadiusPx: &radius, IsCircle: true},
		}
		settings = core.Settings{Unit: core.Inch, Separator: ','}
		filename = filepath.Join(t.TempDir(), "nested", "state.json")
	)

	require.NoError(t, SaveState(filename, NewState(settings, []string{"b", "a", "missing"}, ms)))

	st, err := LoadState(filename)
	require.NoError(t, err)

	assert.Equal(t, "in", st.Units)
	assert.Equal(t, ",", st.DecimalSeparator)
	assert.Equal(t, 96, st.DPI)
	require.Len(t, st.Elements, 2)
	assert.Equal(t, "b", st.Elements[0].AppID)

	if diff := cmp.Diff(ms, st.Measurements()); diff != "" {
		t.Errorf("Measurements (-want +got):\n%s", diff)
	}

	var restored = core.Settings{Unit: core.Millimeter, Separator: '.'}
	st.Restore(&restored)
	assert.Equal(t, settings, restored)
}

func TestState_RestoreIgnoresMalformed(t *testing.T) {
	var (
		filename = filepath.Join(t.TempDir(), "state.json")
		settings = core.Settings{Unit: core.Millimeter, Separator: '.'}
	)
	require.NoError(t, os.WriteFile(filename, []byte(`{"units":"furlong","decimalSeparator":";","dpi":72}`), 0644))

	st, err := LoadState(filename)
	require.NoError(t, err)
	st.Restore(&settings)

	assert.Equal(t, core.Settings{Unit: core.Millimeter, Separator: '.'}, settings)
	assert.Empty(t, st.Measurements())
}

func TestLoadState_Errors(t *testing.T) {
	_, err := LoadState(filepath.Join(t.TempDir(), "none.json"))
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	filename := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(filename, []byte("{"), 0644))
	_, err = LoadState(filename)
	assert.Error(t, err)
}
