package filters

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCatalogShape(t *testing.T) {
	cat := Catalog()
	require.Len(t, cat, 42)
	require.Equal(t, DefaultPresetName, cat[0].Name)
	require.Equal(t, Defaults(), cat[0].Values)

	seen := map[string]bool{}
	for _, p := range cat {
		require.NotEmpty(t, p.Name)
		require.False(t, seen[p.Name], "duplicate preset %q", p.Name)
		seen[p.Name] = true
	}
}

func TestCatalogValuesFullyPopulated(t *testing.T) {
	// Every preset only overrides numeric fields; tint fields stay neutral
	// and untouched numeric fields keep their defaults.
	for _, p := range Catalog() {
		require.Equal(t, "", p.Values.Background, p.Name)
		require.Equal(t, 0.0, p.Values.Opacity, p.Name)
		require.Equal(t, BlendNormal, p.Values.BlendMode, p.Name)
	}
}

func TestPresetByName(t *testing.T) {
	p, ok := PresetByName("X-Pro II")
	require.True(t, ok)
	require.Equal(t, 0.45, p.Values.Sepia)
	require.Equal(t, 1.75, p.Values.Brightness)

	// Lookup is exact, not case-folded.
	_, ok = PresetByName("x-pro ii")
	require.False(t, ok)

	_, ok = PresetByName("Nope")
	require.False(t, ok)
}

func TestKnownPresetRecipes(t *testing.T) {
	moon, ok := PresetByName("Moon")
	require.True(t, ok)
	require.Equal(t, 1.4, moon.Values.Brightness)
	require.Equal(t, 0.95, moon.Values.Contrast)
	require.Equal(t, 0.0, moon.Values.Saturate)
	require.Equal(t, 0.35, moon.Values.Sepia)

	inkwell, ok := PresetByName("Inkwell")
	require.True(t, ok)
	require.Equal(t, 1.0, inkwell.Values.Grayscale)
	require.Equal(t, 0.85, inkwell.Values.Contrast)

	sevenSeven, ok := PresetByName("1977")
	require.True(t, ok)
	require.Equal(t, -30.0, sevenSeven.Values.HueRotate)
	require.Equal(t, 1.4, sevenSeven.Values.Saturate)
}
