package filters

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUpdateFieldParsesNumeric(t *testing.T) {
	s := NewState()

	s.UpdateField(FieldBlur, "4")
	require.Equal(t, 4.0, s.Values().Blur)

	s.UpdateField(FieldBrightness, "1.35")
	require.Equal(t, 1.35, s.Values().Brightness)

	s.UpdateField(FieldHueRotate, "-30")
	require.Equal(t, -30.0, s.Values().HueRotate)
}

func TestUpdateFieldMalformedFallsBackToDefault(t *testing.T) {
	for _, raw := range []string{"", "garbage", "NaN", "Inf", "-Inf", "1e999"} {
		s := NewState()
		s.UpdateField(FieldBrightness, "2.5")

		s.UpdateField(FieldBrightness, raw)
		require.Equal(t, 1.0, s.Values().Brightness, "raw=%q", raw)

		s.UpdateField(FieldSepia, raw)
		require.Equal(t, 0.0, s.Values().Sepia, "raw=%q", raw)
	}
}

func TestUpdateFieldZeroFallsBackToDefault(t *testing.T) {
	// A parsed zero is indistinguishable from a parse failure, so an entered
	// 0 resets default-1 fields back to 1.
	s := NewState()
	s.UpdateField(FieldBrightness, "0")
	require.Equal(t, 1.0, s.Values().Brightness)

	s.UpdateField(FieldContrast, "0")
	require.Equal(t, 1.0, s.Values().Contrast)

	s.UpdateField(FieldSaturate, "0")
	require.Equal(t, 1.0, s.Values().Saturate)

	// Zero-default fields are unaffected: the fallback lands on 0 anyway.
	s.UpdateField(FieldBlur, "0")
	require.Equal(t, 0.0, s.Values().Blur)
}

func TestUpdateFieldStrictZero(t *testing.T) {
	s := NewState()
	s.StrictZero = true

	s.UpdateField(FieldBrightness, "0")
	require.Equal(t, 0.0, s.Values().Brightness)

	s.UpdateField(FieldSaturate, "0.0")
	require.Equal(t, 0.0, s.Values().Saturate)

	// Malformed input still falls back.
	s.UpdateField(FieldBrightness, "garbage")
	require.Equal(t, 1.0, s.Values().Brightness)
}

func TestUpdateFieldBackgroundStoredVerbatim(t *testing.T) {
	s := NewState()
	s.UpdateField(FieldBackground, "#ff00aa")
	require.Equal(t, "#ff00aa", s.Values().Background)

	s.UpdateField(FieldBackground, "not a color")
	require.Equal(t, "not a color", s.Values().Background)
}

func TestUpdateFieldBlendMode(t *testing.T) {
	s := NewState()
	s.UpdateField(FieldBlendMode, "multiply")
	require.Equal(t, BlendMultiply, s.Values().BlendMode)

	s.UpdateField(FieldBlendMode, "no-such-mode")
	require.Equal(t, BlendNormal, s.Values().BlendMode)
}

func TestApplyPresetReplacesEveryField(t *testing.T) {
	s := NewState()
	s.UpdateField(FieldBlur, "8")
	s.UpdateField(FieldBackground, "#123456")

	moon, ok := PresetByName("Moon")
	require.True(t, ok)
	s.ApplyPreset(moon.Values)

	v := s.Values()
	require.Equal(t, 1.4, v.Brightness)
	require.Equal(t, 0.95, v.Contrast)
	require.Equal(t, 0.0, v.Saturate)
	require.Equal(t, 0.35, v.Sepia)
	require.Equal(t, 0.0, v.Blur)
	require.Equal(t, "", v.Background)
	require.True(t, s.MatchesPreset(moon))
}

func TestResetRestoresIdentityAndClearsSearch(t *testing.T) {
	s := NewState()
	s.UpdateField(FieldGrayscale, "0.7")
	s.SetSearchTerm("moo")

	s.Reset()
	require.Equal(t, Defaults(), s.Values())
	require.Equal(t, "", s.SearchTerm())
	require.True(t, s.MatchesPreset(DefaultPreset()))
}

func TestMatchesIsExactEquality(t *testing.T) {
	s := NewState()
	lark, ok := PresetByName("Lark")
	require.True(t, ok)
	s.ApplyPreset(lark.Values)
	require.True(t, s.MatchesPreset(lark))

	// Any single-field drift breaks the match.
	s.UpdateField(FieldSepia, "0.26")
	require.False(t, s.MatchesPreset(lark))
}

func TestVisiblePresetsFiltersCaseFolded(t *testing.T) {
	s := NewState()

	require.Equal(t, Catalog(), s.VisiblePresets())

	s.SetSearchTerm("MOO")
	visible := s.VisiblePresets()
	require.Len(t, visible, 1)
	require.Equal(t, "Moon", visible[0].Name)

	// Hide-only: filtering never reorders what remains.
	s.SetSearchTerm("br")
	var names []string
	for _, p := range s.VisiblePresets() {
		names = append(names, p.Name)
	}
	require.Equal(t, []string{"Brannan", "Brooklyn"}, names)

	s.SetSearchTerm("no such preset")
	require.Empty(t, s.VisiblePresets())

	s.ClearSearchTerm()
	require.Equal(t, Catalog(), s.VisiblePresets())
}

func TestVisiblePresetsDoesNotTouchValues(t *testing.T) {
	s := NewState()
	s.UpdateField(FieldInvert, "0.4")
	before := s.Values()

	s.SetSearchTerm("xyz")
	_ = s.VisiblePresets()
	require.Equal(t, before, s.Values())
}
