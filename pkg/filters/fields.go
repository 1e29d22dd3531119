package filters

import (
	"math"
	"strconv"
	"strings"
)

// Field identifies one tunable dimension of the overlay filter.
type Field string

const (
	FieldBlur       Field = "blur"
	FieldBrightness Field = "brightness"
	FieldContrast   Field = "contrast"
	FieldGrayscale  Field = "grayscale"
	FieldHueRotate  Field = "hue-rotate"
	FieldInvert     Field = "invert"
	FieldSaturate   Field = "saturate"
	FieldSepia      Field = "sepia"
	FieldBackground Field = "background"
	FieldOpacity    Field = "opacity"
	FieldBlendMode  Field = "mix-blend-mode"
)

// Fields lists every tunable field in control order.
func Fields() []Field {
	return []Field{
		FieldBlur, FieldBrightness, FieldContrast, FieldGrayscale,
		FieldHueRotate, FieldInvert, FieldSaturate, FieldSepia,
		FieldBackground, FieldOpacity, FieldBlendMode,
	}
}

// ParseField maps a wire name onto a Field.
func ParseField(raw string) (Field, bool) {
	for _, f := range Fields() {
		if string(f) == raw {
			return f, true
		}
	}
	return "", false
}

// BlendMode is the compositing operator used to combine the tint overlay
// with the underlying video.
type BlendMode string

const (
	BlendNormal     BlendMode = "normal"
	BlendMultiply   BlendMode = "multiply"
	BlendScreen     BlendMode = "screen"
	BlendOverlay    BlendMode = "overlay"
	BlendDarken     BlendMode = "darken"
	BlendLighten    BlendMode = "lighten"
	BlendColorDodge BlendMode = "color-dodge"
	BlendColorBurn  BlendMode = "color-burn"
	BlendHardLight  BlendMode = "hard-light"
	BlendSoftLight  BlendMode = "soft-light"
	BlendDifference BlendMode = "difference"
	BlendExclusion  BlendMode = "exclusion"
	BlendHue        BlendMode = "hue"
	BlendSaturation BlendMode = "saturation"
	BlendColor      BlendMode = "color"
	BlendLuminosity BlendMode = "luminosity"
)

// BlendModes returns every supported compositing mode, default first.
func BlendModes() []BlendMode {
	return []BlendMode{
		BlendNormal, BlendMultiply, BlendScreen, BlendOverlay,
		BlendDarken, BlendLighten, BlendColorDodge, BlendColorBurn,
		BlendHardLight, BlendSoftLight, BlendDifference, BlendExclusion,
		BlendHue, BlendSaturation, BlendColor, BlendLuminosity,
	}
}

// ParseBlendMode maps a raw control value to a BlendMode, falling back to
// BlendNormal for anything it does not recognise.
func ParseBlendMode(raw string) BlendMode {
	m := BlendMode(strings.TrimSpace(raw))
	for _, known := range BlendModes() {
		if m == known {
			return m
		}
	}
	return BlendNormal
}

// Values is the total mapping from every Field to its value. It is always
// fully populated; partial filters do not exist.
type Values struct {
	Blur       float64
	Brightness float64
	Contrast   float64
	Grayscale  float64
	HueRotate  float64
	Invert     float64
	Saturate   float64
	Sepia      float64
	Background string
	Opacity    float64
	BlendMode  BlendMode
}

// Defaults returns the identity filter: all numeric fields neutral, no tint,
// normal compositing.
func Defaults() Values {
	return Values{
		Blur:       0,
		Brightness: 1,
		Contrast:   1,
		Grayscale:  0,
		HueRotate:  0,
		Invert:     0,
		Saturate:   1,
		Sepia:      0,
		Background: "",
		Opacity:    0,
		BlendMode:  BlendNormal,
	}
}

// Control describes the input control for one numeric field.
type Control struct {
	Field    Field
	Label    string
	Min      float64
	Max      float64
	Step     float64
	Decimals int
}

// Controls returns the slider metadata for every numeric field in display
// order. Background and mix-blend-mode use a color picker and a select and
// are not listed here.
func Controls() []Control {
	return []Control{
		{Field: FieldBlur, Label: "Blur", Min: 0, Max: 10, Step: 1, Decimals: 0},
		{Field: FieldBrightness, Label: "Brightness", Min: 0, Max: 3, Step: 0.01, Decimals: 2},
		{Field: FieldContrast, Label: "Contrast", Min: 0, Max: 3, Step: 0.01, Decimals: 2},
		{Field: FieldGrayscale, Label: "Grayscale", Min: 0, Max: 1, Step: 0.01, Decimals: 2},
		{Field: FieldHueRotate, Label: "Hue Rotate", Min: -360, Max: 360, Step: 1, Decimals: 0},
		{Field: FieldInvert, Label: "Invert", Min: 0, Max: 1, Step: 0.01, Decimals: 2},
		{Field: FieldSaturate, Label: "Saturate", Min: 0, Max: 3, Step: 0.01, Decimals: 2},
		{Field: FieldSepia, Label: "Sepia", Min: 0, Max: 1, Step: 0.01, Decimals: 2},
		{Field: FieldOpacity, Label: "Tint Strength", Min: 0, Max: 1, Step: 0.01, Decimals: 2},
	}
}

// IsNumeric reports whether the field carries a float value.
func (f Field) IsNumeric() bool {
	switch f {
	case FieldBackground, FieldBlendMode:
		return false
	default:
		return true
	}
}

// numericDefault returns the neutral value for a numeric field.
func numericDefault(f Field) float64 {
	switch f {
	case FieldBrightness, FieldContrast, FieldSaturate:
		return 1
	default:
		return 0
	}
}

func (v Values) numeric(f Field) float64 {
	switch f {
	case FieldBlur:
		return v.Blur
	case FieldBrightness:
		return v.Brightness
	case FieldContrast:
		return v.Contrast
	case FieldGrayscale:
		return v.Grayscale
	case FieldHueRotate:
		return v.HueRotate
	case FieldInvert:
		return v.Invert
	case FieldSaturate:
		return v.Saturate
	case FieldSepia:
		return v.Sepia
	case FieldOpacity:
		return v.Opacity
	default:
		return 0
	}
}

func (v *Values) setNumeric(f Field, x float64) {
	switch f {
	case FieldBlur:
		v.Blur = x
	case FieldBrightness:
		v.Brightness = x
	case FieldContrast:
		v.Contrast = x
	case FieldGrayscale:
		v.Grayscale = x
	case FieldHueRotate:
		v.HueRotate = x
	case FieldInvert:
		v.Invert = x
	case FieldSaturate:
		v.Saturate = x
	case FieldSepia:
		v.Sepia = x
	case FieldOpacity:
		v.Opacity = x
	}
}

// parseNumeric parses a raw control value for a numeric field.
//
// The range control clamps on its side, so only the field's type is
// distrusted here: malformed, empty, or non-finite input falls back to the
// field's default. When strictZero is false the historical `parseFloat(x) ||
// default` behavior applies and a legitimate zero also falls back to the
// default. See the state manager doc for the why.
func parseNumeric(f Field, raw string, strictZero bool) float64 {
	x, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(x) || math.IsInf(x, 0) {
		return numericDefault(f)
	}
	if x == 0 && !strictZero {
		return numericDefault(f)
	}
	return x
}
