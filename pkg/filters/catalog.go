package filters

// Preset is a named, pre-defined bundle of filter parameter values.
type Preset struct {
	Name   string
	Values Values
}

// preset overlays a sparse numeric override onto the full defaults, so every
// preset satisfies the fully-populated Values invariant.
func preset(name string, over map[Field]float64) Preset {
	v := Defaults()
	for f, x := range over {
		v.setNumeric(f, x)
	}
	return Preset{Name: name, Values: v}
}

// DefaultPresetName is the catalog's identity entry.
const DefaultPresetName = "Default"

// Preset recipes match instagram.css
// (https://github.com/picturepan2/instagram.css).
var catalog = []Preset{
	{Name: DefaultPresetName, Values: Defaults()},
	preset("1977", map[Field]float64{FieldSepia: 0.5, FieldHueRotate: -30, FieldSaturate: 1.4}),
	preset("Aden", map[Field]float64{FieldSepia: 0.2, FieldBrightness: 1.15, FieldSaturate: 1.4}),
	preset("Amaro", map[Field]float64{FieldSepia: 0.35, FieldContrast: 1.1, FieldBrightness: 1.2, FieldSaturate: 1.3}),
	preset("Ashby", map[Field]float64{FieldSepia: 0.5, FieldContrast: 1.2, FieldSaturate: 1.8}),
	preset("Brannan", map[Field]float64{FieldSepia: 0.4, FieldContrast: 1.25, FieldBrightness: 1.1, FieldSaturate: 0.9, FieldHueRotate: -2}),
	preset("Brooklyn", map[Field]float64{FieldSepia: 0.25, FieldContrast: 1.25, FieldBrightness: 1.25, FieldHueRotate: 5}),
	preset("Charmes", map[Field]float64{FieldSepia: 0.25, FieldContrast: 1.25, FieldBrightness: 1.25, FieldSaturate: 1.35, FieldHueRotate: -5}),
	preset("Clarendon", map[Field]float64{FieldSepia: 0.15, FieldContrast: 1.25, FieldBrightness: 1.25, FieldHueRotate: 5}),
	preset("Crema", map[Field]float64{FieldSepia: 0.5, FieldContrast: 1.25, FieldBrightness: 1.15, FieldSaturate: 0.9, FieldHueRotate: -2}),
	preset("Dogpatch", map[Field]float64{FieldSepia: 0.35, FieldSaturate: 1.1, FieldContrast: 1.5}),
	preset("Earlybird", map[Field]float64{FieldSepia: 0.25, FieldContrast: 1.25, FieldBrightness: 1.15, FieldSaturate: 0.9, FieldHueRotate: -5}),
	preset("Gingham", map[Field]float64{FieldContrast: 1.1, FieldBrightness: 1.1}),
	preset("Ginza", map[Field]float64{FieldSepia: 0.25, FieldContrast: 1.15, FieldBrightness: 1.2, FieldSaturate: 1.35, FieldHueRotate: -5}),
	preset("Hefe", map[Field]float64{FieldSepia: 0.4, FieldContrast: 1.5, FieldBrightness: 1.2, FieldSaturate: 1.4, FieldHueRotate: -10}),
	preset("Helena", map[Field]float64{FieldSepia: 0.5, FieldContrast: 1.05, FieldBrightness: 1.05, FieldSaturate: 1.35}),
	preset("Hudson", map[Field]float64{FieldSepia: 0.25, FieldContrast: 1.2, FieldBrightness: 1.2, FieldSaturate: 1.05, FieldHueRotate: -15}),
	preset("Inkwell", map[Field]float64{FieldBrightness: 1.25, FieldContrast: 0.85, FieldGrayscale: 1}),
	preset("Juno", map[Field]float64{FieldSepia: 0.35, FieldContrast: 1.15, FieldBrightness: 1.15, FieldSaturate: 1.8}),
	preset("Kelvin", map[Field]float64{FieldSepia: 0.15, FieldContrast: 1.5, FieldBrightness: 1.1, FieldHueRotate: -10}),
	preset("Lark", map[Field]float64{FieldSepia: 0.25, FieldContrast: 1.2, FieldBrightness: 1.3, FieldSaturate: 1.25}),
	preset("Lofi", map[Field]float64{FieldSaturate: 1.1, FieldContrast: 1.5}),
	preset("Ludwig", map[Field]float64{FieldSepia: 0.25, FieldContrast: 1.05, FieldBrightness: 1.05, FieldSaturate: 2}),
	preset("Maven", map[Field]float64{FieldSepia: 0.35, FieldContrast: 1.05, FieldBrightness: 1.05, FieldSaturate: 1.75}),
	preset("Mayfair", map[Field]float64{FieldContrast: 1.1, FieldBrightness: 1.15, FieldSaturate: 1.1}),
	preset("Moon", map[Field]float64{FieldBrightness: 1.4, FieldContrast: 0.95, FieldSaturate: 0, FieldSepia: 0.35}),
	preset("Nashville", map[Field]float64{FieldSepia: 0.25, FieldContrast: 1.5, FieldBrightness: 0.9, FieldHueRotate: -15}),
	preset("Perpetua", map[Field]float64{FieldContrast: 1.1, FieldBrightness: 1.25, FieldSaturate: 1.1}),
	preset("Poprocket", map[Field]float64{FieldSepia: 0.15, FieldBrightness: 1.2}),
	preset("Reyes", map[Field]float64{FieldSepia: 0.75, FieldContrast: 0.75, FieldBrightness: 1.25, FieldSaturate: 1.4}),
	preset("Rise", map[Field]float64{FieldSepia: 0.25, FieldContrast: 1.25, FieldBrightness: 1.2, FieldSaturate: 0.9}),
	preset("Sierra", map[Field]float64{FieldSepia: 0.25, FieldContrast: 1.5, FieldBrightness: 0.9, FieldHueRotate: -15}),
	preset("Skyline", map[Field]float64{FieldSepia: 0.15, FieldContrast: 1.25, FieldBrightness: 1.25, FieldSaturate: 1.2}),
	preset("Slumber", map[Field]float64{FieldSepia: 0.35, FieldContrast: 1.25, FieldSaturate: 1.25}),
	preset("Stinson", map[Field]float64{FieldSepia: 0.35, FieldContrast: 1.25, FieldBrightness: 1.1, FieldSaturate: 1.25}),
	preset("Sutro", map[Field]float64{FieldSepia: 0.4, FieldContrast: 1.2, FieldBrightness: 0.9, FieldSaturate: 1.4, FieldHueRotate: -10}),
	preset("Toaster", map[Field]float64{FieldSepia: 0.25, FieldContrast: 1.5, FieldBrightness: 0.95, FieldHueRotate: -15}),
	preset("Valencia", map[Field]float64{FieldSepia: 0.25, FieldContrast: 1.1, FieldBrightness: 1.1}),
	preset("Vesper", map[Field]float64{FieldSepia: 0.35, FieldContrast: 1.15, FieldBrightness: 1.2, FieldSaturate: 1.3}),
	preset("Walden", map[Field]float64{FieldSepia: 0.35, FieldContrast: 0.8, FieldBrightness: 1.25, FieldSaturate: 1.4}),
	preset("Willow", map[Field]float64{FieldBrightness: 1.2, FieldContrast: 0.85, FieldSaturate: 0.05, FieldSepia: 0.2}),
	preset("X-Pro II", map[Field]float64{FieldSepia: 0.45, FieldContrast: 1.25, FieldBrightness: 1.75, FieldSaturate: 1.3, FieldHueRotate: -5}),
}

// Catalog returns the full ordered preset list, default preset first. The
// order is stable and significant only for display. Callers must not mutate
// the returned slice.
func Catalog() []Preset {
	return catalog
}

// DefaultPreset returns the catalog's identity entry.
func DefaultPreset() Preset {
	return catalog[0]
}

// PresetByName looks a preset up by its display name.
func PresetByName(name string) (Preset, bool) {
	for _, p := range catalog {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}
