package filters

import (
	"strings"

	"golang.org/x/text/cases"
)

// State holds the filter values currently applied to the video, plus the
// preset gallery search term. It is not safe for concurrent use; the owning
// layer serialises access.
type State struct {
	// StrictZero disables the historical fallback where a parsed zero is
	// treated like a parse failure. The shipped behavior is `parseFloat(x)
	// || default`: any falsy numeric value, including a legitimately entered
	// 0, resets the field to its default on the next form resync. Almost
	// certainly unintended, but clients depend on it, so it stays the
	// default here.
	StrictZero bool

	values Values
	search string
}

// NewState returns a manager holding the identity filter.
func NewState() *State {
	return &State{values: Defaults()}
}

// Values returns the currently applied filter values.
func (s *State) Values() Values {
	return s.values
}

// ApplyPreset bulk-replaces every field from the given values. Catalog
// values are pre-validated, so this always succeeds.
func (s *State) ApplyPreset(v Values) {
	s.values = v
}

// UpdateField parses rawValue per the field's type and stores the result.
// Malformed numeric input falls back to the field's default, never to the
// previous value (see StrictZero for the zero edge case). Unknown blend
// modes become BlendNormal. Background is stored verbatim.
func (s *State) UpdateField(f Field, rawValue string) {
	switch f {
	case FieldBackground:
		s.values.Background = rawValue
	case FieldBlendMode:
		s.values.BlendMode = ParseBlendMode(rawValue)
	default:
		s.values.setNumeric(f, parseNumeric(f, rawValue, s.StrictZero))
	}
}

// Reset restores the identity filter and clears the search term.
func (s *State) Reset() {
	s.values = DefaultPreset().Values
	s.search = ""
}

// Matches reports whether the active state equals the given values
// field-by-field. Used to highlight the selected preset card; nothing else
// keys off it.
func (s *State) Matches(v Values) bool {
	return s.values == v
}

// MatchesPreset is Matches against a catalog entry.
func (s *State) MatchesPreset(p Preset) bool {
	return s.Matches(p.Values)
}

// SetSearchTerm stores the gallery search term.
func (s *State) SetSearchTerm(term string) {
	s.search = term
}

// SearchTerm returns the current gallery search term.
func (s *State) SearchTerm() string {
	return s.search
}

// ClearSearchTerm empties the search term without touching filter values.
// The presentation layer may call this independently of Reset.
func (s *State) ClearSearchTerm() {
	s.search = ""
}

// VisiblePresets returns the catalog entries whose names contain the search
// term, case-folded. Filtering only hides; it never reorders.
func (s *State) VisiblePresets() []Preset {
	term := strings.TrimSpace(s.search)
	if term == "" {
		return Catalog()
	}
	fold := cases.Fold()
	needle := fold.String(term)
	out := make([]Preset, 0, len(catalog))
	for _, p := range catalog {
		if strings.Contains(fold.String(p.Name), needle) {
			out = append(out, p)
		}
	}
	return out
}
