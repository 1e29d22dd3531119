// Package emotes maps emote-set API responses into per-emote records and
// resolves themed display URLs from the CDN URL template.
package emotes

import "strings"

// Theme is the host platform's theme setting.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme maps a raw theme value to a Theme, defaulting to light.
func ParseTheme(raw string) Theme {
	if Theme(raw) == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

// Record is the compact per-emote form kept after ingestion. List order is
// preference order: the last format and the last (largest) scale win, and
// ThemeModes[0] is the fallback when the requested theme is unsupported.
type Record struct {
	ID         string
	Formats    []string
	Scales     []string
	ThemeModes []string
	Template   string
}

// APIRecord is one emote as returned by the upstream emote-set API.
type APIRecord struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Format    []string `json:"format"`
	Scale     []string `json:"scale"`
	ThemeMode []string `json:"theme_mode"`
}

// SetResponse is the upstream payload for one emote set. An empty Data slice
// means no emotes added, not an error.
type SetResponse struct {
	Data     []APIRecord `json:"data"`
	Template string      `json:"template"`
}

// Map holds Records keyed by emote display name. Entries are added or
// overwritten, never mutated in place.
type Map struct {
	byName map[string]Record
}

// NewMap returns an empty emote map.
func NewMap() *Map {
	return &Map{byName: make(map[string]Record)}
}

// Ingest stores a Record per incoming emote, keyed by name. Later ingestion
// wins: emote sets load sequentially (global first, then specific sets) and
// may overlap.
func (m *Map) Ingest(resp SetResponse) int {
	for _, rec := range resp.Data {
		m.byName[rec.Name] = Record{
			ID:         rec.ID,
			Formats:    rec.Format,
			Scales:     rec.Scale,
			ThemeModes: rec.ThemeMode,
			Template:   resp.Template,
		}
	}
	return len(resp.Data)
}

// Len returns the number of distinct emote names held.
func (m *Map) Len() int {
	return len(m.byName)
}

// Names returns every held emote name in unspecified order.
func (m *Map) Names() []string {
	out := make([]string, 0, len(m.byName))
	for name := range m.byName {
		out = append(out, name)
	}
	return out
}

// Lookup returns the stored record for name.
func (m *Map) Lookup(name string) (Record, bool) {
	rec, ok := m.byName[name]
	return rec, ok
}

// ResolveURL builds the display URL for name under the desired theme. The
// second return is false when the name is unknown; the caller shows a
// placeholder preview, not an error.
//
// Scale is the last element of the stored list (most detailed available),
// format likewise (animated is listed after static when present). The
// requested theme is used when the emote supports it, else the first stored
// theme mode.
func (m *Map) ResolveURL(name string, theme Theme) (string, bool) {
	rec, ok := m.byName[name]
	if !ok {
		return "", false
	}

	themeMode := ""
	if len(rec.ThemeModes) > 0 {
		themeMode = rec.ThemeModes[0]
	}
	for _, tm := range rec.ThemeModes {
		if tm == string(theme) {
			themeMode = tm
			break
		}
	}

	// Templates carry each placeholder once; substitution is deliberately a
	// single pass on the first occurrence, not a global replace.
	url := rec.Template
	url = strings.Replace(url, "{{id}}", rec.ID, 1)
	url = strings.Replace(url, "{{format}}", last(rec.Formats), 1)
	url = strings.Replace(url, "{{theme_mode}}", themeMode, 1)
	url = strings.Replace(url, "{{scale}}", last(rec.Scales), 1)
	return url, true
}

func last(list []string) string {
	if len(list) == 0 {
		return ""
	}
	return list[len(list)-1]
}
