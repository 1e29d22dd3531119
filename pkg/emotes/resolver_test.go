package emotes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const testTemplate = "https://cdn.example/emoticons/v2/{{id}}/{{format}}/{{theme_mode}}/{{scale}}"

func TestParseTheme(t *testing.T) {
	require.Equal(t, ThemeDark, ParseTheme("dark"))
	require.Equal(t, ThemeLight, ParseTheme("light"))
	require.Equal(t, ThemeLight, ParseTheme(""))
	require.Equal(t, ThemeLight, ParseTheme("Dark"))
}

func TestIngestAndResolve(t *testing.T) {
	m := NewMap()
	n := m.Ingest(SetResponse{
		Data: []APIRecord{
			{ID: "25", Name: "Kappa", Format: []string{"static"}, Scale: []string{"1.0", "2.0", "3.0"}, ThemeMode: []string{"light", "dark"}},
		},
		Template: testTemplate,
	})
	require.Equal(t, 1, n)
	require.Equal(t, 1, m.Len())

	url, ok := m.ResolveURL("Kappa", ThemeDark)
	require.True(t, ok)
	require.Equal(t, "https://cdn.example/emoticons/v2/25/static/dark/3.0", url)

	url, ok = m.ResolveURL("Kappa", ThemeLight)
	require.True(t, ok)
	require.Equal(t, "https://cdn.example/emoticons/v2/25/static/light/3.0", url)
}

func TestResolveUnknownName(t *testing.T) {
	m := NewMap()
	_, ok := m.ResolveURL("Nope", ThemeLight)
	require.False(t, ok)
}

func TestResolveThemeFallback(t *testing.T) {
	m := NewMap()
	m.Ingest(SetResponse{
		Data: []APIRecord{
			{ID: "9", Name: "NightOnly", Format: []string{"static"}, Scale: []string{"1.0"}, ThemeMode: []string{"dark"}},
		},
		Template: testTemplate,
	})

	// Requested theme unsupported: the first stored mode wins.
	url, ok := m.ResolveURL("NightOnly", ThemeLight)
	require.True(t, ok)
	require.Equal(t, "https://cdn.example/emoticons/v2/9/static/dark/1.0", url)
}

func TestResolvePrefersLastFormatAndScale(t *testing.T) {
	m := NewMap()
	m.Ingest(SetResponse{
		Data: []APIRecord{
			{ID: "7", Name: "Wiggle", Format: []string{"static", "animated"}, Scale: []string{"1.0", "2.0"}, ThemeMode: []string{"light"}},
		},
		Template: testTemplate,
	})

	url, ok := m.ResolveURL("Wiggle", ThemeLight)
	require.True(t, ok)
	require.Equal(t, "https://cdn.example/emoticons/v2/7/animated/light/2.0", url)
}

func TestResolveEmptyListsLeaveEmptySegments(t *testing.T) {
	m := NewMap()
	m.Ingest(SetResponse{
		Data:     []APIRecord{{ID: "3", Name: "Bare"}},
		Template: testTemplate,
	})

	url, ok := m.ResolveURL("Bare", ThemeLight)
	require.True(t, ok)
	require.Equal(t, "https://cdn.example/emoticons/v2/3///", url)
}

func TestSubstitutionIsSinglePass(t *testing.T) {
	m := NewMap()
	m.Ingest(SetResponse{
		Data:     []APIRecord{{ID: "x", Name: "Twice", Format: []string{"static"}, Scale: []string{"1.0"}, ThemeMode: []string{"light"}}},
		Template: "https://cdn.example/{{id}}/{{id}}/{{format}}",
	})

	// Only the first occurrence of each placeholder is replaced.
	url, ok := m.ResolveURL("Twice", ThemeLight)
	require.True(t, ok)
	require.Equal(t, "https://cdn.example/x/{{id}}/static", url)
}

func TestIngestLastWriteWins(t *testing.T) {
	m := NewMap()
	m.Ingest(SetResponse{
		Data:     []APIRecord{{ID: "1", Name: "Clash", Format: []string{"static"}, Scale: []string{"1.0"}, ThemeMode: []string{"light"}}},
		Template: testTemplate,
	})
	m.Ingest(SetResponse{
		Data:     []APIRecord{{ID: "2", Name: "Clash", Format: []string{"static"}, Scale: []string{"2.0"}, ThemeMode: []string{"light"}}},
		Template: "https://other.example/{{id}}/{{format}}/{{theme_mode}}/{{scale}}",
	})

	require.Equal(t, 1, m.Len())
	rec, ok := m.Lookup("Clash")
	require.True(t, ok)
	require.Equal(t, "2", rec.ID)

	url, ok := m.ResolveURL("Clash", ThemeLight)
	require.True(t, ok)
	require.Equal(t, "https://other.example/2/static/light/2.0", url)
}

func TestIngestEmptySet(t *testing.T) {
	m := NewMap()
	require.Zero(t, m.Ingest(SetResponse{Template: testTemplate}))
	require.Zero(t, m.Len())
	require.Empty(t, m.Names())
}
