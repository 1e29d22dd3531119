package overlay

import (
	"fmt"
	"html"
	"net/url"
	"sort"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"thirdcoast.systems/streamlens/pkg/filters"

	"thirdcoast.systems/streamlens/cmd/web/internal/overlayhub"
)

// Search terms and emote names arrive from outside the process; everything
// rendered back into the page goes through this first.
var sanitizer = bluemonday.StrictPolicy()

// renderPresetGallery builds the preset button list. Each button previews
// its own filter values on a thumbnail and posts an apply on click.
func renderPresetGallery(o *overlayhub.Overlay) string {
	visible, selected := o.VisiblePresets()

	var b strings.Builder
	b.WriteString(`<div id="preset-gallery" class="preset-gallery">`)
	for _, p := range visible {
		cls := "preset-card"
		if p.Name == selected {
			cls += " preset-card-selected"
		}
		name := html.EscapeString(p.Name)
		fmt.Fprintf(&b,
			`<button type="button" class="%s" data-on-click="@post('/api/overlay/preset/%s')">`+
				`<span class="preset-thumb" style="backdrop-filter: %s;"></span>`+
				`<span class="preset-name">%s</span>`+
				`</button>`,
			cls, url.PathEscape(p.Name), html.EscapeString(filters.FilterCSS(p.Values)), name)
	}
	if len(visible) == 0 {
		b.WriteString(`<p class="preset-empty">No presets match.</p>`)
	}
	b.WriteString(`</div>`)
	return b.String()
}

// renderEmoteGrid builds the emote preview strip shown in the editor panel.
func renderEmoteGrid(o *overlayhub.Overlay) string {
	names := o.EmoteNames()
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(`<div id="emote-grid" class="emote-grid">`)
	for _, name := range names {
		u, ok := o.ResolveEmoteURL(name)
		if !ok {
			continue
		}
		safeName := sanitizer.Sanitize(name)
		fmt.Fprintf(&b,
			`<img class="emote" src="%s" alt="%s" title="%s" loading="lazy">`,
			html.EscapeString(u), safeName, safeName)
	}
	b.WriteString(`</div>`)
	return b.String()
}

// renderControls builds the slider rack from the control metadata so the
// page never hardcodes ranges.
func renderControls() string {
	var b strings.Builder
	b.WriteString(`<div id="filter-controls" class="filter-controls">`)
	for _, ctl := range filters.Controls() {
		field := string(ctl.Field)
		signal := signalNameFor(ctl.Field)
		fmt.Fprintf(&b,
			`<label class="filter-control">`+
				`<span>%s</span>`+
				`<input type="range" min="%s" max="%s" step="%s" data-bind-%s `+
				`data-on-input__debounce.100ms="@post('/api/overlay/filter/%s?value='+$%s)">`+
				`</label>`,
			html.EscapeString(ctl.Label),
			filters.FmtNum(ctl.Min), filters.FmtNum(ctl.Max), filters.FmtNum(ctl.Step),
			signal, url.PathEscape(field), signal)
	}
	b.WriteString(`</div>`)
	return b.String()
}

// renderTestPlayer fills the placeholder behind the overlay with a muted
// player for the configured test channel. Only pushed on localhost and
// private hosts, where no host platform supplies a real stream underneath.
func renderTestPlayer(channel string) string {
	src := "https://player.twitch.tv/?channel=" + url.QueryEscape(channel) +
		"&parent=localhost&muted=true&autoplay=true"
	return fmt.Sprintf(
		`<div id="test-player" class="test-player">`+
			`<iframe src="%s" allowfullscreen></iframe>`+
			`</div>`,
		html.EscapeString(src))
}

// signalNameFor maps a field onto its camelCase signal name.
func signalNameFor(f filters.Field) string {
	switch f {
	case filters.FieldHueRotate:
		return "hueRotate"
	case filters.FieldBlendMode:
		return "blendMode"
	default:
		return string(f)
	}
}
