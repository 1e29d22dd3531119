package overlayhub

import (
	"sync"

	"thirdcoast.systems/streamlens/pkg/divider"
	"thirdcoast.systems/streamlens/pkg/drag"
	"thirdcoast.systems/streamlens/pkg/emotes"
	"thirdcoast.systems/streamlens/pkg/filters"
	"thirdcoast.systems/streamlens/pkg/toggle"
)

// DragHandle names which control owns the in-flight drag session. Only one
// handle may be mid-drag at a time; competing controls are rejected at this
// boundary.
type DragHandle string

const (
	HandleNone    DragHandle = ""
	HandleDivider DragHandle = "divider"
	HandleEditor  DragHandle = "editor"
)

// Overlay is one viewer's overlay state: active filter values, divider,
// editor toggle, ingested emotes, and the current host theme. All methods
// are safe for concurrent use.
type Overlay struct {
	mu sync.Mutex

	filters *filters.State
	divider *divider.Controller
	toggle  *toggle.Positioner
	emotes  *emotes.Map
	theme   emotes.Theme
	authed  bool

	handle  DragHandle
	session *drag.Session
}

func newOverlay() *Overlay {
	return &Overlay{
		filters: filters.NewState(),
		divider: divider.NewController(),
		toggle:  toggle.NewPositioner(),
		emotes:  emotes.NewMap(),
		theme:   emotes.ThemeLight,
	}
}

// Divider exposes the divider controller (its own methods are locked).
func (o *Overlay) Divider() *divider.Controller {
	return o.divider
}

// UpdateField routes one raw control value into the filter state.
func (o *Overlay) UpdateField(f filters.Field, raw string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.filters.UpdateField(f, raw)
}

// ApplyPreset bulk-applies a catalog preset by name.
func (o *Overlay) ApplyPreset(name string) bool {
	p, ok := filters.PresetByName(name)
	if !ok {
		return false
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.filters.ApplyPreset(p.Values)
	return true
}

// Reset restores the identity filter and clears the search term.
func (o *Overlay) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.filters.Reset()
}

// SetSearchTerm stores the preset gallery search term.
func (o *Overlay) SetSearchTerm(term string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.filters.SetSearchTerm(term)
}

// VisiblePresets returns the gallery entries under the current search term,
// along with which one (if any) matches the active values.
func (o *Overlay) VisiblePresets() ([]filters.Preset, string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	visible := o.filters.VisiblePresets()
	selected := ""
	for _, p := range visible {
		if o.filters.MatchesPreset(p) {
			selected = p.Name
			break
		}
	}
	return visible, selected
}

// SetTheme applies a host context theme change.
func (o *Overlay) SetTheme(t emotes.Theme) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.theme = t
}

// Theme returns the current host theme.
func (o *Overlay) Theme() emotes.Theme {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.theme
}

// MarkAuthorized records the host auth callback and reports whether this was
// the first one; emote loading runs once per overlay.
func (o *Overlay) MarkAuthorized() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.authed {
		return false
	}
	o.authed = true
	return true
}

// IngestEmotes merges one fetched emote set; later sets win on name clashes.
func (o *Overlay) IngestEmotes(resp emotes.SetResponse) int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.emotes.Ingest(resp)
}

// EmoteNames returns every ingested emote name.
func (o *Overlay) EmoteNames() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.emotes.Names()
}

// ResolveEmoteURL resolves an emote preview URL under the current theme.
func (o *Overlay) ResolveEmoteURL(name string) (string, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.emotes.ResolveURL(name, o.theme)
}

// BeginDividerDrag opens a drag session on the divider handle. Rejected
// while another handle is mid-drag or the divider is not draggable.
func (o *Overlay) BeginDividerDrag(rect drag.Rect, initial *drag.Pointer) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.dragLive() {
		return false
	}
	if !o.divider.BeginDrag() {
		return false
	}

	width := rect.Width
	if width <= 0 {
		width = 1
	}
	o.handle = HandleDivider
	o.session = drag.Begin(rect, drag.Handlers{
		OnMove: func(x, _ float64) {
			o.divider.SetPositionFromDrag(x / width * 100)
		},
		OnStop: func() {
			o.divider.EndDrag()
		},
		OnLeave: func(_, _ float64) {
			o.divider.DragLeave()
		},
	}, initial)
	return true
}

// BeginEditorDrag opens a drag session on the editor toggle button. No
// initial move is fed here: a press-and-release with no moves must read as a
// zero-delta click.
func (o *Overlay) BeginEditorDrag(rect drag.Rect) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.dragLive() {
		return false
	}

	width, height := rect.Width, rect.Height
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	o.toggle.BeginDrag()
	o.handle = HandleEditor
	o.session = drag.Begin(rect, drag.Handlers{
		OnMove: func(x, y float64) {
			o.toggle.MoveTo(x/width*100, y/height*100)
		},
		OnStop: func() {
			o.toggle.StopDrag()
		},
		OnLeave: func(_, _ float64) {
			o.toggle.LeaveDrag()
		},
	}, nil)
	return true
}

func (o *Overlay) dragLive() bool {
	return o.session != nil && !o.session.Ended()
}

// DragMove feeds one pointer move to the handle's live session. Moves for a
// released or mismatched handle are dropped.
func (o *Overlay) DragMove(handle DragHandle, p drag.Pointer) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.handle != handle || o.session == nil {
		return
	}
	o.session.Move(p)
}

// DragStop ends the handle's session via pointer release.
func (o *Overlay) DragStop(handle DragHandle) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.handle != handle || o.session == nil {
		return
	}
	o.session.Stop()
	o.handle = HandleNone
	o.session = nil
}

// DragLeave ends the handle's session because the pointer left the tracked
// surface.
func (o *Overlay) DragLeave(handle DragHandle, p drag.Pointer) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.handle != handle || o.session == nil {
		return
	}
	o.session.Leave(p)
	o.handle = HandleNone
	o.session = nil
}

// EndDrag tears down any in-flight drag without running gesture handlers.
// Called on overlay teardown so no session survives its viewer.
func (o *Overlay) EndDrag() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.session != nil {
		o.session.End()
		o.session = nil
	}
	o.handle = HandleNone
}

// Signals is the state snapshot pushed to the rendering layer.
type Signals struct {
	Theme string `json:"theme"`

	DividerActive    bool    `json:"dividerActive"`
	DividerAnimating bool    `json:"dividerAnimating"`
	DividerPosition  float64 `json:"dividerPosition"`
	FilterSide       string  `json:"filterSide"`
	ClipPath         string  `json:"clipPath"`

	EditorActive bool    `json:"editorActive"`
	EditorX      float64 `json:"editorX"`
	EditorY      float64 `json:"editorY"`
	SearchTerm   string  `json:"searchTerm"`

	Blur       float64 `json:"blur"`
	Brightness float64 `json:"brightness"`
	Contrast   float64 `json:"contrast"`
	Grayscale  float64 `json:"grayscale"`
	HueRotate  float64 `json:"hueRotate"`
	Invert     float64 `json:"invert"`
	Saturate   float64 `json:"saturate"`
	Sepia      float64 `json:"sepia"`
	Background string  `json:"background"`
	Opacity    float64 `json:"opacity"`
	BlendMode  string  `json:"blendMode"`

	FilterStyle string `json:"filterStyle"`
	TintStyle   string `json:"tintStyle"`
	EmoteCount  int    `json:"emoteCount"`
}

// Snapshot assembles the full signal set for one patch.
func (o *Overlay) Snapshot() Signals {
	o.mu.Lock()
	v := o.filters.Values()
	search := o.filters.SearchTerm()
	theme := o.theme
	emoteCount := o.emotes.Len()
	editorX, editorY := o.toggle.Position()
	editorActive := o.toggle.EditorVisible()
	o.mu.Unlock()

	ds := o.divider.State()

	return Signals{
		Theme: string(theme),

		DividerActive:    ds.Active,
		DividerAnimating: ds.Animating,
		DividerPosition:  ds.Position,
		FilterSide:       string(ds.Side),
		ClipPath:         ds.ClipPath(),

		EditorActive: editorActive,
		EditorX:      editorX,
		EditorY:      editorY,
		SearchTerm:   search,

		Blur:       v.Blur,
		Brightness: v.Brightness,
		Contrast:   v.Contrast,
		Grayscale:  v.Grayscale,
		HueRotate:  v.HueRotate,
		Invert:     v.Invert,
		Saturate:   v.Saturate,
		Sepia:      v.Sepia,
		Background: v.Background,
		Opacity:    v.Opacity,
		BlendMode:  string(v.BlendMode),

		FilterStyle: filters.FilterCSS(v),
		TintStyle:   filters.TintCSS(v),
		EmoteCount:  emoteCount,
	}
}
