// Package toggle tracks the draggable editor-toggle button: its normalized
// position inside the safe area and the click-versus-reposition gesture
// call.
package toggle

import "math"

// Default resting spot for the toggle button, in percent of the safe area.
const (
	DefaultX = 90.0
	DefaultY = 85.0
)

// Positioner holds the toggle button's (x%, y%) position and the editor
// panel's visibility. Not safe for concurrent use; the owning layer
// serialises access.
type Positioner struct {
	// The shipped gesture check compares the x-delta against itself twice
	// instead of x and y, so a purely vertical drag of any distance still
	// counts as a click. That behavior stays the default; set StrictClick
	// to require both deltas zero.
	StrictClick bool

	x, y           float64
	visible        bool
	dragging       bool
	deltaX, deltaY float64
}

// NewPositioner returns a positioner at the default resting spot with the
// editor panel hidden.
func NewPositioner() *Positioner {
	return &Positioner{x: DefaultX, y: DefaultY}
}

// Position returns the current normalized position.
func (p *Positioner) Position() (x, y float64) {
	return p.x, p.y
}

// EditorVisible reports whether the editor panel is shown.
func (p *Positioner) EditorVisible() bool {
	return p.visible
}

// Dragging reports whether a drag session is live.
func (p *Positioner) Dragging() bool {
	return p.dragging
}

// BeginDrag opens a drag session and zeroes the accumulated deltas.
func (p *Positioner) BeginDrag() {
	p.dragging = true
	p.deltaX = 0
	p.deltaY = 0
}

// MoveTo repositions the button, clamped to the safe area, accumulating the
// absolute delta of every move for the click check.
func (p *Positioner) MoveTo(xPct, yPct float64) {
	if !p.dragging {
		return
	}
	xPct = clampPct(xPct)
	yPct = clampPct(yPct)
	p.deltaX += math.Abs(xPct - p.x)
	p.deltaY += math.Abs(yPct - p.y)
	p.x = xPct
	p.y = yPct
}

// StopDrag ends the drag session. A gesture that accumulated no movement is
// a click and toggles the editor panel; reports whether visibility flipped.
func (p *Positioner) StopDrag() bool {
	if !p.dragging {
		return false
	}
	p.dragging = false

	second := p.deltaX
	if p.StrictClick {
		second = p.deltaY
	}
	if p.deltaX == 0 && second == 0 {
		p.visible = !p.visible
		return true
	}
	return false
}

// LeaveDrag ends the drag session without toggling visibility and without
// snapping the position.
func (p *Positioner) LeaveDrag() {
	p.dragging = false
}

func clampPct(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
