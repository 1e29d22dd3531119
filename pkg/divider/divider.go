// Package divider owns the compare divider: its position, active flag, the
// two-stage enter/exit animation, and the drag snapping policy.
package divider

import (
	"fmt"
	"math"
	"sync"
	"time"
)

// Side is the half of the view the filter clip applies to.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// Phase names the controller's animation state.
type Phase int

const (
	PhaseInactive Phase = iota
	PhaseActivating
	PhaseActive
	PhaseDeactivating
)

func (p Phase) String() string {
	switch p {
	case PhaseInactive:
		return "inactive"
	case PhaseActivating:
		return "activating"
	case PhaseActive:
		return "active"
	case PhaseDeactivating:
		return "deactivating"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

const (
	// Position runs -10..110: 0..100 is on screen, the rest parks the
	// divider just past either edge so the exit transition can finish
	// off-view.
	OffscreenLeft  = -10.0
	OffscreenRight = 110.0
	PositionCenter = 50.0

	// Drag-leave edge snap. Pointer velocity can outrun the tracked element
	// near the view edges; anything this close to an edge is treated as
	// intent to reach it.
	snapLowBelow  = 5.0
	snapHighAbove = 95.0

	// The first delay lets the divider-mounted transition start before the
	// position change animates; the second matches the CSS transition
	// duration before further interaction is allowed.
	settleDelay     = 100 * time.Millisecond
	transitionDelay = 500 * time.Millisecond
)

// State is a snapshot of the divider.
type State struct {
	Position  float64
	Active    bool
	Animating bool
	Side      Side
	Phase     Phase
}

// ClipPath renders the clip polygon for the filtered half of the view.
func (s State) ClipPath() string {
	p := s.Position
	if s.Side == SideLeft {
		return fmt.Sprintf("polygon(0%% 0%%, %.2f%% 0%%, %.2f%% 100%%, 0%% 100%%)", p, p)
	}
	return fmt.Sprintf("polygon(%.2f%% 0%%, 100%% 0%%, 100%% 100%%, %.2f%% 100%%)", p, p)
}

// Controller is the divider state machine. All methods are safe for
// concurrent use; change notifications are delivered outside the lock.
type Controller struct {
	mu       sync.Mutex
	state    State
	dragging bool

	// schedule defaults to time.AfterFunc; tests swap it for a manual queue.
	schedule func(time.Duration, func())
	onChange func(State)
}

// NewController returns an inactive controller parked off-screen left with
// the filter on the right half.
func NewController() *Controller {
	return &Controller{
		state: State{
			Position: OffscreenLeft,
			Side:     SideRight,
			Phase:    PhaseInactive,
		},
		schedule: func(d time.Duration, fn func()) { time.AfterFunc(d, fn) },
	}
}

// SetOnChange registers the observer the presentation layer subscribes to.
// The callback runs without the controller lock held.
func (c *Controller) SetOnChange(fn func(State)) {
	c.mu.Lock()
	c.onChange = fn
	c.mu.Unlock()
}

// State returns a snapshot.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// notify must be called without the lock held.
func (c *Controller) notify(st State, fn func(State)) {
	if fn != nil {
		fn(st)
	}
}

// Toggle starts the enter or exit animation. A toggle while a previous
// toggle's timers are still pending is ignored and returns false; the switch
// control is also disabled at the boundary while Animating is true, so a
// false here means a stale client.
func (c *Controller) Toggle() bool {
	c.mu.Lock()
	if c.state.Animating {
		c.mu.Unlock()
		return false
	}

	if !c.state.Active {
		c.state.Active = true
		c.state.Animating = true
		c.state.Phase = PhaseActivating
		st, fn := c.state, c.onChange
		c.mu.Unlock()
		c.notify(st, fn)

		c.schedule(settleDelay, func() {
			c.mu.Lock()
			c.state.Position = PositionCenter
			st, fn := c.state, c.onChange
			c.mu.Unlock()
			c.notify(st, fn)

			c.schedule(transitionDelay, func() {
				c.mu.Lock()
				c.state.Animating = false
				c.state.Phase = PhaseActive
				st, fn := c.state, c.onChange
				c.mu.Unlock()
				c.notify(st, fn)
			})
		})
		return true
	}

	c.state.Animating = true
	c.state.Phase = PhaseDeactivating
	c.dragging = false
	st, fn := c.state, c.onChange
	c.mu.Unlock()
	c.notify(st, fn)

	c.schedule(settleDelay, func() {
		c.mu.Lock()
		if c.state.Side == SideLeft {
			c.state.Position = OffscreenRight
		} else {
			c.state.Position = OffscreenLeft
		}
		st, fn := c.state, c.onChange
		c.mu.Unlock()
		c.notify(st, fn)

		c.schedule(transitionDelay, func() {
			c.mu.Lock()
			c.state.Active = false
			c.state.Animating = false
			c.state.Phase = PhaseInactive
			st, fn := c.state, c.onChange
			c.mu.Unlock()
			c.notify(st, fn)
		})
	})
	return true
}

// SetFilterSide changes which half the filter clips to. Only actionable
// while active; side changes never move the divider, they only change the
// clip orientation and the deactivation target.
func (c *Controller) SetFilterSide(side Side) bool {
	if side != SideLeft && side != SideRight {
		return false
	}
	c.mu.Lock()
	if !c.state.Active {
		c.mu.Unlock()
		return false
	}
	c.state.Side = side
	st, fn := c.state, c.onChange
	c.mu.Unlock()
	c.notify(st, fn)
	return true
}

// BeginDrag marks the divider's own drag handle as held. Returns false while
// inactive or mid-animation.
func (c *Controller) BeginDrag() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.state.Active || c.state.Animating {
		return false
	}
	c.dragging = true
	return true
}

// Dragging reports whether a divider drag session is live.
func (c *Controller) Dragging() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dragging
}

// SetPositionFromDrag clamps rawPercent to [0,100], rounds to two decimals,
// and applies it. Ignored unless a drag session begun via BeginDrag is still
// live, so a stale callback cannot move an already-released divider.
func (c *Controller) SetPositionFromDrag(rawPercent float64) bool {
	c.mu.Lock()
	if !c.dragging || !c.state.Active {
		c.mu.Unlock()
		return false
	}
	p := rawPercent
	if p < 0 {
		p = 0
	} else if p > 100 {
		p = 100
	}
	c.state.Position = math.Round(p*100) / 100
	st, fn := c.state, c.onChange
	c.mu.Unlock()
	c.notify(st, fn)
	return true
}

// EndDrag releases the drag handle.
func (c *Controller) EndDrag() {
	c.mu.Lock()
	c.dragging = false
	c.mu.Unlock()
}

// DragLeave ends the drag after the pointer left the tracking surface
// without a formal stop. Positions within the snap bands jump to the nearest
// edge; everything else stays put.
func (c *Controller) DragLeave() {
	c.mu.Lock()
	if !c.dragging {
		c.mu.Unlock()
		return
	}
	c.dragging = false
	switch {
	case c.state.Position <= snapLowBelow:
		c.state.Position = 0
	case c.state.Position >= snapHighAbove:
		c.state.Position = 100
	}
	st, fn := c.state, c.onChange
	c.mu.Unlock()
	c.notify(st, fn)
}
