// Package drag is the pointer-drag primitive shared by the divider handle
// and the free-floating editor toggle. It translates pointer packets into
// container-relative coordinate callbacks with move/stop/leave semantics.
//
// Based on the drag helper in shoelace
// (https://github.com/shoelace-style/shoelace/blob/next/src/internal/drag.ts).
package drag

import "sync"

// Rect is the tracked container's bounding box in viewport coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// Pointer is one pointer event's page coordinates plus the page scroll at
// the time of the event. Mouse and touch feed the same stream; no
// distinction is made here.
type Pointer struct {
	PageX   float64
	PageY   float64
	ScrollX float64
	ScrollY float64
}

// Handlers receives drag callbacks. Any handler may be nil.
type Handlers struct {
	// OnMove runs for every move, with coordinates relative to the
	// container's bounding box.
	OnMove func(x, y float64)
	// OnStop runs when the pointer is released over the tracked surface.
	OnStop func()
	// OnLeave runs when the pointer exits the tracked surface mid-drag.
	OnLeave func(x, y float64)
}

// Session is one in-flight drag, created per pointer-down and destroyed on
// stop or leave. Both are terminal; there is no separate cancel. Ending an
// already-ended session is a no-op.
type Session struct {
	mu        sync.Mutex
	container Rect
	handlers  Handlers
	ended     bool
}

// Begin starts listening for a drag over container. Move/stop/leave are
// tracked at the document level by the feeding layer, so the drag survives
// the pointer outrunning the container. If initial is non-nil the first move
// fires immediately with its coordinates, so a single click-and-hold
// positions the dragged element without waiting for a subsequent move.
func Begin(container Rect, handlers Handlers, initial *Pointer) *Session {
	s := &Session{container: container, handlers: handlers}
	if initial != nil {
		s.Move(*initial)
	}
	return s
}

func (s *Session) offset(p Pointer) (x, y float64) {
	x = p.PageX - (s.container.Left + p.ScrollX)
	y = p.PageY - (s.container.Top + p.ScrollY)
	return x, y
}

// Container returns the bounding box captured at Begin.
func (s *Session) Container() Rect {
	return s.container
}

// Move delivers one pointer move. Moves arrive in pointer-event order and
// are never coalesced here; moves after the session ended are dropped.
func (s *Session) Move(p Pointer) {
	s.mu.Lock()
	if s.ended {
		s.mu.Unlock()
		return
	}
	onMove := s.handlers.OnMove
	s.mu.Unlock()

	if onMove != nil {
		x, y := s.offset(p)
		onMove(x, y)
	}
}

// Stop ends the session via pointer release.
func (s *Session) Stop() {
	s.mu.Lock()
	if s.ended {
		s.mu.Unlock()
		return
	}
	s.ended = true
	onStop := s.handlers.OnStop
	s.mu.Unlock()

	if onStop != nil {
		onStop()
	}
}

// Leave ends the session because the pointer exited the tracked surface.
func (s *Session) Leave(p Pointer) {
	s.mu.Lock()
	if s.ended {
		s.mu.Unlock()
		return
	}
	s.ended = true
	onLeave := s.handlers.OnLeave
	s.mu.Unlock()

	if onLeave != nil {
		x, y := s.offset(p)
		onLeave(x, y)
	}
}

// End tears the session down without running any handler. Used when the
// overlay session itself goes away with a drag still in flight, so no
// document-level listeners are left behind. Safe to call any number of
// times.
func (s *Session) End() {
	s.mu.Lock()
	s.ended = true
	s.mu.Unlock()
}

// Ended reports whether the session reached a terminal state.
func (s *Session) Ended() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ended
}
