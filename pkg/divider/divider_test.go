package divider

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// manualQueue captures scheduled callbacks so tests step the animation
// without real timers.
type manualQueue struct {
	pending []func()
}

func (q *manualQueue) schedule(_ time.Duration, fn func()) {
	q.pending = append(q.pending, fn)
}

// fire runs the oldest pending callback.
func (q *manualQueue) fire(t *testing.T) {
	t.Helper()
	require.NotEmpty(t, q.pending, "no pending timer")
	fn := q.pending[0]
	q.pending = q.pending[1:]
	fn()
}

func newTestController() (*Controller, *manualQueue) {
	c := NewController()
	q := &manualQueue{}
	c.schedule = q.schedule
	return c, q
}

func TestInitialState(t *testing.T) {
	c := NewController()
	st := c.State()
	require.Equal(t, OffscreenLeft, st.Position)
	require.False(t, st.Active)
	require.False(t, st.Animating)
	require.Equal(t, SideRight, st.Side)
	require.Equal(t, PhaseInactive, st.Phase)
}

func TestToggleActivates(t *testing.T) {
	c, q := newTestController()

	require.True(t, c.Toggle())
	st := c.State()
	require.True(t, st.Active)
	require.True(t, st.Animating)
	require.Equal(t, PhaseActivating, st.Phase)
	require.Equal(t, OffscreenLeft, st.Position, "position moves only after the settle delay")

	q.fire(t)
	st = c.State()
	require.Equal(t, PositionCenter, st.Position)
	require.True(t, st.Animating)

	q.fire(t)
	st = c.State()
	require.Equal(t, PositionCenter, st.Position)
	require.False(t, st.Animating)
	require.Equal(t, PhaseActive, st.Phase)
}

func TestToggleWhileAnimatingIsIgnored(t *testing.T) {
	c, q := newTestController()

	require.True(t, c.Toggle())
	require.False(t, c.Toggle())
	q.fire(t)
	require.False(t, c.Toggle())
	q.fire(t)

	// Animation finished, toggling works again.
	require.True(t, c.Toggle())
}

func TestToggleDeactivatesToSideTarget(t *testing.T) {
	for _, tc := range []struct {
		side   Side
		target float64
	}{
		{SideRight, OffscreenLeft},
		{SideLeft, OffscreenRight},
	} {
		c, q := newTestController()
		require.True(t, c.Toggle())
		q.fire(t)
		q.fire(t)
		require.True(t, c.SetFilterSide(tc.side))

		require.True(t, c.Toggle())
		st := c.State()
		require.True(t, st.Active, "stays active until the exit finishes")
		require.True(t, st.Animating)
		require.Equal(t, PhaseDeactivating, st.Phase)

		q.fire(t)
		require.Equal(t, tc.target, c.State().Position, "side=%s", tc.side)

		q.fire(t)
		st = c.State()
		require.False(t, st.Active)
		require.False(t, st.Animating)
		require.Equal(t, PhaseInactive, st.Phase)
	}
}

func TestDeactivationEndsDrag(t *testing.T) {
	c, q := newTestController()
	require.True(t, c.Toggle())
	q.fire(t)
	q.fire(t)

	require.True(t, c.BeginDrag())
	require.True(t, c.Dragging())

	require.True(t, c.Toggle())
	require.False(t, c.Dragging())
	require.False(t, c.SetPositionFromDrag(30))
}

func TestSetFilterSide(t *testing.T) {
	c, q := newTestController()

	require.False(t, c.SetFilterSide(SideLeft), "inactive divider rejects side changes")

	require.True(t, c.Toggle())
	q.fire(t)
	q.fire(t)

	require.True(t, c.SetFilterSide(SideLeft))
	require.Equal(t, SideLeft, c.State().Side)
	require.Equal(t, PositionCenter, c.State().Position, "side change never moves the divider")

	require.False(t, c.SetFilterSide(Side("up")))
}

func TestDragPositionClampAndRound(t *testing.T) {
	c, q := newTestController()
	require.True(t, c.Toggle())
	q.fire(t)
	q.fire(t)
	require.True(t, c.BeginDrag())

	require.True(t, c.SetPositionFromDrag(-12.5))
	require.Equal(t, 0.0, c.State().Position)

	require.True(t, c.SetPositionFromDrag(131))
	require.Equal(t, 100.0, c.State().Position)

	require.True(t, c.SetPositionFromDrag(33.333333))
	require.Equal(t, 33.33, c.State().Position)

	require.True(t, c.SetPositionFromDrag(66.666666))
	require.Equal(t, 66.67, c.State().Position)
}

func TestBeginDragRequiresActiveSettled(t *testing.T) {
	c, q := newTestController()
	require.False(t, c.BeginDrag(), "inactive")

	require.True(t, c.Toggle())
	require.False(t, c.BeginDrag(), "activating")
	q.fire(t)
	require.False(t, c.BeginDrag(), "still animating")
	q.fire(t)
	require.True(t, c.BeginDrag())
}

func TestSetPositionRequiresLiveDrag(t *testing.T) {
	c, q := newTestController()
	require.True(t, c.Toggle())
	q.fire(t)
	q.fire(t)

	require.False(t, c.SetPositionFromDrag(40), "no drag begun")

	require.True(t, c.BeginDrag())
	require.True(t, c.SetPositionFromDrag(40))
	c.EndDrag()
	require.False(t, c.SetPositionFromDrag(60), "stale callback after release")
	require.Equal(t, 40.0, c.State().Position)
}

func TestDragLeaveSnapsNearEdges(t *testing.T) {
	for _, tc := range []struct {
		at   float64
		want float64
	}{
		{3, 0},
		{5, 0},
		{5.01, 5.01},
		{50, 50},
		{94.99, 94.99},
		{95, 100},
		{97, 100},
	} {
		c, q := newTestController()
		require.True(t, c.Toggle())
		q.fire(t)
		q.fire(t)
		require.True(t, c.BeginDrag())
		require.True(t, c.SetPositionFromDrag(tc.at))

		c.DragLeave()
		require.Equal(t, tc.want, c.State().Position, "at=%v", tc.at)
		require.False(t, c.Dragging())
	}
}

func TestClipPath(t *testing.T) {
	st := State{Position: 50, Side: SideRight}
	require.Equal(t, "polygon(50.00% 0%, 100% 0%, 100% 100%, 50.00% 100%)", st.ClipPath())

	st.Side = SideLeft
	require.Equal(t, "polygon(0% 0%, 50.00% 0%, 50.00% 100%, 0% 100%)", st.ClipPath())

	st = State{Position: 33.33, Side: SideRight}
	require.Equal(t, "polygon(33.33% 0%, 100% 0%, 100% 100%, 33.33% 100%)", st.ClipPath())
}

func TestOnChangeFiresForEveryTransition(t *testing.T) {
	c, q := newTestController()
	var phases []Phase
	c.SetOnChange(func(st State) { phases = append(phases, st.Phase) })

	require.True(t, c.Toggle())
	q.fire(t)
	q.fire(t)
	require.Equal(t, []Phase{PhaseActivating, PhaseActivating, PhaseActive}, phases)

	phases = nil
	require.True(t, c.Toggle())
	q.fire(t)
	q.fire(t)
	require.Equal(t, []Phase{PhaseDeactivating, PhaseDeactivating, PhaseInactive}, phases)
}

func TestOnChangeRunsOutsideLock(t *testing.T) {
	c, q := newTestController()
	// Reading state from inside the callback deadlocks if the lock were
	// still held.
	c.SetOnChange(func(State) { _ = c.State() })
	require.True(t, c.Toggle())
	q.fire(t)
	q.fire(t)
	require.Equal(t, PhaseActive, c.State().Phase)
}
