package drag

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type recorder struct {
	moves  [][2]float64
	stops  int
	leaves [][2]float64
}

func (r *recorder) handlers() Handlers {
	return Handlers{
		OnMove:  func(x, y float64) { r.moves = append(r.moves, [2]float64{x, y}) },
		OnStop:  func() { r.stops++ },
		OnLeave: func(x, y float64) { r.leaves = append(r.leaves, [2]float64{x, y}) },
	}
}

func TestMoveReportsContainerRelativeCoordinates(t *testing.T) {
	rec := &recorder{}
	s := Begin(Rect{Left: 100, Top: 50, Width: 640, Height: 360}, rec.handlers(), nil)

	s.Move(Pointer{PageX: 420, PageY: 230})
	require.Equal(t, [][2]float64{{320, 180}}, rec.moves)
}

func TestMoveSubtractsScroll(t *testing.T) {
	rec := &recorder{}
	s := Begin(Rect{Left: 100, Top: 50}, rec.handlers(), nil)

	// Page coordinates include scroll; the rect is in viewport coordinates.
	s.Move(Pointer{PageX: 420, PageY: 230, ScrollX: 20, ScrollY: 120})
	require.Equal(t, [][2]float64{{300, 60}}, rec.moves)
}

func TestInitialPointerFiresImmediateMove(t *testing.T) {
	rec := &recorder{}
	Begin(Rect{Left: 10, Top: 10}, rec.handlers(), &Pointer{PageX: 60, PageY: 35})
	require.Equal(t, [][2]float64{{50, 25}}, rec.moves)
}

func TestNilInitialPointerFiresNothing(t *testing.T) {
	rec := &recorder{}
	Begin(Rect{}, rec.handlers(), nil)
	require.Empty(t, rec.moves)
}

func TestStopIsTerminal(t *testing.T) {
	rec := &recorder{}
	s := Begin(Rect{}, rec.handlers(), nil)

	s.Stop()
	require.Equal(t, 1, rec.stops)
	require.True(t, s.Ended())

	// Everything after the stop is dropped.
	s.Move(Pointer{PageX: 5})
	s.Stop()
	s.Leave(Pointer{PageX: 5})
	require.Empty(t, rec.moves)
	require.Equal(t, 1, rec.stops)
	require.Empty(t, rec.leaves)
}

func TestLeaveIsTerminalAndReportsCoordinates(t *testing.T) {
	rec := &recorder{}
	s := Begin(Rect{Left: 100, Top: 100}, rec.handlers(), nil)

	s.Leave(Pointer{PageX: 90, PageY: 150})
	require.Equal(t, [][2]float64{{-10, 50}}, rec.leaves)
	require.True(t, s.Ended())

	s.Stop()
	require.Zero(t, rec.stops)
}

func TestEndRunsNoHandlers(t *testing.T) {
	rec := &recorder{}
	s := Begin(Rect{}, rec.handlers(), nil)

	s.End()
	s.End()
	require.True(t, s.Ended())
	require.Empty(t, rec.moves)
	require.Zero(t, rec.stops)
	require.Empty(t, rec.leaves)

	s.Move(Pointer{PageX: 1})
	require.Empty(t, rec.moves)
}

func TestNilHandlersAreSafe(t *testing.T) {
	s := Begin(Rect{}, Handlers{}, &Pointer{PageX: 10})
	s.Move(Pointer{PageX: 20})
	s.Leave(Pointer{})
	require.True(t, s.Ended())
}
