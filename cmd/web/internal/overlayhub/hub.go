package overlayhub

import (
	"sync"
	"time"

	"thirdcoast.systems/streamlens/pkg/divider"
)

const (
	// If a viewer stops touching their overlay for this long and holds no
	// open stream, the state is dropped. A fallback for cases where the SSE
	// disconnect isn't observed (network drops, tab kill, etc.).
	ViewerStaleAfter = 10 * time.Minute

	// Hard caps to keep the web process responsive even if someone opens a
	// silly number of tabs.
	maxStreamsPerViewer = 3
	maxTotalStreams     = 200
)

// Hub holds every connected viewer's overlay and fans state-change wakeups
// out to their SSE streams.
type Hub struct {
	mu sync.Mutex

	viewers map[string]*viewer

	totalStreams int
}

type viewer struct {
	overlay  *Overlay
	streams  int
	lastSeen time.Time
	subs     map[chan struct{}]struct{}
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		viewers: make(map[string]*viewer),
	}
}

func (h *Hub) getOrCreate(id string) *viewer {
	v, ok := h.viewers[id]
	if ok {
		return v
	}

	v = &viewer{
		overlay:  newOverlay(),
		lastSeen: time.Now(),
		subs:     make(map[chan struct{}]struct{}),
	}
	// Divider timers fire off the request path; route their changes back
	// through the hub so open streams re-render. The callback runs without
	// the controller lock, so taking ours in Notify is safe.
	v.overlay.divider.SetOnChange(func(_ divider.State) {
		h.Notify(id)
	})
	h.viewers[id] = v
	return v
}

// Get returns the overlay for a viewer id, creating it on first sight.
func (h *Hub) Get(id string) *Overlay {
	h.mu.Lock()
	defer h.mu.Unlock()
	v := h.getOrCreate(id)
	v.lastSeen = time.Now()
	return v.overlay
}

// AcquireStream attempts to reserve an SSE slot for the viewer.
func (h *Hub) AcquireStream(id string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.totalStreams >= maxTotalStreams {
		return false
	}

	v := h.getOrCreate(id)
	if v.streams >= maxStreamsPerViewer {
		return false
	}

	v.streams++
	h.totalStreams++
	return true
}

// ReleaseStream frees an SSE slot for the viewer.
func (h *Hub) ReleaseStream(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	v, ok := h.viewers[id]
	if !ok {
		return
	}
	if v.streams > 0 {
		v.streams--
	}
	if h.totalStreams > 0 {
		h.totalStreams--
	}
}

// Subscribe returns a wakeup channel signalled on every state change for the
// viewer, and an unsubscribe function. Wakeups are collapsible: the stream
// re-reads a full snapshot on each one.
func (h *Hub) Subscribe(id string) (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	h.mu.Lock()
	v := h.getOrCreate(id)
	v.subs[ch] = struct{}{}
	h.mu.Unlock()

	unsubscribe := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		v, ok := h.viewers[id]
		if !ok {
			return
		}
		if _, ok := v.subs[ch]; ok {
			delete(v.subs, ch)
			close(ch)
		}
	}

	return ch, unsubscribe
}

// Notify wakes every stream subscribed to the viewer.
func (h *Hub) Notify(id string) {
	h.mu.Lock()
	v, ok := h.viewers[id]
	if !ok {
		h.mu.Unlock()
		return
	}
	for sub := range v.subs {
		select {
		case sub <- struct{}{}:
		default:
			// A wakeup is already pending; the snapshot read will see the
			// newest state anyway.
		}
	}
	h.mu.Unlock()
}

// Touch refreshes the viewer's liveness clock.
func (h *Hub) Touch(id string, now time.Time) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if v, ok := h.viewers[id]; ok {
		v.lastSeen = now
	}
}

// PruneStale drops viewers with no open streams that have gone quiet,
// tearing down any drag session still in flight so nothing leaks. Returns
// the number removed.
func (h *Hub) PruneStale(now time.Time) int {
	h.mu.Lock()
	var doomed []*viewer
	for id, v := range h.viewers {
		if v.streams > 0 || len(v.subs) > 0 {
			continue
		}
		if now.Sub(v.lastSeen) <= ViewerStaleAfter {
			continue
		}
		doomed = append(doomed, v)
		delete(h.viewers, id)
	}
	h.mu.Unlock()

	// Drag teardown takes the overlay lock; do it outside ours.
	for _, v := range doomed {
		v.overlay.EndDrag()
	}
	return len(doomed)
}
