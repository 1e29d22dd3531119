// package overlay holds the HTTP surface of the viewer overlay: the SSE
// state stream plus the POST endpoints the overlay page drives it with.
package overlay

import (
	"thirdcoast.systems/streamlens/pkg/drag"
)

// rectPayload mirrors a DOMRect as the page reports it.
type rectPayload struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (r rectPayload) toRect() drag.Rect {
	return drag.Rect{Left: r.Left, Top: r.Top, Width: r.Width, Height: r.Height}
}

// pointerPayload mirrors the page-space pointer coordinates plus the window
// scroll offsets at event time.
type pointerPayload struct {
	PageX   float64 `json:"pageX"`
	PageY   float64 `json:"pageY"`
	ScrollX float64 `json:"scrollX"`
	ScrollY float64 `json:"scrollY"`
}

func (p pointerPayload) toPointer() drag.Pointer {
	return drag.Pointer{PageX: p.PageX, PageY: p.PageY, ScrollX: p.ScrollX, ScrollY: p.ScrollY}
}

type dragStartPayload struct {
	Rect    rectPayload     `json:"rect"`
	Pointer *pointerPayload `json:"pointer"`
}

type dragMovePayload struct {
	Pointer pointerPayload `json:"pointer"`
}
