package overlay

import (
	"github.com/labstack/echo/v4"
	"thirdcoast.systems/streamlens/cmd/web/auth"
	"thirdcoast.systems/streamlens/cmd/web/internal/overlayhub"
	"thirdcoast.systems/streamlens/pkg/divider"
	"thirdcoast.systems/streamlens/pkg/drag"
)

// HandleDividerToggle flips the comparison divider on or off. Requests that
// land mid-animation are dropped rather than queued.
func HandleDividerToggle(sm *auth.SessionManager, hub *overlayhub.Hub) echo.HandlerFunc {
	return func(c echo.Context) error {
		viewerID := sm.ViewerID(c.Response(), c.Request())
		if !hub.Get(viewerID).Divider().Toggle() {
			return c.String(409, "divider is animating")
		}
		hub.Notify(viewerID)
		return c.NoContent(204)
	}
}

// HandleDividerSide picks which side of the divider the filter covers.
func HandleDividerSide(sm *auth.SessionManager, hub *overlayhub.Hub) echo.HandlerFunc {
	return func(c echo.Context) error {
		side := divider.Side(c.Param("side"))
		if side != divider.SideLeft && side != divider.SideRight {
			return c.String(400, "invalid side")
		}

		viewerID := sm.ViewerID(c.Response(), c.Request())
		if !hub.Get(viewerID).Divider().SetFilterSide(side) {
			return c.String(409, "divider is not active")
		}
		hub.Notify(viewerID)
		return c.NoContent(204)
	}
}

// HandleDividerDragStart opens a drag session on the divider handle. The
// page reports the video container rect and the pointer at press time, so
// the divider jumps under the pointer immediately.
func HandleDividerDragStart(sm *auth.SessionManager, hub *overlayhub.Hub) echo.HandlerFunc {
	return func(c echo.Context) error {
		var body dragStartPayload
		if err := c.Bind(&body); err != nil {
			return c.String(400, "invalid drag payload")
		}

		var initial *drag.Pointer
		if body.Pointer != nil {
			p := body.Pointer.toPointer()
			initial = &p
		}

		viewerID := sm.ViewerID(c.Response(), c.Request())
		if !hub.Get(viewerID).BeginDividerDrag(body.Rect.toRect(), initial) {
			return c.String(409, "divider is not draggable")
		}
		hub.Notify(viewerID)
		return c.NoContent(204)
	}
}

// HandleDividerDragMove feeds one pointer move into the live divider drag.
func HandleDividerDragMove(sm *auth.SessionManager, hub *overlayhub.Hub) echo.HandlerFunc {
	return func(c echo.Context) error {
		var body dragMovePayload
		if err := c.Bind(&body); err != nil {
			return c.String(400, "invalid drag payload")
		}

		viewerID := sm.ViewerID(c.Response(), c.Request())
		hub.Get(viewerID).DragMove(overlayhub.HandleDivider, body.Pointer.toPointer())
		hub.Notify(viewerID)
		return c.NoContent(204)
	}
}

// HandleDividerDragStop releases the divider drag in place.
func HandleDividerDragStop(sm *auth.SessionManager, hub *overlayhub.Hub) echo.HandlerFunc {
	return func(c echo.Context) error {
		viewerID := sm.ViewerID(c.Response(), c.Request())
		hub.Get(viewerID).DragStop(overlayhub.HandleDivider)
		hub.Notify(viewerID)
		return c.NoContent(204)
	}
}

// HandleDividerDragLeave ends the drag because the pointer left the video
// container; near-edge positions snap to the edge.
func HandleDividerDragLeave(sm *auth.SessionManager, hub *overlayhub.Hub) echo.HandlerFunc {
	return func(c echo.Context) error {
		var body dragMovePayload
		if err := c.Bind(&body); err != nil {
			return c.String(400, "invalid drag payload")
		}

		viewerID := sm.ViewerID(c.Response(), c.Request())
		hub.Get(viewerID).DragLeave(overlayhub.HandleDivider, body.Pointer.toPointer())
		hub.Notify(viewerID)
		return c.NoContent(204)
	}
}
