package overlay

import (
	"github.com/labstack/echo/v4"
	"thirdcoast.systems/streamlens/cmd/web/auth"
	"thirdcoast.systems/streamlens/cmd/web/internal/overlayhub"
)

// HandleEditorDragStart opens a drag session on the editor toggle button.
// The button both moves and clicks: a release with zero accumulated travel
// reads as a click and flips the editor panel.
func HandleEditorDragStart(sm *auth.SessionManager, hub *overlayhub.Hub) echo.HandlerFunc {
	return func(c echo.Context) error {
		var body dragStartPayload
		if err := c.Bind(&body); err != nil {
			return c.String(400, "invalid drag payload")
		}

		viewerID := sm.ViewerID(c.Response(), c.Request())
		if !hub.Get(viewerID).BeginEditorDrag(body.Rect.toRect()) {
			return c.String(409, "another drag is in progress")
		}
		hub.Notify(viewerID)
		return c.NoContent(204)
	}
}

// HandleEditorDragMove feeds one pointer move into the live button drag.
func HandleEditorDragMove(sm *auth.SessionManager, hub *overlayhub.Hub) echo.HandlerFunc {
	return func(c echo.Context) error {
		var body dragMovePayload
		if err := c.Bind(&body); err != nil {
			return c.String(400, "invalid drag payload")
		}

		viewerID := sm.ViewerID(c.Response(), c.Request())
		hub.Get(viewerID).DragMove(overlayhub.HandleEditor, body.Pointer.toPointer())
		hub.Notify(viewerID)
		return c.NoContent(204)
	}
}

// HandleEditorDragStop releases the button; zero-travel releases toggle the
// editor panel.
func HandleEditorDragStop(sm *auth.SessionManager, hub *overlayhub.Hub) echo.HandlerFunc {
	return func(c echo.Context) error {
		viewerID := sm.ViewerID(c.Response(), c.Request())
		hub.Get(viewerID).DragStop(overlayhub.HandleEditor)
		hub.Notify(viewerID)
		return c.NoContent(204)
	}
}

// HandleEditorDragLeave abandons the button drag where it is. Leaving never
// toggles the panel.
func HandleEditorDragLeave(sm *auth.SessionManager, hub *overlayhub.Hub) echo.HandlerFunc {
	return func(c echo.Context) error {
		var body dragMovePayload
		if err := c.Bind(&body); err != nil {
			return c.String(400, "invalid drag payload")
		}

		viewerID := sm.ViewerID(c.Response(), c.Request())
		hub.Get(viewerID).DragLeave(overlayhub.HandleEditor, body.Pointer.toPointer())
		hub.Notify(viewerID)
		return c.NoContent(204)
	}
}
