package overlay

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"thirdcoast.systems/streamlens/cmd/web/auth"
)

// HandleSessionReset drops the viewer cookie so the next request mints a
// fresh identity. Server-side state for the old id is left to the stale
// pruner; nothing can reach it once the cookie is gone.
func HandleSessionReset(sm *auth.SessionManager) echo.HandlerFunc {
	return func(c echo.Context) error {
		if id, ok := sm.PeekViewerID(c.Request()); ok {
			slog.Info("viewer session reset", "viewer", id)
		}
		if err := sm.ClearSession(c.Response(), c.Request()); err != nil {
			return c.String(500, "could not clear session")
		}
		return c.NoContent(204)
	}
}
