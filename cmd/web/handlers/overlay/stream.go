package overlay

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/starfederation/datastar-go/datastar"
	"thirdcoast.systems/streamlens/cmd/web/auth"
	"thirdcoast.systems/streamlens/cmd/web/handlers/common"
	"thirdcoast.systems/streamlens/cmd/web/internal/overlayhub"
	"thirdcoast.systems/streamlens/internal/config"
)

// keepAliveEvery re-pushes a full snapshot even when nothing changed, so
// idle connections keep traffic flowing through proxies.
const keepAliveEvery = 30 * time.Second

// HandleOverlayStream streams the viewer's overlay state over SSE. The page
// holds exactly one of these open; every POST endpoint just mutates state
// and wakes the stream, which re-renders from a fresh snapshot.
func HandleOverlayStream(sm *auth.SessionManager, hub *overlayhub.Hub, conf *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		viewerID := sm.ViewerID(c.Response(), c.Request())

		if !hub.AcquireStream(viewerID) {
			return c.String(429, "too many open overlay streams")
		}
		defer hub.ReleaseStream(viewerID)

		if _, ok := c.Response().Writer.(http.Flusher); !ok {
			return c.String(500, "streaming unsupported")
		}

		common.SetSSEHeaders(c)
		sse := datastar.NewSSE(c.Response().Writer, c.Request())

		wake, unsubscribe := hub.Subscribe(viewerID)
		defer unsubscribe()

		o := hub.Get(viewerID)

		push := func() error {
			payload, err := json.Marshal(o.Snapshot())
			if err != nil {
				return err
			}
			if err := sse.PatchSignals(payload); err != nil {
				return err
			}
			if err := sse.PatchElements(renderPresetGallery(o)); err != nil {
				return err
			}
			return sse.PatchElements(renderEmoteGrid(o))
		}

		// One static patch so the page does not hardcode slider ranges.
		if err := sse.PatchElements(renderControls()); err != nil {
			return nil
		}
		// Local dev has no host platform supplying video; put the test
		// channel behind the overlay instead.
		if ch := conf.TestStreamChannel; ch != "" && common.IsLocalOrPrivateRequestHost(c.Request()) {
			if err := sse.PatchElements(renderTestPlayer(ch)); err != nil {
				return nil
			}
		}
		if err := push(); err != nil {
			return nil
		}

		ctx := c.Request().Context()
		ticker := time.NewTicker(keepAliveEvery)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return nil
			case _, ok := <-wake:
				if !ok {
					return nil
				}
				hub.Touch(viewerID, time.Now())
				if err := push(); err != nil {
					slog.Debug("overlay stream closed mid-push", "viewer", viewerID, "error", err)
					return nil
				}
			case <-ticker.C:
				hub.Touch(viewerID, time.Now())
				if err := push(); err != nil {
					return nil
				}
			}
		}
	}
}
