package overlay

import (
	"context"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/labstack/echo/v4"
	"thirdcoast.systems/streamlens/cmd/web/auth"
	"thirdcoast.systems/streamlens/cmd/web/internal/overlayhub"
	"thirdcoast.systems/streamlens/internal/config"
	"thirdcoast.systems/streamlens/pkg/emotes"
)

type hostContextPayload struct {
	Theme string `json:"theme"`
}

type hostAuthPayload struct {
	Token string `json:"token"`
}

// HandleHostContext ingests a host platform context change. Only the theme
// matters to the overlay; everything else in the host context is noise.
func HandleHostContext(sm *auth.SessionManager, hub *overlayhub.Hub) echo.HandlerFunc {
	return func(c echo.Context) error {
		var body hostContextPayload
		if err := c.Bind(&body); err != nil {
			return c.String(400, "invalid context payload")
		}

		viewerID := sm.ViewerID(c.Response(), c.Request())
		hub.Get(viewerID).SetTheme(emotes.ParseTheme(body.Theme))
		hub.Notify(viewerID)
		return c.NoContent(204)
	}
}

// HandleHostAuthorized ingests the host platform's auth callback. The first
// callback per overlay kicks off emote loading in the background; repeats
// are no-ops. The token is treated as opaque and only forwarded upstream.
func HandleHostAuthorized(sm *auth.SessionManager, hub *overlayhub.Hub, client *emotes.Client, conf *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		var body hostAuthPayload
		if err := c.Bind(&body); err != nil {
			return c.String(400, "invalid auth payload")
		}

		viewerID := sm.ViewerID(c.Response(), c.Request())
		o := hub.Get(viewerID)
		if !o.MarkAuthorized() {
			return c.NoContent(204)
		}

		setIDs := conf.EmoteSets()
		token := body.Token
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			total := 0
			for _, setID := range setIDs {
				resp, err := client.FetchSet(ctx, token, setID)
				if err != nil {
					slog.Warn("emote set fetch failed", "set", setID, "error", err)
					continue
				}
				total += o.IngestEmotes(resp)
			}
			slog.Info("emotes loaded", "viewer", viewerID,
				"sets", len(setIDs), "emotes", humanize.Comma(int64(total)))
			hub.Notify(viewerID)
		}()

		hub.Notify(viewerID)
		return c.NoContent(204)
	}
}
