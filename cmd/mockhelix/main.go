// mockhelix is a tiny stand-in for the upstream emote API, used for local
// overlay development so no real credentials are needed.
package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"thirdcoast.systems/streamlens/pkg/emotes"
)

const template = "https://static-cdn.jtvnw.net/emoticons/v2/{{id}}/{{format}}/{{theme_mode}}/{{scale}}"

var globalSet = emotes.SetResponse{
	Data: []emotes.APIRecord{
		{ID: "25", Name: "Kappa", Format: []string{"static"}, Scale: []string{"1.0", "2.0", "3.0"}, ThemeMode: []string{"light", "dark"}},
		{ID: "88", Name: "PogChamp", Format: []string{"static"}, Scale: []string{"1.0", "2.0"}, ThemeMode: []string{"light", "dark"}},
		{ID: "354", Name: "4Head", Format: []string{"static"}, Scale: []string{"1.0"}, ThemeMode: []string{"light"}},
	},
	Template: template,
}

var channelSets = map[string]emotes.SetResponse{
	"301590448": {
		Data: []emotes.APIRecord{
			{ID: "301590448", Name: "streamerWave", Format: []string{"static", "animated"}, Scale: []string{"1.0", "2.0", "3.0"}, ThemeMode: []string{"light", "dark"}},
			{ID: "301590449", Name: "streamerHype", Format: []string{"animated"}, Scale: []string{"1.0", "2.0"}, ThemeMode: []string{"dark"}},
		},
		Template: template,
	},
}

func main() {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.GET("/chat/emotes/global", func(c echo.Context) error {
		return c.JSON(http.StatusOK, globalSet)
	})

	e.GET("/chat/emotes/set", func(c echo.Context) error {
		setID := c.QueryParam("emote_set_id")
		set, ok := channelSets[setID]
		if !ok {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "emote set not found"})
		}
		return c.JSON(http.StatusOK, set)
	})

	addr := os.Getenv("MOCKHELIX_ADDR")
	if addr == "" {
		addr = ":8090"
	}

	slog.Info("mockhelix listening", "addr", addr)
	if err := e.Start(addr); err != nil {
		slog.Error("mockhelix failed", "error", err)
		os.Exit(1)
	}
}
