package web

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
	"thirdcoast.systems/streamlens/cmd/web/handlers/common"
)

// embeddingMiddleware controls which host platform pages may iframe the
// overlay and answers their CORS preflights. Unknown parent origins get no
// CORS grant; localhost and private hosts are always allowed so local dev
// needs no configuration.
func (s *Webserver) embeddingMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		origin := c.Request().Header.Get("Origin")
		allowedOrigin := ""
		localOrPrivate := common.IsLocalOrPrivateRequestHost(c.Request())

		if origin != "" {
			if u, err := url.Parse(origin); err == nil && (u.Scheme == "https" || u.Scheme == "http") {
				if localOrPrivate {
					allowedOrigin = origin
				} else if _, ok := s.parentOrigins[origin]; ok {
					allowedOrigin = origin
				}
			}
		}

		if allowedOrigin != "" {
			h := c.Response().Header()
			h.Set("Vary", "Origin")
			h.Set("Access-Control-Allow-Origin", allowedOrigin)
			h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			h.Set("Access-Control-Allow-Headers", "Content-Type, Accept")
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Set("Content-Security-Policy", "frame-ancestors 'self' "+frameAncestors(s.parentOrigins))
		}

		if c.Request().Method == "OPTIONS" {
			if origin != "" && allowedOrigin == "" {
				return c.NoContent(http.StatusForbidden)
			}
			return c.NoContent(http.StatusNoContent)
		}

		err := next(c)

		// Re-apply in case error handling cleared the headers.
		if allowedOrigin != "" {
			if c.Response().Header().Get("Access-Control-Allow-Origin") == "" {
				c.Response().Header().Set("Vary", "Origin")
				c.Response().Header().Set("Access-Control-Allow-Origin", allowedOrigin)
			}
		}

		return err
	}
}

func frameAncestors(origins map[string]struct{}) string {
	if len(origins) == 0 {
		return "http://localhost:*"
	}
	var parts []string
	for o := range origins {
		parts = append(parts, o)
	}
	return strings.Join(parts, " ")
}
