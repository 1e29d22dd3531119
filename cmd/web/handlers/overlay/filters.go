package overlay

import (
	"net/url"

	"github.com/labstack/echo/v4"
	"thirdcoast.systems/streamlens/cmd/web/auth"
	"thirdcoast.systems/streamlens/cmd/web/internal/overlayhub"
	"thirdcoast.systems/streamlens/pkg/filters"
)

// HandleFilterUpdate ingests one raw control value. The field name rides in
// the path, the raw value in the query string. Unparseable values still
// succeed: the state layer folds them to the field's default.
func HandleFilterUpdate(sm *auth.SessionManager, hub *overlayhub.Hub) echo.HandlerFunc {
	return func(c echo.Context) error {
		field, ok := filters.ParseField(c.Param("field"))
		if !ok {
			return c.String(400, "unknown filter field")
		}

		viewerID := sm.ViewerID(c.Response(), c.Request())
		hub.Get(viewerID).UpdateField(field, c.QueryParam("value"))
		hub.Notify(viewerID)
		return c.NoContent(204)
	}
}

// HandleApplyPreset bulk-applies one catalog preset.
func HandleApplyPreset(sm *auth.SessionManager, hub *overlayhub.Hub) echo.HandlerFunc {
	return func(c echo.Context) error {
		name, err := url.PathUnescape(c.Param("name"))
		if err != nil {
			name = c.Param("name")
		}

		viewerID := sm.ViewerID(c.Response(), c.Request())
		if !hub.Get(viewerID).ApplyPreset(name) {
			return c.String(404, "unknown preset")
		}
		hub.Notify(viewerID)
		return c.NoContent(204)
	}
}

// HandleReset restores the identity filter and clears the gallery search.
func HandleReset(sm *auth.SessionManager, hub *overlayhub.Hub) echo.HandlerFunc {
	return func(c echo.Context) error {
		viewerID := sm.ViewerID(c.Response(), c.Request())
		hub.Get(viewerID).Reset()
		hub.Notify(viewerID)
		return c.NoContent(204)
	}
}

// HandleSearch stores the gallery search term. Matching is hide-only, so an
// empty term restores the full catalog.
func HandleSearch(sm *auth.SessionManager, hub *overlayhub.Hub) echo.HandlerFunc {
	return func(c echo.Context) error {
		term := sanitizer.Sanitize(c.QueryParam("value"))

		viewerID := sm.ViewerID(c.Response(), c.Request())
		hub.Get(viewerID).SetSearchTerm(term)
		hub.Notify(viewerID)
		return c.NoContent(204)
	}
}
