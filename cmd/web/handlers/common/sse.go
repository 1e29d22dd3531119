package common

import (
	"github.com/labstack/echo/v4"
)

// SetSSEHeaders configures the response for a long-lived event stream.
// X-Accel-Buffering stops nginx from buffering the stream when the service
// runs behind a reverse proxy.
func SetSSEHeaders(c echo.Context) {
	h := c.Response().Header()
	h.Set(echo.HeaderContentType, "text/event-stream")
	h.Set(echo.HeaderCacheControl, "no-cache")
	h.Set(echo.HeaderConnection, "keep-alive")
	h.Set("X-Accel-Buffering", "no")
}
