package web

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"thirdcoast.systems/streamlens/cmd/web/auth"
	overlayhandlers "thirdcoast.systems/streamlens/cmd/web/handlers/overlay"
	"thirdcoast.systems/streamlens/cmd/web/internal/overlayhub"
	staticpkg "thirdcoast.systems/streamlens/cmd/web/internal/web/utils/static"
	"thirdcoast.systems/streamlens/internal/config"
	"thirdcoast.systems/streamlens/pkg/emotes"
)

type Webserver struct {
	*echo.Echo
	conf           *config.Config
	sessionManager *auth.SessionManager
	hub            *overlayhub.Hub
	emoteClient    *emotes.Client
	staticCache    *staticpkg.StaticCache
	parentOrigins  map[string]struct{}
}

func NewWebserver(conf *config.Config, hub *overlayhub.Hub) (*Webserver, error) {
	e := echo.New()

	staticCache, err := staticpkg.NewStaticCache()
	if err != nil {
		return nil, err
	}

	webserver := &Webserver{
		Echo:           e,
		conf:           conf,
		sessionManager: auth.NewSessionManager(conf.SessionSecret),
		hub:            hub,
		emoteClient:    emotes.NewClient(conf.EmoteAPIBaseURL, conf.EmoteClientID),
		staticCache:    staticCache,
		parentOrigins:  toSet(conf.ParentOrigins()),
	}

	if len(webserver.parentOrigins) == 0 {
		slog.Info("ALLOWED_PARENT_ORIGINS not set; embedding allowed only from localhost/private hosts")
	}

	webserver.registerRoutes()
	webserver.setupMiddleware()

	return webserver, nil
}

func toSet(list []string) map[string]struct{} {
	set := map[string]struct{}{}
	for _, v := range list {
		set[v] = struct{}{}
	}
	return set
}

func (s *Webserver) setupMiddleware() {
	s.HideBanner = true
	s.HidePort = true
	s.Use(middleware.BodyLimit("2M"))
	s.Use(middleware.Recover())
	s.Use(middleware.RequestID())
	s.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
	}))
	s.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		Skipper: func(c echo.Context) bool {
			// High-frequency paths: the SSE stream and drag moves would
			// drown the log.
			switch c.Path() {
			case "/api/overlay/stream",
				"/api/overlay/divider/drag/move",
				"/api/overlay/editor/drag/move":
				return true
			default:
				return false
			}
		},
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  false,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"remote_ip", v.RemoteIP,
				"request_id", v.RequestID,
			}
			if v.Error != nil {
				fields = append(fields, "error", v.Error)
			}
			slog.Info("request", fields...)
			return nil
		},
	}))
	s.Use(s.embeddingMiddleware)
}

func (s *Webserver) registerRoutes() {
	sm := s.sessionManager

	apiGroup := s.Group("/api/overlay")
	apiGroup.GET("/stream", overlayhandlers.HandleOverlayStream(sm, s.hub, s.conf))

	apiGroup.POST("/filter/:field", overlayhandlers.HandleFilterUpdate(sm, s.hub))
	apiGroup.POST("/preset/:name", overlayhandlers.HandleApplyPreset(sm, s.hub))
	apiGroup.POST("/reset", overlayhandlers.HandleReset(sm, s.hub))
	apiGroup.POST("/search", overlayhandlers.HandleSearch(sm, s.hub))

	apiGroup.POST("/divider/toggle", overlayhandlers.HandleDividerToggle(sm, s.hub))
	apiGroup.POST("/divider/side/:side", overlayhandlers.HandleDividerSide(sm, s.hub))
	apiGroup.POST("/divider/drag/start", overlayhandlers.HandleDividerDragStart(sm, s.hub))
	apiGroup.POST("/divider/drag/move", overlayhandlers.HandleDividerDragMove(sm, s.hub))
	apiGroup.POST("/divider/drag/stop", overlayhandlers.HandleDividerDragStop(sm, s.hub))
	apiGroup.POST("/divider/drag/leave", overlayhandlers.HandleDividerDragLeave(sm, s.hub))

	apiGroup.POST("/editor/drag/start", overlayhandlers.HandleEditorDragStart(sm, s.hub))
	apiGroup.POST("/editor/drag/move", overlayhandlers.HandleEditorDragMove(sm, s.hub))
	apiGroup.POST("/editor/drag/stop", overlayhandlers.HandleEditorDragStop(sm, s.hub))
	apiGroup.POST("/editor/drag/leave", overlayhandlers.HandleEditorDragLeave(sm, s.hub))

	apiGroup.POST("/session/reset", overlayhandlers.HandleSessionReset(sm))

	apiGroup.POST("/host/context", overlayhandlers.HandleHostContext(sm, s.hub))
	apiGroup.POST("/host/authorized", overlayhandlers.HandleHostAuthorized(sm, s.hub, s.emoteClient, s.conf))

	// Health check
	s.GET("/healthz", func(c echo.Context) error {
		return c.String(200, "ok")
	})

	// Static file serving
	s.GET("/static/*", s.staticCache.ServeStaticFile("/static/"))

	// The overlay page itself; the host platform iframes this.
	s.GET("/overlay", s.staticCache.ServePage("overlay.html"))
	s.GET("/", s.staticCache.ServePage("overlay.html"))
}
