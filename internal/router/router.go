package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/yoones-dev/portfolio-api/internal/handlers"
	"github.com/yoones-dev/portfolio-api/internal/middleware"
	"github.com/yoones-dev/portfolio-api/internal/types"
)

// Route is one entry of the routing table. Everything is protected
// unless explicitly marked public; the dispatcher consults the flag
// before attaching the auth middleware.
type Route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Public  bool
}

func routes(h *handlers.Handler) []Route {
	return []Route{
		{http.MethodGet, "/health", handlers.HealthCheck, true},

		{http.MethodPost, "/auth/register", h.Register, true},
		{http.MethodPost, "/auth/login", h.Login, true},
		{http.MethodGet, "/auth/me", h.Me, false},

		{http.MethodGet, "/frameworks", h.ListFrameworks, true},
		{http.MethodPost, "/frameworks", h.CreateFramework, false},
		{http.MethodPut, "/frameworks/:id", h.UpdateFramework, false},
		{http.MethodDelete, "/frameworks/:id", h.DeleteFramework, false},

		{http.MethodGet, "/projects", h.ListProjects, true},
		{http.MethodPost, "/projects", h.CreateProject, false},
		{http.MethodDelete, "/projects/disassociate", h.DisassociateFramework, false},
		{http.MethodPut, "/projects/:id", h.UpdateProject, false},
		{http.MethodDelete, "/projects/:id", h.DeleteProject, false},

		{http.MethodPost, "/messages", h.CreateMessage, true},
	}
}

func NewRouter(h *handlers.Handler) *gin.Engine {
	r := gin.New()
	r.Use(requestLogger(), gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	authRequired := middleware.AuthMiddleware()

	for _, route := range routes(h) {
		if route.Public {
			r.Handle(route.Method, route.Path, route.Handler)
		} else {
			r.Handle(route.Method, route.Path, authRequired, route.Handler)
		}
	}

	return r
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()
		c.Next()

		log.Debug().
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(startTime)).
			Str("ip", c.ClientIP()).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("")
	}
}
