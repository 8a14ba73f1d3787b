package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/builder"
	"resume-builder/internal/services/health"
	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
	"resume-builder/resume/render"
)

// RouterDeps contains handler dependencies for router wiring.
type RouterDeps struct {
	Config         config.Config
	BuilderHandler *builder.Handler
	Health         *health.Service
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	cfg := deps.Config
	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	builder.RegisterPage(r)
	r.GET("/metrics", metrics.Handler())

	limiter := middleware.NewRateLimiter(middleware.RateLimitRule{
		Rate:  cfg.RateLimitRPS,
		Burst: cfg.RateLimitBurst,
	}, nil)

	api := r.Group("/api/v1")
	healthSvc := deps.Health
	if healthSvc == nil {
		healthSvc = health.NewService(render.Default())
	}
	api.GET("/health", func(c *gin.Context) {
		status := healthSvc.Status()
		code := http.StatusOK
		if !status["ok"] {
			code = http.StatusServiceUnavailable
		}
		respond.JSON(c, code, status)
	})

	limited := api.Group("", middleware.RateLimit(limiter))
	if deps.BuilderHandler != nil {
		deps.BuilderHandler.RegisterRoutes(limited)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
