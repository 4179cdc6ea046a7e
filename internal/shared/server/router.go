package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mentorcv-backend/internal/analyses"
	"mentorcv-backend/internal/intake"
	"mentorcv-backend/internal/shared/config"
	"mentorcv-backend/internal/shared/metrics"
	"mentorcv-backend/internal/shared/server/middleware"
)

// RouterDeps carries everything the router mounts.
type RouterDeps struct {
	Config   config.Config
	Upload   *intake.Handler
	Analyses *analyses.Handler
}

// NewRouter builds the gin engine with the middleware chain and routes.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(deps.Config.CORSAllowOrigin))

	r.GET("/metrics", metrics.Handler())

	v1 := r.Group("/api/v1")
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "env": deps.Config.Env})
	})
	deps.Upload.RegisterRoutes(v1)
	deps.Analyses.RegisterRoutes(v1)

	return r
}
