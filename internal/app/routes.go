package app

import (
	"github.com/gin-gonic/gin"
	"github.com/shortspace/core/internal/middleware"
	"github.com/shortspace/core/internal/modules/analytics"
	"github.com/shortspace/core/internal/modules/auth"
	"github.com/shortspace/core/internal/modules/shortener"
	pkgredis "github.com/shortspace/core/internal/pkg/redis"
	"github.com/shortspace/core/internal/pkg/response"
)

func (a *App) registerRoutes(rc *pkgredis.Client) {
	r := a.router
	db := a.db
	authMW := middleware.Auth()

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	api := r.Group("/api")

	auth.NewHandler(auth.NewService(db)).RegisterRoutes(api)

	shortSvc := shortener.NewService(db, rc)
	shortener.NewHandler(shortSvc, a.recorder, a.cfg.BaseURL).RegisterRoutes(api, authMW)

	analytics.NewHandler(analytics.NewService(db, rc)).RegisterRoutes(api, authMW)
}
