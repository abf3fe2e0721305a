package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dealerdesk/dealerdesk/internal/pkg"
)

// RouteDeps holds all dependencies needed to register routes.
type RouteDeps struct {
	Modules []Module
	DB      *gorm.DB
	// AuthMiddleware guards the API group when set. Nil means open access.
	AuthMiddleware gin.HandlerFunc
}

// RegisterRoutes registers all application routes on the given gin.Engine.
func RegisterRoutes(r *gin.Engine, deps *RouteDeps) error {
	if r == nil {
		return errors.New("router is nil")
	}
	if deps == nil {
		return errors.New("route dependencies are nil")
	}
	if len(deps.Modules) == 0 {
		return errors.New("at least one module is required")
	}

	r.GET("/health", healthHandler(deps.DB))

	api := r.Group("/api/v1")
	if deps.AuthMiddleware != nil {
		api.Use(deps.AuthMiddleware)
	}

	for i, m := range deps.Modules {
		if m == nil {
			return fmt.Errorf("module at index %d is nil", i)
		}
		m.RegisterRoutes(api)
	}

	r.NoRoute(noRouteHandler())

	return nil
}

// healthHandler returns a handler that pings the database and reports status.
func healthHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		dbStatus := "ok"
		status := "ok"
		code := http.StatusOK

		ping := func() error {
			if db == nil {
				return errors.New("database not configured")
			}
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
			defer cancel()
			return sqlDB.PingContext(ctx)
		}

		if err := ping(); err != nil {
			dbStatus = "error"
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		c.JSON(code, gin.H{
			"status": status,
			"components": gin.H{
				"database": dbStatus,
			},
		})
	}
}

// noRouteHandler returns the JSON 404 for unknown paths. The service has
// no HTML surface, so API clients and browsers get the same body.
func noRouteHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, pkg.Response{Code: http.StatusNotFound, Message: "not found"})
	}
}
