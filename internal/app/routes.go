package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tyredepot/admin/internal/pkg"
)

// RouteDeps holds all dependencies needed to register routes.
type RouteDeps struct {
	Modules []Module
	DB      *gorm.DB
	Auth    gin.HandlerFunc
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
	if deps.Auth == nil {
		return errors.New("auth middleware is required")
	}

	// Health check
	r.GET("/health", healthHandler(deps.DB))

	// All business routes live under /api/v1. The login flow is the only
	// public surface; everything else requires a valid admin token.
	public := r.Group("/api/v1")
	protected := r.Group("/api/v1")
	protected.Use(deps.Auth)

	for i, m := range deps.Modules {
		if m == nil {
			return fmt.Errorf("module at index %d is nil", i)
		}
		m.RegisterRoutes(public, protected)
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

		if db == nil {
			dbStatus = "error"
			status = "degraded"
			code = http.StatusServiceUnavailable
			c.JSON(code, gin.H{
				"status": status,
				"components": gin.H{
					"database": dbStatus,
				},
			})
			return
		}

		sqlDB, err := db.DB()
		if err != nil {
			dbStatus = "error"
			status = "degraded"
			code = http.StatusServiceUnavailable
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
			defer cancel()
			err = sqlDB.PingContext(ctx)
			if err != nil {
				dbStatus = "error"
				status = "degraded"
				code = http.StatusServiceUnavailable
			}
		}

		c.JSON(code, gin.H{
			"status": status,
			"components": gin.H{
				"database": dbStatus,
			},
		})
	}
}

// noRouteHandler returns a JSON 404 for unknown paths.
func noRouteHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, pkg.Response{Code: http.StatusNotFound, Message: "not found"})
	}
}
