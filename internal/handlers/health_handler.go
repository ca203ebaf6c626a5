package handlers

import (
	"context"
	"net/http"
	"time"

	"eventhub/internal/errors"
	"eventhub/internal/models"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

const healthPingTimeout = 2 * time.Second

// HealthCheckHandler reports whether the store is reachable and migrated
type HealthCheckHandler struct {
	db *gorm.DB
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(db *gorm.DB) *HealthCheckHandler {
	return &HealthCheckHandler{db: db}
}

// HealthCheck pings the database and checks the sales ledger table exists
// @Summary Health check
// @Description Database connectivity and schema status
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,time=string,database_ms=int} "Service is healthy"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Database unreachable or not migrated"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("database connection failed"))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), healthPingTimeout)
	defer cancel()

	started := time.Now()
	if err := sqlDB.PingContext(ctx); err != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("database connection failed"))
	}
	latency := time.Since(started)

	if !h.db.Migrator().HasTable(&models.SalesRecord{}) {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("database schema not migrated"))
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "healthy",
		"time":        time.Now().UTC().Format(time.RFC3339),
		"database_ms": latency.Milliseconds(),
	})
}
