package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mallhub/backend/internal/infrastructure/logger"
	"github.com/mallhub/backend/internal/infrastructure/persistence"
	"go.uber.org/zap"
)

// DatabaseStatus checks that the database is reachable and reports its pool
type DatabaseStatus interface {
	Ping(ctx context.Context) error
	Stats() (persistence.ConnectionStats, error)
}

// PoolResponse is the connection pool section of the health body
// @name PoolResponse
type PoolResponse struct {
	MaxOpen   int   `json:"max_open" example:"25"`
	Open      int   `json:"open" example:"3"`
	InUse     int   `json:"in_use" example:"1"`
	Idle      int   `json:"idle" example:"2"`
	WaitCount int64 `json:"wait_count" example:"0"`
}

// HealthResponse is the body of GET /health
// @name HealthResponse
type HealthResponse struct {
	Status   string        `json:"status" example:"healthy"`
	Time     string        `json:"time" example:"2024-05-01T12:00:00Z"`
	Database string        `json:"database" example:"ok"`
	Pool     *PoolResponse `json:"pool,omitempty"`
}

// HealthHandler reports whether the service can reach its database
type HealthHandler struct {
	db      DatabaseStatus
	timeout time.Duration
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db DatabaseStatus) *HealthHandler {
	return &HealthHandler{db: db, timeout: 2 * time.Second}
}

// Check godoc
// @ID           healthCheck
//
//	@Summary		Health check
//	@Tags			system
//	@Produce		json
//	@Success		200	{object}	HealthResponse
//	@Failure		503	{object}	HealthResponse
//	@Router			/health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	now := time.Now().UTC().Format(time.RFC3339)
	if err := h.db.Ping(ctx); err != nil {
		logger.L(c.Request.Context()).Warn("Health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "unhealthy", Time: now, Database: "error"})
		return
	}

	resp := HealthResponse{Status: "healthy", Time: now, Database: "ok"}
	stats, err := h.db.Stats()
	if err != nil {
		// The database answered; only the pool section is left out.
		logger.L(c.Request.Context()).Debug("Pool stats unavailable", zap.Error(err))
	} else {
		resp.Pool = &PoolResponse{
			MaxOpen:   stats.MaxOpenConnections,
			Open:      stats.OpenConnections,
			InUse:     stats.InUse,
			Idle:      stats.Idle,
			WaitCount: stats.WaitCount,
		}
	}
	c.JSON(http.StatusOK, resp)
}
