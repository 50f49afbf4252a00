package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Pinger is an optional dependency whose reachability is reported by the health checks
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles health check endpoints
type HealthHandler struct {
	db       *gorm.DB
	notifier Pinger
}

// NewHealthHandler creates a new health handler. A nil notifier is reported as disabled.
func NewHealthHandler(db *gorm.DB, notifier Pinger) *HealthHandler {
	return &HealthHandler{
		db:       db,
		notifier: notifier,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}

// ReadyResponse represents the readiness check response
type ReadyResponse struct {
	Ready     bool              `json:"ready"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

const pingTimeout = 2 * time.Second

// Health returns the health status of the application
// @Summary Health check
// @Description Get the overall health status of the application including database connectivity
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} HealthResponse "Application is healthy"
// @Failure 503 {object} HealthResponse "Application is unhealthy"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	services, up := h.check(c.Request.Context())

	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   "1.0.0",
		Services:  services,
	}
	if !up {
		response.Status = "unhealthy"
	}
	c.JSON(statusFor(up), response)
}

// Ready returns the readiness status of the application
// @Summary Readiness check
// @Description Check if the application is ready to serve requests
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is ready"
// @Failure 503 {object} map[string]interface{} "Application is not ready"
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	services, up := h.check(c.Request.Context())
	c.JSON(statusFor(up), ReadyResponse{
		Ready:     up,
		Timestamp: time.Now(),
		Services:  services,
	})
}

// Live returns the liveness status of the application
// @Summary Liveness check
// @Description Check if the application is alive and responding
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is alive"
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"alive":     true,
		"timestamp": time.Now(),
	})
}

// check reports every dependency; only the database decides whether the service is up
func (h *HealthHandler) check(ctx context.Context) (map[string]string, bool) {
	services := map[string]string{
		"database":      "healthy",
		"notifications": "disabled",
	}

	up := true
	if err := h.pingDatabase(ctx); err != nil {
		up = false
		services["database"] = "error: " + err.Error()
	}

	if h.notifier != nil {
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()
		if err := h.notifier.Ping(pingCtx); err != nil {
			services["notifications"] = "degraded: " + err.Error()
		} else {
			services["notifications"] = "healthy"
		}
	}
	return services, up
}

func (h *HealthHandler) pingDatabase(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

func statusFor(up bool) int {
	if up {
		return http.StatusOK
	}
	return http.StatusServiceUnavailable
}
