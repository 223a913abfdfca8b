package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/dk-lineup/internal/cache"
)

// HealthStatus represents the health of the service and its dependencies
type HealthStatus struct {
	Status    string            `json:"status"`
	Service   string            `json:"service"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// HealthHandler handles health check endpoints
type HealthHandler struct {
	cache  *cache.LineupCache
	logger *logrus.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(lineupCache *cache.LineupCache, logger *logrus.Logger) *HealthHandler {
	return &HealthHandler{cache: lineupCache, logger: logger}
}

// GetHealth returns the basic health status
func (h *HealthHandler) GetHealth(c *gin.Context) {
	response := HealthStatus{
		Status:    "ok",
		Service:   "dk-lineup",
		Timestamp: time.Now(),
		Checks:    make(map[string]string),
	}

	// The cache is optional; generation works without it
	if h.cache == nil {
		response.Checks["redis"] = "not_configured"
	} else if _, err := h.cache.Recent(c.Request.Context(), 1); err != nil {
		response.Status = "degraded"
		response.Checks["redis"] = "failed: " + err.Error()
	} else {
		response.Checks["redis"] = "ok"
	}

	c.JSON(http.StatusOK, response)
}
