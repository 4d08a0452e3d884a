package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"

	storagePingTimeout = 2 * time.Second
)

// Pinger reports whether the storage backend is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthResponse is served by GET /health. Checks maps each dependency to
// "ok", "not configured" or the error it returned.
type HealthResponse struct {
	Status  string            `json:"status"`
	Time    string            `json:"time"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks"`
}

type HealthController struct {
	storage Pinger
	version string
}

func NewHealthController(storage Pinger, version string) *HealthController {
	return &HealthController{storage: storage, version: version}
}

// Status pings the storage backend and answers 503 when it is unreachable.
// GET /health
func (h *HealthController) Status(c *gin.Context) {
	check, ok := h.pingStorage(c.Request.Context())
	resp := HealthResponse{
		Status:  statusHealthy,
		Time:    time.Now().UTC().Format(time.RFC3339),
		Version: h.version,
		Checks:  map[string]string{"database": check},
	}

	code := http.StatusOK
	if !ok {
		resp.Status = statusUnhealthy
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, resp)
}

func (h *HealthController) pingStorage(ctx context.Context) (string, bool) {
	if h.storage == nil {
		return "not configured", true
	}
	ctx, cancel := context.WithTimeout(ctx, storagePingTimeout)
	defer cancel()
	if err := h.storage.Ping(ctx); err != nil {
		log.WithError(err).Warn("Storage ping failed")
		return "error: " + err.Error(), false
	}
	return "ok", true
}

// Ping is a liveness probe that never touches storage.
// GET /ping
func (h *HealthController) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}
