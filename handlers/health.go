package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"saunascout/services"
)

// HealthHandler serves the provider health snapshot.
type HealthHandler struct {
	Monitor *services.HealthMonitor
}

func NewHealthHandler(monitor *services.HealthMonitor) *HealthHandler {
	return &HealthHandler{Monitor: monitor}
}

// Healthz handles GET /healthz. The snapshot comes from the background
// sweep; an empty snapshot just means no sweep has completed yet.
func (h *HealthHandler) Healthz(c *gin.Context) {
	snapshot := h.Monitor.Snapshot()
	status := http.StatusOK
	if snapshot.Unhealthy > 0 && snapshot.Healthy == 0 && len(snapshot.Venues) > 0 {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, snapshot)
}
