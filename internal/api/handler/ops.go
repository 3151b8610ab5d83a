package handler

import (
	"net/http"
	"time"

	"github.com/skycast/skycast/internal/api/models"
	"github.com/skycast/skycast/internal/api/response"
	"github.com/skycast/skycast/internal/provider/resilience"
)

// OpsHandler handles operational endpoints.
type OpsHandler struct {
	version   string
	buildTime string
	registry  *resilience.Registry
}

// NewOpsHandler creates a new OpsHandler.
func NewOpsHandler(version, buildTime string, registry *resilience.Registry) *OpsHandler {
	return &OpsHandler{
		version:   version,
		buildTime: buildTime,
		registry:  registry,
	}
}

// HealthCheck handles GET /v1/ops/health - liveness check.
func (h *OpsHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := models.Health{
		Status: models.HealthStatusOK,
		Time:   models.Timestamp(time.Now()),
		Details: map[string]interface{}{
			"version":   h.version,
			"buildTime": h.buildTime,
		},
	}
	response.JSON(w, r, http.StatusOK, health)
}

// ReadinessCheck handles GET /v1/ops/ready - readiness check. The service
// holds no stateful dependencies, so readiness follows liveness.
func (h *OpsHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	health := models.Health{
		Status: models.HealthStatusOK,
		Time:   models.Timestamp(time.Now()),
	}
	response.JSON(w, r, http.StatusOK, health)
}

// SystemStatus handles GET /v1/ops/status - upstream provider status.
func (h *OpsHandler) SystemStatus(w http.ResponseWriter, r *http.Request) {
	overall := models.HealthStatusOK

	var upstreams []models.UpstreamStatus
	if h.registry != nil {
		for _, uh := range h.registry.GetAllHealth() {
			status := models.HealthStatusOK
			switch {
			case uh.IsDegraded():
				status = models.HealthStatusDegraded
			case !uh.IsHealthy():
				status = models.HealthStatusFail
			}
			if status != models.HealthStatusOK && overall == models.HealthStatusOK {
				overall = models.HealthStatusDegraded
			}

			entry := models.UpstreamStatus{
				Provider:     uh.Name,
				Status:       status,
				CircuitState: uh.CircuitState.String(),
				FailureCount: int(uh.Counts.TotalFailures),
			}
			if uh.LastSuccessAt != nil {
				ts := models.Timestamp(*uh.LastSuccessAt)
				entry.LastSuccessAt = &ts
			}
			if uh.LastFailureAt != nil {
				ts := models.Timestamp(*uh.LastFailureAt)
				entry.LastFailureAt = &ts
			}
			upstreams = append(upstreams, entry)
		}
	}

	status := models.SystemStatus{
		Status:    overall,
		Time:      models.Timestamp(time.Now()),
		Upstreams: upstreams,
	}
	response.JSON(w, r, http.StatusOK, status)
}
