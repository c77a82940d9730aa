package api

import (
	"net/http"

	"github.com/clinicdesk/clinic-scheduling/internal/clinic"
	"github.com/clinicdesk/clinic-scheduling/internal/schedule"
)

type HealthHandler struct {
	svc     *schedule.Service
	env     string
	version string
}

func NewHealthHandler(svc *schedule.Service, env, version string) *HealthHandler {
	return &HealthHandler{svc: svc, env: env, version: version}
}

type LivenessResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
	Env     string `json:"env,omitempty"`
}

type ReadinessResponse struct {
	Status      string `json:"status"`
	Version     string `json:"version,omitempty"`
	Env         string `json:"env,omitempty"`
	Providers   int    `json:"providers"`
	Technicians int    `json:"technicians"`
}

func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, LivenessResponse{
		Status:  "ok",
		Version: h.version,
		Env:     h.env,
	})
}

// Readiness reports whether a usable roster is loaded. With no providers
// every booking would fail, so an empty roster is a deployment error.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	providers := h.svc.Providers()
	technicians := 0
	for _, p := range providers {
		if p.Kind == clinic.KindTechnician {
			technicians++
		}
	}

	resp := ReadinessResponse{
		Status:      "ok",
		Version:     h.version,
		Env:         h.env,
		Providers:   len(providers),
		Technicians: technicians,
	}

	status := http.StatusOK
	if len(providers) == 0 {
		resp.Status = "error"
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, resp)
}
