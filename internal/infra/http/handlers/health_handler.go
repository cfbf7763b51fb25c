package handlers

import (
	"net/http"
	"time"

	"github.com/dfcamara/gestao-comercial/internal/infra/persistence"
)

type HealthHandler struct {
	ERPBaseURL string
	Motivos    *persistence.MotivoStore
	StartTime  time.Time
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

func NewHealthHandler(erpBaseURL string, motivos *persistence.MotivoStore) *HealthHandler {
	return &HealthHandler{
		ERPBaseURL: erpBaseURL,
		Motivos:    motivos,
		StartTime:  time.Now(),
	}
}

func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	deps := make(map[string]string)

	if h.ERPBaseURL != "" {
		deps["erp"] = "configured"
	} else {
		deps["erp"] = "not configured"
	}

	if h.Motivos != nil {
		if _, err := h.Motivos.Buscar("healthcheck"); err != nil {
			deps["motivos"] = "unhealthy: " + err.Error()
		} else {
			deps["motivos"] = "healthy"
		}
	} else {
		deps["motivos"] = "not configured"
	}

	status := "healthy"
	for _, v := range deps {
		if v != "healthy" && v != "configured" && v != "not configured" {
			status = "degraded"
			break
		}
	}

	response := HealthResponse{
		Status:       status,
		Version:      "1.0.0",
		Uptime:       time.Since(h.StartTime).Round(time.Second).String(),
		Dependencies: deps,
	}

	if status == "degraded" {
		respondJSON(w, http.StatusServiceUnavailable, response)
		return
	}
	respondJSON(w, http.StatusOK, response)
}
