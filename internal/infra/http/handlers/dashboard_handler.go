package handlers

import (
	"net/http"

	"github.com/dfcamara/gestao-comercial/internal/usecase"
)

type DashboardHandler struct {
	UC *usecase.DashboardUseCase
}

func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{UC: uc}
}

// Handle (GET /dashboard). Sempre 200: cada seção carrega seu próprio
// erro, uma fonte fora do ar não apaga as demais.
func (h *DashboardHandler) Handle(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.UC.Execute(r.Context()))
}
