package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dfcamara/gestao-comercial/internal/infra/http/middleware"
	"github.com/dfcamara/gestao-comercial/internal/infra/integration/erp"
	"github.com/dfcamara/gestao-comercial/internal/usecase"
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// respondDetail segue o formato de erro do ERP: {"detail": "..."}.
func respondDetail(w http.ResponseWriter, status int, detail string) {
	respondJSON(w, status, map[string]string{"detail": detail})
}

func respondValidation(w http.ResponseWriter, erros []usecase.ValidationError) {
	respondJSON(w, http.StatusUnprocessableEntity, map[string]any{"erros": erros})
}

// respondErro mapeia a taxonomia de erros para HTTP: regra de negócio
// vira 4xx com a mensagem; o resto é falha do ERP, 502 com o detalhe.
func respondErro(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, erp.ErrClienteNaoEncontrado):
		respondDetail(w, http.StatusNotFound, err.Error())
	case errors.Is(err, usecase.ErrPropostaJaEnviada):
		respondDetail(w, http.StatusConflict, err.Error())
	case usecase.IsDomainError(err):
		respondDetail(w, http.StatusBadRequest, err.Error())
	default:
		middleware.RecordIntegrationError("erp")
		respondDetail(w, http.StatusBadGateway, err.Error())
	}
}
