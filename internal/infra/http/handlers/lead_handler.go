package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dfcamara/gestao-comercial/internal/format"
	"github.com/dfcamara/gestao-comercial/internal/infra/http/middleware"
	"github.com/dfcamara/gestao-comercial/internal/usecase"
)

// LeadHandler cobre as ações do painel de leads: listar/filtrar,
// enviar proposta e gerar contrato.
type LeadHandler struct {
	ListarUC   *usecase.ListarLeadsUseCase
	PropostaUC *usecase.EnviarPropostaUseCase
	ContratoUC *usecase.GerarContratoUseCase
	Store      usecase.ClienteStore
}

func NewLeadHandler(
	listar *usecase.ListarLeadsUseCase,
	proposta *usecase.EnviarPropostaUseCase,
	contrato *usecase.GerarContratoUseCase,
	store usecase.ClienteStore,
) *LeadHandler {
	return &LeadHandler{
		ListarUC:   listar,
		PropostaUC: proposta,
		ContratoUC: contrato,
		Store:      store,
	}
}

// HandleListar (GET /leads?q=)
func (h *LeadHandler) HandleListar(w http.ResponseWriter, r *http.Request) {
	leads, err := h.ListarUC.Execute(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		respondErro(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"clientes": leads})
}

// HandleProposta (POST /leads/{cpf}/proposta) devolve o deep link que
// o front abre no WhatsApp. Proposta repetida é recusada com 409.
func (h *LeadHandler) HandleProposta(w http.ResponseWriter, r *http.Request) {
	cpfKey := format.OnlyDigits(chi.URLParam(r, "cpf"))

	cliente, err := h.Store.Buscar(r.Context(), cpfKey)
	if err != nil {
		respondErro(w, err)
		return
	}

	output, err := h.PropostaUC.Execute(r.Context(), cliente)
	if err != nil {
		respondErro(w, err)
		return
	}

	middleware.RecordProposta()
	respondJSON(w, http.StatusOK, output)
}

type contratoRequest struct {
	Aceito bool   `json:"aceito"`
	Motivo string `json:"motivo"`
}

// HandleContrato (POST /leads/{cpf}/contrato)
func (h *LeadHandler) HandleContrato(w http.ResponseWriter, r *http.Request) {
	var req contratoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondDetail(w, http.StatusBadRequest, "JSON inválido: "+err.Error())
		return
	}

	cpfKey := format.OnlyDigits(chi.URLParam(r, "cpf"))
	cliente, err := h.Store.Buscar(r.Context(), cpfKey)
	if err != nil {
		respondErro(w, err)
		return
	}

	output, err := h.ContratoUC.Execute(r.Context(), cliente, req.Aceito, req.Motivo)
	if err != nil {
		respondErro(w, err)
		return
	}

	if output.Recusado {
		middleware.RecordContrato("recusado")
	} else {
		middleware.RecordContrato("aceito")
	}
	respondJSON(w, http.StatusOK, output)
}
