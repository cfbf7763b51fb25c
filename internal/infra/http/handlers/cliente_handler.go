package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dfcamara/gestao-comercial/internal/format"
	"github.com/dfcamara/gestao-comercial/internal/usecase"
)

// ClienteHandler cobre o ciclo de vida do cadastro: criar, carregar,
// alterar e excluir.
type ClienteHandler struct {
	CriarUC   *usecase.CriarClienteUseCase
	AlterarUC *usecase.AlterarClienteUseCase
	ExcluirUC *usecase.ExcluirClienteUseCase
	Store     usecase.ClienteStore
}

func NewClienteHandler(
	criar *usecase.CriarClienteUseCase,
	alterar *usecase.AlterarClienteUseCase,
	excluir *usecase.ExcluirClienteUseCase,
	store usecase.ClienteStore,
) *ClienteHandler {
	return &ClienteHandler{
		CriarUC:   criar,
		AlterarUC: alterar,
		ExcluirUC: excluir,
		Store:     store,
	}
}

// HandleCriar (POST /leads)
func (h *ClienteHandler) HandleCriar(w http.ResponseWriter, r *http.Request) {
	var input usecase.ClienteInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondDetail(w, http.StatusBadRequest, "JSON inválido: "+err.Error())
		return
	}

	erros, err := h.CriarUC.Execute(r.Context(), input)
	if len(erros) > 0 {
		respondValidation(w, erros)
		return
	}
	if err != nil {
		respondErro(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"mensagem": "Lead cadastrado com sucesso."})
}

// HandleBuscar (GET /leads/{cpf}) carrega o cadastro para a edição.
func (h *ClienteHandler) HandleBuscar(w http.ResponseWriter, r *http.Request) {
	cpfKey := format.OnlyDigits(chi.URLParam(r, "cpf"))

	cliente, err := h.Store.Buscar(r.Context(), cpfKey)
	if err != nil {
		respondErro(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"cliente": cliente})
}

// HandleAlterar (PUT /leads/{cpf})
func (h *ClienteHandler) HandleAlterar(w http.ResponseWriter, r *http.Request) {
	var input usecase.ClienteInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondDetail(w, http.StatusBadRequest, "JSON inválido: "+err.Error())
		return
	}

	erros, err := h.AlterarUC.Execute(r.Context(), chi.URLParam(r, "cpf"), input)
	if len(erros) > 0 {
		respondValidation(w, erros)
		return
	}
	if err != nil {
		respondErro(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"mensagem": "Cliente alterado com sucesso."})
}

type excluirRequest struct {
	Confirmado bool `json:"confirmado"`
}

// HandleExcluir (DELETE /leads/{cpf}) só segue com confirmação
// explícita do chamador.
func (h *ClienteHandler) HandleExcluir(w http.ResponseWriter, r *http.Request) {
	var req excluirRequest
	if r.Body != nil {
		json.NewDecoder(r.Body).Decode(&req)
	}

	if err := h.ExcluirUC.Execute(r.Context(), chi.URLParam(r, "cpf"), req.Confirmado); err != nil {
		respondErro(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"mensagem": "Cliente excluído com sucesso."})
}
