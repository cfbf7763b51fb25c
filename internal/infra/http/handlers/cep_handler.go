package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dfcamara/gestao-comercial/internal/infra/http/middleware"
	"github.com/dfcamara/gestao-comercial/internal/infra/integration/viacep"
	"github.com/dfcamara/gestao-comercial/internal/usecase"
)

// CEPHandler atende o blur do campo de CEP do formulário.
type CEPHandler struct {
	Buscador usecase.BuscadorCEP
}

func NewCEPHandler(buscador usecase.BuscadorCEP) *CEPHandler {
	return &CEPHandler{Buscador: buscador}
}

// HandleBuscar (GET /cep/{cep}). "Não encontrado" e "CEP malformado"
// voltam como erro de campo; falha de rede vira 502, tentável de novo.
func (h *CEPHandler) HandleBuscar(w http.ResponseWriter, r *http.Request) {
	endereco, err := h.Buscador.Buscar(r.Context(), chi.URLParam(r, "cep"))
	if err != nil {
		switch {
		case errors.Is(err, viacep.ErrCEPInvalido), errors.Is(err, viacep.ErrCEPNaoEncontrado):
			respondJSON(w, http.StatusUnprocessableEntity, map[string]any{
				"erros": []usecase.ValidationError{{Campo: "cep", Mensagem: err.Error() + "."}},
			})
		default:
			middleware.RecordIntegrationError("viacep")
			respondDetail(w, http.StatusBadGateway, "Erro ao buscar o CEP. Tente novamente.")
		}
		return
	}
	respondJSON(w, http.StatusOK, endereco)
}
