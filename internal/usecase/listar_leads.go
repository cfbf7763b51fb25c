package usecase

import (
	"context"
	"strings"

	"github.com/dfcamara/gestao-comercial/internal/entity"
)

type ListarLeadsUseCase struct {
	Store ClienteStore
}

func NewListarLeadsUseCase(store ClienteStore) *ListarLeadsUseCase {
	return &ListarLeadsUseCase{Store: store}
}

// Execute busca a lista completa no ERP (sem paginação) e aplica o
// filtro em memória.
func (uc *ListarLeadsUseCase) Execute(ctx context.Context, consulta string) ([]entity.Cliente, error) {
	lista, err := uc.Store.Listar(ctx)
	if err != nil {
		return nil, err
	}
	return FiltrarLeads(lista, consulta), nil
}

// FiltrarLeads é um substring match síncrono, case-insensitive, sobre
// nome, e-mail, CPF, telefone, cidade e bairro. Consulta vazia (ou só
// espaços) devolve a lista intacta, na mesma ordem.
func FiltrarLeads(lista []entity.Cliente, consulta string) []entity.Cliente {
	q := strings.ToLower(strings.TrimSpace(consulta))
	if q == "" {
		return lista
	}

	filtrados := make([]entity.Cliente, 0, len(lista))
	for _, c := range lista {
		if contem(c.Nome, q) || contem(c.Email, q) || contem(c.CPF, q) ||
			contem(c.Telefone, q) || contem(c.Cidade, q) || contem(c.Bairro, q) {
			filtrados = append(filtrados, c)
		}
	}
	return filtrados
}

func contem(campo, q string) bool {
	return strings.Contains(strings.ToLower(campo), q)
}
