package usecase

import (
	"context"

	"github.com/dfcamara/gestao-comercial/internal/format"
)

type CriarClienteUseCase struct {
	Store ClienteStore
}

func NewCriarClienteUseCase(store ClienteStore) *CriarClienteUseCase {
	return &CriarClienteUseCase{Store: store}
}

// Execute valida e cadastra um lead. Erros de validação voltam na
// primeira posição e nenhuma chamada de rede acontece nesse caso.
func (uc *CriarClienteUseCase) Execute(ctx context.Context, input ClienteInput) ([]ValidationError, error) {
	if erros := ValidarCliente(input); len(erros) > 0 {
		return erros, nil
	}

	cliente := paraEntidade(format.OnlyDigits(input.CPF), input)
	if err := uc.Store.Criar(ctx, cliente); err != nil {
		return nil, err
	}
	return nil, nil
}
