package usecase

import (
	"context"

	"github.com/dfcamara/gestao-comercial/internal/format"
)

type AlterarClienteUseCase struct {
	Store ClienteStore
}

func NewAlterarClienteUseCase(store ClienteStore) *AlterarClienteUseCase {
	return &AlterarClienteUseCase{Store: store}
}

// Execute atualiza o cadastro. A chave vem da rota; o CPF do payload é
// ignorado, o campo é imutável após o cadastro.
func (uc *AlterarClienteUseCase) Execute(ctx context.Context, cpfParam string, input ClienteInput) ([]ValidationError, error) {
	if erros := ValidarAlteracao(input); len(erros) > 0 {
		return erros, nil
	}

	cpfKey := format.OnlyDigits(cpfParam)
	cliente := paraEntidade(cpfKey, input)
	if err := uc.Store.Alterar(ctx, cpfKey, cliente); err != nil {
		return nil, err
	}
	return nil, nil
}
