package usecase

import (
	"context"

	"github.com/dfcamara/gestao-comercial/internal/format"
)

type ExcluirClienteUseCase struct {
	Store ClienteStore
}

func NewExcluirClienteUseCase(store ClienteStore) *ExcluirClienteUseCase {
	return &ExcluirClienteUseCase{Store: store}
}

// Execute exige confirmação explícita: sem ela, nenhum DELETE é
// emitido e o chamador recebe ErrExclusaoNaoConfirmada.
func (uc *ExcluirClienteUseCase) Execute(ctx context.Context, cpfParam string, confirmado bool) error {
	if !confirmado {
		return ErrExclusaoNaoConfirmada
	}
	return uc.Store.Excluir(ctx, format.OnlyDigits(cpfParam))
}
