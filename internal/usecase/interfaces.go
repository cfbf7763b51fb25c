package usecase

import (
	"context"

	"github.com/dfcamara/gestao-comercial/internal/entity"
	"github.com/dfcamara/gestao-comercial/internal/infra/integration/feriados"
	"github.com/dfcamara/gestao-comercial/internal/infra/integration/viacep"
)

// ClienteStore é o ERP remoto, dono dos registros.
type ClienteStore interface {
	Listar(ctx context.Context) ([]entity.Cliente, error)
	Buscar(ctx context.Context, cpf string) (*entity.Cliente, error)
	Criar(ctx context.Context, cliente *entity.Cliente) error
	Alterar(ctx context.Context, cpf string, cliente *entity.Cliente) error
	Excluir(ctx context.Context, cpf string) error
	MarcarPropostaEnviada(ctx context.Context, cpf string) error
	RegistrarMotivoRecusa(ctx context.Context, cpf, motivo string) error
}

type BuscadorCEP interface {
	Buscar(ctx context.Context, cep string) (*viacep.Endereco, error)
}

type CotacaoProvider interface {
	CotacaoDolar(ctx context.Context) (float64, error)
}

type FeriadosProvider interface {
	Ano(ctx context.Context, ano int) ([]feriados.Feriado, error)
}

// MotivoCache é o armazenamento local (bbolt) dos motivos de recusa.
type MotivoCache interface {
	Salvar(cpf, motivo string) error
}
