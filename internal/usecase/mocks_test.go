package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dfcamara/gestao-comercial/internal/entity"
	"github.com/dfcamara/gestao-comercial/internal/infra/integration/feriados"
	"github.com/dfcamara/gestao-comercial/internal/infra/integration/viacep"
)

// MockClienteStore
type MockClienteStore struct {
	mock.Mock
}

func (m *MockClienteStore) Listar(ctx context.Context) ([]entity.Cliente, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Cliente), args.Error(1)
}

func (m *MockClienteStore) Buscar(ctx context.Context, cpf string) (*entity.Cliente, error) {
	args := m.Called(ctx, cpf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Cliente), args.Error(1)
}

func (m *MockClienteStore) Criar(ctx context.Context, cliente *entity.Cliente) error {
	args := m.Called(ctx, cliente)
	return args.Error(0)
}

func (m *MockClienteStore) Alterar(ctx context.Context, cpf string, cliente *entity.Cliente) error {
	args := m.Called(ctx, cpf, cliente)
	return args.Error(0)
}

func (m *MockClienteStore) Excluir(ctx context.Context, cpf string) error {
	args := m.Called(ctx, cpf)
	return args.Error(0)
}

func (m *MockClienteStore) MarcarPropostaEnviada(ctx context.Context, cpf string) error {
	args := m.Called(ctx, cpf)
	return args.Error(0)
}

func (m *MockClienteStore) RegistrarMotivoRecusa(ctx context.Context, cpf, motivo string) error {
	args := m.Called(ctx, cpf, motivo)
	return args.Error(0)
}

// MockMotivoCache
type MockMotivoCache struct {
	mock.Mock
}

func (m *MockMotivoCache) Salvar(cpf, motivo string) error {
	args := m.Called(cpf, motivo)
	return args.Error(0)
}

// MockBuscadorCEP
type MockBuscadorCEP struct {
	mock.Mock
}

func (m *MockBuscadorCEP) Buscar(ctx context.Context, cep string) (*viacep.Endereco, error) {
	args := m.Called(ctx, cep)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*viacep.Endereco), args.Error(1)
}

// MockCotacaoProvider
type MockCotacaoProvider struct {
	mock.Mock
}

func (m *MockCotacaoProvider) CotacaoDolar(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

// MockFeriadosProvider
type MockFeriadosProvider struct {
	mock.Mock
}

func (m *MockFeriadosProvider) Ano(ctx context.Context, ano int) ([]feriados.Feriado, error) {
	args := m.Called(ctx, ano)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]feriados.Feriado), args.Error(1)
}
