package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dfcamara/gestao-comercial/internal/entity"
	"github.com/dfcamara/gestao-comercial/internal/usecase"
)

// MockClienteStoreHandler
type MockClienteStoreHandler struct {
	mock.Mock
}

func (m *MockClienteStoreHandler) Listar(ctx context.Context) ([]entity.Cliente, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Cliente), args.Error(1)
}

func (m *MockClienteStoreHandler) Buscar(ctx context.Context, cpf string) (*entity.Cliente, error) {
	args := m.Called(ctx, cpf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Cliente), args.Error(1)
}

func (m *MockClienteStoreHandler) Criar(ctx context.Context, cliente *entity.Cliente) error {
	args := m.Called(ctx, cliente)
	return args.Error(0)
}

func (m *MockClienteStoreHandler) Alterar(ctx context.Context, cpf string, cliente *entity.Cliente) error {
	args := m.Called(ctx, cpf, cliente)
	return args.Error(0)
}

func (m *MockClienteStoreHandler) Excluir(ctx context.Context, cpf string) error {
	args := m.Called(ctx, cpf)
	return args.Error(0)
}

func (m *MockClienteStoreHandler) MarcarPropostaEnviada(ctx context.Context, cpf string) error {
	args := m.Called(ctx, cpf)
	return args.Error(0)
}

func (m *MockClienteStoreHandler) RegistrarMotivoRecusa(ctx context.Context, cpf, motivo string) error {
	args := m.Called(ctx, cpf, motivo)
	return args.Error(0)
}

// MockMotivoCacheHandler
type MockMotivoCacheHandler struct {
	mock.Mock
}

func (m *MockMotivoCacheHandler) Salvar(cpf, motivo string) error {
	args := m.Called(cpf, motivo)
	return args.Error(0)
}

func montarRouter(store usecase.ClienteStore, motivos usecase.MotivoCache) *chi.Mux {
	clienteHandler := NewClienteHandler(
		usecase.NewCriarClienteUseCase(store),
		usecase.NewAlterarClienteUseCase(store),
		usecase.NewExcluirClienteUseCase(store),
		store,
	)
	leadHandler := NewLeadHandler(
		usecase.NewListarLeadsUseCase(store),
		usecase.NewEnviarPropostaUseCase(store),
		usecase.NewGerarContratoUseCase(store, motivos),
		store,
	)

	r := chi.NewRouter()
	r.Get("/leads", leadHandler.HandleListar)
	r.Post("/leads", clienteHandler.HandleCriar)
	r.Get("/leads/{cpf}", clienteHandler.HandleBuscar)
	r.Put("/leads/{cpf}", clienteHandler.HandleAlterar)
	r.Delete("/leads/{cpf}", clienteHandler.HandleExcluir)
	r.Post("/leads/{cpf}/proposta", leadHandler.HandleProposta)
	r.Post("/leads/{cpf}/contrato", leadHandler.HandleContrato)
	return r
}

// ============ TESTES DOS HANDLERS ============

func TestHandleListarComFiltro(t *testing.T) {
	mockStore := new(MockClienteStoreHandler)
	mockStore.On("Listar", mock.Anything).Return([]entity.Cliente{
		{CPF: "52998224725", Nome: "Carlos Mendes"},
		{CPF: "11144477735", Nome: "Lucia Fernandes"},
	}, nil)

	router := montarRouter(mockStore, new(MockMotivoCacheHandler))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/leads?q=lucia", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Clientes []entity.Cliente `json:"clientes"`
	}
	json.Unmarshal(rec.Body.Bytes(), &body)
	assert.Len(t, body.Clientes, 1)
	assert.Equal(t, "Lucia Fernandes", body.Clientes[0].Nome)
}

func TestHandleCriarValidacao(t *testing.T) {
	mockStore := new(MockClienteStoreHandler)
	router := montarRouter(mockStore, new(MockMotivoCacheHandler))

	payload := `{"cpf":"52998224725","nome":"Carlos Mendes"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/leads", bytes.NewBufferString(payload)))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), `"campo":"email"`)
	mockStore.AssertNotCalled(t, "Criar")
}

func TestHandlePropostaJaEnviadaRetorna409(t *testing.T) {
	mockStore := new(MockClienteStoreHandler)
	mockStore.On("Buscar", mock.Anything, "52998224725").Return(&entity.Cliente{
		CPF: "52998224725", Nome: "Carlos Mendes", Telefone: "11999999999", PropostaEnviada: true,
	}, nil)

	router := montarRouter(mockStore, new(MockMotivoCacheHandler))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/leads/52998224725/proposta", nil))

	assert.Equal(t, http.StatusConflict, rec.Code)
	mockStore.AssertNotCalled(t, "MarcarPropostaEnviada")
}

func TestHandlePropostaSucesso(t *testing.T) {
	mockStore := new(MockClienteStoreHandler)
	mockStore.On("Buscar", mock.Anything, "52998224725").Return(&entity.Cliente{
		CPF: "52998224725", Nome: "Carlos Mendes", Telefone: "11999999999",
	}, nil)
	mockStore.On("MarcarPropostaEnviada", mock.Anything, "52998224725").Return(nil)

	router := montarRouter(mockStore, new(MockMotivoCacheHandler))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/leads/529.982.247-25/proposta", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "wa.me/5511999999999")
	mockStore.AssertExpectations(t)
}

func TestHandleExcluirSemConfirmacao(t *testing.T) {
	mockStore := new(MockClienteStoreHandler)
	router := montarRouter(mockStore, new(MockMotivoCacheHandler))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/leads/52998224725", bytes.NewBufferString(`{"confirmado":false}`))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockStore.AssertNotCalled(t, "Excluir")
}

func TestHandleExcluirConfirmado(t *testing.T) {
	mockStore := new(MockClienteStoreHandler)
	mockStore.On("Excluir", mock.Anything, "52998224725").Return(nil)

	router := montarRouter(mockStore, new(MockMotivoCacheHandler))
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/leads/52998224725", bytes.NewBufferString(`{"confirmado":true}`))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	mockStore.AssertExpectations(t)
}

func TestHandleContratoRecusadoGravaCacheMesmoComERPForaDoAr(t *testing.T) {
	mockStore := new(MockClienteStoreHandler)
	mockStore.On("Buscar", mock.Anything, "52998224725").Return(&entity.Cliente{
		CPF: "52998224725", Nome: "Carlos Mendes", Telefone: "11999999999",
	}, nil)
	mockStore.On("RegistrarMotivoRecusa", mock.Anything, "52998224725", "Preço alto").Return(errors.New("erro request ERP"))

	mockMotivos := new(MockMotivoCacheHandler)
	mockMotivos.On("Salvar", "52998224725", "Preço alto").Return(nil)

	router := montarRouter(mockStore, mockMotivos)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/leads/52998224725/contrato", bytes.NewBufferString(`{"aceito":false,"motivo":"Preço alto"}`))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"recusado":true`)
	mockMotivos.AssertExpectations(t)
}
