// Package erp é o cliente HTTP do backend de registros (ERP Comercial).
// Toda a consistência dos dados é responsabilidade do ERP; aqui não há
// retry nem transação, só chamadas canceláveis via context.
package erp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/dfcamara/gestao-comercial/internal/entity"
	"github.com/dfcamara/gestao-comercial/internal/format"
)

var ErrClienteNaoEncontrado = errors.New("cliente não encontrado")

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Listar traz todos os clientes de uma vez (o ERP não pagina).
func (c *Client) Listar(ctx context.Context) ([]entity.Cliente, error) {
	body, err := c.do(ctx, http.MethodGet, "/clientes", nil, "Erro ao listar os clientes.")
	if err != nil {
		return nil, err
	}
	return decodeClientes(body)
}

// Buscar localiza um cliente pelo CPF (somente dígitos).
func (c *Client) Buscar(ctx context.Context, cpf string) (*entity.Cliente, error) {
	body, err := c.do(ctx, http.MethodGet, "/cliente?cpf="+url.QueryEscape(cpf), nil, "Não foi possível carregar o cliente.")
	if err != nil {
		return nil, err
	}
	return decodeCliente(body)
}

func (c *Client) Criar(ctx context.Context, cliente *entity.Cliente) error {
	_, err := c.do(ctx, http.MethodPost, "/cliente", cliente, "Erro ao salvar o cliente.")
	return err
}

// Alterar atualiza o registro; o CPF do corpo é ignorado pelo ERP, a
// chave vem da query string.
func (c *Client) Alterar(ctx context.Context, cpf string, cliente *entity.Cliente) error {
	_, err := c.do(ctx, http.MethodPut, "/cliente?cpf="+url.QueryEscape(cpf), cliente, "Erro ao alterar o cliente.")
	return err
}

func (c *Client) Excluir(ctx context.Context, cpf string) error {
	_, err := c.do(ctx, http.MethodDelete, "/cliente?cpf="+url.QueryEscape(cpf), nil, "Erro ao excluir o cliente.")
	return err
}

// MarcarPropostaEnviada é a única operação autorizada a virar a flag
// proposta_enviada no ERP.
func (c *Client) MarcarPropostaEnviada(ctx context.Context, cpf string) error {
	_, err := c.do(ctx, http.MethodPost, "/cliente/proposta?cpf="+url.QueryEscape(cpf), nil, "Erro ao registrar o envio da proposta.")
	return err
}

// RegistrarMotivoRecusa é best-effort: quem chama pode engolir o erro.
func (c *Client) RegistrarMotivoRecusa(ctx context.Context, cpf, motivo string) error {
	payload := map[string]string{"motivo": motivo}
	path := fmt.Sprintf("/cliente/%s/motivo", url.PathEscape(format.OnlyDigits(cpf)))
	_, err := c.do(ctx, http.MethodPost, path, payload, "Erro ao registrar o motivo.")
	return err
}

func (c *Client) do(ctx context.Context, method, path string, payload any, fallback string) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		jsonBody, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("erro ao marshal payload: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro request ERP: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrClienteNaoEncontrado, detalheErro(body, fallback))
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%s (status %d)", detalheErro(body, fallback), resp.StatusCode)
	}
	return body, nil
}
