// Package viacep consulta o serviço público de CEP. O lookup roda no
// blur do campo de CEP do formulário, nunca a cada tecla.
package viacep

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dfcamara/gestao-comercial/internal/format"
)

// Erros de campo, distintos entre si: "não encontrado" corrige-se
// digitando outro CEP; falha de rede pede nova tentativa.
var (
	ErrCEPInvalido      = errors.New("CEP inválido (digite 8 dígitos)")
	ErrCEPNaoEncontrado = errors.New("CEP não encontrado")
)

type Endereco struct {
	CEP        string `json:"cep"`
	Logradouro string `json:"logradouro"`
	Bairro     string `json:"bairro"`
	Cidade     string `json:"cidade"`
	UF         string `json:"uf"`
}

type viaCEPResponse struct {
	Cep        string          `json:"cep"`
	Logradouro string          `json:"logradouro"`
	Bairro     string          `json:"bairro"`
	Localidade string          `json:"localidade"`
	UF         string          `json:"uf"`
	Erro       json.RawMessage `json:"erro"`
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 5 * time.Second},
	}
}

// Buscar resolve um CEP de 8 dígitos em fragmento de endereço.
func (c *Client) Buscar(ctx context.Context, cep string) (*Endereco, error) {
	cleaned := format.OnlyDigits(cep)
	if len(cleaned) != 8 {
		return nil, ErrCEPInvalido
	}

	url := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, cleaned)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar o CEP: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("erro ao buscar o CEP (status %d)", resp.StatusCode)
	}

	var data viaCEPResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("erro decode viacep: %w", err)
	}

	// O ViaCEP sinaliza CEP inexistente com "erro": true (nas versões
	// mais novas, "erro": "true").
	if bytes.Contains(data.Erro, []byte("true")) {
		return nil, ErrCEPNaoEncontrado
	}

	return &Endereco{
		CEP:        format.OnlyDigits(data.Cep),
		Logradouro: data.Logradouro,
		Bairro:     data.Bairro,
		Cidade:     data.Localidade,
		UF:         data.UF,
	}, nil
}
