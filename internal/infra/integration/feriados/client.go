// Package feriados consulta o calendário público Nager.Date.
package feriados

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type Feriado struct {
	Date      string `json:"date"`
	LocalName string `json:"localName"`
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

// Ano lista os feriados nacionais do ano informado, em ordem de data.
func (c *Client) Ano(ctx context.Context, ano int) ([]Feriado, error) {
	url := fmt.Sprintf("%s/PublicHolidays/%d/BR", c.baseURL, ano)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro request feriados: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("erro feriados (status %d)", resp.StatusCode)
	}

	var lista []Feriado
	if err := json.NewDecoder(resp.Body).Decode(&lista); err != nil {
		return nil, fmt.Errorf("erro decode feriados: %w", err)
	}
	return lista, nil
}
