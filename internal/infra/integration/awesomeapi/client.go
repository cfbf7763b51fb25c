// Package awesomeapi consulta a cotação de câmbio usada no dashboard.
package awesomeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

type cotacaoResponse struct {
	USDBRL struct {
		Bid string `json:"bid"`
	} `json:"USDBRL"`
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

// CotacaoDolar retorna o preço de compra (bid) USD -> BRL.
func (c *Client) CotacaoDolar(ctx context.Context) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/json/last/USD-BRL", nil)
	if err != nil {
		return 0, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("erro request awesomeapi: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("erro cotação (status %d)", resp.StatusCode)
	}

	var data cotacaoResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return 0, fmt.Errorf("erro decode cotação: %w", err)
	}

	bid, err := strconv.ParseFloat(data.USDBRL.Bid, 64)
	if err != nil {
		return 0, fmt.Errorf("cotação inválida %q: %w", data.USDBRL.Bid, err)
	}
	return bid, nil
}
