package handlers

import "net/http"

// RelatorioHandler serve as abas estáticas do painel (contratos ativos
// e relatório comercial). O conteúdo é fixo até o ERP expor esses
// números.
type RelatorioHandler struct{}

func NewRelatorioHandler() *RelatorioHandler {
	return &RelatorioHandler{}
}

type contratoAtivo struct {
	Nome             string `json:"nome"`
	Mercados         string `json:"mercados"`
	Inicio           string `json:"inicio"`
	ProximoPagamento string `json:"proximo_pagamento"`
	MensalidadeBRL   int    `json:"mensalidade_brl"`
}

// HandleContratos (GET /contratos)
func (h *RelatorioHandler) HandleContratos(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"contratos": []contratoAtivo{
			{
				Nome:             "João Santos",
				Mercados:         "B3, Internacional, Cripto",
				Inicio:           "2024-01-01",
				ProximoPagamento: "2024-02-01",
				MensalidadeBRL:   3500,
			},
			{
				Nome:             "Maria Oliveira",
				Mercados:         "B3, Cripto",
				Inicio:           "2023-12-15",
				ProximoPagamento: "2024-01-15",
				MensalidadeBRL:   2200,
			},
		},
	})
}

// HandleRelatorio (GET /relatorio)
func (h *RelatorioHandler) HandleRelatorio(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"performance_mes": map[string]any{
			"leads_gerados":      89,
			"contratos_fechados": 61,
			"receita_gerada_brl": 142500,
			"ticket_medio_brl":   2336,
		},
		"motivos_nao_fechamento": map[string]int{
			"Preço alto":      12,
			"Já tem contador": 8,
			"Não retornou":    5,
			"Outros motivos":  3,
		},
	})
}
