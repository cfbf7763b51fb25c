package feriados

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAno(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/PublicHolidays/2026/BR", r.URL.Path)
		w.Write([]byte(`[{"date":"2026-01-01","localName":"Confraternização mundial","name":"New Year's Day"},{"date":"2026-04-21","localName":"Tiradentes"}]`))
	}))
	defer server.Close()

	lista, err := NewClient(server.URL).Ano(context.Background(), 2026)

	assert.NoError(t, err)
	assert.Len(t, lista, 2)
	assert.Equal(t, "Tiradentes", lista[1].LocalName)
}

func TestAnoErro(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := NewClient(server.URL).Ano(context.Background(), 2026)

	assert.ErrorContains(t, err, "status 503")
}
