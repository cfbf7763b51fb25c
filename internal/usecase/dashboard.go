package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/dfcamara/gestao-comercial/internal/infra/integration/feriados"
)

type DashboardUseCase struct {
	Store    ClienteStore
	Cotacao  CotacaoProvider
	Feriados FeriadosProvider

	// Injetável nos testes; default time.Now.
	Hoje func() time.Time
}

func NewDashboardUseCase(store ClienteStore, cotacao CotacaoProvider, fer FeriadosProvider) *DashboardUseCase {
	return &DashboardUseCase{
		Store:    store,
		Cotacao:  cotacao,
		Feriados: fer,
		Hoje:     time.Now,
	}
}

// Cada seção carrega e falha por conta própria: a queda de uma fonte
// não apaga as outras.
type DashboardOutput struct {
	LeadsAtivos       int    `json:"leads_ativos"`
	PropostasEnviadas int    `json:"propostas_enviadas"`
	ErroLeads         string `json:"erro_leads,omitempty"`

	CotacaoDolar float64 `json:"cotacao_dolar,omitempty"`
	ErroCotacao  string  `json:"erro_cotacao,omitempty"`

	ProximoFeriado *feriados.Feriado `json:"proximo_feriado,omitempty"`
	ErroFeriado    string            `json:"erro_feriado,omitempty"`
}

func (uc *DashboardUseCase) Execute(ctx context.Context) *DashboardOutput {
	out := &DashboardOutput{}

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		lista, err := uc.Store.Listar(ctx)
		if err != nil {
			out.ErroLeads = err.Error()
			return
		}
		out.LeadsAtivos = len(lista)
		for _, c := range lista {
			if c.PropostaEnviada {
				out.PropostasEnviadas++
			}
		}
	}()

	go func() {
		defer wg.Done()
		bid, err := uc.Cotacao.CotacaoDolar(ctx)
		if err != nil {
			out.ErroCotacao = err.Error()
			return
		}
		out.CotacaoDolar = bid
	}()

	go func() {
		defer wg.Done()
		f, err := uc.proximoFeriado(ctx)
		if err != nil {
			out.ErroFeriado = err.Error()
			return
		}
		out.ProximoFeriado = f
	}()

	wg.Wait()
	return out
}

// proximoFeriado procura o primeiro feriado de hoje em diante; se o
// ano corrente já acabou, cai no primeiro feriado do ano seguinte.
func (uc *DashboardUseCase) proximoFeriado(ctx context.Context) (*feriados.Feriado, error) {
	hoje := uc.Hoje().Format("2006-01-02")
	ano := uc.Hoje().Year()

	lista, err := uc.Feriados.Ano(ctx, ano)
	if err != nil {
		return nil, err
	}
	for i := range lista {
		if lista[i].Date >= hoje {
			return &lista[i], nil
		}
	}

	lista, err = uc.Feriados.Ano(ctx, ano+1)
	if err != nil {
		return nil, err
	}
	if len(lista) == 0 {
		return nil, &TechnicalError{Code: "FERIADOS_VAZIO", Message: "calendário de feriados vazio"}
	}
	return &lista[0], nil
}
