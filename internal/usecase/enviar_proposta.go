package usecase

import (
	"context"

	"github.com/dfcamara/gestao-comercial/internal/entity"
	"github.com/dfcamara/gestao-comercial/internal/outreach"
)

type EnviarPropostaUseCase struct {
	Store ClienteStore
}

func NewEnviarPropostaUseCase(store ClienteStore) *EnviarPropostaUseCase {
	return &EnviarPropostaUseCase{Store: store}
}

type PropostaOutput struct {
	Link     string `json:"link"`
	Mensagem string `json:"mensagem"`
}

// Execute compõe a proposta e marca o envio no ERP. Se a flag já está
// marcada, recusa sem nenhuma chamada de rede. A flag local só vira
// depois da confirmação do ERP, nunca de forma otimista.
func (uc *EnviarPropostaUseCase) Execute(ctx context.Context, cliente *entity.Cliente) (*PropostaOutput, error) {
	if cliente.PropostaEnviada {
		return nil, ErrPropostaJaEnviada
	}

	mensagem := outreach.MensagemProposta(cliente)
	link, err := outreach.LinkWhatsApp(cliente.Telefone, mensagem)
	if err != nil {
		return nil, &DomainError{Code: "TELEFONE_INVALIDO", Message: err.Error()}
	}

	if err := uc.Store.MarcarPropostaEnviada(ctx, cliente.CPF); err != nil {
		return nil, err
	}
	cliente.PropostaEnviada = true

	return &PropostaOutput{Link: link, Mensagem: mensagem}, nil
}
