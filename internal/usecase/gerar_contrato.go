package usecase

import (
	"context"
	"log"
	"strings"

	"github.com/dfcamara/gestao-comercial/internal/entity"
	"github.com/dfcamara/gestao-comercial/internal/outreach"
)

type GerarContratoUseCase struct {
	Store   ClienteStore
	Motivos MotivoCache
}

func NewGerarContratoUseCase(store ClienteStore, motivos MotivoCache) *GerarContratoUseCase {
	return &GerarContratoUseCase{Store: store, Motivos: motivos}
}

type ContratoOutput struct {
	Recusado bool   `json:"recusado"`
	Link     string `json:"link,omitempty"`
	Mensagem string `json:"mensagem,omitempty"`
}

// Execute trata a decisão sobre o contrato. Aceite compõe o resumo e o
// deep link; recusa registra o motivo no ERP em best-effort (falha é
// engolida) e sempre grava no cache local.
func (uc *GerarContratoUseCase) Execute(ctx context.Context, cliente *entity.Cliente, aceito bool, motivo string) (*ContratoOutput, error) {
	if aceito {
		mensagem := outreach.MensagemContrato(cliente)
		link, err := outreach.LinkWhatsApp(cliente.Telefone, mensagem)
		if err != nil {
			return nil, &DomainError{Code: "TELEFONE_INVALIDO", Message: err.Error()}
		}
		return &ContratoOutput{Link: link, Mensagem: mensagem}, nil
	}

	if strings.TrimSpace(motivo) == "" {
		return nil, ErrMotivoObrigatorio
	}

	if err := uc.Store.RegistrarMotivoRecusa(ctx, cliente.CPF, motivo); err != nil {
		log.Printf("⚠️ Motivo de recusa não registrado no ERP (cpf %s): %v", cliente.CPF, err)
	}
	if err := uc.Motivos.Salvar(cliente.CPF, motivo); err != nil {
		log.Printf("⚠️ Motivo de recusa não gravado no cache local (cpf %s): %v", cliente.CPF, err)
	}

	return &ContratoOutput{Recusado: true}, nil
}
