package usecase

import "errors"

// DomainError: regra de negócio violada; o front mostra a mensagem e o
// fluxo volta ao estado interativo. TechnicalError fica para falhas de
// infraestrutura (ERP fora do ar, rede etc.).
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	var te *TechnicalError
	return errors.As(err, &te)
}

var (
	ErrPropostaJaEnviada     = &DomainError{Code: "PROPOSTA_JA_ENVIADA", Message: "Proposta já enviada para este lead."}
	ErrExclusaoNaoConfirmada = &DomainError{Code: "EXCLUSAO_NAO_CONFIRMADA", Message: "Exclusão não confirmada."}
	ErrMotivoObrigatorio     = &DomainError{Code: "MOTIVO_OBRIGATORIO", Message: "Informe o motivo da recusa."}
)
