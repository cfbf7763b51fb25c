package usecase

import (
	"net/mail"
	"strings"

	"github.com/dfcamara/gestao-comercial/internal/cpf"
	"github.com/dfcamara/gestao-comercial/internal/entity"
	"github.com/dfcamara/gestao-comercial/internal/format"
)

type ValidationError struct {
	Campo    string `json:"campo"`
	Mensagem string `json:"mensagem"`
}

func (e ValidationError) Error() string {
	return e.Campo + ": " + e.Mensagem
}

// ClienteInput é o payload dos formulários de cadastro e edição.
type ClienteInput struct {
	CPF         string `json:"cpf"`
	Nome        string `json:"nome"`
	Email       string `json:"email"`
	Telefone    string `json:"telefone"`
	CEP         string `json:"cep"`
	Logradouro  string `json:"logradouro"`
	Numero      string `json:"numero"`
	Complemento string `json:"complemento"`
	Bairro      string `json:"bairro"`
	Cidade      string `json:"cidade"`
	Estado      string `json:"estado"`
}

// ValidarCliente roda antes de qualquer chamada de rede: todos os
// campos são obrigatórios, exceto o complemento.
func ValidarCliente(input ClienteInput) []ValidationError {
	erros := validarCamposComuns(input)

	if strings.TrimSpace(input.CPF) == "" {
		erros = append(erros, ValidationError{"cpf", "Preencha o CPF."})
	} else if !cpf.IsValid(input.CPF) {
		erros = append(erros, ValidationError{"cpf", "CPF inválido."})
	}

	return erros
}

// ValidarAlteracao ignora o CPF: na edição ele é somente-exibição e
// fica fora do payload de mutação.
func ValidarAlteracao(input ClienteInput) []ValidationError {
	return validarCamposComuns(input)
}

func validarCamposComuns(input ClienteInput) []ValidationError {
	var erros []ValidationError

	if strings.TrimSpace(input.Nome) == "" {
		erros = append(erros, ValidationError{"nome", "Preencha o nome."})
	}

	if strings.TrimSpace(input.Email) == "" {
		erros = append(erros, ValidationError{"email", "Preencha o e-mail."})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		erros = append(erros, ValidationError{"email", "E-mail inválido."})
	}

	if strings.TrimSpace(input.Telefone) == "" {
		erros = append(erros, ValidationError{"telefone", "Informe o WhatsApp."})
	} else if len(format.OnlyDigits(input.Telefone)) < 10 {
		erros = append(erros, ValidationError{"telefone", "WhatsApp inválido."})
	}

	if strings.TrimSpace(input.CEP) == "" {
		erros = append(erros, ValidationError{"cep", "Preencha o CEP."})
	} else if len(format.OnlyDigits(input.CEP)) != 8 {
		erros = append(erros, ValidationError{"cep", "CEP inválido (digite 8 dígitos)."})
	}

	if strings.TrimSpace(input.Logradouro) == "" {
		erros = append(erros, ValidationError{"logradouro", "Preencha a rua."})
	}
	if strings.TrimSpace(input.Numero) == "" {
		erros = append(erros, ValidationError{"numero", "Preencha o número."})
	}
	if strings.TrimSpace(input.Bairro) == "" {
		erros = append(erros, ValidationError{"bairro", "Preencha o bairro."})
	}
	if strings.TrimSpace(input.Cidade) == "" {
		erros = append(erros, ValidationError{"cidade", "Preencha a cidade."})
	}
	if strings.TrimSpace(input.Estado) == "" {
		erros = append(erros, ValidationError{"estado", "Preencha o estado."})
	}

	return erros
}

// paraEntidade normaliza o input para a forma canônica de envio ao
// ERP: cpf, telefone e cep somente com dígitos.
func paraEntidade(cpfKey string, input ClienteInput) *entity.Cliente {
	return &entity.Cliente{
		CPF:         cpfKey,
		Nome:        input.Nome,
		Email:       input.Email,
		Telefone:    format.OnlyDigits(input.Telefone),
		CEP:         format.OnlyDigits(input.CEP),
		Logradouro:  input.Logradouro,
		Numero:      input.Numero,
		Complemento: input.Complemento,
		Bairro:      input.Bairro,
		Cidade:      input.Cidade,
		Estado:      input.Estado,
	}
}
