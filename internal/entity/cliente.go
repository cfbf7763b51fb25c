package entity

import "fmt"

// Entidade: Cliente (lead do funil comercial).
// O CPF é a chave natural no ERP: único e imutável após o cadastro.
type Cliente struct {
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

	// Mantida pelo ERP: só transiciona false -> true, e apenas pela
	// operação dedicada de proposta, nunca por um PUT genérico.
	PropostaEnviada bool `json:"proposta_enviada"`
}

// EnderecoCompleto monta o endereço em linha única para mensagens.
func (c *Cliente) EnderecoCompleto() string {
	end := fmt.Sprintf("%s, %s", c.Logradouro, c.Numero)
	if c.Complemento != "" {
		end += " - " + c.Complemento
	}
	return fmt.Sprintf("%s, %s, %s/%s - CEP %s", end, c.Bairro, c.Cidade, c.Estado, c.CEP)
}
