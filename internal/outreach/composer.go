// Package outreach monta as mensagens de proposta/contrato e o deep
// link do WhatsApp. Nada aqui toca a rede: quem abre o link é o front.
package outreach

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/nyaruka/phonenumbers"

	"github.com/dfcamara/gestao-comercial/internal/cpf"
	"github.com/dfcamara/gestao-comercial/internal/entity"
	"github.com/dfcamara/gestao-comercial/internal/format"
)

// MensagemProposta é o template fixo de proposta, com a tabela de
// planos do escritório.
func MensagemProposta(c *entity.Cliente) string {
	return fmt.Sprintf(`Olá, %s! Segue a proposta de serviços contábeis do nosso escritório:

*Plano Essencial* - R$ 890/mês (MEI e Simples Nacional)
*Plano Profissional* - R$ 1.490/mês (Lucro Presumido)
*Plano Premium* - R$ 2.490/mês (Lucro Real + BPO financeiro)

Podemos agendar uma conversa para fechar o melhor plano para você?`, c.Nome)
}

// MensagemContrato resume os dados cadastrais para conferência antes
// da assinatura.
func MensagemContrato(c *entity.Cliente) string {
	return fmt.Sprintf(`Olá, %s! Seu contrato de prestação de serviços contábeis está pronto.

CPF: %s
Telefone: %s
Endereço: %s

Por favor, confirme se os dados acima estão corretos para darmos andamento à assinatura.`,
		c.Nome, cpf.Mask(c.CPF), format.FormatTelefone(c.Telefone), c.EnderecoCompleto())
}

// LinkWhatsApp monta o deep link wa.me com a mensagem pré-preenchida.
// Telefones nacionais (10-11 dígitos) ganham o DDI 55.
func LinkWhatsApp(telefone, mensagem string) (string, error) {
	cleaned := format.OnlyDigits(telefone)
	if !strings.HasPrefix(cleaned, "55") || len(cleaned) < 12 {
		cleaned = "55" + cleaned
	}

	num, err := phonenumbers.Parse("+"+cleaned, "")
	if err != nil {
		return "", fmt.Errorf("telefone inválido %q: %w", telefone, err)
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", fmt.Errorf("telefone inválido: %s", telefone)
	}

	e164 := phonenumbers.Format(num, phonenumbers.E164)
	return fmt.Sprintf("https://wa.me/%s?text=%s",
		strings.TrimPrefix(e164, "+"), url.QueryEscape(mensagem)), nil
}
