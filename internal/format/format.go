package format

import (
	"fmt"
	"regexp"
)

var naoDigito = regexp.MustCompile(`\D`)

// OnlyDigits remove tudo que não for dígito. É a forma canônica de
// CPF, telefone e CEP antes de qualquer envio ao ERP.
func OnlyDigits(s string) string {
	return naoDigito.ReplaceAllString(s, "")
}

// FormatTelefone formata números nacionais de 10 ou 11 dígitos no
// padrão (DDD) para exibição. Qualquer outro tamanho passa intacto.
func FormatTelefone(s string) string {
	switch len(s) {
	case 11:
		return fmt.Sprintf("(%s) %s-%s", s[:2], s[2:7], s[7:])
	case 10:
		return fmt.Sprintf("(%s) %s-%s", s[:2], s[2:6], s[6:])
	default:
		return s
	}
}
