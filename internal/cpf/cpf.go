// Package cpf valida e formata o CPF, a chave natural dos clientes.
package cpf

import (
	"fmt"

	"github.com/dfcamara/gestao-comercial/internal/format"
)

// IsValid aceita o CPF com ou sem máscara e checa os dois dígitos
// verificadores. CPFs com todos os dígitos iguais (111.111.111-11 etc.)
// passam na conta mas são inválidos por definição.
func IsValid(value string) bool {
	cleaned := format.OnlyDigits(value)

	if len(cleaned) != 11 {
		return false
	}

	allEqual := true
	for i := 1; i < len(cleaned); i++ {
		if cleaned[i] != cleaned[0] {
			allEqual = false
			break
		}
	}
	if allEqual {
		return false
	}

	// Primeiro dígito: soma ponderada dos 9 primeiros, pesos 10..2
	sum := 0
	for i := 0; i < 9; i++ {
		sum += int(cleaned[i]-'0') * (10 - i)
	}
	d1 := (sum * 10) % 11
	if d1 == 10 {
		d1 = 0
	}
	if d1 != int(cleaned[9]-'0') {
		return false
	}

	// Segundo dígito: soma ponderada dos 10 primeiros, pesos 11..2
	sum = 0
	for i := 0; i < 10; i++ {
		sum += int(cleaned[i]-'0') * (11 - i)
	}
	d2 := (sum * 10) % 11
	if d2 == 10 {
		d2 = 0
	}
	return d2 == int(cleaned[10]-'0')
}

// Mask formata um CPF de 11 dígitos como XXX.XXX.XXX-XX, somente para
// exibição. Entradas de outro tamanho passam intactas.
func Mask(value string) string {
	if len(value) != 11 {
		return value
	}
	return fmt.Sprintf("%s.%s.%s-%s", value[:3], value[3:6], value[6:9], value[9:])
}
