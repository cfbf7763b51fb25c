package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOnlyDigits(t *testing.T) {
	assert.Equal(t, "52998224725", OnlyDigits("529.982.247-25"))
	assert.Equal(t, "11999999999", OnlyDigits("(11) 99999-9999"))
	assert.Equal(t, "01310100", OnlyDigits("01310-100"))
	assert.Equal(t, "", OnlyDigits("abc - /"))
	assert.Equal(t, "123", OnlyDigits("123"))
}

func TestFormatTelefone(t *testing.T) {
	assert.Equal(t, "(11) 99999-9999", FormatTelefone("11999999999"))
	assert.Equal(t, "(21) 3333-4444", FormatTelefone("2133334444"))

	// Fora de 10-11 dígitos passa intacto
	assert.Equal(t, "999", FormatTelefone("999"))
	assert.Equal(t, "", FormatTelefone(""))
	assert.Equal(t, "5511999999999", FormatTelefone("5511999999999"))
}
