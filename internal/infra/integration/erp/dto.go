package erp

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/dfcamara/gestao-comercial/internal/entity"
)

// O ERP responde a listagem ora como array puro, ora como envelope
// {"clientes": [...]}. decodeClientes é o único ponto que conhece os
// dois formatos; o resto do serviço só enxerga []entity.Cliente.
func decodeClientes(data []byte) ([]entity.Cliente, error) {
	data = bytes.TrimSpace(data)

	if len(data) > 0 && data[0] == '[' {
		var lista []entity.Cliente
		if err := json.Unmarshal(data, &lista); err != nil {
			return nil, fmt.Errorf("erro decode lista de clientes: %w", err)
		}
		return lista, nil
	}

	var env struct {
		Clientes []entity.Cliente `json:"clientes"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("erro decode lista de clientes: %w", err)
	}
	return env.Clientes, nil
}

// decodeCliente aceita {"cliente": {...}}, {"clientes": [primeiro]} ou
// o objeto direto, nessa ordem de preferência.
func decodeCliente(data []byte) (*entity.Cliente, error) {
	var env struct {
		Cliente  *entity.Cliente  `json:"cliente"`
		Clientes []entity.Cliente `json:"clientes"`
	}
	if err := json.Unmarshal(data, &env); err == nil {
		if env.Cliente != nil {
			return env.Cliente, nil
		}
		if len(env.Clientes) > 0 {
			return &env.Clientes[0], nil
		}
	}

	var c entity.Cliente
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("erro decode cliente: %w", err)
	}
	if c.CPF == "" {
		return nil, fmt.Errorf("resposta do ERP sem cliente")
	}
	return &c, nil
}

// Corpos de erro do ERP trazem o texto em "detail" ou "message".
type erroEnvelope struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

func detalheErro(body []byte, fallback string) string {
	var env erroEnvelope
	if err := json.Unmarshal(body, &env); err == nil {
		if env.Detail != "" {
			return env.Detail
		}
		if env.Message != "" {
			return env.Message
		}
	}
	return fallback
}
