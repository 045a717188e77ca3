package cpf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/estoqueio/estoque-api/pkg/cpf"
)

func TestValido_CPFsValidos(t *testing.T) {
	// Dígitos verificadores calculados pelo algoritmo oficial
	validos := []string{
		"529.982.247-25",
		"52998224725",
		"111.444.777-35",
	}
	for _, c := range validos {
		assert.True(t, cpf.Valido(c), "CPF %s deveria ser válido", c)
	}
}

func TestValido_CPFsInvalidos(t *testing.T) {
	invalidos := []string{
		"",
		"123",
		"529.982.247-26", // dígito verificador errado
		"52998224724",    // dígito verificador errado
		"111.111.111-11", // sequência repetida
		"000.000.000-00", // sequência repetida
		"5299822472X",    // caractere não numérico
		"529982247251",   // 12 dígitos
	}
	for _, c := range invalidos {
		assert.False(t, cpf.Valido(c), "CPF %s deveria ser inválido", c)
	}
}

func TestNormalizar(t *testing.T) {
	assert.Equal(t, "52998224725", cpf.Normalizar("529.982.247-25"))
	assert.Equal(t, "52998224725", cpf.Normalizar("529 982 247 25"))
}
