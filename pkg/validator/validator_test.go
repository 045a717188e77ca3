package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type cadastroTeste struct {
	Nome  string `json:"nome" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required,min=6"`
}

func TestValidarStructOK(t *testing.T) {
	in := cadastroTeste{Nome: "Ana", Email: "ana@estoque.local", Senha: "segredo1"}
	assert.Empty(t, ValidarStruct(in))
}

func TestValidarStructReportaNomesJSON(t *testing.T) {
	in := cadastroTeste{Email: "nao-e-email", Senha: "123"}
	erros := ValidarStruct(in)

	campos := make([]string, 0, len(erros))
	for _, e := range erros {
		campos = append(campos, e.Campo)
	}
	assert.Equal(t, []string{"nome", "email", "senha"}, campos,
		"os campos devem sair com o nome do JSON, na ordem de declaração")
}

func TestValidarStructCarregaTagEParam(t *testing.T) {
	in := cadastroTeste{Nome: "Ana", Email: "ana@estoque.local", Senha: "123"}
	erros := ValidarStruct(in)

	assert.Len(t, erros, 1)
	assert.Equal(t, "min", erros[0].Tag)
	assert.Equal(t, "6", erros[0].Param)
}
