package validation_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estoqueio/estoque-api/internal/application/validation"
	"github.com/estoqueio/estoque-api/internal/domain"
)

func TestCamposAusentes_PreservaOrdemDeEntrada(t *testing.T) {
	valores := map[string]any{
		"nome":  "Parafuso",
		"email": "",
		"cpf":   nil,
	}
	campos := []string{"nome", "email", "cpf", "senha"}

	ausentes := validation.CamposAusentes(valores, campos)
	assert.Equal(t, []string{"email", "cpf", "senha"}, ausentes)
}

func TestCamposAusentes_EspacosContamComoVazio(t *testing.T) {
	ausentes := validation.CamposAusentes(map[string]any{"nome": "   "}, []string{"nome"})
	assert.Equal(t, []string{"nome"}, ausentes)
}

func TestCamposAusentes_ZeroNumericoNaoEAusente(t *testing.T) {
	// A coerção via %v transforma 0 em "0", que não é vazio. Quem precisa
	// tratar zero como ausente converte para nil antes de chamar.
	ausentes := validation.CamposAusentes(map[string]any{"quantidade": 0}, []string{"quantidade"})
	assert.Empty(t, ausentes)
}

func TestCamposAusentes_Idempotente(t *testing.T) {
	valores := map[string]any{"a": "", "b": "x"}
	campos := []string{"a", "b"}

	primeira := validation.CamposAusentes(valores, campos)
	segunda := validation.CamposAusentes(valores, campos)
	assert.Equal(t, primeira, segunda)
}

func TestValidarObrigatorios_DevolveErroTipado(t *testing.T) {
	err := validation.ValidarObrigatorios(map[string]any{"nome": ""}, []string{"nome"})

	var ev *domain.ErroValidacao
	require.ErrorAs(t, err, &ev)
	assert.Equal(t, []string{"nome"}, ev.Campos)
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestValidarObrigatorios_SemAusentes(t *testing.T) {
	assert.NoError(t, validation.ValidarObrigatorios(map[string]any{"nome": "ok"}, []string{"nome"}))
}

func TestNaoNegativo(t *testing.T) {
	assert.True(t, validation.NaoNegativo(decimal.Zero))
	assert.True(t, validation.NaoNegativo(decimal.NewFromFloat(10.50)))
	assert.False(t, validation.NaoNegativo(decimal.NewFromFloat(-0.01)))
}

func TestPositivo(t *testing.T) {
	assert.False(t, validation.Positivo(0))
	assert.False(t, validation.Positivo(-1))
	assert.True(t, validation.Positivo(1))
}

// existenciaFake registra os ids consultados para verificar o fail-fast.
type existenciaFake struct {
	ids        map[string]bool
	consultado []string
	err        error
}

func (f *existenciaFake) Exists(id string) (bool, error) {
	f.consultado = append(f.consultado, id)
	if f.err != nil {
		return false, f.err
	}
	return f.ids[id], nil
}

func TestVerificarReferencias_InterrompeNaPrimeiraAusente(t *testing.T) {
	fonte := &existenciaFake{ids: map[string]bool{"a": true}}
	refs := []validation.Referencia{
		{Fonte: fonte, ID: "a", Campo: "produto_id"},
		{Fonte: fonte, ID: "b", Campo: "usuario_id"},
		{Fonte: fonte, ID: "c", Campo: "unidade_origem_id"},
	}

	err := validation.VerificarReferencias(refs)

	var er *domain.ErroReferencia
	require.ErrorAs(t, err, &er)
	assert.Equal(t, "usuario_id", er.Campo)
	assert.Equal(t, []string{"a", "b"}, fonte.consultado,
		"referências após a primeira ausente não são consultadas")
}

func TestVerificarReferencias_ErroDeFonteEPropagado(t *testing.T) {
	falha := errors.New("conexão perdida")
	fonte := &existenciaFake{err: falha}

	err := validation.VerificarReferencias([]validation.Referencia{
		{Fonte: fonte, ID: "a", Campo: "produto_id"},
	})
	assert.ErrorIs(t, err, falha)
	assert.NotErrorIs(t, err, domain.ErrNaoEncontrado,
		"erro de infraestrutura não vira referência ausente")
}

func TestVerificarReferencias_TodasPresentes(t *testing.T) {
	fonte := &existenciaFake{ids: map[string]bool{"a": true, "b": true}}
	err := validation.VerificarReferencias([]validation.Referencia{
		{Fonte: fonte, ID: "a", Campo: "produto_id"},
		{Fonte: fonte, ID: "b", Campo: "usuario_id"},
	})
	assert.NoError(t, err)
}
