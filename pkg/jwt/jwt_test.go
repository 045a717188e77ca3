package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	secret = "segredo-de-teste"
	userID = "00000000-0000-0000-0000-0000000000aa"
	email  = "alguem@estoque.local"
	issuer = "estoque-api"
)

func TestSessaoRoundTrip(t *testing.T) {
	tok, err := GerarSessao(secret, userID, email, issuer, 1)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	gotID, gotEmail, finalidade, err := Parse(secret, tok)
	require.NoError(t, err)
	assert.Equal(t, userID, gotID)
	assert.Equal(t, email, gotEmail)
	assert.Equal(t, FinalidadeSessao, finalidade)
}

func TestRecuperacaoCarregaFinalidadePropria(t *testing.T) {
	tok, err := GerarRecuperacao(secret, userID, email, issuer, 15)
	require.NoError(t, err)

	_, _, finalidade, err := Parse(secret, tok)
	require.NoError(t, err)
	assert.Equal(t, FinalidadeRecuperacao, finalidade)
}

func TestParseRejeitaSegredoErrado(t *testing.T) {
	tok, err := GerarSessao(secret, userID, email, issuer, 1)
	require.NoError(t, err)

	_, _, _, err = Parse("outro-segredo", tok)
	assert.Error(t, err)
}

func TestParseRejeitaTokenExpirado(t *testing.T) {
	tok, err := GerarSessao(secret, userID, email, issuer, -1)
	require.NoError(t, err)

	_, _, _, err = Parse(secret, tok)
	assert.Error(t, err, "token com expiração no passado deve falhar")
}

func TestGerarExigeSegredo(t *testing.T) {
	_, err := GerarSessao("", userID, email, issuer, 1)
	assert.Error(t, err)

	_, _, _, err = Parse("", "qualquer")
	assert.Error(t, err)
}
