package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estoqueio/estoque-api/internal/application/authz"
	"github.com/estoqueio/estoque-api/internal/domain"
	"github.com/estoqueio/estoque-api/internal/domain/entity"
)

type usuarioFonteFake struct {
	porID map[string]*entity.Usuario
}

func (f *usuarioFonteFake) GetByID(id string) (*entity.Usuario, error) { return f.porID[id], nil }
func (f *usuarioFonteFake) Create(*entity.Usuario) error               { return nil }
func (f *usuarioFonteFake) GetByEmail(string) (*entity.Usuario, error) { return nil, nil }
func (f *usuarioFonteFake) GetByCPF(string) (*entity.Usuario, error)   { return nil, nil }
func (f *usuarioFonteFake) Update(*entity.Usuario) error               { return nil }
func (f *usuarioFonteFake) Delete(string) error                        { return nil }
func (f *usuarioFonteFake) Exists(id string) (bool, error) {
	_, ok := f.porID[id]
	return ok, nil
}
func (f *usuarioFonteFake) List(int, int) ([]*entity.Usuario, error) { return nil, nil }
func (f *usuarioFonteFake) ListByUnidade(string, int, int) ([]*entity.Usuario, error) {
	return nil, nil
}

func novoResolver(usuarios ...*entity.Usuario) *authz.Resolver {
	fonte := &usuarioFonteFake{porID: map[string]*entity.Usuario{}}
	for _, u := range usuarios {
		fonte.porID[u.ID] = u
	}
	return authz.NewResolver(fonte)
}

func TestResolve_GerenteTemEscopoIrrestrito(t *testing.T) {
	r := novoResolver(&entity.Usuario{
		ID: "u1", Cargo: entity.CargoGerente, Status: entity.StatusAprovado, UnidadeID: "a",
	})

	escopo, err := r.Resolve("u1")
	require.NoError(t, err)

	assert.True(t, escopo.Irrestrito)
	assert.True(t, escopo.PodeAcessarUnidade("a"))
	assert.True(t, escopo.PodeAcessarUnidade("b"), "gerente acessa qualquer unidade")
}

func TestResolve_EstoquistaLimitadoALotacao(t *testing.T) {
	r := novoResolver(&entity.Usuario{
		ID: "u2", Cargo: entity.CargoEstoquista, Status: entity.StatusAprovado, UnidadeID: "a",
	})

	escopo, err := r.Resolve("u2")
	require.NoError(t, err)

	assert.False(t, escopo.Irrestrito)
	assert.True(t, escopo.PodeAcessarUnidade("a"))
	assert.False(t, escopo.PodeAcessarUnidade("b"))
}

func TestResolve_UsuarioInexistente(t *testing.T) {
	r := novoResolver()

	_, err := r.Resolve("fantasma")
	assert.ErrorIs(t, err, domain.ErrNaoAutorizado)
}

func TestResolve_CadastroPendenteBloqueado(t *testing.T) {
	r := novoResolver(&entity.Usuario{
		ID: "u3", Cargo: entity.CargoEstoquista, Status: entity.StatusPendente, UnidadeID: "a",
	})

	_, err := r.Resolve("u3")
	assert.ErrorIs(t, err, domain.ErrAcessoNegado)
}

func TestResolve_CadastroRejeitadoBloqueado(t *testing.T) {
	r := novoResolver(&entity.Usuario{
		ID: "u4", Cargo: entity.CargoEstoquista, Status: entity.StatusRejeitado, UnidadeID: "a",
	})

	_, err := r.Resolve("u4")
	assert.ErrorIs(t, err, domain.ErrAcessoNegado)
}

func TestPodeAprovarProduto(t *testing.T) {
	assert.True(t, authz.PodeAprovarProduto(entity.CargoGerente))
	assert.True(t, authz.PodeAprovarProduto(entity.CargoFinanceiro))
	assert.False(t, authz.PodeAprovarProduto(entity.CargoEstoquista))
}
