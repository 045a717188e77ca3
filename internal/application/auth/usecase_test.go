package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/estoqueio/estoque-api/internal/application/dto"
	"github.com/estoqueio/estoque-api/internal/domain"
	"github.com/estoqueio/estoque-api/internal/domain/entity"
	"github.com/estoqueio/estoque-api/internal/domain/repository"
	pkgjwt "github.com/estoqueio/estoque-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type usuarioRepoFake struct {
	porID    map[string]*entity.Usuario
	porEmail map[string]*entity.Usuario
	porCPF   map[string]*entity.Usuario
	criados  []*entity.Usuario
	updates  []*entity.Usuario
}

var _ repository.UsuarioRepository = (*usuarioRepoFake)(nil)

func novoUsuarioRepoFake() *usuarioRepoFake {
	return &usuarioRepoFake{
		porID:    map[string]*entity.Usuario{},
		porEmail: map[string]*entity.Usuario{},
		porCPF:   map[string]*entity.Usuario{},
	}
}

func (f *usuarioRepoFake) guardar(u *entity.Usuario) {
	f.porID[u.ID] = u
	f.porEmail[u.Email] = u
	f.porCPF[u.CPF] = u
}

func (f *usuarioRepoFake) Create(u *entity.Usuario) error {
	f.criados = append(f.criados, u)
	f.guardar(u)
	return nil
}

func (f *usuarioRepoFake) GetByID(id string) (*entity.Usuario, error) { return f.porID[id], nil }
func (f *usuarioRepoFake) GetByEmail(email string) (*entity.Usuario, error) {
	return f.porEmail[email], nil
}
func (f *usuarioRepoFake) GetByCPF(cpf string) (*entity.Usuario, error) { return f.porCPF[cpf], nil }

func (f *usuarioRepoFake) Update(u *entity.Usuario) error {
	f.updates = append(f.updates, u)
	f.guardar(u)
	return nil
}

func (f *usuarioRepoFake) ListByUnidade(string, int, int) ([]*entity.Usuario, error) {
	return nil, nil
}
func (f *usuarioRepoFake) List(int, int) ([]*entity.Usuario, error) { return nil, nil }
func (f *usuarioRepoFake) Exists(id string) (bool, error)           { return f.porID[id] != nil, nil }
func (f *usuarioRepoFake) Delete(string) error                      { return nil }

type unidadeRepoFake struct{ ids map[string]bool }

var _ repository.UnidadeRepository = (*unidadeRepoFake)(nil)

func (f *unidadeRepoFake) Create(*entity.Unidade) error            { return nil }
func (f *unidadeRepoFake) GetByID(string) (*entity.Unidade, error) { return nil, nil }
func (f *unidadeRepoFake) Update(*entity.Unidade) error            { return nil }
func (f *unidadeRepoFake) List(int, int) ([]*entity.Unidade, error) {
	return nil, nil
}
func (f *unidadeRepoFake) Exists(id string) (bool, error) { return f.ids[id], nil }
func (f *unidadeRepoFake) Delete(string) error            { return nil }

type mailerFake struct {
	boasVindas   []string
	recuperacoes map[string]string
}

func novoMailerFake() *mailerFake { return &mailerFake{recuperacoes: map[string]string{}} }

func (m *mailerFake) EnviarBoasVindas(para, _ string) { m.boasVindas = append(m.boasVindas, para) }
func (m *mailerFake) EnviarRecuperacaoSenha(para, _, token string) {
	m.recuperacoes[para] = token
}

// ──────────────────────────────────────────────────────────────────────────────
// Cenário
// ──────────────────────────────────────────────────────────────────────────────

const (
	unidadeID = "11111111-1111-1111-1111-111111111111"
	cpfValido = "529.982.247-25"
	senha     = "segredo1"
)

type cenario struct {
	usuarios *usuarioRepoFake
	unidades *unidadeRepoFake
	mailer   *mailerFake
	uc       *AuthUseCase
}

func novoCenario(t *testing.T) *cenario {
	t.Helper()
	c := &cenario{
		usuarios: novoUsuarioRepoFake(),
		unidades: &unidadeRepoFake{ids: map[string]bool{unidadeID: true}},
		mailer:   novoMailerFake(),
	}
	c.uc = NewAuthUseCase(c.usuarios, c.unidades, c.mailer, JWTConfig{
		Secret:             "segredo-de-teste",
		ExpiracaoHoras:     1,
		RecuperacaoMinutos: 15,
		Issuer:             "estoque-api",
	})
	return c
}

func (c *cenario) usuarioAprovado(t *testing.T, email string) *entity.Usuario {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.MinCost)
	require.NoError(t, err)
	u := &entity.Usuario{
		ID:        "22222222-2222-2222-2222-222222222222",
		Nome:      "Ana",
		Email:     email,
		CPF:       "52998224725",
		Senha:     string(hash),
		Cargo:     entity.CargoEstoquista,
		Status:    entity.StatusAprovado,
		UnidadeID: unidadeID,
	}
	c.usuarios.guardar(u)
	return u
}

func registrarRequest() dto.RegistrarUsuarioRequest {
	return dto.RegistrarUsuarioRequest{
		Nome:      "Ana",
		Email:     "ana@estoque.local",
		CPF:       cpfValido,
		Senha:     senha,
		UnidadeID: unidadeID,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Registrar
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrarCriaPendenteComCargoPadrao(t *testing.T) {
	c := novoCenario(t)

	out, err := c.uc.Registrar(registrarRequest())
	require.NoError(t, err)

	assert.Equal(t, entity.StatusPendente, out.Status, "cadastro novo nasce pendente")
	assert.Equal(t, entity.CargoEstoquista, out.Cargo)
	assert.Equal(t, "52998224725", out.CPF, "CPF é armazenado normalizado")

	require.Len(t, c.usuarios.criados, 1)
	criado := c.usuarios.criados[0]
	assert.NotEqual(t, senha, criado.Senha, "a senha nunca é gravada em claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(criado.Senha), []byte(senha)))

	assert.Equal(t, []string{"ana@estoque.local"}, c.mailer.boasVindas)
}

func TestRegistrarRejeitaCPFInvalido(t *testing.T) {
	c := novoCenario(t)
	in := registrarRequest()
	in.CPF = "111.111.111-11"

	_, err := c.uc.Registrar(in)
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
	assert.Empty(t, c.usuarios.criados)
}

func TestRegistrarRejeitaEmailDuplicado(t *testing.T) {
	c := novoCenario(t)
	c.usuarioAprovado(t, "ana@estoque.local")

	_, err := c.uc.Registrar(registrarRequest())
	assert.ErrorIs(t, err, domain.ErrEmailJaCadastrado)
}

func TestRegistrarRejeitaCPFDuplicado(t *testing.T) {
	c := novoCenario(t)
	c.usuarioAprovado(t, "outra@estoque.local")

	_, err := c.uc.Registrar(registrarRequest())
	assert.ErrorIs(t, err, domain.ErrCPFJaCadastrado)
}

func TestRegistrarRejeitaUnidadeInexistente(t *testing.T) {
	c := novoCenario(t)
	in := registrarRequest()
	in.UnidadeID = "99999999-9999-9999-9999-999999999999"

	_, err := c.uc.Registrar(in)

	var er *domain.ErroReferencia
	require.ErrorAs(t, err, &er)
	assert.Equal(t, "unidade_id", er.Campo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLoginGeraTokenDeSessao(t *testing.T) {
	c := novoCenario(t)
	u := c.usuarioAprovado(t, "ana@estoque.local")

	out, err := c.uc.Login(dto.LoginRequest{Email: u.Email, Senha: senha})
	require.NoError(t, err)

	userID, _, finalidade, err := pkgjwt.Parse("segredo-de-teste", out.Token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, userID)
	assert.Equal(t, pkgjwt.FinalidadeSessao, finalidade)
	assert.Equal(t, u.Email, out.Usuario.Email)
}

func TestLoginSenhaErrada(t *testing.T) {
	c := novoCenario(t)
	u := c.usuarioAprovado(t, "ana@estoque.local")

	_, err := c.uc.Login(dto.LoginRequest{Email: u.Email, Senha: "errada123"})
	assert.ErrorIs(t, err, domain.ErrNaoAutorizado)
}

func TestLoginUsuarioDesconhecido(t *testing.T) {
	c := novoCenario(t)

	_, err := c.uc.Login(dto.LoginRequest{Email: "ninguem@estoque.local", Senha: senha})
	assert.ErrorIs(t, err, domain.ErrUsuarioNaoEncontrado)
}

func TestLoginBloqueiaCadastroNaoAprovado(t *testing.T) {
	for _, status := range []string{entity.StatusPendente, entity.StatusRejeitado} {
		t.Run(status, func(t *testing.T) {
			c := novoCenario(t)
			u := c.usuarioAprovado(t, "ana@estoque.local")
			u.Status = status

			_, err := c.uc.Login(dto.LoginRequest{Email: u.Email, Senha: senha})
			assert.ErrorIs(t, err, domain.ErrAcessoNegado,
				"senha correta não basta enquanto o cadastro não foi aprovado")
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Recuperação de senha
// ──────────────────────────────────────────────────────────────────────────────

func TestRecuperarSenhaEnviaTokenDeRecuperacao(t *testing.T) {
	c := novoCenario(t)
	u := c.usuarioAprovado(t, "ana@estoque.local")

	require.NoError(t, c.uc.RecuperarSenha(dto.RecuperarSenhaRequest{Email: u.Email}))

	token := c.mailer.recuperacoes[u.Email]
	require.NotEmpty(t, token)
	_, _, finalidade, err := pkgjwt.Parse("segredo-de-teste", token)
	require.NoError(t, err)
	assert.Equal(t, pkgjwt.FinalidadeRecuperacao, finalidade)
}

func TestRecuperarSenhaNaoRevelaEmailsDesconhecidos(t *testing.T) {
	c := novoCenario(t)

	err := c.uc.RecuperarSenha(dto.RecuperarSenhaRequest{Email: "ninguem@estoque.local"})
	assert.NoError(t, err, "e-mail desconhecido não é erro para o chamador")
	assert.Empty(t, c.mailer.recuperacoes)
}

func TestRedefinirSenhaComTokenValido(t *testing.T) {
	c := novoCenario(t)
	u := c.usuarioAprovado(t, "ana@estoque.local")
	require.NoError(t, c.uc.RecuperarSenha(dto.RecuperarSenhaRequest{Email: u.Email}))
	token := c.mailer.recuperacoes[u.Email]

	err := c.uc.RedefinirSenha(dto.RedefinirSenhaRequest{Token: token, NovaSenha: "novosegredo"})
	require.NoError(t, err)

	require.Len(t, c.usuarios.updates, 1)
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(c.usuarios.updates[0].Senha), []byte("novosegredo")))
}

func TestRedefinirSenhaRejeitaTokenDeSessao(t *testing.T) {
	c := novoCenario(t)
	u := c.usuarioAprovado(t, "ana@estoque.local")

	sessao, err := pkgjwt.GerarSessao("segredo-de-teste", u.ID, u.Email, "estoque-api", 1)
	require.NoError(t, err)

	err = c.uc.RedefinirSenha(dto.RedefinirSenhaRequest{Token: sessao, NovaSenha: "novosegredo"})
	assert.ErrorIs(t, err, domain.ErrNaoAutorizado,
		"token de sessão não vale para redefinir senha")
	assert.Empty(t, c.usuarios.updates)
}

func TestRedefinirSenhaRejeitaTokenInvalido(t *testing.T) {
	c := novoCenario(t)

	err := c.uc.RedefinirSenha(dto.RedefinirSenhaRequest{Token: "lixo", NovaSenha: "novosegredo"})
	assert.ErrorIs(t, err, domain.ErrNaoAutorizado)
}
