package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/estoqueio/estoque-api/internal/application/dto"
	"github.com/estoqueio/estoque-api/internal/application/validation"
	"github.com/estoqueio/estoque-api/internal/domain"
	"github.com/estoqueio/estoque-api/internal/domain/entity"
	"github.com/estoqueio/estoque-api/internal/domain/repository"
	"github.com/estoqueio/estoque-api/pkg/cpf"
	"github.com/estoqueio/estoque-api/pkg/jwt"
)

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret             string
	ExpiracaoHoras     int
	RecuperacaoMinutos int
	Issuer             string
}

// Mailer é o contrato de notificação por e-mail. Os envios são fire-and-forget:
// falhas são registradas em log e nunca bloqueiam a resposta principal.
type Mailer interface {
	EnviarBoasVindas(para, nome string)
	EnviarRecuperacaoSenha(para, nome, token string)
}

// AuthUseCase casos de uso de autenticação: cadastro, login e recuperação de senha.
type AuthUseCase struct {
	usuarios repository.UsuarioRepository
	unidades repository.UnidadeRepository
	mailer   Mailer
	jwtCfg   JWTConfig
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(usuarios repository.UsuarioRepository, unidades repository.UnidadeRepository, mailer Mailer, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{usuarios: usuarios, unidades: unidades, mailer: mailer, jwtCfg: jwtCfg}
}

// Registrar cria um usuário com status pendente: hasheia a senha com bcrypt,
// valida o CPF pelo dígito verificador e dispara o e-mail de boas-vindas.
// E-mail e CPF são únicos.
func (uc *AuthUseCase) Registrar(in dto.RegistrarUsuarioRequest) (*dto.UsuarioResponse, error) {
	if err := validation.ValidarObrigatorios(map[string]any{
		"nome":       in.Nome,
		"email":      in.Email,
		"cpf":        in.CPF,
		"senha":      in.Senha,
		"unidade_id": in.UnidadeID,
	}, []string{"nome", "email", "cpf", "senha", "unidade_id"}); err != nil {
		return nil, err
	}
	if !cpf.Valido(in.CPF) {
		return nil, &domain.ErroValidacao{Campos: []string{"cpf"}}
	}

	existente, err := uc.usuarios.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrEmailJaCadastrado
	}
	cpfNormalizado := cpf.Normalizar(in.CPF)
	existente, err = uc.usuarios.GetByCPF(cpfNormalizado)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrCPFJaCadastrado
	}

	if err := validation.VerificarReferencias([]validation.Referencia{
		{Fonte: uc.unidades, ID: in.UnidadeID, Campo: "unidade_id"},
	}); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	cargo := in.Cargo
	if cargo == "" {
		cargo = entity.CargoEstoquista
	}
	now := time.Now()
	usuario := &entity.Usuario{
		ID:           uuid.New().String(),
		Nome:         in.Nome,
		Email:        in.Email,
		CPF:          cpfNormalizado,
		Senha:        string(hash),
		Cargo:        cargo,
		Status:       entity.StatusPendente,
		UnidadeID:    in.UnidadeID,
		CriadoEm:     now,
		AtualizadoEm: now,
	}
	if err := uc.usuarios.Create(usuario); err != nil {
		return nil, err
	}

	uc.mailer.EnviarBoasVindas(usuario.Email, usuario.Nome)

	return toUsuarioResponse(usuario), nil
}

// Login verifica e-mail/senha, exige cadastro aprovado e gera o token de sessão.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	usuario, err := uc.usuarios.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUsuarioNaoEncontrado
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.Senha), []byte(in.Senha)); err != nil {
		return nil, domain.ErrNaoAutorizado
	}
	if usuario.Status != entity.StatusAprovado {
		return nil, domain.ErrAcessoNegado
	}
	token, err := jwt.GerarSessao(uc.jwtCfg.Secret, usuario.ID, usuario.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpiracaoHoras)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:   token,
		Usuario: *toUsuarioResponse(usuario),
	}, nil
}

// RecuperarSenha gera um token curto de recuperação e o envia por e-mail.
// Para não revelar quais e-mails existem, um e-mail desconhecido não é erro.
func (uc *AuthUseCase) RecuperarSenha(in dto.RecuperarSenhaRequest) error {
	usuario, err := uc.usuarios.GetByEmail(in.Email)
	if err != nil {
		return err
	}
	if usuario == nil {
		return nil
	}
	token, err := jwt.GerarRecuperacao(uc.jwtCfg.Secret, usuario.ID, usuario.Email, uc.jwtCfg.Issuer, uc.jwtCfg.RecuperacaoMinutos)
	if err != nil {
		return err
	}
	uc.mailer.EnviarRecuperacaoSenha(usuario.Email, usuario.Nome, token)
	return nil
}

// RedefinirSenha valida o token de recuperação e grava a nova senha hasheada.
func (uc *AuthUseCase) RedefinirSenha(in dto.RedefinirSenhaRequest) error {
	userID, _, finalidade, err := jwt.Parse(uc.jwtCfg.Secret, in.Token)
	if err != nil || finalidade != jwt.FinalidadeRecuperacao {
		return domain.ErrNaoAutorizado
	}
	usuario, err := uc.usuarios.GetByID(userID)
	if err != nil {
		return err
	}
	if usuario == nil {
		return domain.ErrUsuarioNaoEncontrado
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NovaSenha), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	usuario.Senha = string(hash)
	usuario.AtualizadoEm = time.Now()
	return uc.usuarios.Update(usuario)
}

func toUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		ID:           u.ID,
		Nome:         u.Nome,
		Email:        u.Email,
		CPF:          u.CPF,
		Cargo:        u.Cargo,
		Status:       u.Status,
		UnidadeID:    u.UnidadeID,
		CriadoEm:     u.CriadoEm,
		AtualizadoEm: u.AtualizadoEm,
	}
}
