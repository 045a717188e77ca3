package usecase

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/estoqueio/estoque-api/internal/application/authz"
	"github.com/estoqueio/estoque-api/internal/application/dto"
	"github.com/estoqueio/estoque-api/internal/application/validation"
	"github.com/estoqueio/estoque-api/internal/domain"
	"github.com/estoqueio/estoque-api/internal/domain/entity"
	"github.com/estoqueio/estoque-api/internal/domain/repository"
)

// UsuarioUseCase administração de usuários: aprovação de cadastro, listagem e
// atualização de perfil. Cargo e unidade são alterações privilegiadas.
type UsuarioUseCase struct {
	usuarios repository.UsuarioRepository
	unidades repository.UnidadeRepository
}

// NewUsuarioUseCase constrói o caso de uso.
func NewUsuarioUseCase(usuarios repository.UsuarioRepository, unidades repository.UnidadeRepository) *UsuarioUseCase {
	return &UsuarioUseCase{usuarios: usuarios, unidades: unidades}
}

// GetByID obtém um usuário por ID.
func (uc *UsuarioUseCase) GetByID(id string) (*dto.UsuarioResponse, error) {
	usuario, err := uc.usuarios.GetByID(id)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUsuarioNaoEncontrado
	}
	return toUsuarioResponse(usuario), nil
}

// Listar lista usuários: gerente vê todas as unidades, demais cargos a própria.
func (uc *UsuarioUseCase) Listar(escopo *authz.Escopo, limit, offset int) (*dto.UsuarioListResponse, error) {
	var (
		list []*entity.Usuario
		err  error
	)
	if escopo.Irrestrito {
		list, err = uc.usuarios.List(limit, offset)
	} else {
		list, err = uc.usuarios.ListByUnidade(escopo.UnidadeID, limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.UsuarioResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUsuarioResponse(u))
	}
	return &dto.UsuarioListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Aprovar aprova um cadastro pendente (apenas gerente). Reprocessar um
// cadastro já decidido é rejeitado.
func (uc *UsuarioUseCase) Aprovar(escopo *authz.Escopo, id string) (*dto.UsuarioResponse, error) {
	return uc.decidir(escopo, id, entity.StatusAprovado)
}

// Rejeitar rejeita um cadastro pendente (apenas gerente).
func (uc *UsuarioUseCase) Rejeitar(escopo *authz.Escopo, id string) (*dto.UsuarioResponse, error) {
	return uc.decidir(escopo, id, entity.StatusRejeitado)
}

func (uc *UsuarioUseCase) decidir(escopo *authz.Escopo, id, status string) (*dto.UsuarioResponse, error) {
	if !escopo.Irrestrito {
		return nil, domain.ErrAcessoNegado
	}
	usuario, err := uc.usuarios.GetByID(id)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, &domain.ErroReferencia{Campo: "usuario_id"}
	}
	if usuario.Status != entity.StatusPendente {
		return nil, domain.ErrConflito
	}
	usuario.Status = status
	usuario.AtualizadoEm = time.Now()
	if err := uc.usuarios.Update(usuario); err != nil {
		return nil, err
	}
	return toUsuarioResponse(usuario), nil
}

// Atualizar atualiza o perfil. Alterar o próprio perfil é permitido; alterar
// terceiros, cargo ou unidade exige gerente. Senha nova é re-hasheada com
// bcrypt; texto plano nunca é persistido.
func (uc *UsuarioUseCase) Atualizar(escopo *authz.Escopo, id string, in dto.AtualizarUsuarioRequest) (*dto.UsuarioResponse, error) {
	if id != escopo.UsuarioID && !escopo.Irrestrito {
		return nil, domain.ErrAcessoNegado
	}
	usuario, err := uc.usuarios.GetByID(id)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUsuarioNaoEncontrado
	}
	if in.Nome != nil {
		usuario.Nome = *in.Nome
	}
	if in.Email != nil && *in.Email != usuario.Email {
		existente, err := uc.usuarios.GetByEmail(*in.Email)
		if err != nil {
			return nil, err
		}
		if existente != nil && existente.ID != usuario.ID {
			return nil, domain.ErrEmailJaCadastrado
		}
		usuario.Email = *in.Email
	}
	if in.Senha != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Senha), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		usuario.Senha = string(hash)
	}
	if in.Cargo != nil && *in.Cargo != usuario.Cargo {
		if !escopo.Irrestrito {
			return nil, domain.ErrAcessoNegado
		}
		usuario.Cargo = *in.Cargo
	}
	if in.UnidadeID != nil && *in.UnidadeID != usuario.UnidadeID {
		if !escopo.Irrestrito {
			return nil, domain.ErrAcessoNegado
		}
		if err := validation.VerificarReferencias([]validation.Referencia{
			{Fonte: uc.unidades, ID: *in.UnidadeID, Campo: "unidade_id"},
		}); err != nil {
			return nil, err
		}
		usuario.UnidadeID = *in.UnidadeID
	}
	usuario.AtualizadoEm = time.Now()
	if err := uc.usuarios.Update(usuario); err != nil {
		return nil, err
	}
	return toUsuarioResponse(usuario), nil
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
