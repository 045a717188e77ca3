package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/estoqueio/estoque-api/internal/application/authz"
	"github.com/estoqueio/estoque-api/internal/application/dto"
	"github.com/estoqueio/estoque-api/internal/application/validation"
	"github.com/estoqueio/estoque-api/internal/domain"
	"github.com/estoqueio/estoque-api/internal/domain/entity"
	"github.com/estoqueio/estoque-api/internal/domain/repository"
)

// UnidadeUseCase CRUD administrativo de unidades. Mutação só por gerente;
// excluir uma unidade referenciada por produtos, usuários ou movimentações
// falha pela restrição de FK (delete-restrict).
type UnidadeUseCase struct {
	unidades repository.UnidadeRepository
}

// NewUnidadeUseCase constrói o caso de uso.
func NewUnidadeUseCase(unidades repository.UnidadeRepository) *UnidadeUseCase {
	return &UnidadeUseCase{unidades: unidades}
}

// Criar cria uma unidade (apenas gerente).
func (uc *UnidadeUseCase) Criar(escopo *authz.Escopo, in dto.CriarUnidadeRequest) (*dto.UnidadeResponse, error) {
	if !escopo.Irrestrito {
		return nil, domain.ErrAcessoNegado
	}
	if err := validation.ValidarObrigatorios(map[string]any{"nome": in.Nome}, []string{"nome"}); err != nil {
		return nil, err
	}
	now := time.Now()
	unidade := &entity.Unidade{
		ID:           uuid.New().String(),
		Nome:         in.Nome,
		Descricao:    in.Descricao,
		Endereco:     in.Endereco,
		Cidade:       in.Cidade,
		Estado:       in.Estado,
		CriadoEm:     now,
		AtualizadoEm: now,
	}
	if err := uc.unidades.Create(unidade); err != nil {
		return nil, err
	}
	return toUnidadeResponse(unidade), nil
}

// GetByID obtém uma unidade por ID.
func (uc *UnidadeUseCase) GetByID(id string) (*dto.UnidadeResponse, error) {
	unidade, err := uc.unidades.GetByID(id)
	if err != nil {
		return nil, err
	}
	if unidade == nil {
		return nil, domain.ErrNaoEncontrado
	}
	return toUnidadeResponse(unidade), nil
}

// Listar lista unidades com paginação.
func (uc *UnidadeUseCase) Listar(limit, offset int) (*dto.UnidadeListResponse, error) {
	list, err := uc.unidades.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UnidadeResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUnidadeResponse(u))
	}
	return &dto.UnidadeListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Atualizar atualiza uma unidade (apenas gerente).
func (uc *UnidadeUseCase) Atualizar(escopo *authz.Escopo, id string, in dto.AtualizarUnidadeRequest) (*dto.UnidadeResponse, error) {
	if !escopo.Irrestrito {
		return nil, domain.ErrAcessoNegado
	}
	unidade, err := uc.unidades.GetByID(id)
	if err != nil {
		return nil, err
	}
	if unidade == nil {
		return nil, domain.ErrNaoEncontrado
	}
	if in.Nome != nil {
		unidade.Nome = *in.Nome
	}
	if in.Descricao != nil {
		unidade.Descricao = *in.Descricao
	}
	if in.Endereco != nil {
		unidade.Endereco = *in.Endereco
	}
	if in.Cidade != nil {
		unidade.Cidade = *in.Cidade
	}
	if in.Estado != nil {
		unidade.Estado = *in.Estado
	}
	unidade.AtualizadoEm = time.Now()
	if err := uc.unidades.Update(unidade); err != nil {
		return nil, err
	}
	return toUnidadeResponse(unidade), nil
}

// Excluir remove uma unidade (apenas gerente). Unidades referenciadas são
// protegidas pelo banco: a violação de FK vira ErrConflito.
func (uc *UnidadeUseCase) Excluir(escopo *authz.Escopo, id string) error {
	if !escopo.Irrestrito {
		return domain.ErrAcessoNegado
	}
	return uc.unidades.Delete(id)
}

func toUnidadeResponse(u *entity.Unidade) *dto.UnidadeResponse {
	if u == nil {
		return nil
	}
	return &dto.UnidadeResponse{
		ID:           u.ID,
		Nome:         u.Nome,
		Descricao:    u.Descricao,
		Endereco:     u.Endereco,
		Cidade:       u.Cidade,
		Estado:       u.Estado,
		CriadoEm:     u.CriadoEm,
		AtualizadoEm: u.AtualizadoEm,
	}
}
