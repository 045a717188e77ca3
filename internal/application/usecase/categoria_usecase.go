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

// CategoriaUseCase CRUD de categorias. Mutação só por gerente.
type CategoriaUseCase struct {
	categorias repository.CategoriaRepository
}

// NewCategoriaUseCase constrói o caso de uso.
func NewCategoriaUseCase(categorias repository.CategoriaRepository) *CategoriaUseCase {
	return &CategoriaUseCase{categorias: categorias}
}

// Criar cria uma categoria (apenas gerente).
func (uc *CategoriaUseCase) Criar(escopo *authz.Escopo, in dto.CriarCategoriaRequest) (*dto.CategoriaResponse, error) {
	if !escopo.Irrestrito {
		return nil, domain.ErrAcessoNegado
	}
	if err := validation.ValidarObrigatorios(map[string]any{"nome": in.Nome}, []string{"nome"}); err != nil {
		return nil, err
	}
	now := time.Now()
	categoria := &entity.Categoria{
		ID:           uuid.New().String(),
		Nome:         in.Nome,
		Descricao:    in.Descricao,
		CriadoEm:     now,
		AtualizadoEm: now,
	}
	if err := uc.categorias.Create(categoria); err != nil {
		return nil, err
	}
	return toCategoriaResponse(categoria), nil
}

// GetByID obtém uma categoria por ID.
func (uc *CategoriaUseCase) GetByID(id string) (*dto.CategoriaResponse, error) {
	categoria, err := uc.categorias.GetByID(id)
	if err != nil {
		return nil, err
	}
	if categoria == nil {
		return nil, domain.ErrNaoEncontrado
	}
	return toCategoriaResponse(categoria), nil
}

// Listar lista categorias com paginação.
func (uc *CategoriaUseCase) Listar(limit, offset int) (*dto.CategoriaListResponse, error) {
	list, err := uc.categorias.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoriaResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoriaResponse(c))
	}
	return &dto.CategoriaListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Atualizar atualiza uma categoria (apenas gerente).
func (uc *CategoriaUseCase) Atualizar(escopo *authz.Escopo, id string, in dto.AtualizarCategoriaRequest) (*dto.CategoriaResponse, error) {
	if !escopo.Irrestrito {
		return nil, domain.ErrAcessoNegado
	}
	categoria, err := uc.categorias.GetByID(id)
	if err != nil {
		return nil, err
	}
	if categoria == nil {
		return nil, domain.ErrNaoEncontrado
	}
	if in.Nome != nil {
		categoria.Nome = *in.Nome
	}
	if in.Descricao != nil {
		categoria.Descricao = *in.Descricao
	}
	categoria.AtualizadoEm = time.Now()
	if err := uc.categorias.Update(categoria); err != nil {
		return nil, err
	}
	return toCategoriaResponse(categoria), nil
}

// Excluir remove uma categoria (apenas gerente). Categorias referenciadas por
// produtos são protegidas pelo banco (delete-restrict).
func (uc *CategoriaUseCase) Excluir(escopo *authz.Escopo, id string) error {
	if !escopo.Irrestrito {
		return domain.ErrAcessoNegado
	}
	return uc.categorias.Delete(id)
}

func toCategoriaResponse(c *entity.Categoria) *dto.CategoriaResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoriaResponse{
		ID:           c.ID,
		Nome:         c.Nome,
		Descricao:    c.Descricao,
		CriadoEm:     c.CriadoEm,
		AtualizadoEm: c.AtualizadoEm,
	}
}
