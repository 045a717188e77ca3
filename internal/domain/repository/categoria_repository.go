package repository

import "github.com/estoqueio/estoque-api/internal/domain/entity"

// CategoriaRepository define a porta de persistência para Categoria (DIP).
type CategoriaRepository interface {
	Create(categoria *entity.Categoria) error
	GetByID(id string) (*entity.Categoria, error)
	Update(categoria *entity.Categoria) error
	List(limit, offset int) ([]*entity.Categoria, error)
	Exists(id string) (bool, error)
	Delete(id string) error
}
