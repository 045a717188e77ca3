package repository

import "github.com/estoqueio/estoque-api/internal/domain/entity"

// UnidadeRepository define a porta de persistência para Unidade (DIP).
type UnidadeRepository interface {
	Create(unidade *entity.Unidade) error
	GetByID(id string) (*entity.Unidade, error)
	Update(unidade *entity.Unidade) error
	List(limit, offset int) ([]*entity.Unidade, error)
	Exists(id string) (bool, error)
	Delete(id string) error
}
