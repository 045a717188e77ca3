package repository

import "github.com/estoqueio/estoque-api/internal/domain/entity"

// UsuarioRepository define a porta de persistência para Usuario (DIP).
type UsuarioRepository interface {
	Create(usuario *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	GetByEmail(email string) (*entity.Usuario, error)
	GetByCPF(cpf string) (*entity.Usuario, error)
	Update(usuario *entity.Usuario) error
	ListByUnidade(unidadeID string, limit, offset int) ([]*entity.Usuario, error)
	List(limit, offset int) ([]*entity.Usuario, error)
	Exists(id string) (bool, error)
	Delete(id string) error
}
