package repository

import "github.com/estoqueio/estoque-api/internal/domain/entity"

// ProdutoRepository define a porta de persistência para Produto (DIP).
type ProdutoRepository interface {
	Create(produto *entity.Produto) error
	GetByID(id string) (*entity.Produto, error)
	GetPorCodigoBarras(codigo string) (*entity.Produto, error)
	Update(produto *entity.Produto) error
	// UpdateEstoque grava a quantidade final e o flag ativo recalculado.
	UpdateEstoque(produtoID string, quantidade int64, ativo bool) error
	ListByUnidade(unidadeID string, limit, offset int) ([]*entity.Produto, error)
	List(limit, offset int) ([]*entity.Produto, error)
	Exists(id string) (bool, error)
	Delete(id string) error

	// GetForUpdate bloqueia a linha do produto para a transação corrente
	// (SELECT FOR UPDATE). Usar apenas com repositório atado a uma tx.
	GetForUpdate(id string) (*entity.Produto, error)
	// FindAtivoPorNomeEUnidadeForUpdate localiza um produto ativo de mesmo nome
	// na unidade de destino de uma transferência, bloqueando a linha.
	FindAtivoPorNomeEUnidadeForUpdate(nome, unidadeID string) (*entity.Produto, error)
}
