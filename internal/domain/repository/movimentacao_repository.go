package repository

import (
	"time"

	"github.com/estoqueio/estoque-api/internal/domain/entity"
)

// MovimentacaoRepository define a porta de persistência para o livro de
// movimentações. Apenas inserção e leitura: lançamentos são imutáveis.
type MovimentacaoRepository interface {
	Create(mov *entity.Movimentacao) error
	GetByID(id string) (*entity.Movimentacao, error)
	ListByProduto(produtoID string, de, ate *time.Time, limit, offset int) ([]*entity.Movimentacao, error)
	// ListByUnidade lista movimentações em que a unidade participa como origem
	// ou como destino.
	ListByUnidade(unidadeID string, de, ate *time.Time, limit, offset int) ([]*entity.Movimentacao, error)
}
