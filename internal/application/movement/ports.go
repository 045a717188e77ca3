package movement

import (
	"context"

	"github.com/estoqueio/estoque-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando
// repositórios atados a essa tx. Garante atomicidade do motor de movimentação:
// o lançamento no livro e as atualizações de estoque persistem juntos ou não
// persistem.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovimentacaoRepository,
		produtoRepo repository.ProdutoRepository,
	) error) error
}
