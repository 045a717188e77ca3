package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/estoqueio/estoque-api/internal/application/movement"
	"github.com/estoqueio/estoque-api/internal/domain/repository"
)

var _ movement.TxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia uma transação, executa fn com repositórios atados à tx e faz
// Commit ou Rollback. Os locks de linha (SELECT FOR UPDATE) adquiridos dentro
// de fn valem até o fim da transação.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovimentacaoRepository,
	produtoRepo repository.ProdutoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	movRepo := NewMovimentacaoRepository(tx)
	produtoRepo := NewProdutoRepository(tx)

	if err := fn(movRepo, produtoRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
