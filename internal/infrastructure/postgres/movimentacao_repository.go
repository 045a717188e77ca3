package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/estoqueio/estoque-api/internal/domain/entity"
	"github.com/estoqueio/estoque-api/internal/domain/repository"
)

var _ repository.MovimentacaoRepository = (*MovimentacaoRepo)(nil)

const movimentacaoCols = `id, tipo, quantidade, data, observacao, documento,
		produto_id, usuario_id, unidade_origem_id, unidade_destino_id, criado_em`

// MovimentacaoRepo implementação sobre PostgreSQL (usável com pool ou tx).
// O livro de movimentações é append-only: não há UPDATE nem DELETE.
type MovimentacaoRepo struct {
	q Querier
}

// NewMovimentacaoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewMovimentacaoRepository(q Querier) *MovimentacaoRepo {
	return &MovimentacaoRepo{q: q}
}

// Create persiste um lançamento de movimentação.
func (r *MovimentacaoRepo) Create(mov *entity.Movimentacao) error {
	if mov.ID == "" {
		mov.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movimentacoes (` + movimentacaoCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	destino := (*string)(nil)
	if mov.UnidadeDestinoID != "" {
		destino = &mov.UnidadeDestinoID
	}
	_, err := r.q.Exec(context.Background(), query,
		mov.ID, mov.Tipo, mov.Quantidade, mov.Data, mov.Observacao, mov.Documento,
		mov.ProdutoID, mov.UsuarioID, mov.UnidadeOrigemID, destino, mov.CriadoEm,
	)
	if err != nil {
		return fmt.Errorf("insert movimentacao: %w", err)
	}
	return nil
}

// GetByID obtém um lançamento por ID.
func (r *MovimentacaoRepo) GetByID(id string) (*entity.Movimentacao, error) {
	query := `SELECT ` + movimentacaoCols + ` FROM movimentacoes WHERE id = $1`
	m, err := scanMovimentacao(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movimentacao: %w", err)
	}
	return m, nil
}

// ListByProduto lista movimentações de um produto em um intervalo de datas.
func (r *MovimentacaoRepo) ListByProduto(produtoID string, de, ate *time.Time, limit, offset int) ([]*entity.Movimentacao, error) {
	return r.list(`produto_id = $1`, produtoID, de, ate, limit, offset)
}

// ListByUnidade lista movimentações com origem ou destino em uma unidade em um
// intervalo de datas.
func (r *MovimentacaoRepo) ListByUnidade(unidadeID string, de, ate *time.Time, limit, offset int) ([]*entity.Movimentacao, error) {
	return r.list(`(unidade_origem_id = $1 OR unidade_destino_id = $1)`, unidadeID, de, ate, limit, offset)
}

func (r *MovimentacaoRepo) list(condicao, valor string, de, ate *time.Time, limit, offset int) ([]*entity.Movimentacao, error) {
	query := `SELECT ` + movimentacaoCols + ` FROM movimentacoes WHERE ` + condicao
	args := []any{valor}
	pos := 2
	if de != nil {
		query += fmt.Sprintf(" AND data >= $%d", pos)
		args = append(args, *de)
		pos++
	}
	if ate != nil {
		query += fmt.Sprintf(" AND data <= $%d", pos)
		args = append(args, *ate)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY data DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movimentacoes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movimentacao
	for rows.Next() {
		m, err := scanMovimentacao(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movimentacao: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func scanMovimentacao(row pgx.Row) (*entity.Movimentacao, error) {
	var m entity.Movimentacao
	var destino *string
	err := row.Scan(
		&m.ID, &m.Tipo, &m.Quantidade, &m.Data, &m.Observacao, &m.Documento,
		&m.ProdutoID, &m.UsuarioID, &m.UnidadeOrigemID, &destino, &m.CriadoEm,
	)
	if err != nil {
		return nil, err
	}
	if destino != nil {
		m.UnidadeDestinoID = *destino
	}
	return &m, nil
}
