package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/estoqueio/estoque-api/internal/domain"
	"github.com/estoqueio/estoque-api/internal/domain/entity"
	"github.com/estoqueio/estoque-api/internal/domain/repository"
)

var _ repository.UnidadeRepository = (*UnidadeRepo)(nil)

const unidadeCols = `id, nome, descricao, endereco, cidade, estado, criado_em, atualizado_em`

// UnidadeRepo implementação de UnidadeRepository sobre PostgreSQL.
type UnidadeRepo struct {
	q Querier
}

// NewUnidadeRepository constrói o adaptador de persistência de unidades.
func NewUnidadeRepository(q Querier) *UnidadeRepo {
	return &UnidadeRepo{q: q}
}

// Create persiste uma nova unidade.
func (r *UnidadeRepo) Create(unidade *entity.Unidade) error {
	query := `
		INSERT INTO unidades (` + unidadeCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		unidade.ID, unidade.Nome, unidade.Descricao, unidade.Endereco,
		unidade.Cidade, unidade.Estado, unidade.CriadoEm, unidade.AtualizadoEm,
	)
	if err != nil {
		return fmt.Errorf("insert unidade: %w", err)
	}
	return nil
}

// GetByID obtém uma unidade por ID.
func (r *UnidadeRepo) GetByID(id string) (*entity.Unidade, error) {
	var u entity.Unidade
	query := `SELECT ` + unidadeCols + ` FROM unidades WHERE id = $1`
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&u.ID, &u.Nome, &u.Descricao, &u.Endereco, &u.Cidade, &u.Estado,
		&u.CriadoEm, &u.AtualizadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get unidade: %w", err)
	}
	return &u, nil
}

// Update atualiza uma unidade.
func (r *UnidadeRepo) Update(unidade *entity.Unidade) error {
	query := `
		UPDATE unidades SET nome = $2, descricao = $3, endereco = $4,
			cidade = $5, estado = $6, atualizado_em = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		unidade.ID, unidade.Nome, unidade.Descricao, unidade.Endereco,
		unidade.Cidade, unidade.Estado, unidade.AtualizadoEm,
	)
	if err != nil {
		return fmt.Errorf("update unidade: %w", err)
	}
	return nil
}

// List lista unidades com paginação.
func (r *UnidadeRepo) List(limit, offset int) ([]*entity.Unidade, error) {
	query := `SELECT ` + unidadeCols + ` FROM unidades ORDER BY nome LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list unidades: %w", err)
	}
	defer rows.Close()
	var list []*entity.Unidade
	for rows.Next() {
		var u entity.Unidade
		if err := rows.Scan(&u.ID, &u.Nome, &u.Descricao, &u.Endereco, &u.Cidade, &u.Estado,
			&u.CriadoEm, &u.AtualizadoEm); err != nil {
			return nil, fmt.Errorf("scan unidade: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Exists verifica se uma unidade existe.
func (r *UnidadeRepo) Exists(id string) (bool, error) {
	var ok bool
	err := r.q.QueryRow(context.Background(), `SELECT EXISTS (SELECT 1 FROM unidades WHERE id = $1)`, id).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("exists unidade: %w", err)
	}
	return ok, nil
}

// Delete remove uma unidade. Unidades referenciadas por produtos, usuários ou
// movimentações são protegidas pelo delete-restrict do banco.
func (r *UnidadeRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM unidades WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflito
		}
		return fmt.Errorf("delete unidade: %w", err)
	}
	return nil
}
