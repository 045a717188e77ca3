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

var _ repository.CategoriaRepository = (*CategoriaRepo)(nil)

// CategoriaRepo implementação de CategoriaRepository sobre PostgreSQL.
type CategoriaRepo struct {
	q Querier
}

// NewCategoriaRepository constrói o adaptador de persistência de categorias.
func NewCategoriaRepository(q Querier) *CategoriaRepo {
	return &CategoriaRepo{q: q}
}

// Create persiste uma nova categoria.
func (r *CategoriaRepo) Create(categoria *entity.Categoria) error {
	query := `
		INSERT INTO categorias (id, nome, descricao, criado_em, atualizado_em)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		categoria.ID, categoria.Nome, categoria.Descricao, categoria.CriadoEm, categoria.AtualizadoEm,
	)
	if err != nil {
		return fmt.Errorf("insert categoria: %w", err)
	}
	return nil
}

// GetByID obtém uma categoria por ID.
func (r *CategoriaRepo) GetByID(id string) (*entity.Categoria, error) {
	var c entity.Categoria
	query := `SELECT id, nome, descricao, criado_em, atualizado_em FROM categorias WHERE id = $1`
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Nome, &c.Descricao, &c.CriadoEm, &c.AtualizadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get categoria: %w", err)
	}
	return &c, nil
}

// Update atualiza uma categoria.
func (r *CategoriaRepo) Update(categoria *entity.Categoria) error {
	query := `UPDATE categorias SET nome = $2, descricao = $3, atualizado_em = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		categoria.ID, categoria.Nome, categoria.Descricao, categoria.AtualizadoEm,
	)
	if err != nil {
		return fmt.Errorf("update categoria: %w", err)
	}
	return nil
}

// List lista categorias com paginação.
func (r *CategoriaRepo) List(limit, offset int) ([]*entity.Categoria, error) {
	query := `SELECT id, nome, descricao, criado_em, atualizado_em FROM categorias ORDER BY nome LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list categorias: %w", err)
	}
	defer rows.Close()
	var list []*entity.Categoria
	for rows.Next() {
		var c entity.Categoria
		if err := rows.Scan(&c.ID, &c.Nome, &c.Descricao, &c.CriadoEm, &c.AtualizadoEm); err != nil {
			return nil, fmt.Errorf("scan categoria: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Exists verifica se uma categoria existe.
func (r *CategoriaRepo) Exists(id string) (bool, error) {
	var ok bool
	err := r.q.QueryRow(context.Background(), `SELECT EXISTS (SELECT 1 FROM categorias WHERE id = $1)`, id).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("exists categoria: %w", err)
	}
	return ok, nil
}

// Delete remove uma categoria. Categorias referenciadas por produtos são
// protegidas pelo delete-restrict do banco.
func (r *CategoriaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM categorias WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflito
		}
		return fmt.Errorf("delete categoria: %w", err)
	}
	return nil
}
