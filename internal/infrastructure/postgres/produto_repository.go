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

var _ repository.ProdutoRepository = (*ProdutoRepo)(nil)

const produtoCols = `id, nome, descricao, codigo_barras, preco_custo, preco_venda,
		quantidade_estoque, quantidade_minima, data_validade, lote, localizacao, imagem,
		ativo, status, categoria_id, unidade_id, usuario_id, criado_em, atualizado_em`

// ProdutoRepo implementação de ProdutoRepository sobre PostgreSQL (usável com pool ou tx).
type ProdutoRepo struct {
	q Querier
}

// NewProdutoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewProdutoRepository(q Querier) *ProdutoRepo {
	return &ProdutoRepo{q: q}
}

// Create persiste um novo produto.
func (r *ProdutoRepo) Create(produto *entity.Produto) error {
	query := `
		INSERT INTO produtos (` + produtoCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	codigoBarras := (*string)(nil)
	if produto.CodigoBarras != "" {
		codigoBarras = &produto.CodigoBarras
	}
	_, err := r.q.Exec(context.Background(), query,
		produto.ID, produto.Nome, produto.Descricao, codigoBarras,
		produto.PrecoCusto, produto.PrecoVenda,
		produto.QuantidadeEstoque, produto.QuantidadeMinima,
		produto.DataValidade, produto.Lote, produto.Localizacao, produto.Imagem,
		produto.Ativo, produto.Status,
		produto.CategoriaID, produto.UnidadeID, produto.UsuarioID,
		produto.CriadoEm, produto.AtualizadoEm,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert produto: %w", err)
	}
	return nil
}

// GetByID obtém um produto por ID.
func (r *ProdutoRepo) GetByID(id string) (*entity.Produto, error) {
	query := `SELECT ` + produtoCols + ` FROM produtos WHERE id = $1`
	return r.scanOne(query, id)
}

// GetForUpdate obtém o produto bloqueando a linha (SELECT FOR UPDATE).
// Usar apenas com repositório atado a uma transação.
func (r *ProdutoRepo) GetForUpdate(id string) (*entity.Produto, error) {
	query := `SELECT ` + produtoCols + ` FROM produtos WHERE id = $1 FOR UPDATE`
	return r.scanOne(query, id)
}

// GetPorCodigoBarras obtém um produto pelo código de barras.
func (r *ProdutoRepo) GetPorCodigoBarras(codigo string) (*entity.Produto, error) {
	query := `SELECT ` + produtoCols + ` FROM produtos WHERE codigo_barras = $1`
	return r.scanOne(query, codigo)
}

// FindAtivoPorNomeEUnidadeForUpdate localiza o produto ativo de mesmo nome na
// unidade de destino de uma transferência, bloqueando a linha.
// A identidade do produto para fins de transferência é (nome, unidade).
func (r *ProdutoRepo) FindAtivoPorNomeEUnidadeForUpdate(nome, unidadeID string) (*entity.Produto, error) {
	query := `SELECT ` + produtoCols + `
		FROM produtos WHERE nome = $1 AND unidade_id = $2 AND ativo = true
		LIMIT 1 FOR UPDATE`
	return r.scanOne(query, nome, unidadeID)
}

// Update grava todos os campos mutáveis de um produto.
func (r *ProdutoRepo) Update(produto *entity.Produto) error {
	query := `
		UPDATE produtos SET nome = $2, descricao = $3, codigo_barras = $4,
			preco_custo = $5, preco_venda = $6, quantidade_estoque = $7,
			quantidade_minima = $8, data_validade = $9, lote = $10, localizacao = $11,
			imagem = $12, ativo = $13, status = $14, categoria_id = $15,
			atualizado_em = $16
		WHERE id = $1`
	codigoBarras := (*string)(nil)
	if produto.CodigoBarras != "" {
		codigoBarras = &produto.CodigoBarras
	}
	_, err := r.q.Exec(context.Background(), query,
		produto.ID, produto.Nome, produto.Descricao, codigoBarras,
		produto.PrecoCusto, produto.PrecoVenda, produto.QuantidadeEstoque,
		produto.QuantidadeMinima, produto.DataValidade, produto.Lote, produto.Localizacao,
		produto.Imagem, produto.Ativo, produto.Status, produto.CategoriaID,
		produto.AtualizadoEm,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("update produto: %w", err)
	}
	return nil
}

// UpdateEstoque grava a quantidade final e o flag ativo recalculado, mantendo
// a projeção ativo == (quantidade_estoque > 0) consistente em todo caminho de escrita.
func (r *ProdutoRepo) UpdateEstoque(produtoID string, quantidade int64, ativo bool) error {
	query := `
		UPDATE produtos SET quantidade_estoque = $2, ativo = $3, atualizado_em = now()
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, produtoID, quantidade, ativo)
	if err != nil {
		return fmt.Errorf("update estoque: %w", err)
	}
	return nil
}

// ListByUnidade lista produtos de uma unidade com paginação.
func (r *ProdutoRepo) ListByUnidade(unidadeID string, limit, offset int) ([]*entity.Produto, error) {
	query := `SELECT ` + produtoCols + `
		FROM produtos WHERE unidade_id = $1 ORDER BY nome LIMIT $2 OFFSET $3`
	return r.scanMany(query, unidadeID, limit, offset)
}

// List lista produtos de todas as unidades com paginação.
func (r *ProdutoRepo) List(limit, offset int) ([]*entity.Produto, error) {
	query := `SELECT ` + produtoCols + `
		FROM produtos ORDER BY nome LIMIT $1 OFFSET $2`
	return r.scanMany(query, limit, offset)
}

// Exists verifica se um produto existe.
func (r *ProdutoRepo) Exists(id string) (bool, error) {
	var ok bool
	err := r.q.QueryRow(context.Background(), `SELECT EXISTS (SELECT 1 FROM produtos WHERE id = $1)`, id).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("exists produto: %w", err)
	}
	return ok, nil
}

// Delete remove um produto por ID.
func (r *ProdutoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM produtos WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflito
		}
		return fmt.Errorf("delete produto: %w", err)
	}
	return nil
}

func (r *ProdutoRepo) scanOne(query string, args ...any) (*entity.Produto, error) {
	p, err := scanProduto(r.q.QueryRow(context.Background(), query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produto: %w", err)
	}
	return p, nil
}

func (r *ProdutoRepo) scanMany(query string, args ...any) ([]*entity.Produto, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list produtos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Produto
	for rows.Next() {
		p, err := scanProduto(rows)
		if err != nil {
			return nil, fmt.Errorf("scan produto: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func scanProduto(row pgx.Row) (*entity.Produto, error) {
	var p entity.Produto
	var codigoBarras *string
	err := row.Scan(
		&p.ID, &p.Nome, &p.Descricao, &codigoBarras, &p.PrecoCusto, &p.PrecoVenda,
		&p.QuantidadeEstoque, &p.QuantidadeMinima, &p.DataValidade, &p.Lote, &p.Localizacao, &p.Imagem,
		&p.Ativo, &p.Status, &p.CategoriaID, &p.UnidadeID, &p.UsuarioID, &p.CriadoEm, &p.AtualizadoEm,
	)
	if err != nil {
		return nil, err
	}
	if codigoBarras != nil {
		p.CodigoBarras = *codigoBarras
	}
	return &p, nil
}
