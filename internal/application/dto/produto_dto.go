package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CriarProdutoRequest entrada para criar um produto. Produtos nascem pendentes
// até que custo e venda sejam definidos por um cargo com permissão.
type CriarProdutoRequest struct {
	Nome             string           `json:"nome" validate:"required,min=1,max=200"`
	Descricao        string           `json:"descricao"`
	CodigoBarras     string           `json:"codigo_barras"`
	PrecoCusto       *decimal.Decimal `json:"preco_custo,omitempty"`
	PrecoVenda       *decimal.Decimal `json:"preco_venda,omitempty"`
	QuantidadeMinima int64            `json:"quantidade_minima"`
	DataValidade     *time.Time       `json:"data_validade,omitempty"`
	Lote             string           `json:"lote"`
	Localizacao      string           `json:"localizacao"`
	Imagem           string           `json:"imagem"`
	CategoriaID      string           `json:"categoria_id" validate:"required"`
	UnidadeID        string           `json:"unidade_id"`
}

// AtualizarProdutoRequest entrada para atualizar um produto (campos opcionais).
// Quantidade não é editável por aqui: estoque muda apenas via movimentações.
type AtualizarProdutoRequest struct {
	Nome             *string          `json:"nome,omitempty"`
	Descricao        *string          `json:"descricao,omitempty"`
	CodigoBarras     *string          `json:"codigo_barras,omitempty"`
	PrecoCusto       *decimal.Decimal `json:"preco_custo,omitempty"`
	PrecoVenda       *decimal.Decimal `json:"preco_venda,omitempty"`
	QuantidadeMinima *int64           `json:"quantidade_minima,omitempty"`
	DataValidade     *time.Time       `json:"data_validade,omitempty"`
	Lote             *string          `json:"lote,omitempty"`
	Localizacao      *string          `json:"localizacao,omitempty"`
	Imagem           *string          `json:"imagem,omitempty"`
	CategoriaID      *string          `json:"categoria_id,omitempty"`
}

// AprovarProdutoRequest entrada da aprovação: define os dois preços.
type AprovarProdutoRequest struct {
	PrecoCusto decimal.Decimal `json:"preco_custo"`
	PrecoVenda decimal.Decimal `json:"preco_venda"`
}

// ProdutoResponse representação de um produto nas respostas.
type ProdutoResponse struct {
	ID                string          `json:"id"`
	Nome              string          `json:"nome"`
	Descricao         string          `json:"descricao,omitempty"`
	CodigoBarras      string          `json:"codigo_barras,omitempty"`
	PrecoCusto        decimal.Decimal `json:"preco_custo"`
	PrecoVenda        decimal.Decimal `json:"preco_venda"`
	QuantidadeEstoque int64           `json:"quantidade_estoque"`
	QuantidadeMinima  int64           `json:"quantidade_minima"`
	DataValidade      *time.Time      `json:"data_validade,omitempty"`
	Lote              string          `json:"lote,omitempty"`
	Localizacao       string          `json:"localizacao,omitempty"`
	Imagem            string          `json:"imagem,omitempty"`
	Ativo             bool            `json:"ativo"`
	Status            string          `json:"status"`
	CategoriaID       string          `json:"categoria_id"`
	UnidadeID         string          `json:"unidade_id"`
	UsuarioID         string          `json:"usuario_id"`
	CriadoEm          time.Time       `json:"criado_em"`
	AtualizadoEm      time.Time       `json:"atualizado_em"`
}

// ProdutoListResponse listagem paginada de produtos.
type ProdutoListResponse struct {
	Items []ProdutoResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
