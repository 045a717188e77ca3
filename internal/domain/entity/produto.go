package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Produto representa um item de estoque, sempre vinculado a uma única unidade.
// Transferências criam um novo registro na unidade de destino em vez de mover
// a linha existente, para preservar o histórico de movimentações.
//
// Ativo é uma projeção denormalizada de QuantidadeEstoque > 0: todo caminho de
// escrita que toca a quantidade recalcula o flag.
type Produto struct {
	ID                string
	Nome              string
	Descricao         string
	CodigoBarras      string // único quando informado
	PrecoCusto        decimal.Decimal
	PrecoVenda        decimal.Decimal
	QuantidadeEstoque int64
	QuantidadeMinima  int64
	DataValidade      *time.Time
	Lote              string
	Localizacao       string
	Imagem            string
	Ativo             bool
	Status            string // pendente, aprovado, rejeitado
	CategoriaID       string
	UnidadeID         string
	UsuarioID         string // criador
	CriadoEm          time.Time
	AtualizadoEm      time.Time
}

// Aprovado indica se o produto já foi precificado e liberado para operações.
func (p *Produto) Aprovado() bool {
	return p.Status == StatusAprovado
}
