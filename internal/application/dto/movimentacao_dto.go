package dto

import "time"

// RegistrarMovimentacaoRequest body para POST /api/movimentacoes.
// UnidadeOrigemID é opcional: quando omitido, assume a unidade de lotação do
// ator. UnidadeDestinoID é obrigatório apenas em TRANSFERENCIA.
type RegistrarMovimentacaoRequest struct {
	Tipo             string `json:"tipo"`
	Quantidade       int64  `json:"quantidade"`
	ProdutoID        string `json:"produto_id"`
	Observacao       string `json:"observacao,omitempty"`
	Documento        string `json:"documento,omitempty"`
	UnidadeOrigemID  string `json:"unidade_origem_id,omitempty"`
	UnidadeDestinoID string `json:"unidade_destino_id,omitempty"`
}

// MovimentacaoResponse lançamento do livro de movimentações.
type MovimentacaoResponse struct {
	ID               string    `json:"id"`
	Tipo             string    `json:"tipo"`
	Quantidade       int64     `json:"quantidade"`
	Data             time.Time `json:"data"`
	Observacao       string    `json:"observacao,omitempty"`
	Documento        string    `json:"documento,omitempty"`
	ProdutoID        string    `json:"produto_id"`
	UsuarioID        string    `json:"usuario_id"`
	UnidadeOrigemID  string    `json:"unidade_origem_id,omitempty"`
	UnidadeDestinoID string    `json:"unidade_destino_id,omitempty"`
	CriadoEm         time.Time `json:"criado_em"`
}

// RegistrarMovimentacaoResponse resultado do commit: o lançamento criado e o
// estoque resultante do produto de origem.
type RegistrarMovimentacaoResponse struct {
	Movimentacao      MovimentacaoResponse `json:"movimentacao"`
	EstoqueResultante int64                `json:"estoque_resultante"`
}

// MovimentacaoListResponse listagem paginada de movimentações.
type MovimentacaoListResponse struct {
	Items []MovimentacaoResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}
