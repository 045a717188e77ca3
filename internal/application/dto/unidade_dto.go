package dto

import "time"

// CriarUnidadeRequest entrada para criar uma unidade (filial).
type CriarUnidadeRequest struct {
	Nome      string `json:"nome" validate:"required,min=1,max=120"`
	Descricao string `json:"descricao"`
	Endereco  string `json:"endereco"`
	Cidade    string `json:"cidade"`
	Estado    string `json:"estado" validate:"omitempty,len=2"`
}

// AtualizarUnidadeRequest atualização parcial de uma unidade.
type AtualizarUnidadeRequest struct {
	Nome      *string `json:"nome,omitempty"`
	Descricao *string `json:"descricao,omitempty"`
	Endereco  *string `json:"endereco,omitempty"`
	Cidade    *string `json:"cidade,omitempty"`
	Estado    *string `json:"estado,omitempty" validate:"omitempty,len=2"`
}

// UnidadeResponse representação de uma unidade nas respostas.
type UnidadeResponse struct {
	ID           string    `json:"id"`
	Nome         string    `json:"nome"`
	Descricao    string    `json:"descricao,omitempty"`
	Endereco     string    `json:"endereco,omitempty"`
	Cidade       string    `json:"cidade,omitempty"`
	Estado       string    `json:"estado,omitempty"`
	CriadoEm     time.Time `json:"criado_em"`
	AtualizadoEm time.Time `json:"atualizado_em"`
}

// UnidadeListResponse listagem paginada de unidades.
type UnidadeListResponse struct {
	Items []UnidadeResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
