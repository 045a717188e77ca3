package dto

import "time"

// CriarCategoriaRequest entrada para criar uma categoria.
type CriarCategoriaRequest struct {
	Nome      string `json:"nome" validate:"required,min=1,max=120"`
	Descricao string `json:"descricao"`
}

// AtualizarCategoriaRequest atualização parcial de uma categoria.
type AtualizarCategoriaRequest struct {
	Nome      *string `json:"nome,omitempty"`
	Descricao *string `json:"descricao,omitempty"`
}

// CategoriaResponse representação de uma categoria nas respostas.
type CategoriaResponse struct {
	ID           string    `json:"id"`
	Nome         string    `json:"nome"`
	Descricao    string    `json:"descricao,omitempty"`
	CriadoEm     time.Time `json:"criado_em"`
	AtualizadoEm time.Time `json:"atualizado_em"`
}

// CategoriaListResponse listagem paginada de categorias.
type CategoriaListResponse struct {
	Items []CategoriaResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
