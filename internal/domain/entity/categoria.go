package entity

import "time"

// Categoria representa uma categoria de produtos.
type Categoria struct {
	ID           string
	Nome         string
	Descricao    string
	CriadoEm     time.Time
	AtualizadoEm time.Time
}
