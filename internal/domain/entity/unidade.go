package entity

import "time"

// Unidade representa uma filial ou almoxarifado onde o estoque é mantido.
// Produtos, usuários e movimentações são sempre vinculados a uma unidade.
type Unidade struct {
	ID           string
	Nome         string
	Descricao    string
	Endereco     string
	Cidade       string
	Estado       string
	CriadoEm     time.Time
	AtualizadoEm time.Time
}
