package entity

import "time"

// Cargos válidos para Usuario.
const (
	CargoGerente    = "gerente"
	CargoEstoquista = "estoquista"
	CargoFinanceiro = "financeiro"
)

// Status de aprovação de cadastro.
const (
	StatusPendente  = "pendente"
	StatusAprovado  = "aprovado"
	StatusRejeitado = "rejeitado"
)

// Usuario representa um usuário do sistema, sempre vinculado a uma unidade.
// Senha guarda apenas o hash bcrypt; o texto plano nunca é persistido.
type Usuario struct {
	ID           string
	Nome         string
	Email        string
	CPF          string
	Senha        string
	Cargo        string // gerente, estoquista, financeiro
	Status       string // pendente, aprovado, rejeitado
	UnidadeID    string
	CriadoEm     time.Time
	AtualizadoEm time.Time
}
