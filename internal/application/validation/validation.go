// Package validation reúne as validações de negócio puras usadas pelo motor
// de movimentação e pelos cadastros: campos obrigatórios, positividade e
// existência de referências.
package validation

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/estoqueio/estoque-api/internal/domain"
)

// CamposAusentes devolve, na ordem recebida, os nomes cujo valor está ausente,
// nulo ou (após coerção para string) vazio/somente espaços. A ordem de entrada
// é preservada para que a mensagem de erro seja determinística.
func CamposAusentes(valores map[string]any, campos []string) []string {
	var ausentes []string
	for _, campo := range campos {
		v, ok := valores[campo]
		if !ok || v == nil {
			ausentes = append(ausentes, campo)
			continue
		}
		if strings.TrimSpace(fmt.Sprintf("%v", v)) == "" {
			ausentes = append(ausentes, campo)
		}
	}
	return ausentes
}

// ValidarObrigatorios devolve ErroValidacao se algum campo obrigatório faltar.
func ValidarObrigatorios(valores map[string]any, campos []string) error {
	if ausentes := CamposAusentes(valores, campos); len(ausentes) > 0 {
		return &domain.ErroValidacao{Campos: ausentes}
	}
	return nil
}

// NaoNegativo verifica valor >= 0. Usado para preços.
func NaoNegativo(v decimal.Decimal) bool {
	return !v.IsNegative()
}

// Positivo verifica valor > 0. Usado para quantidades.
func Positivo(q int64) bool {
	return q > 0
}

// Existencia é a capacidade mínima que uma verificação de referência precisa.
// Implementada pelos repositórios de cada entidade.
type Existencia interface {
	Exists(id string) (bool, error)
}

// Referencia associa um id a verificar ao rótulo do campo que o referencia.
type Referencia struct {
	Fonte Existencia
	ID    string
	Campo string
}

// VerificarReferencias checa cada referência em sequência e interrompe na
// primeira ausente, devolvendo ErroReferencia com o campo ofensor. Entradas
// posteriores não são consultadas após uma falha.
func VerificarReferencias(refs []Referencia) error {
	for _, ref := range refs {
		ok, err := ref.Fonte.Exists(ref.ID)
		if err != nil {
			return fmt.Errorf("verificar %s: %w", ref.Campo, err)
		}
		if !ok {
			return &domain.ErroReferencia{Campo: ref.Campo}
		}
	}
	return nil
}
