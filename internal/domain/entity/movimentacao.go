package entity

import "time"

// Tipos de movimentação de estoque.
const (
	TipoEntrada       = "ENTRADA"       // entrada de mercadoria
	TipoSaida         = "SAIDA"         // saída de mercadoria
	TipoTransferencia = "TRANSFERENCIA" // transferência entre unidades
	TipoAjuste        = "AJUSTE"        // ajuste absoluto (define a quantidade, não soma)
)

// TipoValido informa se o tipo de movimentação é um dos reconhecidos.
func TipoValido(tipo string) bool {
	switch tipo {
	case TipoEntrada, TipoSaida, TipoTransferencia, TipoAjuste:
		return true
	}
	return false
}

// Movimentacao é um lançamento imutável do livro de estoque (append-only).
// Uma vez criada, não existe caminho de atualização ou exclusão.
type Movimentacao struct {
	ID               string
	Tipo             string
	Quantidade       int64
	Data             time.Time
	Observacao       string
	Documento        string
	ProdutoID        string
	UsuarioID        string
	UnidadeOrigemID  string
	UnidadeDestinoID string // preenchido apenas em TRANSFERENCIA
	CriadoEm         time.Time
}
