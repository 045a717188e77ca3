package dto

// PageRequest paginação para listagens.
type PageRequest struct {
	Limit  int `query:"limit" validate:"omitempty,min=1,max=100"`
	Offset int `query:"offset" validate:"omitempty,min=0"`
}

// DefaultPage aplica valores padrão se Limit/Offset forem zero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse metadados de página nas respostas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total,omitempty"`
}

// ErrorResponse corpo de erro HTTP. Os campos opcionais carregam contexto
// adicional: lista de campos inválidos ou estado do estoque em violações de
// regra de negócio.
type ErrorResponse struct {
	Code                 string   `json:"code"`
	Message              string   `json:"message"`
	Campos               []string `json:"campos,omitempty"`
	EstoqueAtual         *int64   `json:"estoque_atual,omitempty"`
	QuantidadeSolicitada *int64   `json:"quantidade_solicitada,omitempty"`
}
