package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/estoqueio/estoque-api/internal/application/authz"
	"github.com/estoqueio/estoque-api/internal/application/dto"
	"github.com/estoqueio/estoque-api/internal/application/movement"
	"github.com/estoqueio/estoque-api/internal/domain/entity"
)

// MovimentacaoHandler trata o registro e a consulta de movimentações (protegido).
type MovimentacaoHandler struct {
	registrar *movement.RegistrarMovimentacaoUseCase
	consultar *movement.ConsultarMovimentacoesUseCase
	resolver  *authz.Resolver
}

// NewMovimentacaoHandler constrói o handler de movimentações.
func NewMovimentacaoHandler(
	registrar *movement.RegistrarMovimentacaoUseCase,
	consultar *movement.ConsultarMovimentacoesUseCase,
	resolver *authz.Resolver,
) *MovimentacaoHandler {
	return &MovimentacaoHandler{registrar: registrar, consultar: consultar, resolver: resolver}
}

// Registrar godoc
// @Summary      Registrar movimentação de estoque
// @Description  ENTRADA soma, SAIDA subtrai, AJUSTE define a quantidade absoluta
// @Description  e TRANSFERENCIA move entre unidades. Tudo em uma transação.
// @Tags         movimentacoes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarMovimentacaoRequest  true  "tipo, quantidade, produto_id; unidade_destino_id em TRANSFERENCIA"
// @Success      201   {object}  dto.RegistrarMovimentacaoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movimentacoes [post]
func (h *MovimentacaoHandler) Registrar(c *fiber.Ctx) error {
	escopo, err := resolveEscopo(c, h.resolver)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.RegistrarMovimentacaoRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	res, err := h.registrar.Registrar(c.Context(), escopo, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RegistrarMovimentacaoResponse{
		Movimentacao:      toMovimentacaoResponse(res.Movimentacao),
		EstoqueResultante: res.EstoqueResultante,
	})
}

// ListarPorProduto godoc
// @Summary      Listar movimentações de um produto
// @Tags         movimentacoes
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID do produto"
// @Param        de      query  string  false  "Data inicial (RFC 3339)"
// @Param        ate     query  string  false  "Data final (RFC 3339)"
// @Param        limit   query  int     false  "Tamanho da página (padrão 20)"
// @Param        offset  query  int     false  "Deslocamento"
// @Success      200  {object}  dto.MovimentacaoListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/produtos/{id}/movimentacoes [get]
func (h *MovimentacaoHandler) ListarPorProduto(c *fiber.Ctx) error {
	escopo, err := resolveEscopo(c, h.resolver)
	if err != nil {
		return respondError(c, err)
	}
	de, ate, page, err := parseConsulta(c)
	if err != nil {
		return badBody(c)
	}
	items, err := h.consultar.PorProduto(escopo, c.Params("id"), de, ate, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toMovimentacaoList(items, page))
}

// ListarPorUnidade godoc
// @Summary      Listar movimentações de uma unidade
// @Description  Inclui lançamentos com a unidade como origem ou como destino.
// @Tags         movimentacoes
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID da unidade"
// @Param        de      query  string  false  "Data inicial (RFC 3339)"
// @Param        ate     query  string  false  "Data final (RFC 3339)"
// @Param        limit   query  int     false  "Tamanho da página (padrão 20)"
// @Param        offset  query  int     false  "Deslocamento"
// @Success      200  {object}  dto.MovimentacaoListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/unidades/{id}/movimentacoes [get]
func (h *MovimentacaoHandler) ListarPorUnidade(c *fiber.Ctx) error {
	escopo, err := resolveEscopo(c, h.resolver)
	if err != nil {
		return respondError(c, err)
	}
	de, ate, page, err := parseConsulta(c)
	if err != nil {
		return badBody(c)
	}
	items, err := h.consultar.PorUnidade(escopo, c.Params("id"), de, ate, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toMovimentacaoList(items, page))
}

// parseConsulta extrai o recorte de datas e a paginação da query string.
func parseConsulta(c *fiber.Ctx) (de, ate *time.Time, page dto.PageRequest, err error) {
	if err = c.QueryParser(&page); err != nil {
		return nil, nil, page, err
	}
	page.DefaultPage()
	if s := c.Query("de"); s != "" {
		t, perr := time.Parse(time.RFC3339, s)
		if perr != nil {
			return nil, nil, page, perr
		}
		de = &t
	}
	if s := c.Query("ate"); s != "" {
		t, perr := time.Parse(time.RFC3339, s)
		if perr != nil {
			return nil, nil, page, perr
		}
		ate = &t
	}
	return de, ate, page, nil
}

func toMovimentacaoResponse(m *entity.Movimentacao) dto.MovimentacaoResponse {
	return dto.MovimentacaoResponse{
		ID:               m.ID,
		Tipo:             m.Tipo,
		Quantidade:       m.Quantidade,
		Data:             m.Data,
		Observacao:       m.Observacao,
		Documento:        m.Documento,
		ProdutoID:        m.ProdutoID,
		UsuarioID:        m.UsuarioID,
		UnidadeOrigemID:  m.UnidadeOrigemID,
		UnidadeDestinoID: m.UnidadeDestinoID,
		CriadoEm:         m.CriadoEm,
	}
}

func toMovimentacaoList(items []*entity.Movimentacao, page dto.PageRequest) dto.MovimentacaoListResponse {
	out := dto.MovimentacaoListResponse{
		Items: make([]dto.MovimentacaoResponse, 0, len(items)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, m := range items {
		out.Items = append(out.Items, toMovimentacaoResponse(m))
	}
	return out
}
