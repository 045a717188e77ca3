package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/estoqueio/estoque-api/internal/application/authz"
	"github.com/estoqueio/estoque-api/internal/application/dto"
	"github.com/estoqueio/estoque-api/internal/application/usecase"
)

// UnidadeHandler trata o CRUD de unidades (protegido; escrita exige gerente).
type UnidadeHandler struct {
	uc       *usecase.UnidadeUseCase
	resolver *authz.Resolver
}

// NewUnidadeHandler constrói o handler de unidades.
func NewUnidadeHandler(uc *usecase.UnidadeUseCase, resolver *authz.Resolver) *UnidadeHandler {
	return &UnidadeHandler{uc: uc, resolver: resolver}
}

// Criar godoc
// @Summary      Cadastrar unidade
// @Tags         unidades
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CriarUnidadeRequest  true  "nome; endereco e telefone opcionais"
// @Success      201   {object}  dto.UnidadeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/unidades [post]
func (h *UnidadeHandler) Criar(c *fiber.Ctx) error {
	escopo, err := resolveEscopo(c, h.resolver)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.CriarUnidadeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Criar(escopo, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Buscar unidade por ID
// @Tags         unidades
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID da unidade"
// @Success      200  {object}  dto.UnidadeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/unidades/{id} [get]
func (h *UnidadeHandler) GetByID(c *fiber.Ctx) error {
	if _, err := resolveEscopo(c, h.resolver); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Listar godoc
// @Summary      Listar unidades
// @Tags         unidades
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Tamanho da página (padrão 20)"
// @Param        offset  query  int  false  "Deslocamento"
// @Success      200  {object}  dto.UnidadeListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/unidades [get]
func (h *UnidadeHandler) Listar(c *fiber.Ctx) error {
	if _, err := resolveEscopo(c, h.resolver); err != nil {
		return respondError(c, err)
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	out, err := h.uc.Listar(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Atualizar godoc
// @Summary      Atualizar unidade
// @Tags         unidades
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da unidade"
// @Param        body  body  dto.AtualizarUnidadeRequest  true  "campos a alterar"
// @Success      200   {object}  dto.UnidadeResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/unidades/{id} [put]
func (h *UnidadeHandler) Atualizar(c *fiber.Ctx) error {
	escopo, err := resolveEscopo(c, h.resolver)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.AtualizarUnidadeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Atualizar(escopo, c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Excluir godoc
// @Summary      Excluir unidade
// @Description  Falha com 409 se a unidade ainda for referenciada por usuários,
// @Description  produtos ou movimentações.
// @Tags         unidades
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID da unidade"
// @Success      204  "sem conteúdo"
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/unidades/{id} [delete]
func (h *UnidadeHandler) Excluir(c *fiber.Ctx) error {
	escopo, err := resolveEscopo(c, h.resolver)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Excluir(escopo, c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
