package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/estoqueio/estoque-api/internal/application/authz"
	"github.com/estoqueio/estoque-api/internal/application/dto"
	"github.com/estoqueio/estoque-api/internal/application/usecase"
)

// CategoriaHandler trata o CRUD de categorias (protegido; escrita exige gerente).
type CategoriaHandler struct {
	uc       *usecase.CategoriaUseCase
	resolver *authz.Resolver
}

// NewCategoriaHandler constrói o handler de categorias.
func NewCategoriaHandler(uc *usecase.CategoriaUseCase, resolver *authz.Resolver) *CategoriaHandler {
	return &CategoriaHandler{uc: uc, resolver: resolver}
}

// Criar godoc
// @Summary      Cadastrar categoria
// @Tags         categorias
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CriarCategoriaRequest  true  "nome; descricao opcional"
// @Success      201   {object}  dto.CategoriaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/categorias [post]
func (h *CategoriaHandler) Criar(c *fiber.Ctx) error {
	escopo, err := resolveEscopo(c, h.resolver)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.CriarCategoriaRequest
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
// @Summary      Buscar categoria por ID
// @Tags         categorias
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID da categoria"
// @Success      200  {object}  dto.CategoriaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categorias/{id} [get]
func (h *CategoriaHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar categorias
// @Tags         categorias
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Tamanho da página (padrão 20)"
// @Param        offset  query  int  false  "Deslocamento"
// @Success      200  {object}  dto.CategoriaListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/categorias [get]
func (h *CategoriaHandler) Listar(c *fiber.Ctx) error {
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
// @Summary      Atualizar categoria
// @Tags         categorias
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da categoria"
// @Param        body  body  dto.AtualizarCategoriaRequest  true  "campos a alterar"
// @Success      200   {object}  dto.CategoriaResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/categorias/{id} [put]
func (h *CategoriaHandler) Atualizar(c *fiber.Ctx) error {
	escopo, err := resolveEscopo(c, h.resolver)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.AtualizarCategoriaRequest
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
// @Summary      Excluir categoria
// @Description  Falha com 409 se a categoria ainda for referenciada por produtos.
// @Tags         categorias
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID da categoria"
// @Success      204  "sem conteúdo"
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/categorias/{id} [delete]
func (h *CategoriaHandler) Excluir(c *fiber.Ctx) error {
	escopo, err := resolveEscopo(c, h.resolver)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Excluir(escopo, c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
