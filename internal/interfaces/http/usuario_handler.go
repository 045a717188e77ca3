package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/estoqueio/estoque-api/internal/application/authz"
	"github.com/estoqueio/estoque-api/internal/application/dto"
	"github.com/estoqueio/estoque-api/internal/application/usecase"
)

// UsuarioHandler trata consulta, aprovação e atualização de usuários (protegido).
type UsuarioHandler struct {
	uc       *usecase.UsuarioUseCase
	resolver *authz.Resolver
}

// NewUsuarioHandler constrói o handler de usuários.
func NewUsuarioHandler(uc *usecase.UsuarioUseCase, resolver *authz.Resolver) *UsuarioHandler {
	return &UsuarioHandler{uc: uc, resolver: resolver}
}

// GetByID godoc
// @Summary      Buscar usuário por ID
// @Tags         usuarios
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do usuário"
// @Success      200  {object}  dto.UsuarioResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/usuarios/{id} [get]
func (h *UsuarioHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar usuários
// @Description  Gerente enxerga todos; os demais cargos só a própria unidade.
// @Tags         usuarios
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Tamanho da página (padrão 20)"
// @Param        offset  query  int  false  "Deslocamento"
// @Success      200  {object}  dto.UsuarioListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/usuarios [get]
func (h *UsuarioHandler) Listar(c *fiber.Ctx) error {
	escopo, err := resolveEscopo(c, h.resolver)
	if err != nil {
		return respondError(c, err)
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	out, err := h.uc.Listar(escopo, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Aprovar godoc
// @Summary      Aprovar cadastro pendente
// @Description  Somente gerente. O usuário aprovado passa a conseguir logar.
// @Tags         usuarios
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do usuário"
// @Success      200  {object}  dto.UsuarioResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/usuarios/{id}/aprovar [post]
func (h *UsuarioHandler) Aprovar(c *fiber.Ctx) error {
	escopo, err := resolveEscopo(c, h.resolver)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Aprovar(escopo, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Rejeitar godoc
// @Summary      Rejeitar cadastro pendente
// @Tags         usuarios
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do usuário"
// @Success      200  {object}  dto.UsuarioResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/usuarios/{id}/rejeitar [post]
func (h *UsuarioHandler) Rejeitar(c *fiber.Ctx) error {
	escopo, err := resolveEscopo(c, h.resolver)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Rejeitar(escopo, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Atualizar godoc
// @Summary      Atualizar usuário
// @Description  O próprio usuário edita os dados básicos; mudanças de cargo e
// @Description  unidade exigem gerente.
// @Tags         usuarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do usuário"
// @Param        body  body  dto.AtualizarUsuarioRequest  true  "campos a alterar"
// @Success      200   {object}  dto.UsuarioResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/usuarios/{id} [put]
func (h *UsuarioHandler) Atualizar(c *fiber.Ctx) error {
	escopo, err := resolveEscopo(c, h.resolver)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.AtualizarUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Atualizar(escopo, c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
