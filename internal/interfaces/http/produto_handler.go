package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/estoqueio/estoque-api/internal/application/authz"
	"github.com/estoqueio/estoque-api/internal/application/dto"
	"github.com/estoqueio/estoque-api/internal/application/usecase"
)

// ProdutoHandler trata o CRUD e a aprovação de produtos (protegido).
type ProdutoHandler struct {
	uc       *usecase.ProdutoUseCase
	resolver *authz.Resolver
}

// NewProdutoHandler constrói o handler de produtos.
func NewProdutoHandler(uc *usecase.ProdutoUseCase, resolver *authz.Resolver) *ProdutoHandler {
	return &ProdutoHandler{uc: uc, resolver: resolver}
}

// Criar godoc
// @Summary      Cadastrar produto
// @Description  O produto nasce pendente e inativo. Se o ator pode aprovar e
// @Description  informa os dois preços, nasce direto como aprovado.
// @Tags         produtos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CriarProdutoRequest  true  "nome, unidade_id; demais campos opcionais"
// @Success      201   {object}  dto.ProdutoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/produtos [post]
func (h *ProdutoHandler) Criar(c *fiber.Ctx) error {
	escopo, err := resolveEscopo(c, h.resolver)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.CriarProdutoRequest
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
// @Summary      Buscar produto por ID
// @Tags         produtos
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do produto"
// @Success      200  {object}  dto.ProdutoResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/produtos/{id} [get]
func (h *ProdutoHandler) GetByID(c *fiber.Ctx) error {
	escopo, err := resolveEscopo(c, h.resolver)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetByID(escopo, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Listar godoc
// @Summary      Listar produtos
// @Description  Gerente enxerga todas as unidades; os demais cargos só a própria.
// @Tags         produtos
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Tamanho da página (padrão 20)"
// @Param        offset  query  int  false  "Deslocamento"
// @Success      200  {object}  dto.ProdutoListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/produtos [get]
func (h *ProdutoHandler) Listar(c *fiber.Ctx) error {
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

// Atualizar godoc
// @Summary      Atualizar produto
// @Tags         produtos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do produto"
// @Param        body  body  dto.AtualizarProdutoRequest  true  "campos a alterar"
// @Success      200   {object}  dto.ProdutoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/produtos/{id} [put]
func (h *ProdutoHandler) Atualizar(c *fiber.Ctx) error {
	escopo, err := resolveEscopo(c, h.resolver)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.AtualizarProdutoRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Atualizar(escopo, c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Aprovar godoc
// @Summary      Aprovar produto pendente
// @Description  Define os dois preços e muda o status para aprovado. Transição
// @Description  única: reaprovar devolve 409.
// @Tags         produtos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do produto"
// @Param        body  body  dto.AprovarProdutoRequest  true  "preco_custo, preco_venda"
// @Success      200   {object}  dto.ProdutoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/produtos/{id}/aprovar [post]
func (h *ProdutoHandler) Aprovar(c *fiber.Ctx) error {
	escopo, err := resolveEscopo(c, h.resolver)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.AprovarProdutoRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Aprovar(escopo, c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
