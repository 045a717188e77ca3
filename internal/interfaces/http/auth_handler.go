package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/estoqueio/estoque-api/internal/application/auth"
	"github.com/estoqueio/estoque-api/internal/application/dto"
)

// AuthHandler trata cadastro, login e recuperação de senha.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler constrói o handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Registrar godoc
// @Summary      Cadastrar usuário
// @Description  Cria um usuário com status pendente, aguardando aprovação de um gerente.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarUsuarioRequest  true  "nome, email, senha, cpf, unidade_id; cargo opcional"
// @Success      201   {object}  dto.UsuarioResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/registrar [post]
func (h *AuthHandler) Registrar(c *fiber.Ctx) error {
	var in dto.RegistrarUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := shapeInvalido(in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Registrar(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login godoc
// @Summary      Iniciar sessão
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, senha"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := shapeInvalido(in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RecuperarSenha godoc
// @Summary      Solicitar recuperação de senha
// @Description  Envia um token de redefinição por e-mail. Responde 202 mesmo
// @Description  para e-mails desconhecidos, sem revelar se o cadastro existe.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecuperarSenhaRequest  true  "email"
// @Success      202   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/recuperar-senha [post]
func (h *AuthHandler) RecuperarSenha(c *fiber.Ctx) error {
	var in dto.RecuperarSenhaRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := shapeInvalido(in); err != nil {
		return respondError(c, err)
	}
	if err := h.uc.RecuperarSenha(in); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"message": "se o e-mail existir, as instruções foram enviadas"})
}

// RedefinirSenha godoc
// @Summary      Redefinir senha com token de recuperação
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RedefinirSenhaRequest  true  "token, nova_senha"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/redefinir-senha [post]
func (h *AuthHandler) RedefinirSenha(c *fiber.Ctx) error {
	var in dto.RedefinirSenhaRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := shapeInvalido(in); err != nil {
		return respondError(c, err)
	}
	if err := h.uc.RedefinirSenha(in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "senha redefinida"})
}
