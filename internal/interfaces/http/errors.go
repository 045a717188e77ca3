package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/estoqueio/estoque-api/internal/application/dto"
	"github.com/estoqueio/estoque-api/internal/domain"
	"github.com/estoqueio/estoque-api/pkg/validator"
)

// shapeInvalido valida as tags `validate` do DTO e devolve um erro de validação
// de domínio com os campos que falharam, ou nil se o shape está correto.
func shapeInvalido(in interface{}) error {
	erros := validator.ValidarStruct(in)
	if len(erros) == 0 {
		return nil
	}
	campos := make([]string, 0, len(erros))
	for _, e := range erros {
		campos = append(campos, e.Campo)
	}
	return &domain.ErroValidacao{Campos: campos}
}

// respondError converte um erro de domínio no status e corpo HTTP
// correspondentes. Erros tipados carregam contexto extra no corpo: a lista de
// campos inválidos ou o estado do estoque na violação.
func respondError(c *fiber.Ctx, err error) error {
	var ev *domain.ErroValidacao
	if errors.As(err, &ev) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: ev.Error(), Campos: ev.Campos,
		})
	}
	var er *domain.ErroReferencia
	if errors.As(err, &er) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NOT_FOUND", Message: er.Error(), Campos: []string{er.Campo},
		})
	}
	var ee *domain.ErroEstoque
	if errors.As(err, &ee) {
		atual, solicitada := ee.Atual, ee.Solicitada
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "INSUFFICIENT_STOCK", Message: ee.Error(),
			EstoqueAtual: &atual, QuantidadeSolicitada: &solicitada,
		})
	}

	switch {
	case errors.Is(err, domain.ErrEntradaInvalida):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrEmailJaCadastrado),
		errors.Is(err, domain.ErrCPFJaCadastrado),
		errors.Is(err, domain.ErrDuplicado):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	case errors.Is(err, domain.ErrNaoEncontrado),
		errors.Is(err, domain.ErrUsuarioNaoEncontrado):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrNaoAutorizado):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: err.Error()})
	case errors.Is(err, domain.ErrAcessoNegado):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()})
	case errors.Is(err, domain.ErrEstoqueInsuficiente):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
	case errors.Is(err, domain.ErrConflito):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
}
