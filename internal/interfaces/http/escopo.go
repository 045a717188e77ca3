package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/estoqueio/estoque-api/internal/application/authz"
	"github.com/estoqueio/estoque-api/internal/domain"
)

// resolveEscopo monta o escopo de autorização do ator autenticado. Cargo,
// status e unidade são relidos do banco a cada requisição; o token só carrega
// identidade.
func resolveEscopo(c *fiber.Ctx, r *authz.Resolver) (*authz.Escopo, error) {
	userID := GetUserID(c)
	if userID == "" {
		return nil, domain.ErrNaoAutorizado
	}
	return r.Resolve(userID)
}
