package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/estoqueio/estoque-api/internal/application/auth"
	"github.com/estoqueio/estoque-api/internal/application/authz"
	"github.com/estoqueio/estoque-api/internal/application/movement"
	"github.com/estoqueio/estoque-api/internal/application/usecase"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	UnidadeUC    *usecase.UnidadeUseCase
	CategoriaUC  *usecase.CategoriaUseCase
	UsuarioUC    *usecase.UsuarioUseCase
	ProdutoUC    *usecase.ProdutoUseCase
	RegistrarMov *movement.RegistrarMovimentacaoUseCase
	ConsultarMov *movement.ConsultarMovimentacoesUseCase
	Resolver     *authz.Resolver
	JWTSecret    string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/registrar", authHandler.Registrar)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/recuperar-senha", authHandler.RecuperarSenha)
	authGroup.Post("/redefinir-senha", authHandler.RedefinirSenha)

	// Rotas protegidas (exigem Bearer Token de sessão)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	movHandler := NewMovimentacaoHandler(deps.RegistrarMov, deps.ConsultarMov, deps.Resolver)

	// Unidades (protegido; escrita exige gerente)
	unidades := protected.Group("/unidades")
	unidadeHandler := NewUnidadeHandler(deps.UnidadeUC, deps.Resolver)
	unidades.Post("/", unidadeHandler.Criar)
	unidades.Get("/", unidadeHandler.Listar)
	unidades.Get("/:id", unidadeHandler.GetByID)
	unidades.Put("/:id", unidadeHandler.Atualizar)
	unidades.Delete("/:id", unidadeHandler.Excluir)
	unidades.Get("/:id/movimentacoes", movHandler.ListarPorUnidade)

	// Categorias (protegido; escrita exige gerente)
	categorias := protected.Group("/categorias")
	categoriaHandler := NewCategoriaHandler(deps.CategoriaUC, deps.Resolver)
	categorias.Post("/", categoriaHandler.Criar)
	categorias.Get("/", categoriaHandler.Listar)
	categorias.Get("/:id", categoriaHandler.GetByID)
	categorias.Put("/:id", categoriaHandler.Atualizar)
	categorias.Delete("/:id", categoriaHandler.Excluir)

	// Usuários (protegido; aprovação exige gerente)
	usuarios := protected.Group("/usuarios")
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC, deps.Resolver)
	usuarios.Get("/", usuarioHandler.Listar)
	usuarios.Get("/:id", usuarioHandler.GetByID)
	usuarios.Put("/:id", usuarioHandler.Atualizar)
	usuarios.Post("/:id/aprovar", usuarioHandler.Aprovar)
	usuarios.Post("/:id/rejeitar", usuarioHandler.Rejeitar)

	// Produtos (protegido)
	produtos := protected.Group("/produtos")
	produtoHandler := NewProdutoHandler(deps.ProdutoUC, deps.Resolver)
	produtos.Post("/", produtoHandler.Criar)
	produtos.Get("/", produtoHandler.Listar)
	produtos.Get("/:id", produtoHandler.GetByID)
	produtos.Put("/:id", produtoHandler.Atualizar)
	produtos.Post("/:id/aprovar", produtoHandler.Aprovar)
	produtos.Get("/:id/movimentacoes", movHandler.ListarPorProduto)

	// Movimentações (protegido; livro append-only, sem update/delete)
	movimentacoes := protected.Group("/movimentacoes")
	movimentacoes.Post("/", movHandler.Registrar)
}
