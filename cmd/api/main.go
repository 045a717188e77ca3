package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/estoqueio/estoque-api/internal/application/auth"
	"github.com/estoqueio/estoque-api/internal/application/authz"
	"github.com/estoqueio/estoque-api/internal/application/movement"
	"github.com/estoqueio/estoque-api/internal/application/usecase"
	"github.com/estoqueio/estoque-api/internal/infrastructure/mailer"
	"github.com/estoqueio/estoque-api/internal/infrastructure/postgres"
	httpRouter "github.com/estoqueio/estoque-api/internal/interfaces/http"
	"github.com/estoqueio/estoque-api/pkg/config"
	"github.com/estoqueio/estoque-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	unidadeRepo := postgres.NewUnidadeRepository(pool)
	categoriaRepo := postgres.NewCategoriaRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	produtoRepo := postgres.NewProdutoRepository(pool)
	movimentacaoRepo := postgres.NewMovimentacaoRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	resolver := authz.NewResolver(usuarioRepo)
	mail := mailer.New(cfg.SMTP, log)

	authUC := auth.NewAuthUseCase(usuarioRepo, unidadeRepo, mail, auth.JWTConfig{
		Secret:             cfg.JWT.Secret,
		ExpiracaoHoras:     cfg.JWT.ExpiracaoHoras,
		RecuperacaoMinutos: cfg.JWT.RecuperacaoMinutos,
		Issuer:             cfg.JWT.Issuer,
	})
	unidadeUC := usecase.NewUnidadeUseCase(unidadeRepo)
	categoriaUC := usecase.NewCategoriaUseCase(categoriaRepo)
	usuarioUC := usecase.NewUsuarioUseCase(usuarioRepo, unidadeRepo)
	produtoUC := usecase.NewProdutoUseCase(produtoRepo, categoriaRepo, unidadeRepo)
	registrarMovUC := movement.NewRegistrarMovimentacaoUseCase(txRunner, produtoRepo, usuarioRepo, unidadeRepo)
	consultarMovUC := movement.NewConsultarMovimentacoesUseCase(movimentacaoRepo, produtoRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Estoque API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		UnidadeUC:    unidadeUC,
		CategoriaUC:  categoriaUC,
		UsuarioUC:    usuarioUC,
		ProdutoUC:    produtoUC,
		RegistrarMov: registrarMovUC,
		ConsultarMov: consultarMovUC,
		Resolver:     resolver,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
