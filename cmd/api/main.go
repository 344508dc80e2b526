package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	appanalytics "github.com/lubcarv/gestor-estoque/internal/application/analytics"
	"github.com/lubcarv/gestor-estoque/internal/application/inventory"
	"github.com/lubcarv/gestor-estoque/internal/application/offline"
	"github.com/lubcarv/gestor-estoque/internal/application/report"
	"github.com/lubcarv/gestor-estoque/internal/application/usecase"
	"github.com/lubcarv/gestor-estoque/internal/infrastructure/gateway"
	"github.com/lubcarv/gestor-estoque/internal/infrastructure/localcache"
	httpRouter "github.com/lubcarv/gestor-estoque/internal/interfaces/http"
	"github.com/lubcarv/gestor-estoque/pkg/config"
	"github.com/lubcarv/gestor-estoque/pkg/logger"
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
		Str("backend", cfg.API.BaseURL).
		Msg("iniciando aplicação")

	cache, err := localcache.Open(cfg.Cache.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir cache local")
	}
	defer cache.Close()

	if cfg.Cache.Seed {
		if err := cache.Seed(); err != nil {
			log.Warn().Err(err).Msg("popular dados iniciais")
		}
	}

	api := gateway.New(cfg.API.BaseURL, cfg.API.Timeout)
	coord := offline.NewCoordinator(api, cache, log)

	// Sincronização inicial, melhor esforço: com a API fora do ar seguimos
	// servindo o espelho local.
	startCtx, cancelStart := context.WithTimeout(context.Background(), cfg.API.Timeout)
	if err := coord.PullAll(startCtx); err != nil {
		log.Warn().Err(err).Msg("sincronização inicial indisponível, operando com o cache local")
	}
	cancelStart()

	categoryUC := usecase.NewCategoryUseCase(coord)
	supplierUC := usecase.NewSupplierUseCase(coord)
	productUC := usecase.NewProductUseCase(coord)
	ledger := inventory.NewLedger(coord, log)
	dashboardUC := appanalytics.NewDashboardUseCase(coord)
	exporter := report.NewExporter(coord)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Gestor de Estoque",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		CategoryUC:  categoryUC,
		SupplierUC:  supplierUC,
		ProductUC:   productUC,
		Ledger:      ledger,
		DashboardUC: dashboardUC,
		Exporter:    exporter,
		Cache:       cache,
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
