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

	"github.com/acervotec/patrimonio-api/internal/application/exporter"
	"github.com/acervotec/patrimonio-api/internal/application/importer"
	"github.com/acervotec/patrimonio-api/internal/application/usecase"
	infraexport "github.com/acervotec/patrimonio-api/internal/infrastructure/export"
	"github.com/acervotec/patrimonio-api/internal/infrastructure/memcache"
	"github.com/acervotec/patrimonio-api/internal/infrastructure/postgres"
	httpRouter "github.com/acervotec/patrimonio-api/internal/interfaces/http"
	"github.com/acervotec/patrimonio-api/pkg/config"
	"github.com/acervotec/patrimonio-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	assetRepo := postgres.NewAssetRepository(pool)
	viewCache := memcache.NewAssetViewCache(5 * time.Minute)

	assetUC := usecase.NewAssetUseCase(assetRepo, viewCache)
	importUC := importer.NewUseCase(assetRepo, importer.NewHeaderNormalizer(), viewCache, log)
	exportUC := exporter.NewUseCase(assetRepo, map[exporter.Format]exporter.Serializer{
		exporter.FormatCSV:  infraexport.NewCSVSerializer(),
		exporter.FormatXLSX: infraexport.NewXLSXSerializer(),
		exporter.FormatPDF:  infraexport.NewPDFSerializer(cfg.Export.ReportTitle, cfg.Export.ProductName),
	}, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    httpRouter.MaxImportFileSize + 1024*1024,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Patrimonio API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AssetUC:   assetUC,
		ImportUC:  importUC,
		ExportUC:  exportUC,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
