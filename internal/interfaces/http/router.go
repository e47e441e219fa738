package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/acervotec/patrimonio-api/internal/application/exporter"
	"github.com/acervotec/patrimonio-api/internal/application/importer"
	"github.com/acervotec/patrimonio-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AssetUC   *usecase.AssetUseCase
	ImportUC  *importer.UseCase
	ExportUC  *exporter.UseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token emitido por el servicio de auth)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	assets := protected.Group("/assets")
	assetHandler := NewAssetHandler(deps.AssetUC)
	importHandler := NewImportHandler(deps.ImportUC)
	exportHandler := NewExportHandler(deps.ExportUC)

	assets.Get("/", assetHandler.List)
	assets.Post("/", assetHandler.Create)
	assets.Post("/import", importHandler.Import)
	assets.Get("/export", exportHandler.Export)
}
