package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/acervotec/patrimonio-api/internal/application/dto"
	"github.com/acervotec/patrimonio-api/internal/application/exporter"
	"github.com/acervotec/patrimonio-api/internal/domain"
)

// ExportHandler maneja la exportación del catálogo filtrado a archivo.
type ExportHandler struct {
	uc *exporter.UseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *exporter.UseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// Export godoc
// @Summary      Exportar bienes filtrados
// @Description  Genera el catálogo filtrado completo (sin paginar) en el formato pedido y lo entrega como descarga.
// @Tags         assets
// @Security     Bearer
// @Produce      application/octet-stream
// @Param        format    query  string  true   "csv | xlsx | pdf"
// @Param        search    query  string  false  "Texto a buscar en nombre o código"
// @Param        status    query  string  false  "active | maintenance | decommissioned | all"
// @Param        location  query  string  false  "Ubicación o all"
// @Param        unit      query  string  false  "Unidad o all"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/assets/export [get]
func (h *ExportHandler) Export(c *fiber.Ctx) error {
	ownerID := GetOrgID(c)
	if ownerID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "org_id requerido"})
	}

	format, err := exporter.ParseFormat(c.Query("format"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FORMAT", Message: err.Error()})
	}

	artifact, err := h.uc.Export(ownerID, GetOrgName(c), filterFromQuery(c), format)
	if err != nil {
		if errors.Is(err, domain.ErrNoMatchingRecords) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_RECORDS", Message: "ningún registro coincide con el filtro"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	c.Set(fiber.HeaderContentType, artifact.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+artifact.Filename+`"`)
	return c.Send(artifact.Payload)
}
