package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/acervotec/patrimonio-api/internal/application/dto"
	"github.com/acervotec/patrimonio-api/internal/application/usecase"
	"github.com/acervotec/patrimonio-api/internal/domain"
	"github.com/acervotec/patrimonio-api/internal/domain/filter"
)

// AssetHandler maneja las peticiones HTTP de bienes (protegido).
type AssetHandler struct {
	uc *usecase.AssetUseCase
}

// NewAssetHandler construye el handler.
func NewAssetHandler(uc *usecase.AssetUseCase) *AssetHandler {
	return &AssetHandler{uc: uc}
}

// filterFromQuery arma la Spec de filtro desde los query params. El listado y
// la exportación usan esta misma función: mismos params, misma semántica.
func filterFromQuery(c *fiber.Ctx) filter.Spec {
	return filter.Spec{
		SearchText: c.Query("search"),
		Status:     c.Query("status"),
		Location:   c.Query("location"),
		Unit:       c.Query("unit"),
	}
}

// List godoc
// @Summary      Listar bienes
// @Tags         assets
// @Security     Bearer
// @Produce      json
// @Param        search    query  string  false  "Texto a buscar en nombre o código"
// @Param        status    query  string  false  "active | maintenance | decommissioned | all"
// @Param        location  query  string  false  "Ubicación o all"
// @Param        unit      query  string  false  "Unidad o all"
// @Param        limit     query  int     false  "Límite"   default(20)
// @Param        offset    query  int     false  "Offset"   default(0)
// @Success      200       {object}  dto.AssetListResponse
// @Router       /api/assets [get]
func (h *AssetHandler) List(c *fiber.Ctx) error {
	ownerID := GetOrgID(c)
	if ownerID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "org_id requerido"})
	}
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	out, err := h.uc.List(ownerID, filterFromQuery(c), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear bien individual
// @Tags         assets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAssetRequest  true  "Datos del bien"
// @Success      201   {object}  dto.AssetResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/assets [post]
func (h *AssetHandler) Create(c *fiber.Ctx) error {
	ownerID := GetOrgID(c)
	if ownerID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "org_id requerido"})
	}
	var in dto.CreateAssetRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(ownerID, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingRequiredFields):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "código ya registrado en esta organización"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
