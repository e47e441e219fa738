package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/acervotec/patrimonio-api/internal/application/dto"
	"github.com/acervotec/patrimonio-api/internal/domain"
	"github.com/acervotec/patrimonio-api/internal/domain/entity"
	"github.com/acervotec/patrimonio-api/internal/domain/filter"
	"github.com/acervotec/patrimonio-api/internal/domain/repository"
)

// ListCache puerto de cache de vistas de listado, particionado por
// organización. La invalidación la disparan las escrituras (import y alta
// manual).
type ListCache interface {
	Get(ownerID, key string) (*dto.AssetListResponse, bool)
	Set(ownerID, key string, v *dto.AssetListResponse)
	InvalidateOwner(ownerID string)
}

// AssetUseCase listado paginado y alta manual de bienes. Comparte el modelo
// de filtro con la exportación: misma Spec, mismas restricciones, mismos
// resultados para la misma página.
type AssetUseCase struct {
	repo  repository.AssetRepository
	cache ListCache
}

// NewAssetUseCase construye el caso de uso.
func NewAssetUseCase(repo repository.AssetRepository, cache ListCache) *AssetUseCase {
	return &AssetUseCase{repo: repo, cache: cache}
}

// List lista bienes filtrados con paginación, de más reciente a más antiguo.
func (uc *AssetUseCase) List(ownerID string, spec filter.Spec, limit, offset int) (*dto.AssetListResponse, error) {
	key := listKey(spec, limit, offset)
	if uc.cache != nil {
		if cached, ok := uc.cache.Get(ownerID, key); ok {
			return cached, nil
		}
	}

	list, err := uc.repo.Search(ownerID, spec.Constraints(), limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AssetResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAssetResponse(a))
	}
	resp := &dto.AssetListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}

	if uc.cache != nil {
		uc.cache.Set(ownerID, key, resp)
	}
	return resp, nil
}

// Create alta manual de un bien individual. Aplica las mismas reglas de
// requeridos y defaults que el import masivo.
func (uc *AssetUseCase) Create(ownerID string, in dto.CreateAssetRequest) (*dto.AssetResponse, error) {
	name := strings.TrimSpace(in.Name)
	code := strings.TrimSpace(in.Code)
	if name == "" || code == "" {
		return nil, domain.ErrMissingRequiredFields
	}

	var value decimal.NullDecimal
	if in.Value != nil {
		value = decimal.NullDecimal{Decimal: *in.Value, Valid: true}
	}

	now := time.Now()
	asset := &entity.Asset{
		ID:              uuid.New().String(),
		OwnerID:         ownerID,
		Name:            name,
		Code:            code,
		Location:        strings.TrimSpace(in.Location),
		Unit:            strings.TrimSpace(in.Unit),
		Status:          entity.ParseStatus(in.Status),
		AcquisitionDate: in.AcquisitionDate,
		Value:           value,
		SerialNumber:    strings.TrimSpace(in.SerialNumber),
		Color:           strings.TrimSpace(in.Color),
		Manufacturer:    strings.TrimSpace(in.Manufacturer),
		Model:           strings.TrimSpace(in.Model),
		Capacity:        strings.TrimSpace(in.Capacity),
		Voltage:         strings.TrimSpace(in.Voltage),
		Origin:          strings.TrimSpace(in.Origin),
		Condition:       strings.TrimSpace(in.Condition),
		Holder:          strings.TrimSpace(in.Holder),
		Inalienable:     in.Inalienable,
		Notes:           strings.TrimSpace(in.Notes),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(asset); err != nil {
		return nil, err
	}
	if uc.cache != nil {
		uc.cache.InvalidateOwner(ownerID)
	}
	return toAssetResponse(asset), nil
}

func listKey(spec filter.Spec, limit, offset int) string {
	return fmt.Sprintf("%s|%s|%s|%s|%d|%d", spec.SearchText, spec.Status, spec.Location, spec.Unit, limit, offset)
}

func toAssetResponse(a *entity.Asset) *dto.AssetResponse {
	if a == nil {
		return nil
	}
	var value *decimal.Decimal
	if a.Value.Valid {
		v := a.Value.Decimal
		value = &v
	}
	return &dto.AssetResponse{
		ID:              a.ID,
		OwnerID:         a.OwnerID,
		Name:            a.Name,
		Code:            a.Code,
		Location:        a.Location,
		Unit:            a.Unit,
		Status:          string(a.Status),
		AcquisitionDate: a.AcquisitionDate,
		Value:           value,
		SerialNumber:    a.SerialNumber,
		Color:           a.Color,
		Manufacturer:    a.Manufacturer,
		Model:           a.Model,
		Capacity:        a.Capacity,
		Voltage:         a.Voltage,
		Origin:          a.Origin,
		Condition:       a.Condition,
		Holder:          a.Holder,
		Inalienable:     a.Inalienable,
		Notes:           a.Notes,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}
