package repository

import (
	"github.com/acervotec/patrimonio-api/internal/domain/entity"
	"github.com/acervotec/patrimonio-api/internal/domain/filter"
)

// AssetRepository define el puerto de persistencia para Asset (DIP).
// Search y SearchAll comparten la misma traducción de restricciones; la única
// diferencia es que SearchAll no pagina (lo usa la exportación).
type AssetRepository interface {
	Create(asset *entity.Asset) error
	GetByID(id string) (*entity.Asset, error)
	Search(ownerID string, cons []filter.Constraint, limit, offset int) ([]*entity.Asset, error)
	SearchAll(ownerID string, cons []filter.Constraint) ([]*entity.Asset, error)
}
