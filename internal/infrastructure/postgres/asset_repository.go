package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/acervotec/patrimonio-api/internal/domain"
	"github.com/acervotec/patrimonio-api/internal/domain/entity"
	"github.com/acervotec/patrimonio-api/internal/domain/filter"
	"github.com/acervotec/patrimonio-api/internal/domain/repository"
)

var _ repository.AssetRepository = (*AssetRepo)(nil)

const assetColumns = `id, owner_id, name, code, location, unit, status, acquisition_date, value,
		serial_number, color, manufacturer, model, capacity, voltage, origin, condition, holder,
		inalienable, notes, created_at, updated_at`

// Columnas consultables desde restricciones de filtro. Lista cerrada: una
// restricción con campo fuera de esta tabla es un error, no se interpola.
var filterColumns = map[string]string{
	"status":   "status",
	"location": "location",
	"unit":     "unit",
}

// AssetRepo implementación del puerto AssetRepository sobre PostgreSQL (usable con pool o tx).
type AssetRepo struct {
	q Querier
}

// NewAssetRepository construye el adaptador de persistencia para bienes.
func NewAssetRepository(q Querier) *AssetRepo {
	return &AssetRepo{q: q}
}

// Create persiste un bien nuevo. Una violación de unicidad (código duplicado
// en la organización, si la DB lo exige) se reporta como ErrDuplicate.
func (r *AssetRepo) Create(a *entity.Asset) error {
	query := `
		INSERT INTO assets (` + assetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.OwnerID, a.Name, a.Code, a.Location, a.Unit, string(a.Status), a.AcquisitionDate, a.Value,
		a.SerialNumber, a.Color, a.Manufacturer, a.Model, a.Capacity, a.Voltage, a.Origin, a.Condition, a.Holder,
		a.Inalienable, a.Notes, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert asset: %w", err)
	}
	return nil
}

// GetByID obtiene un bien por ID.
func (r *AssetRepo) GetByID(id string) (*entity.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE id = $1`
	a, err := scanAsset(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get asset: %w", err)
	}
	return a, nil
}

// Search lista bienes filtrados con paginación, de creación más reciente a
// más antigua. Comparte buildWhere con SearchAll: misma semántica de filtro
// para el listado en pantalla y la exportación.
func (r *AssetRepo) Search(ownerID string, cons []filter.Constraint, limit, offset int) ([]*entity.Asset, error) {
	where, args, err := buildWhere(ownerID, cons)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`SELECT %s FROM assets WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		assetColumns, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)
	return r.queryAssets(query, args)
}

// SearchAll devuelve el conjunto filtrado completo, sin límite de página.
// Lo usa la exportación.
func (r *AssetRepo) SearchAll(ownerID string, cons []filter.Constraint) ([]*entity.Asset, error) {
	where, args, err := buildWhere(ownerID, cons)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`SELECT %s FROM assets WHERE %s ORDER BY created_at DESC`, assetColumns, where)
	return r.queryAssets(query, args)
}

func (r *AssetRepo) queryAssets(query string, args []any) ([]*entity.Asset, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("query assets: %w", err)
	}
	defer rows.Close()
	var list []*entity.Asset
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("scan asset: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// buildWhere traduce las restricciones del modelo de filtro a un WHERE
// parametrizado. OpContains aplica el OR name/code con ILIKE; OpEq iguala
// contra la columna homónima de la lista cerrada.
func buildWhere(ownerID string, cons []filter.Constraint) (string, []any, error) {
	clauses := []string{"owner_id = $1"}
	args := []any{ownerID}

	for _, c := range cons {
		n := len(args) + 1
		switch c.Op {
		case filter.OpContains:
			clauses = append(clauses, fmt.Sprintf("(name ILIKE '%%' || $%d || '%%' OR code ILIKE '%%' || $%d || '%%')", n, n))
			args = append(args, c.Value)
		case filter.OpEq:
			col, ok := filterColumns[c.Field]
			if !ok {
				return "", nil, fmt.Errorf("campo de filtro no soportado: %q", c.Field)
			}
			clauses = append(clauses, fmt.Sprintf("%s = $%d", col, n))
			args = append(args, c.Value)
		default:
			return "", nil, fmt.Errorf("operador de filtro no soportado: %q", c.Op)
		}
	}
	return strings.Join(clauses, " AND "), args, nil
}

func scanAsset(row pgx.Row) (*entity.Asset, error) {
	var a entity.Asset
	var status string
	err := row.Scan(
		&a.ID, &a.OwnerID, &a.Name, &a.Code, &a.Location, &a.Unit, &status, &a.AcquisitionDate, &a.Value,
		&a.SerialNumber, &a.Color, &a.Manufacturer, &a.Model, &a.Capacity, &a.Voltage, &a.Origin, &a.Condition, &a.Holder,
		&a.Inalienable, &a.Notes, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	a.Status = entity.Status(status)
	return &a, nil
}
