package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateAssetRequest body para POST /api/assets (alta manual individual).
type CreateAssetRequest struct {
	Name            string           `json:"name"`
	Code            string           `json:"code"`
	Location        string           `json:"location,omitempty"`
	Unit            string           `json:"unit,omitempty"`
	Status          string           `json:"status,omitempty"`
	AcquisitionDate *time.Time       `json:"acquisition_date,omitempty"`
	Value           *decimal.Decimal `json:"value,omitempty"`
	SerialNumber    string           `json:"serial_number,omitempty"`
	Color           string           `json:"color,omitempty"`
	Manufacturer    string           `json:"manufacturer,omitempty"`
	Model           string           `json:"model,omitempty"`
	Capacity        string           `json:"capacity,omitempty"`
	Voltage         string           `json:"voltage,omitempty"`
	Origin          string           `json:"origin,omitempty"`
	Condition       string           `json:"condition,omitempty"`
	Holder          string           `json:"holder,omitempty"`
	Inalienable     bool             `json:"inalienable,omitempty"`
	Notes           string           `json:"notes,omitempty"`
}

// AssetResponse representación HTTP de un bien.
type AssetResponse struct {
	ID              string           `json:"id"`
	OwnerID         string           `json:"owner_id"`
	Name            string           `json:"name"`
	Code            string           `json:"code"`
	Location        string           `json:"location,omitempty"`
	Unit            string           `json:"unit,omitempty"`
	Status          string           `json:"status"`
	AcquisitionDate *time.Time       `json:"acquisition_date,omitempty"`
	Value           *decimal.Decimal `json:"value,omitempty"`
	SerialNumber    string           `json:"serial_number,omitempty"`
	Color           string           `json:"color,omitempty"`
	Manufacturer    string           `json:"manufacturer,omitempty"`
	Model           string           `json:"model,omitempty"`
	Capacity        string           `json:"capacity,omitempty"`
	Voltage         string           `json:"voltage,omitempty"`
	Origin          string           `json:"origin,omitempty"`
	Condition       string           `json:"condition,omitempty"`
	Holder          string           `json:"holder,omitempty"`
	Inalienable     bool             `json:"inalienable"`
	Notes           string           `json:"notes,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// AssetListResponse página del listado de bienes.
type AssetListResponse struct {
	Items []AssetResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// FieldIssue una fila rechazada durante el import masivo. Data conserva la
// fila original (ya normalizada) para que el usuario corrija y reenvíe solo
// el subconjunto fallido.
type FieldIssue struct {
	Row     int               `json:"row"`
	Message string            `json:"message"`
	Data    map[string]string `json:"data"`
}

// ImportResult resultado de un import masivo. Cada fila de entrada cuenta en
// exactamente uno de los dos cubos: success_count + len(errors) == filas.
type ImportResult struct {
	SuccessCount int          `json:"success_count"`
	Errors       []FieldIssue `json:"errors"`
}
