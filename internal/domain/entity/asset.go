package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Status estado del ciclo de vida de un bien.
type Status string

const (
	StatusActive         Status = "active"
	StatusMaintenance    Status = "maintenance"
	StatusDecommissioned Status = "decommissioned"
)

// ParseStatus interpreta un estado de forma case-insensitive. Cualquier valor
// no reconocido (incluido vacío) cae en StatusActive; el estado nunca es
// motivo de rechazo de una fila.
func ParseStatus(s string) Status {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(StatusMaintenance):
		return StatusMaintenance
	case string(StatusDecommissioned):
		return StatusDecommissioned
	default:
		return StatusActive
	}
}

// Asset representa un bien físico inventariado de una organización.
// Name y Code son obligatorios; Code es único por convención de la
// organización pero no se exige aquí. Nunca se muta ni elimina por el
// pipeline de import/export.
type Asset struct {
	ID              string
	OwnerID         string // organización propietaria; lo inyecta el caller, nunca la fila
	Name            string
	Code            string
	Location        string
	Unit            string
	Status          Status
	AcquisitionDate *time.Time
	Value           decimal.NullDecimal
	SerialNumber    string
	Color           string
	Manufacturer    string
	Model           string
	Capacity        string
	Voltage         string
	Origin          string
	Condition       string
	Holder          string
	Inalienable     bool
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
