package importer

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/acervotec/patrimonio-api/internal/domain"
	"github.com/acervotec/patrimonio-api/internal/domain/entity"
)

// Tokens afirmativos para el campo inalienable; cualquier otro valor es false.
var affirmativeTokens = map[string]bool{
	"sí": true, "si": true, "sim": true, "yes": true, "true": true, "1": true,
}

// Formatos de fecha aceptados para la fecha de adquisición.
var dateLayouts = []string{"02/01/2006", "2006-01-02", "02-01-2006"}

// MapRow transforma una fila normalizada en un Asset listo para persistir.
// La única causa de rechazo es name/code vacíos (regla 1); el resto de campos
// se coercionan en modo best-effort y nunca invalidan la fila. Mapeo campo a
// campo explícito para que las reglas requerido-vs-opcional sean auditables.
func MapRow(row RawRow, ownerID string, now time.Time) (*entity.Asset, error) {
	name := strings.TrimSpace(row[FieldName])
	code := strings.TrimSpace(row[FieldCode])
	if name == "" || code == "" {
		return nil, domain.ErrMissingRequiredFields
	}

	return &entity.Asset{
		ID:              uuid.New().String(),
		OwnerID:         ownerID,
		Name:            name,
		Code:            code,
		Location:        optional(row, FieldLocation),
		Unit:            optional(row, FieldUnit),
		Status:          entity.ParseStatus(row[FieldStatus]),
		AcquisitionDate: parseDate(row[FieldAcquisitionDate]),
		Value:           parseValue(row[FieldValue]),
		SerialNumber:    optional(row, FieldSerialNumber),
		Color:           optional(row, FieldColor),
		Manufacturer:    optional(row, FieldManufacturer),
		Model:           optional(row, FieldModel),
		Capacity:        optional(row, FieldCapacity),
		Voltage:         optional(row, FieldVoltage),
		Origin:          optional(row, FieldOrigin),
		Condition:       optional(row, FieldCondition),
		Holder:          optional(row, FieldHolder),
		Inalienable:     parseAffirmative(row[FieldInalienable]),
		Notes:           optional(row, FieldNotes),
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

func optional(row RawRow, key string) string {
	return strings.TrimSpace(row[key])
}

// parseValue interpreta el valor monetario con convención de coma decimal:
// "2.500,00" -> 2500.00. Si hay coma, los puntos son separadores de miles y
// se descartan. Entrada vacía o no numérica produce null — nunca un centinela
// inválido camino a la persistencia.
func parseValue(s string) decimal.NullDecimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.NullDecimal{}
	}
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

// parseAffirmative coerción booleana case-insensitive contra la tabla de
// tokens afirmativos.
func parseAffirmative(s string) bool {
	return affirmativeTokens[strings.ToLower(strings.TrimSpace(s))]
}

// parseDate intenta los formatos conocidos; una fecha ilegible queda en null.
func parseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
