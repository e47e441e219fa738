package exporter

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/acervotec/patrimonio-api/internal/domain/entity"
)

// Column una columna del contrato compartido de exportación: cabecera visible
// y extracción del valor ya formateado como texto.
type Column struct {
	Header string
	Value  func(a *entity.Asset) string
}

// Columns devuelve la lista ordenada de las 18 columnas de exportación.
// Es la única fuente de verdad del orden y el formato: los tres serializadores
// la consumen tal cual. Cambiarla en un formato sin los demás es un defecto,
// por eso no existe otra copia.
func Columns() []Column {
	return []Column{
		{Header: "Nombre", Value: func(a *entity.Asset) string { return a.Name }},
		{Header: "Código", Value: func(a *entity.Asset) string { return a.Code }},
		{Header: "Estado", Value: func(a *entity.Asset) string { return string(a.Status) }},
		{Header: "Ubicación", Value: func(a *entity.Asset) string { return a.Location }},
		{Header: "Unidad", Value: func(a *entity.Asset) string { return a.Unit }},
		{Header: "Valor", Value: func(a *entity.Asset) string { return FormatValue(a.Value) }},
		{Header: "Fecha de Adquisición", Value: func(a *entity.Asset) string { return FormatDate(a.AcquisitionDate) }},
		{Header: "Fabricante", Value: func(a *entity.Asset) string { return a.Manufacturer }},
		{Header: "Modelo", Value: func(a *entity.Asset) string { return a.Model }},
		{Header: "Color", Value: func(a *entity.Asset) string { return a.Color }},
		{Header: "Número de Serie", Value: func(a *entity.Asset) string { return a.SerialNumber }},
		{Header: "Capacidad", Value: func(a *entity.Asset) string { return a.Capacity }},
		{Header: "Voltaje", Value: func(a *entity.Asset) string { return a.Voltage }},
		{Header: "Condición", Value: func(a *entity.Asset) string { return a.Condition }},
		{Header: "Responsable", Value: func(a *entity.Asset) string { return a.Holder }},
		{Header: "Procedencia", Value: func(a *entity.Asset) string { return a.Origin }},
		{Header: "Inalienable", Value: func(a *entity.Asset) string { return FormatYesNo(a.Inalienable) }},
		{Header: "Observaciones", Value: func(a *entity.Asset) string { return a.Notes }},
	}
}

// FormatYesNo renderiza un booleano con el token localizado, nunca true/false.
func FormatYesNo(b bool) string {
	if b {
		return "Sí"
	}
	return "No"
}

// FormatValue renderiza el valor con punto decimal y dos decimales; null sale
// como cadena vacía.
func FormatValue(v decimal.NullDecimal) string {
	if !v.Valid {
		return ""
	}
	return v.Decimal.StringFixed(2)
}

// FormatDate renderiza la fecha como dd/mm/aaaa; null sale como cadena vacía.
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("02/01/2006")
}
