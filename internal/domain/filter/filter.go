// Package filter define la descripción compartida de subconjuntos del
// catálogo de bienes. La misma Spec alimenta el listado paginado en pantalla
// y la exportación completa, de modo que ambos coinciden siempre sobre qué
// registros aplican.
package filter

import "strings"

// All valor centinela para "sin restricción en este campo".
const All = "all"

// Op operador de una restricción.
type Op string

const (
	// OpEq igualdad exacta sobre un campo.
	OpEq Op = "eq"
	// OpContains subcadena case-insensitive sobre name O code (OR, no AND).
	OpContains Op = "contains"
)

// Constraint una restricción individual de consulta. Las restricciones de una
// Spec se combinan con AND entre sí; OpContains resuelve internamente el OR
// entre name y code.
type Constraint struct {
	Field string
	Op    Op
	Value string
}

// Spec value object inmutable con los criterios de búsqueda. El valor vacío o
// All en Status/Location/Unit significa "sin restricción"; SearchText vacío
// significa "sin búsqueda de texto".
type Spec struct {
	SearchText string
	Status     string
	Location   string
	Unit       string
}

// active indica si un campo de filtro aporta restricción.
func active(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && !strings.EqualFold(v, All)
}

// Constraints construye la secuencia ordenada de restricciones de la Spec.
// Es la única fuente de la semántica de filtrado: cualquier consumidor
// (listado paginado o export) debe pasar por aquí.
func (s Spec) Constraints() []Constraint {
	var cons []Constraint
	if active(s.SearchText) {
		cons = append(cons, Constraint{Field: "search", Op: OpContains, Value: strings.TrimSpace(s.SearchText)})
	}
	if active(s.Status) {
		cons = append(cons, Constraint{Field: "status", Op: OpEq, Value: strings.ToLower(strings.TrimSpace(s.Status))})
	}
	if active(s.Location) {
		cons = append(cons, Constraint{Field: "location", Op: OpEq, Value: strings.TrimSpace(s.Location)})
	}
	if active(s.Unit) {
		cons = append(cons, Constraint{Field: "unit", Op: OpEq, Value: strings.TrimSpace(s.Unit)})
	}
	return cons
}

// ActivePairs devuelve los pares clave-valor de los filtros activos en orden
// fijo, para componer sufijos de nombre de archivo.
func (s Spec) ActivePairs() [][2]string {
	var pairs [][2]string
	if active(s.SearchText) {
		pairs = append(pairs, [2]string{"busqueda", strings.TrimSpace(s.SearchText)})
	}
	if active(s.Status) {
		pairs = append(pairs, [2]string{"estado", strings.ToLower(strings.TrimSpace(s.Status))})
	}
	if active(s.Location) {
		pairs = append(pairs, [2]string{"ubicacion", strings.TrimSpace(s.Location)})
	}
	if active(s.Unit) {
		pairs = append(pairs, [2]string{"unidad", strings.TrimSpace(s.Unit)})
	}
	return pairs
}
