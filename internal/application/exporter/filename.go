package exporter

import (
	"strings"
	"time"

	"github.com/acervotec/patrimonio-api/internal/domain/filter"
)

const filenamePrefix = "patrimonio"

// artifactZone los artefactos se fechan siempre en UTC-5 (hora de Bogotá),
// no en la zona del navegador del usuario.
var artifactZone = time.FixedZone("UTC-5", -5*60*60)

// BuildFilename compone el nombre determinista del artefacto exportado:
// prefijo fijo, organización, marca de tiempo a precisión de minuto con
// marcador de hora, un sufijo _clave-valor por filtro activo y la extensión.
// Dos exportaciones del mismo minuto con filtros idénticos colisionan en
// nombre; eso es aceptado, no un defecto a proteger.
func BuildFilename(ownerName, ext string, spec filter.Spec, now time.Time) string {
	var b strings.Builder
	b.WriteString(filenamePrefix)
	b.WriteString("_")
	b.WriteString(stripWhitespace(ownerName))
	b.WriteString("_")
	b.WriteString(now.In(artifactZone).Format("02-01-2006_15h04"))
	for _, pair := range spec.ActivePairs() {
		b.WriteString("_")
		b.WriteString(pair[0])
		b.WriteString("-")
		b.WriteString(stripWhitespace(pair[1]))
	}
	b.WriteString(".")
	b.WriteString(ext)
	return b.String()
}

func stripWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
