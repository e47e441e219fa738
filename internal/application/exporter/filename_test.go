package exporter_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/acervotec/patrimonio-api/internal/application/exporter"
	"github.com/acervotec/patrimonio-api/internal/domain/filter"
)

// TestBuildFilename_Determinista mismo (organización, extensión, filtro,
// minuto) produce siempre el mismo nombre.
func TestBuildFilename_Determinista(t *testing.T) {
	now := time.Date(2026, 1, 2, 20, 4, 30, 0, time.UTC)
	spec := filter.Spec{Status: "active"}

	a := exporter.BuildFilename("Alcaldía Central", "csv", spec, now)
	b := exporter.BuildFilename("Alcaldía Central", "csv", spec, now.Add(20*time.Second))

	assert.Equal(t, a, b, "dos exportaciones del mismo minuto colisionan en nombre por diseño")
}

// TestBuildFilename_ZonaFijaUTCMenos5 la marca de tiempo se expresa en UTC-5,
// no en la zona local del proceso: 20:04 UTC es 15h04.
func TestBuildFilename_ZonaFijaUTCMenos5(t *testing.T) {
	now := time.Date(2026, 1, 2, 20, 4, 0, 0, time.UTC)

	name := exporter.BuildFilename("Alcaldía Central", "csv", filter.Spec{}, now)
	assert.Equal(t, "patrimonio_AlcaldíaCentral_02-01-2026_15h04.csv", name)
}

// TestBuildFilename_SufijosPorFiltroActivo un sufijo _clave-valor por filtro
// activo, con el espacio en blanco del valor eliminado.
func TestBuildFilename_SufijosPorFiltroActivo(t *testing.T) {
	now := time.Date(2026, 1, 2, 20, 4, 0, 0, time.UTC)
	spec := filter.Spec{Status: "active", Location: "Sede Norte", Unit: "all"}

	name := exporter.BuildFilename("Museo", "xlsx", spec, now)
	assert.Equal(t, "patrimonio_Museo_02-01-2026_15h04_estado-active_ubicacion-SedeNorte.xlsx", name)
}
