package exporter

import (
	"fmt"
	"time"

	"github.com/acervotec/patrimonio-api/internal/domain"
	"github.com/acervotec/patrimonio-api/internal/domain/filter"
	"github.com/acervotec/patrimonio-api/internal/domain/repository"
	"github.com/acervotec/patrimonio-api/pkg/logger"
)

// Artifact resultado derivado de una exportación; no se persiste.
type Artifact struct {
	Format      Format
	Filename    string
	ContentType string
	Payload     []byte
}

// UseCase ejecuta la exportación: una consulta completa (sin paginar) y una
// serialización síncrona. El conjunto de registros es idéntico para cualquier
// formato dado el mismo filtro, porque la consulta ocurre antes de elegir
// serializador y los serializadores nunca re-consultan.
type UseCase struct {
	repo        repository.AssetRepository
	serializers map[Format]Serializer
	log         *logger.Logger
	now         func() time.Time
}

// NewUseCase construye el caso de uso de exportación con los serializadores
// disponibles por formato.
func NewUseCase(repo repository.AssetRepository, serializers map[Format]Serializer, log *logger.Logger) *UseCase {
	return &UseCase{repo: repo, serializers: serializers, log: log, now: time.Now}
}

// Export consulta el subconjunto filtrado completo (orden: creación más
// reciente primero) y lo renderiza en el formato pedido. Un filtro sin
// coincidencias es una condición con nombre, no un archivo vacío silencioso.
func (uc *UseCase) Export(ownerID, ownerName string, spec filter.Spec, format Format) (*Artifact, error) {
	s, ok := uc.serializers[format]
	if !ok {
		return nil, fmt.Errorf("formato %q sin serializador: %w", format, domain.ErrInvalidInput)
	}

	assets, err := uc.repo.SearchAll(ownerID, spec.Constraints())
	if err != nil {
		return nil, fmt.Errorf("consultar bienes para exportar: %w", err)
	}
	if len(assets) == 0 {
		return nil, domain.ErrNoMatchingRecords
	}

	generatedAt := uc.now()
	payload, err := s.Render(assets, generatedAt)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}

	if uc.log != nil {
		uc.log.Info().
			Str("owner_id", ownerID).
			Str("format", string(format)).
			Int("records", len(assets)).
			Msg("exportación generada")
	}

	return &Artifact{
		Format:      format,
		Filename:    BuildFilename(ownerName, s.Extension(), spec, generatedAt),
		ContentType: s.ContentType(),
		Payload:     payload,
	}, nil
}
