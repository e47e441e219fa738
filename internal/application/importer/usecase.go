package importer

import (
	"fmt"
	"time"

	"github.com/acervotec/patrimonio-api/internal/application/dto"
	"github.com/acervotec/patrimonio-api/internal/domain/repository"
	"github.com/acervotec/patrimonio-api/pkg/logger"
)

// ViewInvalidator puerto para invalidar vistas cacheadas del catálogo tras un
// import con al menos un alta.
type ViewInvalidator interface {
	InvalidateOwner(ownerID string)
}

// UseCase orquesta el import masivo de bienes: una pasada secuencial sobre
// las filas, un insert por fila, fallos aislados por fila. El éxito parcial
// es el estado normal: no hay transacción ni rollback sobre el lote.
type UseCase struct {
	repo       repository.AssetRepository
	normalizer *HeaderNormalizer
	cache      ViewInvalidator
	log        *logger.Logger
	now        func() time.Time
}

// NewUseCase construye el caso de uso de import.
func NewUseCase(repo repository.AssetRepository, normalizer *HeaderNormalizer, cache ViewInvalidator, log *logger.Logger) *UseCase {
	return &UseCase{repo: repo, normalizer: normalizer, cache: cache, log: log, now: time.Now}
}

// ImportFile parsea el archivo delimitado y procesa sus filas. Un error
// estructural (archivo ilegible, sin cabecera) aborta el import completo
// antes de tocar fila alguna y se reporta una sola vez.
func (uc *UseCase) ImportFile(ownerID string, data []byte) (*dto.ImportResult, error) {
	rows, err := ParseDelimited(data, uc.normalizer)
	if err != nil {
		return nil, err
	}
	return uc.Import(ownerID, rows), nil
}

// Import procesa las filas en orden de entrada, estrictamente una a una.
// Cada fila termina en exactamente uno de los dos cubos del resultado; una
// fila fallida jamás aborta las restantes y nunca se reintenta dentro de la
// misma invocación. Los números de fila visibles arrancan en 2: la cabecera
// ocupa la fila 1 del archivo.
func (uc *UseCase) Import(ownerID string, rows []RawRow) *dto.ImportResult {
	result := &dto.ImportResult{Errors: []dto.FieldIssue{}}

	for i, row := range rows {
		if err := uc.importRow(ownerID, row); err != nil {
			result.Errors = append(result.Errors, dto.FieldIssue{
				Row:     i + 2,
				Message: err.Error(),
				Data:    row,
			})
			continue
		}
		result.SuccessCount++
	}

	if result.SuccessCount > 0 && uc.cache != nil {
		uc.cache.InvalidateOwner(ownerID)
	}

	if uc.log != nil {
		uc.log.Info().
			Str("owner_id", ownerID).
			Int("rows", len(rows)).
			Int("imported", result.SuccessCount).
			Int("rejected", len(result.Errors)).
			Msg("import masivo finalizado")
	}
	return result
}

// importRow valida y persiste una fila. Un pánico durante la validación o el
// insert se recupera aquí y se convierte en el error de esa fila.
func (uc *UseCase) importRow(ownerID string, row RawRow) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("error inesperado procesando la fila: %v", r)
		}
	}()

	asset, err := MapRow(row, ownerID, uc.now())
	if err != nil {
		return err
	}
	return uc.repo.Create(asset)
}
