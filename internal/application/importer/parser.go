package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"unicode/utf8"
)

// RawRow una fila del archivo de origen, ya con las cabeceras normalizadas:
// clave canónica -> valor crudo. Efímera; solo existe durante el import.
type RawRow map[string]string

// ParseDelimited convierte el archivo delimitado en filas normalizadas.
// La primera línea no vacía es la cabecera; las líneas en blanco se ignoran.
// Un archivo no parseable o sin cabecera es un error estructural: aborta el
// import completo antes de procesar fila alguna.
func ParseDelimited(data []byte, normalizer *HeaderNormalizer) ([]RawRow, error) {
	r := csv.NewReader(bytes.NewReader(sanitizeUTF8(data)))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("archivo delimitado ilegible: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("el archivo no contiene fila de cabecera")
	}

	header := records[0]
	keys := make([]string, len(header))
	for i, h := range header {
		keys[i] = normalizer.Normalize(h)
	}

	rows := make([]RawRow, 0, len(records)-1)
	for _, record := range records[1:] {
		if isEmptyRecord(record) {
			continue
		}
		row := make(RawRow, len(keys))
		for i, key := range keys {
			if i < len(record) {
				row[key] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// sanitizeUTF8 reemplaza bytes inválidos por U+FFFD para que el reader CSV no
// corte el archivo a mitad de una secuencia corrupta.
func sanitizeUTF8(data []byte) []byte {
	if utf8.Valid(data) {
		return data
	}
	var buf bytes.Buffer
	buf.Grow(len(data))
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size == 1 {
			buf.WriteRune('�')
			data = data[1:]
		} else {
			buf.WriteRune(r)
			data = data[size:]
		}
	}
	return buf.Bytes()
}

func isEmptyRecord(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
