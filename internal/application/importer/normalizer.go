package importer

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Claves canónicas de los campos de un bien, independientes del idioma de la
// cabecera del archivo de origen.
const (
	FieldName            = "name"
	FieldCode            = "code"
	FieldLocation        = "location"
	FieldUnit            = "unit"
	FieldStatus          = "status"
	FieldAcquisitionDate = "acquisition_date"
	FieldValue           = "value"
	FieldSerialNumber    = "serial_number"
	FieldColor           = "color"
	FieldManufacturer    = "manufacturer"
	FieldModel           = "model"
	FieldCapacity        = "capacity"
	FieldVoltage         = "voltage"
	FieldOrigin          = "origin"
	FieldCondition       = "condition"
	FieldHolder          = "holder"
	FieldInalienable     = "inalienable"
	FieldNotes           = "notes"
)

// HeaderNormalizer traduce cabeceras arbitrarias de un archivo tabular a
// claves canónicas. La búsqueda ignora mayúsculas y acentos; las cabeceras no
// reconocidas pasan sin cambios (las columnas desconocidas se conservan, no se
// descartan). La tabla de sinónimos se inyecta para que los tests puedan usar
// vocabularios alternativos.
type HeaderNormalizer struct {
	synonyms map[string]string
}

// NewHeaderNormalizer construye el normalizador con el vocabulario por defecto
// (variantes en español, portugués e inglés, con y sin acentos).
func NewHeaderNormalizer() *HeaderNormalizer {
	return NewHeaderNormalizerWith(defaultVocabulary())
}

// NewHeaderNormalizerWith construye el normalizador con un vocabulario propio
// (sinónimo -> clave canónica). Las claves del mapa se pliegan igual que las
// cabeceras entrantes.
func NewHeaderNormalizerWith(vocabulary map[string]string) *HeaderNormalizer {
	folded := make(map[string]string, len(vocabulary))
	for syn, canon := range vocabulary {
		folded[foldKey(syn)] = canon
	}
	return &HeaderNormalizer{synonyms: folded}
}

// Normalize devuelve la clave canónica de una cabecera, o la cabecera tal cual
// (recortada) si no está en la tabla. Nunca falla.
func (n *HeaderNormalizer) Normalize(header string) string {
	if canon, ok := n.synonyms[foldKey(header)]; ok {
		return canon
	}
	return strings.TrimSpace(header)
}

// foldKey pliega una cabecera para la búsqueda: minúsculas, sin espacios en
// los extremos y sin marcas diacríticas (NFD + eliminación de Mn + NFC).
func foldKey(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return strings.ToLower(strings.TrimSpace(s))
	}
	return folded
}

// defaultVocabulary tabla sinónimo -> clave canónica. Se pliega al construir
// el normalizador, así que aquí pueden escribirse con acentos.
func defaultVocabulary() map[string]string {
	return map[string]string{
		// name
		"nombre": FieldName, "nome": FieldName, "name": FieldName,
		"nombre del bien": FieldName, "descripción del bien": FieldName,
		// code
		"código": FieldCode, "codigo": FieldCode, "code": FieldCode,
		"placa": FieldCode, "código patrimonial": FieldCode, "tombo": FieldCode,
		// location
		"ubicación": FieldLocation, "ubicacion": FieldLocation, "localização": FieldLocation,
		"localizacao": FieldLocation, "location": FieldLocation, "local": FieldLocation,
		// unit
		"unidad": FieldUnit, "unidade": FieldUnit, "unit": FieldUnit,
		"dependencia": FieldUnit, "setor": FieldUnit,
		// status
		"estado": FieldStatus, "situação": FieldStatus, "situacao": FieldStatus,
		"status": FieldStatus,
		// acquisition date
		"fecha de adquisición": FieldAcquisitionDate, "fecha adquisición": FieldAcquisitionDate,
		"fecha de compra": FieldAcquisitionDate, "data de aquisição": FieldAcquisitionDate,
		"data de aquisicao": FieldAcquisitionDate, "acquisition date": FieldAcquisitionDate,
		// value
		"valor": FieldValue, "value": FieldValue, "valor de adquisición": FieldValue,
		"costo": FieldValue, "custo": FieldValue,
		// serial number
		"número de serie": FieldSerialNumber, "numero de serie": FieldSerialNumber,
		"serie": FieldSerialNumber, "número de série": FieldSerialNumber,
		"serial": FieldSerialNumber, "serial number": FieldSerialNumber,
		// color
		"color": FieldColor, "cor": FieldColor, "colour": FieldColor,
		// manufacturer
		"fabricante": FieldManufacturer, "marca": FieldManufacturer,
		"manufacturer": FieldManufacturer,
		// model
		"modelo": FieldModel, "model": FieldModel,
		// capacity
		"capacidad": FieldCapacity, "capacidade": FieldCapacity, "capacity": FieldCapacity,
		// voltage
		"voltaje": FieldVoltage, "voltagem": FieldVoltage, "tensión": FieldVoltage,
		"voltage": FieldVoltage,
		// origin
		"procedencia": FieldOrigin, "origen": FieldOrigin, "origem": FieldOrigin,
		"origin": FieldOrigin,
		// condition
		"condición": FieldCondition, "condicion": FieldCondition,
		"estado de conservación": FieldCondition, "estado de conservação": FieldCondition,
		"condition": FieldCondition,
		// holder
		"responsable": FieldHolder, "responsável": FieldHolder, "responsavel": FieldHolder,
		"custodio": FieldHolder, "holder": FieldHolder,
		// inalienable
		"inalienable": FieldInalienable, "inalienável": FieldInalienable,
		"inalienavel": FieldInalienable, "inembargable": FieldInalienable,
		// notes
		"observaciones": FieldNotes, "observações": FieldNotes, "observacoes": FieldNotes,
		"notas": FieldNotes, "notes": FieldNotes,
	}
}
