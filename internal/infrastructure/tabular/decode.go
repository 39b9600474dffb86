package tabular

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Codificaciones que se aceptan para los CSV exportados.
const (
	EncodingUTF8   = "UTF-8"
	EncodingLatin1 = "ISO-8859-1"
	EncodingXLSX   = "XLSX"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DecodeText devuelve el contenido como UTF-8 y la codificación detectada.
// Si los bytes son UTF-8 válido se usan tal cual (sin BOM); si no, se
// interpretan como ISO-8859-1, que es lo que produce Excel en Windows.
func DecodeText(raw []byte) (string, string, error) {
	raw = bytes.TrimPrefix(raw, utf8BOM)
	if utf8.Valid(raw) {
		return string(raw), EncodingUTF8, nil
	}
	out, _, err := transform.Bytes(charmap.ISO8859_1.NewDecoder(), raw)
	if err != nil {
		return "", "", fmt.Errorf("tabular: decodificar ISO-8859-1: %w", err)
	}
	return string(out), EncodingLatin1, nil
}
