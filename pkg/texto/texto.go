// Package texto ofrece comparación de texto insensible a mayúsculas y
// acentos para la búsqueda libre ("Bogotá" encuentra "bogota" y viceversa).
package texto

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// quitaDiacriticos descompone (NFD) y elimina las marcas combinantes.
var quitaDiacriticos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalizar devuelve el texto en minúsculas, sin tildes y sin espacios
// sobrantes en los extremos.
func Normalizar(s string) string {
	plano, _, err := transform.String(quitaDiacriticos, s)
	if err != nil {
		plano = s
	}
	return strings.ToLower(strings.TrimSpace(plano))
}

// Contiene indica si sub aparece dentro de s, comparando formas normalizadas.
func Contiene(s, sub string) bool {
	return strings.Contains(Normalizar(s), Normalizar(sub))
}
