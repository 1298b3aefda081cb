// Package cli presenta el estado de los casos de uso en la terminal.
// Cada vista escribe sobre un io.Writer, nunca directamente sobre stdout,
// para que las pruebas puedan capturar la salida.
package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ceo-client/internal/domain"
)

// SinOfertasMsg es el estado vacío del listado: cero resultados tras aplicar
// filtros es un estado válido, no un error.
const SinOfertasMsg = "No se encontraron ofertas que coincidan con tu búsqueda."

// SinCursosMsg es el estado vacío del catálogo de cursos.
const SinCursosMsg = "No se encontraron cursos disponibles."

// RenderError traduce un error del dominio a un mensaje accionable. Para
// errores recuperables (timeout, conexión, 5xx) sugiere reintentar; los
// demás se muestran tal cual.
func RenderError(w io.Writer, err error) {
	switch {
	case errors.Is(err, domain.ErrSesionRequerida):
		fmt.Fprintln(w, "Debes iniciar sesión para realizar esta acción.")
	case errors.Is(err, domain.ErrRolNoPermitido):
		fmt.Fprintln(w, "Tu tipo de cuenta no permite realizar esta acción.")
	case errors.Is(err, domain.ErrNoEncontrado):
		fmt.Fprintln(w, "El recurso solicitado no existe o fue retirado.")
	case errors.Is(err, domain.ErrIDNoEspecificado):
		fmt.Fprintln(w, "No se especificó qué elemento consultar.")
	case domain.EsRecuperable(err):
		fmt.Fprintf(w, "Error al cargar los datos: %v\n", err)
		fmt.Fprintln(w, "Verifica tu conexión e intenta de nuevo (Recargar).")
	default:
		fmt.Fprintf(w, "Error: %v\n", err)
	}
}

// rangoSalarial arma la etiqueta de salario de una oferta. Un máximo en cero
// significa que no hay tope declarado.
func rangoSalarial(min, max decimal.Decimal) string {
	switch {
	case min.IsZero() && max.IsZero():
		return "A convenir"
	case max.IsZero():
		return fmt.Sprintf("Desde $%s", formatearMonto(min))
	case min.IsZero():
		return fmt.Sprintf("Hasta $%s", formatearMonto(max))
	default:
		return fmt.Sprintf("$%s - $%s", formatearMonto(min), formatearMonto(max))
	}
}

// formatearMonto agrupa los miles con punto, al estilo de los montos en COP.
func formatearMonto(d decimal.Decimal) string {
	entero := d.Truncate(0).String()
	neg := strings.HasPrefix(entero, "-")
	if neg {
		entero = entero[1:]
	}
	var b strings.Builder
	for i, r := range entero {
		if i > 0 && (len(entero)-i)%3 == 0 {
			b.WriteRune('.')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

func oNoEspecificado(s string) string {
	if strings.TrimSpace(s) == "" {
		return "No especificado"
	}
	return s
}
