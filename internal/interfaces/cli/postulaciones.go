package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/jhoicas/ceo-client/internal/application/dto"
	"github.com/jhoicas/ceo-client/internal/domain/entity"
)

// RenderResultadoPostulacion confirma el envío de una postulación; si el
// usuario ya estaba postulado lo informa sin tratarlo como error.
func RenderResultadoPostulacion(w io.Writer, r *dto.ResultadoPostulacion) {
	p := r.Postulacion
	if r.YaPostulado {
		fmt.Fprintf(w, "Ya te habías postulado a %q (%s).\n", p.Puesto, oNoEspecificado(p.Empresa))
		return
	}
	fmt.Fprintf(w, "¡Postulación enviada! %s en %s.\n", p.Puesto, oNoEspecificado(p.Empresa))
}

// RenderPostulaciones pinta la tabla de postulaciones del usuario con su
// estado actual. conHistorial agrega las entradas del historial bajo cada fila.
func RenderPostulaciones(w io.Writer, postulaciones []*entity.Postulacion, conHistorial bool) {
	if len(postulaciones) == 0 {
		fmt.Fprintln(w, "Aún no tienes postulaciones.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tPUESTO\tEMPRESA\tESTADO\tFECHA")
	for _, p := range postulaciones {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			p.ID,
			p.Puesto,
			oNoEspecificado(p.Empresa),
			p.EstadoActual,
			p.FechaCreacion.Format("2006-01-02"),
		)
	}
	tw.Flush()

	if !conHistorial {
		return
	}
	for _, p := range postulaciones {
		if len(p.Historial) == 0 {
			continue
		}
		fmt.Fprintf(w, "\nHistorial de #%d:\n", p.ID)
		for _, h := range p.Historial {
			anterior := "—"
			if h.EstadoAnterior != nil {
				anterior = string(*h.EstadoAnterior)
			}
			fmt.Fprintf(w, "  %s  %s -> %s (%s)",
				h.FechaCambio.Format("2006-01-02 15:04"), anterior, h.EstadoNuevo, h.UsuarioCambio)
			if h.Observaciones != "" {
				fmt.Fprintf(w, ": %s", h.Observaciones)
			}
			fmt.Fprintln(w)
		}
	}
}

// RenderCambioEstado confirma una transición de estado aplicada.
func RenderCambioEstado(w io.Writer, p *entity.Postulacion) {
	fmt.Fprintf(w, "Postulación #%d ahora está en estado %q.\n", p.ID, p.EstadoActual)
}
