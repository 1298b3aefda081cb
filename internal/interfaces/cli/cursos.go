package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/jhoicas/ceo-client/internal/application/dto"
	"github.com/jhoicas/ceo-client/internal/domain/entity"
)

// RenderCursos pinta el catálogo de cursos visible para el usuario.
func RenderCursos(w io.Writer, cursos []*entity.Curso) {
	if len(cursos) == 0 {
		fmt.Fprintln(w, SinCursosMsg)
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTÍTULO\tNIVEL\tDURACIÓN\tFORMATO")
	for _, c := range cursos {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%dh\t%s\n",
			c.ID, c.Titulo, c.NivelDificultad, c.DuracionEstimada,
			oNoEspecificado(strings.Join(c.FormatoContenido, ", ")))
	}
	tw.Flush()
}

// RenderDetalleCurso pinta la vista completa de un curso.
func RenderDetalleCurso(w io.Writer, c *entity.Curso) {
	fmt.Fprintf(w, "%s\n%s\n\n", c.Titulo, strings.Repeat("=", len(c.Titulo)))
	fmt.Fprintf(w, "Nivel:    %s\n", c.NivelDificultad)
	fmt.Fprintf(w, "Duración: %d horas\n", c.DuracionEstimada)
	if c.OfertaAsociada != nil {
		fmt.Fprintf(w, "Asociado a la oferta #%d\n", *c.OfertaAsociada)
	}
	fmt.Fprintf(w, "\nDescripción\n%s\n", oNoEspecificado(c.Descripcion))
	fmt.Fprintf(w, "\nObjetivos\n%s\n", oNoEspecificado(c.Objetivos))
	fmt.Fprintf(w, "\nTemario\n%s\n", oNoEspecificado(c.Temario))
}

// RenderResultadoInscripcion confirma la inscripción a un curso.
func RenderResultadoInscripcion(w io.Writer, r *dto.ResultadoInscripcion) {
	if r.YaInscrito {
		fmt.Fprintf(w, "Ya estabas inscrito en este curso (progreso: %.0f%%).\n", r.Inscripcion.Progreso)
		return
	}
	fmt.Fprintln(w, "¡Inscripción exitosa! Ya puedes comenzar el curso.")
}

// RenderSesion muestra quién está autenticado, o el estado anónimo.
func RenderSesion(w io.Writer, s *entity.Sesion) {
	if s == nil {
		fmt.Fprintln(w, "No hay una sesión activa.")
		return
	}
	fmt.Fprintf(w, "Sesión activa: %s (user_id %d, rol %s)\n", oNoEspecificado(s.Nombre), s.UserID, s.Rol)
}
