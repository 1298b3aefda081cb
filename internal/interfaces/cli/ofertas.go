package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/jhoicas/ceo-client/internal/application/usecase"
	"github.com/jhoicas/ceo-client/internal/domain/entity"
)

// RenderListado pinta el resultado de la página de búsqueda. Exactamente uno
// de los estados aparece: cargando, error, sin resultados o la tabla.
func RenderListado(w io.Writer, v usecase.VistaListado) {
	if v.Cargando {
		fmt.Fprintln(w, "Cargando ofertas...")
		return
	}
	if v.Err != nil {
		RenderError(w, v.Err)
		return
	}
	if v.SinResultados() {
		fmt.Fprintln(w, SinOfertasMsg)
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTÍTULO\tEMPRESA\tUBICACIÓN\tMODALIDAD\tSALARIO")
	for _, o := range v.Filtradas {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			o.ID,
			o.Titulo,
			oNoEspecificado(o.Empresa),
			oNoEspecificado(o.Ubicacion),
			o.Modalidad,
			rangoSalarial(o.SalarioMin, o.SalarioMax),
		)
	}
	tw.Flush()
	fmt.Fprintf(w, "\n%d de %d ofertas\n", len(v.Filtradas), len(v.Todas))
}

// RenderDetalleOferta pinta la vista de detalle, incluidos los estados de
// referencia ausente y oferta no encontrada.
func RenderDetalleOferta(w io.Writer, v usecase.VistaDetalle) {
	switch v.Estado {
	case usecase.DetalleNoEspecificado:
		fmt.Fprintln(w, "No se especificó ninguna oferta.")
		return
	case usecase.DetalleNoEncontrado:
		fmt.Fprintln(w, "Oferta no encontrada. Puede haber sido retirada.")
		return
	case usecase.DetalleError:
		RenderError(w, v.Err)
		return
	}

	o := v.Oferta
	fmt.Fprintf(w, "%s\n%s\n\n", o.Titulo, strings.Repeat("=", len(o.Titulo)))
	fmt.Fprintf(w, "Empresa:          %s\n", oNoEspecificado(o.Empresa))
	fmt.Fprintf(w, "Sector:           %s\n", oNoEspecificado(o.Sector))
	fmt.Fprintf(w, "Ubicación:        %s\n", oNoEspecificado(o.Ubicacion))
	fmt.Fprintf(w, "Modalidad:        %s\n", o.Modalidad)
	fmt.Fprintf(w, "Tipo de contrato: %s\n", oNoEspecificado(o.TipoContrato))
	fmt.Fprintf(w, "Jornada:          %s\n", oNoEspecificado(o.Jornada))
	fmt.Fprintf(w, "Salario:          %s\n", rangoSalarial(o.SalarioMin, o.SalarioMax))

	fmt.Fprintf(w, "\nDescripción\n%s\n", oNoEspecificado(o.Descripcion))
	fmt.Fprintf(w, "\nResponsabilidades\n%s\n", oNoEspecificado(o.Responsabilidades))
	fmt.Fprintf(w, "\nRequisitos\n%s\n", oNoEspecificado(o.Requisitos))
	if len(o.HabilidadesRequeridas) > 0 {
		fmt.Fprintf(w, "\nHabilidades: %s\n", strings.Join(o.HabilidadesRequeridas, ", "))
	}

	if v.YaPostulado {
		fmt.Fprintln(w, "\n[Ya te postulaste a esta oferta]")
	} else {
		fmt.Fprintln(w, "\n[Postularme]")
	}
}

// RenderOfertaCreada confirma el alta de una oferta.
func RenderOfertaCreada(w io.Writer, o *entity.Oferta) {
	fmt.Fprintf(w, "Oferta creada: #%d %q\n", o.ID, o.Titulo)
}
