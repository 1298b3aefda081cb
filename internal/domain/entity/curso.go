package entity

import "time"

// NivelDificultad de un curso.
type NivelDificultad string

const (
	NivelBasico     NivelDificultad = "basico"
	NivelIntermedio NivelDificultad = "intermedio"
	NivelAvanzado   NivelDificultad = "avanzado"
)

// Visibilidad de un curso: público (visible para buscadores) o privado.
type Visibilidad string

const (
	VisibilidadPublico Visibilidad = "publico"
	VisibilidadPrivado Visibilidad = "privado"
)

// Curso representa un curso de formación publicado por una empresa,
// opcionalmente ligado a una oferta de empleo.
type Curso struct {
	ID               int64
	EmpresaID        int64
	Titulo           string
	Descripcion      string
	Objetivos        string
	Temario          string
	DuracionEstimada int // horas
	NivelDificultad  NivelDificultad
	FormatoContenido []string // video, pdf, quiz...
	Visibilidad      Visibilidad
	OfertaAsociada   *int64 // nil si el curso no está ligado a una oferta
	FechaCreacion    time.Time
}

// Inscripcion registra la participación de un usuario en un curso.
type Inscripcion struct {
	ID               int64
	UsuarioID        int64
	CursoID          int64
	Progreso         float64 // porcentaje 0..100
	Estado           string  // no_iniciado, en_progreso, completado
	FechaInscripcion time.Time
}
