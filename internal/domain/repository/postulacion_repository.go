package repository

import (
	"context"

	"github.com/jhoicas/ceo-client/internal/domain/entity"
)

// PostulacionRepository define el puerto de acceso a postulaciones.
//
// Crear devuelve yaPostulado=true cuando el backend responde que el usuario
// ya estaba postulado a esa oferta: es un resultado normal, no un error, y
// la postulación devuelta es la existente.
type PostulacionRepository interface {
	Crear(ctx context.Context, usuarioID, ofertaID int64) (postulacion *entity.Postulacion, yaPostulado bool, err error)
	ListarPorUsuario(ctx context.Context, usuarioID int64) ([]*entity.Postulacion, error)
	// CambiarEstado solicita la transición al backend; devuelve la postulación
	// actualizada o ErrTransicionInvalida si el backend la rechaza.
	CambiarEstado(ctx context.Context, id int64, nuevo entity.EstadoPostulacion, actor, observaciones string) (*entity.Postulacion, error)
}

// CursoRepository define el puerto de acceso a cursos e inscripciones.
// Inscribir sigue la misma convención que PostulacionRepository.Crear:
// un duplicado devuelve la inscripción existente con yaInscrito=true.
type CursoRepository interface {
	Listar(ctx context.Context) ([]*entity.Curso, error)
	ObtenerPorID(ctx context.Context, id int64) (*entity.Curso, error)
	Inscribir(ctx context.Context, cursoID, usuarioID int64) (inscripcion *entity.Inscripcion, yaInscrito bool, err error)
}

// SesionProvider expone la sesión activa al resto de componentes.
// (nil, nil) significa anónimo: la ausencia de sesión nunca es un error.
type SesionProvider interface {
	SesionActiva(ctx context.Context) (*entity.Sesion, error)
}
