package localstore

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/ceo-client/internal/domain"
	"github.com/jhoicas/ceo-client/internal/domain/entity"
)

// SembrarCursos persiste el catálogo de cursos del almacén local. El modo
// respaldo no tiene de dónde descargarlos, así que el catálogo se siembra
// (datos de demostración o un volcado previo del backend).
func SembrarCursos(store *Store, cursos []*entity.Curso) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	return escribirLista(store, archivoCursos, cursos)
}

// CursoLocal implementa repository.CursoRepository sobre el almacén local.
// Solo los cursos públicos son visibles, igual que en el catálogo del backend.
type CursoLocal struct {
	store *Store
}

// NewCursoLocal construye el repositorio de cursos de respaldo.
func NewCursoLocal(store *Store) *CursoLocal {
	return &CursoLocal{store: store}
}

// Listar devuelve los cursos públicos persistidos.
func (r *CursoLocal) Listar(_ context.Context) ([]*entity.Curso, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cursos, err := leerLista[*entity.Curso](r.store, archivoCursos)
	if err != nil {
		return nil, err
	}
	publicos := make([]*entity.Curso, 0, len(cursos))
	for _, c := range cursos {
		if c.Visibilidad != entity.VisibilidadPrivado {
			publicos = append(publicos, c)
		}
	}
	return publicos, nil
}

// ObtenerPorID devuelve (nil, nil) si el curso no existe o es privado.
func (r *CursoLocal) ObtenerPorID(_ context.Context, id int64) (*entity.Curso, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cursos, err := leerLista[*entity.Curso](r.store, archivoCursos)
	if err != nil {
		return nil, err
	}
	for _, c := range cursos {
		if c.ID == id && c.Visibilidad != entity.VisibilidadPrivado {
			return c, nil
		}
	}
	return nil, nil
}

// Inscribir registra la inscripción; si el usuario ya estaba inscrito
// devuelve la existente con yaInscrito=true, sin duplicarla.
func (r *CursoLocal) Inscribir(ctx context.Context, cursoID, usuarioID int64) (*entity.Inscripcion, bool, error) {
	curso, err := r.ObtenerPorID(ctx, cursoID)
	if err != nil {
		return nil, false, err
	}
	if curso == nil {
		return nil, false, fmt.Errorf("curso %d: %w", cursoID, domain.ErrNoEncontrado)
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	inscripciones, err := leerLista[*entity.Inscripcion](r.store, archivoInscripciones)
	if err != nil {
		return nil, false, err
	}
	for _, i := range inscripciones {
		if i.UsuarioID == usuarioID && i.CursoID == cursoID {
			return i, true, nil
		}
	}

	ahora := time.Now()
	nueva := &entity.Inscripcion{
		ID:               ahora.UnixMilli(), // id temporal basado en reloj, como las ofertas
		UsuarioID:        usuarioID,
		CursoID:          cursoID,
		Progreso:         0,
		Estado:           "no_iniciado",
		FechaInscripcion: ahora,
	}
	inscripciones = append(inscripciones, nueva)
	if err := escribirLista(r.store, archivoInscripciones, inscripciones); err != nil {
		return nil, false, err
	}
	r.store.log.Debug().Int64("curso_id", cursoID).Int64("usuario_id", usuarioID).Msg("inscripción creada en almacén local")
	return nueva, false, nil
}
