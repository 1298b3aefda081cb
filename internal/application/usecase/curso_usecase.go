package usecase

import (
	"context"

	"github.com/jhoicas/ceo-client/internal/application/dto"
	"github.com/jhoicas/ceo-client/internal/domain"
	"github.com/jhoicas/ceo-client/internal/domain/entity"
	"github.com/jhoicas/ceo-client/internal/domain/repository"
	"github.com/jhoicas/ceo-client/pkg/logger"
	"github.com/jhoicas/ceo-client/pkg/texto"
)

// FiltrosCurso criterios del listado de cursos.
type FiltrosCurso struct {
	Texto string                 // subcadena sobre título/descripción
	Nivel entity.NivelDificultad // coincidencia exacta; vacío = todos
}

// FiltrarCursos aplica el predicado a la colección descargada; puro y
// síncrono, como el de ofertas.
func FiltrarCursos(cursos []*entity.Curso, f FiltrosCurso) []*entity.Curso {
	resultado := make([]*entity.Curso, 0, len(cursos))
	for _, c := range cursos {
		if f.Texto != "" && !texto.Contiene(c.Titulo, f.Texto) && !texto.Contiene(c.Descripcion, f.Texto) {
			continue
		}
		if f.Nivel != "" && c.NivelDificultad != f.Nivel {
			continue
		}
		resultado = append(resultado, c)
	}
	return resultado
}

// CursoUseCase casos de uso de cursos: listado, detalle e inscripción.
type CursoUseCase struct {
	repo     repository.CursoRepository
	sesiones repository.SesionProvider
	log      *logger.Logger
}

// NewCursoUseCase construye el caso de uso.
func NewCursoUseCase(repo repository.CursoRepository, sesiones repository.SesionProvider, log *logger.Logger) *CursoUseCase {
	return &CursoUseCase{repo: repo, sesiones: sesiones, log: log}
}

// Listar trae los cursos públicos y aplica los filtros en memoria.
func (uc *CursoUseCase) Listar(ctx context.Context, f FiltrosCurso) ([]*entity.Curso, error) {
	cursos, err := uc.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	return FiltrarCursos(cursos, f), nil
}

// ObtenerPorID devuelve (nil, nil) si el curso no existe.
func (uc *CursoUseCase) ObtenerPorID(ctx context.Context, id int64) (*entity.Curso, error) {
	return uc.repo.ObtenerPorID(ctx, id)
}

// Inscribirse registra al usuario de la sesión activa en el curso. Requiere
// sesión de buscador; sin sesión no se hace ninguna llamada de red.
func (uc *CursoUseCase) Inscribirse(ctx context.Context, cursoID int64) (*dto.ResultadoInscripcion, error) {
	sesion, err := uc.sesiones.SesionActiva(ctx)
	if err != nil {
		return nil, err
	}
	if sesion == nil {
		return nil, domain.ErrSesionRequerida
	}
	if !sesion.EsBuscador() {
		return nil, domain.ErrRolNoPermitido
	}
	inscripcion, yaInscrito, err := uc.repo.Inscribir(ctx, cursoID, sesion.UserID)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int64("curso_id", cursoID).Int64("usuario_id", sesion.UserID).
		Bool("ya_inscrito", yaInscrito).Msg("inscripción registrada")
	return &dto.ResultadoInscripcion{Inscripcion: inscripcion, YaInscrito: yaInscrito}, nil
}
