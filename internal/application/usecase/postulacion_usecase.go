package usecase

import (
	"context"

	"github.com/jhoicas/ceo-client/internal/application/dto"
	"github.com/jhoicas/ceo-client/internal/domain"
	"github.com/jhoicas/ceo-client/internal/domain/entity"
	"github.com/jhoicas/ceo-client/internal/domain/repository"
	"github.com/jhoicas/ceo-client/pkg/logger"
)

// PostulacionUseCase casos de uso de postulación: postularse, listar las
// propias y solicitar cambios de estado.
type PostulacionUseCase struct {
	repo     repository.PostulacionRepository
	sesiones repository.SesionProvider
	log      *logger.Logger
}

// NewPostulacionUseCase construye el caso de uso.
func NewPostulacionUseCase(repo repository.PostulacionRepository, sesiones repository.SesionProvider, log *logger.Logger) *PostulacionUseCase {
	return &PostulacionUseCase{repo: repo, sesiones: sesiones, log: log}
}

// Postular registra la postulación del usuario de la sesión activa a la
// oferta. Sin sesión devuelve ErrSesionRequerida sin tocar la red; si la
// sesión es de empresa, ErrRolNoPermitido. "Ya postulado" es un resultado
// normal, distinguible de un alta nueva.
func (uc *PostulacionUseCase) Postular(ctx context.Context, ofertaID int64) (*dto.ResultadoPostulacion, error) {
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
	postulacion, yaPostulado, err := uc.repo.Crear(ctx, sesion.UserID, ofertaID)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int64("oferta_id", ofertaID).Int64("usuario_id", sesion.UserID).
		Bool("ya_postulado", yaPostulado).Msg("postulación registrada")
	return &dto.ResultadoPostulacion{Postulacion: postulacion, YaPostulado: yaPostulado}, nil
}

// MisPostulaciones lista las postulaciones del usuario activo con historial.
func (uc *PostulacionUseCase) MisPostulaciones(ctx context.Context) ([]*entity.Postulacion, error) {
	sesion, err := uc.sesiones.SesionActiva(ctx)
	if err != nil {
		return nil, err
	}
	if sesion == nil {
		return nil, domain.ErrSesionRequerida
	}
	return uc.repo.ListarPorUsuario(ctx, sesion.UserID)
}

// Cancelar solicita pasar la postulación a Cancelada. Solo es válido desde
// Registrada o En progreso; un segundo intento sobre un estado terminal es
// rechazado (por el cliente si conoce el estado, por el backend siempre).
func (uc *PostulacionUseCase) Cancelar(ctx context.Context, postulacionID int64, observaciones string) (*entity.Postulacion, error) {
	return uc.CambiarEstado(ctx, postulacionID, entity.EstadoCancelada, observaciones)
}

// CambiarEstado valida la transición contra el estado conocido, si lo hay,
// y la solicita al backend. El rechazo remoto se propaga como error normal.
func (uc *PostulacionUseCase) CambiarEstado(ctx context.Context, postulacionID int64, nuevo entity.EstadoPostulacion, observaciones string) (*entity.Postulacion, error) {
	sesion, err := uc.sesiones.SesionActiva(ctx)
	if err != nil {
		return nil, err
	}
	if sesion == nil {
		return nil, domain.ErrSesionRequerida
	}
	actor := "usuario"
	if sesion.EsEmpresa() {
		actor = "empresa"
	}
	actualizada, err := uc.repo.CambiarEstado(ctx, postulacionID, nuevo, actor, observaciones)
	if err != nil {
		uc.log.Warn().Err(err).Int64("postulacion_id", postulacionID).
			Str("nuevo_estado", string(nuevo)).Msg("cambio de estado rechazado")
		return nil, err
	}
	return actualizada, nil
}
