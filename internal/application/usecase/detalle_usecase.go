package usecase

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/jhoicas/ceo-client/internal/application/dto"
	"github.com/jhoicas/ceo-client/internal/domain"
	"github.com/jhoicas/ceo-client/internal/domain/entity"
	"github.com/jhoicas/ceo-client/internal/domain/repository"
	"github.com/jhoicas/ceo-client/pkg/logger"
)

// EstadoDetalle distingue los estados de la vista de detalle. "No
// encontrada" es un estado propio, separado del error genérico.
type EstadoDetalle int

const (
	DetalleOK EstadoDetalle = iota
	DetalleNoEspecificado               // no llegó un id usable: no se intenta red
	DetalleNoEncontrado
	DetalleError
)

// VistaDetalle es el estado que consume el renderizador de detalle.
type VistaDetalle struct {
	Estado      EstadoDetalle
	Oferta      *entity.Oferta
	Err         error
	YaPostulado bool // tras el primer envío exitoso la acción queda deshabilitada
}

// ExtraerID obtiene el identificador desde una referencia tipo página:
// se aceptan la forma de query (?id=6, detalle?id=6), la de segmento final
// de ruta (/ofertas/6) y el número pelado. Devuelve ErrIDNoEspecificado si
// ninguna forma aporta un id usable.
func ExtraerID(ref string) (int64, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return 0, domain.ErrIDNoEspecificado
	}
	// Forma query: todo lo que venga tras '?'
	if idx := strings.IndexByte(ref, '?'); idx >= 0 {
		valores, err := url.ParseQuery(ref[idx+1:])
		if err == nil {
			for _, clave := range []string{"id", "ofertaId", "cursoId"} {
				if v := valores.Get(clave); v != "" {
					if id, err := strconv.ParseInt(v, 10, 64); err == nil && id > 0 {
						return id, nil
					}
				}
			}
		}
		ref = ref[:idx]
	}
	// Forma ruta: último segmento no vacío
	partes := strings.Split(strings.Trim(ref, "/"), "/")
	ultimo := partes[len(partes)-1]
	if id, err := strconv.ParseInt(ultimo, 10, 64); err == nil && id > 0 {
		return id, nil
	}
	return 0, domain.ErrIDNoEspecificado
}

// DetalleOfertaUseCase es el controlador de la página de detalle de oferta.
type DetalleOfertaUseCase struct {
	ofertas       repository.OfertaRepository
	postulaciones *PostulacionUseCase
	log           *logger.Logger

	mu    sync.Mutex
	vista VistaDetalle
}

// NewDetalleOfertaUseCase construye el controlador de detalle.
func NewDetalleOfertaUseCase(ofertas repository.OfertaRepository, postulaciones *PostulacionUseCase, log *logger.Logger) *DetalleOfertaUseCase {
	return &DetalleOfertaUseCase{ofertas: ofertas, postulaciones: postulaciones, log: log}
}

// Cargar resuelve la referencia y trae la oferta. Sin id usable no se toca
// la red; un 404 produce el estado NoEncontrada.
func (uc *DetalleOfertaUseCase) Cargar(ctx context.Context, ref string) VistaDetalle {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	id, err := ExtraerID(ref)
	if err != nil {
		uc.vista = VistaDetalle{Estado: DetalleNoEspecificado, Err: err}
		return uc.vista
	}
	oferta, err := uc.ofertas.ObtenerPorID(ctx, id)
	if err != nil {
		uc.log.Error().Err(err).Int64("id", id).Msg("no se pudo cargar el detalle de la oferta")
		uc.vista = VistaDetalle{Estado: DetalleError, Err: err}
		return uc.vista
	}
	if oferta == nil {
		uc.vista = VistaDetalle{Estado: DetalleNoEncontrado}
		return uc.vista
	}
	uc.vista = VistaDetalle{Estado: DetalleOK, Oferta: oferta}
	return uc.vista
}

// Postularse envía la postulación para la oferta mostrada. Tras el primer
// envío exitoso (nuevo o "ya postulado") la acción queda deshabilitada:
// el botón es idempotente aunque la petición no lo sea. En caso de error
// la acción vuelve a habilitarse para reintentar.
func (uc *DetalleOfertaUseCase) Postularse(ctx context.Context) (*dto.ResultadoPostulacion, error) {
	uc.mu.Lock()
	if uc.vista.Estado != DetalleOK || uc.vista.Oferta == nil {
		uc.mu.Unlock()
		return nil, domain.ErrNoEncontrado
	}
	if uc.vista.YaPostulado {
		uc.mu.Unlock()
		return nil, domain.ErrEntradaInvalida
	}
	ofertaID := uc.vista.Oferta.ID
	uc.mu.Unlock()

	resultado, err := uc.postulaciones.Postular(ctx, ofertaID)
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	uc.vista.YaPostulado = true
	uc.mu.Unlock()
	return resultado, nil
}

// Vista devuelve el estado actual del detalle.
func (uc *DetalleOfertaUseCase) Vista() VistaDetalle {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.vista
}
