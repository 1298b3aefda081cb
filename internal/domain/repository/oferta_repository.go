package repository

import (
	"context"

	"github.com/jhoicas/ceo-client/internal/domain/entity"
)

// OfertaRepository define el puerto de acceso a datos de ofertas (DIP).
// Lo implementan el cliente HTTP del backend y el almacén local de respaldo;
// los casos de uso no distinguen entre ambos.
//
// Convención: ObtenerPorID devuelve (nil, nil) cuando la oferta no existe
// (404 del backend o id ausente en el respaldo); un error solo indica fallo
// de transporte, timeout o estado HTTP inesperado.
type OfertaRepository interface {
	Listar(ctx context.Context) ([]*entity.Oferta, error)
	ObtenerPorID(ctx context.Context, id int64) (*entity.Oferta, error)
	Crear(ctx context.Context, oferta *entity.Oferta) (*entity.Oferta, error)
	Actualizar(ctx context.Context, id int64, cambios *entity.CambiosOferta) (*entity.Oferta, error)
	Eliminar(ctx context.Context, id int64) error
}
