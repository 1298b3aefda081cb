package localstore

import (
	"context"
	"time"

	"github.com/jhoicas/ceo-client/internal/domain"
	"github.com/jhoicas/ceo-client/internal/domain/entity"
)

// OfertaLocal implementa repository.OfertaRepository sobre el almacén local.
type OfertaLocal struct {
	store *Store
}

// NewOfertaLocal construye el repositorio de ofertas de respaldo.
func NewOfertaLocal(store *Store) *OfertaLocal {
	return &OfertaLocal{store: store}
}

// Listar devuelve la lista persistida completa.
func (r *OfertaLocal) Listar(_ context.Context) ([]*entity.Oferta, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return leerLista[*entity.Oferta](r.store, archivoOfertas)
}

// ObtenerPorID devuelve (nil, nil) si el id no está en la lista.
func (r *OfertaLocal) ObtenerPorID(_ context.Context, id int64) (*entity.Oferta, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	ofertas, err := leerLista[*entity.Oferta](r.store, archivoOfertas)
	if err != nil {
		return nil, err
	}
	for _, o := range ofertas {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, nil
}

// Crear agrega la oferta con un id temporal basado en el reloj (UnixMilli).
// Ese id no está garantizado como único entre sesiones y debe reemplazarse
// por el id del servidor al reconectar; inconsistencia heredada del diseño
// original que se conserva a propósito.
func (r *OfertaLocal) Crear(_ context.Context, oferta *entity.Oferta) (*entity.Oferta, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	ofertas, err := leerLista[*entity.Oferta](r.store, archivoOfertas)
	if err != nil {
		return nil, err
	}
	nueva := *oferta
	nueva.ID = time.Now().UnixMilli()
	nueva.FechaPublicacion = time.Now()
	nueva.Activa = true
	ofertas = append(ofertas, &nueva)
	if err := escribirLista(r.store, archivoOfertas, ofertas); err != nil {
		return nil, err
	}
	r.store.log.Debug().Int64("id", nueva.ID).Msg("oferta creada en almacén local")
	return &nueva, nil
}

// Actualizar fusiona el parche; ErrNoEncontrado si el id no existe.
func (r *OfertaLocal) Actualizar(_ context.Context, id int64, cambios *entity.CambiosOferta) (*entity.Oferta, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	ofertas, err := leerLista[*entity.Oferta](r.store, archivoOfertas)
	if err != nil {
		return nil, err
	}
	for _, o := range ofertas {
		if o.ID == id {
			cambios.Aplicar(o)
			if err := escribirLista(r.store, archivoOfertas, ofertas); err != nil {
				return nil, err
			}
			return o, nil
		}
	}
	return nil, domain.ErrNoEncontrado
}

// Eliminar filtra la oferta fuera de la lista.
func (r *OfertaLocal) Eliminar(_ context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	ofertas, err := leerLista[*entity.Oferta](r.store, archivoOfertas)
	if err != nil {
		return err
	}
	filtradas := make([]*entity.Oferta, 0, len(ofertas))
	encontrada := false
	for _, o := range ofertas {
		if o.ID == id {
			encontrada = true
			continue
		}
		filtradas = append(filtradas, o)
	}
	if !encontrada {
		return domain.ErrNoEncontrado
	}
	return escribirLista(r.store, archivoOfertas, filtradas)
}
