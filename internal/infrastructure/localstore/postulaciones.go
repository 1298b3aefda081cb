package localstore

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/ceo-client/internal/domain"
	"github.com/jhoicas/ceo-client/internal/domain/entity"
)

// PostulacionLocal implementa repository.PostulacionRepository sobre el
// almacén local. A diferencia del backend, aquí la máquina de estados se
// aplica por completo en el cliente.
type PostulacionLocal struct {
	store   *Store
	ofertas *OfertaLocal
}

// NewPostulacionLocal construye el repositorio de postulaciones de respaldo.
func NewPostulacionLocal(store *Store, ofertas *OfertaLocal) *PostulacionLocal {
	return &PostulacionLocal{store: store, ofertas: ofertas}
}

// Crear registra la postulación. Si el usuario ya estaba postulado a la
// oferta devuelve la existente con yaPostulado=true, igual que el backend.
func (r *PostulacionLocal) Crear(ctx context.Context, usuarioID, ofertaID int64) (*entity.Postulacion, bool, error) {
	oferta, err := r.ofertas.ObtenerPorID(ctx, ofertaID)
	if err != nil {
		return nil, false, err
	}
	if oferta == nil {
		return nil, false, fmt.Errorf("oferta %d: %w", ofertaID, domain.ErrNoEncontrado)
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	postulaciones, err := leerLista[*entity.Postulacion](r.store, archivoPostulaciones)
	if err != nil {
		return nil, false, err
	}
	for _, p := range postulaciones {
		if p.UsuarioID == usuarioID && p.OfertaID == ofertaID {
			return p, true, nil
		}
	}

	ahora := time.Now()
	nueva := &entity.Postulacion{
		ID:            ahora.UnixMilli(), // id temporal basado en reloj, como las ofertas
		UsuarioID:     usuarioID,
		OfertaID:      ofertaID,
		Empresa:       oferta.Empresa,
		Puesto:        oferta.Titulo,
		EstadoActual:  entity.EstadoRegistrada,
		FechaCreacion: ahora,
		Historial: []entity.HistorialEstado{{
			EstadoNuevo:   entity.EstadoRegistrada,
			FechaCambio:   ahora,
			UsuarioCambio: "usuario",
			Observaciones: "Postulación creada por el usuario",
		}},
	}
	postulaciones = append(postulaciones, nueva)
	if err := escribirLista(r.store, archivoPostulaciones, postulaciones); err != nil {
		return nil, false, err
	}
	return nueva, false, nil
}

// ListarPorUsuario devuelve las postulaciones del usuario.
func (r *PostulacionLocal) ListarPorUsuario(_ context.Context, usuarioID int64) ([]*entity.Postulacion, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	postulaciones, err := leerLista[*entity.Postulacion](r.store, archivoPostulaciones)
	if err != nil {
		return nil, err
	}
	propias := make([]*entity.Postulacion, 0, len(postulaciones))
	for _, p := range postulaciones {
		if p.UsuarioID == usuarioID {
			propias = append(propias, p)
		}
	}
	return propias, nil
}

// CambiarEstado aplica la transición localmente; ErrTransicionInvalida si la
// máquina de estados no la permite, ErrNoEncontrado si el id no existe.
func (r *PostulacionLocal) CambiarEstado(_ context.Context, id int64, nuevo entity.EstadoPostulacion, actor, observaciones string) (*entity.Postulacion, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	postulaciones, err := leerLista[*entity.Postulacion](r.store, archivoPostulaciones)
	if err != nil {
		return nil, err
	}
	for _, p := range postulaciones {
		if p.ID != id {
			continue
		}
		if !p.Transicionar(nuevo, actor, observaciones, time.Now()) {
			return nil, fmt.Errorf("%w: %s -> %s", domain.ErrTransicionInvalida, p.EstadoActual, nuevo)
		}
		if err := escribirLista(r.store, archivoPostulaciones, postulaciones); err != nil {
			return nil, err
		}
		return p, nil
	}
	return nil, domain.ErrNoEncontrado
}
