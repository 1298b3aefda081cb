package api

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/ceo-client/internal/domain"
	"github.com/jhoicas/ceo-client/internal/domain/entity"
)

// PostulacionAPI implementa repository.PostulacionRepository contra el backend.
type PostulacionAPI struct {
	client *Client
}

// NewPostulacionAPI construye el repositorio de postulaciones.
func NewPostulacionAPI(client *Client) *PostulacionAPI {
	return &PostulacionAPI{client: client}
}

// crearRespuesta es la respuesta de POST /postulaciones. El backend no
// devuelve la postulación completa sino un resumen con el marcador
// ya_postulado, que es un resultado normal y no un error.
type crearRespuesta struct {
	Message       string `json:"message"`
	PostulacionID int64  `json:"postulacion_id"`
	YaPostulado   bool   `json:"ya_postulado"`
	OfertaTitulo  string `json:"oferta_titulo"`
	Empresa       string `json:"empresa"`
}

// Crear registra la postulación del usuario a la oferta.
func (r *PostulacionAPI) Crear(ctx context.Context, usuarioID, ofertaID int64) (*entity.Postulacion, bool, error) {
	body := map[string]int64{
		"usuario_id": usuarioID,
		"oferta_id":  ofertaID,
	}
	var resp crearRespuesta
	if err := r.client.do(ctx, "POST", "/postulaciones", body, &resp); err != nil {
		return nil, false, err
	}
	ahora := time.Now()
	p := &entity.Postulacion{
		ID:            resp.PostulacionID,
		UsuarioID:     usuarioID,
		OfertaID:      ofertaID,
		Empresa:       resp.Empresa,
		Puesto:        resp.OfertaTitulo,
		EstadoActual:  entity.EstadoRegistrada,
		FechaCreacion: ahora,
	}
	if !resp.YaPostulado {
		// El backend crea la entrada inicial del historial; se refleja aquí
		// para que el llamador no necesite otra petición.
		p.Historial = []entity.HistorialEstado{{
			PostulacionID: resp.PostulacionID,
			EstadoNuevo:   entity.EstadoRegistrada,
			FechaCambio:   ahora,
			UsuarioCambio: "usuario",
		}}
	}
	return p, resp.YaPostulado, nil
}

// ListarPorUsuario trae las postulaciones del usuario con su historial.
func (r *PostulacionAPI) ListarPorUsuario(ctx context.Context, usuarioID int64) ([]*entity.Postulacion, error) {
	var sobre struct {
		Postulaciones []postulacionWire `json:"postulaciones"`
	}
	err := r.client.do(ctx, "GET", fmt.Sprintf("/postulaciones/usuario/%d", usuarioID), nil, &sobre)
	if errors.Is(err, domain.ErrNoEncontrado) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	resultado := make([]*entity.Postulacion, 0, len(sobre.Postulaciones))
	for i := range sobre.Postulaciones {
		resultado = append(resultado, normalizarPostulacion(&sobre.Postulaciones[i]))
	}
	return resultado, nil
}

// CambiarEstado solicita la transición al backend. Un 400 del backend por
// transición no permitida se normaliza a ErrTransicionInvalida; el cliente
// lo trata como error normal, nunca como caída.
func (r *PostulacionAPI) CambiarEstado(ctx context.Context, id int64, nuevo entity.EstadoPostulacion, actor, observaciones string) (*entity.Postulacion, error) {
	body := map[string]string{
		"nuevo_estado":  string(nuevo),
		"usuario":       actor,
		"observaciones": observaciones,
	}
	var sobre struct {
		Postulacion *postulacionWire `json:"postulacion"`
	}
	err := r.client.do(ctx, "POST", fmt.Sprintf("/postulaciones/%d/cambiar-estado", id), body, &sobre)
	if err != nil {
		var se *domain.StatusError
		if errors.As(err, &se) && se.Code == 400 {
			return nil, fmt.Errorf("%w: %s", domain.ErrTransicionInvalida, se.Detail)
		}
		return nil, err
	}
	if sobre.Postulacion == nil {
		return nil, nil
	}
	return normalizarPostulacion(sobre.Postulacion), nil
}
