package api

import (
	"context"
	"errors"

	"github.com/jhoicas/ceo-client/internal/domain"
	"github.com/jhoicas/ceo-client/internal/domain/entity"
)

// perfilWire es la respuesta de GET /user/profile (whoami).
type perfilWire struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"` // alias en /session
	Nombre      string `json:"nombre"`
	TipoUsuario string `json:"tipo_usuario"`
	Rol         string `json:"rol"` // alias legado
}

// PerfilUsuario consulta el whoami del backend usando la cookie user_id del
// jar. Un 401 o 404 significa anónimo: se devuelve (nil, nil), nunca error.
func (c *Client) PerfilUsuario(ctx context.Context) (*entity.Sesion, error) {
	var w perfilWire
	err := c.do(ctx, "GET", "/user/profile", nil, &w)
	if errors.Is(err, domain.ErrNoEncontrado) {
		return nil, nil
	}
	if err != nil {
		var se *domain.StatusError
		if errors.As(err, &se) && (se.Code == 401 || se.Code == 403) {
			return nil, nil
		}
		return nil, err
	}
	id := w.ID
	if id == 0 {
		id = w.UserID
	}
	if id == 0 {
		return nil, nil
	}
	rol := w.TipoUsuario
	if rol == "" {
		rol = w.Rol
	}
	return &entity.Sesion{
		UserID: id,
		Rol:    entity.Rol(rol),
		Nombre: w.Nombre,
	}, nil
}
