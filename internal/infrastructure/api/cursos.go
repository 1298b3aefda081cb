package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jhoicas/ceo-client/internal/domain"
	"github.com/jhoicas/ceo-client/internal/domain/entity"
)

// CursoAPI implementa repository.CursoRepository contra el backend.
type CursoAPI struct {
	client *Client
}

// NewCursoAPI construye el repositorio de cursos.
func NewCursoAPI(client *Client) *CursoAPI {
	return &CursoAPI{client: client}
}

// Listar obtiene los cursos públicos activos.
func (r *CursoAPI) Listar(ctx context.Context) ([]*entity.Curso, error) {
	var sobre struct {
		Cursos []cursoWire `json:"cursos"`
	}
	if err := r.client.do(ctx, "GET", "/cursos", nil, &sobre); err != nil {
		return nil, err
	}
	cursos := make([]*entity.Curso, 0, len(sobre.Cursos))
	for i := range sobre.Cursos {
		cursos = append(cursos, normalizarCurso(&sobre.Cursos[i]))
	}
	return cursos, nil
}

// ObtenerPorID devuelve (nil, nil) si el backend responde 404; es la única
// forma de ausencia, el detalle llega como objeto pelado.
func (r *CursoAPI) ObtenerPorID(ctx context.Context, id int64) (*entity.Curso, error) {
	var raw json.RawMessage
	err := r.client.do(ctx, "GET", fmt.Sprintf("/cursos/%d", id), nil, &raw)
	if errors.Is(err, domain.ErrNoEncontrado) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	w, err := decodificarCurso(raw)
	if err != nil {
		return nil, err
	}
	return normalizarCurso(w), nil
}

// decodificarCurso acepta {"curso": {...}} o el objeto pelado que devuelve
// el backend actual.
func decodificarCurso(raw json.RawMessage) (*cursoWire, error) {
	var sobre struct {
		Curso *cursoWire `json:"curso"`
	}
	if err := json.Unmarshal(raw, &sobre); err == nil && sobre.Curso != nil {
		return sobre.Curso, nil
	}
	var w cursoWire
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("decodificar curso: %w", err)
	}
	return &w, nil
}

// Inscribir registra al usuario en el curso. Si el backend responde que ya
// estaba inscrito, devuelve la inscripción existente con yaInscrito=true.
func (r *CursoAPI) Inscribir(ctx context.Context, cursoID, usuarioID int64) (*entity.Inscripcion, bool, error) {
	body := map[string]int64{"usuario_id": usuarioID}
	var resp struct {
		Message       string  `json:"message"`
		InscripcionID int64   `json:"inscripcion_id"`
		YaInscrito    bool    `json:"ya_inscrito"`
		Progreso      float64 `json:"progreso"`
	}
	if err := r.client.do(ctx, "POST", fmt.Sprintf("/cursos/%d/inscribir", cursoID), body, &resp); err != nil {
		return nil, false, err
	}
	return &entity.Inscripcion{
		ID:        resp.InscripcionID,
		UsuarioID: usuarioID,
		CursoID:   cursoID,
		Progreso:  resp.Progreso,
		Estado:    "no_iniciado",
	}, resp.YaInscrito, nil
}
