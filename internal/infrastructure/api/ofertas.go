package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ceo-client/internal/domain"
	"github.com/jhoicas/ceo-client/internal/domain/entity"
)

// OfertaAPI implementa repository.OfertaRepository contra el backend HTTP.
type OfertaAPI struct {
	client *Client
}

// NewOfertaAPI construye el repositorio de ofertas sobre el cliente HTTP.
func NewOfertaAPI(client *Client) *OfertaAPI {
	return &OfertaAPI{client: client}
}

// Listar obtiene todas las ofertas. El backend responde con el sobre
// {"ofertas": [...]} pero versiones previas devolvían el arreglo pelado;
// se aceptan ambas formas.
func (r *OfertaAPI) Listar(ctx context.Context) ([]*entity.Oferta, error) {
	var raw json.RawMessage
	if err := r.client.do(ctx, "GET", "/ofertas", nil, &raw); err != nil {
		return nil, err
	}
	wires, err := decodificarListaOfertas(raw)
	if err != nil {
		return nil, err
	}
	ofertas := make([]*entity.Oferta, 0, len(wires))
	for i := range wires {
		ofertas = append(ofertas, normalizarOferta(&wires[i]))
	}
	return ofertas, nil
}

// ObtenerPorID devuelve (nil, nil) si el backend responde 404.
func (r *OfertaAPI) ObtenerPorID(ctx context.Context, id int64) (*entity.Oferta, error) {
	var raw json.RawMessage
	err := r.client.do(ctx, "GET", fmt.Sprintf("/ofertas/%d", id), nil, &raw)
	if errors.Is(err, domain.ErrNoEncontrado) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	w, err := decodificarOferta(raw)
	if err != nil {
		return nil, err
	}
	return normalizarOferta(w), nil
}

// crearOfertaBody es el cuerpo que espera el backend para POST /ofertas.
type crearOfertaBody struct {
	EmpresaID         int64            `json:"empresa_id"`
	Titulo            string           `json:"titulo"`
	Empresa           string           `json:"empresa,omitempty"`
	Sector            string           `json:"sector,omitempty"`
	Descripcion       string           `json:"descripcion"`
	Funciones         string           `json:"funciones,omitempty"`
	Requisitos        string           `json:"requisitos,omitempty"`
	Habilidades       []string         `json:"habilidades_requeridas,omitempty"`
	Ubicacion         string           `json:"ubicacion"`
	Modalidad         string           `json:"modalidad"`
	TipoContrato      string           `json:"tipo_contrato,omitempty"`
	Jornada           string           `json:"jornada,omitempty"`
	SalarioMin        *decimal.Decimal `json:"salario_min,omitempty"`
	SalarioMax        *decimal.Decimal `json:"salario_max,omitempty"`
	FechaCierre       string           `json:"fecha_cierre,omitempty"`
}

// Crear publica la oferta y devuelve la entidad con el id asignado por el
// servidor.
func (r *OfertaAPI) Crear(ctx context.Context, oferta *entity.Oferta) (*entity.Oferta, error) {
	body := crearOfertaBody{
		EmpresaID:    oferta.EmpresaID,
		Titulo:       oferta.Titulo,
		Empresa:      oferta.Empresa,
		Sector:       oferta.Sector,
		Descripcion:  oferta.Descripcion,
		Funciones:    oferta.Responsabilidades,
		Requisitos:   oferta.Requisitos,
		Habilidades:  oferta.HabilidadesRequeridas,
		Ubicacion:    oferta.Ubicacion,
		Modalidad:    string(oferta.Modalidad),
		TipoContrato: oferta.TipoContrato,
		Jornada:      oferta.Jornada,
	}
	if !oferta.SalarioMin.IsZero() {
		body.SalarioMin = &oferta.SalarioMin
	}
	if !oferta.SalarioMax.IsZero() {
		body.SalarioMax = &oferta.SalarioMax
	}
	if oferta.FechaCierre != nil {
		body.FechaCierre = oferta.FechaCierre.Format(time.RFC3339)
	}
	var raw json.RawMessage
	if err := r.client.do(ctx, "POST", "/ofertas", body, &raw); err != nil {
		return nil, err
	}
	w, err := decodificarOferta(raw)
	if err != nil {
		return nil, err
	}
	creada := normalizarOferta(w)
	// Algunos backends responden solo {"oferta_id": N}; se conserva lo enviado.
	if creada.Titulo == "" {
		enviada := *oferta
		enviada.ID = creada.ID
		return &enviada, nil
	}
	return creada, nil
}

// actualizarOfertaBody lleva solo los campos presentes del parche.
type actualizarOfertaBody struct {
	Titulo       *string          `json:"titulo,omitempty"`
	Sector       *string          `json:"sector,omitempty"`
	Descripcion  *string          `json:"descripcion,omitempty"`
	Funciones    *string          `json:"funciones,omitempty"`
	Requisitos   *string          `json:"requisitos,omitempty"`
	Habilidades  []string         `json:"habilidades_requeridas,omitempty"`
	Ubicacion    *string          `json:"ubicacion,omitempty"`
	Modalidad    *string          `json:"modalidad,omitempty"`
	TipoContrato *string          `json:"tipo_contrato,omitempty"`
	Jornada      *string          `json:"jornada,omitempty"`
	SalarioMin   *decimal.Decimal `json:"salario_min,omitempty"`
	SalarioMax   *decimal.Decimal `json:"salario_max,omitempty"`
	FechaCierre  *string          `json:"fecha_cierre,omitempty"`
	Activa       *bool            `json:"activa,omitempty"`
}

// Actualizar aplica un parche parcial; ErrNoEncontrado si el id no existe.
func (r *OfertaAPI) Actualizar(ctx context.Context, id int64, cambios *entity.CambiosOferta) (*entity.Oferta, error) {
	body := actualizarOfertaBody{
		Titulo:       cambios.Titulo,
		Sector:       cambios.Sector,
		Descripcion:  cambios.Descripcion,
		Funciones:    cambios.Responsabilidades,
		Requisitos:   cambios.Requisitos,
		Habilidades:  cambios.HabilidadesRequeridas,
		Ubicacion:    cambios.Ubicacion,
		TipoContrato: cambios.TipoContrato,
		Jornada:      cambios.Jornada,
		SalarioMin:   cambios.SalarioMin,
		SalarioMax:   cambios.SalarioMax,
		Activa:       cambios.Activa,
	}
	if cambios.Modalidad != nil {
		m := string(*cambios.Modalidad)
		body.Modalidad = &m
	}
	if cambios.FechaCierre != nil {
		f := cambios.FechaCierre.Format(time.RFC3339)
		body.FechaCierre = &f
	}
	var raw json.RawMessage
	if err := r.client.do(ctx, "PUT", fmt.Sprintf("/ofertas/%d", id), body, &raw); err != nil {
		return nil, err
	}
	w, err := decodificarOferta(raw)
	if err != nil {
		return nil, err
	}
	return normalizarOferta(w), nil
}

// Eliminar borra la oferta; ErrNoEncontrado si el id no existe.
func (r *OfertaAPI) Eliminar(ctx context.Context, id int64) error {
	return r.client.do(ctx, "DELETE", fmt.Sprintf("/ofertas/%d", id), nil, nil)
}

// ── Decodificación de sobres ──────────────────────────────────────────────────

// decodificarListaOfertas acepta {"ofertas": [...]} o [...].
func decodificarListaOfertas(raw json.RawMessage) ([]ofertaWire, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var lista []ofertaWire
		if err := json.Unmarshal(trimmed, &lista); err != nil {
			return nil, fmt.Errorf("decodificar lista de ofertas: %w", err)
		}
		return lista, nil
	}
	var sobre struct {
		Ofertas []ofertaWire `json:"ofertas"`
	}
	if err := json.Unmarshal(trimmed, &sobre); err != nil {
		return nil, fmt.Errorf("decodificar sobre de ofertas: %w", err)
	}
	return sobre.Ofertas, nil
}

// decodificarOferta acepta {"oferta": {...}} o el objeto pelado.
func decodificarOferta(raw json.RawMessage) (*ofertaWire, error) {
	var sobre struct {
		Oferta *ofertaWire `json:"oferta"`
	}
	if err := json.Unmarshal(raw, &sobre); err == nil && sobre.Oferta != nil {
		return sobre.Oferta, nil
	}
	var w ofertaWire
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("decodificar oferta: %w", err)
	}
	return &w, nil
}
