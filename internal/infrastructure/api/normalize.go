package api

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ceo-client/internal/domain/entity"
)

// Este archivo es el único punto donde se resuelven las variantes de forma
// de respuesta del backend. Históricamente convivieron dos convenciones de
// nombres (snake_case del backend actual y camelCase de copias legadas) y
// algunos campos cambian de tipo según el origen (empresa como string u
// objeto, habilidades como lista o string JSON). Cada struct *wire acepta
// todas las variantes y una única función de normalización produce la
// entidad canónica.

// respuestaNoEspecificada es el texto de relleno cuando ni
// "responsabilidades" ni "funciones" vienen en la respuesta.
const respuestaNoEspecificada = "No especificado"

// ── Oferta ────────────────────────────────────────────────────────────────────

type ofertaWire struct {
	ID             int64           `json:"id"`
	EmpresaID      int64           `json:"empresa_id"`
	EmpresaIDCamel int64           `json:"empresaId"`
	Titulo         string          `json:"titulo"`
	Empresa        json.RawMessage `json:"empresa"` // string u objeto {nombre|razon_social}
	Sector         string          `json:"sector"`

	Descripcion       string `json:"descripcion"`
	Responsabilidades string `json:"responsabilidades"`
	Funciones         string `json:"funciones"`
	Requisitos        string `json:"requisitos"`

	Habilidades      json.RawMessage `json:"habilidades_requeridas"` // lista o string JSON
	HabilidadesCamel json.RawMessage `json:"habilidadesRequeridas"`

	Ubicacion string `json:"ubicacion"`
	Modalidad string `json:"modalidad"` // el backend la capitaliza ("Remoto")

	TipoContrato      string `json:"tipo_contrato"`
	TipoContratoCamel string `json:"tipoContrato"`
	Jornada           string `json:"jornada"`

	SalarioMin      *decimal.Decimal `json:"salario_min"`
	SalarioMinCamel *decimal.Decimal `json:"salarioMin"`
	SalarioMax      *decimal.Decimal `json:"salario_max"`
	SalarioMaxCamel *decimal.Decimal `json:"salarioMax"`

	FechaPublicacion      string `json:"fecha_publicacion"`
	FechaPublicacionCamel string `json:"fechaPublicacion"`
	FechaCierre           string `json:"fecha_cierre"`
	FechaCierreCamel      string `json:"fechaCierre"`
	Activa                *bool  `json:"activa"`
}

// normalizarOferta mapea una variante de respuesta a la entidad canónica.
// Modalidad llega capitalizada del backend ("Remoto"); el enum canónico es
// minúscula, así que siempre se baja a minúsculas antes de convertir.
func normalizarOferta(w *ofertaWire) *entity.Oferta {
	o := &entity.Oferta{
		ID:                    w.ID,
		EmpresaID:             primerEntero(w.EmpresaID, w.EmpresaIDCamel),
		Titulo:                w.Titulo,
		Empresa:               normalizarEmpresa(w.Empresa),
		Sector:                w.Sector,
		Descripcion:           w.Descripcion,
		Responsabilidades:     primeraCadena(w.Responsabilidades, w.Funciones, respuestaNoEspecificada),
		Requisitos:            w.Requisitos,
		HabilidadesRequeridas: normalizarHabilidades(primerRaw(w.Habilidades, w.HabilidadesCamel)),
		Ubicacion:             w.Ubicacion,
		Modalidad:             entity.Modalidad(strings.ToLower(w.Modalidad)),
		TipoContrato:          primeraCadena(w.TipoContrato, w.TipoContratoCamel, ""),
		Jornada:               w.Jornada,
		SalarioMin:            primerDecimal(w.SalarioMin, w.SalarioMinCamel),
		SalarioMax:            primerDecimal(w.SalarioMax, w.SalarioMaxCamel),
		Activa:                true,
	}
	if w.Activa != nil {
		o.Activa = *w.Activa
	}
	if t, ok := parseFecha(primeraCadena(w.FechaPublicacion, w.FechaPublicacionCamel, "")); ok {
		o.FechaPublicacion = t
	}
	if t, ok := parseFecha(primeraCadena(w.FechaCierre, w.FechaCierreCamel, "")); ok {
		o.FechaCierre = &t
	}
	return o
}

// ── Curso ─────────────────────────────────────────────────────────────────────

type cursoWire struct {
	ID               int64           `json:"id"`
	EmpresaID        int64           `json:"empresa_id"`
	Titulo           string          `json:"titulo"`
	Empresa          json.RawMessage `json:"empresa"`
	Descripcion      string          `json:"descripcion"`
	Objetivos        string          `json:"objetivos"`
	Temario          string          `json:"temario"`
	DuracionEstimada int             `json:"duracion_estimada"`
	NivelDificultad  string          `json:"nivel_dificultad"`
	FormatoContenido json.RawMessage `json:"formato_contenido"` // lista o string JSON
	Visibilidad      string          `json:"visibilidad"`
	OfertaAsociada   json.RawMessage `json:"oferta_asociada"` // id numérico u objeto {id,titulo,descripcion}
	FechaPublicacion string          `json:"fecha_publicacion"`
}

func normalizarCurso(w *cursoWire) *entity.Curso {
	c := &entity.Curso{
		ID:               w.ID,
		EmpresaID:        w.EmpresaID,
		Titulo:           w.Titulo,
		Descripcion:      w.Descripcion,
		Objetivos:        w.Objetivos,
		Temario:          w.Temario,
		DuracionEstimada: w.DuracionEstimada,
		NivelDificultad:  entity.NivelDificultad(strings.ToLower(w.NivelDificultad)),
		FormatoContenido: normalizarHabilidades(w.FormatoContenido),
		Visibilidad:      entity.Visibilidad(strings.ToLower(w.Visibilidad)),
		OfertaAsociada:   normalizarOfertaAsociada(w.OfertaAsociada),
	}
	if t, ok := parseFecha(w.FechaPublicacion); ok {
		c.FechaCreacion = t
	}
	return c
}

// ── Postulación ───────────────────────────────────────────────────────────────

type historialWire struct {
	ID             int64  `json:"id"`
	PostulacionID  int64  `json:"postulacion_id"`
	EstadoAnterior string `json:"estado_anterior"`
	EstadoNuevo    string `json:"estado_nuevo"`
	FechaCambio    string `json:"fecha_cambio"`
	UsuarioCambio  string `json:"usuario_cambio"`
	Observaciones  string `json:"observaciones"`
}

// El listado por usuario del backend renombra casi todos los campos:
// postulacion_id, oferta_titulo, empresa_nombre, fecha_postulacion, estado.
// Ambas convenciones se aceptan con el mismo corte en el primer valor presente.
type postulacionWire struct {
	ID                 int64           `json:"id"`
	PostulacionID      int64           `json:"postulacion_id"`
	UsuarioID          int64           `json:"usuario_id"`
	OfertaID           int64           `json:"oferta_id"`
	Empresa            string          `json:"empresa"`
	EmpresaNombre      string          `json:"empresa_nombre"`
	Puesto             string          `json:"puesto"`
	OfertaTitulo       string          `json:"oferta_titulo"`
	Descripcion        string          `json:"descripcion"`
	EstadoActual       string          `json:"estado_actual"`
	Estado             string          `json:"estado"` // alias en algunos endpoints
	FechaCreacion      string          `json:"fecha_creacion"`
	FechaPostulacion   string          `json:"fecha_postulacion"`
	FechaActualizacion string          `json:"fecha_actualizacion"`
	Historial          []historialWire `json:"historial"`
}

func normalizarPostulacion(w *postulacionWire) *entity.Postulacion {
	p := &entity.Postulacion{
		ID:           primerEntero(w.ID, w.PostulacionID),
		UsuarioID:    w.UsuarioID,
		OfertaID:     w.OfertaID,
		Empresa:      primeraCadena(w.Empresa, w.EmpresaNombre, ""),
		Puesto:       primeraCadena(w.Puesto, w.OfertaTitulo, ""),
		Descripcion:  w.Descripcion,
		EstadoActual: entity.EstadoPostulacion(primeraCadena(w.EstadoActual, w.Estado, string(entity.EstadoRegistrada))),
	}
	if t, ok := parseFecha(primeraCadena(w.FechaCreacion, w.FechaPostulacion, "")); ok {
		p.FechaCreacion = t
	}
	if t, ok := parseFecha(w.FechaActualizacion); ok {
		p.FechaActualizacion = t
	}
	for _, h := range w.Historial {
		he := entity.HistorialEstado{
			ID:            h.ID,
			PostulacionID: h.PostulacionID,
			EstadoNuevo:   entity.EstadoPostulacion(h.EstadoNuevo),
			UsuarioCambio: h.UsuarioCambio,
			Observaciones: h.Observaciones,
		}
		if h.EstadoAnterior != "" {
			anterior := entity.EstadoPostulacion(h.EstadoAnterior)
			he.EstadoAnterior = &anterior
		}
		if t, ok := parseFecha(h.FechaCambio); ok {
			he.FechaCambio = t
		}
		p.Historial = append(p.Historial, he)
	}
	return p
}

// ── Inscripción ───────────────────────────────────────────────────────────────

type inscripcionWire struct {
	ID               int64   `json:"id"`
	InscripcionID    int64   `json:"inscripcion_id"` // alias en /mi-perfil
	UsuarioID        int64   `json:"usuario_id"`
	CursoID          int64   `json:"curso_id"`
	Progreso         float64 `json:"progreso"`
	Estado           string  `json:"estado"`
	FechaInscripcion string  `json:"fecha_inscripcion"`
}

func normalizarInscripcion(w *inscripcionWire) *entity.Inscripcion {
	i := &entity.Inscripcion{
		ID:        w.ID,
		UsuarioID: w.UsuarioID,
		CursoID:   w.CursoID,
		Progreso:  w.Progreso,
		Estado:    w.Estado,
	}
	if i.ID == 0 {
		i.ID = w.InscripcionID
	}
	if t, ok := parseFecha(w.FechaInscripcion); ok {
		i.FechaInscripcion = t
	}
	return i
}

// ── Auxiliares ────────────────────────────────────────────────────────────────

// primeraCadena devuelve la primera cadena no vacía (cadena de fallback
// responsabilidades || funciones || "No especificado", documentada una vez aquí).
func primeraCadena(valores ...string) string {
	for _, v := range valores {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func primerDecimal(valores ...*decimal.Decimal) decimal.Decimal {
	for _, v := range valores {
		if v != nil {
			return *v
		}
	}
	return decimal.Zero
}

func primerEntero(valores ...int64) int64 {
	for _, v := range valores {
		if v != 0 {
			return v
		}
	}
	return 0
}

func primerRaw(valores ...json.RawMessage) json.RawMessage {
	for _, v := range valores {
		if len(v) > 0 {
			return v
		}
	}
	return nil
}

// normalizarEmpresa acepta "ACME", {"nombre": "ACME"} o {"razon_social": "ACME"}.
func normalizarEmpresa(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var obj struct {
		Nombre      string `json:"nombre"`
		RazonSocial string `json:"razon_social"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return primeraCadena(obj.Nombre, obj.RazonSocial)
	}
	return ""
}

// normalizarOfertaAsociada acepta el id numérico pelado o el objeto
// {id, titulo, descripcion} que devuelve el detalle de curso del backend.
func normalizarOfertaAsociada(raw json.RawMessage) *int64 {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var id int64
	if err := json.Unmarshal(raw, &id); err == nil {
		if id == 0 {
			return nil
		}
		return &id
	}
	var obj struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil && obj.ID != 0 {
		return &obj.ID
	}
	return nil
}

// normalizarHabilidades acepta ["a","b"], "[\"a\",\"b\"]" o "a, b".
func normalizarHabilidades(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var lista []string
	if err := json.Unmarshal(raw, &lista); err == nil {
		return lista
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	// String que a su vez contiene JSON (así persiste el backend en SQLite).
	if strings.HasPrefix(s, "[") {
		if err := json.Unmarshal([]byte(s), &lista); err == nil {
			return lista
		}
	}
	partes := strings.Split(s, ",")
	resultado := make([]string, 0, len(partes))
	for _, p := range partes {
		if p = strings.TrimSpace(p); p != "" {
			resultado = append(resultado, p)
		}
	}
	return resultado
}

// formatos de fecha que devuelve el backend: RFC3339 y el formato plano de
// SQLite (CURRENT_TIMESTAMP).
var formatosFecha = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseFecha(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, f := range formatosFecha {
		if t, err := time.Parse(f, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
