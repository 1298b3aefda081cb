package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Modalidad de trabajo de una oferta.
type Modalidad string

const (
	ModalidadPresencial Modalidad = "presencial"
	ModalidadRemoto     Modalidad = "remoto"
	ModalidadHibrido    Modalidad = "hibrido"
)

// Valida indica si la modalidad es una de las tres reconocidas.
func (m Modalidad) Valida() bool {
	switch m {
	case ModalidadPresencial, ModalidadRemoto, ModalidadHibrido:
		return true
	}
	return false
}

// Oferta representa una oferta de empleo publicada por una empresa.
// Es la forma canónica del cliente: la capa de datos normaliza las variantes
// de campos del backend (snake_case / camelCase) a esta única estructura.
// Invariante: SalarioMin <= SalarioMax, verificado en la creación; el backend
// no lo re-valida en lecturas.
type Oferta struct {
	ID                    int64
	EmpresaID             int64
	Titulo                string
	Empresa               string // razón social visible
	Sector                string
	Descripcion           string
	Responsabilidades     string // con fallback a "funciones" del backend
	Requisitos            string
	HabilidadesRequeridas []string // secuencia ordenada
	Ubicacion             string
	Modalidad             Modalidad
	TipoContrato          string
	Jornada               string
	SalarioMin            decimal.Decimal
	SalarioMax            decimal.Decimal
	FechaPublicacion      time.Time
	FechaCierre           *time.Time // nil = sin fecha de cierre
	Activa                bool
}

// CambiosOferta es una actualización parcial: los campos nil no se tocan.
type CambiosOferta struct {
	Titulo                *string
	Sector                *string
	Descripcion           *string
	Responsabilidades     *string
	Requisitos            *string
	HabilidadesRequeridas []string
	Ubicacion             *string
	Modalidad             *Modalidad
	TipoContrato          *string
	Jornada               *string
	SalarioMin            *decimal.Decimal
	SalarioMax            *decimal.Decimal
	FechaCierre           *time.Time
	Activa                *bool
}

// Aplicar fusiona los cambios sobre la oferta, campo a campo.
func (c *CambiosOferta) Aplicar(o *Oferta) {
	if c.Titulo != nil {
		o.Titulo = *c.Titulo
	}
	if c.Sector != nil {
		o.Sector = *c.Sector
	}
	if c.Descripcion != nil {
		o.Descripcion = *c.Descripcion
	}
	if c.Responsabilidades != nil {
		o.Responsabilidades = *c.Responsabilidades
	}
	if c.Requisitos != nil {
		o.Requisitos = *c.Requisitos
	}
	if len(c.HabilidadesRequeridas) > 0 {
		o.HabilidadesRequeridas = c.HabilidadesRequeridas
	}
	if c.Ubicacion != nil {
		o.Ubicacion = *c.Ubicacion
	}
	if c.Modalidad != nil {
		o.Modalidad = *c.Modalidad
	}
	if c.TipoContrato != nil {
		o.TipoContrato = *c.TipoContrato
	}
	if c.Jornada != nil {
		o.Jornada = *c.Jornada
	}
	if c.SalarioMin != nil {
		o.SalarioMin = *c.SalarioMin
	}
	if c.SalarioMax != nil {
		o.SalarioMax = *c.SalarioMax
	}
	if c.FechaCierre != nil {
		o.FechaCierre = c.FechaCierre
	}
	if c.Activa != nil {
		o.Activa = *c.Activa
	}
}
