package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ceo-client/internal/domain/entity"
)

// CrearOfertaRequest entrada para publicar una oferta.
// La regla SalarioMin <= SalarioMax se verifica en el caso de uso antes de
// cualquier llamada de red; aquí solo van las validaciones por campo.
type CrearOfertaRequest struct {
	Titulo                string          `validate:"required,min=1,max=200"`
	Empresa               string          `validate:"required,min=1,max=100"`
	Sector                string          `validate:"omitempty,max=100"`
	Descripcion           string          `validate:"required,min=1"`
	Responsabilidades     string          `validate:"omitempty"`
	Requisitos            string          `validate:"omitempty"`
	HabilidadesRequeridas []string        `validate:"omitempty,dive,min=1"`
	Ubicacion             string          `validate:"required"`
	Modalidad             string          `validate:"required,oneof=presencial remoto hibrido"`
	TipoContrato          string          `validate:"omitempty,max=50"`
	Jornada               string          `validate:"omitempty,max=50"`
	SalarioMin            decimal.Decimal `validate:"-"`
	SalarioMax            decimal.Decimal `validate:"-"`
	FechaCierre           *time.Time      `validate:"-"`
}

// AOferta convierte la solicitud validada en la entidad canónica.
func (r *CrearOfertaRequest) AOferta() *entity.Oferta {
	return &entity.Oferta{
		Titulo:                r.Titulo,
		Empresa:               r.Empresa,
		Sector:                r.Sector,
		Descripcion:           r.Descripcion,
		Responsabilidades:     r.Responsabilidades,
		Requisitos:            r.Requisitos,
		HabilidadesRequeridas: r.HabilidadesRequeridas,
		Ubicacion:             r.Ubicacion,
		Modalidad:             entity.Modalidad(r.Modalidad),
		TipoContrato:          r.TipoContrato,
		Jornada:               r.Jornada,
		SalarioMin:            r.SalarioMin,
		SalarioMax:            r.SalarioMax,
		FechaCierre:           r.FechaCierre,
		Activa:                true,
	}
}

// ActualizarOfertaRequest actualización parcial: los punteros nil no modifican.
type ActualizarOfertaRequest struct {
	Titulo                *string          `validate:"omitempty,min=1,max=200"`
	Sector                *string          `validate:"omitempty,max=100"`
	Descripcion           *string          `validate:"omitempty,min=1"`
	Responsabilidades     *string          `validate:"omitempty"`
	Requisitos            *string          `validate:"omitempty"`
	HabilidadesRequeridas []string         `validate:"omitempty,dive,min=1"`
	Ubicacion             *string          `validate:"omitempty,min=1"`
	Modalidad             *string          `validate:"omitempty,oneof=presencial remoto hibrido"`
	TipoContrato          *string          `validate:"omitempty,max=50"`
	Jornada               *string          `validate:"omitempty,max=50"`
	SalarioMin            *decimal.Decimal `validate:"-"`
	SalarioMax            *decimal.Decimal `validate:"-"`
	FechaCierre           *time.Time       `validate:"-"`
	Activa                *bool            `validate:"-"`
}

// ACambios convierte la solicitud en el parche de dominio.
func (r *ActualizarOfertaRequest) ACambios() *entity.CambiosOferta {
	c := &entity.CambiosOferta{
		Titulo:                r.Titulo,
		Sector:                r.Sector,
		Descripcion:           r.Descripcion,
		Responsabilidades:     r.Responsabilidades,
		Requisitos:            r.Requisitos,
		HabilidadesRequeridas: r.HabilidadesRequeridas,
		Ubicacion:             r.Ubicacion,
		TipoContrato:          r.TipoContrato,
		Jornada:               r.Jornada,
		SalarioMin:            r.SalarioMin,
		SalarioMax:            r.SalarioMax,
		FechaCierre:           r.FechaCierre,
		Activa:                r.Activa,
	}
	if r.Modalidad != nil {
		m := entity.Modalidad(*r.Modalidad)
		c.Modalidad = &m
	}
	return c
}
