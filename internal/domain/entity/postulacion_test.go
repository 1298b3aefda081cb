package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ceo-client/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Máquina de estados de postulación:
// Registrada -> En progreso -> Aprobada; Cancelada desde Registrada o
// En progreso; Aprobada y Cancelada son terminales.
// ──────────────────────────────────────────────────────────────────────────────

func nuevaPostulacion() *entity.Postulacion {
	ahora := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	return &entity.Postulacion{
		ID:            1,
		UsuarioID:     7,
		OfertaID:      42,
		Puesto:        "Desarrollador Backend",
		EstadoActual:  entity.EstadoRegistrada,
		FechaCreacion: ahora,
		Historial: []entity.HistorialEstado{{
			EstadoNuevo:   entity.EstadoRegistrada,
			FechaCambio:   ahora,
			UsuarioCambio: "usuario",
		}},
	}
}

// Caso 1: transiciones permitidas e impedidas, estado por estado.
func TestEstadoPostulacion_PuedeTransicionarA(t *testing.T) {
	casos := []struct {
		desde    entity.EstadoPostulacion
		hacia    entity.EstadoPostulacion
		esperado bool
	}{
		{entity.EstadoRegistrada, entity.EstadoEnProgreso, true},
		{entity.EstadoRegistrada, entity.EstadoCancelada, true},
		{entity.EstadoRegistrada, entity.EstadoAprobada, false}, // no se salta "En progreso"
		{entity.EstadoEnProgreso, entity.EstadoAprobada, true},
		{entity.EstadoEnProgreso, entity.EstadoCancelada, true},
		{entity.EstadoEnProgreso, entity.EstadoRegistrada, false}, // no hay marcha atrás
		{entity.EstadoAprobada, entity.EstadoCancelada, false},    // terminal
		{entity.EstadoCancelada, entity.EstadoRegistrada, false},  // terminal
		{entity.EstadoCancelada, entity.EstadoEnProgreso, false},
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, c.desde.PuedeTransicionarA(c.hacia),
			"transición %s -> %s", c.desde, c.hacia)
	}
}

// Caso 2: solo Aprobada y Cancelada son terminales.
func TestEstadoPostulacion_EsTerminal(t *testing.T) {
	assert.False(t, entity.EstadoRegistrada.EsTerminal())
	assert.False(t, entity.EstadoEnProgreso.EsTerminal())
	assert.True(t, entity.EstadoAprobada.EsTerminal())
	assert.True(t, entity.EstadoCancelada.EsTerminal())
}

// Caso 3: una transición válida cambia el estado y agrega la entrada al
// historial con el estado anterior correcto.
func TestPostulacion_Transicionar_AgregaHistorial(t *testing.T) {
	p := nuevaPostulacion()
	momento := time.Date(2025, 3, 11, 15, 30, 0, 0, time.UTC)

	ok := p.Transicionar(entity.EstadoCancelada, "usuario", "ya no me interesa", momento)
	require.True(t, ok, "Registrada -> Cancelada debe estar permitida")

	assert.Equal(t, entity.EstadoCancelada, p.EstadoActual)
	assert.Equal(t, momento, p.FechaActualizacion)
	require.Len(t, p.Historial, 2, "debe agregarse una entrada al historial")

	ultima := p.Historial[1]
	require.NotNil(t, ultima.EstadoAnterior, "la entrada debe registrar el estado anterior")
	assert.Equal(t, entity.EstadoRegistrada, *ultima.EstadoAnterior)
	assert.Equal(t, entity.EstadoCancelada, ultima.EstadoNuevo)
	assert.Equal(t, "usuario", ultima.UsuarioCambio)
	assert.Equal(t, "ya no me interesa", ultima.Observaciones)
}

// Caso 4: una transición inválida no modifica la postulación en nada.
func TestPostulacion_Transicionar_RechazoNoMuta(t *testing.T) {
	p := nuevaPostulacion()
	require.True(t, p.Transicionar(entity.EstadoCancelada, "usuario", "", time.Now()))

	antes := *p
	ok := p.Transicionar(entity.EstadoEnProgreso, "empresa", "", time.Now())
	assert.False(t, ok, "Cancelada es terminal: no debe aceptar transiciones")
	assert.Equal(t, antes.EstadoActual, p.EstadoActual)
	assert.Len(t, p.Historial, len(antes.Historial), "el historial no debe crecer tras un rechazo")
}

// Caso 5: el registro inicial del historial no tiene estado anterior.
func TestPostulacion_HistorialInicial_SinEstadoAnterior(t *testing.T) {
	p := nuevaPostulacion()
	require.Len(t, p.Historial, 1)
	assert.Nil(t, p.Historial[0].EstadoAnterior)
	assert.Equal(t, entity.EstadoRegistrada, p.Historial[0].EstadoNuevo)
}
