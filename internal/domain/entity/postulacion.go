package entity

import "time"

// EstadoPostulacion es el estado actual de una postulación.
// Los valores coinciden con los que persiste el backend.
type EstadoPostulacion string

const (
	EstadoRegistrada EstadoPostulacion = "Registrada"
	EstadoEnProgreso EstadoPostulacion = "En progreso"
	EstadoAprobada   EstadoPostulacion = "Aprobada"
	EstadoCancelada  EstadoPostulacion = "Cancelada"
)

// transiciones válidas de la máquina de estados:
// Registrada -> En progreso -> Aprobada; Cancelada solo desde Registrada o
// En progreso. Aprobada y Cancelada son terminales.
var transiciones = map[EstadoPostulacion][]EstadoPostulacion{
	EstadoRegistrada: {EstadoEnProgreso, EstadoCancelada},
	EstadoEnProgreso: {EstadoAprobada, EstadoCancelada},
}

// EsTerminal indica si el estado no admite más transiciones.
func (e EstadoPostulacion) EsTerminal() bool {
	return e == EstadoAprobada || e == EstadoCancelada
}

// PuedeTransicionarA indica si el cambio de estado está permitido.
// El backend es quien rechaza en última instancia; el cliente valida antes
// de pedir para no enviar transiciones que sabe inválidas.
func (e EstadoPostulacion) PuedeTransicionarA(nuevo EstadoPostulacion) bool {
	for _, destino := range transiciones[e] {
		if destino == nuevo {
			return true
		}
	}
	return false
}

// HistorialEstado es una entrada del historial de cambios de estado.
type HistorialEstado struct {
	ID             int64
	PostulacionID  int64
	EstadoAnterior *EstadoPostulacion // nil en el registro inicial
	EstadoNuevo    EstadoPostulacion
	FechaCambio    time.Time
	UsuarioCambio  string // usuario | empresa | sistema
	Observaciones  string
}

// Postulacion es la solicitud de un usuario para ser considerado en una oferta.
type Postulacion struct {
	ID                 int64
	UsuarioID          int64
	OfertaID           int64
	Empresa            string
	Puesto             string
	Descripcion        string
	EstadoActual       EstadoPostulacion
	FechaCreacion      time.Time
	FechaActualizacion time.Time
	Historial          []HistorialEstado // ordenado por fecha de cambio
}

// Transicionar aplica localmente un cambio de estado válido y agrega la
// entrada correspondiente al historial. Devuelve false si la transición
// no está permitida; en ese caso la postulación no se modifica.
func (p *Postulacion) Transicionar(nuevo EstadoPostulacion, actor, observaciones string, ahora time.Time) bool {
	if !p.EstadoActual.PuedeTransicionarA(nuevo) {
		return false
	}
	anterior := p.EstadoActual
	p.Historial = append(p.Historial, HistorialEstado{
		PostulacionID:  p.ID,
		EstadoAnterior: &anterior,
		EstadoNuevo:    nuevo,
		FechaCambio:    ahora,
		UsuarioCambio:  actor,
		Observaciones:  observaciones,
	})
	p.EstadoActual = nuevo
	p.FechaActualizacion = ahora
	return true
}
