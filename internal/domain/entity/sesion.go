package entity

// Rol del usuario autenticado.
type Rol string

const (
	RolBuscador Rol = "buscador"
	RolEmpresa  Rol = "empresa"
)

// Sesion es la copia cliente de la sesión emitida por el backend.
// El cliente nunca emite ni valida credenciales: solo cachea esta copia
// hasta el logout o hasta que la verificación remota falle.
type Sesion struct {
	UserID int64
	Rol    Rol
	Nombre string
}

// EsBuscador indica si la sesión pertenece a un buscador de empleo.
func (s *Sesion) EsBuscador() bool { return s != nil && s.Rol == RolBuscador }

// EsEmpresa indica si la sesión pertenece a una empresa.
func (s *Sesion) EsEmpresa() bool { return s != nil && s.Rol == RolEmpresa }
