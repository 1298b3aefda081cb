package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
// La capa de datos los normaliza; los renderizadores los traducen a mensajes
// legibles con acción de reintento. Ninguno es fatal para el llamador.
var (
	ErrNoEncontrado       = errors.New("recurso no encontrado")
	ErrConexion           = errors.New("no se pudo conectar con el servidor")
	ErrTimeout            = errors.New("la petición tardó demasiado")
	ErrSesionRequerida    = errors.New("no estás logueado, inicia sesión primero")
	ErrEntradaInvalida    = errors.New("entrada inválida")
	ErrTransicionInvalida = errors.New("transición de estado no permitida")
	ErrIDNoEspecificado   = errors.New("no se proporcionó un identificador válido")
	ErrRolNoPermitido     = errors.New("el rol de la sesión no permite esta operación")
)

// StatusError representa una respuesta HTTP no exitosa distinta de 404.
// Los 404 se tratan como ausencia válida (ErrNoEncontrado o resultado nil),
// nunca como StatusError.
type StatusError struct {
	Code   int
	Detail string // campo "detail" del backend, si vino
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("error HTTP %d: %s", e.Code, e.Detail)
	}
	return fmt.Sprintf("error HTTP %d", e.Code)
}

// EsRecuperable indica si tiene sentido ofrecer "Recargar" al usuario.
// Timeouts, fallos de conexión y 5xx se reintentan; validaciones no.
func EsRecuperable(err error) bool {
	if errors.Is(err, ErrTimeout) || errors.Is(err, ErrConexion) {
		return true
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code >= 500
	}
	return false
}
