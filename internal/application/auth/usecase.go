// Package auth resuelve y cachea la sesión emitida por el backend.
// El cliente nunca emite ni valida credenciales: consume la cookie user_id
// y el endpoint de perfil, y mantiene una copia local hasta el logout.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/jhoicas/ceo-client/internal/domain/entity"
	"github.com/jhoicas/ceo-client/pkg/logger"
)

// PerfilRemoto es el puerto whoami del backend. Un resultado (nil, nil)
// significa anónimo.
type PerfilRemoto interface {
	PerfilUsuario(ctx context.Context) (*entity.Sesion, error)
}

// Cookies es el puerto hacia la cookie de sesión user_id del cliente HTTP.
type Cookies interface {
	CookieUsuario() (int64, bool)
	GuardarCookieUsuario(userID int64)
	BorrarCookieUsuario()
}

// SesionUseCase resuelve la sesión activa con corte en el primer acierto:
//
//	1. copia en memoria
//	2. copia persistida en disco
//	3. cookie user_id + consulta de perfil al backend
//
// Negativo en los tres pasos = anónimo, nunca un error. CerrarSesion limpia
// las tres ubicaciones como un único paso bajo candado: ningún llamador puede
// observar estado autenticado a medias.
type SesionUseCase struct {
	perfil  PerfilRemoto // nil en modo respaldo local
	cookies Cookies      // nil en modo respaldo local
	archivo string       // vacío = no persistir
	log     *logger.Logger

	mu     sync.Mutex
	actual *entity.Sesion
}

// NewSesionUseCase construye el resolutor de sesión.
func NewSesionUseCase(perfil PerfilRemoto, cookies Cookies, archivo string, log *logger.Logger) *SesionUseCase {
	return &SesionUseCase{perfil: perfil, cookies: cookies, archivo: archivo, log: log}
}

// SesionActiva implementa repository.SesionProvider.
func (uc *SesionUseCase) SesionActiva(ctx context.Context) (*entity.Sesion, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.actual != nil {
		return uc.actual, nil
	}
	if s := uc.leerArchivo(); s != nil {
		uc.actual = s
		uc.sincronizarCookie(s)
		return s, nil
	}
	if uc.perfil == nil {
		return nil, nil // modo respaldo sin backend: anónimo
	}
	s, err := uc.perfil.PerfilUsuario(ctx)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	uc.actual = s
	uc.escribirArchivo(s)
	return s, nil
}

// GuardarSesion registra la sesión que el backend emitió (tras un login
// hecho por fuera de esta capa) en memoria, disco y cookie a la vez.
func (uc *SesionUseCase) GuardarSesion(s *entity.Sesion) error {
	if s == nil || s.UserID == 0 {
		return fmt.Errorf("sesión sin user_id")
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.actual = s
	uc.sincronizarCookie(s)
	uc.escribirArchivo(s)
	uc.log.Info().Int64("user_id", s.UserID).Str("rol", string(s.Rol)).Msg("sesión guardada")
	return nil
}

// CerrarSesion limpia memoria, cookie y copia persistida como un solo paso.
func (uc *SesionUseCase) CerrarSesion() error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.actual = nil
	if uc.cookies != nil {
		uc.cookies.BorrarCookieUsuario()
	}
	if uc.archivo != "" {
		if err := os.Remove(uc.archivo); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("borrar sesión persistida: %w", err)
		}
	}
	uc.log.Info().Msg("sesión cerrada")
	return nil
}

// ── Copia persistida ──────────────────────────────────────────────────────────

type sesionArchivo struct {
	UserID int64  `json:"user_id"`
	Rol    string `json:"rol"`
	Nombre string `json:"nombre"`
}

func (uc *SesionUseCase) leerArchivo() *entity.Sesion {
	if uc.archivo == "" {
		return nil
	}
	data, err := os.ReadFile(uc.archivo)
	if err != nil {
		return nil
	}
	var s sesionArchivo
	if err := json.Unmarshal(data, &s); err != nil || s.UserID == 0 {
		return nil
	}
	return &entity.Sesion{UserID: s.UserID, Rol: entity.Rol(s.Rol), Nombre: s.Nombre}
}

func (uc *SesionUseCase) escribirArchivo(s *entity.Sesion) {
	if uc.archivo == "" {
		return
	}
	data, err := json.Marshal(sesionArchivo{UserID: s.UserID, Rol: string(s.Rol), Nombre: s.Nombre})
	if err != nil {
		return
	}
	if err := os.MkdirAll(filepath.Dir(uc.archivo), 0o755); err != nil {
		uc.log.Warn().Err(err).Msg("no se pudo crear el directorio de la sesión")
		return
	}
	if err := os.WriteFile(uc.archivo, data, 0o600); err != nil {
		uc.log.Warn().Err(err).Msg("no se pudo persistir la sesión")
	}
}

func (uc *SesionUseCase) sincronizarCookie(s *entity.Sesion) {
	if uc.cookies != nil {
		uc.cookies.GuardarCookieUsuario(s.UserID)
	}
}
