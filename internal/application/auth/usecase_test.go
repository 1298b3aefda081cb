package auth_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ceo-client/internal/application/auth"
	"github.com/jhoicas/ceo-client/internal/domain/entity"
	"github.com/jhoicas/ceo-client/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// perfilFake implementa auth.PerfilRemoto contando las consultas whoami.
type perfilFake struct {
	sesion   *entity.Sesion
	err      error
	llamadas int
}

func (p *perfilFake) PerfilUsuario(context.Context) (*entity.Sesion, error) {
	p.llamadas++
	return p.sesion, p.err
}

// cookiesFake implementa auth.Cookies en memoria.
type cookiesFake struct {
	userID int64
}

func (c *cookiesFake) CookieUsuario() (int64, bool)  { return c.userID, c.userID != 0 }
func (c *cookiesFake) GuardarCookieUsuario(id int64) { c.userID = id }
func (c *cookiesFake) BorrarCookieUsuario()          { c.userID = 0 }

func archivoSesion(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "sesion.json")
}

func sesionLaura() *entity.Sesion {
	return &entity.Sesion{UserID: 7, Rol: entity.RolBuscador, Nombre: "Laura"}
}

// ──────────────────────────────────────────────────────────────────────────────
// Cadena de resolución: memoria -> disco -> cookie + whoami
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: sin nada en ningún lado el resultado es anónimo, no un error.
func TestSesion_TodoVacioEsAnonimo(t *testing.T) {
	perfil := &perfilFake{}
	uc := auth.NewSesionUseCase(perfil, &cookiesFake{}, archivoSesion(t), logger.Nop())

	s, err := uc.SesionActiva(context.Background())
	assert.NoError(t, err, "la ausencia de sesión nunca es un error")
	assert.Nil(t, s)
	assert.Equal(t, 1, perfil.llamadas, "sin copias locales se consulta el whoami")
}

// Caso 2: el whoami resuelve la sesión una sola vez; las siguientes
// consultas cortan en la copia en memoria.
func TestSesion_WhoamiYLuegoMemoria(t *testing.T) {
	perfil := &perfilFake{sesion: sesionLaura()}
	uc := auth.NewSesionUseCase(perfil, &cookiesFake{}, archivoSesion(t), logger.Nop())

	for i := 0; i < 3; i++ {
		s, err := uc.SesionActiva(context.Background())
		require.NoError(t, err)
		require.NotNil(t, s)
		assert.Equal(t, int64(7), s.UserID)
	}
	assert.Equal(t, 1, perfil.llamadas, "la memoria corta la cadena tras el primer acierto")
}

// Caso 3: la copia persistida en disco se usa antes que el whoami y
// resincroniza la cookie.
func TestSesion_CopiaPersistidaCortaAntesDelWhoami(t *testing.T) {
	archivo := archivoSesion(t)
	require.NoError(t, os.WriteFile(archivo, []byte(`{"user_id":7,"rol":"buscador","nombre":"Laura"}`), 0o600))

	perfil := &perfilFake{}
	cookies := &cookiesFake{}
	uc := auth.NewSesionUseCase(perfil, cookies, archivo, logger.Nop())

	s, err := uc.SesionActiva(context.Background())
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "Laura", s.Nombre)
	assert.Equal(t, 0, perfil.llamadas, "con copia en disco no se toca la red")
	assert.Equal(t, int64(7), cookies.userID, "la cookie se resincroniza con la copia")
}

// Caso 4: un archivo corrupto se ignora y la cadena sigue al whoami.
func TestSesion_ArchivoCorruptoSeIgnora(t *testing.T) {
	archivo := archivoSesion(t)
	require.NoError(t, os.WriteFile(archivo, []byte(`{no es json`), 0o600))

	perfil := &perfilFake{sesion: sesionLaura()}
	uc := auth.NewSesionUseCase(perfil, &cookiesFake{}, archivo, logger.Nop())

	s, err := uc.SesionActiva(context.Background())
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, 1, perfil.llamadas)
}

// ──────────────────────────────────────────────────────────────────────────────
// Guardar y cerrar sesión
// ──────────────────────────────────────────────────────────────────────────────

// Caso 5: guardar la sesión la deja en memoria, cookie y disco a la vez.
func TestSesion_GuardarEscribeTodasLasCopias(t *testing.T) {
	archivo := archivoSesion(t)
	cookies := &cookiesFake{}
	uc := auth.NewSesionUseCase(&perfilFake{}, cookies, archivo, logger.Nop())

	require.NoError(t, uc.GuardarSesion(sesionLaura()))

	assert.Equal(t, int64(7), cookies.userID)
	data, err := os.ReadFile(archivo)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"user_id":7`)

	s, err := uc.SesionActiva(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Laura", s.Nombre)
}

// Caso 6: guardar sin user_id se rechaza.
func TestSesion_GuardarSinUserID(t *testing.T) {
	uc := auth.NewSesionUseCase(&perfilFake{}, &cookiesFake{}, "", logger.Nop())
	assert.Error(t, uc.GuardarSesion(nil))
	assert.Error(t, uc.GuardarSesion(&entity.Sesion{Nombre: "sin id"}))
}

// Caso 7: cerrar sesión limpia memoria, cookie y disco como un solo paso;
// después todo es anónimo sin residuos.
func TestSesion_CerrarLimpiaTodo(t *testing.T) {
	archivo := archivoSesion(t)
	cookies := &cookiesFake{}
	perfil := &perfilFake{}
	uc := auth.NewSesionUseCase(perfil, cookies, archivo, logger.Nop())

	require.NoError(t, uc.GuardarSesion(sesionLaura()))
	require.NoError(t, uc.CerrarSesion())

	assert.Zero(t, cookies.userID, "la cookie debe expirarse")
	_, err := os.Stat(archivo)
	assert.True(t, os.IsNotExist(err), "la copia en disco debe borrarse")

	s, err := uc.SesionActiva(context.Background())
	require.NoError(t, err)
	assert.Nil(t, s, "tras el logout la resolución vuelve a ser anónima")
}

// Caso 8: cerrar sesión dos veces no falla aunque ya no haya nada que borrar.
func TestSesion_CerrarEsIdempotente(t *testing.T) {
	uc := auth.NewSesionUseCase(&perfilFake{}, &cookiesFake{}, archivoSesion(t), logger.Nop())
	require.NoError(t, uc.CerrarSesion())
	require.NoError(t, uc.CerrarSesion())
}

// Caso 9: en modo respaldo (sin backend) la resolución no intenta la red.
func TestSesion_ModoRespaldoSinBackend(t *testing.T) {
	uc := auth.NewSesionUseCase(nil, nil, "", logger.Nop())

	s, err := uc.SesionActiva(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, s)
}
