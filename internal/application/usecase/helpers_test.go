package usecase_test

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/ceo-client/internal/domain/entity"
)

// Tiempos de espera para aserciones sobre goroutines en vuelo.
const (
	timeoutCorto   = 2 * time.Second
	intervaloCorto = 5 * time.Millisecond
)

// ofertaRepoFake implementa repository.OfertaRepository con funciones
// inyectables y un contador de llamadas de red.
type ofertaRepoFake struct {
	mu       sync.Mutex
	llamadas int

	listarFn     func(ctx context.Context) ([]*entity.Oferta, error)
	porIDFn      func(ctx context.Context, id int64) (*entity.Oferta, error)
	crearFn      func(ctx context.Context, o *entity.Oferta) (*entity.Oferta, error)
	actualizarFn func(ctx context.Context, id int64, c *entity.CambiosOferta) (*entity.Oferta, error)
	eliminarFn   func(ctx context.Context, id int64) error
}

func (f *ofertaRepoFake) contar() {
	f.mu.Lock()
	f.llamadas++
	f.mu.Unlock()
}

func (f *ofertaRepoFake) totalLlamadas() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.llamadas
}

func (f *ofertaRepoFake) Listar(ctx context.Context) ([]*entity.Oferta, error) {
	f.contar()
	return f.listarFn(ctx)
}

func (f *ofertaRepoFake) ObtenerPorID(ctx context.Context, id int64) (*entity.Oferta, error) {
	f.contar()
	if f.porIDFn == nil {
		return nil, nil
	}
	return f.porIDFn(ctx, id)
}

func (f *ofertaRepoFake) Crear(ctx context.Context, o *entity.Oferta) (*entity.Oferta, error) {
	f.contar()
	return f.crearFn(ctx, o)
}

func (f *ofertaRepoFake) Actualizar(ctx context.Context, id int64, c *entity.CambiosOferta) (*entity.Oferta, error) {
	f.contar()
	return f.actualizarFn(ctx, id, c)
}

func (f *ofertaRepoFake) Eliminar(ctx context.Context, id int64) error {
	f.contar()
	return f.eliminarFn(ctx, id)
}

// sesionFija implementa repository.SesionProvider con una sesión estática;
// nil simula el estado anónimo.
type sesionFija struct {
	sesion *entity.Sesion
	err    error
}

func (s *sesionFija) SesionActiva(context.Context) (*entity.Sesion, error) {
	return s.sesion, s.err
}

func sesionBuscador() *sesionFija {
	return &sesionFija{sesion: &entity.Sesion{UserID: 7, Rol: entity.RolBuscador, Nombre: "Laura"}}
}

func sesionEmpresa() *sesionFija {
	return &sesionFija{sesion: &entity.Sesion{UserID: 20, Rol: entity.RolEmpresa, Nombre: "TechCol"}}
}

func sesionAnonima() *sesionFija { return &sesionFija{} }

// postulacionRepoFake implementa repository.PostulacionRepository con
// funciones inyectables y contador de llamadas.
type postulacionRepoFake struct {
	mu       sync.Mutex
	llamadas int

	crearFn         func(ctx context.Context, usuarioID, ofertaID int64) (*entity.Postulacion, bool, error)
	listarFn        func(ctx context.Context, usuarioID int64) ([]*entity.Postulacion, error)
	cambiarEstadoFn func(ctx context.Context, id int64, nuevo entity.EstadoPostulacion, actor, observaciones string) (*entity.Postulacion, error)
}

func (f *postulacionRepoFake) contar() {
	f.mu.Lock()
	f.llamadas++
	f.mu.Unlock()
}

func (f *postulacionRepoFake) totalLlamadas() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.llamadas
}

func (f *postulacionRepoFake) Crear(ctx context.Context, usuarioID, ofertaID int64) (*entity.Postulacion, bool, error) {
	f.contar()
	return f.crearFn(ctx, usuarioID, ofertaID)
}

func (f *postulacionRepoFake) ListarPorUsuario(ctx context.Context, usuarioID int64) ([]*entity.Postulacion, error) {
	f.contar()
	return f.listarFn(ctx, usuarioID)
}

func (f *postulacionRepoFake) CambiarEstado(ctx context.Context, id int64, nuevo entity.EstadoPostulacion, actor, observaciones string) (*entity.Postulacion, error) {
	f.contar()
	return f.cambiarEstadoFn(ctx, id, nuevo, actor, observaciones)
}
