package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ceo-client/internal/domain/entity"
	"github.com/jhoicas/ceo-client/internal/domain/repository"
	"github.com/jhoicas/ceo-client/pkg/logger"
	"github.com/jhoicas/ceo-client/pkg/texto"
)

// FiltrosOferta son los criterios del listado. El filtrado es puro y
// síncrono sobre la colección ya descargada: cambiar un filtro nunca
// dispara otra llamada de red.
type FiltrosOferta struct {
	Texto         string           // subcadena sobre título/empresa/descripción, sin mayúsculas ni tildes
	Ubicacion     string           // subcadena sobre ubicación
	Modalidad     entity.Modalidad // coincidencia exacta; vacío = todas
	TipoContrato  string           // coincidencia exacta; vacío = todos
	SalarioMinimo decimal.Decimal  // piso: se exige SalarioMax >= SalarioMinimo
}

// Cumple evalúa el predicado sobre una oferta.
func (f FiltrosOferta) Cumple(o *entity.Oferta) bool {
	if f.Texto != "" &&
		!texto.Contiene(o.Titulo, f.Texto) &&
		!texto.Contiene(o.Empresa, f.Texto) &&
		!texto.Contiene(o.Descripcion, f.Texto) {
		return false
	}
	if f.Ubicacion != "" && !texto.Contiene(o.Ubicacion, f.Ubicacion) {
		return false
	}
	if f.Modalidad != "" && o.Modalidad != f.Modalidad {
		return false
	}
	if f.TipoContrato != "" && o.TipoContrato != f.TipoContrato {
		return false
	}
	if o.SalarioMax.LessThan(f.SalarioMinimo) {
		return false
	}
	return true
}

// FiltrarOfertas aplica el predicado a la colección. Es idempotente:
// filtrar un resultado ya filtrado con los mismos criterios no lo cambia.
func FiltrarOfertas(ofertas []*entity.Oferta, f FiltrosOferta) []*entity.Oferta {
	resultado := make([]*entity.Oferta, 0, len(ofertas))
	for _, o := range ofertas {
		if f.Cumple(o) {
			resultado = append(resultado, o)
		}
	}
	return resultado
}

// VistaListado es el estado de la vista que consumen los renderizadores:
// un objeto propio y explícito en lugar de arreglos globales compartidos.
type VistaListado struct {
	Todas     []*entity.Oferta
	Filtradas []*entity.Oferta
	Filtros   FiltrosOferta
	Cargando  bool
	Err       error
}

// SinResultados indica si debe mostrarse el aviso "no se encontraron
// ofertas" en lugar del listado (nunca ambos a la vez).
func (v VistaListado) SinResultados() bool {
	return !v.Cargando && v.Err == nil && len(v.Filtradas) == 0
}

// ListadoOfertasUseCase es el controlador de la página de búsqueda: una
// descarga por vista y filtrado en memoria sobre esa descarga.
//
// Una recarga nueva cancela la anterior en vuelo (señal de cancelación
// cooperativa) y además se descarta por generación: una respuesta
// reemplazada jamás pisa estado más nuevo, aunque llegue tarde.
type ListadoOfertasUseCase struct {
	repo repository.OfertaRepository
	log  *logger.Logger

	mu         sync.Mutex
	vista      VistaListado
	generacion int
	cancelar   context.CancelFunc
}

// NewListadoOfertasUseCase construye el controlador de listado.
func NewListadoOfertasUseCase(repo repository.OfertaRepository, log *logger.Logger) *ListadoOfertasUseCase {
	return &ListadoOfertasUseCase{repo: repo, log: log}
}

// Cargar descarga la colección y reaplica los filtros vigentes.
func (uc *ListadoOfertasUseCase) Cargar(ctx context.Context) error {
	uc.mu.Lock()
	if uc.cancelar != nil {
		uc.cancelar() // la carga anterior queda inerte
	}
	ctx, cancel := context.WithCancel(ctx)
	uc.cancelar = cancel
	uc.generacion++
	gen := uc.generacion
	uc.vista.Cargando = true
	uc.vista.Err = nil
	uc.mu.Unlock()

	ofertas, err := uc.repo.Listar(ctx)

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if gen != uc.generacion {
		// Respuesta reemplazada por una carga más nueva: se descarta.
		uc.log.Debug().Int("generacion", gen).Msg("descarga de ofertas superada, descartada")
		return nil
	}
	uc.vista.Cargando = false
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		uc.vista.Err = err
		uc.log.Error().Err(err).Msg("no se pudieron cargar las ofertas")
		return err
	}
	uc.vista.Todas = ofertas
	uc.vista.Filtradas = FiltrarOfertas(ofertas, uc.vista.Filtros)
	uc.log.Info().Int("total", len(ofertas)).Msg("ofertas cargadas")
	return nil
}

// AplicarFiltros reevalúa el predicado sobre la última descarga completada.
func (uc *ListadoOfertasUseCase) AplicarFiltros(f FiltrosOferta) VistaListado {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.vista.Filtros = f
	uc.vista.Filtradas = FiltrarOfertas(uc.vista.Todas, f)
	return uc.vista
}

// Vista devuelve el estado actual para renderizar.
func (uc *ListadoOfertasUseCase) Vista() VistaListado {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.vista
}
