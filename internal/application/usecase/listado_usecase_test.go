package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ceo-client/internal/application/usecase"
	"github.com/jhoicas/ceo-client/internal/domain/entity"
	"github.com/jhoicas/ceo-client/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func ofertasDeMuestra() []*entity.Oferta {
	return []*entity.Oferta{
		{
			ID: 1, Titulo: "Desarrollador Backend", Empresa: "TechCol",
			Ubicacion: "Bogotá", Modalidad: entity.ModalidadRemoto,
			TipoContrato: "indefinido",
			SalarioMin:   decimal.NewFromInt(2_500_000),
			SalarioMax:   decimal.NewFromInt(3_000_000),
		},
		{
			ID: 2, Titulo: "Auxiliar Contable", Empresa: "Finanzas SAS",
			Ubicacion: "Medellín", Modalidad: entity.ModalidadPresencial,
			TipoContrato: "termino fijo",
			SalarioMin:   decimal.NewFromInt(1_500_000),
			SalarioMax:   decimal.NewFromInt(1_800_000),
		},
		{
			ID: 3, Titulo: "Ingeniería de Datos", Empresa: "TechCol",
			Ubicacion: "Bogotá", Modalidad: entity.ModalidadHibrido,
			TipoContrato: "indefinido",
			SalarioMin:   decimal.NewFromInt(4_000_000),
			SalarioMax:   decimal.NewFromInt(5_000_000),
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// FiltrarOfertas — predicado puro
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: el piso salarial descarta las ofertas cuyo tope queda por debajo.
func TestFiltrarOfertas_PisoSalarial(t *testing.T) {
	f := usecase.FiltrosOferta{SalarioMinimo: decimal.NewFromInt(2_000_000)}
	resultado := usecase.FiltrarOfertas(ofertasDeMuestra(), f)

	require.Len(t, resultado, 2, "solo las ofertas con tope >= 2.000.000 deben quedar")
	assert.Equal(t, int64(1), resultado[0].ID)
	assert.Equal(t, int64(3), resultado[1].ID)
}

// Caso 2: la búsqueda por texto ignora tildes y mayúsculas, y revisa
// título, empresa y descripción.
func TestFiltrarOfertas_TextoSinTildes(t *testing.T) {
	f := usecase.FiltrosOferta{Texto: "ingenieria"}
	resultado := usecase.FiltrarOfertas(ofertasDeMuestra(), f)
	require.Len(t, resultado, 1)
	assert.Equal(t, int64(3), resultado[0].ID, "Ingeniería debe coincidir con ingenieria")

	f = usecase.FiltrosOferta{Ubicacion: "bogota"}
	resultado = usecase.FiltrarOfertas(ofertasDeMuestra(), f)
	assert.Len(t, resultado, 2, "Bogotá debe coincidir con bogota")
}

// Caso 3: filtrar es idempotente y no modifica la colección de entrada.
func TestFiltrarOfertas_IdempotenteYPuro(t *testing.T) {
	todas := ofertasDeMuestra()
	f := usecase.FiltrosOferta{Modalidad: entity.ModalidadRemoto}

	primera := usecase.FiltrarOfertas(todas, f)
	segunda := usecase.FiltrarOfertas(primera, f)
	assert.Equal(t, primera, segunda, "filtrar dos veces con los mismos criterios no cambia el resultado")
	assert.Len(t, todas, 3, "la colección original no debe modificarse")
}

// Caso 4: filtros combinados aplican en conjunción.
func TestFiltrarOfertas_Combinados(t *testing.T) {
	f := usecase.FiltrosOferta{
		Ubicacion:     "Bogotá",
		TipoContrato:  "indefinido",
		SalarioMinimo: decimal.NewFromInt(4_000_000),
	}
	resultado := usecase.FiltrarOfertas(ofertasDeMuestra(), f)
	require.Len(t, resultado, 1)
	assert.Equal(t, int64(3), resultado[0].ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// ListadoOfertasUseCase — una descarga por vista, recargas que se reemplazan
// ──────────────────────────────────────────────────────────────────────────────

// Caso 5: cargar una vez y cambiar los filtros varias veces no dispara más
// llamadas de red.
func TestListado_FiltrarNoVuelveALaRed(t *testing.T) {
	repo := &ofertaRepoFake{listarFn: func(context.Context) ([]*entity.Oferta, error) {
		return ofertasDeMuestra(), nil
	}}
	uc := usecase.NewListadoOfertasUseCase(repo, logger.Nop())

	require.NoError(t, uc.Cargar(context.Background()))
	uc.AplicarFiltros(usecase.FiltrosOferta{Texto: "backend"})
	uc.AplicarFiltros(usecase.FiltrosOferta{Ubicacion: "medellin"})
	v := uc.AplicarFiltros(usecase.FiltrosOferta{})

	assert.Equal(t, 1, repo.totalLlamadas(), "los filtros trabajan sobre la descarga ya hecha")
	assert.Len(t, v.Filtradas, 3)
	assert.Len(t, v.Todas, 3)
}

// Caso 6: cero coincidencias es un estado válido, no un error.
func TestListado_SinResultados(t *testing.T) {
	repo := &ofertaRepoFake{listarFn: func(context.Context) ([]*entity.Oferta, error) {
		return ofertasDeMuestra(), nil
	}}
	uc := usecase.NewListadoOfertasUseCase(repo, logger.Nop())

	require.NoError(t, uc.Cargar(context.Background()))
	v := uc.AplicarFiltros(usecase.FiltrosOferta{Texto: "astronauta"})

	assert.True(t, v.SinResultados())
	assert.NoError(t, v.Err)
	assert.Empty(t, v.Filtradas)
}

// Caso 7: un fallo de red deja el error en la vista; una recarga exitosa
// lo limpia.
func TestListado_ErrorYRecarga(t *testing.T) {
	fallo := errors.New("conexión rechazada")
	intento := 0
	repo := &ofertaRepoFake{listarFn: func(context.Context) ([]*entity.Oferta, error) {
		intento++
		if intento == 1 {
			return nil, fallo
		}
		return ofertasDeMuestra(), nil
	}}
	uc := usecase.NewListadoOfertasUseCase(repo, logger.Nop())

	require.Error(t, uc.Cargar(context.Background()))
	v := uc.Vista()
	assert.ErrorIs(t, v.Err, fallo)
	assert.False(t, v.SinResultados(), "con error no se muestra el aviso de vacío")

	require.NoError(t, uc.Cargar(context.Background()))
	v = uc.Vista()
	assert.NoError(t, v.Err)
	assert.Len(t, v.Todas, 3)
}

// Caso 8: una respuesta lenta reemplazada por una recarga más nueva jamás
// pisa el estado de la recarga que la reemplazó.
func TestListado_RespuestaTardiaDescartada(t *testing.T) {
	lenta := make(chan struct{})
	intento := 0
	repo := &ofertaRepoFake{listarFn: func(ctx context.Context) ([]*entity.Oferta, error) {
		intento++
		if intento == 1 {
			<-lenta // primera carga: se queda esperando hasta que el test la libere
			return []*entity.Oferta{{ID: 99, Titulo: "Vieja"}}, nil
		}
		return ofertasDeMuestra(), nil
	}}
	uc := usecase.NewListadoOfertasUseCase(repo, logger.Nop())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = uc.Cargar(context.Background()) // carga lenta
	}()

	// Espera a que la carga lenta esté en vuelo antes de lanzar la nueva.
	require.Eventually(t, func() bool { return repo.totalLlamadas() == 1 },
		timeoutCorto, intervaloCorto, "la primera carga debe estar en vuelo")

	require.NoError(t, uc.Cargar(context.Background())) // segunda carga, rápida

	close(lenta) // la respuesta vieja llega tarde
	wg.Wait()

	v := uc.Vista()
	require.Len(t, v.Todas, 3, "la respuesta reemplazada no debe pisar la más nueva")
	assert.NotEqual(t, int64(99), v.Todas[0].ID)
}
