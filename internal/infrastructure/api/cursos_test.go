package api_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ceo-client/internal/domain/entity"
	infraapi "github.com/jhoicas/ceo-client/internal/infrastructure/api"
)

// Caso 1: el detalle del backend llega como objeto pelado, con la empresa
// como objeto y la oferta asociada como objeto {id, titulo, descripcion}.
// Un curso existente jamás puede reportarse como no encontrado: el 404 es
// la única forma de ausencia.
func TestCursos_DetalleObjetoPelado(t *testing.T) {
	client, _ := clienteDePrueba(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cursos/3", r.URL.Path)
		w.Write([]byte(`{
			"id": 3,
			"titulo": "Introducción a Go",
			"descripcion": "Curso básico de Go",
			"objetivos": "Aprender la sintaxis",
			"temario": "Tipos, funciones, concurrencia",
			"duracion_estimada": 20,
			"nivel_dificultad": "Basico",
			"formato_contenido": ["video", "pdf"],
			"visibilidad": "publico",
			"fecha_publicacion": "2025-03-10 09:00:00",
			"oferta_asociada": {"id": 6, "titulo": "Backend", "descripcion": "Desarrollo"},
			"empresa": {"id": 20, "nombre": "TechCol", "sector": "Tecnología"}
		}`))
	}))
	curso, err := infraapi.NewCursoAPI(client).ObtenerPorID(context.Background(), 3)
	require.NoError(t, err)
	require.NotNil(t, curso, "un curso existente no puede reportarse como no encontrado")

	assert.Equal(t, int64(3), curso.ID)
	assert.Equal(t, entity.NivelBasico, curso.NivelDificultad)
	assert.Equal(t, []string{"video", "pdf"}, curso.FormatoContenido)
	require.NotNil(t, curso.OfertaAsociada, "la oferta asociada como objeto debe reducirse a su id")
	assert.Equal(t, int64(6), *curso.OfertaAsociada)
}

// Caso 2: el sobre {"curso": {...}} de copias legadas sigue aceptándose, y
// la oferta asociada como id numérico pelado también.
func TestCursos_DetalleConSobre(t *testing.T) {
	client, _ := clienteDePrueba(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"curso": {"id": 3, "titulo": "Introducción a Go", "oferta_asociada": 6}}`))
	}))
	curso, err := infraapi.NewCursoAPI(client).ObtenerPorID(context.Background(), 3)
	require.NoError(t, err)
	require.NotNil(t, curso)
	assert.Equal(t, "Introducción a Go", curso.Titulo)
	require.NotNil(t, curso.OfertaAsociada)
	assert.Equal(t, int64(6), *curso.OfertaAsociada)
}

// Caso 3: el 404 del backend es la ausencia válida (nil, nil).
func TestCursos_DetalleNoEncontrado(t *testing.T) {
	client, _ := clienteDePrueba(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail": "Curso no encontrado o inactivo"}`))
	}))
	curso, err := infraapi.NewCursoAPI(client).ObtenerPorID(context.Background(), 999)
	require.NoError(t, err, "la ausencia no es un error")
	assert.Nil(t, curso)
}

// Caso 4: el listado {"cursos": [...]} del backend produce solo la forma
// canónica, con oferta_asociada ausente en el listado.
func TestCursos_Listar(t *testing.T) {
	client, _ := clienteDePrueba(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"cursos": [{
			"id": 3,
			"titulo": "Introducción a Go",
			"descripcion": "Curso básico de Go",
			"duracion_estimada": 20,
			"nivel_dificultad": "basico",
			"formato_contenido": ["video"],
			"visibilidad": "publico",
			"fecha_publicacion": "2025-03-10 09:00:00",
			"empresa": "TechCol",
			"sector": "Tecnología"
		}], "total": 1}`))
	}))
	cursos, err := infraapi.NewCursoAPI(client).Listar(context.Background())
	require.NoError(t, err)
	require.Len(t, cursos, 1)
	assert.Equal(t, entity.NivelBasico, cursos[0].NivelDificultad)
	assert.Nil(t, cursos[0].OfertaAsociada)
	assert.Equal(t, 2025, cursos[0].FechaCreacion.Year())
}
