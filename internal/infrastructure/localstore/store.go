// Package localstore es el modo de respaldo sin backend: listas JSON
// persistidas en disco, análogas a las claves de localStorage que usaba el
// cliente original. Solo se usa cuando la API no está configurada.
package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/jhoicas/ceo-client/pkg/logger"
)

const (
	archivoOfertas       = "ofertas.json"
	archivoPostulaciones = "postulaciones.json"
	archivoCursos        = "cursos.json"
	archivoInscripciones = "inscripciones.json"
)

// Store persiste las listas de respaldo en un directorio local.
// Las escrituras son atómicas (archivo temporal + rename) para que un corte
// a mitad de escritura no deje una lista corrupta.
type Store struct {
	dir string
	log *logger.Logger
	mu  sync.Mutex
}

// New abre (o crea) el directorio del almacén local.
func New(dir string, log *logger.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio del almacén local: %w", err)
	}
	return &Store{dir: dir, log: log}, nil
}

// leerLista carga una secuencia JSON; un archivo ausente es una lista vacía.
func leerLista[T any](s *Store, nombre string) ([]T, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, nombre))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("leer %s: %w", nombre, err)
	}
	var lista []T
	if err := json.Unmarshal(data, &lista); err != nil {
		return nil, fmt.Errorf("decodificar %s: %w", nombre, err)
	}
	return lista, nil
}

// escribirLista persiste la secuencia completa de forma atómica.
func escribirLista[T any](s *Store, nombre string, lista []T) error {
	data, err := json.MarshalIndent(lista, "", "  ")
	if err != nil {
		return fmt.Errorf("codificar %s: %w", nombre, err)
	}
	destino := filepath.Join(s.dir, nombre)
	tmp := destino + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("escribir %s: %w", nombre, err)
	}
	if err := os.Rename(tmp, destino); err != nil {
		return fmt.Errorf("reemplazar %s: %w", nombre, err)
	}
	return nil
}
