package dto

import "github.com/jhoicas/ceo-client/internal/domain/entity"

// ResultadoPostulacion distingue una postulación recién creada de una que ya
// existía ("ya_postulado" del backend). Ambos son resultados normales.
type ResultadoPostulacion struct {
	Postulacion *entity.Postulacion
	YaPostulado bool
}

// ResultadoInscripcion resultado de inscribirse a un curso.
type ResultadoInscripcion struct {
	Inscripcion *entity.Inscripcion
	YaInscrito  bool
}
