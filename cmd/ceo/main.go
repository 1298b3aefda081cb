// ceo es el cliente de terminal de la bolsa de empleo y cursos CEO.
// Consume el backend HTTP cuando está configurado; sin backend trabaja en
// modo respaldo local con listas JSON en disco.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ceo-client/internal/application/auth"
	"github.com/jhoicas/ceo-client/internal/application/dto"
	"github.com/jhoicas/ceo-client/internal/application/usecase"
	"github.com/jhoicas/ceo-client/internal/domain/entity"
	"github.com/jhoicas/ceo-client/internal/domain/repository"
	infraapi "github.com/jhoicas/ceo-client/internal/infrastructure/api"
	"github.com/jhoicas/ceo-client/internal/infrastructure/localstore"
	"github.com/jhoicas/ceo-client/internal/interfaces/cli"
	"github.com/jhoicas/ceo-client/pkg/config"
	"github.com/jhoicas/ceo-client/pkg/logger"
)

const uso = `Uso: ceo <comando> [opciones]

Comandos:
  ofertas            listar y filtrar ofertas de empleo
  oferta <ref>       ver el detalle de una oferta (id, ?id=N o /ofertas/N)
  postular <ref>     postularse a una oferta (requiere sesión de buscador)
  crear-oferta       publicar una oferta (rol empresa)
  actualizar-oferta  modificar campos de una oferta publicada
  eliminar-oferta    retirar una oferta publicada
  postulaciones      listar mis postulaciones y su historial
  cancelar           cancelar una postulación propia
  cursos             listar cursos disponibles
  curso <ref>        ver el detalle de un curso
  inscribir <ref>    inscribirse a un curso (requiere sesión de buscador)
  sesion             mostrar o guardar la sesión activa
  logout             cerrar la sesión en todas sus copias`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, uso)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: getenvDefault("LOG_LEVEL", "warn"),
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := armar(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicialización")
	}

	if err := app.ejecutar(ctx, os.Args[1], os.Args[2:]); err != nil {
		cli.RenderError(os.Stderr, err)
		os.Exit(1)
	}
}

// aplicacion agrupa los casos de uso ya cableados contra el backend HTTP o
// contra el almacén local, según la configuración.
type aplicacion struct {
	out io.Writer

	sesiones *auth.SesionUseCase
	ofertas  *usecase.OfertaUseCase
	listado  *usecase.ListadoOfertasUseCase
	detalle  *usecase.DetalleOfertaUseCase
	posts    *usecase.PostulacionUseCase
	cursos   *usecase.CursoUseCase
}

func armar(cfg *config.Config, log *logger.Logger) (*aplicacion, error) {
	var (
		ofertaRepo repository.OfertaRepository
		postRepo   repository.PostulacionRepository
		cursoRepo  repository.CursoRepository
		sesiones   *auth.SesionUseCase
	)

	if cfg.API.Habilitada {
		client, err := infraapi.NewClient(cfg.API, log)
		if err != nil {
			return nil, err
		}
		ofertaRepo = infraapi.NewOfertaAPI(client)
		postRepo = infraapi.NewPostulacionAPI(client)
		cursoRepo = infraapi.NewCursoAPI(client)
		sesiones = auth.NewSesionUseCase(client, client, cfg.Store.SesionFile, log)
		log.Debug().Str("base_url", cfg.API.BaseURL).Msg("modo backend HTTP")
	} else {
		store, err := localstore.New(cfg.Store.Dir, log)
		if err != nil {
			return nil, err
		}
		ofertasLocal := localstore.NewOfertaLocal(store)
		ofertaRepo = ofertasLocal
		postRepo = localstore.NewPostulacionLocal(store, ofertasLocal)
		cursoRepo = localstore.NewCursoLocal(store)
		sesiones = auth.NewSesionUseCase(nil, nil, cfg.Store.SesionFile, log)
		log.Debug().Str("dir", cfg.Store.Dir).Msg("modo respaldo local")
	}

	posts := usecase.NewPostulacionUseCase(postRepo, sesiones, log)
	return &aplicacion{
		out:      os.Stdout,
		sesiones: sesiones,
		ofertas:  usecase.NewOfertaUseCase(ofertaRepo),
		listado:  usecase.NewListadoOfertasUseCase(ofertaRepo, log),
		detalle:  usecase.NewDetalleOfertaUseCase(ofertaRepo, posts, log),
		posts:    posts,
		cursos:   usecase.NewCursoUseCase(cursoRepo, sesiones, log),
	}, nil
}

func (a *aplicacion) ejecutar(ctx context.Context, comando string, args []string) error {
	switch comando {
	case "ofertas":
		return a.cmdOfertas(ctx, args)
	case "oferta":
		return a.cmdOferta(ctx, args)
	case "postular":
		return a.cmdPostular(ctx, args)
	case "crear-oferta":
		return a.cmdCrearOferta(ctx, args)
	case "actualizar-oferta":
		return a.cmdActualizarOferta(ctx, args)
	case "eliminar-oferta":
		return a.cmdEliminarOferta(ctx, args)
	case "postulaciones":
		return a.cmdPostulaciones(ctx, args)
	case "cancelar":
		return a.cmdCancelar(ctx, args)
	case "cursos":
		return a.cmdCursos(ctx, args)
	case "curso":
		return a.cmdCurso(ctx, args)
	case "inscribir":
		return a.cmdInscribir(ctx, args)
	case "sesion":
		return a.cmdSesion(ctx, args)
	case "logout":
		return a.sesiones.CerrarSesion()
	default:
		fmt.Fprintln(os.Stderr, uso)
		return fmt.Errorf("comando desconocido: %s", comando)
	}
}

// ── Ofertas ───────────────────────────────────────────────────────────────────

func (a *aplicacion) cmdOfertas(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("ofertas", flag.ExitOnError)
	texto := fs.String("q", "", "búsqueda por texto en título, empresa y descripción")
	ubicacion := fs.String("ubicacion", "", "filtrar por ubicación")
	modalidad := fs.String("modalidad", "", "presencial, remoto o hibrido")
	contrato := fs.String("contrato", "", "filtrar por tipo de contrato")
	salarioMin := fs.String("salario-min", "", "piso salarial deseado")
	fs.Parse(args)

	if err := a.listado.Cargar(ctx); err != nil {
		return err
	}
	filtros := usecase.FiltrosOferta{
		Texto:        *texto,
		Ubicacion:    *ubicacion,
		Modalidad:    entity.Modalidad(*modalidad),
		TipoContrato: *contrato,
	}
	if *salarioMin != "" {
		d, err := decimal.NewFromString(*salarioMin)
		if err != nil {
			return fmt.Errorf("salario-min inválido: %w", err)
		}
		filtros.SalarioMinimo = d
	}
	cli.RenderListado(a.out, a.listado.AplicarFiltros(filtros))
	return nil
}

func (a *aplicacion) cmdOferta(ctx context.Context, args []string) error {
	cli.RenderDetalleOferta(a.out, a.detalle.Cargar(ctx, primerArg(args)))
	return nil
}

func (a *aplicacion) cmdPostular(ctx context.Context, args []string) error {
	v := a.detalle.Cargar(ctx, primerArg(args))
	if v.Estado != usecase.DetalleOK {
		cli.RenderDetalleOferta(a.out, v)
		if v.Err != nil {
			return v.Err
		}
		return nil
	}
	resultado, err := a.detalle.Postularse(ctx)
	if err != nil {
		return err
	}
	cli.RenderResultadoPostulacion(a.out, resultado)
	return nil
}

func (a *aplicacion) cmdCrearOferta(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("crear-oferta", flag.ExitOnError)
	var in dto.CrearOfertaRequest
	fs.StringVar(&in.Titulo, "titulo", "", "título del puesto")
	fs.StringVar(&in.Empresa, "empresa", "", "nombre de la empresa")
	fs.StringVar(&in.Sector, "sector", "", "sector de la empresa")
	fs.StringVar(&in.Descripcion, "descripcion", "", "descripción del puesto")
	fs.StringVar(&in.Responsabilidades, "responsabilidades", "", "responsabilidades del cargo")
	fs.StringVar(&in.Requisitos, "requisitos", "", "requisitos del cargo")
	fs.StringVar(&in.Ubicacion, "ubicacion", "", "ciudad o región")
	fs.StringVar(&in.Modalidad, "modalidad", "presencial", "presencial, remoto o hibrido")
	fs.StringVar(&in.TipoContrato, "contrato", "", "tipo de contrato")
	fs.StringVar(&in.Jornada, "jornada", "", "jornada laboral")
	habilidades := fs.String("habilidades", "", "lista separada por comas")
	salarioMin := fs.String("salario-min", "0", "salario mínimo ofrecido")
	salarioMax := fs.String("salario-max", "0", "salario máximo ofrecido")
	fs.Parse(args)

	if *habilidades != "" {
		for _, h := range strings.Split(*habilidades, ",") {
			if h = strings.TrimSpace(h); h != "" {
				in.HabilidadesRequeridas = append(in.HabilidadesRequeridas, h)
			}
		}
	}
	var err error
	if in.SalarioMin, err = decimal.NewFromString(*salarioMin); err != nil {
		return fmt.Errorf("salario-min inválido: %w", err)
	}
	if in.SalarioMax, err = decimal.NewFromString(*salarioMax); err != nil {
		return fmt.Errorf("salario-max inválido: %w", err)
	}

	oferta, err := a.ofertas.Crear(ctx, in)
	if err != nil {
		return err
	}
	cli.RenderOfertaCreada(a.out, oferta)
	return nil
}

func (a *aplicacion) cmdActualizarOferta(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("actualizar-oferta", flag.ExitOnError)
	id := fs.Int64("id", 0, "id de la oferta")
	titulo := fs.String("titulo", "", "nuevo título")
	descripcion := fs.String("descripcion", "", "nueva descripción")
	ubicacion := fs.String("ubicacion", "", "nueva ubicación")
	modalidad := fs.String("modalidad", "", "nueva modalidad")
	activa := fs.String("activa", "", "true o false")
	fs.Parse(args)

	if *id == 0 {
		return fmt.Errorf("falta -id")
	}
	var in dto.ActualizarOfertaRequest
	if *titulo != "" {
		in.Titulo = titulo
	}
	if *descripcion != "" {
		in.Descripcion = descripcion
	}
	if *ubicacion != "" {
		in.Ubicacion = ubicacion
	}
	if *modalidad != "" {
		in.Modalidad = modalidad
	}
	if *activa != "" {
		b := *activa == "true"
		in.Activa = &b
	}
	oferta, err := a.ofertas.Actualizar(ctx, *id, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Oferta #%d actualizada.\n", oferta.ID)
	return nil
}

func (a *aplicacion) cmdEliminarOferta(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("eliminar-oferta", flag.ExitOnError)
	id := fs.Int64("id", 0, "id de la oferta")
	fs.Parse(args)
	if *id == 0 {
		return fmt.Errorf("falta -id")
	}
	if err := a.ofertas.Eliminar(ctx, *id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Oferta #%d eliminada.\n", *id)
	return nil
}

// ── Postulaciones ─────────────────────────────────────────────────────────────

func (a *aplicacion) cmdPostulaciones(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("postulaciones", flag.ExitOnError)
	conHistorial := fs.Bool("historial", false, "mostrar el historial de estados")
	fs.Parse(args)

	postulaciones, err := a.posts.MisPostulaciones(ctx)
	if err != nil {
		return err
	}
	cli.RenderPostulaciones(a.out, postulaciones, *conHistorial)
	return nil
}

func (a *aplicacion) cmdCancelar(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("cancelar", flag.ExitOnError)
	id := fs.Int64("id", 0, "id de la postulación")
	motivo := fs.String("motivo", "", "observación opcional")
	fs.Parse(args)
	if *id == 0 {
		return fmt.Errorf("falta -id")
	}
	p, err := a.posts.Cancelar(ctx, *id, *motivo)
	if err != nil {
		return err
	}
	cli.RenderCambioEstado(a.out, p)
	return nil
}

// ── Cursos ────────────────────────────────────────────────────────────────────

func (a *aplicacion) cmdCursos(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("cursos", flag.ExitOnError)
	texto := fs.String("q", "", "búsqueda por texto")
	nivel := fs.String("nivel", "", "basico, intermedio o avanzado")
	fs.Parse(args)

	cursos, err := a.cursos.Listar(ctx, usecase.FiltrosCurso{
		Texto: *texto,
		Nivel: entity.NivelDificultad(*nivel),
	})
	if err != nil {
		return err
	}
	cli.RenderCursos(a.out, cursos)
	return nil
}

func (a *aplicacion) cmdCurso(ctx context.Context, args []string) error {
	id, err := usecase.ExtraerID(primerArg(args))
	if err != nil {
		return err
	}
	curso, err := a.cursos.ObtenerPorID(ctx, id)
	if err != nil {
		return err
	}
	if curso == nil {
		fmt.Fprintln(a.out, "Curso no encontrado.")
		return nil
	}
	cli.RenderDetalleCurso(a.out, curso)
	return nil
}

func (a *aplicacion) cmdInscribir(ctx context.Context, args []string) error {
	id, err := usecase.ExtraerID(primerArg(args))
	if err != nil {
		return err
	}
	resultado, err := a.cursos.Inscribirse(ctx, id)
	if err != nil {
		return err
	}
	cli.RenderResultadoInscripcion(a.out, resultado)
	return nil
}

// ── Sesión ────────────────────────────────────────────────────────────────────

func (a *aplicacion) cmdSesion(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("sesion", flag.ExitOnError)
	userID := fs.Int64("user-id", 0, "guardar sesión: id emitido por el backend")
	rol := fs.String("rol", "buscador", "guardar sesión: buscador o empresa")
	nombre := fs.String("nombre", "", "guardar sesión: nombre a mostrar")
	fs.Parse(args)

	if *userID != 0 {
		return a.sesiones.GuardarSesion(&entity.Sesion{
			UserID: *userID,
			Rol:    entity.Rol(*rol),
			Nombre: *nombre,
		})
	}
	s, err := a.sesiones.SesionActiva(ctx)
	if err != nil {
		return err
	}
	cli.RenderSesion(a.out, s)
	return nil
}

func primerArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
