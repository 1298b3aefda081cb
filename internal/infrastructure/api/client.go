package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/ceo-client/internal/domain"
	"github.com/jhoicas/ceo-client/pkg/config"
	"github.com/jhoicas/ceo-client/pkg/logger"
)

// cookieUsuario es la cookie de sesión que emite el backend tras el login.
// Es un user_id plano, sin firmar: debilidad conocida del diseño original,
// el cliente solo la consume.
const cookieUsuario = "user_id"

// Client es el acceso HTTP al backend de la plataforma: ofertas, cursos,
// postulaciones, inscripciones y perfil de sesión. Normaliza las variantes
// de respuesta del backend a las entidades canónicas y los fallos a la
// taxonomía de domain.
//
// Cada petición corre bajo un context.WithTimeout propio (API_TIMEOUT_SECONDS,
// 10 s por defecto): al vencer, la petición en vuelo se cancela de verdad —
// no queda viva para resolver tarde y pisar estado más nuevo.
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	jar        *cookiejar.Jar
	log        *logger.Logger
}

// NewClient construye el cliente HTTP del backend.
func NewClient(cfg config.APIConfig, log *logger.Logger) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("crear cookie jar: %w", err)
	}
	return &Client{
		baseURL: cfg.BaseURL,
		timeout: cfg.Timeout,
		// El tope real por petición lo pone el context; el Timeout del
		// http.Client queda como red de seguridad algo más holgada.
		httpClient: &http.Client{Timeout: cfg.Timeout + 5*time.Second, Jar: jar},
		jar:        jar,
		log:        log,
	}, nil
}

// ── Cookie de sesión ──────────────────────────────────────────────────────────

// CookieUsuario devuelve el user_id presente en el jar, si lo hay.
func (c *Client) CookieUsuario() (int64, bool) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return 0, false
	}
	for _, ck := range c.jar.Cookies(u) {
		if ck.Name == cookieUsuario {
			id, err := strconv.ParseInt(ck.Value, 10, 64)
			if err != nil {
				return 0, false
			}
			return id, true
		}
	}
	return 0, false
}

// GuardarCookieUsuario coloca la cookie user_id en el jar.
func (c *Client) GuardarCookieUsuario(userID int64) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return
	}
	c.jar.SetCookies(u, []*http.Cookie{{
		Name:  cookieUsuario,
		Value: strconv.FormatInt(userID, 10),
		Path:  "/",
	}})
}

// BorrarCookieUsuario expulsa la cookie user_id del jar (MaxAge<0).
func (c *Client) BorrarCookieUsuario() {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return
	}
	c.jar.SetCookies(u, []*http.Cookie{{
		Name:   cookieUsuario,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	}})
}

// ── Núcleo de peticiones ──────────────────────────────────────────────────────

// errorBody es el cuerpo de error que devuelve el backend (estilo FastAPI).
type errorBody struct {
	Detail string `json:"detail"`
}

// do ejecuta una petición JSON contra el backend y decodifica la respuesta en
// out (si out no es nil). Mapeo de fallos:
//
//	timeout/cancelación  -> domain.ErrTimeout
//	red inalcanzable     -> domain.ErrConexion (envuelto)
//	404                  -> domain.ErrNoEncontrado
//	otro no-2xx          -> *domain.StatusError{Code, Detail}
//
// Los llamadores que tratan el 404 como ausencia válida lo detectan con
// errors.Is y devuelven (nil, nil).
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("codificar cuerpo: %w", err)
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("construir petición: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	reqID := uuid.New().String()
	req.Header.Set("X-Request-ID", reqID)

	inicio := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			c.log.Warn().Str("method", method).Str("path", path).Str("request_id", reqID).
				Dur("elapsed", time.Since(inicio)).Msg("petición cancelada por timeout")
			return domain.ErrTimeout
		}
		if errors.Is(err, context.Canceled) {
			// Cancelación cooperativa: una carga más nueva reemplazó a esta.
			return context.Canceled
		}
		c.log.Error().Err(err).Str("method", method).Str("path", path).
			Str("request_id", reqID).Msg("fallo de transporte")
		return fmt.Errorf("%w: %v", domain.ErrConexion, err)
	}
	defer resp.Body.Close()

	c.log.Debug().Str("method", method).Str("path", path).Int("status", resp.StatusCode).
		Str("request_id", reqID).Dur("elapsed", time.Since(inicio)).Msg("respuesta del backend")

	if resp.StatusCode == http.StatusNotFound {
		io.Copy(io.Discard, resp.Body)
		return domain.ErrNoEncontrado
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		se := &domain.StatusError{Code: resp.StatusCode}
		var eb errorBody
		if err := json.NewDecoder(resp.Body).Decode(&eb); err == nil {
			se.Detail = eb.Detail
		}
		return se
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decodificar respuesta de %s: %w", path, err)
	}
	return nil
}
