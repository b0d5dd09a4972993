// Package backend es el cliente HTTP hacia el API REST externo de
// inventario. Toda respuesta viaja en el sobre estándar
// {success, statusCode, message, data, timestamp}; los listados envuelven
// data como {items, page, pageSize, totalCount, totalPages,
// hasPreviousPage, hasNextPage}. Los rechazos se tipan como *APIError y
// los fallos de conectividad como ErrBackendUnavailable.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jhoicas/inventario-admin/pkg/logger"
)

// Client cliente del API externo.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// Config opciones del cliente.
type Config struct {
	BaseURL string
	Timeout time.Duration // 0 = 30 s
}

// New construye el cliente. El timeout acota toda llamada de red; al
// vencerse se sigue la misma ruta de fallo que cualquier error de red.
func New(cfg Config, log *logger.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// envelope sobre estándar de toda respuesta del API.
type envelope struct {
	Success    bool            `json:"success"`
	StatusCode int             `json:"statusCode"`
	Message    string          `json:"message"`
	Code       string          `json:"code,omitempty"`
	Data       json.RawMessage `json:"data"`
	Errors     []FieldError    `json:"errors,omitempty"`
	Timestamp  string          `json:"timestamp"`
}

// listData envoltura de data en los endpoints de listado.
type listData[T any] struct {
	Items           []T  `json:"items"`
	Page            int  `json:"page"`
	PageSize        int  `json:"pageSize"`
	TotalCount      int  `json:"totalCount"`
	TotalPages      int  `json:"totalPages"`
	HasPreviousPage bool `json:"hasPreviousPage"`
	HasNextPage     bool `json:"hasNextPage"`
}

// do ejecuta la llamada, desarma el sobre y deja data en out (out nil si
// no interesa el cuerpo).
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("backend: serializar request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("backend: crear request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Sin respuesta HTTP: error de conexión, no un rechazo del servidor.
		return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: leer respuesta: %v", ErrBackendUnavailable, err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("backend: respuesta malformada (%d): %w", resp.StatusCode, err)
	}

	if !env.Success || resp.StatusCode >= http.StatusBadRequest {
		status := env.StatusCode
		if status == 0 {
			status = resp.StatusCode
		}
		return &APIError{
			StatusCode: status,
			Codigo:     env.Code,
			Message:    env.Message,
			Errors:     env.Errors,
			Timestamp:  env.Timestamp,
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("backend: decodificar data: %w", err)
	}
	return nil
}

// doList como do pero desenvuelve una página de listado.
func doList[T any](c *Client, ctx context.Context, path string) (listData[T], error) {
	var page listData[T]
	if err := c.do(ctx, http.MethodGet, path, nil, &page); err != nil {
		return listData[T]{}, err
	}
	return page, nil
}

// listAll recorre todas las páginas de un listado y acumula los items.
func listAll[T any](c *Client, ctx context.Context, path string) ([]T, error) {
	var items []T
	for page := 1; ; page++ {
		p, err := doList[T](c, ctx, fmt.Sprintf("%s?page=%d&pageSize=100", path, page))
		if err != nil {
			return nil, err
		}
		items = append(items, p.Items...)
		if !p.HasNextPage {
			return items, nil
		}
	}
}
