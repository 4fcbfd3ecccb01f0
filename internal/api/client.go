package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/go-querystring/query"

	"github.com/LBGeo/gestion-repuestos/internal/middleware"
)

// Client habla JSON con el almacén remoto. Cada método hace exactamente una
// petición: no hay caché ni reintentos.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// do envía body (si no es nil) y decodifica la respuesta en out (si no es nil).
// params se codifica como query string con go-querystring.
func (c *Client) do(ctx context.Context, method, path string, params, body, out any) error {
	url := c.baseURL + path
	if params != nil {
		v, err := query.Values(params)
		if err != nil {
			return fmt.Errorf("codificar parámetros: %w", err)
		}
		url += "?" + v.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("codificar cuerpo: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return &TransportError{Method: method, URL: url, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if id := middleware.GetRequestID(ctx); id != "" {
		req.Header.Set(middleware.HeaderRequestID, id)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Method: method, URL: url, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Method: method, URL: url, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Method: method, URL: url, Status: resp.StatusCode, Mensaje: mensajeDe(data)}
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &TransportError{Method: method, URL: url, Err: fmt.Errorf("decodificar respuesta: %w", err)}
	}
	return nil
}

// mensajeDe extrae {"error": "..."} o, si no es JSON, el texto plano.
func mensajeDe(data []byte) string {
	var cuerpo struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(data, &cuerpo) == nil {
		if cuerpo.Error != "" {
			return cuerpo.Error
		}
		if cuerpo.Message != "" {
			return cuerpo.Message
		}
	}
	return strings.TrimSpace(string(data))
}
