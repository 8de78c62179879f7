package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	categoriasPath = "/api/Categorias"
	productosPath  = "/api/Productos"
	preciosPath    = "/api/Precios"
)

// RequestError ответ бэкенда с кодом не из 2xx.
// Message берётся из поля message, затем title тела ответа.
type RequestError struct {
	Method  string
	Path    string
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("backend %s %s: %d %s", e.Method, e.Path, e.Status, e.Message)
}

// Client HTTP-клиент REST-бэкенда пекарни
type Client struct {
	baseURL     string
	catalogPath string
	http        *http.Client
	log         *zap.Logger
}

func NewClient(baseURL, catalogPath string, timeout time.Duration, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		catalogPath: catalogPath,
		http:        &http.Client{Timeout: timeout},
		log:         log,
	}
}

// FetchCatalog единственный запрос за категориями, товарами и сезонными товарами
func (c *Client) FetchCatalog(ctx context.Context) (*CatalogPayload, error) {
	var payload CatalogPayload
	ok, err := c.do(ctx, http.MethodGet, c.catalogPath, nil, &payload)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("backend GET %s: empty catalog response", c.catalogPath)
	}
	return &payload, nil
}

func (c *Client) Categorias() *Resource[Categoria] {
	return &Resource[Categoria]{client: c, path: categoriasPath}
}

func (c *Client) Productos() *Resource[Producto] {
	return &Resource[Producto]{client: c, path: productosPath}
}

func (c *Client) Precios() *Resource[Precio] {
	return &Resource[Precio]{client: c, path: preciosPath}
}

// do returns false when the response carried no body (204 or empty)
func (c *Client) do(ctx context.Context, method, path string, in, out any) (bool, error) {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return false, fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return false, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return false, fmt.Errorf("backend %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.log.Debug("backend request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)))

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, fmt.Errorf("read %s %s: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return false, &RequestError{
			Method:  method,
			Path:    path,
			Status:  resp.StatusCode,
			Message: errorMessage(resp.StatusCode, raw),
		}
	}

	if resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(raw)) == 0 || out == nil {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return true, nil
}

func errorMessage(status int, raw []byte) string {
	var body struct {
		Message string `json:"message"`
		Title   string `json:"title"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Title != "" {
			return body.Title
		}
	}
	return http.StatusText(status)
}

// IsRequestError достаёт RequestError из цепочки ошибок
func IsRequestError(err error) (*RequestError, bool) {
	var re *RequestError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}

// Resource CRUD над одной коллекцией бэкенда
type Resource[T any] struct {
	client *Client
	path   string
}

func (r *Resource[T]) item(key string) string {
	return r.path + "/" + url.PathEscape(key)
}

func (r *Resource[T]) List(ctx context.Context) ([]T, error) {
	out := make([]T, 0)
	if _, err := r.client.do(ctx, http.MethodGet, r.path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Resource[T]) Get(ctx context.Context, key string) (*T, error) {
	var out T
	ok, err := r.client.do(ctx, http.MethodGet, r.item(key), nil, &out)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &RequestError{Method: http.MethodGet, Path: r.item(key), Status: http.StatusNotFound, Message: http.StatusText(http.StatusNotFound)}
	}
	return &out, nil
}

// Create returns nil resource when the backend answers with no content
func (r *Resource[T]) Create(ctx context.Context, in T) (*T, error) {
	var out T
	ok, err := r.client.do(ctx, http.MethodPost, r.path, in, &out)
	if err != nil || !ok {
		return nil, err
	}
	return &out, nil
}

func (r *Resource[T]) Update(ctx context.Context, key string, in T) (*T, error) {
	var out T
	ok, err := r.client.do(ctx, http.MethodPut, r.item(key), in, &out)
	if err != nil || !ok {
		return nil, err
	}
	return &out, nil
}

func (r *Resource[T]) Delete(ctx context.Context, key string) error {
	_, err := r.client.do(ctx, http.MethodDelete, r.item(key), nil, nil)
	return err
}
