package api

import (
	"context"
	"fmt"
	"net/http"
)

// Resource es una colección REST del almacén: /{nombre} y /{nombre}/{id}.
type Resource[T any] struct {
	client *Client
	path   string
}

func NewResource[T any](c *Client, nombre string) *Resource[T] {
	return &Resource[T]{client: c, path: "/" + nombre}
}

// GetAll devuelve la colección completa, incluidas filas eliminadas.
func (r *Resource[T]) GetAll(ctx context.Context) ([]T, error) {
	lista := []T{}
	if err := r.client.do(ctx, http.MethodGet, r.path, nil, nil, &lista); err != nil {
		return nil, err
	}
	return lista, nil
}

func (r *Resource[T]) GetByID(ctx context.Context, id uint) (*T, error) {
	var v T
	if err := r.client.do(ctx, http.MethodGet, r.item(id), nil, nil, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *Resource[T]) Create(ctx context.Context, v *T) (*T, error) {
	var creado T
	if err := r.client.do(ctx, http.MethodPost, r.path, nil, v, &creado); err != nil {
		return nil, err
	}
	return &creado, nil
}

func (r *Resource[T]) Update(ctx context.Context, id uint, v *T) (*T, error) {
	var actualizado T
	if err := r.client.do(ctx, http.MethodPut, r.item(id), nil, v, &actualizado); err != nil {
		return nil, err
	}
	return &actualizado, nil
}

// Delete llama al DELETE del almacén. La consola borra con Update.
func (r *Resource[T]) Delete(ctx context.Context, id uint) error {
	return r.client.do(ctx, http.MethodDelete, r.item(id), nil, nil, nil)
}

func (r *Resource[T]) item(id uint) string {
	return fmt.Sprintf("%s/%d", r.path, id)
}
