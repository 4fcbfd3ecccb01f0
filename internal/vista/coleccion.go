package vista

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/LBGeo/gestion-repuestos/internal/models"
)

// Coleccion es el resultado de traer una colección: filas activas o error.
// Cada colección guarda su propio error; un fallo no cancela a las demás.
type Coleccion[T models.Entity] struct {
	Nombre string
	Filas  []T
	Err    error
}

func (c *Coleccion[T]) Disponible() bool { return c.Err == nil }

// aviso devuelve el texto que ve el operador cuando la colección falló.
func (c *Coleccion[T]) aviso() string {
	return c.Nombre + " no disponible"
}

// Cargar programa fetch en g. Las filas eliminadas se descartan apenas llegan.
func Cargar[T models.Entity](ctx context.Context, g *errgroup.Group, dst *Coleccion[T], fetch func(context.Context) ([]T, error)) {
	g.Go(func() error {
		filas, err := fetch(ctx)
		if err != nil {
			dst.Err = fmt.Errorf("cargar %s: %w", dst.Nombre, err)
			return nil
		}
		dst.Filas = models.Activos(filas)
		return nil
	})
}

// avisos junta los avisos de las colecciones secundarias que fallaron.
func avisos(secundarias ...interface {
	Disponible() bool
	aviso() string
}) []string {
	var out []string
	for _, c := range secundarias {
		if !c.Disponible() {
			out = append(out, c.aviso())
		}
	}
	return out
}
