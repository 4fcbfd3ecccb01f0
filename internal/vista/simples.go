package vista

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/LBGeo/gestion-repuestos/internal/api"
	"github.com/LBGeo/gestion-repuestos/internal/models"
)

// cargarSimple sirve a las pantallas que sólo muestran su propia colección.
func cargarSimple[T models.Entity](ctx context.Context, pantalla, q string,
	fetch func(context.Context) ([]T, error), campos func(T) []string) (*Lista[T], error) {

	col := Coleccion[T]{Nombre: pantalla}
	var g errgroup.Group
	Cargar(ctx, &g, &col, fetch)
	g.Wait()

	if col.Err != nil {
		return nil, col.Err
	}
	return nuevaLista(pantalla, q, col.Filas, campos, nil), nil
}

func CargarClientes(ctx context.Context, a *api.API, q string) (*Lista[models.Cliente], error) {
	return cargarSimple(ctx, "clientes", q, a.Clientes.GetAll, func(c models.Cliente) []string {
		return []string{c.Nombre, c.Apellido, c.Email, c.NroDocumento}
	})
}

func CargarProveedores(ctx context.Context, a *api.API, q string) (*Lista[models.Proveedor], error) {
	return cargarSimple(ctx, "proveedores", q, a.Proveedores.GetAll, func(p models.Proveedor) []string {
		return []string{p.Nombre, p.Email, p.Telefono}
	})
}

func CargarEquivalencias(ctx context.Context, a *api.API, q string) (*Lista[models.Equivalencia], error) {
	return cargarSimple(ctx, "equivalencias", q, a.Equivalencias.GetAll, camposEquivalencia)
}

func CargarUsuarios(ctx context.Context, a *api.API, q string) (*Lista[models.Usuario], error) {
	return cargarSimple(ctx, "usuarios", q, a.Usuarios.GetAll, func(u models.Usuario) []string {
		return []string{u.Nombre, u.Apellido, u.Email, u.Rol}
	})
}

func camposEquivalencia(e models.Equivalencia) []string {
	return []string{e.CodigoOEMOriginal, e.CodigoOEMEquivalente}
}

// BusquedaEquivalencias es la tabla completa más el panel de resultados.
type BusquedaEquivalencias struct {
	*Lista[models.Equivalencia]
	Codigo     string                `json:"codigo"`
	Resultados []models.Equivalencia `json:"resultados"`
}

// BuscarEquivalencias consulta al almacén por código; la tabla queda sin filtrar.
func BuscarEquivalencias(ctx context.Context, a *api.API, codigo string) (*BusquedaEquivalencias, error) {
	lista, err := CargarEquivalencias(ctx, a, "")
	if err != nil {
		return nil, err
	}
	res, err := a.BuscarEquivalencias(ctx, codigo)
	if err != nil {
		return nil, err
	}
	return &BusquedaEquivalencias{Lista: lista, Codigo: codigo, Resultados: models.Activos(res)}, nil
}
