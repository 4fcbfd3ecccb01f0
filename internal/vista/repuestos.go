package vista

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/LBGeo/gestion-repuestos/internal/api"
	"github.com/LBGeo/gestion-repuestos/internal/models"
)

// ErrEliminado se devuelve al pedir el detalle de una fila borrada.
var ErrEliminado = errors.New("registro eliminado")

type FilaRepuesto struct {
	models.Repuesto
	Proveedor    string `json:"proveedor"`
	Equivalencia string `json:"equivalencia"`
}

type repuestosCargados struct {
	repuestos     Coleccion[models.Repuesto]
	proveedores   Coleccion[models.Proveedor]
	equivalencias Coleccion[models.Equivalencia]
}

func cargarRepuestos(ctx context.Context, a *api.API) *repuestosCargados {
	c := &repuestosCargados{
		repuestos:     Coleccion[models.Repuesto]{Nombre: "repuestos"},
		proveedores:   Coleccion[models.Proveedor]{Nombre: "proveedores"},
		equivalencias: Coleccion[models.Equivalencia]{Nombre: "equivalencias"},
	}
	var g errgroup.Group
	Cargar(ctx, &g, &c.repuestos, a.Repuestos.GetAll)
	Cargar(ctx, &g, &c.proveedores, a.Proveedores.GetAll)
	Cargar(ctx, &g, &c.equivalencias, a.Equivalencias.GetAll)
	g.Wait()
	return c
}

func (c *repuestosCargados) unir(filas []models.Repuesto) []FilaRepuesto {
	provs := NuevoIndice(c.proveedores.Filas)
	eqs := NuevoIndice(c.equivalencias.Filas)

	out := make([]FilaRepuesto, 0, len(filas))
	for _, r := range filas {
		out = append(out, FilaRepuesto{
			Repuesto:     r,
			Proveedor:    etiquetaProveedor(provs, r.IDProveedor),
			Equivalencia: etiquetaEquivalencia(eqs, r.IDEquivalencia),
		})
	}
	return out
}

func camposRepuesto(f FilaRepuesto) []string {
	return []string{f.MarcaAuto, f.ModeloAuto, f.CodigoOEMOriginal, f.MarcaOEM}
}

func CargarRepuestos(ctx context.Context, a *api.API, q string) (*Lista[FilaRepuesto], error) {
	c := cargarRepuestos(ctx, a)
	if c.repuestos.Err != nil {
		return nil, c.repuestos.Err
	}
	return nuevaLista("repuestos", q, c.unir(c.repuestos.Filas), camposRepuesto,
		avisos(&c.proveedores, &c.equivalencias)), nil
}

type BusquedaRepuestos struct {
	*Lista[FilaRepuesto]
	CodigoOEM  string         `json:"codigo_oem"`
	Resultados []FilaRepuesto `json:"resultados"`
}

// BuscarRepuestosPorOEM deja la tabla completa y agrega los resultados del almacén.
func BuscarRepuestosPorOEM(ctx context.Context, a *api.API, codigo string) (*BusquedaRepuestos, error) {
	c := cargarRepuestos(ctx, a)
	if c.repuestos.Err != nil {
		return nil, c.repuestos.Err
	}
	res, err := a.BuscarRepuestosPorOEM(ctx, codigo)
	if err != nil {
		return nil, err
	}
	return &BusquedaRepuestos{
		Lista: nuevaLista("repuestos", "", c.unir(c.repuestos.Filas), camposRepuesto,
			avisos(&c.proveedores, &c.equivalencias)),
		CodigoOEM:  codigo,
		Resultados: c.unir(models.Activos(res)),
	}, nil
}

type DetalleRepuesto struct {
	FilaRepuesto
	Avisos []string `json:"avisos,omitempty"`
}

// CargarDetalleRepuesto trae un repuesto con su proveedor y su equivalencia.
func CargarDetalleRepuesto(ctx context.Context, a *api.API, id uint) (*DetalleRepuesto, error) {
	r, err := a.Repuestos.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.Eliminado {
		return nil, ErrEliminado
	}

	prov := Coleccion[models.Proveedor]{Nombre: "proveedores"}
	eq := Coleccion[models.Equivalencia]{Nombre: "equivalencias"}
	var g errgroup.Group
	Cargar(ctx, &g, &prov, porID(a.Proveedores, r.IDProveedor))
	if r.IDEquivalencia != nil {
		Cargar(ctx, &g, &eq, porID(a.Equivalencias, *r.IDEquivalencia))
	}
	g.Wait()

	return &DetalleRepuesto{
		FilaRepuesto: FilaRepuesto{
			Repuesto:     *r,
			Proveedor:    etiquetaProveedor(NuevoIndice(prov.Filas), r.IDProveedor),
			Equivalencia: etiquetaEquivalencia(NuevoIndice(eq.Filas), r.IDEquivalencia),
		},
		Avisos: avisos(&prov, &eq),
	}, nil
}

// porID adapta GetByID a la forma de Cargar. Un 404 es una colección vacía.
func porID[T models.Entity](res *api.Resource[T], id uint) func(context.Context) ([]T, error) {
	return func(ctx context.Context) ([]T, error) {
		v, err := res.GetByID(ctx, id)
		if api.EsNoEncontrado(err) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return []T{*v}, nil
	}
}
