package api

import (
	"context"
	"net/http"

	"github.com/LBGeo/gestion-repuestos/internal/models"
)

// API agrupa las siete colecciones del almacén.
type API struct {
	Clientes       *Resource[models.Cliente]
	Proveedores    *Resource[models.Proveedor]
	Repuestos      *Resource[models.Repuesto]
	Equivalencias  *Resource[models.Equivalencia]
	Usuarios       *Resource[models.Usuario]
	RegistrosVenta *Resource[models.RegistroVenta]
	Registros      *Resource[models.Registro]

	client *Client
}

func New(c *Client) *API {
	return &API{
		Clientes:       NewResource[models.Cliente](c, "clientes"),
		Proveedores:    NewResource[models.Proveedor](c, "proveedores"),
		Repuestos:      NewResource[models.Repuesto](c, "repuestos"),
		Equivalencias:  NewResource[models.Equivalencia](c, "equivalencias"),
		Usuarios:       NewResource[models.Usuario](c, "usuarios"),
		RegistrosVenta: NewResource[models.RegistroVenta](c, "registrosventas"),
		Registros:      NewResource[models.Registro](c, "registros"),
		client:         c,
	}
}

type busquedaCodigo struct {
	Codigo string `url:"codigo"`
}

type busquedaOEM struct {
	CodigoOEM string `url:"codigo_oem"`
}

// BuscarEquivalencias: GET /equivalencias/search?codigo=
func (a *API) BuscarEquivalencias(ctx context.Context, codigo string) ([]models.Equivalencia, error) {
	lista := []models.Equivalencia{}
	err := a.client.do(ctx, http.MethodGet, "/equivalencias/search", busquedaCodigo{Codigo: codigo}, nil, &lista)
	if err != nil {
		return nil, err
	}
	return lista, nil
}

// BuscarRepuestosPorOEM: GET /repuestos/search?codigo_oem=
func (a *API) BuscarRepuestosPorOEM(ctx context.Context, codigo string) ([]models.Repuesto, error) {
	lista := []models.Repuesto{}
	err := a.client.do(ctx, http.MethodGet, "/repuestos/search", busquedaOEM{CodigoOEM: codigo}, nil, &lista)
	if err != nil {
		return nil, err
	}
	return lista, nil
}
