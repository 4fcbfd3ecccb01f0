package vista

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/LBGeo/gestion-repuestos/internal/api"
	"github.com/LBGeo/gestion-repuestos/internal/models"
)

// Opcion es una entrada de un selector del formulario.
type Opcion struct {
	ID       uint    `json:"id"`
	Etiqueta string  `json:"etiqueta"`
	Precio   float64 `json:"precio,omitempty"` // sólo repuestos
}

// Opciones alimenta los selectores de claves foráneas de cada formulario.
type Opciones struct {
	Clientes      []Opcion `json:"clientes,omitempty"`
	Repuestos     []Opcion `json:"repuestos,omitempty"`
	Proveedores   []Opcion `json:"proveedores,omitempty"`
	Equivalencias []Opcion `json:"equivalencias,omitempty"`
	Ventas        []Opcion `json:"ventas,omitempty"`
	Roles         []string `json:"roles,omitempty"`
	TiposAct      []string `json:"tipos_act,omitempty"`
	Avisos        []string `json:"avisos,omitempty"`

	repuestos []models.Repuesto
}

// Repuestos activos cargados, para autocompletar el precio unitario.
func (o *Opciones) RepuestosCargados() []models.Repuesto { return o.repuestos }

// CargarOpciones trae lo que necesita el formulario de la pantalla. Un
// fallo deja el selector vacío y agrega un aviso.
func CargarOpciones(ctx context.Context, a *api.API, pantalla string) *Opciones {
	o := &Opciones{}
	clientes := Coleccion[models.Cliente]{Nombre: "clientes"}
	repuestos := Coleccion[models.Repuesto]{Nombre: "repuestos"}
	proveedores := Coleccion[models.Proveedor]{Nombre: "proveedores"}
	equivalencias := Coleccion[models.Equivalencia]{Nombre: "equivalencias"}
	ventas := Coleccion[models.RegistroVenta]{Nombre: "ventas"}

	var g errgroup.Group
	switch pantalla {
	case "repuestos":
		Cargar(ctx, &g, &proveedores, a.Proveedores.GetAll)
		Cargar(ctx, &g, &equivalencias, a.Equivalencias.GetAll)
	case "ventas":
		Cargar(ctx, &g, &clientes, a.Clientes.GetAll)
		Cargar(ctx, &g, &repuestos, a.Repuestos.GetAll)
	case "registros":
		Cargar(ctx, &g, &ventas, a.RegistrosVenta.GetAll)
		Cargar(ctx, &g, &repuestos, a.Repuestos.GetAll)
		o.TiposAct = []string{models.TipoEntrada, models.TipoSalida}
	case "usuarios":
		o.Roles = models.Roles
	}
	g.Wait()

	o.Clientes = opciones(clientes.Filas, models.Cliente.NombreCompleto)
	o.Repuestos = opciones(repuestos.Filas, func(r models.Repuesto) string {
		return r.Descripcion() + " (" + r.CodigoOEMOriginal + ")"
	})
	for i, r := range repuestos.Filas {
		o.Repuestos[i].Precio = r.Precio
	}
	o.Proveedores = opciones(proveedores.Filas, func(p models.Proveedor) string { return p.Nombre })
	o.Equivalencias = opciones(equivalencias.Filas, models.Equivalencia.Codigos)
	o.Ventas = opciones(ventas.Filas, func(v models.RegistroVenta) string {
		return v.Fecha() + " · $" + formatoPrecio(v.PrecioTotal)
	})
	o.repuestos = repuestos.Filas
	o.Avisos = avisos(&clientes, &repuestos, &proveedores, &equivalencias, &ventas)
	return o
}

func opciones[T models.Entity](filas []T, etiqueta func(T) string) []Opcion {
	if len(filas) == 0 {
		return nil
	}
	out := make([]Opcion, 0, len(filas))
	for _, f := range filas {
		out = append(out, Opcion{ID: f.GetID(), Etiqueta: etiqueta(f)})
	}
	return out
}
