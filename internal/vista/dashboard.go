package vista

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/LBGeo/gestion-repuestos/internal/api"
	"github.com/LBGeo/gestion-repuestos/internal/models"
)

// Estadistica es un número del tablero. Si su colección falló, Disponible
// es false y Valor no significa nada.
type Estadistica struct {
	Valor      float64 `json:"valor"`
	Disponible bool    `json:"disponible"`
}

type Dashboard struct {
	Clientes        Estadistica `json:"clientes"`
	Repuestos       Estadistica `json:"repuestos"`
	Proveedores     Estadistica `json:"proveedores"`
	Ventas          Estadistica `json:"ventas"`
	IngresosTotales Estadistica `json:"ingresos_totales"`
	PromedioVenta   Estadistica `json:"promedio_venta"`
	Avisos          []string    `json:"avisos,omitempty"`
}

// CargarDashboard nunca falla: cada estadística depende sólo de su colección.
func CargarDashboard(ctx context.Context, a *api.API) *Dashboard {
	clientes := Coleccion[models.Cliente]{Nombre: "clientes"}
	repuestos := Coleccion[models.Repuesto]{Nombre: "repuestos"}
	proveedores := Coleccion[models.Proveedor]{Nombre: "proveedores"}
	ventas := Coleccion[models.RegistroVenta]{Nombre: "ventas"}

	var g errgroup.Group
	Cargar(ctx, &g, &clientes, a.Clientes.GetAll)
	Cargar(ctx, &g, &repuestos, a.Repuestos.GetAll)
	Cargar(ctx, &g, &proveedores, a.Proveedores.GetAll)
	Cargar(ctx, &g, &ventas, a.RegistrosVenta.GetAll)
	g.Wait()

	d := &Dashboard{
		Clientes:    contar(&clientes),
		Repuestos:   contar(&repuestos),
		Proveedores: contar(&proveedores),
		Ventas:      contar(&ventas),
		Avisos:      avisos(&clientes, &repuestos, &proveedores, &ventas),
	}
	if ventas.Disponible() {
		ingresos, promedio := Ingresos(ventas.Filas)
		d.IngresosTotales = Estadistica{Valor: ingresos, Disponible: true}
		d.PromedioVenta = Estadistica{Valor: promedio, Disponible: true}
	}
	return d
}

func contar[T models.Entity](c *Coleccion[T]) Estadistica {
	if !c.Disponible() {
		return Estadistica{}
	}
	return Estadistica{Valor: float64(len(c.Filas)), Disponible: true}
}

// Ingresos suma precio_total y redondea el promedio al entero más cercano.
// Sin ventas el promedio es 0.
func Ingresos(ventas []models.RegistroVenta) (total, promedio float64) {
	for _, v := range ventas {
		total += v.PrecioTotal
	}
	total = math.Round(total*100) / 100
	if len(ventas) == 0 {
		return total, 0
	}
	return total, math.Round(total / float64(len(ventas)))
}
