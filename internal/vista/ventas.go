package vista

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/LBGeo/gestion-repuestos/internal/api"
	"github.com/LBGeo/gestion-repuestos/internal/models"
)

type FilaVenta struct {
	models.RegistroVenta
	Cliente  string `json:"cliente"`
	Repuesto string `json:"repuesto"`
	Fecha    string `json:"fecha"`

	cliente  *models.Cliente
	repuesto *models.Repuesto
}

func CargarVentas(ctx context.Context, a *api.API, q string) (*Lista[FilaVenta], error) {
	ventas := Coleccion[models.RegistroVenta]{Nombre: "ventas"}
	clientes := Coleccion[models.Cliente]{Nombre: "clientes"}
	repuestos := Coleccion[models.Repuesto]{Nombre: "repuestos"}

	var g errgroup.Group
	Cargar(ctx, &g, &ventas, a.RegistrosVenta.GetAll)
	Cargar(ctx, &g, &clientes, a.Clientes.GetAll)
	Cargar(ctx, &g, &repuestos, a.Repuestos.GetAll)
	g.Wait()

	if ventas.Err != nil {
		return nil, ventas.Err
	}

	idxClientes := NuevoIndice(clientes.Filas)
	idxRepuestos := NuevoIndice(repuestos.Filas)

	filas := make([]FilaVenta, 0, len(ventas.Filas))
	for _, v := range ventas.Filas {
		f := FilaVenta{RegistroVenta: v, Fecha: v.Fecha()}
		f.Cliente, f.cliente = etiquetaCliente(idxClientes, v.IDCliente)
		f.Repuesto, f.repuesto = etiquetaRepuesto(idxRepuestos, v.IDRepuesto)
		filas = append(filas, f)
	}

	return nuevaLista("ventas", q, filas, camposVenta, avisos(&clientes, &repuestos)), nil
}

// camposVenta busca en los datos del cliente y del repuesto unidos.
func camposVenta(f FilaVenta) []string {
	var campos []string
	if f.cliente != nil {
		campos = append(campos, f.cliente.Nombre, f.cliente.Apellido)
	}
	if f.repuesto != nil {
		campos = append(campos, f.repuesto.MarcaAuto, f.repuesto.ModeloAuto, f.repuesto.CodigoOEMOriginal)
	}
	return campos
}
