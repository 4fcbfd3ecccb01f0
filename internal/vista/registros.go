package vista

import (
	"context"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/LBGeo/gestion-repuestos/internal/api"
	"github.com/LBGeo/gestion-repuestos/internal/models"
)

type FilaRegistro struct {
	models.Registro
	Venta    string `json:"venta"`
	Repuesto string `json:"repuesto"`

	venta    *models.RegistroVenta
	repuesto *models.Repuesto
}

func CargarRegistros(ctx context.Context, a *api.API, q string) (*Lista[FilaRegistro], error) {
	registros := Coleccion[models.Registro]{Nombre: "registros"}
	ventas := Coleccion[models.RegistroVenta]{Nombre: "ventas"}
	repuestos := Coleccion[models.Repuesto]{Nombre: "repuestos"}

	var g errgroup.Group
	Cargar(ctx, &g, &registros, a.Registros.GetAll)
	Cargar(ctx, &g, &ventas, a.RegistrosVenta.GetAll)
	Cargar(ctx, &g, &repuestos, a.Repuestos.GetAll)
	g.Wait()

	if registros.Err != nil {
		return nil, registros.Err
	}

	idxVentas := NuevoIndice(ventas.Filas)
	idxRepuestos := NuevoIndice(repuestos.Filas)

	filas := make([]FilaRegistro, 0, len(registros.Filas))
	for _, r := range registros.Filas {
		f := FilaRegistro{Registro: r}
		f.Venta, f.venta = etiquetaVenta(idxVentas, r.IDRegistroVenta)
		f.Repuesto, f.repuesto = etiquetaRepuesto(idxRepuestos, r.IDRepuesto)
		filas = append(filas, f)
	}

	return nuevaLista("registros", q, filas, camposRegistro, avisos(&ventas, &repuestos)), nil
}

func camposRegistro(f FilaRegistro) []string {
	campos := []string{strconv.FormatUint(uint64(f.ID), 10)}
	// La venta sólo se busca si se resolvió.
	if f.venta != nil {
		campos = append(campos, strconv.FormatUint(uint64(f.venta.ID), 10))
	}
	if f.repuesto != nil {
		campos = append(campos, f.repuesto.MarcaAuto, f.repuesto.ModeloAuto, f.repuesto.CodigoOEMOriginal)
	}
	return campos
}
