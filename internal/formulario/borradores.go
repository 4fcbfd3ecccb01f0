package formulario

import (
	"time"

	"github.com/LBGeo/gestion-repuestos/internal/models"
)

// Valores iniciales de cada formulario de alta.

func NuevoCliente() models.Cliente { return models.Cliente{} }
func NuevoProveedor() models.Proveedor { return models.Proveedor{} }
func NuevaEquivalencia() models.Equivalencia { return models.Equivalencia{} }
func NuevoUsuario() models.Usuario { return models.Usuario{} }

func NuevoRepuesto(hoy time.Time) models.Repuesto {
	return models.Repuesto{Anio: hoy.Year(), Precio: 0}
}

func NuevaVenta(hoy time.Time) models.RegistroVenta {
	return models.RegistroVenta{Cantidad: 1, FechaVenta: hoy.Format(models.FormatoFecha)}
}

func NuevoRegistro() models.Registro {
	return models.Registro{Cantidad: 1, TipoAct: models.TipoSalida}
}

// SembrarVenta prepara una venta existente para editar: la fecha queda en
// YYYY-MM-DD.
func SembrarVenta(v models.RegistroVenta) models.RegistroVenta {
	v.FechaVenta = v.Fecha()
	return v
}

// ConRepuesto es un borrador con selector de repuesto y precio unitario.
type ConRepuesto interface {
	AsignarRepuesto(id uint, precio float64)
}

// SeleccionarRepuesto copia el precio actual del repuesto elegido. Un id que
// no está entre los repuestos cargados deja precio 0.
func SeleccionarRepuesto(borrador ConRepuesto, repuestos []models.Repuesto, id uint) {
	precio := 0.0
	for _, r := range repuestos {
		if r.ID == id {
			precio = r.Precio
			break
		}
	}
	borrador.AsignarRepuesto(id, precio)
}

// Preparar deja el borrador listo para enviar. En un alta no viaja clave
// primaria y eliminado es false; en una edición se conservan los de la
// entidad original. Los totales se recalculan siempre.
func Preparar[T any, PT models.Mutable[T]](borrador *T, creando bool, id uint, eliminado bool) {
	p := PT(borrador)
	if creando {
		p.SetID(0)
		p.SetEliminado(false)
	} else {
		p.SetID(id)
		p.SetEliminado(eliminado)
	}
	if r, ok := any(borrador).(interface{ Recalcular() }); ok {
		r.Recalcular()
	}
}
