package models

import "math"

// Entity es lo mínimo que comparten todas las entidades del almacén:
// clave primaria asignada por el servidor y la marca de borrado lógico.
type Entity interface {
	GetID() uint
	IsEliminado() bool
}

// Mutable se usa con genéricos para poder escribir sobre *T.
type Mutable[T any] interface {
	*T
	Entity
	SetID(id uint)
	SetEliminado(v bool)
}

// Etiquetas de respaldo cuando una referencia no se resuelve.
const (
	ClienteNoEncontrado  = "Cliente no encontrado"
	RepuestoNoEncontrado = "Repuesto no encontrado"
	VentaNoEncontrada    = "Venta no encontrada"
	SinDato              = "N/A"
)

// Total calcula cantidad × precio unitario redondeado al centavo.
func Total(cantidad int, precioUnitario float64) float64 {
	return math.Round(float64(cantidad)*precioUnitario*100) / 100
}

// Activos descarta las filas con eliminado = true.
func Activos[T Entity](filas []T) []T {
	out := make([]T, 0, len(filas))
	for _, f := range filas {
		if !f.IsEliminado() {
			out = append(out, f)
		}
	}
	return out
}
