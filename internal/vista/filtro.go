package vista

import (
	"strings"

	"github.com/LBGeo/gestion-repuestos/internal/utils"
)

// Coincide es true si q aparece, sin distinguir mayúsculas, en alguno de los
// campos. Una consulta vacía coincide con todo.
func Coincide(q string, campos ...string) bool {
	q = strings.TrimSpace(q)
	if q == "" {
		return true
	}
	for _, c := range campos {
		if utils.Contiene(c, q) {
			return true
		}
	}
	return false
}

// Filtrar aplica Coincide a cada fila sobre los campos que devuelve campos.
func Filtrar[T any](filas []T, q string, campos func(T) []string) []T {
	out := make([]T, 0, len(filas))
	for _, f := range filas {
		if Coincide(q, campos(f)...) {
			out = append(out, f)
		}
	}
	return out
}
