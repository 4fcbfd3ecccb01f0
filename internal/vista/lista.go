package vista

import "strconv"

// Lista es lo que devuelve cada pantalla de tabla.
type Lista[T any] struct {
	Pantalla string   `json:"pantalla"`
	Consulta string   `json:"consulta,omitempty"`
	Filas    []T      `json:"filas"`
	Total    int      `json:"total"` // filas activas antes del filtro
	Avisos   []string `json:"avisos,omitempty"`
}

func nuevaLista[T any](pantalla, q string, filas []T, campos func(T) []string, avisos []string) *Lista[T] {
	return &Lista[T]{
		Pantalla: pantalla,
		Consulta: q,
		Filas:    Filtrar(filas, q, campos),
		Total:    len(filas),
		Avisos:   avisos,
	}
}

func formatoPrecio(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
