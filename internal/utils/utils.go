package utils

import (
	"errors"
	"strconv"
	"strings"
)

var ErrIDInvalido = errors.New("id inválido")

// ParseID convierte el segmento {id} de una ruta en un id positivo.
func ParseID(s string) (uint, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil || n == 0 {
		return 0, ErrIDInvalido
	}
	return uint(n), nil
}

// Contiene compara sin distinguir mayúsculas; q vacío siempre coincide.
func Contiene(valor, q string) bool {
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(valor), strings.ToLower(q))
}

// SplitCSV separa una lista "a, b,c" descartando vacíos.
func SplitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
