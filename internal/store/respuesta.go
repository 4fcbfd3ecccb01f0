package store

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"gorm.io/gorm"
)

// ErrValidacion rechaza una escritura con 422. Cubre claves foráneas que no
// apuntan a una fila activa y valores fuera de dominio.
type ErrValidacion struct {
	Campo   string
	Mensaje string
}

func (e *ErrValidacion) Error() string {
	return e.Campo + ": " + e.Mensaje
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("store: codificar respuesta: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondErr traduce errores de repositorio a códigos HTTP.
func respondErr(w http.ResponseWriter, recurso string, err error) {
	var val *ErrValidacion
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		respondError(w, http.StatusNotFound, recurso+": registro no encontrado")
	case errors.As(err, &val):
		respondError(w, http.StatusUnprocessableEntity, val.Error())
	default:
		log.Printf("store: %s: %v", recurso, err)
		respondError(w, http.StatusInternalServerError, "error interno en "+recurso)
	}
}
