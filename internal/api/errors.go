package api

import (
	"errors"
	"fmt"
	"net/http"
)

// TransportError: la petición no llegó a tener respuesta (red, timeout,
// cuerpo ilegible).
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// StatusError: el almacén respondió con un estado fuera de 2xx.
type StatusError struct {
	Method  string
	URL     string
	Status  int
	Mensaje string
}

func (e *StatusError) Error() string {
	if e.Mensaje == "" {
		return fmt.Sprintf("%s %s: %d %s", e.Method, e.URL, e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.URL, e.Status, e.Mensaje)
}

// EsNoEncontrado indica un 404 del almacén.
func EsNoEncontrado(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Status == http.StatusNotFound
}
