package consola

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/LBGeo/gestion-repuestos/internal/api"
	"github.com/LBGeo/gestion-repuestos/internal/formulario"
	"github.com/LBGeo/gestion-repuestos/internal/utils"
	"github.com/LBGeo/gestion-repuestos/internal/vista"
)

var (
	errPantalla = errors.New("pantalla desconocida")
	errJSON     = errors.New("JSON mal formado")
)

// errValidacion: faltan campos requeridos; nunca se llegó al almacén.
type errValidacion struct {
	violaciones formulario.Violaciones
	borrador    any
}

func (e *errValidacion) Error() string { return "faltan campos requeridos" }

// errEnvio: el almacén rechazó el envío o no respondió. Conserva el borrador.
type errEnvio struct {
	err      error
	borrador any
}

func (e *errEnvio) Error() string { return e.err.Error() }
func (e *errEnvio) Unwrap() error { return e.err }

type respuestaError struct {
	Error    string `json:"error"`
	Detalles any    `json:"detalles,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("console: codificar respuesta: %v", err)
	}
}

// respondError traduce cualquier error de la consola a estado HTTP.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status, cuerpo := clasificar(err)
	if status >= http.StatusInternalServerError {
		log.Printf("console: %s %s: %v", r.Method, r.URL.Path, err)
	}
	respondJSON(w, status, cuerpo)
}

func clasificar(err error) (int, respuestaError) {
	cuerpo := respuestaError{Error: err.Error()}

	var (
		val   *errValidacion
		envio *errEnvio
		se    *api.StatusError
		te    *api.TransportError
	)
	if errors.As(err, &envio) {
		cuerpo.Detalles = map[string]any{"borrador": envio.borrador}
	}

	switch {
	case errors.As(err, &val):
		cuerpo.Detalles = map[string]any{"violaciones": val.violaciones, "borrador": val.borrador}
		return http.StatusUnprocessableEntity, cuerpo
	case errors.Is(err, errPantalla), errors.Is(err, vista.ErrEliminado):
		return http.StatusNotFound, cuerpo
	case errors.Is(err, utils.ErrIDInvalido), errors.Is(err, errJSON):
		return http.StatusBadRequest, cuerpo
	case errors.As(err, &se):
		if se.Mensaje != "" {
			cuerpo.Error = se.Mensaje
		}
		if se.Status >= 400 && se.Status < 500 {
			return se.Status, cuerpo
		}
		return http.StatusBadGateway, cuerpo
	case errors.As(err, &te):
		cuerpo.Error = "almacén no disponible: " + te.Err.Error()
		return http.StatusBadGateway, cuerpo
	default:
		return http.StatusInternalServerError, cuerpo
	}
}
