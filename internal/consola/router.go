package consola

import (
	"github.com/gorilla/mux"

	"github.com/LBGeo/gestion-repuestos/internal/middleware"
)

func NewRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.RequestID, middleware.Logger("console"))

	r.HandleFunc("/health", Health).Methods("GET")

	a := r.PathPrefix("/api").Subrouter()

	a.HandleFunc("/navegacion", h.Navegacion).Methods("GET")
	a.HandleFunc("/dashboard", h.Dashboard).Methods("GET")

	// Búsquedas en el almacén y detalle de repuesto
	a.HandleFunc("/equivalencias/buscar", h.BuscarEquivalencias).Methods("GET")
	a.HandleFunc("/repuestos/buscar", h.BuscarRepuestos).Methods("GET")
	a.HandleFunc("/repuestos/{id:[0-9]+}", h.DetalleRepuesto).Methods("GET")

	// Pantallas
	a.HandleFunc("/{pantalla}", h.Listar).Methods("GET")
	a.HandleFunc("/{pantalla}", h.Crear).Methods("POST")
	a.HandleFunc("/{pantalla}/nuevo", h.Nuevo).Methods("GET")
	a.HandleFunc("/{pantalla}/{id:[0-9]+}/editar", h.Editar).Methods("GET")
	a.HandleFunc("/{pantalla}/{id:[0-9]+}", h.Actualizar).Methods("PUT")
	a.HandleFunc("/{pantalla}/{id:[0-9]+}", h.Eliminar).Methods("DELETE")

	return r
}
