// internal/store/handler.go
package store

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/LBGeo/gestion-repuestos/internal/models"
	"github.com/LBGeo/gestion-repuestos/internal/utils"
)

// Handler expone una colección como /{recurso} y /{recurso}/{id}.
type Handler[T any, PT models.Mutable[T]] struct {
	Recurso string
	Repo    *Repositorio[T, PT]
	// Validar revisa claves foráneas antes de escribir; puede ser nil.
	Validar func(ctx context.Context, v *T) error
}

func NewHandler[T any, PT models.Mutable[T]](repo *Repositorio[T, PT], recurso string) *Handler[T, PT] {
	return &Handler[T, PT]{Recurso: recurso, Repo: repo}
}

// Registrar monta las rutas CRUD en el router.
func (h *Handler[T, PT]) Registrar(r *mux.Router) {
	base := "/" + h.Recurso
	r.HandleFunc(base, h.Listar).Methods(http.MethodGet)
	r.HandleFunc(base, h.Crear).Methods(http.MethodPost)
	r.HandleFunc(base+"/{id:[0-9]+}", h.BuscarPorID).Methods(http.MethodGet)
	r.HandleFunc(base+"/{id:[0-9]+}", h.Actualizar).Methods(http.MethodPut)
	r.HandleFunc(base+"/{id:[0-9]+}", h.Eliminar).Methods(http.MethodDelete)
}

// GET /{recurso}
func (h *Handler[T, PT]) Listar(w http.ResponseWriter, r *http.Request) {
	lista, err := h.Repo.Listar(r.Context())
	if err != nil {
		respondErr(w, h.Recurso, err)
		return
	}
	respondJSON(w, http.StatusOK, lista)
}

// GET /{recurso}/{id}
func (h *Handler[T, PT]) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	v, err := h.Repo.BuscarPorID(r.Context(), id)
	if err != nil {
		respondErr(w, h.Recurso, err)
		return
	}
	respondJSON(w, http.StatusOK, v)
}

// POST /{recurso}
func (h *Handler[T, PT]) Crear(w http.ResponseWriter, r *http.Request) {
	var v T
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		respondError(w, http.StatusBadRequest, "JSON mal formado")
		return
	}
	if err := h.validar(r.Context(), &v); err != nil {
		respondErr(w, h.Recurso, err)
		return
	}
	if err := h.Repo.Crear(r.Context(), &v); err != nil {
		respondErr(w, h.Recurso, err)
		return
	}
	respondJSON(w, http.StatusCreated, v)
}

// PUT /{recurso}/{id}
// El cuerpo puede ser parcial: se aplica sobre la fila guardada.
func (h *Handler[T, PT]) Actualizar(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	existente, err := h.Repo.BuscarPorID(r.Context(), id)
	if err != nil {
		respondErr(w, h.Recurso, err)
		return
	}
	if err := json.NewDecoder(r.Body).Decode(existente); err != nil {
		respondError(w, http.StatusBadRequest, "JSON mal formado")
		return
	}
	PT(existente).SetID(id)

	// Marcar como eliminado no requiere referencias válidas.
	if !PT(existente).IsEliminado() {
		if err := h.validar(r.Context(), existente); err != nil {
			respondErr(w, h.Recurso, err)
			return
		}
	}
	if err := h.Repo.Guardar(r.Context(), existente); err != nil {
		respondErr(w, h.Recurso, err)
		return
	}
	respondJSON(w, http.StatusOK, existente)
}

// DELETE /{recurso}/{id}
// Borrado lógico: la fila queda con eliminado = true.
func (h *Handler[T, PT]) Eliminar(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	v, err := h.Repo.EliminarLogico(r.Context(), id)
	if err != nil {
		respondErr(w, h.Recurso, err)
		return
	}
	respondJSON(w, http.StatusOK, v)
}

// Buscar devuelve un handler de búsqueda por el parámetro de query indicado.
func (h *Handler[T, PT]) Buscar(param string, columnas ...string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get(param)
		if q == "" {
			respondError(w, http.StatusBadRequest, "falta el parámetro "+param)
			return
		}
		lista, err := h.Repo.Buscar(r.Context(), q, columnas...)
		if err != nil {
			respondErr(w, h.Recurso, err)
			return
		}
		respondJSON(w, http.StatusOK, lista)
	}
}

func (h *Handler[T, PT]) validar(ctx context.Context, v *T) error {
	if h.Validar == nil {
		return nil
	}
	return h.Validar(ctx, v)
}
