package consola

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/LBGeo/gestion-repuestos/internal/api"
	"github.com/LBGeo/gestion-repuestos/internal/utils"
	"github.com/LBGeo/gestion-repuestos/internal/vista"
)

const maxCuerpo = 1 << 20

type Handler struct {
	API       *api.API
	pantallas map[string]pantalla
}

func NewHandler(a *api.API) *Handler {
	return &Handler{API: a, pantallas: nuevasPantallas(a, time.Now)}
}

func (h *Handler) pantalla(r *http.Request) (pantalla, error) {
	p, ok := h.pantallas[mux.Vars(r)["pantalla"]]
	if !ok {
		return nil, errPantalla
	}
	return p, nil
}

// GET /health
func Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GET /api/navegacion
func (h *Handler) Navegacion(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, Navegacion)
}

// GET /api/dashboard
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, vista.CargarDashboard(r.Context(), h.API))
}

// GET /api/{pantalla}?q=
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	p, err := h.pantalla(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	lista, err := p.listar(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, lista)
}

// GET /api/{pantalla}/nuevo
func (h *Handler) Nuevo(w http.ResponseWriter, r *http.Request) {
	p, err := h.pantalla(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	f, err := p.nuevo(r.Context(), r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, f)
}

// GET /api/{pantalla}/{id}/editar
func (h *Handler) Editar(w http.ResponseWriter, r *http.Request) {
	p, id, err := h.pantallaYID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	f, err := p.editar(r.Context(), r, id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, f)
}

// POST /api/{pantalla}
func (h *Handler) Crear(w http.ResponseWriter, r *http.Request) {
	p, err := h.pantalla(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	h.mutar(w, r, p, http.StatusCreated, func(ctx context.Context, cuerpo []byte) error {
		return p.enviar(ctx, 0, true, cuerpo)
	})
}

// PUT /api/{pantalla}/{id}
func (h *Handler) Actualizar(w http.ResponseWriter, r *http.Request) {
	p, id, err := h.pantallaYID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	h.mutar(w, r, p, http.StatusOK, func(ctx context.Context, cuerpo []byte) error {
		return p.enviar(ctx, id, false, cuerpo)
	})
}

// DELETE /api/{pantalla}/{id}
func (h *Handler) Eliminar(w http.ResponseWriter, r *http.Request) {
	p, id, err := h.pantallaYID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	h.mutar(w, r, p, http.StatusOK, func(ctx context.Context, _ []byte) error {
		return p.eliminar(ctx, id)
	})
}

// mutar ejecuta la escritura y, si sale bien, devuelve la pantalla recargada.
func (h *Handler) mutar(w http.ResponseWriter, r *http.Request, p pantalla, status int,
	fn func(ctx context.Context, cuerpo []byte) error) {

	cuerpo, err := io.ReadAll(io.LimitReader(r.Body, maxCuerpo))
	if err != nil {
		respondError(w, r, errJSON)
		return
	}
	if err := fn(r.Context(), cuerpo); err != nil {
		respondError(w, r, err)
		return
	}
	lista, err := p.listar(r.Context(), "")
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, status, lista)
}

// GET /api/equivalencias/buscar?codigo=
func (h *Handler) BuscarEquivalencias(w http.ResponseWriter, r *http.Request) {
	codigo := r.URL.Query().Get("codigo")
	if codigo == "" {
		respondJSON(w, http.StatusBadRequest, respuestaError{Error: "falta el parámetro codigo"})
		return
	}
	res, err := vista.BuscarEquivalencias(r.Context(), h.API, codigo)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// GET /api/repuestos/buscar?codigo_oem=
func (h *Handler) BuscarRepuestos(w http.ResponseWriter, r *http.Request) {
	codigo := r.URL.Query().Get("codigo_oem")
	if codigo == "" {
		respondJSON(w, http.StatusBadRequest, respuestaError{Error: "falta el parámetro codigo_oem"})
		return
	}
	res, err := vista.BuscarRepuestosPorOEM(r.Context(), h.API, codigo)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// GET /api/repuestos/{id}
func (h *Handler) DetalleRepuesto(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, r, err)
		return
	}
	d, err := vista.CargarDetalleRepuesto(r.Context(), h.API, id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, d)
}

func (h *Handler) pantallaYID(r *http.Request) (pantalla, uint, error) {
	p, err := h.pantalla(r)
	if err != nil {
		return nil, 0, err
	}
	id, err := utils.ParseID(mux.Vars(r)["id"])
	if err != nil {
		return nil, 0, err
	}
	return p, id, nil
}
