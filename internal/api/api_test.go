package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LBGeo/gestion-repuestos/internal/middleware"
	"github.com/LBGeo/gestion-repuestos/internal/models"
)

func nuevoServidor(t *testing.T, h http.HandlerFunc) *API {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(NewClient(srv.URL+"/", 2*time.Second))
}

func TestGetAllYGetByID(t *testing.T) {
	a := nuevoServidor(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		switch r.URL.Path {
		case "/clientes":
			w.Write([]byte(`[{"id_cliente":1,"nombre":"Ana","eliminado":false},{"id_cliente":2,"nombre":"Luis","eliminado":true}]`))
		case "/clientes/2":
			w.Write([]byte(`{"id_cliente":2,"nombre":"Luis","eliminado":true}`))
		default:
			http.NotFound(w, r)
		}
	})

	lista, err := a.Clientes.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, lista, 2)
	assert.True(t, lista[1].Eliminado)

	c, err := a.Clientes.GetByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Luis", c.Nombre)
}

func TestCreateEnviaJSONSinID(t *testing.T) {
	a := nuevoServidor(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/registrosventas", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var cuerpo map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&cuerpo))
		_, tieneID := cuerpo["id_registro_venta"]
		assert.False(t, tieneID)
		assert.Equal(t, 361.5, cuerpo["precio_total"])

		cuerpo["id_registro_venta"] = 10
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(cuerpo)
	})

	v, err := a.RegistrosVenta.Create(context.Background(), &models.RegistroVenta{
		IDCliente: 1, IDRepuesto: 2, Cantidad: 3, PrecioUnitario: 120.5, PrecioTotal: 361.5,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(10), v.ID)
}

func TestUpdateYDelete(t *testing.T) {
	var (
		mu      sync.Mutex
		metodos []string
	)
	a := nuevoServidor(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		metodos = append(metodos, r.Method+" "+r.URL.Path)
		mu.Unlock()
		if r.Method == http.MethodPut {
			io.Copy(w, r.Body)
		}
	})

	u, err := a.Usuarios.Update(context.Background(), 4, &models.Usuario{ID: 4, Nombre: "Eva", Eliminado: true})
	require.NoError(t, err)
	assert.True(t, u.Eliminado)

	require.NoError(t, a.Usuarios.Delete(context.Background(), 4))
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"PUT /usuarios/4", "DELETE /usuarios/4"}, metodos)
}

func TestStatusError(t *testing.T) {
	a := nuevoServidor(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":"id_proveedor: 42 no existe o está eliminado"}`))
	})

	_, err := a.Repuestos.Create(context.Background(), &models.Repuesto{IDProveedor: 42})
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusUnprocessableEntity, se.Status)
	assert.Equal(t, "id_proveedor: 42 no existe o está eliminado", se.Mensaje)
	assert.False(t, EsNoEncontrado(err))
}

func TestEsNoEncontrado(t *testing.T) {
	a := nuevoServidor(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "registro no encontrado", http.StatusNotFound)
	})

	_, err := a.Equivalencias.GetByID(context.Background(), 9)
	assert.True(t, EsNoEncontrado(err))

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "registro no encontrado", se.Mensaje)
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	a := New(NewClient(url, time.Second))
	_, err := a.Proveedores.GetAll(context.Background())

	var te *TransportError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, http.MethodGet, te.Method)
	var se *StatusError
	assert.False(t, errors.As(err, &se))
}

func TestRespuestaIlegibleEsTransporte(t *testing.T) {
	a := nuevoServidor(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>`))
	})

	_, err := a.Registros.GetAll(context.Background())
	var te *TransportError
	assert.True(t, errors.As(err, &te))
}

func TestBusquedas(t *testing.T) {
	a := nuevoServidor(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/equivalencias/search":
			assert.Equal(t, "ABC 1/2", r.URL.Query().Get("codigo"))
			w.Write([]byte(`[{"id_equivalencia":3,"codigo_OEM_original":"ABC 1/2","codigo_OEM_equivalente":"X"}]`))
		case "/repuestos/search":
			assert.Equal(t, "04465", r.URL.Query().Get("codigo_oem"))
			w.Write([]byte(`[]`))
		}
	})

	eqs, err := a.BuscarEquivalencias(context.Background(), "ABC 1/2")
	require.NoError(t, err)
	require.Len(t, eqs, 1)
	assert.Equal(t, "X", eqs[0].CodigoOEMEquivalente)

	reps, err := a.BuscarRepuestosPorOEM(context.Background(), "04465")
	require.NoError(t, err)
	assert.Empty(t, reps)
}

func TestReenviaRequestIDYUnaSolaPeticion(t *testing.T) {
	var llamadas int32
	a := nuevoServidor(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&llamadas, 1)
		assert.Equal(t, "req-77", r.Header.Get(middleware.HeaderRequestID))
		w.WriteHeader(http.StatusBadGateway)
	})

	ctx := middleware.WithRequestID(context.Background(), "req-77")
	_, err := a.Clientes.GetAll(ctx)
	require.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&llamadas))
}
