package store

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/LBGeo/gestion-repuestos/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	nombre := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(sqlite.Open("file:"+nombre+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(Modelos...))
	return db
}

func hacer(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodificar[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

// sembrar crea un proveedor, un cliente y un repuesto de 120.50.
func sembrar(t *testing.T, h http.Handler) (models.Proveedor, models.Cliente, models.Repuesto) {
	t.Helper()
	rec := hacer(t, h, http.MethodPost, "/proveedores", models.Proveedor{Nombre: "Bosch"})
	require.Equal(t, http.StatusCreated, rec.Code)
	p := decodificar[models.Proveedor](t, rec)

	rec = hacer(t, h, http.MethodPost, "/clientes", models.Cliente{Nombre: "Ana", Apellido: "Pérez"})
	require.Equal(t, http.StatusCreated, rec.Code)
	c := decodificar[models.Cliente](t, rec)

	rec = hacer(t, h, http.MethodPost, "/repuestos", models.Repuesto{
		MarcaAuto: "Toyota", ModeloAuto: "Corolla", CodigoOEMOriginal: "04465-02220",
		IDProveedor: p.ID, Precio: 120.50,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	r := decodificar[models.Repuesto](t, rec)
	return p, c, r
}

func TestCrearIgnoraIDDelCliente(t *testing.T) {
	h := NewRouter(newTestDB(t))

	rec := hacer(t, h, http.MethodPost, "/clientes", map[string]any{
		"id_cliente": 99, "nombre": "Ana", "apellido": "Pérez", "eliminado": true,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	c := decodificar[models.Cliente](t, rec)
	assert.NotEqual(t, uint(99), c.ID)
	assert.False(t, c.Eliminado)
}

func TestVentaRecalculaTotal(t *testing.T) {
	h := NewRouter(newTestDB(t))
	_, c, r := sembrar(t, h)

	rec := hacer(t, h, http.MethodPost, "/registrosventas", models.RegistroVenta{
		IDCliente: c.ID, IDRepuesto: r.ID, Cantidad: 3, PrecioUnitario: 120.50,
		PrecioTotal: 1, FechaVenta: "2024-05-10",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	v := decodificar[models.RegistroVenta](t, rec)
	assert.Equal(t, 361.50, v.PrecioTotal)

	rec = hacer(t, h, http.MethodPut, "/registrosventas/"+itoa(v.ID), map[string]any{"cantidad": 4})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	v = decodificar[models.RegistroVenta](t, rec)
	assert.Equal(t, 482.00, v.PrecioTotal)
	assert.Equal(t, "2024-05-10", v.FechaVenta)
}

func TestReferenciasInvalidas(t *testing.T) {
	h := NewRouter(newTestDB(t))
	_, c, r := sembrar(t, h)

	rec := hacer(t, h, http.MethodPost, "/repuestos", models.Repuesto{MarcaAuto: "Ford", IDProveedor: 42})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	eq := uint(7)
	rec = hacer(t, h, http.MethodPost, "/repuestos", models.Repuesto{MarcaAuto: "Ford", IDProveedor: r.IDProveedor, IDEquivalencia: &eq})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = hacer(t, h, http.MethodPost, "/registrosventas", models.RegistroVenta{IDCliente: c.ID, IDRepuesto: 999, Cantidad: 1})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = hacer(t, h, http.MethodPost, "/registros", models.Registro{IDRegistroVenta: 1, IDRepuesto: r.ID, TipoAct: "Otro"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	// Un cliente eliminado ya no puede recibir ventas.
	rec = hacer(t, h, http.MethodDelete, "/clientes/"+itoa(c.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = hacer(t, h, http.MethodPost, "/registrosventas", models.RegistroVenta{IDCliente: c.ID, IDRepuesto: r.ID, Cantidad: 1})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestActualizarFusionaCuerpoParcial(t *testing.T) {
	h := NewRouter(newTestDB(t))
	_, c, _ := sembrar(t, h)

	rec := hacer(t, h, http.MethodPut, "/clientes/"+itoa(c.ID), map[string]any{
		"id_cliente": 500, "telefono": "351-555",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	got := decodificar[models.Cliente](t, rec)
	assert.Equal(t, c.ID, got.ID)
	assert.Equal(t, "Ana", got.Nombre)
	assert.Equal(t, "351-555", got.Telefono)
	assert.False(t, got.Eliminado)

	rec = hacer(t, h, http.MethodGet, "/clientes/500", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEliminarEsLogico(t *testing.T) {
	h := NewRouter(newTestDB(t))
	p, _, _ := sembrar(t, h)

	rec := hacer(t, h, http.MethodDelete, "/proveedores/"+itoa(p.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = hacer(t, h, http.MethodGet, "/proveedores/"+itoa(p.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodificar[models.Proveedor](t, rec).Eliminado)

	rec = hacer(t, h, http.MethodGet, "/proveedores", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	lista := decodificar[[]models.Proveedor](t, rec)
	require.Len(t, lista, 1)
	assert.True(t, lista[0].Eliminado)

	// Un PUT sin "eliminado" conserva la marca.
	rec = hacer(t, h, http.MethodPut, "/proveedores/"+itoa(p.ID), map[string]any{"email": "x@bosch.com"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodificar[models.Proveedor](t, rec).Eliminado)
}

func TestBuscarEquivalencias(t *testing.T) {
	h := NewRouter(newTestDB(t))

	for _, e := range []models.Equivalencia{
		{CodigoOEMOriginal: "ABC-100", CodigoOEMEquivalente: "XYZ-9"},
		{CodigoOEMOriginal: "DEF-200", CodigoOEMEquivalente: "abc-300"},
		{CodigoOEMOriginal: "GHI-400", CodigoOEMEquivalente: "JKL-1"},
	} {
		require.Equal(t, http.StatusCreated, hacer(t, h, http.MethodPost, "/equivalencias", e).Code)
	}
	require.Equal(t, http.StatusOK, hacer(t, h, http.MethodDelete, "/equivalencias/1", nil).Code)

	rec := hacer(t, h, http.MethodGet, "/equivalencias/search?codigo=ABC", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	lista := decodificar[[]models.Equivalencia](t, rec)
	require.Len(t, lista, 1)
	assert.Equal(t, "DEF-200", lista[0].CodigoOEMOriginal)

	rec = hacer(t, h, http.MethodGet, "/equivalencias/search", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBuscarRepuestosPorOEM(t *testing.T) {
	h := NewRouter(newTestDB(t))
	sembrar(t, h)

	rec := hacer(t, h, http.MethodGet, "/repuestos/search?codigo_oem=02220", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodificar[[]models.Repuesto](t, rec), 1)

	rec = hacer(t, h, http.MethodGet, "/repuestos/search?codigo_oem=nada", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodificar[[]models.Repuesto](t, rec))
}

func TestIDInvalidoYNoEncontrado(t *testing.T) {
	h := NewRouter(newTestDB(t))

	assert.Equal(t, http.StatusBadRequest, hacer(t, h, http.MethodGet, "/usuarios/0", nil).Code)
	assert.Equal(t, http.StatusNotFound, hacer(t, h, http.MethodGet, "/usuarios/12", nil).Code)
	assert.Equal(t, http.StatusNotFound, hacer(t, h, http.MethodDelete, "/usuarios/12", nil).Code)

	req := httptest.NewRequest(http.MethodPost, "/usuarios", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func itoa(id uint) string { return strconv.FormatUint(uint64(id), 10) }
