package middleware

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDGeneraUUID(t *testing.T) {
	var visto string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		visto = GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	_, err := uuid.Parse(visto)
	require.NoError(t, err)
	assert.Equal(t, visto, rec.Header().Get(HeaderRequestID))
}

func TestRequestIDReutilizaEntrante(t *testing.T) {
	var visto string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		visto = GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", visto)
	assert.Equal(t, "abc-123", rec.Header().Get(HeaderRequestID))
}

func TestLoggerRegistraEstado(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	h := RequestID(Logger("console")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodDelete, "/api/clientes/3", nil))

	assert.Contains(t, buf.String(), "console DELETE /api/clientes/3 418")
	assert.Equal(t, "", GetRequestID(httptest.NewRequest(http.MethodGet, "/", nil).Context()))
}
