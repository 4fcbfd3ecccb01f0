package formulario

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LBGeo/gestion-repuestos/internal/models"
)

func TestCrearConExito(t *testing.T) {
	var c Controlador[models.Cliente]
	require.NoError(t, c.AbrirCreacion(NuevoCliente()))
	assert.Equal(t, Creando, c.Estado())
	c.Borrador().Nombre = "Ana"

	llamadas := 0
	err := c.Enviar(context.Background(), func(ctx context.Context, b *models.Cliente, creando bool) error {
		llamadas++
		assert.True(t, creando)
		assert.Equal(t, "Ana", b.Nombre)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, llamadas)
	assert.Equal(t, Cerrado, c.Estado())
	assert.Equal(t, models.Cliente{}, *c.Borrador())
}

func TestEnvioFallidoConservaBorrador(t *testing.T) {
	var c Controlador[models.Proveedor]
	require.NoError(t, c.AbrirEdicion(models.Proveedor{ID: 3, Nombre: "Bosch"}))
	c.Borrador().Email = "x@bosch.com"

	caida := errors.New("502")
	err := c.Enviar(context.Background(), func(ctx context.Context, b *models.Proveedor, creando bool) error {
		assert.False(t, creando)
		return caida
	})
	assert.ErrorIs(t, err, caida)
	assert.Equal(t, Editando, c.Estado())
	assert.Equal(t, "x@bosch.com", c.Borrador().Email)
	assert.Equal(t, uint(3), c.Borrador().ID)
	assert.ErrorIs(t, c.Error(), caida)

	require.NoError(t, c.Cerrar())
	assert.NoError(t, c.Error())
}

func TestTransicionesInvalidas(t *testing.T) {
	var c Controlador[models.Usuario]
	assert.ErrorIs(t, c.Enviar(context.Background(), nil), ErrTransicionInvalida)

	require.NoError(t, c.AbrirCreacion(NuevoUsuario()))
	assert.ErrorIs(t, c.AbrirEdicion(models.Usuario{ID: 1}), ErrTransicionInvalida)

	err := c.Enviar(context.Background(), func(ctx context.Context, b *models.Usuario, creando bool) error {
		assert.Equal(t, Enviando, c.Estado())
		assert.ErrorIs(t, c.Cerrar(), ErrTransicionInvalida)
		assert.ErrorIs(t, c.AbrirCreacion(models.Usuario{}), ErrTransicionInvalida)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "cerrado", c.Estado().String())
}

func TestBorradores(t *testing.T) {
	hoy := time.Date(2024, 5, 10, 15, 30, 0, 0, time.UTC)

	v := NuevaVenta(hoy)
	assert.Equal(t, 1, v.Cantidad)
	assert.Equal(t, 0.0, v.PrecioUnitario)
	assert.Equal(t, "2024-05-10", v.FechaVenta)

	r := NuevoRepuesto(hoy)
	assert.Equal(t, 2024, r.Anio)
	assert.Equal(t, 0.0, r.Precio)
	assert.Nil(t, r.IDEquivalencia)

	reg := NuevoRegistro()
	assert.Equal(t, 1, reg.Cantidad)
	assert.Equal(t, models.TipoSalida, reg.TipoAct)

	assert.Equal(t, "2024-05-10", SembrarVenta(models.RegistroVenta{FechaVenta: "2024-05-10T00:00:00.000Z"}).FechaVenta)
}

func TestSeleccionarRepuesto(t *testing.T) {
	repuestos := []models.Repuesto{{ID: 1, Precio: 120.50}, {ID: 2, Precio: 80}}

	v := NuevaVenta(time.Now())
	v.Cantidad = 3
	SeleccionarRepuesto(&v, repuestos, 1)
	assert.Equal(t, uint(1), v.IDRepuesto)
	assert.Equal(t, 120.50, v.PrecioUnitario)
	assert.Equal(t, 361.50, v.PrecioTotal)

	r := NuevoRegistro()
	SeleccionarRepuesto(&r, repuestos, 99)
	assert.Equal(t, uint(99), r.IDRepuesto)
	assert.Equal(t, 0.0, r.PrecioUnitario)
}

func TestPreparar(t *testing.T) {
	v := models.RegistroVenta{ID: 9, Cantidad: 4, PrecioUnitario: 120.50, PrecioTotal: 361.50, Eliminado: true}
	Preparar(&v, true, 0, false)
	assert.Equal(t, uint(0), v.ID)
	assert.False(t, v.Eliminado)
	assert.Equal(t, 482.00, v.PrecioTotal)

	c := models.Cliente{ID: 40, Nombre: "Ana"}
	Preparar(&c, false, 4, true)
	assert.Equal(t, uint(4), c.ID)
	assert.True(t, c.Eliminado)
}

func TestValidar(t *testing.T) {
	v := ValidarCliente(models.Cliente{Nombre: "Ana", Apellido: " "})
	assert.False(t, v.Vacio())
	assert.Equal(t, "requerido", v["apellido"])
	assert.NotContains(t, v, "nombre")

	assert.True(t, ValidarEquivalencia(models.Equivalencia{CodigoOEMOriginal: "A", CodigoOEMEquivalente: "B"}).Vacio())

	venta := ValidarVenta(NuevaVenta(time.Now()))
	assert.Contains(t, venta, "id_cliente")
	assert.Contains(t, venta, "id_repuesto")
	assert.NotContains(t, venta, "cantidad")
	assert.NotContains(t, venta, "fecha_venta")

	rep := ValidarRepuesto(NuevoRepuesto(time.Now()))
	assert.NotContains(t, rep, "anio")
	assert.NotContains(t, rep, "precio")
	assert.Contains(t, rep, "id_proveedor")

	assert.NotContains(t, ValidarRegistro(NuevoRegistro()), "tipo_act")
	assert.Len(t, ValidarUsuario(models.Usuario{}), 4)
	assert.Len(t, ValidarProveedor(models.Proveedor{}), 4)
}
