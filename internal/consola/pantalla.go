// internal/consola/pantalla.go
package consola

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/LBGeo/gestion-repuestos/internal/api"
	"github.com/LBGeo/gestion-repuestos/internal/formulario"
	"github.com/LBGeo/gestion-repuestos/internal/models"
	"github.com/LBGeo/gestion-repuestos/internal/utils"
	"github.com/LBGeo/gestion-repuestos/internal/vista"
)

// pantalla es lo que la consola sabe hacer con cada sección.
type pantalla interface {
	listar(ctx context.Context, q string) (any, error)
	nuevo(ctx context.Context, r *http.Request) (*Formulario, error)
	editar(ctx context.Context, r *http.Request, id uint) (*Formulario, error)
	enviar(ctx context.Context, id uint, creando bool, cuerpo []byte) error
	eliminar(ctx context.Context, id uint) error
}

// Formulario es el borrador que se entrega al abrir un alta o una edición.
type Formulario struct {
	Pantalla string          `json:"pantalla"`
	Modo     string          `json:"modo"`
	Borrador any             `json:"borrador"`
	Opciones *vista.Opciones `json:"opciones,omitempty"`
}

type crud[T any, PT models.Mutable[T]] struct {
	nombre    string
	api       *api.API
	recurso   *api.Resource[T]
	ahora     func() time.Time
	cargar    func(ctx context.Context, q string) (any, error)
	valores   func(hoy time.Time) T
	sembrar   func(T) T
	validar   func(T) formulario.Violaciones
	precioAut bool // ventas y registros autocompletan precio_unitario
}

func (c *crud[T, PT]) listar(ctx context.Context, q string) (any, error) {
	return c.cargar(ctx, q)
}

// GET /api/{pantalla}/nuevo
func (c *crud[T, PT]) nuevo(ctx context.Context, r *http.Request) (*Formulario, error) {
	borrador := c.valores(c.ahora())
	opciones := vista.CargarOpciones(ctx, c.api, c.nombre)
	if err := c.autocompletar(r, &borrador, opciones); err != nil {
		return nil, err
	}
	return &Formulario{Pantalla: c.nombre, Modo: formulario.Creando.String(), Borrador: borrador, Opciones: opciones}, nil
}

// GET /api/{pantalla}/{id}/editar
func (c *crud[T, PT]) editar(ctx context.Context, r *http.Request, id uint) (*Formulario, error) {
	v, err := c.buscar(ctx, id)
	if err != nil {
		return nil, err
	}
	borrador := c.semilla(*v)
	opciones := vista.CargarOpciones(ctx, c.api, c.nombre)
	if err := c.autocompletar(r, &borrador, opciones); err != nil {
		return nil, err
	}
	return &Formulario{
		Pantalla: c.nombre,
		Modo:     formulario.Editando.String(),
		Borrador: borrador,
		Opciones: opciones,
	}, nil
}

// autocompletar aplica ?id_repuesto= al borrador: cambia el repuesto y toma
// su precio actual como precio unitario.
func (c *crud[T, PT]) autocompletar(r *http.Request, borrador *T, opciones *vista.Opciones) error {
	if !c.precioAut {
		return nil
	}
	s := r.URL.Query().Get("id_repuesto")
	if s == "" {
		return nil
	}
	id, err := utils.ParseID(s)
	if err != nil {
		return err
	}
	if b, ok := any(borrador).(formulario.ConRepuesto); ok {
		formulario.SeleccionarRepuesto(b, opciones.RepuestosCargados(), id)
	}
	return nil
}

// enviar abre el formulario, aplica el cuerpo sobre el borrador y hace una
// única llamada Create o Update.
func (c *crud[T, PT]) enviar(ctx context.Context, id uint, creando bool, cuerpo []byte) error {
	var (
		ctl       formulario.Controlador[T]
		eliminado bool
		err       error
	)
	if creando {
		err = ctl.AbrirCreacion(c.valores(c.ahora()))
	} else {
		original, errBuscar := c.buscar(ctx, id)
		if errBuscar != nil {
			return errBuscar
		}
		eliminado = PT(original).IsEliminado()
		err = ctl.AbrirEdicion(c.semilla(*original))
	}
	if err != nil {
		return err
	}

	borrador := ctl.Borrador()
	if err := json.Unmarshal(cuerpo, borrador); err != nil {
		return errJSON
	}
	formulario.Preparar[T, PT](borrador, creando, id, eliminado)

	if v := c.validar(*borrador); !v.Vacio() {
		return &errValidacion{violaciones: v, borrador: *borrador}
	}

	err = ctl.Enviar(ctx, func(ctx context.Context, b *T, creando bool) error {
		if creando {
			_, err := c.recurso.Create(ctx, b)
			return err
		}
		_, err := c.recurso.Update(ctx, id, b)
		return err
	})
	if err != nil {
		return &errEnvio{err: err, borrador: *ctl.Borrador()}
	}
	return nil
}

// eliminar es un borrado lógico: trae la entidad completa por id, marca
// eliminado y la reenvía con Update.
func (c *crud[T, PT]) eliminar(ctx context.Context, id uint) error {
	v, err := c.buscar(ctx, id)
	if err != nil {
		return err
	}
	PT(v).SetEliminado(true)
	_, err = c.recurso.Update(ctx, id, v)
	return err
}

// buscar trae la entidad por id; una fila ya eliminada cuenta como inexistente.
func (c *crud[T, PT]) buscar(ctx context.Context, id uint) (*T, error) {
	v, err := c.recurso.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if PT(v).IsEliminado() {
		return nil, vista.ErrEliminado
	}
	return v, nil
}

func (c *crud[T, PT]) semilla(v T) T {
	if c.sembrar == nil {
		return v
	}
	return c.sembrar(v)
}

func sinFecha[T any](f func() T) func(time.Time) T {
	return func(time.Time) T { return f() }
}

func nuevasPantallas(a *api.API, ahora func() time.Time) map[string]pantalla {
	return map[string]pantalla{
		"clientes": &crud[models.Cliente, *models.Cliente]{
			nombre: "clientes", api: a, recurso: a.Clientes, ahora: ahora,
			cargar:  func(ctx context.Context, q string) (any, error) { return vista.CargarClientes(ctx, a, q) },
			valores: sinFecha(formulario.NuevoCliente),
			validar: formulario.ValidarCliente,
		},
		"proveedores": &crud[models.Proveedor, *models.Proveedor]{
			nombre: "proveedores", api: a, recurso: a.Proveedores, ahora: ahora,
			cargar:  func(ctx context.Context, q string) (any, error) { return vista.CargarProveedores(ctx, a, q) },
			valores: sinFecha(formulario.NuevoProveedor),
			validar: formulario.ValidarProveedor,
		},
		"repuestos": &crud[models.Repuesto, *models.Repuesto]{
			nombre: "repuestos", api: a, recurso: a.Repuestos, ahora: ahora,
			cargar:  func(ctx context.Context, q string) (any, error) { return vista.CargarRepuestos(ctx, a, q) },
			valores: formulario.NuevoRepuesto,
			validar: formulario.ValidarRepuesto,
		},
		"equivalencias": &crud[models.Equivalencia, *models.Equivalencia]{
			nombre: "equivalencias", api: a, recurso: a.Equivalencias, ahora: ahora,
			cargar:  func(ctx context.Context, q string) (any, error) { return vista.CargarEquivalencias(ctx, a, q) },
			valores: sinFecha(formulario.NuevaEquivalencia),
			validar: formulario.ValidarEquivalencia,
		},
		"usuarios": &crud[models.Usuario, *models.Usuario]{
			nombre: "usuarios", api: a, recurso: a.Usuarios, ahora: ahora,
			cargar:  func(ctx context.Context, q string) (any, error) { return vista.CargarUsuarios(ctx, a, q) },
			valores: sinFecha(formulario.NuevoUsuario),
			validar: formulario.ValidarUsuario,
		},
		"ventas": &crud[models.RegistroVenta, *models.RegistroVenta]{
			nombre: "ventas", api: a, recurso: a.RegistrosVenta, ahora: ahora,
			cargar:    func(ctx context.Context, q string) (any, error) { return vista.CargarVentas(ctx, a, q) },
			valores:   formulario.NuevaVenta,
			sembrar:   formulario.SembrarVenta,
			validar:   formulario.ValidarVenta,
			precioAut: true,
		},
		"registros": &crud[models.Registro, *models.Registro]{
			nombre: "registros", api: a, recurso: a.Registros, ahora: ahora,
			cargar:    func(ctx context.Context, q string) (any, error) { return vista.CargarRegistros(ctx, a, q) },
			valores:   sinFecha(formulario.NuevoRegistro),
			validar:   formulario.ValidarRegistro,
			precioAut: true,
		},
	}
}
