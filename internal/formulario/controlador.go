package formulario

import (
	"context"
	"errors"
)

type Estado int

const (
	Cerrado Estado = iota
	Creando
	Editando
	Enviando
)

func (e Estado) String() string {
	switch e {
	case Creando:
		return "creando"
	case Editando:
		return "editando"
	case Enviando:
		return "enviando"
	default:
		return "cerrado"
	}
}

var ErrTransicionInvalida = errors.New("transición inválida del formulario")

// EnvioFunc hace la única llamada de escritura de un envío. creando indica
// si corresponde Create o Update.
type EnvioFunc[T any] func(ctx context.Context, borrador *T, creando bool) error

// Controlador lleva el borrador de un formulario de alta o edición.
//
//	Cerrado -> Creando | Editando -> Enviando -> Cerrado (éxito)
//	                                          -> Creando | Editando (error)
type Controlador[T any] struct {
	estado   Estado
	origen   Estado
	borrador T
	err      error
}

func (c *Controlador[T]) Estado() Estado { return c.estado }

// Borrador se puede modificar mientras el formulario está abierto.
func (c *Controlador[T]) Borrador() *T { return &c.borrador }

// Error es el último fallo de envío; se limpia al abrir o cerrar.
func (c *Controlador[T]) Error() error { return c.err }

func (c *Controlador[T]) AbrirCreacion(valores T) error {
	return c.abrir(Creando, valores)
}

// AbrirEdicion copia la entidad entera; las claves foráneas quedan como ids.
func (c *Controlador[T]) AbrirEdicion(entidad T) error {
	return c.abrir(Editando, entidad)
}

func (c *Controlador[T]) abrir(estado Estado, borrador T) error {
	if c.estado != Cerrado {
		return ErrTransicionInvalida
	}
	c.estado = estado
	c.borrador = borrador
	c.err = nil
	return nil
}

// Enviar llama a fn una sola vez. Si falla, el formulario vuelve al estado
// anterior con el borrador intacto y el error queda en Error().
func (c *Controlador[T]) Enviar(ctx context.Context, fn EnvioFunc[T]) error {
	if c.estado != Creando && c.estado != Editando {
		return ErrTransicionInvalida
	}
	c.origen = c.estado
	c.estado = Enviando

	if err := fn(ctx, &c.borrador, c.origen == Creando); err != nil {
		c.estado = c.origen
		c.err = err
		return err
	}

	c.estado = Cerrado
	c.err = nil
	var vacio T
	c.borrador = vacio
	return nil
}

// Cerrar descarta el borrador. No se puede cerrar durante un envío.
func (c *Controlador[T]) Cerrar() error {
	if c.estado == Enviando {
		return ErrTransicionInvalida
	}
	var vacio T
	c.estado = Cerrado
	c.borrador = vacio
	c.err = nil
	return nil
}
