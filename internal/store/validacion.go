package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/LBGeo/gestion-repuestos/internal/models"
)

// referencia falla con ErrValidacion si id no apunta a una fila activa.
func referencia[T any, PT models.Mutable[T]](ctx context.Context, db *gorm.DB, campo string, id uint) error {
	ok, err := NewRepositorio[T, PT](db).Activo(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return &ErrValidacion{Campo: campo, Mensaje: fmt.Sprintf("%d no existe o está eliminado", id)}
	}
	return nil
}

func validarRepuesto(db *gorm.DB) func(context.Context, *models.Repuesto) error {
	return func(ctx context.Context, r *models.Repuesto) error {
		if err := referencia[models.Proveedor](ctx, db, "id_proveedor", r.IDProveedor); err != nil {
			return err
		}
		if r.IDEquivalencia != nil {
			return referencia[models.Equivalencia](ctx, db, "id_equivalencia", *r.IDEquivalencia)
		}
		return nil
	}
}

func validarVenta(db *gorm.DB) func(context.Context, *models.RegistroVenta) error {
	return func(ctx context.Context, v *models.RegistroVenta) error {
		if err := referencia[models.Cliente](ctx, db, "id_cliente", v.IDCliente); err != nil {
			return err
		}
		return referencia[models.Repuesto](ctx, db, "id_repuesto", v.IDRepuesto)
	}
}

func validarRegistro(db *gorm.DB) func(context.Context, *models.Registro) error {
	return func(ctx context.Context, r *models.Registro) error {
		if !models.TipoValido(r.TipoAct) {
			return &ErrValidacion{Campo: "tipo_act", Mensaje: "debe ser Entrada o Salida"}
		}
		if err := referencia[models.RegistroVenta](ctx, db, "id_registro_venta", r.IDRegistroVenta); err != nil {
			return err
		}
		return referencia[models.Repuesto](ctx, db, "id_repuesto", r.IDRepuesto)
	}
}
