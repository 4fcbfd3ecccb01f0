package store

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/LBGeo/gestion-repuestos/internal/models"
)

// Repositorio persiste una entidad con gorm. Nunca borra filas: el borrado
// es siempre lógico (eliminado = true).
type Repositorio[T any, PT models.Mutable[T]] struct {
	DB *gorm.DB
}

func NewRepositorio[T any, PT models.Mutable[T]](db *gorm.DB) *Repositorio[T, PT] {
	return &Repositorio[T, PT]{DB: db}
}

var porClave = clause.OrderByColumn{Column: clause.Column{Table: clause.CurrentTable, Name: clause.PrimaryKey}}

// Listar devuelve todas las filas, incluidas las eliminadas.
func (r *Repositorio[T, PT]) Listar(ctx context.Context) ([]T, error) {
	lista := []T{}
	err := r.DB.WithContext(ctx).Order(porClave).Find(&lista).Error
	return lista, err
}

// BuscarPorID también devuelve filas eliminadas.
func (r *Repositorio[T, PT]) BuscarPorID(ctx context.Context, id uint) (*T, error) {
	var v T
	if err := r.DB.WithContext(ctx).First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

// Activo indica si existe una fila con ese id y sin eliminar.
func (r *Repositorio[T, PT]) Activo(ctx context.Context, id uint) (bool, error) {
	v, err := r.BuscarPorID(ctx, id)
	if err == gorm.ErrRecordNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return !PT(v).IsEliminado(), nil
}

// Crear ignora cualquier id recibido; la clave la asigna la base.
func (r *Repositorio[T, PT]) Crear(ctx context.Context, v *T) error {
	PT(v).SetID(0)
	PT(v).SetEliminado(false)
	return r.DB.WithContext(ctx).Create(v).Error
}

func (r *Repositorio[T, PT]) Guardar(ctx context.Context, v *T) error {
	return r.DB.WithContext(ctx).Save(v).Error
}

// EliminarLogico marca la fila como eliminada y la devuelve.
func (r *Repositorio[T, PT]) EliminarLogico(ctx context.Context, id uint) (*T, error) {
	v, err := r.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	PT(v).SetEliminado(true)
	if err := r.Guardar(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// Buscar hace una búsqueda por subcadena, sin distinguir mayúsculas, sobre
// las columnas indicadas. Excluye las filas eliminadas.
func (r *Repositorio[T, PT]) Buscar(ctx context.Context, q string, columnas ...string) ([]T, error) {
	lista := []T{}
	patron := "%" + strings.ToLower(strings.TrimSpace(q)) + "%"

	conds := make([]string, 0, len(columnas))
	args := make([]any, 0, len(columnas))
	for _, c := range columnas {
		conds = append(conds, "LOWER("+c+") LIKE ?")
		args = append(args, patron)
	}

	err := r.DB.WithContext(ctx).
		Where("eliminado = ?", false).
		Where(strings.Join(conds, " OR "), args...).
		Order(porClave).
		Find(&lista).Error
	return lista, err
}
