// models/registro_venta.go
package models

import (
	"strings"

	"gorm.io/gorm"
)

// FormatoFecha es el formato de fecha_venta que usan los formularios.
const FormatoFecha = "2006-01-02"

type RegistroVenta struct {
	ID             uint    `gorm:"column:id_registro_venta;primaryKey" json:"id_registro_venta,omitempty"`
	IDCliente      uint    `gorm:"column:id_cliente;not null;index" json:"id_cliente"`
	IDRepuesto     uint    `gorm:"column:id_repuesto;not null;index" json:"id_repuesto"`
	Cantidad       int     `gorm:"not null" json:"cantidad"`
	PrecioUnitario float64 `gorm:"not null" json:"precio_unitario"`
	PrecioTotal    float64 `gorm:"not null" json:"precio_total"` // siempre cantidad × precio_unitario
	FechaVenta     string  `gorm:"size:32;not null" json:"fecha_venta"`
	Eliminado      bool    `gorm:"not null;default:false;index" json:"eliminado"`
}

func (RegistroVenta) TableName() string { return "registros_venta" }

func (v RegistroVenta) GetID() uint { return v.ID }
func (v RegistroVenta) IsEliminado() bool { return v.Eliminado }
func (v *RegistroVenta) SetID(id uint) { v.ID = id }
func (v *RegistroVenta) SetEliminado(b bool) { v.Eliminado = b }

// Recalcular fija precio_total a partir de cantidad y precio_unitario.
func (v *RegistroVenta) Recalcular() {
	v.PrecioTotal = Total(v.Cantidad, v.PrecioUnitario)
}

// Fecha devuelve sólo la parte YYYY-MM-DD de fecha_venta.
func (v RegistroVenta) Fecha() string {
	f, _, _ := strings.Cut(v.FechaVenta, "T")
	return f
}

func (v *RegistroVenta) BeforeSave(tx *gorm.DB) error {
	v.Recalcular()
	return nil
}

// AsignarRepuesto cambia el repuesto y toma su precio como precio unitario.
func (v *RegistroVenta) AsignarRepuesto(id uint, precio float64) {
	v.IDRepuesto = id
	v.PrecioUnitario = precio
	v.Recalcular()
}
