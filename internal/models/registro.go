package models

import "gorm.io/gorm"

const (
	TipoEntrada = "Entrada"
	TipoSalida  = "Salida"
)

// Registro es una línea de movimiento asociada a una venta.
type Registro struct {
	ID              uint    `gorm:"column:id_registro;primaryKey" json:"id_registro,omitempty"`
	IDRegistroVenta uint    `gorm:"column:id_registro_venta;not null;index" json:"id_registro_venta"`
	IDRepuesto      uint    `gorm:"column:id_repuesto;not null;index" json:"id_repuesto"`
	Cantidad        int     `gorm:"not null" json:"cantidad"`
	PrecioUnitario  float64 `gorm:"not null" json:"precio_unitario"`
	PrecioTotal     float64 `gorm:"not null" json:"precio_total"`
	TipoAct         string  `gorm:"column:tipo_act;size:10;not null" json:"tipo_act"`
	Eliminado       bool    `gorm:"not null;default:false;index" json:"eliminado"`
}

func (Registro) TableName() string { return "registros" }

func (r Registro) GetID() uint { return r.ID }
func (r Registro) IsEliminado() bool { return r.Eliminado }
func (r *Registro) SetID(id uint) { r.ID = id }
func (r *Registro) SetEliminado(v bool) { r.Eliminado = v }

func (r *Registro) Recalcular() {
	r.PrecioTotal = Total(r.Cantidad, r.PrecioUnitario)
}

func (r *Registro) BeforeSave(tx *gorm.DB) error {
	r.Recalcular()
	return nil
}

// TipoValido acepta sólo Entrada o Salida.
func TipoValido(t string) bool {
	return t == TipoEntrada || t == TipoSalida
}

func (r *Registro) AsignarRepuesto(id uint, precio float64) {
	r.IDRepuesto = id
	r.PrecioUnitario = precio
	r.Recalcular()
}
