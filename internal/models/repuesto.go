package models

import "strings"

type Repuesto struct {
	ID                uint    `gorm:"column:id_repuesto;primaryKey" json:"id_repuesto,omitempty"`
	MarcaAuto         string  `gorm:"size:80;not null" json:"marca_auto"`
	ModeloAuto        string  `gorm:"size:80;not null" json:"modelo_auto"`
	CodigoOEMOriginal string  `gorm:"column:codigo_oem_original;size:60;not null;index" json:"codigo_OEM_original"`
	MarcaOEM          string  `gorm:"column:marca_oem;size:80" json:"marca_OEM"`
	Anio              int     `json:"anio"`
	Motor             string  `gorm:"size:80" json:"motor"`
	IDProveedor       uint    `gorm:"column:id_proveedor;not null;index" json:"id_proveedor"`
	IDEquivalencia    *uint   `gorm:"column:id_equivalencia;index" json:"id_equivalencia"` // nil = sin equivalencia
	Precio            float64 `gorm:"not null;default:0" json:"precio"`
	ImagenURL         *string `gorm:"column:imagen_url;size:500" json:"imagen_url"`
	Texto             *string `gorm:"type:text" json:"texto"`
	Stock             int     `gorm:"not null;default:0" json:"stock"`
	Eliminado         bool    `gorm:"not null;default:false;index" json:"eliminado"`
}

func (Repuesto) TableName() string { return "repuestos" }

func (r Repuesto) GetID() uint { return r.ID }
func (r Repuesto) IsEliminado() bool { return r.Eliminado }
func (r *Repuesto) SetID(id uint) { r.ID = id }
func (r *Repuesto) SetEliminado(v bool) { r.Eliminado = v }

// Descripcion es "marca modelo", como se muestra en ventas y registros.
func (r Repuesto) Descripcion() string {
	return strings.TrimSpace(r.MarcaAuto + " " + r.ModeloAuto)
}
