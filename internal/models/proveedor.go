package models

type Proveedor struct {
	ID        uint   `gorm:"column:id_proveedor;primaryKey" json:"id_proveedor,omitempty"`
	Nombre    string `gorm:"size:150;not null" json:"nombre"`
	Direccion string `gorm:"size:255" json:"direccion"`
	Telefono  string `gorm:"size:30" json:"telefono"`
	Email     string `gorm:"size:150" json:"email"`
	Eliminado bool   `gorm:"not null;default:false;index" json:"eliminado"`
}

func (Proveedor) TableName() string { return "proveedores" }

func (p Proveedor) GetID() uint { return p.ID }
func (p Proveedor) IsEliminado() bool { return p.Eliminado }
func (p *Proveedor) SetID(id uint) { p.ID = id }
func (p *Proveedor) SetEliminado(v bool) { p.Eliminado = v }
