package models

import "strings"

type Cliente struct {
	ID           uint   `gorm:"column:id_cliente;primaryKey" json:"id_cliente,omitempty"`
	Nombre       string `gorm:"size:100;not null" json:"nombre"`
	Apellido     string `gorm:"size:100;not null" json:"apellido"`
	Telefono     string `gorm:"size:30" json:"telefono"`
	Email        string `gorm:"size:150" json:"email"`
	Direccion    string `gorm:"size:255" json:"direccion"`
	NroDocumento string `gorm:"column:nro_documento;size:30" json:"nro_documento"`
	Eliminado    bool   `gorm:"not null;default:false;index" json:"eliminado"`
}

func (Cliente) TableName() string { return "clientes" }

func (c Cliente) GetID() uint { return c.ID }
func (c Cliente) IsEliminado() bool { return c.Eliminado }
func (c *Cliente) SetID(id uint) { c.ID = id }
func (c *Cliente) SetEliminado(v bool) { c.Eliminado = v }

// NombreCompleto es "nombre apellido".
func (c Cliente) NombreCompleto() string {
	return strings.TrimSpace(c.Nombre + " " + c.Apellido)
}
