package models

// Roles sugeridos; el campo rol es texto libre.
var Roles = []string{"Administrador", "Gerente", "Vendedor", "Operador"}

type Usuario struct {
	ID        uint   `gorm:"column:id_usuario;primaryKey" json:"id_usuario,omitempty"`
	Nombre    string `gorm:"size:100;not null" json:"nombre"`
	Apellido  string `gorm:"size:100;not null" json:"apellido"`
	Rol       string `gorm:"size:50;not null" json:"rol"`
	Email     string `gorm:"size:150;not null" json:"email"`
	Eliminado bool   `gorm:"not null;default:false;index" json:"eliminado"`
}

func (Usuario) TableName() string { return "usuarios" }

func (u Usuario) GetID() uint { return u.ID }
func (u Usuario) IsEliminado() bool { return u.Eliminado }
func (u *Usuario) SetID(id uint) { u.ID = id }
func (u *Usuario) SetEliminado(v bool) { u.Eliminado = v }
