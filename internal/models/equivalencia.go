package models

// Equivalencia relaciona un código OEM con otro intercambiable.
type Equivalencia struct {
	ID                   uint   `gorm:"column:id_equivalencia;primaryKey" json:"id_equivalencia,omitempty"`
	CodigoOEMOriginal    string `gorm:"column:codigo_oem_original;size:60;not null;index" json:"codigo_OEM_original"`
	CodigoOEMEquivalente string `gorm:"column:codigo_oem_equivalente;size:60;not null;index" json:"codigo_OEM_equivalente"`
	Eliminado            bool   `gorm:"not null;default:false;index" json:"eliminado"`
}

func (Equivalencia) TableName() string { return "equivalencias" }

func (e Equivalencia) GetID() uint { return e.ID }
func (e Equivalencia) IsEliminado() bool { return e.Eliminado }
func (e *Equivalencia) SetID(id uint) { e.ID = id }
func (e *Equivalencia) SetEliminado(v bool) { e.Eliminado = v }

// Codigos devuelve "original ↔ equivalente".
func (e Equivalencia) Codigos() string {
	return e.CodigoOEMOriginal + " ↔ " + e.CodigoOEMEquivalente
}
