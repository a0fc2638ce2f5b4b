package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Compuesto is a chemical compound that medicamentos contain
type Compuesto struct {
	ID     string `gorm:"primaryKey;size:36" json:"_id"`
	Nombre string `gorm:"size:255;not null" json:"nombre"`
}

// TableName overrides the table name for Compuesto
func (Compuesto) TableName() string {
	return "compuestos"
}

// BeforeCreate assigns a uuid when the row has no id yet
func (c *Compuesto) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// MedicamentoDeCompuesto is one row of the medicamentos that contain a compuesto,
// with the concentration recorded on the association
type MedicamentoDeCompuesto struct {
	ID            string  `gorm:"column:id" json:"_id" bson:"_id"`
	Nombre        string  `gorm:"column:nombre" json:"nombre" bson:"nombre"`
	Fabricante    string  `gorm:"column:fabricante" json:"fabricante" bson:"fabricante"`
	Concentracion float64 `gorm:"column:concentracion" json:"concentracion" bson:"concentracion"`
	UnidadMedida  string  `gorm:"column:unidad_medida" json:"unidad_medida" bson:"unidad_medida"`
}
