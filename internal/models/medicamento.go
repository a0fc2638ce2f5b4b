package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Medicamento is a medication produced by a fabricante
type Medicamento struct {
	ID         string `gorm:"primaryKey;size:36" json:"_id"`
	Nombre     string `gorm:"size:255;not null" json:"nombre"`
	Fabricante string `gorm:"size:255;not null" json:"fabricante"`
}

// TableName overrides the table name for Medicamento
func (Medicamento) TableName() string {
	return "medicamentos"
}

// BeforeCreate assigns a uuid when the row has no id yet
func (m *Medicamento) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// CompuestoDeMedicamento is one compuesto of a medicamento with its concentration
type CompuestoDeMedicamento struct {
	ID            string  `gorm:"column:id" json:"_id" bson:"_id"`
	Nombre        string  `gorm:"column:nombre" json:"nombre" bson:"nombre"`
	Concentracion float64 `gorm:"column:concentracion" json:"concentracion" bson:"concentracion"`
	UnidadMedida  string  `gorm:"column:unidad_medida" json:"unidad_medida" bson:"unidad_medida"`
}
