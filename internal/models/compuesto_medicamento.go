package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompuestoMedicamento links a compuesto to a medicamento at a concentration.
// Pairs are not unique: the same compuesto may be added to a medicamento twice.
type CompuestoMedicamento struct {
	ID            string  `gorm:"primaryKey;size:36" json:"_id"`
	MedicamentoID string  `gorm:"size:36;not null;index" json:"medicamento_id"`
	CompuestoID   string  `gorm:"size:36;not null;index" json:"compuesto_id"`
	Concentracion float64 `gorm:"not null" json:"concentracion"`
	UnidadMedida  string  `gorm:"size:64;not null" json:"unidad_medida"`
}

// TableName overrides the table name for CompuestoMedicamento
func (CompuestoMedicamento) TableName() string {
	return "compuestos_por_medicamento"
}

// BeforeCreate assigns a uuid when the row has no id yet
func (cm *CompuestoMedicamento) BeforeCreate(tx *gorm.DB) error {
	if cm.ID == "" {
		cm.ID = uuid.NewString()
	}
	return nil
}

// All returns every model the SQL backends migrate
func All() []interface{} {
	return []interface{}{
		&Compuesto{},
		&Medicamento{},
		&CompuestoMedicamento{},
	}
}
