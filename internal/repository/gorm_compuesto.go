package repository

import (
	"context"
	"fmt"

	"github.com/Rosvend/REST-Api-NoSQL/internal/models"
	"gorm.io/gorm"
)

type gormCompuestoRepository struct {
	db *gorm.DB
}

func NewGormCompuestoRepository(db *gorm.DB) CompuestoRepository {
	return &gormCompuestoRepository{db: db}
}

func (r *gormCompuestoRepository) List(ctx context.Context) ([]models.Compuesto, error) {
	out := []models.Compuesto{}
	if err := r.db.WithContext(ctx).Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to list compuestos: %w", err)
	}
	return out, nil
}

func (r *gormCompuestoRepository) Get(ctx context.Context, id string) (models.Compuesto, error) {
	key, ok := parseUUID(id)
	if !ok {
		return models.Compuesto{}, ErrNotFound
	}
	var c models.Compuesto
	if err := r.db.WithContext(ctx).First(&c, "id = ?", key).Error; err != nil {
		return models.Compuesto{}, mapErr(err)
	}
	return c, nil
}

func (r *gormCompuestoRepository) Create(ctx context.Context, nombre string) (models.Compuesto, error) {
	c := models.Compuesto{Nombre: nombre}
	if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
		return models.Compuesto{}, fmt.Errorf("failed to insert compuesto: %w", err)
	}
	return r.Get(ctx, c.ID)
}

// Update re-reads the row instead of trusting RowsAffected, which MySQL reports as 0 for unchanged values.
func (r *gormCompuestoRepository) Update(ctx context.Context, id, nombre string) (models.Compuesto, error) {
	key, ok := parseUUID(id)
	if !ok {
		return models.Compuesto{}, ErrNotFound
	}
	err := r.db.WithContext(ctx).Model(&models.Compuesto{}).
		Where("id = ?", key).
		Update("nombre", nombre).Error
	if err != nil {
		return models.Compuesto{}, fmt.Errorf("failed to update compuesto: %w", err)
	}
	return r.Get(ctx, key)
}

func (r *gormCompuestoRepository) Delete(ctx context.Context, id string) (bool, error) {
	key, ok := parseUUID(id)
	if !ok {
		return false, nil
	}
	res := r.db.WithContext(ctx).Delete(&models.Compuesto{}, "id = ?", key)
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete compuesto: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *gormCompuestoRepository) ListMedicamentos(ctx context.Context, compuestoID string) ([]models.MedicamentoDeCompuesto, error) {
	out := []models.MedicamentoDeCompuesto{}
	key, ok := parseUUID(compuestoID)
	if !ok {
		return out, nil
	}
	err := r.db.WithContext(ctx).
		Table("compuestos_por_medicamento AS cpm").
		Select("m.id AS id, m.nombre AS nombre, m.fabricante AS fabricante, cpm.concentracion AS concentracion, cpm.unidad_medida AS unidad_medida").
		Joins("JOIN medicamentos m ON m.id = cpm.medicamento_id").
		Where("cpm.compuesto_id = ?", key).
		Scan(&out).Error
	if err != nil {
		return nil, fmt.Errorf("failed to join medicamentos of compuesto: %w", err)
	}
	return out, nil
}
