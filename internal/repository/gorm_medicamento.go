package repository

import (
	"context"
	"fmt"

	"github.com/Rosvend/REST-Api-NoSQL/internal/models"
	"gorm.io/gorm"
)

type gormMedicamentoRepository struct {
	db *gorm.DB
}

func NewGormMedicamentoRepository(db *gorm.DB) MedicamentoRepository {
	return &gormMedicamentoRepository{db: db}
}

func (r *gormMedicamentoRepository) List(ctx context.Context) ([]models.Medicamento, error) {
	out := []models.Medicamento{}
	if err := r.db.WithContext(ctx).Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to list medicamentos: %w", err)
	}
	return out, nil
}

func (r *gormMedicamentoRepository) Get(ctx context.Context, id string) (models.Medicamento, error) {
	key, ok := parseUUID(id)
	if !ok {
		return models.Medicamento{}, ErrNotFound
	}
	var m models.Medicamento
	if err := r.db.WithContext(ctx).First(&m, "id = ?", key).Error; err != nil {
		return models.Medicamento{}, mapErr(err)
	}
	return m, nil
}

func (r *gormMedicamentoRepository) Create(ctx context.Context, nombre, fabricante string) (models.Medicamento, error) {
	m := models.Medicamento{Nombre: nombre, Fabricante: fabricante}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return models.Medicamento{}, fmt.Errorf("failed to insert medicamento: %w", err)
	}
	return r.Get(ctx, m.ID)
}

func (r *gormMedicamentoRepository) Update(ctx context.Context, id, nombre, fabricante string) (models.Medicamento, error) {
	key, ok := parseUUID(id)
	if !ok {
		return models.Medicamento{}, ErrNotFound
	}
	err := r.db.WithContext(ctx).Model(&models.Medicamento{}).
		Where("id = ?", key).
		Updates(map[string]interface{}{"nombre": nombre, "fabricante": fabricante}).Error
	if err != nil {
		return models.Medicamento{}, fmt.Errorf("failed to update medicamento: %w", err)
	}
	return r.Get(ctx, key)
}

func (r *gormMedicamentoRepository) Delete(ctx context.Context, id string) (bool, error) {
	key, ok := parseUUID(id)
	if !ok {
		return false, nil
	}
	res := r.db.WithContext(ctx).Delete(&models.Medicamento{}, "id = ?", key)
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete medicamento: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *gormMedicamentoRepository) ListCompuestos(ctx context.Context, medicamentoID string) ([]models.CompuestoDeMedicamento, error) {
	out := []models.CompuestoDeMedicamento{}
	key, ok := parseUUID(medicamentoID)
	if !ok {
		return out, nil
	}
	err := r.db.WithContext(ctx).
		Table("compuestos_por_medicamento AS cpm").
		Select("c.id AS id, c.nombre AS nombre, cpm.concentracion AS concentracion, cpm.unidad_medida AS unidad_medida").
		Joins("JOIN compuestos c ON c.id = cpm.compuesto_id").
		Where("cpm.medicamento_id = ?", key).
		Scan(&out).Error
	if err != nil {
		return nil, fmt.Errorf("failed to join compuestos of medicamento: %w", err)
	}
	return out, nil
}
