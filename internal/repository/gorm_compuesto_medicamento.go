package repository

import (
	"context"
	"fmt"

	"github.com/Rosvend/REST-Api-NoSQL/internal/models"
	"gorm.io/gorm"
)

type gormCompuestoMedicamentoRepository struct {
	db *gorm.DB
}

func NewGormCompuestoMedicamentoRepository(db *gorm.DB) CompuestoMedicamentoRepository {
	return &gormCompuestoMedicamentoRepository{db: db}
}

func (r *gormCompuestoMedicamentoRepository) List(ctx context.Context) ([]models.CompuestoMedicamento, error) {
	out := []models.CompuestoMedicamento{}
	if err := r.db.WithContext(ctx).Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to list associations: %w", err)
	}
	return out, nil
}

func (r *gormCompuestoMedicamentoRepository) Get(ctx context.Context, id string) (models.CompuestoMedicamento, error) {
	key, ok := parseUUID(id)
	if !ok {
		return models.CompuestoMedicamento{}, ErrNotFound
	}
	var cm models.CompuestoMedicamento
	if err := r.db.WithContext(ctx).First(&cm, "id = ?", key).Error; err != nil {
		return models.CompuestoMedicamento{}, mapErr(err)
	}
	return cm, nil
}

func (r *gormCompuestoMedicamentoRepository) Create(ctx context.Context, medicamentoID, compuestoID string, concentracion float64, unidadMedida string) (models.CompuestoMedicamento, error) {
	medKey, ok := parseUUID(medicamentoID)
	if !ok {
		return models.CompuestoMedicamento{}, fmt.Errorf("medicamento_id %q is not a uuid", medicamentoID)
	}
	compKey, ok := parseUUID(compuestoID)
	if !ok {
		return models.CompuestoMedicamento{}, fmt.Errorf("compuesto_id %q is not a uuid", compuestoID)
	}
	cm := models.CompuestoMedicamento{
		MedicamentoID: medKey,
		CompuestoID:   compKey,
		Concentracion: concentracion,
		UnidadMedida:  unidadMedida,
	}
	if err := r.db.WithContext(ctx).Create(&cm).Error; err != nil {
		return models.CompuestoMedicamento{}, fmt.Errorf("failed to insert association: %w", err)
	}
	return r.Get(ctx, cm.ID)
}

func (r *gormCompuestoMedicamentoRepository) DeleteByMedicamentoID(ctx context.Context, medicamentoID string) (int64, error) {
	return r.deleteBy(ctx, "medicamento_id", medicamentoID)
}

func (r *gormCompuestoMedicamentoRepository) DeleteByCompuestoID(ctx context.Context, compuestoID string) (int64, error) {
	return r.deleteBy(ctx, "compuesto_id", compuestoID)
}

func (r *gormCompuestoMedicamentoRepository) deleteBy(ctx context.Context, column, id string) (int64, error) {
	key, ok := parseUUID(id)
	if !ok {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Delete(&models.CompuestoMedicamento{}, column+" = ?", key)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete associations by %s: %w", column, res.Error)
	}
	return res.RowsAffected, nil
}

func (r *gormCompuestoMedicamentoRepository) DeleteOrphans(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).Exec(`DELETE FROM compuestos_por_medicamento
		WHERE medicamento_id NOT IN (SELECT id FROM medicamentos)
		OR compuesto_id NOT IN (SELECT id FROM compuestos)`)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete orphaned associations: %w", res.Error)
	}
	return res.RowsAffected, nil
}
