package services_test

import (
	"context"

	"github.com/Rosvend/REST-Api-NoSQL/internal/models"
	"github.com/stretchr/testify/mock"
)

type mockCompuestoRepository struct {
	mock.Mock
}

func (m *mockCompuestoRepository) List(ctx context.Context) ([]models.Compuesto, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Compuesto), args.Error(1)
}

func (m *mockCompuestoRepository) Get(ctx context.Context, id string) (models.Compuesto, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Compuesto), args.Error(1)
}

func (m *mockCompuestoRepository) Create(ctx context.Context, nombre string) (models.Compuesto, error) {
	args := m.Called(ctx, nombre)
	return args.Get(0).(models.Compuesto), args.Error(1)
}

func (m *mockCompuestoRepository) Update(ctx context.Context, id, nombre string) (models.Compuesto, error) {
	args := m.Called(ctx, id, nombre)
	return args.Get(0).(models.Compuesto), args.Error(1)
}

func (m *mockCompuestoRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockCompuestoRepository) ListMedicamentos(ctx context.Context, compuestoID string) ([]models.MedicamentoDeCompuesto, error) {
	args := m.Called(ctx, compuestoID)
	return args.Get(0).([]models.MedicamentoDeCompuesto), args.Error(1)
}

type mockAsociacionRepository struct {
	mock.Mock
}

func (m *mockAsociacionRepository) List(ctx context.Context) ([]models.CompuestoMedicamento, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.CompuestoMedicamento), args.Error(1)
}

func (m *mockAsociacionRepository) Get(ctx context.Context, id string) (models.CompuestoMedicamento, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.CompuestoMedicamento), args.Error(1)
}

func (m *mockAsociacionRepository) Create(ctx context.Context, medicamentoID, compuestoID string, concentracion float64, unidadMedida string) (models.CompuestoMedicamento, error) {
	args := m.Called(ctx, medicamentoID, compuestoID, concentracion, unidadMedida)
	return args.Get(0).(models.CompuestoMedicamento), args.Error(1)
}

func (m *mockAsociacionRepository) DeleteByMedicamentoID(ctx context.Context, medicamentoID string) (int64, error) {
	args := m.Called(ctx, medicamentoID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAsociacionRepository) DeleteByCompuestoID(ctx context.Context, compuestoID string) (int64, error) {
	args := m.Called(ctx, compuestoID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAsociacionRepository) DeleteOrphans(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
