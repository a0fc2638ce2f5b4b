package repository

import (
	"context"
	"errors"

	"github.com/Rosvend/REST-Api-NoSQL/internal/models"
)

var ErrNotFound = errors.New("not found")

type CompuestoRepository interface {
	List(ctx context.Context) ([]models.Compuesto, error)
	Get(ctx context.Context, id string) (models.Compuesto, error)
	Create(ctx context.Context, nombre string) (models.Compuesto, error)
	Update(ctx context.Context, id, nombre string) (models.Compuesto, error)
	Delete(ctx context.Context, id string) (bool, error)

	// ListMedicamentos joins the associations of a compuesto with their medicamentos.
	// Associations whose medicamento is gone yield no row.
	ListMedicamentos(ctx context.Context, compuestoID string) ([]models.MedicamentoDeCompuesto, error)
}

type MedicamentoRepository interface {
	List(ctx context.Context) ([]models.Medicamento, error)
	Get(ctx context.Context, id string) (models.Medicamento, error)
	Create(ctx context.Context, nombre, fabricante string) (models.Medicamento, error)
	Update(ctx context.Context, id, nombre, fabricante string) (models.Medicamento, error)
	Delete(ctx context.Context, id string) (bool, error)

	// ListCompuestos joins the associations of a medicamento with their compuestos.
	ListCompuestos(ctx context.Context, medicamentoID string) ([]models.CompuestoDeMedicamento, error)
}

// CompuestoMedicamentoRepository is the only writer of the association collection.
type CompuestoMedicamentoRepository interface {
	List(ctx context.Context) ([]models.CompuestoMedicamento, error)
	Get(ctx context.Context, id string) (models.CompuestoMedicamento, error)
	Create(ctx context.Context, medicamentoID, compuestoID string, concentracion float64, unidadMedida string) (models.CompuestoMedicamento, error)
	DeleteByMedicamentoID(ctx context.Context, medicamentoID string) (int64, error)
	DeleteByCompuestoID(ctx context.Context, compuestoID string) (int64, error)

	// DeleteOrphans removes associations whose medicamento or compuesto no longer exists.
	DeleteOrphans(ctx context.Context) (int64, error)
}

// Fixtures is a set of records with caller-chosen ids, loaded by the import tool.
type Fixtures struct {
	Compuestos   []models.Compuesto
	Medicamentos []models.Medicamento
	Asociaciones []models.CompuestoMedicamento
}

type FixtureLoader interface {
	// Clear empties the three collections.
	Clear(ctx context.Context) error
	Load(ctx context.Context, f Fixtures) error
	// Replace empties the collections and loads f, leaving them as they were when f cannot be converted.
	Replace(ctx context.Context, f Fixtures) error
}

// Store bundles the repositories of one backend.
type Store struct {
	Backend      string
	Compuestos   CompuestoRepository
	Medicamentos MedicamentoRepository
	Asociaciones CompuestoMedicamentoRepository
	Fixtures     FixtureLoader

	ping func(ctx context.Context) error
}

// Ping checks that the backing database answers.
func (s *Store) Ping(ctx context.Context) error {
	if s.ping == nil {
		return nil
	}
	return s.ping(ctx)
}
