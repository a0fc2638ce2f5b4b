package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/Rosvend/REST-Api-NoSQL/internal/logging"
	"github.com/Rosvend/REST-Api-NoSQL/internal/metrics"
	"github.com/Rosvend/REST-Api-NoSQL/internal/models"
	"github.com/Rosvend/REST-Api-NoSQL/internal/repository"
	"github.com/Rosvend/REST-Api-NoSQL/internal/types"
)

const medicamentoErrorType = "medicamento"

// MedicamentoService holds the medicamento rules, the cascade on delete and
// the assembly of new associations
type MedicamentoService struct {
	medicamentos repository.MedicamentoRepository
	compuestos   repository.CompuestoRepository
	asociaciones repository.CompuestoMedicamentoRepository
	log          *logging.Logger
}

func NewMedicamentoService(
	medicamentos repository.MedicamentoRepository,
	compuestos repository.CompuestoRepository,
	asociaciones repository.CompuestoMedicamentoRepository,
	log *logging.Logger,
) *MedicamentoService {
	return &MedicamentoService{
		medicamentos: medicamentos,
		compuestos:   compuestos,
		asociaciones: asociaciones,
		log:          log.With("service", "medicamentos"),
	}
}

func medicamentoNotFound(id string) string {
	return fmt.Sprintf("Medicamento with ID %s not found", id)
}

func validateMedicamento(nombre, fabricante string) error {
	if strings.TrimSpace(nombre) == "" {
		return types.NewValidationError("Medicamento name cannot be empty", medicamentoErrorType)
	}
	if strings.TrimSpace(fabricante) == "" {
		return types.NewValidationError("Fabricante cannot be empty", medicamentoErrorType)
	}
	return nil
}

func (s *MedicamentoService) List(ctx context.Context) ([]models.Medicamento, error) {
	return s.medicamentos.List(ctx)
}

func (s *MedicamentoService) Get(ctx context.Context, id string) (models.Medicamento, error) {
	m, err := s.medicamentos.Get(ctx, id)
	if err != nil {
		return models.Medicamento{}, notFound(err, medicamentoNotFound(id), medicamentoErrorType)
	}
	return m, nil
}

func (s *MedicamentoService) Create(ctx context.Context, nombre, fabricante string) (models.Medicamento, error) {
	if err := validateMedicamento(nombre, fabricante); err != nil {
		return models.Medicamento{}, err
	}
	return s.medicamentos.Create(ctx, nombre, fabricante)
}

func (s *MedicamentoService) Update(ctx context.Context, id, nombre, fabricante string) (models.Medicamento, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return models.Medicamento{}, err
	}
	if err := validateMedicamento(nombre, fabricante); err != nil {
		return models.Medicamento{}, err
	}
	m, err := s.medicamentos.Update(ctx, id, nombre, fabricante)
	if err != nil {
		return models.Medicamento{}, notFound(err, medicamentoNotFound(id), medicamentoErrorType)
	}
	return m, nil
}

// Delete removes every association of the medicamento, then the medicamento
func (s *MedicamentoService) Delete(ctx context.Context, id string) (DeleteResult, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return DeleteResult{}, err
	}
	return cascadeDelete(ctx, medicamentoErrorType, id, s.asociaciones.DeleteByMedicamentoID, s.medicamentos.Delete, s.log)
}

// ListCompuestos returns the compuestos of the medicamento with their concentrations
func (s *MedicamentoService) ListCompuestos(ctx context.Context, id string) ([]models.CompuestoDeMedicamento, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	return s.medicamentos.ListCompuestos(ctx, id)
}

// AddCompuesto links a compuesto to the medicamento. Checks run in order:
// medicamento exists, compuesto exists, concentracion is positive, unidad is set.
// Nothing holds the two entities between the checks and the insert.
func (s *MedicamentoService) AddCompuesto(ctx context.Context, medicamentoID, compuestoID string, concentracion float64, unidad string) (models.CompuestoMedicamento, error) {
	if _, err := s.Get(ctx, medicamentoID); err != nil {
		return models.CompuestoMedicamento{}, err
	}
	if _, err := s.compuestos.Get(ctx, compuestoID); err != nil {
		return models.CompuestoMedicamento{}, notFound(err,
			fmt.Sprintf("Compuesto with ID %s not found", compuestoID), medicamentoErrorType)
	}
	if !(concentracion > 0) {
		return models.CompuestoMedicamento{}, types.NewValidationError("Concentration must be greater than zero", medicamentoErrorType)
	}
	if strings.TrimSpace(unidad) == "" {
		return models.CompuestoMedicamento{}, types.NewValidationError("Unit of measure cannot be empty", medicamentoErrorType)
	}

	a, err := s.asociaciones.Create(ctx, medicamentoID, compuestoID, concentracion, unidad)
	if err != nil {
		return models.CompuestoMedicamento{}, fmt.Errorf("failed to add compuesto %s to medicamento %s: %w", compuestoID, medicamentoID, err)
	}
	metrics.AssociationsCreated.Inc()
	return a, nil
}
