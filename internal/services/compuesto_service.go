package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/Rosvend/REST-Api-NoSQL/internal/logging"
	"github.com/Rosvend/REST-Api-NoSQL/internal/models"
	"github.com/Rosvend/REST-Api-NoSQL/internal/repository"
	"github.com/Rosvend/REST-Api-NoSQL/internal/types"
)

const compuestoErrorType = "compuesto"

// CompuestoService holds the compuesto rules and the cascade on delete
type CompuestoService struct {
	compuestos   repository.CompuestoRepository
	asociaciones repository.CompuestoMedicamentoRepository
	log          *logging.Logger
}

func NewCompuestoService(
	compuestos repository.CompuestoRepository,
	asociaciones repository.CompuestoMedicamentoRepository,
	log *logging.Logger,
) *CompuestoService {
	return &CompuestoService{
		compuestos:   compuestos,
		asociaciones: asociaciones,
		log:          log.With("service", "compuestos"),
	}
}

func compuestoNotFound(id string) string {
	return fmt.Sprintf("Compuesto con ID %s no encontrado", id)
}

func validateCompuesto(nombre string) error {
	if strings.TrimSpace(nombre) == "" {
		return types.NewValidationError("El nombre del compuesto no puede estar vacío", compuestoErrorType)
	}
	return nil
}

func (s *CompuestoService) List(ctx context.Context) ([]models.Compuesto, error) {
	return s.compuestos.List(ctx)
}

func (s *CompuestoService) Get(ctx context.Context, id string) (models.Compuesto, error) {
	c, err := s.compuestos.Get(ctx, id)
	if err != nil {
		return models.Compuesto{}, notFound(err, compuestoNotFound(id), compuestoErrorType)
	}
	return c, nil
}

func (s *CompuestoService) Create(ctx context.Context, nombre string) (models.Compuesto, error) {
	if err := validateCompuesto(nombre); err != nil {
		return models.Compuesto{}, err
	}
	return s.compuestos.Create(ctx, nombre)
}

// Update reports a missing compuesto before it looks at the new values
func (s *CompuestoService) Update(ctx context.Context, id, nombre string) (models.Compuesto, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return models.Compuesto{}, err
	}
	if err := validateCompuesto(nombre); err != nil {
		return models.Compuesto{}, err
	}
	c, err := s.compuestos.Update(ctx, id, nombre)
	if err != nil {
		return models.Compuesto{}, notFound(err, compuestoNotFound(id), compuestoErrorType)
	}
	return c, nil
}

// Delete removes every association of the compuesto, then the compuesto
func (s *CompuestoService) Delete(ctx context.Context, id string) (DeleteResult, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return DeleteResult{}, err
	}
	return cascadeDelete(ctx, compuestoErrorType, id, s.asociaciones.DeleteByCompuestoID, s.compuestos.Delete, s.log)
}

// ListMedicamentos returns the medicamentos that contain the compuesto
func (s *CompuestoService) ListMedicamentos(ctx context.Context, id string) ([]models.MedicamentoDeCompuesto, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	return s.compuestos.ListMedicamentos(ctx, id)
}
