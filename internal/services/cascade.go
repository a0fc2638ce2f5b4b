package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rosvend/REST-Api-NoSQL/internal/logging"
	"github.com/Rosvend/REST-Api-NoSQL/internal/metrics"
	"github.com/Rosvend/REST-Api-NoSQL/internal/repository"
	"github.com/Rosvend/REST-Api-NoSQL/internal/types"
)

// DeleteResult reports an entity delete and how many associations went with it
type DeleteResult struct {
	Deleted               bool   `json:"deleted"`
	ID                    string `json:"id"`
	RelatedRecordsDeleted int64  `json:"related_records_deleted"`
}

// cascadeDelete removes the associations of an entity and then the entity itself.
// The two steps are not atomic: when the entity delete fails the associations stay deleted.
func cascadeDelete(
	ctx context.Context,
	entity, id string,
	deleteAssociations func(context.Context, string) (int64, error),
	deleteEntity func(context.Context, string) (bool, error),
	log *logging.Logger,
) (DeleteResult, error) {
	related, err := deleteAssociations(ctx, id)
	if err != nil {
		return DeleteResult{}, fmt.Errorf("failed to delete associations of %s %s: %w", entity, id, err)
	}
	metrics.CascadeDeletedAssociations.WithLabelValues(entity).Add(float64(related))

	deleted, err := deleteEntity(ctx, id)
	if err != nil {
		log.Error("Entity delete failed after cascade",
			"entity", entity, "id", id, "related_records_deleted", related, "error", err)
		return DeleteResult{}, fmt.Errorf("failed to delete %s %s: %w", entity, id, err)
	}

	log.Info("Deleted entity", "entity", entity, "id", id, "related_records_deleted", related)

	return DeleteResult{
		Deleted:               deleted,
		ID:                    id,
		RelatedRecordsDeleted: related,
	}, nil
}

// SweepOrphans removes associations left dangling by deletes that raced with an insert
func SweepOrphans(ctx context.Context, asociaciones repository.CompuestoMedicamentoRepository, log *logging.Logger) (int64, error) {
	n, err := asociaciones.DeleteOrphans(ctx)
	if err != nil {
		return 0, fmt.Errorf("orphan sweep failed: %w", err)
	}
	metrics.OrphansSwept.Add(float64(n))
	if n > 0 {
		log.Warn("Removed orphaned associations", "count", n)
	}
	return n, nil
}

// notFound converts a repository miss into the boundary error and wraps anything else
func notFound(err error, message, errorType string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return types.NewNotFoundError(message, errorType)
	}
	return err
}
