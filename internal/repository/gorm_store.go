package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rosvend/REST-Api-NoSQL/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewGormStore builds the repositories over a SQL database.
// Ids are uuid strings assigned by the models' BeforeCreate hooks.
func NewGormStore(db *gorm.DB) *Store {
	return &Store{
		Backend:      db.Dialector.Name(),
		Compuestos:   NewGormCompuestoRepository(db),
		Medicamentos: NewGormMedicamentoRepository(db),
		Asociaciones: NewGormCompuestoMedicamentoRepository(db),
		Fixtures:     &gormFixtureLoader{db: db},
		ping: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
}

// parseUUID reports ok=false for anything that is not a uuid.
// No row can carry such an id, so callers treat it as not found.
func parseUUID(id string) (string, bool) {
	u, err := uuid.Parse(id)
	if err != nil {
		return "", false
	}
	return u.String(), true
}

func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

type gormFixtureLoader struct {
	db *gorm.DB
}

func (l *gormFixtureLoader) Clear(ctx context.Context) error {
	return clearTables(l.db.WithContext(ctx))
}

func (l *gormFixtureLoader) Load(ctx context.Context, f Fixtures) error {
	return insertFixtures(l.db.WithContext(ctx), f)
}

// Replace clears and loads in one transaction
func (l *gormFixtureLoader) Replace(ctx context.Context, f Fixtures) error {
	return l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := clearTables(tx); err != nil {
			return err
		}
		return insertFixtures(tx, f)
	})
}

func clearTables(db *gorm.DB) error {
	db = db.Session(&gorm.Session{AllowGlobalUpdate: true})
	for _, m := range []interface{}{&models.CompuestoMedicamento{}, &models.Medicamento{}, &models.Compuesto{}} {
		if err := db.Delete(m).Error; err != nil {
			return fmt.Errorf("failed to clear %T: %w", m, err)
		}
	}
	return nil
}

func insertFixtures(db *gorm.DB, f Fixtures) error {
	if len(f.Compuestos) > 0 {
		if err := db.Create(&f.Compuestos).Error; err != nil {
			return fmt.Errorf("failed to insert compuestos: %w", err)
		}
	}
	if len(f.Medicamentos) > 0 {
		if err := db.Create(&f.Medicamentos).Error; err != nil {
			return fmt.Errorf("failed to insert medicamentos: %w", err)
		}
	}
	if len(f.Asociaciones) > 0 {
		if err := db.Create(&f.Asociaciones).Error; err != nil {
			return fmt.Errorf("failed to insert associations: %w", err)
		}
	}
	return nil
}
