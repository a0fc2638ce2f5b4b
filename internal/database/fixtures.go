package database

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/Rosvend/REST-Api-NoSQL/internal/logging"
	"github.com/Rosvend/REST-Api-NoSQL/internal/models"
	"github.com/Rosvend/REST-Api-NoSQL/internal/repository"
	"github.com/Rosvend/REST-Api-NoSQL/internal/types"
	"github.com/google/uuid"
)

// Fixture file names inside a fixtures directory
const (
	CompuestosFile   = "compuestos.json"
	MedicamentosFile = "medicamentos.json"
	AsociacionesFile = "compuestos_por_medicamento.json"
)

// extendedID accepts a plain string id or MongoDB extended JSON {"$oid": "..."}
type extendedID string

func (e *extendedID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var wrapped struct {
			OID string `json:"$oid"`
		}
		if err := json.Unmarshal(data, &wrapped); err != nil {
			return err
		}
		*e = extendedID(wrapped.OID)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("id must be a string or {\"$oid\": ...}: %w", err)
	}
	*e = extendedID(s)
	return nil
}

type fixtureRecord struct {
	ID            extendedID        `json:"_id"`
	Nombre        string            `json:"nombre"`
	Fabricante    string            `json:"fabricante"`
	MedicamentoID extendedID        `json:"medicamento_id"`
	CompuestoID   extendedID        `json:"compuesto_id"`
	Concentracion types.FlexFloat64 `json:"concentracion"`
	UnidadMedida  string            `json:"unidad_medida"`
	Unidad        string            `json:"unidad"` // older exports used this key
}

func readFixtureFile(fsys fs.FS, dir, name string) ([]fixtureRecord, error) {
	raw, err := fs.ReadFile(fsys, path.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	records, err := types.ParseFlexList[fixtureRecord](raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return records, nil
}

// ReadFixtures loads the three fixture files of dir, each a single object or an array
func ReadFixtures(fsys fs.FS, dir string) (repository.Fixtures, error) {
	var f repository.Fixtures

	compuestos, err := readFixtureFile(fsys, dir, CompuestosFile)
	if err != nil {
		return f, err
	}
	for _, r := range compuestos {
		f.Compuestos = append(f.Compuestos, models.Compuesto{ID: string(r.ID), Nombre: r.Nombre})
	}

	medicamentos, err := readFixtureFile(fsys, dir, MedicamentosFile)
	if err != nil {
		return f, err
	}
	for _, r := range medicamentos {
		f.Medicamentos = append(f.Medicamentos, models.Medicamento{
			ID:         string(r.ID),
			Nombre:     r.Nombre,
			Fabricante: r.Fabricante,
		})
	}

	asociaciones, err := readFixtureFile(fsys, dir, AsociacionesFile)
	if err != nil {
		return f, err
	}
	for _, r := range asociaciones {
		unidad := r.UnidadMedida
		if unidad == "" {
			unidad = r.Unidad
		}
		f.Asociaciones = append(f.Asociaciones, models.CompuestoMedicamento{
			ID:            string(r.ID),
			MedicamentoID: string(r.MedicamentoID),
			CompuestoID:   string(r.CompuestoID),
			Concentracion: r.Concentracion.Float64(),
			UnidadMedida:  unidad,
		})
	}

	if err := ValidateFixtures(f); err != nil {
		return repository.Fixtures{}, err
	}
	return f, nil
}

// ValidateFixtures applies the record rules the services enforce on create.
// Ids must be unique within a file when given.
func ValidateFixtures(f repository.Fixtures) error {
	invalid := func(file, id, reason string) error {
		return fmt.Errorf("%s: record %q: %s", file, id, reason)
	}
	blank := func(s string) bool { return strings.TrimSpace(s) == "" }

	seen := map[string]bool{}
	for _, c := range f.Compuestos {
		if blank(c.Nombre) {
			return invalid(CompuestosFile, c.ID, "nombre is empty")
		}
		if c.ID != "" && seen[c.ID] {
			return invalid(CompuestosFile, c.ID, "duplicate id")
		}
		seen[c.ID] = true
	}

	seen = map[string]bool{}
	for _, m := range f.Medicamentos {
		if blank(m.Nombre) {
			return invalid(MedicamentosFile, m.ID, "nombre is empty")
		}
		if blank(m.Fabricante) {
			return invalid(MedicamentosFile, m.ID, "fabricante is empty")
		}
		if m.ID != "" && seen[m.ID] {
			return invalid(MedicamentosFile, m.ID, "duplicate id")
		}
		seen[m.ID] = true
	}

	seen = map[string]bool{}
	for _, a := range f.Asociaciones {
		if blank(a.MedicamentoID) || blank(a.CompuestoID) {
			return invalid(AsociacionesFile, a.ID, "medicamento_id and compuesto_id are required")
		}
		if !(a.Concentracion > 0) {
			return invalid(AsociacionesFile, a.ID, "concentracion must be greater than zero")
		}
		if blank(a.UnidadMedida) {
			return invalid(AsociacionesFile, a.ID, "unidad_medida is empty")
		}
		if a.ID != "" && seen[a.ID] {
			return invalid(AsociacionesFile, a.ID, "duplicate id")
		}
		seen[a.ID] = true
	}
	return nil
}

// sqlID maps a fixture id onto the uuid keys of the SQL backends.
// The mapping is name based so references between files stay consistent.
func sqlID(id string) string {
	if id == "" {
		return ""
	}
	if u, err := uuid.Parse(id); err == nil {
		return u.String()
	}
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(id)).String()
}

// ForBackend rewrites fixture ids for the given backend. MongoDB keeps them as ObjectIDs.
func ForBackend(f repository.Fixtures, backend string) repository.Fixtures {
	if backend == "mongo" {
		return f
	}
	out := repository.Fixtures{
		Compuestos:   make([]models.Compuesto, len(f.Compuestos)),
		Medicamentos: make([]models.Medicamento, len(f.Medicamentos)),
		Asociaciones: make([]models.CompuestoMedicamento, len(f.Asociaciones)),
	}
	for i, c := range f.Compuestos {
		c.ID = sqlID(c.ID)
		out.Compuestos[i] = c
	}
	for i, m := range f.Medicamentos {
		m.ID = sqlID(m.ID)
		out.Medicamentos[i] = m
	}
	for i, a := range f.Asociaciones {
		a.ID = sqlID(a.ID)
		a.MedicamentoID = sqlID(a.MedicamentoID)
		a.CompuestoID = sqlID(a.CompuestoID)
		out.Asociaciones[i] = a
	}
	return out
}

// ImportFixtures loads fixtures into the store, replacing what is there unless keep is set.
// Invalid fixtures are rejected before anything is cleared.
func ImportFixtures(ctx context.Context, store *repository.Store, f repository.Fixtures, keep bool, log *logging.Logger) error {
	if err := ValidateFixtures(f); err != nil {
		return err
	}

	mapped := ForBackend(f, store.Backend)
	load := store.Fixtures.Replace
	if keep {
		load = store.Fixtures.Load
	}
	if err := load(ctx, mapped); err != nil {
		return err
	}

	log.Info("Imported fixtures",
		"backend", store.Backend,
		"compuestos", len(f.Compuestos),
		"medicamentos", len(f.Medicamentos),
		"compuestos_por_medicamento", len(f.Asociaciones),
	)
	return nil
}
