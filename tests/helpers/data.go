// data.go
//
// REST data service for medicamentos, compuestos and the compounds each medicamento contains
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of REST-Api-NoSQL.
// REST-Api-NoSQL is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// REST-Api-NoSQL is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with REST-Api-NoSQL.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package helpers

import (
	"context"
	"testing"

	"github.com/Rosvend/REST-Api-NoSQL/internal/models"
	"github.com/Rosvend/REST-Api-NoSQL/internal/repository"
)

// CreateTestCompuesto inserts a compuesto through the store
func CreateTestCompuesto(t *testing.T, store *repository.Store, nombre string) models.Compuesto {
	t.Helper()
	c, err := store.Compuestos.Create(context.Background(), nombre)
	if err != nil {
		t.Fatalf("Failed to create compuesto %s: %v", nombre, err)
	}
	return c
}

// CreateTestMedicamento inserts a medicamento through the store
func CreateTestMedicamento(t *testing.T, store *repository.Store, nombre, fabricante string) models.Medicamento {
	t.Helper()
	m, err := store.Medicamentos.Create(context.Background(), nombre, fabricante)
	if err != nil {
		t.Fatalf("Failed to create medicamento %s: %v", nombre, err)
	}
	return m
}

// CreateTestAsociacion links a compuesto to a medicamento
func CreateTestAsociacion(t *testing.T, store *repository.Store, medicamentoID, compuestoID string, concentracion float64, unidad string) models.CompuestoMedicamento {
	t.Helper()
	a, err := store.Asociaciones.Create(context.Background(), medicamentoID, compuestoID, concentracion, unidad)
	if err != nil {
		t.Fatalf("Failed to create association: %v", err)
	}
	return a
}

// Paracetamol is the seed used across tests: one compuesto in two medicamentos
type Paracetamol struct {
	Compuesto models.Compuesto
	Dolex     models.Medicamento
	Tylenol   models.Medicamento
}

// SeedParacetamol creates Paracetamol in Dolex (500 mg) and Tylenol (650 mg)
func SeedParacetamol(t *testing.T, store *repository.Store) Paracetamol {
	t.Helper()
	p := Paracetamol{
		Compuesto: CreateTestCompuesto(t, store, "Paracetamol"),
		Dolex:     CreateTestMedicamento(t, store, "Dolex", "GSK"),
		Tylenol:   CreateTestMedicamento(t, store, "Tylenol", "Johnson & Johnson"),
	}
	CreateTestAsociacion(t, store, p.Dolex.ID, p.Compuesto.ID, 500, "mg")
	CreateTestAsociacion(t, store, p.Tylenol.ID, p.Compuesto.ID, 650, "mg")
	return p
}
