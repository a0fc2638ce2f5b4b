// e2e_test.go
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

package e2e_test

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/Rosvend/REST-Api-NoSQL/internal/database"
	"github.com/Rosvend/REST-Api-NoSQL/internal/handlers"
	"github.com/Rosvend/REST-Api-NoSQL/internal/logging"
	"github.com/Rosvend/REST-Api-NoSQL/internal/models"
	"github.com/Rosvend/REST-Api-NoSQL/internal/services"
	"github.com/Rosvend/REST-Api-NoSQL/internal/utils"
	"github.com/Rosvend/REST-Api-NoSQL/tests/helpers"
	"github.com/go-resty/resty/v2"
)

// TestE2EWithFullStack tests the entire service stack
func TestE2EWithFullStack(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping E2E test in short mode")
	}

	tc, err := helpers.CreateAllTestContainers(t)
	if err != nil {
		t.Fatalf("Failed to start test containers: %v", err)
	}
	defer tc.Terminate(t)

	client := resty.New().
		SetBaseURL(tc.BaseURL).
		SetTimeout(10 * time.Second).
		SetHeader("Content-Type", "application/json")

	// Run E2E tests
	t.Run("HealthCheck", func(t *testing.T) {
		testHealthCheck(t, tc, client)
	})

	t.Run("PrometheusMetrics", func(t *testing.T) {
		testPrometheusMetrics(t, client)
	})

	t.Run("SwaggerUI", func(t *testing.T) {
		testSwaggerUI(t, client)
	})

	t.Run("RootDescriptor", func(t *testing.T) {
		testRootDescriptor(t, client)
	})

	t.Run("ParacetamolLifecycle", func(t *testing.T) {
		testParacetamolLifecycle(t, client)
	})

	t.Run("NotFound", func(t *testing.T) {
		testNotFound(t, client)
	})
}

func testHealthCheck(t *testing.T, tc *helpers.TestContainers, client *resty.Client) {
	// The service answers for itself
	var remote services.HealthCheckResult
	resp, err := client.R().SetResult(&remote).Get("/health")
	if err != nil {
		t.Fatalf("Failed to get health: %v", err)
	}
	if resp.StatusCode() != http.StatusOK || !remote.Healthy() {
		t.Errorf("Service health check failed: %d %s", resp.StatusCode(), resp.String())
	}

	// And the store is reachable from the host through the mapped port
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	store, closeStore, err := database.ConnectStore(ctx, tc.Config, logging.NewNop())
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	defer closeStore(ctx)

	result := services.HealthCheck(ctx, tc.Config, store, logging.NewNop())
	if !result.Healthy() {
		t.Errorf("Health check failed: %+v", result)
	}

	t.Logf("Health check passed: status=%s, database=%s", result.Status, result.Database)
}

func testPrometheusMetrics(t *testing.T, client *resty.Client) {
	resp, err := client.R().Get("/metrics")
	if err != nil {
		t.Fatalf("Failed to get metrics: %v", err)
	}
	body := resp.String()

	if resp.StatusCode() != http.StatusOK {
		t.Errorf("Expected status 200 for metrics, got %d. Body: %s", resp.StatusCode(), body)
	}
	if !strings.Contains(body, "associations_created_total") {
		t.Errorf("Expected associations_created_total metric")
	}

	t.Logf("Metrics endpoint working, found %d bytes of metrics", len(body))
}

func testSwaggerUI(t *testing.T, client *resty.Client) {
	resp, err := client.R().Get("/swagger/index.html")
	if err != nil {
		t.Fatalf("Failed to get Swagger UI: %v", err)
	}

	if resp.StatusCode() != http.StatusOK {
		t.Errorf("Expected status 200 for Swagger UI, got %d", resp.StatusCode())
	}
}

func testRootDescriptor(t *testing.T, client *resty.Client) {
	var root handlers.RootDescriptor
	resp, err := client.R().SetResult(&root).Get("/")
	if err != nil {
		t.Fatalf("Failed to get root: %v", err)
	}
	if resp.StatusCode() != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode())
	}
	if len(root.Endpoints) != 2 {
		t.Errorf("Expected two endpoints, got %v", root.Endpoints)
	}
}

func testParacetamolLifecycle(t *testing.T, client *resty.Client) {
	var compuesto models.Compuesto
	resp, err := client.R().
		SetBody(map[string]string{"nombre": "Paracetamol"}).
		SetResult(&compuesto).
		Post("/api/compuestos/")
	if err != nil || resp.StatusCode() != http.StatusCreated {
		t.Fatalf("Failed to create compuesto: %v %s", err, resp.String())
	}

	var dolex, tylenol models.Medicamento
	for _, m := range []struct {
		out        *models.Medicamento
		nombre     string
		fabricante string
	}{
		{&dolex, "Dolex", "GSK"},
		{&tylenol, "Tylenol", "Johnson & Johnson"},
	} {
		resp, err = client.R().
			SetBody(map[string]string{"nombre": m.nombre, "fabricante": m.fabricante}).
			SetResult(m.out).
			Post("/api/medicamentos/")
		if err != nil || resp.StatusCode() != http.StatusCreated {
			t.Fatalf("Failed to create medicamento %s: %v %s", m.nombre, err, resp.String())
		}
	}

	for _, a := range []struct {
		medicamento   models.Medicamento
		concentracion float64
	}{
		{dolex, 500},
		{tylenol, 650},
	} {
		var added handlers.AddCompuestoResult
		resp, err = client.R().
			SetBody(map[string]interface{}{"compuesto_id": compuesto.ID, "concentracion": a.concentracion, "unidad": "mg"}).
			SetResult(&added).
			Post("/api/medicamentos/" + a.medicamento.ID + "/compuestos")
		if err != nil || resp.StatusCode() != http.StatusCreated {
			t.Fatalf("Failed to add compuesto: %v %s", err, resp.String())
		}
		if !added.Success || added.Concentracion != a.concentracion {
			t.Errorf("Unexpected add result: %+v", added)
		}
	}

	var containing []models.MedicamentoDeCompuesto
	resp, err = client.R().SetResult(&containing).Get("/api/compuestos/" + compuesto.ID + "/medicamentos")
	if err != nil || resp.StatusCode() != http.StatusOK {
		t.Fatalf("Failed to list medicamentos: %v %s", err, resp.String())
	}
	if len(containing) != 2 {
		t.Errorf("Expected 2 medicamentos with Paracetamol, got %d", len(containing))
	}

	var deleted services.DeleteResult
	resp, err = client.R().SetResult(&deleted).Delete("/api/compuestos/" + compuesto.ID)
	if err != nil || resp.StatusCode() != http.StatusOK {
		t.Fatalf("Failed to delete compuesto: %v %s", err, resp.String())
	}
	if !deleted.Deleted || deleted.RelatedRecordsDeleted != 2 {
		t.Errorf("Unexpected delete result: %+v", deleted)
	}

	var remaining []models.CompuestoDeMedicamento
	resp, err = client.R().SetResult(&remaining).Get("/api/medicamentos/" + dolex.ID + "/compuestos")
	if err != nil || resp.StatusCode() != http.StatusOK {
		t.Fatalf("Failed to list compuestos: %v %s", err, resp.String())
	}
	if len(remaining) != 0 {
		t.Errorf("Expected no compuestos left in Dolex, got %+v", remaining)
	}
}

func testNotFound(t *testing.T, client *resty.Client) {
	var envelope utils.ErrorResponseStruct
	resp, err := client.R().SetError(&envelope).Get("/api/medicamentos/does-not-exist")
	if err != nil {
		t.Fatalf("Failed to request missing medicamento: %v", err)
	}

	// Should return 404 with proper JSON
	if resp.StatusCode() != http.StatusNotFound {
		t.Logf("Response body: %s", resp.String())
		t.Errorf("Expected status 404, got %d", resp.StatusCode())
	}
	if envelope.Ok || envelope.Message == "" {
		t.Errorf("Expected the error envelope, got %+v", envelope)
	}
}
