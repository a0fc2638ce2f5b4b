package handlers_test

import (
	"net/http"
	"testing"

	"github.com/Rosvend/REST-Api-NoSQL/internal/models"
	"github.com/Rosvend/REST-Api-NoSQL/internal/services"
	"github.com/Rosvend/REST-Api-NoSQL/internal/utils"
	"github.com/Rosvend/REST-Api-NoSQL/tests/helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRootDescriptor tests the GET / endpoint
func TestRootDescriptor(t *testing.T) {
	app, _ := helpers.SetupTestApp(t)

	resp := helpers.DoRequest(t, app, http.MethodGet, "/", nil)
	helpers.AssertStatus(t, resp, http.StatusOK)

	var result map[string]interface{}
	helpers.ParseJSON(t, resp, &result)
	assert.Equal(t, "API de Medicamentos y Compuestos", result["message"])
	assert.Equal(t, "/swagger/index.html", result["documentation"])
	assert.ElementsMatch(t, []interface{}{"/api/compuestos", "/api/medicamentos"}, result["endpoints"])
}

// TestHealth tests the GET /health endpoint
func TestHealth(t *testing.T) {
	app, _ := helpers.SetupTestApp(t)

	resp := helpers.DoRequest(t, app, http.MethodGet, "/health", nil)
	helpers.AssertStatus(t, resp, http.StatusOK)

	var result services.HealthCheckResult
	helpers.ParseJSON(t, resp, &result)
	assert.Equal(t, "healthy", result.Status)
	assert.Equal(t, "sqlite", result.Details["database_type"])
}

// TestUnknownRoute tests the 404 fallback envelope
func TestUnknownRoute(t *testing.T) {
	app, _ := helpers.SetupTestApp(t)

	resp := helpers.DoRequest(t, app, http.MethodGet, "/api/principios", nil)
	helpers.AssertStatus(t, resp, http.StatusNotFound)

	var result utils.ErrorResponseStruct
	helpers.ParseJSON(t, resp, &result)
	assert.False(t, result.Ok)
	assert.Equal(t, "/api/principios", result.URL)
}

// TestCreateCompuesto tests POST /api/compuestos/
func TestCreateCompuesto(t *testing.T) {
	app, _ := helpers.SetupTestApp(t)

	resp := helpers.DoRequest(t, app, http.MethodPost, "/api/compuestos/", map[string]string{"nombre": "Ibuprofeno"})
	helpers.AssertStatus(t, resp, http.StatusCreated)
	assert.Equal(t, "1.0.0", resp.Header.Get("X-Api-Version"))

	var created models.Compuesto
	helpers.ParseJSON(t, resp, &created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Ibuprofeno", created.Nombre)

	resp = helpers.DoRequest(t, app, http.MethodGet, "/api/compuestos/"+created.ID, nil)
	helpers.AssertStatus(t, resp, http.StatusOK)

	var fetched models.Compuesto
	helpers.ParseJSON(t, resp, &fetched)
	assert.Equal(t, created, fetched)
}

// TestCreateCompuestoRejectedBodies tests the 400 and 422 paths of POST /api/compuestos/
func TestCreateCompuestoRejectedBodies(t *testing.T) {
	tests := []struct {
		name    string
		body    interface{}
		status  int
		message string
	}{
		{"missing nombre", map[string]string{}, http.StatusUnprocessableEntity, "Field required: nombre"},
		{"null nombre", `{"nombre": null}`, http.StatusUnprocessableEntity, "Field required: nombre"},
		{"malformed json", `{"nombre": `, http.StatusBadRequest, "Invalid input"},
		{"wrong type", `{"nombre": 7}`, http.StatusBadRequest, "Invalid input"},
		{"blank nombre", map[string]string{"nombre": "   "}, http.StatusBadRequest, "El nombre del compuesto no puede estar vacío"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, store := helpers.SetupTestApp(t)

			resp := helpers.DoRequest(t, app, http.MethodPost, "/api/compuestos/", tt.body)
			helpers.AssertStatus(t, resp, tt.status)

			var result utils.ErrorResponseStruct
			helpers.ParseJSON(t, resp, &result)
			assert.Equal(t, tt.message, result.Message)
			assert.Equal(t, tt.status, result.Status)

			all, err := store.Compuestos.List(t.Context())
			require.NoError(t, err)
			assert.Empty(t, all)
		})
	}
}

// TestListCompuestos tests GET /api/compuestos/ with and without the trailing slash
func TestListCompuestos(t *testing.T) {
	app, store := helpers.SetupTestApp(t)

	resp := helpers.DoRequest(t, app, http.MethodGet, "/api/compuestos/", nil)
	helpers.AssertStatus(t, resp, http.StatusOK)
	var empty []models.Compuesto
	helpers.ParseJSON(t, resp, &empty)
	assert.Empty(t, empty)

	helpers.CreateTestCompuesto(t, store, "Cafeína")
	helpers.CreateTestCompuesto(t, store, "Loratadina")

	resp = helpers.DoRequest(t, app, http.MethodGet, "/api/compuestos", nil)
	helpers.AssertStatus(t, resp, http.StatusOK)
	var all []models.Compuesto
	helpers.ParseJSON(t, resp, &all)
	assert.Len(t, all, 2)
}

// TestGetCompuestoNotFound tests GET /api/compuestos/:id for unknown and malformed ids
func TestGetCompuestoNotFound(t *testing.T) {
	app, _ := helpers.SetupTestApp(t)

	for _, id := range []string{"0b6e8a52-2a7e-4b9a-9d3c-1b1f0e5f7a11", "not-an-id"} {
		resp := helpers.DoRequest(t, app, http.MethodGet, "/api/compuestos/"+id, nil)
		helpers.AssertStatus(t, resp, http.StatusNotFound)

		var result utils.ErrorResponseStruct
		helpers.ParseJSON(t, resp, &result)
		assert.Equal(t, "Compuesto con ID "+id+" no encontrado", result.Message)
	}
}

// TestUpdateCompuesto tests PUT /api/compuestos/:id
func TestUpdateCompuesto(t *testing.T) {
	app, store := helpers.SetupTestApp(t)
	c := helpers.CreateTestCompuesto(t, store, "Acetaminofen")

	resp := helpers.DoRequest(t, app, http.MethodPut, "/api/compuestos/"+c.ID, map[string]string{"nombre": "Paracetamol"})
	helpers.AssertStatus(t, resp, http.StatusOK)

	var updated models.Compuesto
	helpers.ParseJSON(t, resp, &updated)
	assert.Equal(t, c.ID, updated.ID)
	assert.Equal(t, "Paracetamol", updated.Nombre)

	// a missing compuesto is reported before the blank name
	resp = helpers.DoRequest(t, app, http.MethodPut, "/api/compuestos/missing", map[string]string{"nombre": ""})
	helpers.AssertStatus(t, resp, http.StatusNotFound)

	resp = helpers.DoRequest(t, app, http.MethodPut, "/api/compuestos/"+c.ID, map[string]string{"nombre": ""})
	helpers.AssertStatus(t, resp, http.StatusBadRequest)
}

// TestDeleteCompuestoCascades tests DELETE /api/compuestos/:id
func TestDeleteCompuestoCascades(t *testing.T) {
	app, store := helpers.SetupTestApp(t)
	seed := helpers.SeedParacetamol(t, store)

	resp := helpers.DoRequest(t, app, http.MethodDelete, "/api/compuestos/"+seed.Compuesto.ID, nil)
	helpers.AssertStatus(t, resp, http.StatusOK)

	var result services.DeleteResult
	helpers.ParseJSON(t, resp, &result)
	assert.True(t, result.Deleted)
	assert.Equal(t, seed.Compuesto.ID, result.ID)
	assert.Equal(t, int64(2), result.RelatedRecordsDeleted)

	for _, m := range []models.Medicamento{seed.Dolex, seed.Tylenol} {
		resp = helpers.DoRequest(t, app, http.MethodGet, "/api/medicamentos/"+m.ID+"/compuestos", nil)
		helpers.AssertStatus(t, resp, http.StatusOK)
		var compuestos []models.CompuestoDeMedicamento
		helpers.ParseJSON(t, resp, &compuestos)
		assert.Empty(t, compuestos)
	}

	resp = helpers.DoRequest(t, app, http.MethodDelete, "/api/compuestos/"+seed.Compuesto.ID, nil)
	helpers.AssertStatus(t, resp, http.StatusNotFound)
}

// TestListMedicamentosOfCompuesto tests GET /api/compuestos/:id/medicamentos
func TestListMedicamentosOfCompuesto(t *testing.T) {
	app, store := helpers.SetupTestApp(t)
	seed := helpers.SeedParacetamol(t, store)

	resp := helpers.DoRequest(t, app, http.MethodGet, "/api/compuestos/"+seed.Compuesto.ID+"/medicamentos", nil)
	helpers.AssertStatus(t, resp, http.StatusOK)

	var result []models.MedicamentoDeCompuesto
	helpers.ParseJSON(t, resp, &result)
	require.Len(t, result, 2)

	byName := map[string]models.MedicamentoDeCompuesto{}
	for _, m := range result {
		byName[m.Nombre] = m
	}
	assert.Equal(t, seed.Dolex.ID, byName["Dolex"].ID)
	assert.Equal(t, "GSK", byName["Dolex"].Fabricante)
	assert.Equal(t, 500.0, byName["Dolex"].Concentracion)
	assert.Equal(t, 650.0, byName["Tylenol"].Concentracion)
	assert.Equal(t, "mg", byName["Tylenol"].UnidadMedida)

	resp = helpers.DoRequest(t, app, http.MethodGet, "/api/compuestos/missing/medicamentos", nil)
	helpers.AssertStatus(t, resp, http.StatusNotFound)
}
