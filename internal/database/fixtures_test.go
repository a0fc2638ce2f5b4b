package database_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/Rosvend/REST-Api-NoSQL/data"
	"github.com/Rosvend/REST-Api-NoSQL/internal/config"
	"github.com/Rosvend/REST-Api-NoSQL/internal/database"
	"github.com/Rosvend/REST-Api-NoSQL/internal/logging"
	"github.com/Rosvend/REST-Api-NoSQL/internal/models"
	"github.com/Rosvend/REST-Api-NoSQL/internal/repository"
	"github.com/Rosvend/REST-Api-NoSQL/tests/helpers"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadEmbeddedFixtures(t *testing.T) {
	f, err := database.ReadFixtures(data.Fixtures, data.FixturesDir)
	require.NoError(t, err)

	assert.Len(t, f.Compuestos, 6)
	assert.Len(t, f.Medicamentos, 4)
	require.Len(t, f.Asociaciones, 6)

	assert.Equal(t, "6643a1f0c2b4e01a2f3b0001", f.Compuestos[0].ID)
	assert.Equal(t, "Paracetamol", f.Compuestos[0].Nombre)

	// the last record uses a string concentration and the legacy "unidad" key
	last := f.Asociaciones[5]
	assert.Equal(t, 120.0, last.Concentracion)
	assert.Equal(t, "mg", last.UnidadMedida)
	assert.Equal(t, "6643a2a0c2b4e01a2f3b1004", last.MedicamentoID)
}

func TestReadFixturesSingleObjectAndPlainIDs(t *testing.T) {
	fsys := fstest.MapFS{
		"seed/compuestos.json":                 {Data: []byte(`{"_id": "c1", "nombre": "Loratadina"}`)},
		"seed/medicamentos.json":               {Data: []byte(`[]`)},
		"seed/compuestos_por_medicamento.json": {Data: []byte(`[]`)},
	}

	f, err := database.ReadFixtures(fsys, "seed")
	require.NoError(t, err)
	require.Len(t, f.Compuestos, 1)
	assert.Equal(t, "c1", f.Compuestos[0].ID)
	assert.Empty(t, f.Medicamentos)
}

func TestReadFixturesMissingFile(t *testing.T) {
	fsys := fstest.MapFS{
		"seed/compuestos.json": {Data: []byte(`[]`)},
	}
	_, err := database.ReadFixtures(fsys, "seed")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "medicamentos.json")
}

func TestReadFixturesRejectsInvalidRecords(t *testing.T) {
	valid := map[string]string{
		"compuestos.json":                 `[{"_id": "c1", "nombre": "Ibuprofeno"}]`,
		"medicamentos.json":               `[{"_id": "m1", "nombre": "Advil", "fabricante": "Pfizer"}]`,
		"compuestos_por_medicamento.json": `[{"_id": "a1", "medicamento_id": "m1", "compuesto_id": "c1", "concentracion": 200, "unidad_medida": "mg"}]`,
	}

	tests := []struct {
		name     string
		file     string
		content  string
		expected string
	}{
		{"Blank compuesto nombre", "compuestos.json", `{"_id": "c2", "nombre": "   "}`, `compuestos.json: record "c2": nombre is empty`},
		{"Missing compuesto nombre", "compuestos.json", `{"_id": "c3"}`, `record "c3": nombre is empty`},
		{"Duplicate compuesto id", "compuestos.json", `[{"_id": "c1", "nombre": "A"}, {"_id": "c1", "nombre": "B"}]`, `record "c1": duplicate id`},
		{"Empty medicamento nombre", "medicamentos.json", `{"_id": "m2", "nombre": "", "fabricante": "Bayer"}`, `medicamentos.json: record "m2": nombre is empty`},
		{"Empty fabricante", "medicamentos.json", `{"_id": "m3", "nombre": "Aspirina", "fabricante": " "}`, `record "m3": fabricante is empty`},
		{"Negative concentracion", "compuestos_por_medicamento.json", `{"_id": "a2", "medicamento_id": "m1", "compuesto_id": "c1", "concentracion": -5, "unidad_medida": "mg"}`, `record "a2": concentracion must be greater than zero`},
		{"Zero concentracion", "compuestos_por_medicamento.json", `{"_id": "a3", "medicamento_id": "m1", "compuesto_id": "c1", "concentracion": "0", "unidad_medida": "mg"}`, `record "a3": concentracion must be greater than zero`},
		{"Empty unidad_medida", "compuestos_por_medicamento.json", `{"_id": "a4", "medicamento_id": "m1", "compuesto_id": "c1", "concentracion": 5, "unidad_medida": ""}`, `compuestos_por_medicamento.json: record "a4": unidad_medida is empty`},
		{"Missing compuesto_id", "compuestos_por_medicamento.json", `{"_id": "a5", "medicamento_id": "m1", "concentracion": 5, "unidad_medida": "mg"}`, `record "a5": medicamento_id and compuesto_id are required`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{}
			for name, content := range valid {
				fsys["seed/"+name] = &fstest.MapFile{Data: []byte(content)}
			}
			fsys["seed/"+tt.file] = &fstest.MapFile{Data: []byte(tt.content)}

			_, err := database.ReadFixtures(fsys, "seed")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expected)
		})
	}
}

func TestImportFixturesKeepsDataOnFailure(t *testing.T) {
	ctx := context.Background()
	store := helpers.SetupTestStore(t)
	log := logging.NewNop()

	f, err := database.ReadFixtures(data.Fixtures, data.FixturesDir)
	require.NoError(t, err)
	require.NoError(t, database.ImportFixtures(ctx, store, f, false, log))

	t.Run("Invalid records are rejected before clearing", func(t *testing.T) {
		bad := repository.Fixtures{
			Compuestos:   []models.Compuesto{{ID: "c1", Nombre: "   "}},
			Medicamentos: []models.Medicamento{{ID: "m1", Nombre: "", Fabricante: ""}},
			Asociaciones: []models.CompuestoMedicamento{{ID: "a1", MedicamentoID: "m1", CompuestoID: "c1", Concentracion: -5}},
		}
		err := database.ImportFixtures(ctx, store, bad, false, log)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "nombre is empty")
	})

	t.Run("Insert failure rolls back the clear", func(t *testing.T) {
		// distinct fixture ids that map onto the same SQL key
		collide := repository.Fixtures{
			Compuestos: []models.Compuesto{
				{ID: "c1", Nombre: "Ibuprofeno"},
				{ID: uuid.NewSHA1(uuid.NameSpaceOID, []byte("c1")).String(), Nombre: "Naproxeno"},
			},
		}
		require.NoError(t, database.ValidateFixtures(collide))
		require.Error(t, database.ImportFixtures(ctx, store, collide, false, log))
	})

	compuestos, err := store.Compuestos.List(ctx)
	require.NoError(t, err)
	assert.Len(t, compuestos, 6)
	for _, c := range compuestos {
		assert.NotEmpty(t, strings.TrimSpace(c.Nombre))
	}

	medicamentos, err := store.Medicamentos.List(ctx)
	require.NoError(t, err)
	assert.Len(t, medicamentos, 4)

	asociaciones, err := store.Asociaciones.List(ctx)
	require.NoError(t, err)
	assert.Len(t, asociaciones, 6)
}

func TestForBackendMapsIDsConsistently(t *testing.T) {
	f, err := database.ReadFixtures(data.Fixtures, data.FixturesDir)
	require.NoError(t, err)

	assert.Equal(t, f, database.ForBackend(f, "mongo"))

	sql := database.ForBackend(f, "sqlite")
	_, err = uuid.Parse(sql.Compuestos[0].ID)
	require.NoError(t, err)
	assert.Equal(t, sql.Compuestos[0].ID, sql.Asociaciones[0].CompuestoID)
	assert.Equal(t, sql.Medicamentos[0].ID, sql.Asociaciones[0].MedicamentoID)

	// the input is not modified
	assert.Equal(t, "6643a1f0c2b4e01a2f3b0001", f.Compuestos[0].ID)
}

func TestImportFixturesIntoSQLite(t *testing.T) {
	ctx := context.Background()
	store := helpers.SetupTestStore(t)
	log := logging.NewNop()

	f, err := database.ReadFixtures(data.Fixtures, data.FixturesDir)
	require.NoError(t, err)

	require.NoError(t, database.ImportFixtures(ctx, store, f, false, log))
	// a second import replaces rather than duplicates
	require.NoError(t, database.ImportFixtures(ctx, store, f, false, log))

	compuestos, err := store.Compuestos.List(ctx)
	require.NoError(t, err)
	assert.Len(t, compuestos, 6)

	mapped := database.ForBackend(f, store.Backend)
	comps, err := store.Medicamentos.ListCompuestos(ctx, mapped.Medicamentos[0].ID)
	require.NoError(t, err)
	assert.Len(t, comps, 2, "Dolex Forte has paracetamol and caffeine")

	asociaciones, err := store.Asociaciones.List(ctx)
	require.NoError(t, err)
	assert.Len(t, asociaciones, 6)

	orphans, err := store.Asociaciones.DeleteOrphans(ctx)
	require.NoError(t, err)
	assert.Zero(t, orphans)
}

func TestOpenStoreSQLite(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{
		DBType:            "sqlite",
		DBDatabase:        filepath.Join(t.TempDir(), "meds.db"),
		DBConnectionLimit: 2,
	}

	// connecting alone does not create the tables
	store, closeStore, err := database.ConnectStore(ctx, cfg, logging.NewNop())
	require.NoError(t, err)
	require.NoError(t, store.Ping(ctx))
	_, err = store.Compuestos.List(ctx)
	require.Error(t, err)
	require.NoError(t, closeStore(ctx))

	store, closeStore, err = database.OpenStore(ctx, cfg, logging.NewNop())
	require.NoError(t, err)
	defer closeStore(ctx)
	assert.Equal(t, "sqlite", store.Backend)

	all, err := store.Compuestos.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
