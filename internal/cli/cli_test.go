package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sqliteEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "medicamentos.db")
	t.Setenv("DB_TYPE", "sqlite")
	t.Setenv("DB_DATABASE", path)
	t.Setenv("LOG_LEVEL", "error")
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestPing(t *testing.T) {
	path := sqliteEnv(t)

	out, err := run(t, "ping")
	require.NoError(t, err)
	assert.Contains(t, out, "Connected to sqlite database")
	assert.Contains(t, out, path)
}

func TestImportBundledFixtures(t *testing.T) {
	sqliteEnv(t)

	out, err := run(t, "import")
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 6 compuestos, 4 medicamentos and 6 associations into sqlite")

	// re-importing with --keep would duplicate primary keys
	_, err = run(t, "import", "--keep")
	require.Error(t, err)

	_, err = run(t, "import")
	require.NoError(t, err)
}

func TestImportFromDir(t *testing.T) {
	sqliteEnv(t)
	dir := t.TempDir()

	files := map[string]string{
		"compuestos.json":                 `{"_id": "c1", "nombre": "Ibuprofeno"}`,
		"medicamentos.json":               `[{"_id": {"$oid": "6643a2a0c2b4e01a2f3b1009"}, "nombre": "Advil", "fabricante": "Pfizer"}]`,
		"compuestos_por_medicamento.json": `[{"_id": "a1", "medicamento_id": {"$oid": "6643a2a0c2b4e01a2f3b1009"}, "compuesto_id": "c1", "concentracion": 200, "unidad_medida": "mg"}]`,
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}

	out, err := run(t, "import", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 1 compuestos, 1 medicamentos and 1 associations")
}

func TestImportRejectsInvalidFixtures(t *testing.T) {
	sqliteEnv(t)
	dir := t.TempDir()

	files := map[string]string{
		"compuestos.json":                 `{"_id": "c1", "nombre": "   "}`,
		"medicamentos.json":               `[]`,
		"compuestos_por_medicamento.json": `[]`,
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}

	_, err := run(t, "import", "--dir", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `compuestos.json: record "c1": nombre is empty`)
}

func TestImportMissingDir(t *testing.T) {
	sqliteEnv(t)

	_, err := run(t, "import", "--dir", filepath.Join(t.TempDir(), "nowhere"))
	require.Error(t, err)
}

func TestEnvFileFlag(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	for _, key := range []string{"DB_TYPE", "DB_DATABASE", "MONGO_URI"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	envFile := filepath.Join(dir, "fixtures.env")
	content := "DB_TYPE=sqlite\nDB_DATABASE=" + filepath.Join(dir, "from-env-file.db") + "\nLOG_LEVEL=error\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	out, err := run(t, "--env-file", envFile, "ping")
	require.NoError(t, err)
	assert.Contains(t, out, "from-env-file.db")

	_, err = run(t, "--env-file", filepath.Join(dir, "absent.env"), "ping")
	require.Error(t, err)
}
