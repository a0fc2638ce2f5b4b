package cli

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/Rosvend/REST-Api-NoSQL/data"
	"github.com/Rosvend/REST-Api-NoSQL/internal/database"
	"github.com/spf13/cobra"
)

func NewImportCommand() *cobra.Command {
	var (
		dir  string
		keep bool
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Load compuestos, medicamentos and compuestos_por_medicamento from JSON fixtures",
		Long: "Reads " + database.CompuestosFile + ", " + database.MedicamentosFile + " and " +
			database.AsociacionesFile + " from --dir, or the bundled fixtures when --dir is empty. " +
			"Each file holds one object or an array; ids may use the {\"$oid\": ...} form.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				fsys fs.FS = data.Fixtures
				root       = data.FixturesDir
			)
			if dir != "" {
				fsys, root = os.DirFS(dir), "."
			}

			fixtures, err := database.ReadFixtures(fsys, root)
			if err != nil {
				return err
			}

			cfg, log, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			defer log.Sync()

			ctx, cancel := commandContext(cmd)
			defer cancel()

			store, closeStore, err := database.OpenStore(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer closeWithLog(closeStore, log)

			if err := database.ImportFixtures(ctx, store, fixtures, keep, log); err != nil {
				return fmt.Errorf("import failed: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d compuestos, %d medicamentos and %d associations into %s\n",
				len(fixtures.Compuestos), len(fixtures.Medicamentos), len(fixtures.Asociaciones), store.Backend)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "directory with the fixture files (default: bundled fixtures)")
	cmd.Flags().BoolVar(&keep, "keep", false, "keep existing records instead of emptying the collections first")
	return cmd
}
