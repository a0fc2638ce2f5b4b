package cli

import (
	"fmt"

	"github.com/Rosvend/REST-Api-NoSQL/internal/database"
	"github.com/spf13/cobra"
)

func NewPingCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check connectivity with the configured store",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			defer log.Sync()

			ctx, cancel := commandContext(cmd)
			defer cancel()

			store, closeStore, err := database.ConnectStore(ctx, cfg, log)
			if err != nil {
				return fmt.Errorf("connection failed: %w", err)
			}
			defer closeWithLog(closeStore, log)

			if err := store.Ping(ctx); err != nil {
				return fmt.Errorf("ping failed: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Connected to %s database %q\n", store.Backend, cfg.DBDatabase)
			return nil
		},
	}
}
