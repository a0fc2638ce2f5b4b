package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/Rosvend/REST-Api-NoSQL/internal/config"
	"github.com/Rosvend/REST-Api-NoSQL/internal/logging"
	"github.com/spf13/cobra"
)

const (
	commandTimeout = 2 * time.Minute
	closeTimeout   = 10 * time.Second
)

// loadConfig applies --env-file when given, then reads the environment like the server does
func loadConfig(cmd *cobra.Command) (*config.Config, *logging.Logger, error) {
	if envFile, _ := cmd.Flags().GetString("env-file"); envFile != "" {
		if err := config.LoadEnvFile(envFile); err != nil {
			return nil, nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	log, err := logging.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}

func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, commandTimeout)
}

// closeWithLog closes the store on its own context, the command context may have expired
func closeWithLog(closeStore func(context.Context) error, log *logging.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()
	if err := closeStore(ctx); err != nil {
		log.Error("Failed to close store", "error", err)
	}
}
