// cmd/root.go
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gewnthar/skysql/config"
	"github.com/gewnthar/skysql/database"
	"github.com/gewnthar/skysql/logger"
)

const connectTimeout = 10 * time.Second

var configPath string

// NewRootCommand assembles the skysql CLI.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "skysql",
		Short:         "SkySQL Intelligence - airline operational efficiency analytics",
		Long:          `SkySQL Intelligence serves airline route, fuel and efficiency analytics from MariaDB over a JSON HTTP API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config.yaml (default: search ./config.yaml, ./config/config.yaml)")

	root.AddCommand(
		newServeCommand(),
		newMigrateCommand(),
		newSeedCommand(),
		newEnsureMetricsCommand(),
	)
	return root
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

// bootstrap loads configuration and installs the logger.
func bootstrap() (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, logger.Init(cfg.Logging, os.Stdout), nil
}

// openStore connects with a bounded timeout so a dead database fails fast.
func openStore(ctx context.Context, cfg config.DatabaseConfig) (*database.Store, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	return database.Open(ctx, cfg)
}
