// cmd/ensure_metrics.go
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gewnthar/skysql/services"
)

func newEnsureMetricsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ensure-metrics",
		Short: "Generate the last 7 days of operational metrics if none exist",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := bootstrap()
			if err != nil {
				return err
			}
			store, err := openStore(cmd.Context(), cfg.Database)
			if err != nil {
				return err
			}
			defer store.Close()

			if _, err := services.NewService(store).EnsureMetrics(cmd.Context()); err != nil {
				return err
			}
			log.Info("operational metrics ready")
			return nil
		},
	}
}
