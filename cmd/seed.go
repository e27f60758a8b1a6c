// cmd/seed.go
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gewnthar/skysql/seed"
	"github.com/gewnthar/skysql/services"
)

var skipMetrics bool

func newSeedCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the reference data set and generate flight history",
		Long: `Loads airlines, airports, routes and aircraft configurations from the
embedded CSV files, generates 90 days of flight performance history and the
last 7 days of operational metrics. Tables that already hold data are left
untouched.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := bootstrap()
			if err != nil {
				return err
			}
			ds, err := seed.LoadDataset()
			if err != nil {
				return err
			}

			store, err := openStore(cmd.Context(), cfg.Database)
			if err != nil {
				return err
			}
			defer store.Close()

			if _, err := seed.NewSeeder(store, nil, nil).Run(cmd.Context(), ds); err != nil {
				return err
			}
			if skipMetrics {
				return nil
			}
			if _, err := services.NewService(store).EnsureMetrics(cmd.Context()); err != nil {
				return err
			}
			log.Info("operational metrics ready")
			return nil
		},
	}
	cmd.Flags().BoolVar(&skipMetrics, "skip-metrics", false, "do not generate operational metrics")
	return cmd
}
