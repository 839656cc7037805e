package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/geotech-cli/internal/config"
	"github.com/sells-group/geotech-cli/internal/store"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "geotech-cli",
	Short: "SPT borehole parameter calculation pipeline",
	Long:  "Derives soil design parameters (Su, Phi, E, K0, Rint) from SPT borehole logs via effective stress accumulation and N-value correlations.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

// initStore opens the configured run-history backend and migrates it.
func initStore(ctx context.Context) (store.Store, error) {
	return store.Open(ctx, cfg.Store.Driver, cfg.Store.DatabaseURL)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
