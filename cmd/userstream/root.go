package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/prodev-io/userstream"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "userstream",
		Short: "Stream rows of the user_data table",
		Long: "userstream drives the lazy row sources of the userstream library\n" +
			"against the database configured through DB_HOST, DB_USER, DB_PASSWORD,\n" +
			"DB_PORT and DB_NAME.",
		SilenceUsage: true,
	}

	cmd.AddCommand(
		newStreamCmd(),
		newBatchesCmd(),
		newPagesCmd(),
		newAverageAgeCmd(),
	)

	return cmd
}

// openDB connects using the environment-derived config.
func openDB(ctx context.Context) (*sql.DB, error) {
	cfg, err := userstream.LoadConfig()
	if err != nil {
		return nil, err
	}
	return cfg.Open(ctx)
}

// newLogger builds the progress logger. Rows go to stdout, progress to stderr.
func newLogger() (*zap.Logger, error) {
	return zap.NewProduction()
}

// validateSize rejects non-positive batch/page sizes before anything connects.
func validateSize(size int) error {
	if size < 1 {
		return fmt.Errorf("%w: %d", userstream.ErrInvalidBatchSize, size)
	}
	return nil
}
