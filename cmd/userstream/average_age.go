package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/prodev-io/userstream"
)

func newAverageAgeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "average-age",
		Short: "Stream user ages and print their average",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			db, err := openDB(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			avg, n, err := userstream.AverageAge(cmd.Context(), db)
			if err != nil {
				return err
			}

			logger.Info("ages streamed", zap.Int("rows", n))

			if n == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No users found.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Average age of users: %.2f\n", avg)
			return nil
		},
	}
}
