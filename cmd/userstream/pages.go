package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/prodev-io/userstream"
)

func newPagesCmd() *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:   "pages",
		Short: "Stream user rows as lazily fetched pages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateSize(size); err != nil {
				return err
			}

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

			iter := userstream.Pages(cmd.Context(), db, size)
			defer func() { _ = iter.Close() }()

			var rows, pages int
			start := time.Now()
			for iter.Next() {
				page := iter.Value()
				pages++
				rows += len(page)
				logger.Info("page fetched",
					zap.Int("page", pages),
					zap.Int("size", len(page)),
				)
				for _, r := range page {
					printRow(cmd, r)
				}
			}
			if err := iter.Err(); err != nil {
				return err
			}

			logger.Info("pages complete",
				zap.Int("pages", pages),
				zap.Int("rows", rows),
				zap.Duration("elapsed", time.Since(start)),
			)
			return nil
		},
	}

	cmd.Flags().IntVar(&size, "size", userstream.DefaultBatchSize, "maximum number of rows per page")

	return cmd
}

func printRow(cmd *cobra.Command, r userstream.Row) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%.2f\n", r.UserID, r.Name, r.Email, r.Age)
}
