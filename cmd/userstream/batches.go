package main

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/prodev-io/userstream"
	"github.com/prodev-io/userstream/iterators"
)

func newBatchesCmd() *cobra.Command {
	var (
		size      int
		olderThan float64
	)

	cmd := &cobra.Command{
		Use:   "batches",
		Short: "Stream user rows in fixed-size batches",
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

			iter := userstream.UserBatches(cmd.Context(), db, size)
			defer func() { _ = iter.Close() }()

			var rows, batches int
			start := time.Now()
			for iter.Next() {
				batch := iter.Value()
				batches++
				rows += len(batch)
				logger.Info("batch received",
					zap.Int("batch", batches),
					zap.Int("size", len(batch)),
				)

				printed := batch
				if olderThan > 0 {
					printed, err = iterators.Collect[userstream.Row](
						userstream.OlderThan(iterators.Slice(batch), olderThan),
					)
					if err != nil {
						return err
					}
				}
				for _, r := range printed {
					printRow(cmd, r)
				}
			}
			if err := iter.Err(); err != nil {
				return err
			}

			logger.Info("batches complete",
				zap.Int("batches", batches),
				zap.Int("rows", rows),
				zap.Duration("elapsed", time.Since(start)),
			)
			return nil
		},
	}

	cmd.Flags().IntVar(&size, "size", userstream.DefaultBatchSize, "maximum number of rows per batch")
	cmd.Flags().Float64Var(&olderThan, "older-than", 0, "only print users older than the given age (0 disables the filter)")

	return cmd
}
