package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/prodev-io/userstream"
	"github.com/prodev-io/userstream/iterators"
)

func newStreamCmd() *cobra.Command {
	var olderThan float64

	cmd := &cobra.Command{
		Use:   "stream",
		Short: "Stream user rows one at a time",
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

			iter := userstream.Users(cmd.Context(), db)
			if olderThan > 0 {
				iter = userstream.OlderThan(iter, olderThan)
			}
			defer func() { _ = iter.Close() }()

			start := time.Now()
			n, err := printRows(cmd, iter)
			if err != nil {
				return err
			}

			logger.Info("stream complete",
				zap.Int("rows", n),
				zap.Duration("elapsed", time.Since(start)),
			)
			return nil
		},
	}

	cmd.Flags().Float64Var(&olderThan, "older-than", 0, "only print users older than the given age (0 disables the filter)")

	return cmd
}

func printRows(cmd *cobra.Command, iter iterators.Interface[userstream.Row]) (int, error) {
	var n int
	for iter.Next() {
		r := iter.Value()
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%.2f\n", r.UserID, r.Name, r.Email, r.Age)
		n++
	}
	return n, iter.Err()
}
