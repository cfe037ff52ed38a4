package cli

import (
	"context"

	"github.com/gabapcia/addrwatch/internal/pkg/logger"
	"github.com/gabapcia/addrwatch/internal/txwatch"
	"github.com/gabapcia/addrwatch/internal/watchlist"

	"github.com/urfave/cli/v3"
)

// runCycleCommand returns the CLI command that executes one polling pass over
// the watch list.
//
// Usage example:
//
//	addrwatch run
//	addrwatch run --seed
//
// With --seed, current latest hashes are adopted into the ledger without
// emitting notifications, so only activity after the seed is reported.
//
// The command exits successfully even when some or all addresses fail to
// fetch; only unreadable or unwritable state is a failure.
func runCycleCommand(wl watchlist.Service, tw txwatch.Service) *cli.Command {
	return &cli.Command{
		Name:        "run",
		Description: "Executes one watch cycle: fetches the latest transfer per watched address, reports changes, and persists the updated ledger.",
		Usage:       "Runs a single polling pass over the watch list. Intended to be invoked periodically, e.g. from cron.",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "seed",
				Usage: "Adopt current latest transactions without emitting notifications",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			addresses, err := wl.ListAddresses(ctx)
			if err != nil {
				return err
			}

			var report txwatch.CycleReport
			if c.Bool("seed") {
				report, err = tw.Seed(ctx, addresses)
			} else {
				report, err = tw.RunCycle(ctx, addresses)
			}
			if err != nil {
				return err
			}

			for _, failure := range report.Failures {
				logger.Warn(ctx, "address skipped this cycle",
					"cycle.id", report.CycleID,
					"address", failure.Address,
					"error", failure.Err,
				)
			}

			return nil
		},
	}
}
