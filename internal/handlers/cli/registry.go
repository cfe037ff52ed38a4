package cli

import (
	"context"
	"fmt"

	"github.com/gabapcia/addrwatch/internal/watchlist"

	"github.com/urfave/cli/v3"
)

// startWatchingAddressCommand returns a CLI command that adds an address to
// the watch list.
//
// Usage example:
//
//	addrwatch watch --address 0xABC123...
func startWatchingAddressCommand(wl watchlist.Service) *cli.Command {
	return &cli.Command{
		Name:        "watch",
		Description: "Register an address to be watched for new token transfers.",
		Usage:       "Adds an address to the watch list.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "address",
				Usage:    "Address to start watching",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return wl.StartWatching(ctx, c.String("address"))
		},
	}
}

// stopWatchingAddressCommand returns a CLI command that removes an address
// from the watch list.
//
// Usage example:
//
//	addrwatch unwatch --address 0xABC123...
func stopWatchingAddressCommand(wl watchlist.Service) *cli.Command {
	return &cli.Command{
		Name:        "unwatch",
		Description: "Unregister an address from the watch list.",
		Usage:       "Removes an address from the watch list.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "address",
				Usage:    "Address to stop watching",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return wl.StopWatching(ctx, c.String("address"))
		},
	}
}

// listAddressesCommand returns a CLI command that prints the watch list, one
// address per line, in iteration order.
//
// Usage example:
//
//	addrwatch addresses
func listAddressesCommand(wl watchlist.Service) *cli.Command {
	return &cli.Command{
		Name:        "addresses",
		Description: "Print every watched address in iteration order.",
		Usage:       "Lists the current watch list.",
		Action: func(ctx context.Context, c *cli.Command) error {
			addresses, err := wl.ListAddresses(ctx)
			if err != nil {
				return err
			}

			for _, address := range addresses {
				fmt.Fprintln(c.Root().Writer, address)
			}

			return nil
		},
	}
}
