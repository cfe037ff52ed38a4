package cli

import (
	"context"
	"os"

	"github.com/gabapcia/addrwatch/internal/txwatch"
	"github.com/gabapcia/addrwatch/internal/watchlist"

	"github.com/urfave/cli/v3"
)

// Run initializes and executes the addrwatch CLI application.
//
// It registers all available commands:
//
//   - `run`: Executes one watch cycle over the current watch list.
//   - `watch`: Adds an address to the watch list.
//   - `unwatch`: Removes an address from the watch list.
//   - `addresses`: Prints the current watch list.
//
// Parameters:
//   - ctx: Context used to control the lifecycle of the CLI application.
//   - wl: The watchlist service implementation used by list-management commands.
//   - tw: The txwatch service implementation used by the run command.
func Run(ctx context.Context, wl watchlist.Service, tw txwatch.Service) error {
	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "addrwatch",
		Description:           "Command-line interface for watching addresses for new token transfers.",
		Usage:                 "addrwatch [command] [flags]",
		Commands: []*cli.Command{
			runCycleCommand(wl, tw),
			startWatchingAddressCommand(wl),
			stopWatchingAddressCommand(wl),
			listAddressesCommand(wl),
		},
	}

	return app.Run(ctx, os.Args)
}
