package cli

import (
	"errors"
	"testing"

	"github.com/gabapcia/addrwatch/internal/txwatch"
	"github.com/gabapcia/addrwatch/internal/watchlist"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/urfave/cli/v3"
)

func TestRunCycleCommand(t *testing.T) {
	t.Run("should create command with correct metadata", func(t *testing.T) {
		wlMock := watchlist.NewServiceMock(t)
		twMock := txwatch.NewServiceMock(t)

		cmd := runCycleCommand(wlMock, twMock)

		assert.Equal(t, "run", cmd.Name)
		assert.Len(t, cmd.Flags, 1)

		seedFlag := cmd.Flags[0].(*cli.BoolFlag)
		assert.Equal(t, "seed", seedFlag.Name)
	})

	t.Run("should run one cycle over the watch list", func(t *testing.T) {
		wlMock := watchlist.NewServiceMock(t)
		twMock := txwatch.NewServiceMock(t)

		addresses := []string{"0xAAA", "0xBBB"}
		wlMock.EXPECT().ListAddresses(mock.Anything).Return(addresses, nil).Once()
		twMock.EXPECT().RunCycle(mock.Anything, addresses).Return(txwatch.CycleReport{CycleID: "cycle-1"}, nil).Once()

		app := &cli.Command{
			Commands: []*cli.Command{runCycleCommand(wlMock, twMock)},
		}

		err := app.Run(t.Context(), []string{"test", "run"})
		assert.NoError(t, err)
	})

	t.Run("should seed the ledger when the seed flag is set", func(t *testing.T) {
		wlMock := watchlist.NewServiceMock(t)
		twMock := txwatch.NewServiceMock(t)

		addresses := []string{"0xAAA"}
		wlMock.EXPECT().ListAddresses(mock.Anything).Return(addresses, nil).Once()
		twMock.EXPECT().Seed(mock.Anything, addresses).Return(txwatch.CycleReport{CycleID: "cycle-1"}, nil).Once()

		app := &cli.Command{
			Commands: []*cli.Command{runCycleCommand(wlMock, twMock)},
		}

		err := app.Run(t.Context(), []string{"test", "run", "--seed"})
		assert.NoError(t, err)
	})

	t.Run("should succeed even when individual addresses fail", func(t *testing.T) {
		wlMock := watchlist.NewServiceMock(t)
		twMock := txwatch.NewServiceMock(t)

		addresses := []string{"0xAAA", "0xBBB"}
		report := txwatch.CycleReport{
			CycleID: "cycle-1",
			Failures: []txwatch.FetchFailure{
				{Address: "0xBBB", Err: errors.New("connection refused")},
			},
		}

		wlMock.EXPECT().ListAddresses(mock.Anything).Return(addresses, nil).Once()
		twMock.EXPECT().RunCycle(mock.Anything, addresses).Return(report, nil).Once()

		app := &cli.Command{
			Commands: []*cli.Command{runCycleCommand(wlMock, twMock)},
		}

		err := app.Run(t.Context(), []string{"test", "run"})
		assert.NoError(t, err)
	})

	t.Run("should return error when the watch list cannot be read", func(t *testing.T) {
		wlMock := watchlist.NewServiceMock(t)
		twMock := txwatch.NewServiceMock(t)

		expectedError := errors.New("watch list unavailable")
		wlMock.EXPECT().ListAddresses(mock.Anything).Return(nil, expectedError).Once()

		app := &cli.Command{
			Commands: []*cli.Command{runCycleCommand(wlMock, twMock)},
		}

		err := app.Run(t.Context(), []string{"test", "run"})
		assert.ErrorIs(t, err, expectedError)
	})

	t.Run("should return error when the cycle fails fatally", func(t *testing.T) {
		wlMock := watchlist.NewServiceMock(t)
		twMock := txwatch.NewServiceMock(t)

		wlMock.EXPECT().ListAddresses(mock.Anything).Return([]string{"0xAAA"}, nil).Once()
		twMock.EXPECT().RunCycle(mock.Anything, []string{"0xAAA"}).
			Return(txwatch.CycleReport{}, txwatch.ErrCorruptLedger).
			Once()

		app := &cli.Command{
			Commands: []*cli.Command{runCycleCommand(wlMock, twMock)},
		}

		err := app.Run(t.Context(), []string{"test", "run"})
		assert.ErrorIs(t, err, txwatch.ErrCorruptLedger)
	})
}
