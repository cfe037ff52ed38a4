package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/gabapcia/addrwatch/internal/watchlist"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/urfave/cli/v3"
)

func TestStartWatchingAddressCommand(t *testing.T) {
	t.Run("should create command with correct metadata", func(t *testing.T) {
		mockService := watchlist.NewServiceMock(t)

		cmd := startWatchingAddressCommand(mockService)

		assert.Equal(t, "watch", cmd.Name)
		assert.Len(t, cmd.Flags, 1)

		addressFlag := cmd.Flags[0].(*cli.StringFlag)
		assert.Equal(t, "address", addressFlag.Name)
		assert.True(t, addressFlag.Required)
	})

	t.Run("should execute action successfully with valid flags", func(t *testing.T) {
		mockService := watchlist.NewServiceMock(t)
		address := "0x1234567890abcdef1234567890abcdef12345678"

		mockService.EXPECT().StartWatching(mock.Anything, address).Return(nil).Once()

		app := &cli.Command{
			Commands: []*cli.Command{startWatchingAddressCommand(mockService)},
		}

		err := app.Run(t.Context(), []string{"test", "watch", "--address", address})
		assert.NoError(t, err)
	})

	t.Run("should return error when service fails", func(t *testing.T) {
		mockService := watchlist.NewServiceMock(t)
		expectedError := errors.New("service error")

		mockService.EXPECT().StartWatching(mock.Anything, "0x123").Return(expectedError).Once()

		app := &cli.Command{
			Commands: []*cli.Command{startWatchingAddressCommand(mockService)},
		}

		err := app.Run(t.Context(), []string{"test", "watch", "--address", "0x123"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "service error")
	})

	t.Run("should fail when address flag is missing", func(t *testing.T) {
		mockService := watchlist.NewServiceMock(t)

		app := &cli.Command{
			Commands: []*cli.Command{startWatchingAddressCommand(mockService)},
		}

		err := app.Run(t.Context(), []string{"test", "watch"})
		assert.Error(t, err)
	})
}

func TestStopWatchingAddressCommand(t *testing.T) {
	t.Run("should execute action successfully with valid flags", func(t *testing.T) {
		mockService := watchlist.NewServiceMock(t)
		address := "0x1234567890abcdef1234567890abcdef12345678"

		mockService.EXPECT().StopWatching(mock.Anything, address).Return(nil).Once()

		app := &cli.Command{
			Commands: []*cli.Command{stopWatchingAddressCommand(mockService)},
		}

		err := app.Run(t.Context(), []string{"test", "unwatch", "--address", address})
		assert.NoError(t, err)
	})
}

func TestListAddressesCommand(t *testing.T) {
	t.Run("should print one address per line", func(t *testing.T) {
		mockService := watchlist.NewServiceMock(t)

		mockService.EXPECT().ListAddresses(mock.Anything).Return([]string{"0xAAA", "0xBBB"}, nil).Once()

		var out bytes.Buffer
		app := &cli.Command{
			Writer:   &out,
			Commands: []*cli.Command{listAddressesCommand(mockService)},
		}

		err := app.Run(t.Context(), []string{"test", "addresses"})
		assert.NoError(t, err)
		assert.Equal(t, "0xAAA\n0xBBB\n", out.String())
	})

	t.Run("should propagate storage errors", func(t *testing.T) {
		mockService := watchlist.NewServiceMock(t)

		expectedError := errors.New("storage unavailable")
		mockService.EXPECT().ListAddresses(mock.Anything).Return(nil, expectedError).Once()

		app := &cli.Command{
			Commands: []*cli.Command{listAddressesCommand(mockService)},
		}

		err := app.Run(t.Context(), []string{"test", "addresses"})
		assert.Error(t, err)
	})
}
