package watchlist

import (
	"errors"
	"testing"

	"github.com/gabapcia/addrwatch/internal/pkg/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildWatchedAddress(t *testing.T) {
	t.Run("should build and validate a correct address", func(t *testing.T) {
		addr, err := buildWatchedAddress("0x123")
		require.NoError(t, err)
		assert.Equal(t, "0x123", addr.Address)
	})

	t.Run("should return a validation error if address is missing", func(t *testing.T) {
		_, err := buildWatchedAddress("")
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
	})
}

func TestService_StartWatching(t *testing.T) {
	t.Run("should register an address for watching", func(t *testing.T) {
		ctx := t.Context()
		storage := NewAddressStorageMock(t)
		s := &service{addressStorage: storage}

		storage.EXPECT().AddAddress(ctx, WatchedAddress{Address: "0x123"}).Return(nil).Once()

		err := s.StartWatching(ctx, "0x123")
		require.NoError(t, err)
	})

	t.Run("should return a validation error for an empty address", func(t *testing.T) {
		ctx := t.Context()
		storage := NewAddressStorageMock(t)
		s := &service{addressStorage: storage}

		err := s.StartWatching(ctx, "")
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
	})

	t.Run("should return an error if storage fails", func(t *testing.T) {
		ctx := t.Context()
		storage := NewAddressStorageMock(t)
		s := &service{addressStorage: storage}

		errStorage := errors.New("storage unavailable")
		storage.EXPECT().AddAddress(ctx, WatchedAddress{Address: "0x123"}).Return(errStorage).Once()

		err := s.StartWatching(ctx, "0x123")
		require.Error(t, err)
		assert.ErrorIs(t, err, errStorage)
	})
}

func TestService_StopWatching(t *testing.T) {
	t.Run("should remove an address from the watch list", func(t *testing.T) {
		ctx := t.Context()
		storage := NewAddressStorageMock(t)
		s := &service{addressStorage: storage}

		storage.EXPECT().RemoveAddress(ctx, WatchedAddress{Address: "0x123"}).Return(nil).Once()

		err := s.StopWatching(ctx, "0x123")
		require.NoError(t, err)
	})

	t.Run("should return a validation error for an empty address", func(t *testing.T) {
		ctx := t.Context()
		storage := NewAddressStorageMock(t)
		s := &service{addressStorage: storage}

		err := s.StopWatching(ctx, "")
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
	})
}

func TestService_ListAddresses(t *testing.T) {
	t.Run("should return the watch list in order", func(t *testing.T) {
		ctx := t.Context()
		storage := NewAddressStorageMock(t)
		s := &service{addressStorage: storage}

		storage.EXPECT().ListAddresses(ctx).Return([]string{"0xAAA", "0xBBB"}, nil).Once()

		addresses, err := s.ListAddresses(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"0xAAA", "0xBBB"}, addresses)
	})

	t.Run("should propagate storage errors", func(t *testing.T) {
		ctx := t.Context()
		storage := NewAddressStorageMock(t)
		s := &service{addressStorage: storage}

		errStorage := errors.New("storage unavailable")
		storage.EXPECT().ListAddresses(ctx).Return(nil, errStorage).Once()

		_, err := s.ListAddresses(ctx)
		require.Error(t, err)
		assert.ErrorIs(t, err, errStorage)
	})
}
