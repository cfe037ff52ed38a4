package etherscan

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	transporthttp "github.com/gabapcia/addrwatch/internal/pkg/transport/http"
	"github.com/gabapcia/addrwatch/internal/txwatch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient wires a client against the given handler with retries
// effectively disabled.
func newTestClient(t *testing.T, handler http.HandlerFunc) *client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	httpClient := transporthttp.NewClient(
		transporthttp.WithRetryMax(0),
		transporthttp.WithTimeout(time.Second),
	)

	return NewClient(httpClient, srv.URL, "test-key")
}

func TestLatestTransfer(t *testing.T) {
	t.Run("returns the newest transfer", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			assert.Equal(t, "account", q.Get("module"))
			assert.Equal(t, "tokentx", q.Get("action"))
			assert.Equal(t, "0xAAA", q.Get("address"))
			assert.Equal(t, "1", q.Get("offset"))
			assert.Equal(t, "desc", q.Get("sort"))
			assert.Equal(t, "test-key", q.Get("apikey"))

			w.Write([]byte(`{
				"status": "1",
				"message": "OK",
				"result": [{
					"hash": "0x9c82e89b",
					"timeStamp": "1513764636",
					"tokenSymbol": "MKR"
				}]
			}`))
		})

		transfer, err := c.LatestTransfer(t.Context(), "0xAAA")

		require.NoError(t, err)
		assert.Equal(t, "0x9c82e89b", transfer.Hash)
		assert.Equal(t, time.Unix(1513764636, 0).UTC(), transfer.Time)
		assert.Contains(t, string(transfer.Raw), `"tokenSymbol"`)
	})

	t.Run("missing timestamp leaves time zero", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"1","message":"OK","result":[{"hash":"0x111"}]}`))
		})

		transfer, err := c.LatestTransfer(t.Context(), "0xAAA")

		require.NoError(t, err)
		assert.Equal(t, "0x111", transfer.Hash)
		assert.True(t, transfer.Time.IsZero())
	})

	t.Run("address without transfers", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"0","message":"No transactions found","result":[]}`))
		})

		_, err := c.LatestTransfer(t.Context(), "0xAAA")
		assert.ErrorIs(t, err, txwatch.ErrNoTransfers)
	})

	t.Run("success envelope with empty result list", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"1","message":"OK","result":[]}`))
		})

		_, err := c.LatestTransfer(t.Context(), "0xAAA")
		assert.ErrorIs(t, err, txwatch.ErrNoTransfers)
	})

	t.Run("rate limit rejection", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"0","message":"NOTOK","result":"Max rate limit reached"}`))
		})

		_, err := c.LatestTransfer(t.Context(), "0xAAA")

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnexpectedResponse)
		assert.NotErrorIs(t, err, txwatch.ErrNoTransfers)
		assert.Contains(t, err.Error(), "Max rate limit reached")
	})

	t.Run("malformed payload", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"1","message":"OK","result":"not-a-list"}`))
		})

		_, err := c.LatestTransfer(t.Context(), "0xAAA")
		assert.ErrorIs(t, err, ErrUnexpectedResponse)
	})

	t.Run("transfer record without hash", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"1","message":"OK","result":[{"timeStamp":"1513764636"}]}`))
		})

		_, err := c.LatestTransfer(t.Context(), "0xAAA")
		assert.ErrorIs(t, err, ErrUnexpectedResponse)
	})

	t.Run("non-200 http status", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		})

		_, err := c.LatestTransfer(t.Context(), "0xAAA")
		assert.ErrorIs(t, err, ErrUnexpectedResponse)
	})
}
