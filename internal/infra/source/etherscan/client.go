// Package etherscan implements the txwatch.TransferSource interface on top of
// an Etherscan-compatible blockchain explorer HTTP API.
//
// The client asks for a single token transfer sorted newest-first, which is
// exactly the "latest transfer" the watch cycle diffs against its ledger.
package etherscan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gabapcia/addrwatch/internal/txwatch"

	"github.com/hashicorp/go-retryablehttp"
)

// ErrUnexpectedResponse indicates that the explorer answered with a payload
// that does not match the documented envelope, or with an explicit API error
// such as a rate-limit rejection.
var ErrUnexpectedResponse = errors.New("unexpected explorer response")

// envelope is the explorer's standard response wrapper. Result is kept raw
// because its type depends on the outcome: an array of transfers on success,
// a plain string on API-level errors.
type envelope struct {
	Status  string          `json:"status"`  // "1" on success, "0" otherwise
	Message string          `json:"message"` // "OK" or a short error description
	Result  json.RawMessage `json:"result"`
}

// tokenTransfer holds the two attributes the watcher reads from a transfer
// record. Everything else stays in the raw payload.
type tokenTransfer struct {
	Hash      string `json:"hash"`
	TimeStamp string `json:"timeStamp"` // unix seconds, as a decimal string
}

// client implements txwatch.TransferSource against an Etherscan-compatible API.
type client struct {
	httpClient *retryablehttp.Client
	baseURL    string
	apiKey     string

	// mu keeps at most one request in flight. The explorer rejects concurrent
	// requests per API key, so the limit is enforced here rather than left to
	// the call sites.
	mu sync.Mutex
}

// Compile-time assertion that *client satisfies txwatch.TransferSource.
var _ txwatch.TransferSource = (*client)(nil)

// NewClient creates an explorer client for the given API base URL
// (e.g. "https://api.etherscan.io/api") and API key, using the provided
// retrying HTTP client for transport.
func NewClient(httpClient *retryablehttp.Client, baseURL, apiKey string) *client {
	return &client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

// buildTokenTxURL assembles the query for the newest token transfer of the
// given address: one result per page, sorted descending.
func (c *client) buildTokenTxURL(address string) string {
	params := url.Values{
		"module":  []string{"account"},
		"action":  []string{"tokentx"},
		"address": []string{address},
		"page":    []string{"1"},
		"offset":  []string{"1"},
		"sort":    []string{"desc"},
		"apikey":  []string{c.apiKey},
	}

	return c.baseURL + "?" + params.Encode()
}

// noTransfersMessage is the explorer's message for an address without any
// token transfers. It arrives with status "0", which otherwise signals an
// error, so it is matched explicitly.
const noTransfersMessage = "no transactions found"

// parseEnvelope interprets the explorer envelope and returns the raw transfer
// list on success.
func parseEnvelope(env envelope) ([]json.RawMessage, error) {
	if env.Status != "1" {
		if strings.EqualFold(strings.TrimSpace(env.Message), noTransfersMessage) {
			return nil, txwatch.ErrNoTransfers
		}

		var detail string
		_ = json.Unmarshal(env.Result, &detail)
		return nil, fmt.Errorf("%w: %s: %s", ErrUnexpectedResponse, env.Message, detail)
	}

	var transfers []json.RawMessage
	if err := json.Unmarshal(env.Result, &transfers); err != nil {
		return nil, fmt.Errorf("%w: result is not a transfer list: %v", ErrUnexpectedResponse, err)
	}
	if len(transfers) == 0 {
		return nil, txwatch.ErrNoTransfers
	}

	return transfers, nil
}

// LatestTransfer fetches the most recent token transfer for the given address.
// It returns txwatch.ErrNoTransfers for an address without transfer history
// and wraps ErrUnexpectedResponse for API-level errors, including rate-limit
// rejections.
func (c *client) LatestTransfer(ctx context.Context, address string) (txwatch.Transfer, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.buildTokenTxURL(address), nil)
	if err != nil {
		return txwatch.Transfer{}, err
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return txwatch.Transfer{}, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return txwatch.Transfer{}, fmt.Errorf("%w: http status %d", ErrUnexpectedResponse, res.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		return txwatch.Transfer{}, fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)
	}

	transfers, err := parseEnvelope(env)
	if err != nil {
		return txwatch.Transfer{}, err
	}

	var latest tokenTransfer
	if err := json.Unmarshal(transfers[0], &latest); err != nil {
		return txwatch.Transfer{}, fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)
	}
	if latest.Hash == "" {
		return txwatch.Transfer{}, fmt.Errorf("%w: transfer record is missing its hash", ErrUnexpectedResponse)
	}

	transfer := txwatch.Transfer{
		Hash: latest.Hash,
		Raw:  transfers[0],
	}

	// The timestamp is optional; an unparseable value leaves Time zero rather
	// than failing the fetch.
	if secs, err := strconv.ParseInt(latest.TimeStamp, 10, 64); err == nil {
		transfer.Time = time.Unix(secs, 0).UTC()
	}

	return transfer, nil
}
