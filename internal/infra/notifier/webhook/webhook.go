// Package webhook implements the txwatch.ChangeNotifier interface by posting
// each change event as a JSON document to a configured HTTP endpoint.
package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gabapcia/addrwatch/internal/txwatch"

	"github.com/hashicorp/go-retryablehttp"
)

// payload is the JSON body posted for each change event.
type payload struct {
	Address      string `json:"address"`
	PreviousHash string `json:"previous_hash,omitempty"`
	NewHash      string `json:"new_hash"`
}

type notifier struct {
	httpClient *retryablehttp.Client
	endpoint   string
}

// Compile-time assertion that *notifier satisfies txwatch.ChangeNotifier.
var _ txwatch.ChangeNotifier = (*notifier)(nil)

// New creates a webhook notifier posting to the given endpoint using the
// provided retrying HTTP client.
func New(httpClient *retryablehttp.Client, endpoint string) *notifier {
	return &notifier{
		httpClient: httpClient,
		endpoint:   endpoint,
	}
}

// NotifyChange posts the event to the configured endpoint. Any response
// outside the 2xx range is an error.
func (n *notifier) NotifyChange(ctx context.Context, event txwatch.ChangeEvent) error {
	body, err := json.Marshal(payload{
		Address:      event.Address,
		PreviousHash: event.PreviousHash,
		NewHash:      event.NewHash,
	})
	if err != nil {
		return err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := n.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("webhook returned http status %d", res.StatusCode)
	}

	return nil
}
