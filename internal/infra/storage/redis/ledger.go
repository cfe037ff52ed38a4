package redis

import (
	"context"
	"fmt"

	"github.com/gabapcia/addrwatch/internal/txwatch"
)

// ledgerKey is the Redis hash holding the ledger: one field per watched
// address, the field value being the last-known transaction hash.
const ledgerKey = "addrwatch:ledger"

// Load implements txwatch.LedgerStorage by reading the full ledger hash.
// A missing key yields an empty ledger. Redis stores the mapping natively,
// so there is no corrupt-parse case equivalent to the file backend.
func (c *client) Load(ctx context.Context) (txwatch.Ledger, error) {
	entries, err := c.conn.HGetAll(ctx, ledgerKey).Result()
	if err != nil {
		return nil, err
	}

	ledger := make(txwatch.Ledger, len(entries))
	for address, hash := range entries {
		ledger.Upsert(address, hash)
	}

	return ledger, nil
}

// Save implements txwatch.LedgerStorage by replacing the ledger hash with the
// given state. The delete and rewrite run in one transactional pipeline, so
// readers never observe a partially-written ledger. Failures wrap
// txwatch.ErrLedgerPersist.
func (c *client) Save(ctx context.Context, ledger txwatch.Ledger) error {
	pipe := c.conn.TxPipeline()

	pipe.Del(ctx, ledgerKey)
	if len(ledger) > 0 {
		fields := make(map[string]any, len(ledger))
		for address, hash := range ledger {
			fields[address] = hash
		}
		pipe.HSet(ctx, ledgerKey, fields)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%w: %v", txwatch.ErrLedgerPersist, err)
	}

	return nil
}

// Compile-time assertion to ensure *client satisfies txwatch.LedgerStorage.
var _ txwatch.LedgerStorage = new(client)
