package txwatch

import "context"

// ChangeEvent describes one observed change: the latest transaction for a
// watched address differs from the ledger's record. Events are transient;
// they are handed to the notifier as they are produced and never persisted.
type ChangeEvent struct {
	Address      string // the watched address
	PreviousHash string // ledger's prior record, empty when the address had none
	NewHash      string // the freshly observed transaction hash
}

// ChangeNotifier delivers change events to an external sink, such as a console
// printer, a webhook, or a bot.
type ChangeNotifier interface {
	// NotifyChange is invoked once per ChangeEvent, in the order events are
	// produced. A notification failure does not roll back the ledger update
	// for that address; delivery is at-least-once across cycles.
	NotifyChange(ctx context.Context, event ChangeEvent) error
}
