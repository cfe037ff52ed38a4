// Package txwatch implements the watch cycle: one sequential pass over a list
// of watched addresses that fetches each address's latest token transfer,
// diffs it against the persisted ledger of last-known hashes, notifies a sink
// about every change, and commits the updated ledger back to storage.
package txwatch

import (
	"context"
	"errors"

	"github.com/gabapcia/addrwatch/internal/pkg/logger"
	"github.com/gabapcia/addrwatch/internal/pkg/resilience/retry"

	"github.com/google/uuid"
)

// Service runs watch cycles over a caller-provided address list.
type Service interface {
	// RunCycle executes one polling pass over the given addresses, in order.
	//
	// Per-address fetch failures are recorded in the report and do not abort
	// the pass. The returned error is non-nil only for cycle-fatal
	// conditions: the persisted ledger could not be loaded (ErrCorruptLedger),
	// the updated ledger could not be saved (ErrLedgerPersist), or the
	// context was canceled mid-pass. Events already delivered before a fatal
	// error are reported in the CycleReport alongside it.
	RunCycle(ctx context.Context, addresses []string) (CycleReport, error)

	// Seed adopts the current latest transaction of every given address into
	// the ledger without emitting change events, so that a following RunCycle
	// reports only activity that happens after the seed. Fetch failures are
	// reported the same way as in RunCycle.
	Seed(ctx context.Context, addresses []string) (CycleReport, error)
}

// service is the concrete Service implementation.
type service struct {
	source        TransferSource
	ledgerStorage LedgerStorage
	notifier      ChangeNotifier

	retry            retry.Retry // optional per-fetch retry, nil disables
	incrementalFlush bool        // save the ledger after every changed address
}

// Compile-time check that *service implements the Service interface.
var _ Service = (*service)(nil)

// config holds the optional settings applied by New.
type config struct {
	retry            retry.Retry
	incrementalFlush bool
}

// Option configures the service created by New.
type Option func(*config)

// WithRetry enables per-address fetch retries. Retries run inline, so the
// one-request-in-flight discipline is preserved. ErrNoTransfers is a valid
// result and is never retried.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// WithIncrementalFlush causes the ledger to be saved after every address whose
// entry changed, instead of once at the end of the pass. A crash then loses at
// most one unflushed address; a flush failure stops the pass with everything
// before it already persisted.
func WithIncrementalFlush() Option {
	return func(c *config) {
		c.incrementalFlush = true
	}
}

// New creates a watch-cycle service from its three collaborators: the external
// transfer source, the ledger storage backend, and the change notification sink.
func New(source TransferSource, ledgerStorage LedgerStorage, notifier ChangeNotifier, opts ...Option) *service {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		source:           source,
		ledgerStorage:    ledgerStorage,
		notifier:         notifier,
		retry:            cfg.retry,
		incrementalFlush: cfg.incrementalFlush,
	}
}

// fetchLatestTransfer fetches the latest transfer for one address, applying
// the configured retry policy when one is set. ErrNoTransfers is passed
// through without retrying: it is a definitive answer, not a transient fault.
func (s *service) fetchLatestTransfer(ctx context.Context, address string) (Transfer, error) {
	if s.retry == nil {
		return s.source.LatestTransfer(ctx, address)
	}

	var (
		transfer Transfer
		noTxs    bool
	)
	err := s.retry.Execute(ctx, func() error {
		t, err := s.source.LatestTransfer(ctx, address)
		if errors.Is(err, ErrNoTransfers) {
			noTxs = true
			return nil
		}
		if err != nil {
			return err
		}

		transfer, noTxs = t, false
		return nil
	})
	if err != nil {
		return Transfer{}, err
	}
	if noTxs {
		return Transfer{}, ErrNoTransfers
	}

	return transfer, nil
}

// runPass is the shared core of RunCycle and Seed. It iterates the addresses
// strictly in order with at most one fetch in flight, diffs each fetched hash
// against the ledger, and mutates the ledger in place. When notify is false,
// changes are adopted silently and no events are emitted.
//
// It returns early only when an incremental flush fails or the context is
// canceled; everything processed up to that point is already reflected in the
// report and, where possible, in storage.
func (s *service) runPass(ctx context.Context, ledger Ledger, addresses []string, report *CycleReport, notify bool) error {
	for _, address := range addresses {
		if err := ctx.Err(); err != nil {
			return err
		}

		transfer, err := s.fetchLatestTransfer(ctx, address)
		if errors.Is(err, ErrNoTransfers) {
			logger.Debug(ctx, "address has no token transfers yet",
				"cycle.id", report.CycleID,
				"address", address,
			)
			continue
		}
		if err != nil {
			logger.Warn(ctx, "failed to fetch latest transfer",
				"cycle.id", report.CycleID,
				"address", address,
				"error", err,
			)
			report.Failures = append(report.Failures, FetchFailure{Address: address, Err: err})
			continue
		}

		previousHash, seen := ledger.Get(address)
		if seen && previousHash == transfer.Hash {
			continue
		}

		ledger.Upsert(address, transfer.Hash)

		if notify {
			event := ChangeEvent{
				Address:      address,
				PreviousHash: previousHash,
				NewHash:      transfer.Hash,
			}
			report.Events = append(report.Events, event)

			if err := s.notifier.NotifyChange(ctx, event); err != nil {
				logger.Error(ctx, "failed to deliver change notification",
					"cycle.id", report.CycleID,
					"address", address,
					"tx.hash", transfer.Hash,
					"error", err,
				)
			}
		}

		if s.incrementalFlush {
			if err := s.ledgerStorage.Save(ctx, ledger); err != nil {
				return err
			}
		}
	}

	return nil
}

// run loads the ledger, executes one pass, and commits the result.
func (s *service) run(ctx context.Context, addresses []string, notify bool) (CycleReport, error) {
	report := CycleReport{CycleID: uuid.NewString()}

	ledger, err := s.ledgerStorage.Load(ctx)
	if err != nil {
		return report, err
	}

	logger.Info(ctx, "starting watch cycle",
		"cycle.id", report.CycleID,
		"addresses", len(addresses),
		"ledger.entries", len(ledger),
		"notify", notify,
	)

	passErr := s.runPass(ctx, ledger, addresses, &report, notify)

	// With incremental flush every mutation is already durable; otherwise the
	// whole pass commits here, including a partial pass cut short by passErr.
	if !s.incrementalFlush {
		if err := s.ledgerStorage.Save(ctx, ledger); err != nil {
			return report, errors.Join(passErr, err)
		}
	}

	logger.Info(ctx, "watch cycle finished",
		"cycle.id", report.CycleID,
		"events", len(report.Events),
		"failures", len(report.Failures),
	)

	return report, passErr
}

// RunCycle executes one polling pass over the given addresses. See Service.
func (s *service) RunCycle(ctx context.Context, addresses []string) (CycleReport, error) {
	return s.run(ctx, addresses, true)
}

// Seed adopts current latest hashes without emitting events. See Service.
func (s *service) Seed(ctx context.Context, addresses []string) (CycleReport, error) {
	return s.run(ctx, addresses, false)
}
