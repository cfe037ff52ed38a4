package txwatch

// FetchFailure records one address that could not be fetched during a cycle.
// The address's ledger entry is left untouched; the same address is retried
// naturally on the next cycle.
type FetchFailure struct {
	Address string
	Err     error
}

// CycleReport summarizes one completed (or partially completed) watch cycle.
//
// Events preserve the iteration order of the watch list. Failures contains
// per-address fetch failures that did not abort the cycle.
type CycleReport struct {
	CycleID  string         // correlation ID shared by all log lines of the cycle
	Events   []ChangeEvent  // changes detected, in watch-list order
	Failures []FetchFailure // addresses skipped this cycle
}
