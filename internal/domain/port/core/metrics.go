package core

// Settlement outcomes reported to Metrics
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// Metrics records business counters. Implementations must be safe for concurrent use.
type Metrics interface {
	// RecordSettlement counts one settlement attempt of the given operation
	RecordSettlement(operation, outcome string, elapsed Duration)
	// AddPointsCredited counts points paid out to accounts by source
	AddPointsCredited(source string, points int64)
}
