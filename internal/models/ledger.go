package models

// Outcome is the ledger's view of a submitted transaction.
type Outcome string

// Transaction outcomes
const (
	OutcomePending   Outcome = "pending"
	OutcomeConfirmed Outcome = "confirmed"
	OutcomeFailed    Outcome = "failed"
)

// PerformanceSample is one network performance sample reported by the ledger.
type PerformanceSample struct {
	NumTransactions           uint64 // Transactions processed during the sample
	NumSuccessfulTransactions uint64 // Transactions that succeeded, zero when unreported
	SuccessReported           bool   // Whether the node reported a success count
	SamplePeriodSecs          uint16 // Length of the sample window
}
