package models

import (
	"database/sql"
	"time"
)

// Status is the lifecycle state of a withdrawal request.
type Status string

// Withdrawal statuses
const (
	StatusPending                 Status = "pending"
	StatusProcessing              Status = "processing"
	StatusCompleted               Status = "completed"
	StatusFailed                  Status = "failed"
	StatusPendingConfirmation     Status = "pending_confirmation"
	StatusFailedNetworkCongestion Status = "failed_network_congestion"
)

// transitions lists every allowed edge of the withdrawal state machine.
var transitions = map[Status][]Status{
	StatusPending:                 {StatusProcessing, StatusFailed, StatusFailedNetworkCongestion},
	StatusProcessing:              {StatusCompleted, StatusFailed, StatusPendingConfirmation},
	StatusPendingConfirmation:     {StatusCompleted, StatusFailed},
	StatusFailed:                  {StatusPending},
	StatusFailedNetworkCongestion: {StatusPending},
}

// CanTransition reports whether a record may move from one status to another.
func CanTransition(from, to Status) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no automatic transition leaves the status.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed || s == StatusFailedNetworkCongestion
}

// IsRetryable reports whether a client resubmission may restart the pipeline.
func (s Status) IsRetryable() bool {
	return s == StatusFailed || s == StatusFailedNetworkCongestion
}

// WithdrawalDB represents a withdrawal row in the database
type WithdrawalDB struct {
	RequestID        int64          `json:"request_id" db:"request_id"`               // Client-supplied request identifier
	UserID           int64          `json:"user_id" db:"user_id"`                     // Owner reference
	Amount           string         `json:"amount" db:"amount"`                       // Exact decimal amount in token units
	RecipientAddress string         `json:"recipient_address" db:"recipient_address"` // Destination wallet
	TokenAddress     string         `json:"token_address" db:"token_address"`         // Token mint
	Status           Status         `json:"status" db:"status"`                       // Lifecycle status
	TransactionID    sql.NullString `json:"transaction_id" db:"transaction_id"`       // Ledger reference once submitted
	ErrorMessage     sql.NullString `json:"error_message" db:"error_message"`         // Failure detail
	CreatedAt        time.Time      `json:"created_at" db:"created_at"`               // Creation timestamp
	UpdatedAt        time.Time      `json:"updated_at" db:"updated_at"`               // Last transition timestamp
}

// TransactionRef returns the ledger reference or an empty string.
func (w WithdrawalDB) TransactionRef() string {
	if w.TransactionID.Valid {
		return w.TransactionID.String
	}
	return ""
}

// Transition describes a conditional status change of a single record.
type Transition struct {
	RequestID      int64
	From           []Status
	To             Status
	TransactionRef *string // nil keeps the stored reference
	ErrorMessage   *string // nil clears the stored message
	At             time.Time
}
