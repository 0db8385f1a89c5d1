package services

//go:generate mockgen -source=interfaces.go -destination=mocks_test.go -package=services

import (
	"context"
	"time"

	"github.com/sbilibin2017/gw-token-withdrawal/internal/models"
	"github.com/segmentio/kafka-go"
)

// WithdrawalStore defines durable access to withdrawal records.
type WithdrawalStore interface {
	Create(ctx context.Context, w *models.WithdrawalDB) (bool, error)                                         // Inserts a record unless the request id exists
	GetByRequestID(ctx context.Context, requestID int64) (*models.WithdrawalDB, error)                        // Returns a record or nil
	Transition(ctx context.Context, t models.Transition) (bool, error)                                        // Applies a conditional status change
	Resubmit(ctx context.Context, w *models.WithdrawalDB) (bool, error)                                       // Resets a failed record to pending
	AssignTransactionRef(ctx context.Context, requestID int64, ref string, at time.Time) (bool, error)        // Stores the ledger reference of a processing record
	ListStale(ctx context.Context, statuses []models.Status, before time.Time) ([]models.WithdrawalDB, error) // Returns in-flight records not updated since before
}

// RequestLocker serializes work on a single request id across instances.
type RequestLocker interface {
	Acquire(ctx context.Context, requestID int64) (string, bool, error) // Takes the lock, returning its token
	Release(ctx context.Context, requestID int64, token string) error   // Frees the lock held by token
}

// Ledger defines the ledger capabilities used by the withdrawal pipeline.
type Ledger interface {
	NativeBalance(ctx context.Context) (uint64, error)                                                   // Sender lamports
	TokenBalance(ctx context.Context) (uint64, error)                                                    // Sender token base units
	TokenDecimals(ctx context.Context) (uint8, error)                                                    // Mint decimal precision
	SubmitTransfer(ctx context.Context, recipient string, amount uint64, decimals uint8) (string, error) // Sends a transfer, returning its reference
	TransactionOutcome(ctx context.Context, ref string) (models.Outcome, error)                          // Pending, confirmed or failed
	RecentPerformance(ctx context.Context) ([]models.PerformanceSample, error)                           // Network performance samples
}

// WebhookPoster delivers a single callback payload.
type WebhookPoster interface {
	Post(ctx context.Context, payload models.WebhookPayload) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// OutcomeNotifier hands terminal outcomes to asynchronous delivery.
type OutcomeNotifier interface {
	Dispatch(n models.Notification)
}

// TransactionTracker follows a submitted transaction to a terminal state.
type TransactionTracker interface {
	Start(rec models.WithdrawalDB)
}

// StaleRechecker re-evaluates in-flight records against the ledger.
type StaleRechecker interface {
	Sweep(ctx context.Context) (SweepSummary, error)
	Recheck(ctx context.Context, rec models.WithdrawalDB) models.RecheckResult
}
