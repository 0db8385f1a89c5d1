package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-token-withdrawal/internal/models"
	"go.uber.org/zap"
)

// ErrInvalidTransition is returned when a transition is not an edge of the state machine.
var ErrInvalidTransition = errors.New("invalid status transition")

// WithdrawalSchema creates the withdrawals table and its sweep index.
const WithdrawalSchema = `
CREATE TABLE IF NOT EXISTS withdrawals (
	request_id        BIGINT PRIMARY KEY,
	user_id           BIGINT NOT NULL,
	amount            TEXT NOT NULL,
	recipient_address TEXT NOT NULL,
	token_address     TEXT NOT NULL,
	status            TEXT NOT NULL DEFAULT 'pending',
	transaction_id    TEXT UNIQUE,
	error_message     TEXT,
	created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS withdrawals_status_updated_at_idx ON withdrawals (status, updated_at);
`

const withdrawalColumns = `request_id, user_id, amount, recipient_address, token_address,
	status, transaction_id, error_message, created_at, updated_at`

// Migrate applies the withdrawals schema.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, WithdrawalSchema)
	return err
}

// WithdrawalRepository is the durable request ledger keyed by request id.
type WithdrawalRepository struct {
	db  *sqlx.DB
	log *zap.SugaredLogger
}

// NewWithdrawalRepository creates a repository over the given database.
func NewWithdrawalRepository(db *sqlx.DB, log *zap.SugaredLogger) *WithdrawalRepository {
	return &WithdrawalRepository{db: db, log: log}
}

// Create inserts the record unless one with the same request id exists.
// It reports whether this call created the record.
func (r *WithdrawalRepository) Create(ctx context.Context, w *models.WithdrawalDB) (bool, error) {
	const query = `
		INSERT INTO withdrawals (request_id, user_id, amount, recipient_address, token_address, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (request_id) DO NOTHING
		RETURNING request_id
	`

	var id int64
	err := r.db.GetContext(ctx, &id, query,
		w.RequestID, w.UserID, w.Amount, w.RecipientAddress, w.TokenAddress,
		w.Status, w.CreatedAt, w.UpdatedAt,
	)
	r.logQuery(query, []any{w.RequestID, w.UserID, w.Amount, w.Status}, err)

	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// GetByRequestID returns the record or nil when it does not exist.
func (r *WithdrawalRepository) GetByRequestID(ctx context.Context, requestID int64) (*models.WithdrawalDB, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawals WHERE request_id = $1`

	var w models.WithdrawalDB
	err := r.db.GetContext(ctx, &w, query, requestID)
	r.logQuery(query, []any{requestID}, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// Transition moves a record to t.To if its current status is one of t.From.
// It reports whether the update applied.
func (r *WithdrawalRepository) Transition(ctx context.Context, t models.Transition) (bool, error) {
	if len(t.From) == 0 {
		return false, fmt.Errorf("%w: no source status", ErrInvalidTransition)
	}
	for _, from := range t.From {
		if !models.CanTransition(from, t.To) {
			return false, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, t.To)
		}
	}

	query, args, err := sqlx.In(`
		UPDATE withdrawals
		SET status = ?, transaction_id = COALESCE(?, transaction_id), error_message = ?, updated_at = ?
		WHERE request_id = ? AND status IN (?)
	`, string(t.To), t.TransactionRef, t.ErrorMessage, t.At, t.RequestID, statusStrings(t.From))
	if err != nil {
		return false, err
	}
	query = r.db.Rebind(query)

	return r.execAffected(ctx, query, args)
}

// Resubmit resets a failed record to pending with the new payload for a client retry.
// The previous ledger reference is cleared. It reports whether the update applied.
func (r *WithdrawalRepository) Resubmit(ctx context.Context, w *models.WithdrawalDB) (bool, error) {
	const query = `
		UPDATE withdrawals
		SET user_id = $1, amount = $2, recipient_address = $3, token_address = $4,
			status = $5, transaction_id = NULL, error_message = NULL, updated_at = $6
		WHERE request_id = $7 AND status IN ($8, $9)
	`

	args := []any{
		w.UserID, w.Amount, w.RecipientAddress, w.TokenAddress,
		string(models.StatusPending), w.UpdatedAt, w.RequestID,
		string(models.StatusFailed), string(models.StatusFailedNetworkCongestion),
	}
	return r.execAffected(ctx, query, args)
}

// AssignTransactionRef stores the ledger reference of a processing record.
// It reports whether the update applied.
func (r *WithdrawalRepository) AssignTransactionRef(ctx context.Context, requestID int64, ref string, at time.Time) (bool, error) {
	const query = `
		UPDATE withdrawals
		SET transaction_id = $1, updated_at = $2
		WHERE request_id = $3 AND status = $4
	`

	return r.execAffected(ctx, query, []any{ref, at, requestID, string(models.StatusProcessing)})
}

// ListStale returns records in one of the statuses, with a transaction reference,
// last updated before the given time.
func (r *WithdrawalRepository) ListStale(ctx context.Context, statuses []models.Status, before time.Time) ([]models.WithdrawalDB, error) {
	query, args, err := sqlx.In(`
		SELECT `+withdrawalColumns+`
		FROM withdrawals
		WHERE status IN (?) AND transaction_id IS NOT NULL AND updated_at < ?
		ORDER BY updated_at
	`, statusStrings(statuses), before)
	if err != nil {
		return nil, err
	}
	query = r.db.Rebind(query)

	var ws []models.WithdrawalDB
	err = r.db.SelectContext(ctx, &ws, query, args...)
	r.logQuery(query, args, err)

	return ws, err
}

func (r *WithdrawalRepository) execAffected(ctx context.Context, query string, args []any) (bool, error) {
	res, err := r.db.ExecContext(ctx, query, args...)
	r.logQuery(query, args, err)
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// logQuery logs the query on a single line with its args and error.
func (r *WithdrawalRepository) logQuery(query string, args []any, err error) {
	r.log.Debugw("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)
}

func statusStrings(statuses []models.Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
