package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sbilibin2017/gw-token-withdrawal/internal/facades"
	"github.com/sbilibin2017/gw-token-withdrawal/internal/models"
	"go.uber.org/zap"
)

// SubmissionCoordinator submits preflight-approved transfers and hands them to the monitor.
type SubmissionCoordinator struct {
	ledger       Ledger
	store        WithdrawalStore
	tracker      TransactionTracker
	recheckDelay time.Duration // wait before re-checking an expired submission
	log          *zap.SugaredLogger
	now          func() time.Time
	sleep        func(ctx context.Context, d time.Duration) error
}

// NewSubmissionCoordinator creates a new submission coordinator.
func NewSubmissionCoordinator(ledger Ledger, store WithdrawalStore, tracker TransactionTracker, recheckDelay time.Duration, log *zap.SugaredLogger) *SubmissionCoordinator {
	return &SubmissionCoordinator{
		ledger:       ledger,
		store:        store,
		tracker:      tracker,
		recheckDelay: recheckDelay,
		log:          log,
		now:          utcNow,
		sleep:        sleepContext,
	}
}

// Submit marks the record processing and sends the transfer. On success the
// stored reference is returned and monitoring continues in the background.
func (s *SubmissionCoordinator) Submit(ctx context.Context, rec *models.WithdrawalDB, transfer Transfer) (string, error) {
	ok, err := s.store.Transition(ctx, models.Transition{
		RequestID: rec.RequestID,
		From:      []models.Status{models.StatusPending},
		To:        models.StatusProcessing,
		At:        s.now(),
	})
	if err != nil {
		s.log.Errorw("failed to mark withdrawal processing", "request_id", rec.RequestID, "error", err)
		return "", err
	}
	if !ok {
		return "", ErrDuplicateRequest
	}
	rec.Status = models.StatusProcessing

	ref, err := s.ledger.SubmitTransfer(ctx, rec.RecipientAddress, transfer.BaseUnits, transfer.Decimals)
	if err != nil {
		var expired *facades.ExpiredError
		if errors.As(err, &expired) && expired.Signature != "" && s.landedAfterExpiry(ctx, rec, expired.Signature) {
			ref, err = expired.Signature, nil
		}
	}
	if err != nil {
		return "", s.fail(ctx, rec, err)
	}

	if err := s.accept(ctx, rec, ref); err != nil {
		return "", err
	}
	return ref, nil
}

// landedAfterExpiry performs the single deferred re-check of an expired submission.
func (s *SubmissionCoordinator) landedAfterExpiry(ctx context.Context, rec *models.WithdrawalDB, ref string) bool {
	s.log.Warnw("transaction expired, checking whether it landed", "request_id", rec.RequestID, "transaction_id", ref)

	if err := s.sleep(ctx, s.recheckDelay); err != nil {
		return false
	}

	outcome, err := s.ledger.TransactionOutcome(ctx, ref)
	if err != nil {
		s.log.Errorw("failed to re-check expired transaction", "request_id", rec.RequestID, "transaction_id", ref, "error", err)
		return false
	}
	if outcome != models.OutcomeConfirmed {
		return false
	}

	s.log.Infow("expired transaction landed on chain", "request_id", rec.RequestID, "transaction_id", ref)
	return true
}

// accept stores the reference and starts the monitor. A store error still
// starts the monitor, which writes the reference with every transition.
func (s *SubmissionCoordinator) accept(ctx context.Context, rec *models.WithdrawalDB, ref string) error {
	assigned, err := s.store.AssignTransactionRef(ctx, rec.RequestID, ref, s.now())
	if err != nil {
		s.log.Errorw("failed to store transaction reference", "request_id", rec.RequestID, "transaction_id", ref, "error", err)
	} else if !assigned {
		s.log.Errorw("transaction reference not stored, record moved on", "request_id", rec.RequestID, "transaction_id", ref)
		return coded(CodeTransactionError, fmt.Errorf("%w: transaction %s submitted but record is no longer processing", ErrRefNotStored, ref))
	}

	rec.TransactionID.String, rec.TransactionID.Valid = ref, true
	s.log.Infow("withdrawal submitted", "request_id", rec.RequestID, "transaction_id", ref)
	s.tracker.Start(*rec)
	return nil
}

// fail persists processing -> failed and classifies cause.
func (s *SubmissionCoordinator) fail(ctx context.Context, rec *models.WithdrawalDB, cause error) error {
	code := submissionCode(cause)
	s.log.Errorw("withdrawal submission failed", "request_id", rec.RequestID, "error_code", code, "error", cause)

	msg := cause.Error()
	if _, err := s.store.Transition(ctx, models.Transition{
		RequestID:    rec.RequestID,
		From:         []models.Status{models.StatusProcessing},
		To:           models.StatusFailed,
		ErrorMessage: &msg,
		At:           s.now(),
	}); err != nil {
		s.log.Errorw("failed to persist submission failure", "request_id", rec.RequestID, "error", err)
	}
	rec.Status = models.StatusFailed

	return coded(code, cause)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
