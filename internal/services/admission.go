package services

import (
	"context"
	"time"

	"github.com/sbilibin2017/gw-token-withdrawal/internal/models"
	"go.uber.org/zap"
)

// Decision is the admission verdict for a request.
type Decision int

// Admission decisions
const (
	DecisionProceed  Decision = iota // run preflight and submission
	DecisionCached                   // already completed, return the stored reference
	DecisionInFlight                 // already submitted, report the live outcome
)

// Admission is the result of admitting a withdrawal request.
type Admission struct {
	Decision    Decision
	Record      *models.WithdrawalDB
	LiveOutcome models.Outcome // set for DecisionInFlight when the ledger answered
}

// OutcomeReader reports the ledger outcome of a submitted transaction.
type OutcomeReader interface {
	TransactionOutcome(ctx context.Context, ref string) (models.Outcome, error)
}

// AdmissionController decides whether a request proceeds, is served from
// the stored record, or is rejected as a duplicate.
type AdmissionController struct {
	store  WithdrawalStore
	ledger OutcomeReader
	log    *zap.SugaredLogger
	now    func() time.Time
}

// NewAdmissionController creates a new admission controller.
func NewAdmissionController(store WithdrawalStore, ledger OutcomeReader, log *zap.SugaredLogger) *AdmissionController {
	return &AdmissionController{store: store, ledger: ledger, log: log, now: utcNow}
}

// Admit records a new request as pending, or resolves it against the existing record.
func (a *AdmissionController) Admit(ctx context.Context, req models.WithdrawRequest) (Admission, error) {
	now := a.now()
	rec := &models.WithdrawalDB{
		RequestID:        req.RequestID,
		UserID:           req.UserID,
		Amount:           req.Amount,
		RecipientAddress: req.RecipientAddress,
		TokenAddress:     req.TokenAddress,
		Status:           models.StatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	created, err := a.store.Create(ctx, rec)
	if err != nil {
		a.log.Errorw("failed to create withdrawal record", "request_id", req.RequestID, "error", err)
		return Admission{}, err
	}
	if created {
		a.log.Infow("withdrawal request admitted", "request_id", req.RequestID, "user_id", req.UserID, "amount", req.Amount)
		return Admission{Decision: DecisionProceed, Record: rec}, nil
	}

	existing, err := a.store.GetByRequestID(ctx, req.RequestID)
	if err != nil {
		a.log.Errorw("failed to load withdrawal record", "request_id", req.RequestID, "error", err)
		return Admission{}, err
	}
	if existing == nil {
		// lost a race with nothing to show for it; the caller may retry
		return Admission{}, ErrDuplicateRequest
	}

	switch {
	case existing.Status == models.StatusCompleted:
		return Admission{Decision: DecisionCached, Record: existing}, nil

	case existing.Status == models.StatusProcessing && existing.TransactionID.Valid:
		adm := Admission{Decision: DecisionInFlight, Record: existing}
		outcome, err := a.ledger.TransactionOutcome(ctx, existing.TransactionRef())
		if err != nil {
			a.log.Warnw("live outcome check failed", "request_id", req.RequestID, "transaction_id", existing.TransactionRef(), "error", err)
			return adm, nil
		}
		adm.LiveOutcome = outcome
		return adm, nil

	case existing.Status.IsRetryable():
		a.log.Infow("retrying previously failed withdrawal request", "request_id", req.RequestID, "previous_status", existing.Status)
		ok, err := a.store.Resubmit(ctx, rec)
		if err != nil {
			a.log.Errorw("failed to reset withdrawal record", "request_id", req.RequestID, "error", err)
			return Admission{}, err
		}
		if !ok {
			return Admission{Record: existing}, ErrDuplicateRequest
		}
		rec.CreatedAt = existing.CreatedAt
		return Admission{Decision: DecisionProceed, Record: rec}, nil

	default:
		a.log.Warnw("duplicate withdrawal request rejected", "request_id", req.RequestID, "current_status", existing.Status)
		return Admission{Record: existing}, ErrDuplicateRequest
	}
}

func utcNow() time.Time { return time.Now().UTC() }
