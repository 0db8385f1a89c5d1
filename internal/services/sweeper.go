package services

import (
	"context"
	"time"

	"github.com/sbilibin2017/gw-token-withdrawal/internal/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Per-record sweep statuses besides the terminal withdrawal statuses
const (
	RecheckStillPending = "still_pending"
	RecheckError        = "error"
)

// inFlightStatuses are the statuses the sweeper reconciles.
var inFlightStatuses = []models.Status{models.StatusProcessing, models.StatusPendingConfirmation}

// SweeperConfig tunes the reconciliation sweep.
type SweeperConfig struct {
	StaleAfter  time.Duration // minimum age of a record before it is re-checked
	Concurrency int           // parallel ledger checks per sweep
}

// SweepSummary aggregates one sweep.
type SweepSummary struct {
	Count   int
	Results []models.RecheckResult
}

// Sweeper re-checks stale in-flight withdrawals and settles those the ledger resolved.
type Sweeper struct {
	ledger   OutcomeReader
	store    WithdrawalStore
	notifier OutcomeNotifier
	cfg      SweeperConfig
	log      *zap.SugaredLogger
	now      func() time.Time
}

// NewSweeper creates a new reconciliation sweeper.
func NewSweeper(ledger OutcomeReader, store WithdrawalStore, notifier OutcomeNotifier, cfg SweeperConfig, log *zap.SugaredLogger) *Sweeper {
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	return &Sweeper{ledger: ledger, store: store, notifier: notifier, cfg: cfg, log: log, now: utcNow}
}

// Sweep re-checks every in-flight record older than the staleness threshold.
// A failure on one record is reported in its result and does not stop the others.
func (s *Sweeper) Sweep(ctx context.Context) (SweepSummary, error) {
	cutoff := s.now().Add(-s.cfg.StaleAfter)

	recs, err := s.store.ListStale(ctx, inFlightStatuses, cutoff)
	if err != nil {
		s.log.Errorw("failed to list stale withdrawals", "error", err)
		return SweepSummary{}, err
	}
	if len(recs) == 0 {
		return SweepSummary{}, nil
	}

	results := make([]models.RecheckResult, len(recs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Concurrency)
	for i := range recs {
		g.Go(func() error {
			results[i] = s.Recheck(gctx, recs[i])
			return nil
		})
	}
	_ = g.Wait()

	summary := SweepSummary{Count: len(recs), Results: results}
	s.log.Infow("reconciliation sweep finished", "count", summary.Count, "updated", summary.Updated())
	return summary, nil
}

// Updated counts the records the sweep changed.
func (s SweepSummary) Updated() int {
	n := 0
	for _, r := range s.Results {
		if r.Updated {
			n++
		}
	}
	return n
}

// Recheck queries the ledger for one record and settles a terminal outcome.
func (s *Sweeper) Recheck(ctx context.Context, rec models.WithdrawalDB) models.RecheckResult {
	res := models.RecheckResult{RequestID: rec.RequestID}
	ref := rec.TransactionRef()

	outcome, err := s.ledger.TransactionOutcome(ctx, ref)
	if err != nil {
		s.log.Errorw("failed to re-check withdrawal", "request_id", rec.RequestID, "transaction_id", ref, "error", err)
		res.Status, res.Error = RecheckError, err.Error()
		return res
	}

	var (
		status  models.Status
		message string
	)
	switch outcome {
	case models.OutcomeConfirmed:
		status = models.StatusCompleted
	case models.OutcomeFailed:
		status, message = models.StatusFailed, FailedOnChainMessage
	default:
		res.Status = RecheckStillPending
		return res
	}

	t := models.Transition{
		RequestID: rec.RequestID,
		From:      inFlightStatuses,
		To:        status,
		At:        s.now(),
	}
	if message != "" {
		t.ErrorMessage = &message
	}

	ok, err := s.store.Transition(ctx, t)
	if err != nil {
		s.log.Errorw("failed to persist re-checked outcome", "request_id", rec.RequestID, "status", status, "error", err)
		res.Status, res.Error = RecheckError, err.Error()
		return res
	}

	res.Status = string(status)
	if ok {
		res.Updated = true
		s.log.Infow("stale withdrawal reconciled", "request_id", rec.RequestID, "transaction_id", ref, "status", status)
		s.notifier.Dispatch(notificationFor(rec, status, message))
	}
	return res
}

// Run sweeps every interval until ctx is cancelled.
func (s *Sweeper) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.Sweep(ctx); err != nil {
				s.log.Warnw("periodic sweep failed", "error", err)
			}
		}
	}
}
