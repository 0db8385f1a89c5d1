package services

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sbilibin2017/gw-token-withdrawal/internal/models"
	"go.uber.org/zap"
)

// FailedOnChainMessage is stored when the ledger reports a failed transaction.
const FailedOnChainMessage = "transaction failed on chain"

// MonitorConfig bounds the monitor's polling loop.
type MonitorConfig struct {
	Delay       time.Duration // wait before each attempt
	MaxAttempts int           // attempt budget
}

// MonitorResult describes how a monitor run ended.
type MonitorResult struct {
	RequestID int64
	Attempts  int
	Status    models.Status // status after the run; processing when interrupted
}

// Monitor polls the ledger for a submitted transaction until it reaches a
// terminal outcome or the attempt budget is spent.
type Monitor struct {
	ledger   OutcomeReader
	store    WithdrawalStore
	notifier OutcomeNotifier
	cfg      MonitorConfig
	log      *zap.SugaredLogger
	now      func() time.Time
	sleep    func(ctx context.Context, d time.Duration) error

	wg       sync.WaitGroup
	inFlight atomic.Int64
}

// NewMonitor creates a new transaction monitor.
func NewMonitor(ledger OutcomeReader, store WithdrawalStore, notifier OutcomeNotifier, cfg MonitorConfig, log *zap.SugaredLogger) *Monitor {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &Monitor{
		ledger:   ledger,
		store:    store,
		notifier: notifier,
		cfg:      cfg,
		log:      log,
		now:      utcNow,
		sleep:    sleepContext,
	}
}

// Start tracks rec in a detached goroutine.
func (m *Monitor) Start(rec models.WithdrawalDB) {
	m.wg.Add(1)
	m.inFlight.Add(1)
	go func() {
		defer m.wg.Done()
		defer m.inFlight.Add(-1)
		m.Track(context.Background(), rec)
	}()
}

// InFlight returns the number of running monitors.
func (m *Monitor) InFlight() int64 {
	return m.inFlight.Load()
}

// Wait blocks until every started monitor returns.
func (m *Monitor) Wait() {
	m.wg.Wait()
}

// Track runs the bounded polling loop for rec synchronously.
func (m *Monitor) Track(ctx context.Context, rec models.WithdrawalDB) MonitorResult {
	ref := rec.TransactionRef()
	res := MonitorResult{RequestID: rec.RequestID, Status: models.StatusProcessing}

	for attempt := 1; attempt <= m.cfg.MaxAttempts; attempt++ {
		res.Attempts = attempt

		if err := m.sleep(ctx, m.cfg.Delay); err != nil {
			m.log.Warnw("monitor interrupted", "request_id", rec.RequestID, "transaction_id", ref, "attempt", attempt)
			return res
		}

		outcome, err := m.ledger.TransactionOutcome(ctx, ref)
		if err != nil {
			m.log.Errorw("failed to check transaction outcome", "request_id", rec.RequestID, "transaction_id", ref, "attempt", attempt, "error", err)
			res.Status = m.settle(ctx, rec, models.StatusFailed, err.Error())
			return res
		}

		m.log.Infow("transaction outcome checked",
			"request_id", rec.RequestID,
			"transaction_id", ref,
			"outcome", outcome,
			"attempt", attempt,
			"max_attempts", m.cfg.MaxAttempts,
		)

		switch outcome {
		case models.OutcomeConfirmed:
			res.Status = m.settle(ctx, rec, models.StatusCompleted, "")
			return res
		case models.OutcomeFailed:
			res.Status = m.settle(ctx, rec, models.StatusFailed, FailedOnChainMessage)
			return res
		}
	}

	msg := fmt.Sprintf("confirmation not observed after %d attempts", m.cfg.MaxAttempts)
	ok, err := m.store.Transition(ctx, models.Transition{
		RequestID:      rec.RequestID,
		From:           []models.Status{models.StatusProcessing},
		To:             models.StatusPendingConfirmation,
		TransactionRef: &ref,
		ErrorMessage:   &msg,
		At:             m.now(),
	})
	if err != nil {
		m.log.Errorw("failed to mark withdrawal pending confirmation", "request_id", rec.RequestID, "error", err)
		return res
	}
	if ok {
		res.Status = models.StatusPendingConfirmation
		m.log.Warnw("monitor exhausted attempts, awaiting reconciliation", "request_id", rec.RequestID, "transaction_id", ref)
	}
	return res
}

// settle persists a terminal status and notifies only when the update applied.
func (m *Monitor) settle(ctx context.Context, rec models.WithdrawalDB, status models.Status, message string) models.Status {
	ref := rec.TransactionRef()
	t := models.Transition{
		RequestID:      rec.RequestID,
		From:           []models.Status{models.StatusProcessing},
		To:             status,
		TransactionRef: &ref,
		At:             m.now(),
	}
	if message != "" {
		t.ErrorMessage = &message
	}

	ok, err := m.store.Transition(ctx, t)
	if err != nil {
		m.log.Errorw("failed to persist transaction outcome", "request_id", rec.RequestID, "status", status, "error", err)
		return models.StatusProcessing
	}
	if !ok {
		m.log.Infow("transaction outcome already recorded elsewhere", "request_id", rec.RequestID, "status", status)
		return status
	}

	m.notifier.Dispatch(notificationFor(rec, status, message))
	return status
}

func notificationFor(rec models.WithdrawalDB, status models.Status, message string) models.Notification {
	n := models.Notification{
		RequestID:      rec.RequestID,
		UserID:         rec.UserID,
		TransactionRef: rec.TransactionRef(),
		Status:         models.NotifyFailed,
		Message:        message,
	}
	if status == models.StatusCompleted {
		n.Status = models.NotifyConfirmed
	}
	return n
}
