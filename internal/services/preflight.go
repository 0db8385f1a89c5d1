package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sbilibin2017/gw-token-withdrawal/internal/models"
	"go.uber.org/zap"
)

// PreflightConfig holds the gates evaluated before submission.
type PreflightConfig struct {
	MinSOLReserve      uint64  // lamports the sender must keep for fees
	CongestionCheck    bool    // enables the congestion gate
	TPSCeiling         float64 // reject above this average throughput
	FailureRateCeiling float64 // reject above this average failure fraction
}

// Transfer is a preflight-approved transfer ready for submission.
type Transfer struct {
	BaseUnits uint64
	Decimals  uint8
}

// NetworkLoad is the averaged result of a congestion sample.
type NetworkLoad struct {
	TPS         float64
	FailureRate float64
}

// PreflightChecker gates a pending record on network congestion and sender balances.
type PreflightChecker struct {
	ledger  Ledger
	store   WithdrawalStore
	amounts *AmountConverter
	cfg     PreflightConfig
	log     *zap.SugaredLogger
	now     func() time.Time
}

// NewPreflightChecker creates a new preflight checker.
func NewPreflightChecker(ledger Ledger, store WithdrawalStore, amounts *AmountConverter, cfg PreflightConfig, log *zap.SugaredLogger) *PreflightChecker {
	return &PreflightChecker{ledger: ledger, store: store, amounts: amounts, cfg: cfg, log: log, now: utcNow}
}

// Check evaluates the congestion gate before the balance gate and stops at the
// first rejection. A rejected record is persisted as failed or
// failed_network_congestion before Check returns.
func (p *PreflightChecker) Check(ctx context.Context, rec *models.WithdrawalDB) (Transfer, error) {
	if p.cfg.CongestionCheck && p.congested(ctx) {
		p.log.Warnw("withdrawal rejected due to network congestion", "request_id", rec.RequestID)
		return Transfer{}, p.reject(ctx, rec, models.StatusFailedNetworkCongestion, ErrNetworkCongested)
	}

	units, decimals, err := p.amounts.ToBaseUnits(ctx, rec.Amount)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			return Transfer{}, p.reject(ctx, rec, models.StatusFailed, err)
		}
		return Transfer{}, p.reject(ctx, rec, models.StatusFailed,
			coded(CodeTransactionError, fmt.Errorf("failed to fetch token decimals: %w", err)))
	}

	lamports, err := p.ledger.NativeBalance(ctx)
	if err != nil {
		return Transfer{}, p.reject(ctx, rec, models.StatusFailed, coded(CodeTransactionError, err))
	}
	if lamports < p.cfg.MinSOLReserve {
		p.log.Warnw("insufficient SOL balance", "request_id", rec.RequestID, "lamports", lamports, "required", p.cfg.MinSOLReserve)
		return Transfer{}, p.reject(ctx, rec, models.StatusFailed, ErrInsufficientSOL)
	}

	balance, err := p.ledger.TokenBalance(ctx)
	if err != nil {
		return Transfer{}, p.reject(ctx, rec, models.StatusFailed, coded(CodeTransactionError, err))
	}
	if balance < units {
		p.log.Warnw("insufficient token balance", "request_id", rec.RequestID, "balance", balance, "required", units)
		return Transfer{}, p.reject(ctx, rec, models.StatusFailed, ErrInsufficientTokenBalance)
	}

	return Transfer{BaseUnits: units, Decimals: decimals}, nil
}

// reject persists the terminal preflight status and returns cause.
func (p *PreflightChecker) reject(ctx context.Context, rec *models.WithdrawalDB, status models.Status, cause error) error {
	msg := cause.Error()
	ok, err := p.store.Transition(ctx, models.Transition{
		RequestID:    rec.RequestID,
		From:         []models.Status{models.StatusPending},
		To:           status,
		ErrorMessage: &msg,
		At:           p.now(),
	})
	if err != nil {
		p.log.Errorw("failed to persist preflight rejection", "request_id", rec.RequestID, "status", status, "error", err)
		return err
	}
	if !ok {
		p.log.Warnw("preflight rejection not applied, record moved on", "request_id", rec.RequestID, "status", status)
	}
	return cause
}

// congested samples network load. Sampling failures fail open.
func (p *PreflightChecker) congested(ctx context.Context) bool {
	samples, err := p.ledger.RecentPerformance(ctx)
	if err != nil {
		p.log.Warnw("network congestion check failed, assuming not congested", "error", err)
		return false
	}
	if len(samples) == 0 {
		p.log.Warnw("no performance samples returned, assuming not congested")
		return false
	}

	load := AverageLoad(samples)
	p.log.Infow("network load sampled", "avg_tps", load.TPS, "avg_failure_rate", load.FailureRate)

	return load.TPS > p.cfg.TPSCeiling || load.FailureRate > p.cfg.FailureRateCeiling
}

// AverageLoad averages throughput and failure fraction over samples.
func AverageLoad(samples []models.PerformanceSample) NetworkLoad {
	if len(samples) == 0 {
		return NetworkLoad{}
	}

	var tps, failure float64
	for _, s := range samples {
		if s.SamplePeriodSecs > 0 {
			tps += float64(s.NumTransactions) / float64(s.SamplePeriodSecs)
		}
		if s.SuccessReported && s.NumTransactions > 0 && s.NumSuccessfulTransactions <= s.NumTransactions {
			failure += float64(s.NumTransactions-s.NumSuccessfulTransactions) / float64(s.NumTransactions)
		}
	}

	n := float64(len(samples))
	return NetworkLoad{TPS: tps / n, FailureRate: failure / n}
}
