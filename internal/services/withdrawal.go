package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sbilibin2017/gw-token-withdrawal/internal/models"
	"go.uber.org/zap"
)

// SubmitResult is the synchronous outcome of a withdrawal submission.
type SubmitResult struct {
	Status         string // success or processing
	TransactionRef string
	CurrentStatus  string // live ledger outcome or stored status
	Cached         bool   // served from an already completed record
}

// WithdrawalService is the entry point for submitting, querying and
// reconciling withdrawals.
type WithdrawalService struct {
	admission    *AdmissionController
	preflight    *PreflightChecker
	submission   *SubmissionCoordinator
	sweeper      StaleRechecker
	store        WithdrawalStore
	locker       RequestLocker
	tokenAddress string
	staleAfter   time.Duration
	log          *zap.SugaredLogger
	now          func() time.Time

	wg sync.WaitGroup
}

// NewWithdrawalService creates a new WithdrawalService. locker may be nil,
// in which case the store's conditional transitions alone serialize requests.
func NewWithdrawalService(
	admission *AdmissionController,
	preflight *PreflightChecker,
	submission *SubmissionCoordinator,
	sweeper StaleRechecker,
	store WithdrawalStore,
	locker RequestLocker,
	tokenAddress string,
	staleAfter time.Duration,
	log *zap.SugaredLogger,
) *WithdrawalService {
	return &WithdrawalService{
		admission:    admission,
		preflight:    preflight,
		submission:   submission,
		sweeper:      sweeper,
		store:        store,
		locker:       locker,
		tokenAddress: tokenAddress,
		staleAfter:   staleAfter,
		log:          log,
		now:          utcNow,
	}
}

// Submit runs admission, preflight and submission for a withdrawal request.
func (s *WithdrawalService) Submit(ctx context.Context, req models.WithdrawRequest) (SubmitResult, error) {
	if err := s.validate(req); err != nil {
		return SubmitResult{}, err
	}

	// the pipeline must not be abandoned halfway when the client goes away
	ctx = context.WithoutCancel(ctx)

	if s.locker != nil {
		token, ok, err := s.locker.Acquire(ctx, req.RequestID)
		switch {
		case err != nil:
			s.log.Warnw("request lock unavailable, continuing without it", "request_id", req.RequestID, "error", err)
		case !ok:
			s.log.Warnw("request already locked by another worker", "request_id", req.RequestID)
			return SubmitResult{}, ErrDuplicateRequest
		default:
			defer func() {
				if err := s.locker.Release(ctx, req.RequestID, token); err != nil {
					s.log.Warnw("failed to release request lock", "request_id", req.RequestID, "error", err)
				}
			}()
		}
	}

	adm, err := s.admission.Admit(ctx, req)
	if err != nil {
		res := SubmitResult{}
		if adm.Record != nil {
			res.CurrentStatus = string(adm.Record.Status)
		}
		return res, err
	}

	switch adm.Decision {
	case DecisionCached:
		return SubmitResult{
			Status:         models.ResponseSuccess,
			TransactionRef: adm.Record.TransactionRef(),
			CurrentStatus:  string(adm.Record.Status),
			Cached:         true,
		}, nil
	case DecisionInFlight:
		current := string(adm.LiveOutcome)
		if current == "" {
			current = string(adm.Record.Status)
		}
		return SubmitResult{
			Status:         models.ResponseProcessing,
			TransactionRef: adm.Record.TransactionRef(),
			CurrentStatus:  current,
		}, nil
	}

	transfer, err := s.preflight.Check(ctx, adm.Record)
	if err != nil {
		return SubmitResult{}, err
	}

	ref, err := s.submission.Submit(ctx, adm.Record, transfer)
	if err != nil {
		return SubmitResult{}, err
	}

	return SubmitResult{Status: models.ResponseSuccess, TransactionRef: ref}, nil
}

// Status returns the stored record for requestID. A stale in-flight record
// is re-checked against the ledger in the background.
func (s *WithdrawalService) Status(ctx context.Context, requestID int64) (*models.WithdrawalDB, error) {
	rec, err := s.store.GetByRequestID(ctx, requestID)
	if err != nil {
		s.log.Errorw("failed to load withdrawal status", "request_id", requestID, "error", err)
		return nil, err
	}
	if rec == nil {
		return nil, ErrNotFound
	}

	inFlight := rec.Status == models.StatusProcessing || rec.Status == models.StatusPendingConfirmation
	if inFlight && rec.TransactionID.Valid && rec.UpdatedAt.Before(s.now().Add(-s.staleAfter)) {
		s.wg.Add(1)
		go func(rec models.WithdrawalDB) {
			defer s.wg.Done()
			s.sweeper.Recheck(context.Background(), rec)
		}(*rec)
	}

	return rec, nil
}

// Recheck runs an on-demand reconciliation sweep.
func (s *WithdrawalService) Recheck(ctx context.Context) (SweepSummary, error) {
	return s.sweeper.Sweep(ctx)
}

// Wait blocks until background status re-checks return.
func (s *WithdrawalService) Wait() {
	s.wg.Wait()
}

// validate checks the payload shape. Address formats are left to the ledger.
func (s *WithdrawalService) validate(req models.WithdrawRequest) error {
	var problems []string

	if req.RequestID <= 0 {
		problems = append(problems, "request_id must be a positive integer")
	}
	if req.UserID <= 0 {
		problems = append(problems, "user_id must be a positive integer")
	}
	if _, err := ParseAmount(req.Amount); err != nil {
		problems = append(problems, "amount must be a positive decimal string")
	}
	if strings.TrimSpace(req.RecipientAddress) == "" {
		problems = append(problems, "recipient_address is required")
	}
	if strings.TrimSpace(req.TokenAddress) == "" {
		problems = append(problems, "token_address is required")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrValidation, strings.Join(problems, "; "))
	}

	if s.tokenAddress != "" && req.TokenAddress != s.tokenAddress {
		s.log.Warnw("token address differs from the configured token", "request_id", req.RequestID, "token_address", req.TokenAddress)
	}
	return nil
}
