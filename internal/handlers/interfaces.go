package handlers

import (
	"context"

	"github.com/sbilibin2017/gw-token-withdrawal/internal/models"
	"github.com/sbilibin2017/gw-token-withdrawal/internal/services"
)

//go:generate mockgen -source=interfaces.go -destination=mocks_test.go -package=handlers

// WithdrawalSubmitter runs a withdrawal request through the pipeline.
type WithdrawalSubmitter interface {
	Submit(ctx context.Context, req models.WithdrawRequest) (services.SubmitResult, error)
}

// StatusReader returns the stored record of a withdrawal.
type StatusReader interface {
	Status(ctx context.Context, requestID int64) (*models.WithdrawalDB, error)
}

// PendingRechecker reconciles stale in-flight withdrawals.
type PendingRechecker interface {
	Recheck(ctx context.Context) (services.SweepSummary, error)
}
