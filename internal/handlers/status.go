package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-token-withdrawal/internal/models"
	"github.com/sbilibin2017/gw-token-withdrawal/internal/services"
	"go.uber.org/zap"
)

// NewStatusHandler returns an HTTP handler that reports the stored state of a withdrawal.
// @Summary Get withdrawal status
// @Description Returns the stored status. Stale in-flight records are re-checked in the background.
// @Tags withdrawals
// @Produce json
// @Param requestId path int true "Withdrawal request id"
// @Success 200 {object} models.StatusResponse
// @Failure 400 {object} models.WithdrawResponse "Invalid request id"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.WithdrawResponse "Transaction not found"
// @Failure 500 {object} models.WithdrawResponse "Internal server error"
// @Router /api/transaction-status/{requestId} [get]
// @Security BearerAuth
func NewStatusHandler(svc StatusReader, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID, err := strconv.ParseInt(chi.URLParam(r, "requestId"), 10, 64)
		if err != nil || requestID <= 0 {
			err = fmt.Errorf("%w: requestId must be a positive integer", services.ErrValidation)
			writeJSON(w, http.StatusBadRequest, models.WithdrawResponse{
				Status:    models.ResponseFailed,
				Message:   errorMessage(services.CodeValidation, err),
				ErrorCode: services.CodeValidation,
			})
			return
		}

		rec, err := svc.Status(r.Context(), requestID)
		if err != nil {
			code := services.ErrorCode(err)
			if code == services.CodeInternal {
				log.Errorw("status query failed", "request_id", requestID, "error", err)
			}
			writeJSON(w, httpStatus(code), models.WithdrawResponse{
				Status:    models.ResponseFailed,
				Message:   errorMessage(code, err),
				ErrorCode: code,
			})
			return
		}

		writeJSON(w, http.StatusOK, models.StatusResponse{
			Status:        string(rec.Status),
			TransactionID: rec.TransactionRef(),
			Message:       rec.ErrorMessage.String,
			Timestamp:     rec.CreatedAt.UTC().Format(time.RFC3339),
			UpdatedAt:     rec.UpdatedAt.UTC().Format(time.RFC3339),
		})
	}
}

// RegisterStatusHandler registers the status query route
func RegisterStatusHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/api/transaction-status/{requestId}", h)
}
