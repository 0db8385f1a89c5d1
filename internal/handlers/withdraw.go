package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-token-withdrawal/internal/middlewares"
	"github.com/sbilibin2017/gw-token-withdrawal/internal/models"
	"github.com/sbilibin2017/gw-token-withdrawal/internal/services"
	"go.uber.org/zap"
)

// Withdrawal response messages
const (
	MessageSubmitted  = "Withdrawal request submitted successfully"
	MessageCompleted  = "Withdrawal request has already been completed"
	MessageProcessing = "Transaction is being processed"
)

// NewWithdrawHandler returns an HTTP handler that submits a token withdrawal.
// @Summary Submit a withdrawal
// @Description Admits, checks and submits a token transfer. Resubmitting a request id is idempotent.
// @Tags withdrawals
// @Accept json
// @Produce json
// @Param request body models.WithdrawRequest true "Withdraw Request"
// @Success 200 {object} models.WithdrawResponse "Submitted, already completed or still processing"
// @Failure 400 {object} models.WithdrawResponse "Validation error or insufficient balance"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 409 {object} models.WithdrawResponse "Duplicate request"
// @Failure 503 {object} models.WithdrawResponse "Network congested"
// @Failure 500 {object} models.WithdrawResponse "Submission failed"
// @Router /api/process-solana-withdrawal [post]
// @Security BearerAuth
func NewWithdrawHandler(svc WithdrawalSubmitter, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.WithdrawRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			err = fmt.Errorf("%w: %v", services.ErrValidation, err)
			writeJSON(w, http.StatusBadRequest, models.WithdrawResponse{
				Status:    models.ResponseFailed,
				Message:   errorMessage(services.CodeValidation, err),
				ErrorCode: services.CodeValidation,
			})
			return
		}

		res, err := svc.Submit(r.Context(), req)
		if err != nil {
			code := services.ErrorCode(err)
			status := httpStatus(code)
			if status == http.StatusInternalServerError {
				log.Errorw("withdrawal failed",
					"request_id", req.RequestID,
					"http_request_id", middlewares.RequestIDFromContext(r.Context()),
					"error_code", code,
					"error", err,
				)
			}
			writeJSON(w, status, models.WithdrawResponse{
				Status:        models.ResponseFailed,
				Message:       errorMessage(code, err),
				ErrorCode:     code,
				CurrentStatus: res.CurrentStatus,
			})
			return
		}

		resp := models.WithdrawResponse{
			Status:        res.Status,
			Message:       MessageSubmitted,
			TransactionID: res.TransactionRef,
		}
		switch {
		case res.Cached:
			resp.Message = MessageCompleted
		case res.Status == models.ResponseProcessing:
			resp.Message = MessageProcessing
			resp.CurrentStatus = res.CurrentStatus
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// RegisterWithdrawHandler registers the withdrawal submission route
func RegisterWithdrawHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/api/process-solana-withdrawal", h)
}
