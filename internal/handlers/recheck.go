package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-token-withdrawal/internal/models"
	"go.uber.org/zap"
)

// CodeRecheck is reported when the sweep itself could not run.
const CodeRecheck = "recheck_error"

// NewRecheckHandler returns an HTTP handler that reconciles stale in-flight withdrawals.
// @Summary Recheck pending withdrawals
// @Description Queries the ledger for every in-flight withdrawal not updated recently and settles the ones with a definitive outcome.
// @Tags withdrawals
// @Produce json
// @Success 200 {object} models.RecheckResponse
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.WithdrawResponse "Sweep failed"
// @Router /api/recheck-pending [post]
// @Security BearerAuth
func NewRecheckHandler(svc PendingRechecker, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := svc.Recheck(r.Context())
		if err != nil {
			log.Errorw("recheck of pending withdrawals failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, models.WithdrawResponse{
				Status:    models.ResponseFailed,
				Message:   err.Error(),
				ErrorCode: CodeRecheck,
			})
			return
		}

		resp := models.RecheckResponse{
			Status:  models.ResponseSuccess,
			Message: "Pending transactions rechecked",
			Count:   summary.Count,
			Results: summary.Results,
		}
		if summary.Count == 0 {
			resp.Message = "No pending transactions to check"
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// RegisterRecheckHandler registers the reconciliation route
func RegisterRecheckHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/api/recheck-pending", h)
}
