package middlewares

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-token-withdrawal/internal/models"
	"go.uber.org/zap"
)

// RecoverMiddleware turns a handler panic into a 500 response.
// http.ErrAbortHandler is re-raised so the server can abort the connection.
func RecoverMiddleware(log *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				log.Errorw("handler panicked",
					"request_id", RequestIDFromContext(r.Context()),
					"uri", r.RequestURI,
					"panic", rec,
				)
				writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
			}()

			next.ServeHTTP(w, r)
		})
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(models.ErrorResponse{
		Status:    models.ResponseFailed,
		Message:   message,
		ErrorCode: code,
	})
}
