package middlewares

import (
	"context"
	"net/http"

	"go.uber.org/zap"
)

//go:generate mockgen -source=auth.go -destination=mocks_test.go -package=middlewares

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	Validate(ctx context.Context, tokenString string) error
}

// AuthMiddleware rejects requests that do not carry a valid client token.
func AuthMiddleware(tokener Tokener, log *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				log.Warnw("authorization failed", "request_id", RequestIDFromContext(ctx), "err", err)
				writeError(w, http.StatusUnauthorized, "unauthorized", "missing or malformed authorization header")
				return
			}

			if err := tokener.Validate(ctx, tokenString); err != nil {
				log.Warnw("authorization failed", "request_id", RequestIDFromContext(ctx), "err", err)
				writeError(w, http.StatusUnauthorized, "unauthorized", "invalid token")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
