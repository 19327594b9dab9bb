package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/quota-ledger/internal/jwt"
	"github.com/sbilibin2017/quota-ledger/internal/logger"
)

//go:generate mockgen -destination=mock_middlewares.go -package=middlewares github.com/sbilibin2017/quota-ledger/internal/middlewares Tokener

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// subjectKey is an unexported type for the token subject context key
type subjectKey struct{}

// SubjectFromContext returns the token subject AuthMiddleware accepted.
func SubjectFromContext(ctx context.Context) string {
	subject, _ := ctx.Value(subjectKey{}).(string)
	return subject
}

// AuthMiddleware returns a middleware that rejects admin API calls without a valid bearer token
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "request_id", RequestIDFromContext(ctx), "err", err)
				unauthorized(w)
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "request_id", RequestIDFromContext(ctx), "err", err)
				unauthorized(w)
				return
			}

			logger.Log.Debugw("authorized", "request_id", RequestIDFromContext(ctx), "subject", claims.Subject)
			next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, subjectKey{}, claims.Subject)))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", `Bearer realm="quota-ledger"`)
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
}
