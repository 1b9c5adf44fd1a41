package api

import (
	"context"
	"net/http"
	"strings"
	"time"
	"trip_map_system/internal/services"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type contextKey string

const userIDContextKey contextKey = "user_id"

// UserID extracts the authenticated user from the request context.
// The zero uuid means the request is anonymous.
func UserID(r *http.Request) uuid.UUID {
	if id, ok := r.Context().Value(userIDContextKey).(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}

func withUserID(r *http.Request, userID uuid.UUID) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), userIDContextKey, userID))
}

// requireAuth rejects requests without a valid bearer access token.
func requireAuth(authService services.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := bearerUserID(authService, r)
			if !ok {
				writeError(w, http.StatusUnauthorized, "authentication required")
				return
			}
			next.ServeHTTP(w, withUserID(r, userID))
		})
	}
}

// optionalAuth attaches the user when a valid token is present and lets
// anonymous requests through untouched.
func optionalAuth(authService services.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if userID, ok := bearerUserID(authService, r); ok {
				r = withUserID(r, userID)
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerUserID(authService services.AuthService, r *http.Request) (uuid.UUID, bool) {
	header := r.Header.Get("Authorization")
	token := strings.TrimPrefix(header, "Bearer ")
	if header == "" || token == header {
		return uuid.Nil, false
	}

	userID, err := authService.VerifyAccessToken(token)
	if err != nil {
		return uuid.Nil, false
	}

	return userID, true
}

// requestLogger logs one line per request with zap.
func requestLogger(logger *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(wrapped, r)

			logger.Infow("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", wrapped.Status(),
				"duration", time.Since(start),
				"requestID", middleware.GetReqID(r.Context()),
			)
		})
	}
}
