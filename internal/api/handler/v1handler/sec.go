package v1handler

import (
	"context"
	"net/http"
	"strings"

	"auditor/pkg/domain"
	"auditor/pkg/serrors"
)

// CtxKey is a string-based type used for storing values in request contexts.
// It avoids collisions with other packages' context keys.
type CtxKey string

const (
	// UserIDKey is the context key under which the authenticated user's ID is
	// stored.
	UserIDKey CtxKey = "UserID"
)

// GetUserIDFromContext returns the authenticated user ID attached by
// RequireAuth. The zero value is returned on unauthenticated contexts; only
// handlers behind RequireAuth may rely on it.
func GetUserIDFromContext(ctx context.Context) domain.UserID {
	userID, _ := ctx.Value(UserIDKey).(domain.UserID)

	return userID
}

// RequireAuth verifies the bearer token and attaches the resolved user ID to
// the request context. Requests without a valid token are rejected with 401.
func (h *Handler) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		token, ok := bearerToken(r)
		if !ok {
			h.writeError(ctx, w, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

			return
		}

		user, err := h.deps.Auth.Verify(ctx, token)
		if err != nil {
			h.writeError(ctx, w, err)

			return
		}

		ctx = context.WithValue(ctx, UserIDKey, user.ID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", false
	}

	return token, true
}
