// Package v1handler implements the v1 HTTP API: authentication, audits,
// vision profiles and the dashboard summary. Handlers translate between the
// wire format and the domain services; semantic error kinds decide the
// response status at this boundary and never leak past it.
package v1handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"auditor/internal/auditor"
	"auditor/pkg/auth"
	"auditor/pkg/domain"
	"auditor/pkg/logger"
	"auditor/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// DefaultLimit is the page size used when a list request does not set one.
const DefaultLimit = 20

// Dashboard is the summary read model consumed by the dashboard endpoint.
type Dashboard interface {
	Summary(ctx context.Context, userID domain.UserID) (*domain.DashboardSummary, error)
}

// Deps carries the services the handlers delegate to.
type Deps struct {
	Auditor   auditor.Auditor
	Auth      auth.Provider
	Dashboard Dashboard
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Routes mounts every v1 endpoint on a fresh router. Audit and dashboard
// endpoints require a bearer token; sign-up, sign-in, the session state and
// the vision profile catalog are public.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/auth/signup", h.SignUp)
	r.Post("/auth/signin", h.SignIn)
	r.Get("/auth/session", h.SessionState)
	r.Get("/vision-profiles", h.ListVisionProfiles)

	r.Group(func(r chi.Router) {
		r.Use(h.RequireAuth)

		r.Post("/audits", h.CreateAudit)
		r.Get("/audits", h.ListAudits)
		r.Get("/audits/{auditID}", h.GetAudit)
		r.Delete("/audits/{auditID}", h.DeleteAudit)
		r.Get("/dashboard", h.DashboardSummary)
	})

	return r
}

// statusOf maps a semantic error kind to the HTTP status code of the
// response.
func statusOf(err error) int {
	switch serrors.KindOf(err) {
	case serrors.ErrBadRequest:
		return http.StatusBadRequest
	case serrors.ErrUnauthorized:
		return http.StatusUnauthorized
	case serrors.ErrForbidden:
		return http.StatusForbidden
	case serrors.ErrNotFound:
		return http.StatusNotFound
	case serrors.ErrConflict:
		return http.StatusConflict
	case serrors.ErrRateLimited:
		return http.StatusTooManyRequests
	case serrors.ErrTimeout:
		return http.StatusGatewayTimeout
	case serrors.ErrUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError converts err to the error payload. Client errors keep their
// message so the UI can show it inline; everything mapping to a 5xx is logged
// and replaced with a generic message.
func (h *Handler) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status := statusOf(err)
	code := "INTERNAL"
	message := "internal error"

	if kind := serrors.KindOf(err); kind != nil && status < http.StatusInternalServerError {
		code = kind.Error()
		message = err.Error()
	} else {
		logger.Error(ctx, "request failed", zap.Error(err))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}

// writeJSON encodes v as the response body with the given status.
func (h *Handler) writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error(ctx, "could not encode response", zap.Error(err))
	}
}

// badBody converts request body decode failures to a bad-request error.
func badBody(err error) error {
	var sErr *serrors.Error
	if errors.As(err, &sErr) {
		return err
	}

	return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
}
