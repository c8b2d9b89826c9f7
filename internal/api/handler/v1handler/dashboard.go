package v1handler

import (
	"net/http"

	"auditor/internal/present"
	"auditor/pkg/domain"
	"auditor/pkg/serrors"
)

// DashboardSummary returns the aggregate view of the user's audit history.
func (h *Handler) DashboardSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	summary, err := h.deps.Dashboard.Summary(ctx, GetUserIDFromContext(ctx))
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}

	// a distribution that does not sum to 100 is a data-quality bug; surface
	// it instead of renormalizing
	if err := present.ValidateCategoryShares(summary.IssuesByCategory); err != nil {
		h.writeError(ctx, w, serrors.Wrap(serrors.ErrInternal, err, "invalid category distribution"))

		return
	}

	h.writeJSON(ctx, w, http.StatusOK, summary)
}

// ListVisionProfiles returns the static color-vision simulation catalog.
func (h *Handler) ListVisionProfiles(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(r.Context(), w, http.StatusOK, map[string][]domain.VisionProfile{
		"items": domain.VisionProfiles(),
	})
}
