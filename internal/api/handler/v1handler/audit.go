package v1handler

import (
	"net/http"
	"strconv"

	"auditor/internal/present"
	"auditor/pkg/domain"
	"auditor/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"github.com/go-faster/jx"
	"github.com/google/uuid"
)

// severityView is the display token set for one severity tier.
type severityView struct {
	Severity domain.Severity `json:"severity"`
	Count    int             `json:"count"`
	Color    string          `json:"color"`
	Icon     string          `json:"icon"`
}

// presentationView carries the display buckets derived from a completed
// result: the score tier, the message line and the severity token breakdown.
type presentationView struct {
	Tier        present.Tier   `json:"tier"`
	Message     string         `json:"message"`
	TotalIssues int            `json:"totalIssues"`
	Severities  []severityView `json:"severities"`
}

// auditView is the wire shape of an audit. Presentation is only set once a
// result exists.
type auditView struct {
	domain.Audit

	Presentation *presentationView `json:"presentation,omitempty"`
}

func newAuditView(a domain.Audit) auditView {
	view := auditView{Audit: a}
	if a.Result == nil {
		return view
	}

	severities := make([]severityView, 0, len(domain.Severities))
	for _, sev := range domain.Severities {
		severities = append(severities, severityView{
			Severity: sev,
			Count:    a.Result.IssueCounts[sev],
			Color:    present.SeverityColor(sev),
			Icon:     present.SeverityIcon(sev),
		})
	}

	view.Presentation = &presentationView{
		Tier:        present.ScoreTier(a.Result.Score),
		Message:     present.ScoreMessage(a.Result.Score),
		TotalIssues: a.Result.TotalIssues(),
		Severities:  severities,
	}

	return view
}

type auditListView struct {
	Items      []auditView `json:"items"`
	NextCursor string      `json:"nextCursor,omitempty"`
}

func decodeCreateAudit(r *http.Request) (string, error) {
	var rawURL string

	d := jx.Decode(r.Body, decodeBufSize)
	err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "url":
			rawURL, err = d.Str()
		default:
			err = d.Skip()
		}

		return err
	})

	return rawURL, err
}

// CreateAudit schedules a new audit for the submitted URL.
func (h *Handler) CreateAudit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	rawURL, err := decodeCreateAudit(r)
	if err != nil {
		h.writeError(ctx, w, badBody(err))

		return
	}

	a, err := h.deps.Auditor.Enqueue(ctx, GetUserIDFromContext(ctx), rawURL)
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}

	h.writeJSON(ctx, w, http.StatusAccepted, newAuditView(*a))
}

// ListAudits returns a page of the user's audits, newest first.
func (h *Handler) ListAudits(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := uint(DefaultLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || parsed == 0 {
			h.writeError(ctx, w, serrors.With(serrors.ErrBadRequest, "invalid limit %q", raw))

			return
		}
		limit = uint(parsed)
	}

	audits, nextCursor, err := h.deps.Auditor.UserAudits(ctx,
		GetUserIDFromContext(ctx),
		domain.AuditStatus(r.URL.Query().Get("status")),
		r.URL.Query().Get("cursor"),
		limit)
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}

	items := make([]auditView, 0, len(audits))
	for i := range audits {
		items = append(items, newAuditView(audits[i]))
	}

	h.writeJSON(ctx, w, http.StatusOK, auditListView{Items: items, NextCursor: nextCursor})
}

// GetAudit returns one audit by ID.
func (h *Handler) GetAudit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	auditID, err := auditIDParam(r)
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}

	a, err := h.deps.Auditor.Result(ctx, GetUserIDFromContext(ctx), auditID)
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}

	h.writeJSON(ctx, w, http.StatusOK, newAuditView(*a))
}

// DeleteAudit soft-deletes one audit by ID.
func (h *Handler) DeleteAudit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	auditID, err := auditIDParam(r)
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}

	if err := h.deps.Auditor.Delete(ctx, GetUserIDFromContext(ctx), auditID); err != nil {
		h.writeError(ctx, w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func auditIDParam(r *http.Request) (domain.AuditID, error) {
	raw := chi.URLParam(r, "auditID")
	id, err := uuid.Parse(raw)
	if err != nil {
		return domain.AuditID{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid audit ID %q", raw)
	}

	return domain.AuditID(id), nil
}
