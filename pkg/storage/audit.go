package storage

import (
	"context"
	"time"

	"auditor/pkg/domain"
)

// AuditUpdates describes a set of optional fields that can be applied to an
// existing audit during an update. Only provided fields will be updated.
type AuditUpdates struct {
	// Status is the new status to set for the audit.
	Status domain.AuditStatus
	// Result, when provided, replaces the stored analysis result payload.
	Result *domain.AnalysisResult
	// LastError, when provided, sets the last error text. An empty string value
	// indicates the error should be cleared (set to NULL).
	LastError *string
	// MaxAttempts, when provided alongside a Failed status, ensures that status
	// is only updated to Failed if the current attempts after increment would
	// exceed this threshold. A value <= 0 disables this guard.
	MaxAttempts int
}

// UserAudits groups a page of audits returned for a user together with an
// optional NextCursor used for pagination.
type UserAudits struct {
	// Audits contains the current page of audit records.
	Audits []domain.Audit
	// NextCursor points to the timestamp to be used as the cursor for fetching
	// the next page. It is nil when there is no next page.
	NextCursor *time.Time
}

// AuditStorage defines CRUD and query operations related to audits.
// Implementations should ensure idempotency and proper handling of
// soft-deletes where applicable.
type AuditStorage interface {
	// StoreAudits inserts one or more audits and returns the stored rows as
	// they exist in the database (including generated fields).
	StoreAudits(ctx context.Context, audits ...domain.Audit) ([]domain.Audit, error)
	// UpdatePendingAuditsByURL updates all pending audits for the given URL
	// using the provided field set.
	// Notes:
	// - Attempts is incremented by 1 and updated_at is set automatically.
	// - If Status is Failed and MaxAttempts > 0, status is only set to Failed
	//   when the attempts after increment would exceed MaxAttempts; otherwise
	//   status remains unchanged (i.e., stays Pending).
	UpdatePendingAuditsByURL(ctx context.Context, URL string, updates AuditUpdates) error
	// PendingAuditCountByURL returns the total number of pending audits for the
	// given URL across all users. Soft-deleted records are excluded.
	PendingAuditCountByURL(ctx context.Context, URL string) (int64, error)
	// UpdateAuditByID updates a single audit identified by its ID and returns
	// the updated row. The update ignores soft-deleted rows and sets updated_at
	// automatically. Only provided fields are changed.
	UpdateAuditByID(ctx context.Context, ID domain.AuditID, updates AuditUpdates) (*domain.Audit, error)
	// DeleteAudit performs a soft delete for the given audit ID and user ID and
	// returns the deleted audit, or nil if it was not found.
	DeleteAudit(ctx context.Context, userID domain.UserID, ID domain.AuditID) (*domain.Audit, error)
	// UserAudits returns a page of audits for a user created before the
	// optional cursor time, limited by the given limit. If status is non-empty,
	// results are filtered to records with the given status.
	UserAudits(ctx context.Context,
		userID domain.UserID,
		status domain.AuditStatus,
		cursor time.Time,
		limit uint) (UserAudits, error)
	// AuditByID fetches an audit by its ID for the given user, excluding
	// soft-deleted records. Returns nil when not found.
	AuditByID(ctx context.Context, userID domain.UserID, ID domain.AuditID) (*domain.Audit, error)
	// LastCompletedAuditByURL returns the most recent completed audit for a
	// given URL across all users. Returns nil when no completed audit exists.
	LastCompletedAuditByURL(ctx context.Context, URL string) (*domain.Audit, error)
}
