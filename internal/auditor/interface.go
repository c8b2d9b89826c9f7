// Package auditor coordinates persisted accessibility audits: enqueueing new
// audit requests, reusing cached results, listing a user's audits and
// fetching or deleting individual records.
package auditor

import (
	"context"

	"auditor/pkg/domain"
)

//go:generate mockgen -package mockauditor -source=interface.go -destination=mock/mockauditor.go *
type Auditor interface {
	Enqueue(ctx context.Context, userID domain.UserID, URL string) (*domain.Audit, error)
	UserAudits(ctx context.Context,
		userID domain.UserID,
		status domain.AuditStatus,
		cursor string,
		limit uint) ([]domain.Audit, string, error)
	Result(ctx context.Context, userID domain.UserID, auditID domain.AuditID) (*domain.Audit, error)
	Delete(ctx context.Context, userID domain.UserID, auditID domain.AuditID) error
}
