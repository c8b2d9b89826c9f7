package storage

import (
	"context"
	"time"

	"auditor/pkg/domain"
)

// AuditStats aggregates a user's completed audits for the dashboard.
type AuditStats struct {
	// TotalAudits counts all completed audits for the user.
	TotalAudits int
	// CurrentScore is the score of the most recent completed audit, 0 when none.
	CurrentScore int
	// PreviousScore is the score of the completed audit before the most recent
	// one, 0 when there is no previous audit.
	PreviousScore int
	// PassCount counts completed audits with zero critical and serious issues.
	PassCount int
	// FailCount counts the remaining completed audits.
	FailCount int
}

// MonthlyScore is the average completed-audit score for one calendar month.
type MonthlyScore struct {
	Month time.Month
	Year  int
	Score int
}

// StatsStorage defines the read-model queries backing the dashboard.
type StatsStorage interface {
	// AuditStatsByUser aggregates the user's completed audits. Soft-deleted
	// records are excluded.
	AuditStatsByUser(ctx context.Context, userID domain.UserID) (AuditStats, error)
	// MonthlyScoresByUser returns per-month average scores for the user's
	// completed audits over the trailing months window, oldest first.
	MonthlyScoresByUser(ctx context.Context, userID domain.UserID, months int) ([]MonthlyScore, error)
	// RecentCompletedAuditsByUser returns the user's most recent completed
	// audits, newest first, limited by limit.
	RecentCompletedAuditsByUser(ctx context.Context, userID domain.UserID, limit uint) ([]domain.Audit, error)
}
