package postgres

import (
	"context"
	"fmt"
	"time"

	"auditor/pkg/domain"
	"auditor/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

// scoreExpr extracts the overall score from the result payload.
const scoreExpr = "(result->>'score')::int"

func completedByUser(userID domain.UserID) []goqu.Expression {
	return []goqu.Expression{
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("status").Eq(string(domain.AuditStatusCompleted)),
		goqu.I("deleted_at").IsNull(),
	}
}

// AuditStatsByUser aggregates the user's completed audits in two queries: one
// grouped aggregate and one for the latest two scores.
func (p *PgSQL) AuditStatsByUser(ctx context.Context, userID domain.UserID) (storage.AuditStats, error) {
	var agg struct {
		Total int64 `db:"total"`
		Pass  int64 `db:"pass"`
	}
	_, err := p.Builder.From(auditsTable).
		Select(
			goqu.L("COUNT(*)").As("total"),
			// an audit passes when it has no critical and no serious issues
			goqu.L("COUNT(*) FILTER (WHERE COALESCE((result->'issueCounts'->>'critical')::int, 0) = 0"+
				" AND COALESCE((result->'issueCounts'->>'serious')::int, 0) = 0)").As("pass"),
		).
		Where(completedByUser(userID)...).
		Executor().ScanStructContext(ctx, &agg)
	if err != nil {
		return storage.AuditStats{}, fmt.Errorf("could not aggregate audit stats from pg: %w", err)
	}

	var latest []struct {
		Score int `db:"score"`
	}
	if err := p.Builder.From(auditsTable).
		Select(goqu.L(scoreExpr).As("score")).
		Where(completedByUser(userID)...).
		Order(goqu.I("updated_at").Desc()).
		Limit(2).
		Executor().ScanStructsContext(ctx, &latest); err != nil {
		return storage.AuditStats{}, fmt.Errorf("could not fetch latest scores from pg: %w", err)
	}

	stats := storage.AuditStats{
		TotalAudits: int(agg.Total),
		PassCount:   int(agg.Pass),
		FailCount:   int(agg.Total - agg.Pass),
	}
	if len(latest) > 0 {
		stats.CurrentScore = latest[0].Score
	}
	if len(latest) > 1 {
		stats.PreviousScore = latest[1].Score
	}

	return stats, nil
}

// MonthlyScoresByUser averages completed-audit scores per calendar month over
// the trailing window, oldest month first. Months without audits are absent
// from the result.
func (p *PgSQL) MonthlyScoresByUser(ctx context.Context, userID domain.UserID, months int) ([]storage.MonthlyScore, error) {
	w := completedByUser(userID)
	w = append(w, goqu.L("updated_at >= date_trunc('month', CURRENT_TIMESTAMP) - (? * INTERVAL '1 month')", months-1))

	var rows []struct {
		Month time.Time `db:"month"`
		Score int       `db:"score"`
	}
	if err := p.Builder.From(auditsTable).
		Select(
			goqu.L("date_trunc('month', updated_at)").As("month"),
			goqu.L("ROUND(AVG("+scoreExpr+"))::int").As("score"),
		).
		Where(w...).
		GroupBy(goqu.L("1")).
		Order(goqu.L("1").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch monthly scores from pg: %w", err)
	}

	out := make([]storage.MonthlyScore, 0, len(rows))
	for _, row := range rows {
		out = append(out, storage.MonthlyScore{
			Month: row.Month.Month(),
			Year:  row.Month.Year(),
			Score: row.Score,
		})
	}

	return out, nil
}

// RecentCompletedAuditsByUser returns the user's most recent completed
// audits, newest first.
func (p *PgSQL) RecentCompletedAuditsByUser(ctx context.Context, userID domain.UserID, limit uint) ([]domain.Audit, error) {
	var rows []PgAudit
	if err := p.Builder.From(auditsTable).
		Where(completedByUser(userID)...).
		Order(goqu.I("updated_at").Desc(), goqu.I("id").Desc()).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch recent audits from pg: %w", err)
	}

	return pgAuditsToDomain(rows)
}
