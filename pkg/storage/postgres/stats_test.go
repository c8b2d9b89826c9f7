package postgres_test

import (
	"context"
	"testing"
	"time"

	"auditor/pkg/domain"
	"auditor/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// storeCompleted inserts a pending audit for url and completes it with the
// given result, giving it a real updated_at ordering.
func storeCompleted(t *testing.T, pg interface {
	StoreAudits(ctx context.Context, audits ...domain.Audit) ([]domain.Audit, error)
	UpdatePendingAuditsByURL(ctx context.Context, URL string, updates storage.AuditUpdates) error
}, userID domain.UserID, url string, result *domain.AnalysisResult,
) {
	t.Helper()
	ctx := context.Background()

	_, err := pg.StoreAudits(ctx, domain.Audit{UserID: userID, URL: url, Status: domain.AuditStatusPending})
	require.NoError(t, err)
	require.NoError(t, pg.UpdatePendingAuditsByURL(ctx, url, storage.AuditUpdates{
		Status: domain.AuditStatusCompleted,
		Result: result,
	}))
	// distinct updated_at values keep recency ordering unambiguous
	time.Sleep(10 * time.Millisecond)
}

func TestPgSQL_AuditStatsByUser(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userID := domain.UserID(uuid.New())

	// empty state
	stats, err := pgSQL.AuditStatsByUser(ctx, userID)
	require.NoError(t, err)
	require.Zero(t, stats.TotalAudits)
	require.Zero(t, stats.CurrentScore)

	failing := &domain.AnalysisResult{
		Score: 60,
		IssueCounts: map[domain.Severity]int{
			domain.SeverityCritical: 2,
			domain.SeveritySerious:  1,
		},
	}
	passing := &domain.AnalysisResult{
		Score: 92,
		IssueCounts: map[domain.Severity]int{
			domain.SeverityModerate: 3,
			domain.SeverityMinor:    1,
		},
	}

	storeCompleted(t, pgSQL, userID, "https://one.example", failing)
	storeCompleted(t, pgSQL, userID, "https://two.example", passing)

	// a pending audit and another user's audit stay out of the stats
	_, err = pgSQL.StoreAudits(ctx, domain.Audit{
		UserID: userID, URL: "https://pending.example", Status: domain.AuditStatusPending,
	})
	require.NoError(t, err)
	storeCompleted(t, pgSQL, domain.UserID(uuid.New()), "https://other.example", passing)

	stats, err = pgSQL.AuditStatsByUser(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, 2, stats.TotalAudits)
	require.Equal(t, 92, stats.CurrentScore, "most recent completed audit")
	require.Equal(t, 60, stats.PreviousScore)
	require.Equal(t, 1, stats.PassCount, "no critical or serious issues")
	require.Equal(t, 1, stats.FailCount)
}

func TestPgSQL_MonthlyScoresByUser(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userID := domain.UserID(uuid.New())
	storeCompleted(t, pgSQL, userID, "https://m1.example", &domain.AnalysisResult{Score: 80})
	storeCompleted(t, pgSQL, userID, "https://m2.example", &domain.AnalysisResult{Score: 90})

	scores, err := pgSQL.MonthlyScoresByUser(ctx, userID, 6)
	require.NoError(t, err)
	// both audits completed just now, so they land in the current month
	require.Len(t, scores, 1)
	now := time.Now()
	require.Equal(t, now.Month(), scores[0].Month)
	require.Equal(t, now.Year(), scores[0].Year)
	require.Equal(t, 85, scores[0].Score, "average of 80 and 90")
}

func TestPgSQL_RecentCompletedAuditsByUser(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userID := domain.UserID(uuid.New())
	urls := []string{"https://r1.example", "https://r2.example", "https://r3.example"}
	for i, url := range urls {
		storeCompleted(t, pgSQL, userID, url, &domain.AnalysisResult{Score: 70 + i})
	}

	recent, err := pgSQL.RecentCompletedAuditsByUser(ctx, userID, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	// newest first
	require.Equal(t, "https://r3.example", recent[0].URL)
	require.Equal(t, "https://r2.example", recent[1].URL)
}
