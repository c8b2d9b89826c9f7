package dashboard_test

import (
	"context"
	"testing"
	"time"

	"auditor/internal/dashboard"
	"auditor/internal/present"
	"auditor/pkg/domain"
	"auditor/pkg/engine/axemock"
	"auditor/pkg/storage"
	mockstorage "auditor/pkg/storage/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*mockstorage.MockStorage, *dashboard.Service) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)

	return st, dashboard.New(st)
}

func issuesOf(ruleID string, sev domain.Severity, n int) []domain.Issue {
	out := make([]domain.Issue, n)
	for i := range out {
		out[i] = domain.Issue{RuleID: ruleID, Severity: sev}
	}

	return out
}

func TestSummary_EmptyHistoryReturnsSample(t *testing.T) {
	st, svc := newTestService(t)
	userID := domain.UserID{}

	st.EXPECT().AuditStatsByUser(gomock.Any(), userID).Return(storage.AuditStats{}, nil)

	got, err := svc.Summary(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, dashboard.SampleSummary(), got)
}

func TestSummary_BuildsFromStoredAudits(t *testing.T) {
	st, svc := newTestService(t)
	userID := domain.UserID{}

	st.EXPECT().AuditStatsByUser(gomock.Any(), userID).Return(storage.AuditStats{
		TotalAudits:   4,
		CurrentScore:  90,
		PreviousScore: 80,
		PassCount:     3,
		FailCount:     1,
	}, nil)
	st.EXPECT().MonthlyScoresByUser(gomock.Any(), userID, 6).Return([]storage.MonthlyScore{
		{Month: time.December, Year: 2025, Score: 80},
		{Month: time.January, Year: 2026, Score: 90},
	}, nil)

	updated := time.Date(2026, time.January, 20, 12, 0, 0, 0, time.UTC)
	recent := []domain.Audit{
		{
			URL:       "https://a.example",
			UpdatedAt: updated,
			Result: &domain.AnalysisResult{
				Score:       90,
				IssueCounts: map[domain.Severity]int{domain.SeverityCritical: 1, domain.SeverityMinor: 2},
				Issues: append(
					issuesOf("color-contrast", domain.SeverityCritical, 1),
					issuesOf("tabindex", domain.SeverityMinor, 2)...),
			},
		},
		{
			URL:       "https://b.example",
			UpdatedAt: updated.Add(-time.Hour),
			Result: &domain.AnalysisResult{
				Score:       80,
				IssueCounts: map[domain.Severity]int{domain.SeverityModerate: 1},
				Issues:      issuesOf("alt-text", domain.SeverityModerate, 1),
			},
		},
	}
	st.EXPECT().RecentCompletedAuditsByUser(gomock.Any(), userID, uint(10)).Return(recent, nil)

	got, err := svc.Summary(context.Background(), userID)
	require.NoError(t, err)

	require.Equal(t, 90, got.CurrentScore)
	require.Equal(t, 80, got.PreviousScore)
	require.Equal(t, 10, got.TrendDelta)
	require.Equal(t, 4, got.TotalAudits)
	require.Equal(t, 75, got.PassRate)
	require.Equal(t, 25, got.FailRate)

	require.Equal(t, []domain.MonthScore{{Month: "Dec", Score: 80}, {Month: "Jan", Score: 90}}, got.MonthlyScores)

	// 1 contrast + 2 keyboard + 1 alt of 4 issues, rounded to a 100 total
	require.NoError(t, present.ValidateCategoryShares(got.IssuesByCategory))
	require.Equal(t, []domain.CategoryShare{
		{Name: "Keyboard Nav", Percent: 50},
		{Name: "Alt Text", Percent: 25},
		{Name: "Color Contrast", Percent: 25},
	}, got.IssuesByCategory)

	require.Equal(t, []domain.WCAGLevel{
		{Level: "A", Current: 90, Target: 100},
		{Level: "AA", Current: 77, Target: 100},
		{Level: "AAA", Current: 48, Target: 80},
	}, got.WCAGCompliance)

	require.Len(t, got.RecentAudits, 2)
	require.Equal(t, "https://a.example", got.RecentAudits[0].URL)
	require.Equal(t, 90, got.RecentAudits[0].Score)
	require.Equal(t, 3, got.RecentAudits[0].Issues)
	require.Equal(t, updated, got.RecentAudits[0].Date)
}

func TestSummary_CategorySharesAlwaysSumTo100(t *testing.T) {
	// three categories of one issue each cannot split 100 evenly; the rounding
	// must still land exactly on 100
	st, svc := newTestService(t)
	userID := domain.UserID{}

	st.EXPECT().AuditStatsByUser(gomock.Any(), userID).Return(storage.AuditStats{
		TotalAudits:  1,
		CurrentScore: 70,
		PassCount:    1,
	}, nil)
	st.EXPECT().MonthlyScoresByUser(gomock.Any(), userID, 6).Return(nil, nil)
	st.EXPECT().RecentCompletedAuditsByUser(gomock.Any(), userID, uint(10)).Return([]domain.Audit{
		{
			Result: &domain.AnalysisResult{
				Score: 70,
				Issues: append(append(
					issuesOf("color-contrast", domain.SeverityCritical, 1),
					issuesOf("form-labels", domain.SeveritySerious, 1)...),
					issuesOf("region", domain.SeverityMinor, 1)...),
			},
		},
	}, nil)

	got, err := svc.Summary(context.Background(), userID)
	require.NoError(t, err)
	require.NoError(t, present.ValidateCategoryShares(got.IssuesByCategory))
	require.Len(t, got.IssuesByCategory, 3)
}

func TestSampleSummaryInvariants(t *testing.T) {
	sample := dashboard.SampleSummary()
	require.NoError(t, present.ValidateCategoryShares(sample.IssuesByCategory))
	require.Equal(t, sample.CurrentScore-sample.PreviousScore, sample.TrendDelta)
	require.Equal(t, 100, sample.PassRate+sample.FailRate)

	// the demo's top recent audit matches the canonical score-85 result
	canonical := axemock.SampleResult()
	require.Equal(t, canonical.Score, sample.RecentAudits[0].Score)
	require.Equal(t, canonical.TotalIssues(), sample.RecentAudits[0].Issues)
	require.Equal(t, sample.CurrentScore, sample.RecentAudits[0].Score)
}
