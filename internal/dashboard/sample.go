package dashboard

import (
	"time"

	"auditor/pkg/domain"
)

// SampleSummary returns the canonical demo dashboard shown to users without
// any completed audits. The figures match the product's reference dataset and
// the category split always satisfies the sum-to-100 invariant.
func SampleSummary() *domain.DashboardSummary {
	return &domain.DashboardSummary{
		CurrentScore:  85,
		PreviousScore: 78,
		TrendDelta:    7,
		TotalAudits:   12,
		PassRate:      68,
		FailRate:      32,

		MonthlyScores: []domain.MonthScore{
			{Month: "Oct", Score: 65},
			{Month: "Nov", Score: 72},
			{Month: "Dec", Score: 78},
			{Month: "Jan", Score: 85},
		},
		IssuesByCategory: []domain.CategoryShare{
			{Name: "Color Contrast", Percent: 35},
			{Name: "Keyboard Nav", Percent: 25},
			{Name: "Alt Text", Percent: 20},
			{Name: "Form Labels", Percent: 20},
		},
		WCAGCompliance: []domain.WCAGLevel{
			{Level: "A", Current: 85, Target: 100},
			{Level: "AA", Current: 72, Target: 100},
			{Level: "AAA", Current: 45, Target: 80},
		},
		RecentAudits: []domain.RecentAudit{
			// the first row mirrors the canonical score-85 result and its
			// issue total
			{URL: "https://example.com", Score: 85, Issues: 27,
				Date: time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)},
			{URL: "https://example.com/about", Score: 82, Issues: 31,
				Date: time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)},
			{URL: "https://example.com/contact", Score: 78, Issues: 36,
				Date: time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)},
		},
	}
}
