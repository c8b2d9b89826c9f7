// Package dashboard builds the aggregate view of a user's audit history:
// score trend, pass ratio, monthly series, issue-category distribution and
// WCAG compliance progress. Users without any completed audit receive the
// canonical sample summary so the dashboard never renders empty.
package dashboard

import (
	"context"
	"fmt"
	"sort"

	"auditor/pkg/domain"
	"auditor/pkg/storage"
)

// recentWindow is how many completed audits feed the category distribution;
// the dashboard itself shows the first recentShown of them.
const (
	recentWindow = 10
	recentShown  = 3
	trendMonths  = 6
)

// compliance estimation factors, in percent of the overall score. Calibrated
// so a score of 85 yields the canonical A/AA/AAA progression of 85/72/45.
const (
	aaFactor  = 85
	aaaFactor = 53

	targetA   = 100
	targetAA  = 100
	targetAAA = 80
)

// Service assembles dashboard summaries from stored audits.
type Service struct {
	storage storage.Storage
}

// New creates a dashboard service on top of the given storage.
func New(st storage.Storage) *Service {
	return &Service{storage: st}
}

// Summary builds the dashboard read model for one user. A user with no
// completed audits gets the sample summary.
func (s *Service) Summary(ctx context.Context, userID domain.UserID) (*domain.DashboardSummary, error) {
	stats, err := s.storage.AuditStatsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not aggregate audit stats: %w", err)
	}
	if stats.TotalAudits == 0 {
		return SampleSummary(), nil
	}

	monthly, err := s.storage.MonthlyScoresByUser(ctx, userID, trendMonths)
	if err != nil {
		return nil, fmt.Errorf("could not fetch monthly scores: %w", err)
	}

	recent, err := s.storage.RecentCompletedAuditsByUser(ctx, userID, recentWindow)
	if err != nil {
		return nil, fmt.Errorf("could not fetch recent audits: %w", err)
	}

	summary := &domain.DashboardSummary{
		CurrentScore:  stats.CurrentScore,
		PreviousScore: stats.PreviousScore,
		TrendDelta:    stats.CurrentScore - stats.PreviousScore,
		TotalAudits:   stats.TotalAudits,

		MonthlyScores:    monthSeries(monthly),
		IssuesByCategory: categoryShares(recent),
		WCAGCompliance:   complianceEstimate(stats.CurrentScore),
	}

	summary.PassRate = int(float64(stats.PassCount)/float64(stats.TotalAudits)*100 + 0.5)
	summary.FailRate = 100 - summary.PassRate

	shown := recent
	if len(shown) > recentShown {
		shown = shown[:recentShown]
	}
	for _, a := range shown {
		var issues int
		if a.Result != nil {
			issues = a.Result.TotalIssues()
		}
		summary.RecentAudits = append(summary.RecentAudits, domain.RecentAudit{
			ID:     a.ID,
			URL:    a.URL,
			Score:  auditScore(a),
			Issues: issues,
			Date:   a.UpdatedAt,
		})
	}

	return summary, nil
}

func auditScore(a domain.Audit) int {
	if a.Result == nil {
		return 0
	}

	return a.Result.Score
}

func monthSeries(monthly []storage.MonthlyScore) []domain.MonthScore {
	out := make([]domain.MonthScore, 0, len(monthly))
	for _, m := range monthly {
		out = append(out, domain.MonthScore{
			Month: m.Month.String()[:3],
			Score: m.Score,
		})
	}

	return out
}

// ruleCategories maps engine rule identifiers to the dashboard's coarse
// issue categories.
var ruleCategories = map[string]string{ //nolint: gochecknoglobals
	"color-contrast":      "Color Contrast",
	"keyboard-navigation": "Keyboard Nav",
	"tabindex":            "Keyboard Nav",
	"aria-hidden-focus":   "Keyboard Nav",
	"alt-text":            "Alt Text",
	"button-name":         "Alt Text",
	"link-name":           "Alt Text",
	"form-labels":         "Form Labels",
}

const categoryOther = "Other"

// categoryShares computes the issue distribution over the recent audits. The
// returned percentages always sum to exactly 100 (largest remainder method);
// an empty issue set yields nil.
func categoryShares(recent []domain.Audit) []domain.CategoryShare {
	counts := map[string]int{}
	total := 0
	for _, a := range recent {
		if a.Result == nil {
			continue
		}
		for _, issue := range a.Result.Issues {
			cat, ok := ruleCategories[issue.RuleID]
			if !ok {
				cat = categoryOther
			}
			counts[cat]++
			total++
		}
	}
	if total == 0 {
		return nil
	}

	type share struct {
		name      string
		percent   int
		remainder int
	}
	shares := make([]share, 0, len(counts))
	for name, count := range counts {
		shares = append(shares, share{
			name:      name,
			percent:   count * 100 / total,
			remainder: count * 100 % total,
		})
	}
	// deterministic order before distributing the leftover points
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].remainder != shares[j].remainder {
			return shares[i].remainder > shares[j].remainder
		}

		return shares[i].name < shares[j].name
	})

	assigned := 0
	for _, sh := range shares {
		assigned += sh.percent
	}
	for i := 0; i < 100-assigned; i++ {
		shares[i%len(shares)].percent++
	}

	// largest share first for the chart
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].percent != shares[j].percent {
			return shares[i].percent > shares[j].percent
		}

		return shares[i].name < shares[j].name
	})

	out := make([]domain.CategoryShare, 0, len(shares))
	for _, sh := range shares {
		out = append(out, domain.CategoryShare{Name: sh.name, Percent: sh.percent})
	}

	return out
}

// complianceEstimate derives WCAG level progress from the overall score.
func complianceEstimate(score int) []domain.WCAGLevel {
	return []domain.WCAGLevel{
		{Level: "A", Current: score, Target: targetA},
		{Level: "AA", Current: (score*aaFactor + 50) / 100, Target: targetAA},
		{Level: "AAA", Current: (score*aaaFactor + 50) / 100, Target: targetAAA},
	}
}
