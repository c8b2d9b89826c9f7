package domain

import "time"

// MonthScore is one point of the monthly score time series.
type MonthScore struct {
	// Month is a short month label, e.g. "Jan".
	Month string `json:"month"`
	// Score is the average score for that month, 0..100.
	Score int `json:"score"`
}

// CategoryShare is one slice of the issue-category distribution chart.
// Percent values across a distribution must sum to exactly 100.
type CategoryShare struct {
	// Name is the display name of the category, e.g. "Color Contrast".
	Name string `json:"name"`
	// Percent is the category's share of all issues, 0..100.
	Percent int `json:"percent"`
}

// WCAGLevel tracks compliance progress toward one WCAG conformance level.
type WCAGLevel struct {
	// Level is the conformance level name: "A", "AA" or "AAA".
	Level string `json:"level"`
	// Current is the current compliance percentage.
	Current int `json:"current"`
	// Target is the compliance percentage the user aims for.
	Target int `json:"target"`
}

// RecentAudit is the dashboard's compact view of one past audit.
type RecentAudit struct {
	ID     AuditID   `json:"id"`
	URL    string    `json:"url"`
	Score  int       `json:"score"`
	Issues int       `json:"issues"`
	Date   time.Time `json:"date"`
}

// DashboardSummary aggregates a user's audit history for the dashboard view.
type DashboardSummary struct {
	// CurrentScore is the score of the most recent completed audit.
	CurrentScore int `json:"currentScore"`
	// PreviousScore is the score of the completed audit before that.
	PreviousScore int `json:"previousScore"`
	// TrendDelta is CurrentScore - PreviousScore.
	TrendDelta int `json:"trendDelta"`
	// TotalAudits counts all completed audits for the user.
	TotalAudits int `json:"totalAudits"`
	// PassRate is the percentage of completed audits without critical or
	// serious issues.
	PassRate int `json:"passRate"`
	// FailRate is 100 - PassRate.
	FailRate int `json:"failRate"`

	// MonthlyScores is the average score per month, oldest first.
	MonthlyScores []MonthScore `json:"monthlyScores"`
	// IssuesByCategory is the issue distribution; Percent values sum to 100.
	IssuesByCategory []CategoryShare `json:"issuesByCategory"`
	// WCAGCompliance tracks progress per conformance level.
	WCAGCompliance []WCAGLevel `json:"wcagCompliance"`
	// RecentAudits lists the latest completed audits, newest first.
	RecentAudits []RecentAudit `json:"recentAudits"`
}
