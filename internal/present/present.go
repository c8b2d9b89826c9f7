// Package present maps completed analysis results to display buckets: score
// tiers, severity palette and icon tokens, and chart series validation. All
// functions are pure and total.
package present

import (
	"fmt"

	"auditor/pkg/domain"
)

// Tier buckets a 0..100 score for display.
type Tier string

const (
	TierExcellent Tier = "excellent"
	TierGood      Tier = "good"
	TierPoor      Tier = "poor"
)

// ScoreTier buckets a score: >=90 excellent, 70..89 good, below 70 poor.
// Defined for every int, including out-of-range values.
func ScoreTier(score int) Tier {
	switch {
	case score >= 90:
		return TierExcellent
	case score >= 70:
		return TierGood
	default:
		return TierPoor
	}
}

// ScoreMessage returns the encouragement line shown under the score.
func ScoreMessage(score int) string {
	switch ScoreTier(score) {
	case TierExcellent:
		return "Excellent! Your site has great accessibility."
	case TierGood:
		return "Good progress! A few improvements will make it even better."
	default:
		return "Let's work together to improve your site's accessibility."
	}
}

// Palette and icon tokens are abstract names a frontend maps to concrete
// styling. Unknown severities fall back to the neutral defaults instead of
// failing; severities only arrive untyped at system boundaries.
const (
	ColorDefault = "neutral"
	IconDefault  = "info"
)

var severityColors = map[domain.Severity]string{ //nolint: gochecknoglobals
	domain.SeverityCritical: "red",
	domain.SeveritySerious:  "orange",
	domain.SeverityModerate: "yellow",
	domain.SeverityMinor:    "blue",
}

var severityIcons = map[domain.Severity]string{ //nolint: gochecknoglobals
	domain.SeverityCritical: "x-circle",
	domain.SeveritySerious:  "alert-triangle",
	domain.SeverityModerate: "info",
	domain.SeverityMinor:    "check-circle",
}

// SeverityColor returns the palette token for a severity, or ColorDefault for
// unknown values.
func SeverityColor(sev domain.Severity) string {
	if c, ok := severityColors[sev]; ok {
		return c
	}

	return ColorDefault
}

// SeverityIcon returns the icon token for a severity, or IconDefault for
// unknown values.
func SeverityIcon(sev domain.Severity) string {
	if i, ok := severityIcons[sev]; ok {
		return i
	}

	return IconDefault
}

// ValidateCategoryShares checks the chart-series invariant: percentages of an
// issue distribution must sum to exactly 100. A violating dataset is a
// data-quality error to be surfaced, never silently renormalized.
func ValidateCategoryShares(shares []domain.CategoryShare) error {
	if len(shares) == 0 {
		return nil
	}

	sum := 0
	for _, s := range shares {
		if s.Percent < 0 {
			return fmt.Errorf("category %q has negative share %d", s.Name, s.Percent)
		}
		sum += s.Percent
	}
	if sum != 100 {
		return fmt.Errorf("category shares sum to %d, want 100", sum)
	}

	return nil
}
