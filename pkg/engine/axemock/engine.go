// Package axemock provides an engine.Engine implementation that fabricates
// deterministic accessibility results instead of scanning anything. Results
// are derived from a hash of the target URL, so the same URL always yields
// the same score and findings across runs and processes.
package axemock

import (
	"context"
	"errors"
	"hash/fnv"
	"math/rand"
	"net/url"
	"strings"
	"time"

	"auditor/pkg/domain"
	"auditor/pkg/engine"
	"auditor/pkg/serrors"
)

// ruleDef is one entry of the fixed WCAG rule catalog the mock draws from.
type ruleDef struct {
	severity    domain.Severity
	ruleID      string
	description string
	selector    string
	remediation string
	wcag        string
}

// catalog is the fixed rule set, grouped by severity. Entries within a
// severity keep a stable order; issue lists are built by walking this order.
var catalog = []ruleDef{ //nolint: gochecknoglobals
	{domain.SeverityCritical, "color-contrast", "Text contrast is too low",
		"button.primary", "Ensure text has sufficient contrast against background colors", "WCAG 2.1 AA - 1.4.3"},
	{domain.SeverityCritical, "button-name", "Button has no accessible name",
		"button.icon-only", "Give every button a discernible label via text content or aria-label", "WCAG 2.1 A - 4.1.2"},
	{domain.SeverityCritical, "aria-hidden-focus", "Focusable element is hidden from assistive technology",
		"div[aria-hidden] a", "Remove aria-hidden from elements containing focusable content", "WCAG 2.1 A - 4.1.2"},
	{domain.SeveritySerious, "keyboard-navigation", "Elements not accessible via keyboard",
		"div.modal", "Make sure all interactive elements can be reached with keyboard navigation", "WCAG 2.1 AA - 2.1.1"},
	{domain.SeveritySerious, "link-name", "Link has no discernible text",
		"a.card-overlay", "Provide link text or an aria-label describing the destination", "WCAG 2.1 A - 2.4.4"},
	{domain.SeveritySerious, "form-labels", "Form field is missing a label",
		"input#email", "Associate every input with a label element or aria-labelledby", "WCAG 2.1 A - 1.3.1"},
	{domain.SeverityModerate, "alt-text", "Images missing alternative text",
		"img.hero", "Add descriptive alt text to help screen readers understand image content", "WCAG 2.1 A - 1.1.1"},
	{domain.SeverityModerate, "heading-order", "Heading levels skip a rank",
		"h4.section-title", "Keep heading levels sequential so the page outline stays meaningful", "WCAG 2.1 AA - 1.3.1"},
	{domain.SeverityModerate, "html-lang", "Document language is not declared",
		"html", "Set the lang attribute on the html element", "WCAG 2.1 A - 3.1.1"},
	{domain.SeverityMinor, "region", "Content is not contained in landmarks",
		"div.footer-links", "Wrap page content in landmark regions such as main, nav and footer", "WCAG 2.1 A - 1.3.1"},
	{domain.SeverityMinor, "tabindex", "Positive tabindex overrides natural focus order",
		"input[tabindex='3']", "Avoid tabindex values greater than zero", "WCAG 2.1 A - 2.4.3"},
	{domain.SeverityMinor, "meta-viewport", "Zooming is disabled by the viewport meta tag",
		"meta[name='viewport']", "Allow users to zoom by removing maximum-scale and user-scalable=no", "WCAG 2.1 AA - 1.4.4"},
}

// severity penalty weights applied to the score.
const (
	criticalWeight = 8
	seriousWeight  = 4
	moderateWeight = 2
	minorWeight    = 1
)

// maximum fabricated counts per severity (inclusive).
var maxCounts = map[domain.Severity]int{ //nolint: gochecknoglobals
	domain.SeverityCritical: 3,
	domain.SeveritySerious:  6,
	domain.SeverityModerate: 9,
	domain.SeverityMinor:    14,
}

// Options configure the mock engine.
type Options struct {
	// Latency is how long Analyze pretends to work before returning. It
	// stands in for the fixed-delay timer of the original UI prototype.
	Latency time.Duration
}

// Mock fabricates deterministic analysis results. Safe for concurrent use.
type Mock struct {
	options Options
}

// Ensure Mock conforms to the engine.Engine interface at compile time.
var _ engine.Engine = (*Mock)(nil)

// New constructs a Mock with the given options.
func New(options Options) *Mock {
	return &Mock{options: options}
}

// Analyze fabricates a result for the given URL after the configured latency.
// Hosts under the reserved ".invalid" TLD are reported as unreachable, which
// gives callers and tests a deterministic failure path.
func (m *Mock) Analyze(ctx context.Context, rawURL string) (*domain.AnalysisResult, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "engine received unparseable URL")
	}
	if strings.HasSuffix(u.Hostname(), ".invalid") {
		return nil, serrors.With(serrors.ErrUnavailable, "host %s is unreachable", u.Hostname())
	}

	return Derive(rawURL), nil
}

// wait blocks for the configured latency or until ctx is done.
func (m *Mock) wait(ctx context.Context) error {
	if m.options.Latency <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(m.options.Latency)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return serrors.Wrap(serrors.ErrTimeout, ctx.Err(), "analysis timed out")
		}

		return serrors.Wrap(serrors.ErrInternal, ctx.Err(), "analysis canceled")
	}
}

// Derive builds the deterministic result for a URL without any latency. It is
// exported so tests and fixtures can compute expected values directly.
func Derive(rawURL string) *domain.AnalysisResult {
	h := fnv.New64a()
	_, _ = h.Write([]byte(rawURL))
	rng := rand.New(rand.NewSource(int64(h.Sum64()))) //nolint: gosec

	counts := make(map[domain.Severity]int, len(domain.Severities))
	penalty := 0
	for _, sev := range domain.Severities {
		n := rng.Intn(maxCounts[sev] + 1)
		counts[sev] = n
		switch sev {
		case domain.SeverityCritical:
			penalty += n * criticalWeight
		case domain.SeveritySerious:
			penalty += n * seriousWeight
		case domain.SeverityModerate:
			penalty += n * moderateWeight
		case domain.SeverityMinor:
			penalty += n * minorWeight
		}
	}

	score := 100 - penalty
	if score < 0 {
		score = 0
	}

	return &domain.AnalysisResult{
		Score:       score,
		IssueCounts: counts,
		Issues:      representativeIssues(counts),
	}
}

// representativeIssues walks the catalog in detection order and emits one
// finding per matched rule, capped by the fabricated count for its severity.
// The counts can exceed the catalog size; the issue list is a representative
// sample, exactly like the original prototype's hard-coded detail list.
func representativeIssues(counts map[domain.Severity]int) []domain.Issue {
	remaining := make(map[domain.Severity]int, len(counts))
	for sev, n := range counts {
		remaining[sev] = n
	}

	var issues []domain.Issue
	for _, def := range catalog {
		if remaining[def.severity] <= 0 {
			continue
		}
		remaining[def.severity]--
		issues = append(issues, domain.Issue{
			Severity:      def.severity,
			RuleID:        def.ruleID,
			Description:   def.description,
			Selector:      def.selector,
			Remediation:   def.remediation,
			WCAGReference: def.wcag,
		})
	}

	return issues
}

// SampleResult returns the canonical fixture used by tests and by the
// dashboard sample data: score 85 with 2 critical, 5 serious, 8 moderate and
// 12 minor findings.
func SampleResult() *domain.AnalysisResult {
	counts := map[domain.Severity]int{
		domain.SeverityCritical: 2,
		domain.SeveritySerious:  5,
		domain.SeverityModerate: 8,
		domain.SeverityMinor:    12,
	}

	return &domain.AnalysisResult{
		Score:       85,
		IssueCounts: counts,
		Issues:      representativeIssues(counts),
	}
}
