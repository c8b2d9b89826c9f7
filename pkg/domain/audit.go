package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditID uniquely identifies an audit.
// It wraps uuid.UUID to provide type safety at the domain layer.
type AuditID uuid.UUID

// String returns the canonical UUID form.
func (id AuditID) String() string { return uuid.UUID(id).String() }

// MarshalText implements encoding.TextMarshaler so IDs serialize as UUID
// strings rather than byte arrays.
func (id AuditID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *AuditID) UnmarshalText(text []byte) error {
	parsed, err := uuid.Parse(string(text))
	if err != nil {
		return err
	}
	*id = AuditID(parsed)

	return nil
}

// AuditStatus represents the lifecycle state of a stored audit.
type AuditStatus string

const (
	// AuditStatusPending indicates the audit has been enqueued but not processed yet.
	AuditStatusPending AuditStatus = "PENDING"
	// AuditStatusCompleted indicates the audit finished and a result is available.
	AuditStatusCompleted AuditStatus = "COMPLETED"
	// AuditStatusFailed indicates the audit ended with an error; see LastError and Attempts.
	AuditStatusFailed AuditStatus = "FAILED"
)

// Severity ranks the user impact of an accessibility issue.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeveritySerious  Severity = "serious"
	SeverityModerate Severity = "moderate"
	SeverityMinor    Severity = "minor"
)

// Severities lists all known severities ordered from most to least impactful.
// The order is load-bearing: issue lists and count summaries follow it.
var Severities = []Severity{SeverityCritical, SeveritySerious, SeverityModerate, SeverityMinor} //nolint: gochecknoglobals

// Known reports whether s is one of the closed severity set. Values coming
// from outside the process (a future real engine) must be checked with this
// before being treated as typed.
func (s Severity) Known() bool {
	switch s {
	case SeverityCritical, SeveritySerious, SeverityModerate, SeverityMinor:
		return true
	}

	return false
}

// Issue describes a single accessibility finding. All fields are immutable
// strings; an AnalysisResult is never modified after creation.
type Issue struct {
	// Severity is the impact tier of this issue.
	Severity Severity `json:"severity"`
	// RuleID names the audit rule that produced the finding, e.g. "color-contrast".
	RuleID string `json:"ruleId"`
	// Description is a human-readable summary of the problem.
	Description string `json:"description"`
	// Selector locates the offending element, e.g. "button.primary".
	Selector string `json:"selector"`
	// Remediation explains how to fix the issue.
	Remediation string `json:"remediation"`
	// WCAGReference points at the relevant WCAG success criterion.
	WCAGReference string `json:"wcagReference"`
}

// AnalysisResult holds the outcome of one accessibility analysis. It is
// immutable once produced; downstream consumers only read it.
type AnalysisResult struct {
	// Score is the overall accessibility score in 0..100.
	Score int `json:"score"`
	// IssueCounts maps each severity tier to a non-negative count.
	IssueCounts map[Severity]int `json:"issueCounts"`
	// Issues lists the findings in detection order. The order is stable for a
	// given input.
	Issues []Issue `json:"issues"`
}

// TotalIssues sums the per-severity counts.
func (r *AnalysisResult) TotalIssues() int {
	var total int
	for _, n := range r.IssueCounts {
		total += n
	}

	return total
}

// Audit represents a single accessibility audit request and its current state.
// It tracks the target URL, status, result, error information, and timestamps.
type Audit struct {
	// ID is the unique identifier of the audit.
	ID AuditID `json:"id"`
	// UserID is the identifier of the user who requested the audit.
	UserID UserID `json:"userId"`

	// URL is the normalized target that will be analyzed.
	URL string `json:"url"`
	// Status is the current lifecycle state of the audit.
	Status AuditStatus `json:"status"`
	// Result contains the latest known outcome of the audit. Nil until the
	// audit completes.
	Result *AnalysisResult `json:"result,omitempty"`

	// Attempts is the number of times the system has tried to process this audit.
	Attempts uint `json:"attempts"`
	// LastError stores the most recent error message, if any.
	LastError string `json:"-"`

	// CreatedAt is the time when the audit request was created.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time when the audit was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
	// DeletedAt marks when the audit was soft-deleted; zero value means not deleted.
	DeletedAt time.Time `json:"-"`
}
