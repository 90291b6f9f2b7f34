// Package report defines validation findings, the rating policy, and the
// report produced by a validation run.
package report

import (
	"time"

	"github.com/google/uuid"
)

// Severity classifies a finding.
type Severity int

const (
	// SeverityError marks a blocking deficiency.
	SeverityError Severity = iota

	// SeverityWarning marks a recommended fix that does not block on its own.
	SeverityWarning

	// SeverityStrength marks an informational positive signal.
	SeverityStrength
)

// String returns the display name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "ERROR"
	case SeverityWarning:
		return "WARNING"
	case SeverityStrength:
		return "STRENGTH"
	default:
		return "UNKNOWN"
	}
}

// Finding is one reportable observation produced by a rule. Findings are
// purely descriptive; they never carry remediation actions.
type Finding struct {
	// RuleID identifies the rule that produced the finding.
	RuleID string

	// Severity classifies the finding.
	Severity Severity

	// Message is the human-readable description.
	Message string
}

// Summary holds per-severity finding counts. It is always recomputed from
// the findings actually present, never maintained incrementally.
type Summary struct {
	Errors    int
	Warnings  int
	Strengths int
}

// Rating is the single overall verdict for a validation run.
type Rating string

const (
	RatingPass             Rating = "pass"
	RatingNeedsImprovement Rating = "needs_improvement"
	RatingMajorIssues      Rating = "major_issues"
)

// warningThreshold is the flat warning count above which a run without
// errors is downgraded. All warnings carry equal weight regardless of the
// rule that produced them.
const warningThreshold = 3

// Rate computes the overall rating from finding counts. It is a pure
// function of the two counts: any error means major issues; more than
// warningThreshold warnings means the plan needs improvement; otherwise the
// run passes. Strength counts never affect the rating.
func Rate(errors, warnings int) Rating {
	switch {
	case errors > 0:
		return RatingMajorIssues
	case warnings > warningThreshold:
		return RatingNeedsImprovement
	default:
		return RatingPass
	}
}

// Report is the immutable result of one validation run.
type Report struct {
	// RunID uniquely identifies this run.
	RunID string

	// GeneratedAt is when the report was built.
	GeneratedAt time.Time

	// Document is the name of the primary document that was validated.
	Document string

	// Rating is the overall verdict, derived from Summary via Rate.
	Rating Rating

	// Findings holds every finding in the order rules produced them.
	Findings []Finding

	// Summary holds the per-severity counts of Findings.
	Summary Summary
}

// Build assembles a report from the findings of a run. The summary is
// counted from the findings and the rating derived from the summary, so the
// three can never drift apart.
func Build(docName string, findings []Finding) *Report {
	var summary Summary
	for _, f := range findings {
		switch f.Severity {
		case SeverityError:
			summary.Errors++
		case SeverityWarning:
			summary.Warnings++
		case SeverityStrength:
			summary.Strengths++
		}
	}

	return &Report{
		RunID:       uuid.New().String(),
		GeneratedAt: time.Now().UTC(),
		Document:    docName,
		Rating:      Rate(summary.Errors, summary.Warnings),
		Findings:    findings,
		Summary:     summary,
	}
}
