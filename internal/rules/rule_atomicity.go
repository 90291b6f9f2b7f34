package rules

import (
	"context"
	"fmt"

	"github.com/speclint/speclint/internal/report"
)

// AtomicityRule flags task entries that look too large or too abstract to be
// assigned as a single unit of work: overlong descriptions, whole-system
// scope vocabulary, and descriptions that name no file at all.
type AtomicityRule struct{}

// ID implements Rule.
func (AtomicityRule) ID() string { return "atomicity" }

// Priority implements Rule.
func (AtomicityRule) Priority() int { return 10 }

// Evaluate implements Rule.
func (AtomicityRule) Evaluate(ctx context.Context, in *Input) []report.Finding {
	findings := make([]report.Finding, 0)

	for _, task := range in.Tasks {
		if n := len(task.Description); n > in.Config.MaxDescriptionLength {
			findings = append(findings, report.Finding{
				RuleID:   "atomicity",
				Severity: report.SeverityWarning,
				Message: fmt.Sprintf("task %d (line %d): description is %d characters, over the %d character limit",
					task.Ordinal, task.SourceLine, n, in.Config.MaxDescriptionLength),
			})
		}

		for _, term := range matchedTerms(task.Description, in.Config.BroadScopeTerms) {
			findings = append(findings, report.Finding{
				RuleID:   "atomicity",
				Severity: report.SeverityWarning,
				Message: fmt.Sprintf("task %d (line %d): overly broad scope term %q",
					task.Ordinal, task.SourceLine, term),
			})
		}

		if !containsAny(task.Description, in.Config.FileHintTerms) {
			findings = append(findings, report.Finding{
				RuleID:   "atomicity",
				Severity: report.SeverityWarning,
				Message: fmt.Sprintf("task %d (line %d): no file or file-type reference; task may be too abstract to assign",
					task.Ordinal, task.SourceLine),
			})
		}
	}

	return findings
}
