package rules

import (
	"context"
	"fmt"

	"github.com/speclint/speclint/internal/extract"
	"github.com/speclint/speclint/internal/report"
)

// ActionabilityRule checks that each task reads as something an implementer
// can act on and verify: an imperative action verb, a success criterion, and
// a requirement reference for traceability.
type ActionabilityRule struct{}

// ID implements Rule.
func (ActionabilityRule) ID() string { return "actionability" }

// Priority implements Rule.
func (ActionabilityRule) Priority() int { return 11 }

// Evaluate implements Rule.
func (ActionabilityRule) Evaluate(ctx context.Context, in *Input) []report.Finding {
	findings := make([]report.Finding, 0)

	pattern := extract.TokenPattern{Prefix: in.Config.RequirementPrefix, CaseInsensitive: true}

	for _, task := range in.Tasks {
		if !containsAny(task.Description, in.Config.ActionVerbs) {
			findings = append(findings, report.Finding{
				RuleID:   "actionability",
				Severity: report.SeverityWarning,
				Message: fmt.Sprintf("task %d (line %d): no recognized action verb",
					task.Ordinal, task.SourceLine),
			})
		}

		if !containsAny(task.Description, in.Config.SuccessTerms) {
			findings = append(findings, report.Finding{
				RuleID:   "actionability",
				Severity: report.SeverityWarning,
				Message: fmt.Sprintf("task %d (line %d): no recognized success criterion",
					task.Ordinal, task.SourceLine),
			})
		}

		if len(extract.Tokens(task.Description, pattern)) == 0 {
			findings = append(findings, report.Finding{
				RuleID:   "actionability",
				Severity: report.SeverityWarning,
				Message: fmt.Sprintf("task %d (line %d): no %s<n> requirement reference",
					task.Ordinal, task.SourceLine, in.Config.RequirementPrefix),
			})
		}
	}

	return findings
}
