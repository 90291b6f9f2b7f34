package rules

import (
	"context"
	"fmt"

	"github.com/speclint/speclint/internal/extract"
	"github.com/speclint/speclint/internal/report"
)

// TraceabilityRule cross-matches the companion requirements document against
// the task document: every requirement identifier declared there should be
// referenced by at least one task. Without a companion document the rule
// degrades to a single Warning and checks nothing.
type TraceabilityRule struct{}

// ID implements Rule.
func (TraceabilityRule) ID() string { return "traceability" }

// Priority implements Rule.
func (TraceabilityRule) Priority() int { return 100 }

// Evaluate implements Rule.
func (TraceabilityRule) Evaluate(ctx context.Context, in *Input) []report.Finding {
	if in.Companions.Requirements == nil {
		return []report.Finding{{
			RuleID:   "traceability",
			Severity: report.SeverityWarning,
			Message:  "no companion requirements document found",
		}}
	}

	pattern := extract.TokenPattern{Prefix: in.Config.RequirementPrefix, CaseInsensitive: true}

	declared := extract.Tokens(in.Companions.Requirements.Text, pattern)
	referenced := make(map[string]bool)
	for _, token := range extract.Tokens(in.Doc.Text, pattern) {
		referenced[token] = true
	}

	findings := make([]report.Finding, 0)

	// declared is already deduplicated, so a requirement repeated in the
	// companion document is reported as uncovered at most once.
	for _, token := range declared {
		if !referenced[token] {
			findings = append(findings, report.Finding{
				RuleID:   "traceability",
				Severity: report.SeverityWarning,
				Message:  fmt.Sprintf("requirement %s is not covered by any task", token),
			})
		}
	}

	findings = append(findings, report.Finding{
		RuleID:   "traceability",
		Severity: report.SeverityStrength,
		Message:  fmt.Sprintf("checked %d requirement identifiers", len(declared)),
	})

	return findings
}
