package rules

import (
	"context"
	"fmt"

	"github.com/speclint/speclint/internal/report"
)

// DomainSafetyRule scans the whole document for sensitive health-domain
// language. Sensitive content requires a safety disclaimer; diagnostic
// assertions are prohibited outright, disclaimer or not.
type DomainSafetyRule struct{}

// ID implements Rule.
func (DomainSafetyRule) ID() string { return "domain_safety" }

// Priority implements Rule.
func (DomainSafetyRule) Priority() int { return 20 }

// Evaluate implements Rule.
func (DomainSafetyRule) Evaluate(ctx context.Context, in *Input) []report.Finding {
	findings := make([]report.Finding, 0)

	sensitive := matchedTerms(in.Doc.Text, in.Config.SensitiveTerms)
	if len(sensitive) > 0 && !containsAny(in.Doc.Text, in.Config.DisclaimerTerms) {
		findings = append(findings, report.Finding{
			RuleID:   "domain_safety",
			Severity: report.SeverityError,
			Message: fmt.Sprintf("sensitive domain language present (%q) without any safety disclaimer",
				sensitive[0]),
		})
	}

	// Word-boundary match so e.g. "treatment" never triggers "treat".
	for _, term := range matchedWords(in.Doc.Text, in.Config.AssertionTerms) {
		findings = append(findings, report.Finding{
			RuleID:   "domain_safety",
			Severity: report.SeverityError,
			Message:  fmt.Sprintf("diagnostic assertion %q is not allowed", term),
		})
	}

	return findings
}
