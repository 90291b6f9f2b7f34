package rules

import (
	"context"
	"fmt"

	"github.com/speclint/speclint/internal/report"
)

// LocalizationRule checks whether the document carries localization context
// for its target region. Absence is a single Warning; detected sub-signals
// (language tag, designated emergency numbers) are informational strengths
// and never block.
type LocalizationRule struct{}

// ID implements Rule.
func (LocalizationRule) ID() string { return "localization" }

// Priority implements Rule.
func (LocalizationRule) Priority() int { return 21 }

// Evaluate implements Rule.
func (LocalizationRule) Evaluate(ctx context.Context, in *Input) []report.Finding {
	if !containsAny(in.Doc.Text, in.Config.LocaleIndicators) {
		return []report.Finding{{
			RuleID:   "localization",
			Severity: report.SeverityWarning,
			Message:  "no localization context found",
		}}
	}

	findings := make([]report.Finding, 0)

	for _, tag := range matchedTerms(in.Doc.Text, in.Config.LanguageTags) {
		findings = append(findings, report.Finding{
			RuleID:   "localization",
			Severity: report.SeverityStrength,
			Message:  fmt.Sprintf("language tag %q present", tag),
		})
	}

	for _, number := range matchedTerms(in.Doc.Text, in.Config.EmergencyNumbers) {
		findings = append(findings, report.Finding{
			RuleID:   "localization",
			Severity: report.SeverityStrength,
			Message:  fmt.Sprintf("designated emergency number %s present", number),
		})
	}

	return findings
}
