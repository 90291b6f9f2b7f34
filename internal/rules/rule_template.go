package rules

import (
	"context"
	"fmt"
	"strings"

	"github.com/speclint/speclint/internal/report"
)

// TemplateRule verifies the document follows the expected template: every
// required section heading is present and at least one correctly formatted
// checkbox task line exists.
type TemplateRule struct{}

// ID implements Rule.
func (TemplateRule) ID() string { return "template" }

// Priority implements Rule.
func (TemplateRule) Priority() int { return 1 }

// Evaluate implements Rule.
func (TemplateRule) Evaluate(ctx context.Context, in *Input) []report.Finding {
	findings := make([]report.Finding, 0)

	for _, heading := range in.Config.RequiredHeadings {
		if !strings.Contains(in.Doc.Text, heading) {
			findings = append(findings, report.Finding{
				RuleID:   "template",
				Severity: report.SeverityError,
				Message:  fmt.Sprintf("missing required section %q", heading),
			})
		}
	}

	if len(in.Tasks) == 0 {
		findings = append(findings, report.Finding{
			RuleID:   "template",
			Severity: report.SeverityError,
			Message:  "no properly formatted task entries found",
		})
	} else {
		findings = append(findings, report.Finding{
			RuleID:   "template",
			Severity: report.SeverityStrength,
			Message:  fmt.Sprintf("found %d properly formatted task entries", len(in.Tasks)),
		})
	}

	return findings
}
