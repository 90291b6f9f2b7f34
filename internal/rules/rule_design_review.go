package rules

import (
	"context"
	"fmt"
	"strings"

	"github.com/speclint/speclint/internal/report"
)

// DesignReviewRule reports on the companion design document. Like
// traceability it degrades to a single Warning when the companion is absent;
// when present it emits an informational strength with the design's section
// count.
type DesignReviewRule struct{}

// ID implements Rule.
func (DesignReviewRule) ID() string { return "design_review" }

// Priority implements Rule.
func (DesignReviewRule) Priority() int { return 101 }

// Evaluate implements Rule.
func (DesignReviewRule) Evaluate(ctx context.Context, in *Input) []report.Finding {
	if in.Companions.Design == nil {
		return []report.Finding{{
			RuleID:   "design_review",
			Severity: report.SeverityWarning,
			Message:  "no companion design document found",
		}}
	}

	sections := 0
	for _, line := range strings.Split(in.Companions.Design.Text, "\n") {
		if strings.HasPrefix(line, "#") {
			sections++
		}
	}

	return []report.Finding{{
		RuleID:   "design_review",
		Severity: report.SeverityStrength,
		Message:  fmt.Sprintf("design document present with %d sections", sections),
	}}
}
