package report

import (
	"fmt"
	"strings"
)

// renderOrder fixes the severity grouping of the textual rendering.
var renderOrder = []Severity{SeverityError, SeverityWarning, SeverityStrength}

// Render produces the deterministic textual form of a report: findings
// grouped by severity (errors first, strengths last), each group numbered,
// followed by the counts and the rating. Render performs no I/O; the caller
// decides whether to print or persist the result.
func Render(r *Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Validation report for %s\n", r.Document)

	for _, sev := range renderOrder {
		group := make([]Finding, 0)
		for _, f := range r.Findings {
			if f.Severity == sev {
				group = append(group, f)
			}
		}
		if len(group) == 0 {
			continue
		}

		fmt.Fprintf(&b, "\n%s (%d)\n", sev, len(group))
		for i, f := range group {
			fmt.Fprintf(&b, "  %d. [%s] %s\n", i+1, f.RuleID, f.Message)
		}
	}

	fmt.Fprintf(&b, "\nErrors: %d  Warnings: %d  Strengths: %d\n",
		r.Summary.Errors, r.Summary.Warnings, r.Summary.Strengths)
	fmt.Fprintf(&b, "Rating: %s\n", r.Rating)

	return b.String()
}
