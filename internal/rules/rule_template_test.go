package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/speclint/speclint/internal/report"
)

func TestTemplateRule_CompliantDocument(t *testing.T) {
	in := newInput(`# Implementation Plan
## Tasks
- [ ] 1. Create the visit model in visit.go
- [ ] 2. Write tests for visit.go
## Verification
`)

	findings := TemplateRule{}.Evaluate(context.Background(), in)

	require.Len(t, findings, 1)
	assert.Equal(t, report.SeverityStrength, findings[0].Severity)
	assert.Equal(t, "found 2 properly formatted task entries", findings[0].Message)
}

func TestTemplateRule_MissingHeadings(t *testing.T) {
	in := newInput(`# Implementation Plan
- [ ] 1. Create the visit model in visit.go
`)

	findings := TemplateRule{}.Evaluate(context.Background(), in)

	errs := findingsWithSeverity(findings, report.SeverityError)
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0].Message, `"## Tasks"`)
	assert.Contains(t, errs[1].Message, `"## Verification"`)
}

func TestTemplateRule_NoTaskEntries(t *testing.T) {
	in := newInput(`# Implementation Plan
## Tasks
## Verification
Nothing checked off here.
`)

	findings := TemplateRule{}.Evaluate(context.Background(), in)

	require.Len(t, findings, 1)
	assert.Equal(t, report.SeverityError, findings[0].Severity)
	assert.Equal(t, "no properly formatted task entries found", findings[0].Message)
}

// Empty task lists must not produce per-task findings in the per-task rules;
// the template rule alone reports the condition.
func TestTemplateRule_EmptyTaskListSuppressesPerTaskRules(t *testing.T) {
	in := newInput("prose only, no headings, no checkboxes")

	assert.Empty(t, AtomicityRule{}.Evaluate(context.Background(), in))
	assert.Empty(t, ActionabilityRule{}.Evaluate(context.Background(), in))

	findings := TemplateRule{}.Evaluate(context.Background(), in)
	errs := findingsWithSeverity(findings, report.SeverityError)
	assert.Len(t, errs, len(DefaultRuleSet().RequiredHeadings)+1)
}

func findingsWithSeverity(findings []report.Finding, sev report.Severity) []report.Finding {
	out := make([]report.Finding, 0)
	for _, f := range findings {
		if f.Severity == sev {
			out = append(out, f)
		}
	}
	return out
}
