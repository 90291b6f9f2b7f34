package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/speclint/speclint/internal/report"
)

const compliantMedicalDoc = `# Implementation Plan
- [ ] 1. Implement hospital search in search.go
Disclaimer: this tool does not provide medical advice; seek professional advice
and use the designated emergency numbers when needed.
`

func TestDomainSafetyRule_SensitiveWithoutDisclaimer(t *testing.T) {
	in := newInput("- [ ] 1. Implement hospital search in search.go")

	findings := DomainSafetyRule{}.Evaluate(context.Background(), in)

	require.Len(t, findings, 1)
	assert.Equal(t, report.SeverityError, findings[0].Severity)
	assert.Contains(t, findings[0].Message, "without any safety disclaimer")
	assert.Contains(t, findings[0].Message, `"hospital"`)
}

func TestDomainSafetyRule_SensitiveWithDisclaimer(t *testing.T) {
	in := newInput(compliantMedicalDoc)
	assert.Empty(t, DomainSafetyRule{}.Evaluate(context.Background(), in))
}

func TestDomainSafetyRule_AssertionAlwaysError(t *testing.T) {
	in := newInput(compliantMedicalDoc + "\nThe system will diagnose common conditions.")

	findings := DomainSafetyRule{}.Evaluate(context.Background(), in)

	require.Len(t, findings, 1)
	assert.Equal(t, report.SeverityError, findings[0].Severity)
	assert.Contains(t, findings[0].Message, `diagnostic assertion "diagnose"`)
}

// Adding an assertion keyword to an otherwise-compliant document adds exactly
// one new error and removes nothing.
func TestDomainSafetyRule_Monotonic(t *testing.T) {
	before := DomainSafetyRule{}.Evaluate(context.Background(), newInput(compliantMedicalDoc))
	after := DomainSafetyRule{}.Evaluate(context.Background(),
		newInput(compliantMedicalDoc+"\nWe prescribe rest."))

	require.Len(t, after, len(before)+1)
	assert.Subset(t, after, before)
	assert.Contains(t, after[len(after)-1].Message, `"prescribe"`)
}

// "treatment" is sensitive vocabulary but must not trigger the word-boundary
// matched assertion term "treat".
func TestDomainSafetyRule_WordBoundaryAssertions(t *testing.T) {
	in := newInput(compliantMedicalDoc + "\nDescribe treatment options neutrally.")
	assert.Empty(t, DomainSafetyRule{}.Evaluate(context.Background(), in))

	in = newInput(compliantMedicalDoc + "\nWe treat patients here.")
	findings := DomainSafetyRule{}.Evaluate(context.Background(), in)
	require.Len(t, findings, 1)
	assert.Contains(t, findings[0].Message, `"treat"`)
}

func TestDomainSafetyRule_NonMedicalDocument(t *testing.T) {
	in := newInput("- [ ] 1. Build the settings page in settings.tsx")
	assert.Empty(t, DomainSafetyRule{}.Evaluate(context.Background(), in))
}
