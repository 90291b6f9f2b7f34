package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/speclint/speclint/internal/report"
)

func TestLocalizationRule_NoContext(t *testing.T) {
	in := newInput("- [ ] 1. Build the search page in search.tsx")

	findings := LocalizationRule{}.Evaluate(context.Background(), in)

	require.Len(t, findings, 1)
	assert.Equal(t, report.SeverityWarning, findings[0].Severity)
	assert.Equal(t, "no localization context found", findings[0].Message)
}

func TestLocalizationRule_SubSignalsAreStrengths(t *testing.T) {
	in := newInput("Target market: Poland (pl-PL). Emergency line is 112.")

	findings := LocalizationRule{}.Evaluate(context.Background(), in)

	require.Len(t, findings, 2)
	for _, f := range findings {
		assert.Equal(t, report.SeverityStrength, f.Severity)
	}
	assert.Contains(t, findings[0].Message, `language tag "pl-PL"`)
	assert.Contains(t, findings[1].Message, "emergency number 112")
}

func TestLocalizationRule_IndicatorWithoutSubSignals(t *testing.T) {
	in := newInput("Copy must be written in Polish.")

	findings := LocalizationRule{}.Evaluate(context.Background(), in)
	assert.Empty(t, findings)
}

func TestLocalizationRule_NeverBlocking(t *testing.T) {
	in := newInput("Served from Warsaw; emergency numbers 112 and 999 apply.")

	findings := LocalizationRule{}.Evaluate(context.Background(), in)
	for _, f := range findings {
		assert.NotEqual(t, report.SeverityError, f.Severity)
	}
}
