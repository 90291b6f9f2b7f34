package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/speclint/speclint/internal/document"
	"github.com/speclint/speclint/internal/extract"
)

// newInput builds a rule input from raw document text with the default
// vocabulary tables and no companion documents.
func newInput(text string) *Input {
	doc := document.Document{Name: "tasks.md", Text: text}
	return &Input{
		Doc:        doc,
		Tasks:      extract.Tasks(text),
		Companions: document.Set{Primary: doc},
		Config:     DefaultRuleSet(),
	}
}

// withRequirements attaches a companion requirements document.
func withRequirements(in *Input, text string) *Input {
	req := document.Document{Name: "requirements.md", Text: text}
	in.Companions.Requirements = &req
	return in
}

// withDesign attaches a companion design document.
func withDesign(in *Input, text string) *Input {
	design := document.Document{Name: "design.md", Text: text}
	in.Companions.Design = &design
	return in
}

// defaultRegistry mirrors the engine's rule wiring for registry-level tests.
func defaultRegistry(t *testing.T) *Registry {
	t.Helper()
	reg := NewRegistry()
	for _, rule := range []Rule{
		TemplateRule{},
		AtomicityRule{},
		ActionabilityRule{},
		DomainSafetyRule{},
		LocalizationRule{},
		TraceabilityRule{},
		DesignReviewRule{},
	} {
		require.NoError(t, reg.Register(rule))
	}
	return reg
}

func TestRegistry_RejectsDuplicateIDs(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(TemplateRule{}))

	err := reg.Register(TemplateRule{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "template")
}

func TestRegistry_SortsByPriority(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(TraceabilityRule{}))
	require.NoError(t, reg.Register(TemplateRule{}))
	require.NoError(t, reg.Register(AtomicityRule{}))

	ids := make([]string, 0)
	for _, rule := range reg.Rules() {
		ids = append(ids, rule.ID())
	}
	assert.Equal(t, []string{"template", "atomicity", "traceability"}, ids)
}

func TestRegistry_ParallelMatchesSequential(t *testing.T) {
	reg := defaultRegistry(t)

	in := withRequirements(newInput(`# Implementation Plan
## Tasks
- [ ] 1. Update the scheduler in scheduler.go so overlapping visits return an error
- [ ] 2. Everything
## Verification
Run the suite.
`), "REQ-1 covers booking. REQ-2 covers cancellation.")

	sequential := reg.Evaluate(context.Background(), in)
	parallel := reg.EvaluateParallel(context.Background(), in)

	assert.Equal(t, sequential, parallel)
}

func TestRegistry_EmptyRegistryYieldsNoFindings(t *testing.T) {
	reg := NewRegistry()
	assert.Empty(t, reg.Evaluate(context.Background(), newInput("")))
}
