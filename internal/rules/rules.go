// Package rules defines the quality rules applied to planning documents and
// the registry that runs them.
package rules

import (
	"context"
	"fmt"
	"sort"

	"github.com/speclint/speclint/internal/document"
	"github.com/speclint/speclint/internal/extract"
	"github.com/speclint/speclint/internal/report"
)

// Input is everything a rule may consult: the primary document, the task
// entries extracted from it, any companion documents, and the vocabulary
// tables. Rules treat the input as read-only.
type Input struct {
	Doc        document.Document
	Tasks      []extract.TaskEntry
	Companions document.Set
	Config     *RuleSet
}

// Rule is one independent quality check. Rules are pure functions of their
// input: they hold no state, never perform I/O, and never fail — anything a
// rule cannot evaluate degrades to a Warning finding. Independence is a hard
// contract so rules can be added, removed, or run in parallel without
// affecting each other's output.
type Rule interface {
	// ID returns the unique identifier stamped onto this rule's findings.
	ID() string

	// Priority determines presentation order (lower values run first).
	// Suggested priorities:
	//   1-9:   structural checks (template compliance)
	//   10-99: per-task and document content checks
	//   100+:  cross-document checks (traceability)
	Priority() int

	// Evaluate checks the input and returns zero or more findings.
	Evaluate(ctx context.Context, in *Input) []report.Finding
}

// Registry holds an ordered collection of rules.
type Registry struct {
	rules []Rule
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{rules: make([]Rule, 0)}
}

// Register adds a rule, keeping the collection sorted by priority. Duplicate
// rule IDs are rejected so findings stay attributable.
func (r *Registry) Register(rule Rule) error {
	for _, existing := range r.rules {
		if existing.ID() == rule.ID() {
			return fmt.Errorf("rule %q already registered", rule.ID())
		}
	}

	r.rules = append(r.rules, rule)
	sort.SliceStable(r.rules, func(i, j int) bool {
		return r.rules[i].Priority() < r.rules[j].Priority()
	})
	return nil
}

// Rules returns the registered rules in priority order.
func (r *Registry) Rules() []Rule {
	out := make([]Rule, len(r.rules))
	copy(out, r.rules)
	return out
}

// Evaluate runs every rule sequentially in priority order and folds their
// findings into one slice.
func (r *Registry) Evaluate(ctx context.Context, in *Input) []report.Finding {
	findings := make([]report.Finding, 0)
	for _, rule := range r.rules {
		findings = append(findings, rule.Evaluate(ctx, in)...)
	}
	return findings
}
