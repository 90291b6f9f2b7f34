// Package engine wires the validation pipeline: load the document set,
// extract task entries, run every registered rule, and aggregate the
// findings into a report.
package engine

import (
	"context"
	"fmt"

	"github.com/speclint/speclint/internal/document"
	"github.com/speclint/speclint/internal/extract"
	"github.com/speclint/speclint/internal/report"
	"github.com/speclint/speclint/internal/rules"
)

// Runner executes validation runs. Construct with New; zero value is not
// usable.
type Runner struct {
	source   document.Source
	policy   document.ResolutionPolicy
	registry *rules.Registry
	config   *rules.RuleSet

	// Parallel evaluates rules concurrently. Output is identical either
	// way; rules are independent pure functions.
	Parallel bool
}

// New creates a Runner over the given source with the standard rule set
// registered. A nil config uses the default vocabulary tables.
func New(source document.Source, config *rules.RuleSet) (*Runner, error) {
	if config == nil {
		config = rules.DefaultRuleSet()
	}

	registry := rules.NewRegistry()
	for _, rule := range []rules.Rule{
		rules.TemplateRule{},
		rules.AtomicityRule{},
		rules.ActionabilityRule{},
		rules.DomainSafetyRule{},
		rules.LocalizationRule{},
		rules.TraceabilityRule{},
		rules.DesignReviewRule{},
	} {
		if err := registry.Register(rule); err != nil {
			return nil, fmt.Errorf("registering rules: %w", err)
		}
	}

	return &Runner{
		source:   source,
		policy:   document.DefaultResolutionPolicy(),
		registry: registry,
		config:   config,
	}, nil
}

// Rules returns the registered rules in evaluation order.
func (r *Runner) Rules() []rules.Rule {
	return r.registry.Rules()
}

// Run validates the named primary document and returns its report. The only
// fatal failure is an unloadable primary document; every content deficiency
// is a finding inside the returned report.
func (r *Runner) Run(ctx context.Context, primary string) (*report.Report, error) {
	set, err := document.LoadSet(r.source, r.policy, primary)
	if err != nil {
		return nil, err
	}

	in := &rules.Input{
		Doc:        set.Primary,
		Tasks:      extract.Tasks(set.Primary.Text),
		Companions: set,
		Config:     r.config,
	}

	var findings []report.Finding
	if r.Parallel {
		findings = r.registry.EvaluateParallel(ctx, in)
	} else {
		findings = r.registry.Evaluate(ctx, in)
	}

	return report.Build(set.Primary.Name, findings), nil
}
