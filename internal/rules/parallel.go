package rules

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/speclint/speclint/internal/report"
)

// EvaluateParallel runs every rule concurrently and folds their findings in
// priority order. Rules are mutually independent pure functions, so the
// output is identical to Evaluate; only the aggregation acts as a barrier.
func (r *Registry) EvaluateParallel(ctx context.Context, in *Input) []report.Finding {
	slots := make([][]report.Finding, len(r.rules))

	g, gctx := errgroup.WithContext(ctx)
	for i, rule := range r.rules {
		i, rule := i, rule
		g.Go(func() error {
			slots[i] = rule.Evaluate(gctx, in)
			return nil
		})
	}
	// Rules never return errors, so Wait only serves as the join point.
	_ = g.Wait()

	findings := make([]report.Finding, 0)
	for _, slot := range slots {
		findings = append(findings, slot...)
	}
	return findings
}
