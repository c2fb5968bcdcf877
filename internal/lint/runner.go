package lint

import (
	"sort"

	"sift/internal/diag"
)

// Run executes each rule over the program with its own fresh Context
// and merges the results into one ordered slice: ascending by span
// start, then by rule code. The tree is read-only shared data and no
// Context crosses rules, so the per-rule loop could run in parallel;
// the merge order makes the output identical either way.
func Run(factories []Factory, program Program) []diag.Diagnostic {
	var merged []diag.Diagnostic
	for _, factory := range factories {
		ctx := NewContext()
		factory().LintProgram(ctx, program)
		merged = append(merged, ctx.Diagnostics()...)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].Primary.Start != merged[j].Primary.Start {
			return merged[i].Primary.Start < merged[j].Primary.Start
		}
		return merged[i].Code < merged[j].Code
	})
	return merged
}
