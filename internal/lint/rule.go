package lint

import (
	"fmt"
	"strings"
)

// Docs is the documentation payload a rule carries: prose followed by
// one invalid and one valid snippet. The rendered structure is a
// presentation contract consumed by the `sift rules` command and doc
// generators; the engine never parses it back.
type Docs struct {
	Summary string
	Invalid string
	Valid   string
}

// Render produces the fixed markdown layout: prose, then an "Invalid:"
// section, then a "Valid:" section, each with one fenced snippet.
func (d Docs) Render() string {
	var sb strings.Builder
	sb.WriteString(strings.TrimSpace(d.Summary))
	sb.WriteString("\n\n### Invalid:\n\n```typescript\n")
	sb.WriteString(strings.TrimSpace(d.Invalid))
	sb.WriteString("\n```\n\n### Valid:\n\n```typescript\n")
	sb.WriteString(strings.TrimSpace(d.Valid))
	sb.WriteString("\n```\n")
	return sb.String()
}

// Rule is the contract every lint rule implements. Rules are stateless:
// a factory produces a fresh instance per run and LintProgram carries
// everything through its arguments.
type Rule interface {
	// Code returns the rule's stable kebab-case identifier. It must be
	// constant across calls; the registry enforces uniqueness.
	Code() string

	// Docs returns the rule's documentation payload.
	Docs() Docs

	// LintProgram walks the program and reports violations into ctx.
	// It must visit every reachable node at most once and must not
	// panic on any well-formed tree.
	LintProgram(ctx *Context, program Program)
}

// Factory constructs a fresh rule instance. It must not perform I/O
// and must not fail.
type Factory func() Rule

// Lint runs a single rule over a program with a fresh context and
// returns the context, mostly as a convenience for tests and one-off
// callers. Production paths go through the Runner.
func Lint(factory Factory, program Program) *Context {
	ctx := NewContext()
	factory().LintProgram(ctx, program)
	return ctx
}

// ValidateCode rejects empty or non-kebab-style rule codes early, so a
// typo fails registry construction instead of silently never matching
// configuration.
func ValidateCode(code string) error {
	if code == "" {
		return fmt.Errorf("rule code must not be empty")
	}
	for _, r := range code {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '-' {
			return fmt.Errorf("rule code %q must be kebab-case (a-z, 0-9, '-')", code)
		}
	}
	if strings.HasPrefix(code, "-") || strings.HasSuffix(code, "-") {
		return fmt.Errorf("rule code %q must not start or end with '-'", code)
	}
	return nil
}
