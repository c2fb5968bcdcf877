package rules

import (
	"sift/internal/lint"
)

// All returns the factories for every built-in rule. The registry
// validates the codes once at startup.
func All() []lint.Factory {
	return []lint.Factory{
		NewNoDebugger,
		NewNoEval,
		NewNoVar,
	}
}
