package diag

import (
	"sift/internal/source"
)

// Diagnostic is one reported finding. Immutable once created.
type Diagnostic struct {
	Severity Severity
	Code     string
	Message  string
	Primary  source.Span
}

// New constructs a Diagnostic.
func New(sev Severity, code string, primary source.Span, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
	}
}

// NewError is a shortcut for SevError diagnostics.
func NewError(code string, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

// NewWarning is a shortcut for SevWarning diagnostics.
func NewWarning(code string, primary source.Span, msg string) Diagnostic {
	return New(SevWarning, code, primary, msg)
}
