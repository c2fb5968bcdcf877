// Package diag defines the diagnostic model shared by the lexer, parser,
// and lint engine.
//
// Diagnostic is the central record: severity, a stable string code
// ("no-var" for lint rules, "parse/..." for syntax errors), a short
// message, and the primary source span. Producers emit through a
// Reporter so they stay decoupled from storage; Bag aggregates
// diagnostics and provides the deterministic sort order every consumer
// relies on (file, span start, span end, code).
//
// The package performs no formatting or IO. Rendering lives in
// internal/diagfmt; orchestration in internal/driver.
package diag
