package diag

import "sift/internal/source"

// Reporter is the minimal contract for receiving diagnostics from
// producing phases. Implementations: BagReporter (stores into a Bag),
// NopReporter (drops everything).
type Reporter interface {
	Report(sev Severity, code string, primary source.Span, msg string)
}

// BagReporter forwards every report into a *Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(sev Severity, code string, primary source.Span, msg string) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(New(sev, code, primary, msg))
}

// NopReporter discards all reports.
type NopReporter struct{}

func (NopReporter) Report(Severity, string, source.Span, string) {}
