// Package diag defines the diagnostics channel used by the generation
// pipeline. Failures are reported against the declaration that caused them
// and never abort the batch; the reporter decides how they surface.
package diag

import (
	"context"
	"sync"

	"github.com/specialistvlad/codegengo/internal/ctxlog"
)

// Severity classifies a diagnostic message.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

// String returns the lowercase name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "info"
	}
}

// Diagnostic is one reported message, optionally tied to the declaration
// that originated it.
type Diagnostic struct {
	Severity Severity
	Message  string
	// Element identifies the originating declaration, e.g. "io.acme.Foo"
	// or "io.acme.Foo#bar". Empty when the diagnostic is not tied to one.
	Element string
}

// Reporter accepts diagnostics from the pipeline.
type Reporter interface {
	Report(ctx context.Context, d Diagnostic)
}

// LogReporter forwards every diagnostic to the context logger.
type LogReporter struct{}

// Report implements Reporter.
func (LogReporter) Report(ctx context.Context, d Diagnostic) {
	logger := ctxlog.FromContext(ctx)
	switch d.Severity {
	case SeverityError:
		logger.Error(d.Message, "element", d.Element)
	case SeverityWarning:
		logger.Warn(d.Message, "element", d.Element)
	default:
		logger.Info(d.Message, "element", d.Element)
	}
}

// Recorder collects diagnostics in memory. It is safe for concurrent use
// and is primarily meant for tests and dry runs.
type Recorder struct {
	mu   sync.Mutex
	seen []Diagnostic
}

// Report implements Reporter.
func (r *Recorder) Report(_ context.Context, d Diagnostic) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = append(r.seen, d)
}

// All returns a copy of every recorded diagnostic, in report order.
func (r *Recorder) All() []Diagnostic {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Diagnostic, len(r.seen))
	copy(out, r.seen)
	return out
}

// Errors returns only the recorded diagnostics with SeverityError.
func (r *Recorder) Errors() []Diagnostic {
	var out []Diagnostic
	for _, d := range r.All() {
		if d.Severity == SeverityError {
			out = append(out, d)
		}
	}
	return out
}
