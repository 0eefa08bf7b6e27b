package vtengine

import "github.com/charmbracelet/log"

// DiagnosticSink receives non-fatal warnings the engine emits while
// processing input it accepts but cannot fully honor. Spec §4.2 names
// exactly one such case: a CSI column-range (vertical scroll region)
// sequence is accepted and ignored, with a warning routed here, rather
// than rejected outright.
type DiagnosticSink interface {
	Warn(msg string, keyvals ...any)
}

// NoopDiagnostics discards every warning. It is the default sink for a
// Screen constructed without WithDiagnostics.
type NoopDiagnostics struct{}

// Warn implements DiagnosticSink by doing nothing.
func (NoopDiagnostics) Warn(msg string, keyvals ...any) {}

// logDiagnostics routes warnings through a charmbracelet/log logger,
// the structured-logging library this module standardizes on for every
// ambient concern.
type logDiagnostics struct {
	logger *log.Logger
}

// NewLogDiagnostics wraps logger as a DiagnosticSink. A nil logger
// falls back to log.Default().
func NewLogDiagnostics(logger *log.Logger) DiagnosticSink {
	if logger == nil {
		logger = log.Default()
	}
	return logDiagnostics{logger: logger}
}

func (d logDiagnostics) Warn(msg string, keyvals ...any) {
	d.logger.Warn(msg, keyvals...)
}
