package vtengine

import "testing"

type recordingSink struct {
	warnings []string
}

func (r *recordingSink) Warn(msg string, keyvals ...any) {
	r.warnings = append(r.warnings, msg)
}

func TestScreenWarnsOnColumnRangeScrollRegion(t *testing.T) {
	sink := &recordingSink{}
	s := New(5, 10, WithDiagnostics(sink))

	s.Write([]byte("\x1b[2;4;1;5r")) // DECSTBM with a column-range extension

	if len(sink.warnings) != 1 {
		t.Fatalf("expected exactly one warning, got %d: %v", len(sink.warnings), sink.warnings)
	}

	top, bottom := s.Grid().ScrollRegion()
	if top != 0 || bottom != 4 {
		t.Fatalf("column-range DECSTBM should be a no-op, ScrollRegion() = (%d,%d), want (0,4)", top, bottom)
	}
}

func TestNoopDiagnosticsDiscardsWarnings(t *testing.T) {
	s := New(5, 10)
	s.Write([]byte("\x1b[2;4;1;5r"))
	// No assertion beyond not panicking: the default sink is silent.
}
