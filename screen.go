package vtengine

// Screen is the engine's public surface: a primary grid with scrollback,
// an alternate grid without it, the attribute template new cells are
// stamped with, mode flags, and the transient notifications a host asks
// about after each write.
//
// Screen is explicitly single-threaded and non-reentrant: it
// carries no internal lock. A caller sharing a Screen across goroutines
// must serialize access itself.
type Screen struct {
	primary   *Grid
	alternate *Grid
	active    *Grid

	template CellAttrs

	title    string
	iconName string

	modes Mode

	savedAttrs CellAttrs

	visualBell  bool
	audibleBell bool
	updateTitle bool
	updateIcon  bool
	dirty       bool

	scrollbackSticky bool

	// pending holds bytes left over from a truncated sequence at the
	// end of the last Write call, for the io.Writer convenience
	// wrapper around ProcessString.
	pending []byte

	diagnostics DiagnosticSink
}

// Option configures a Screen at construction time.
type Option func(*Screen)

// WithDiagnostics installs a DiagnosticSink for non-fatal warnings.
// The default is NoopDiagnostics.
func WithDiagnostics(sink DiagnosticSink) Option {
	return func(s *Screen) {
		if sink != nil {
			s.diagnostics = sink
		}
	}
}

// WithScrollbackLimit sets the primary grid's initial scrollback capacity,
// marking it sticky so Resize never recomputes it.
func WithScrollbackLimit(n int) Option {
	return func(s *Screen) {
		s.SetScrollbackLimit(n)
	}
}

// SetScrollbackLimit sets the primary grid's scrollback capacity
// (spec.md §6 set_scrollback_length), marking it sticky so a later
// Resize never recomputes it. This is the programmatic-surface
// counterpart to WithScrollbackLimit — unlike calling
// PrimaryGrid().SetScrollbackLimit(n) directly, it also pins the
// sticky flag so the limit survives the next Resize.
func (s *Screen) SetScrollbackLimit(n int) {
	s.primary.SetScrollbackLimit(n)
	s.scrollbackSticky = true
}

// New creates a Screen sized rows x cols. Default mode flags: cursor
// visible, autowrap on.
func New(rows, cols int, opts ...Option) *Screen {
	s := &Screen{
		primary:     NewGrid(rows, cols, true),
		alternate:   NewGrid(rows, cols, false),
		template:    DefaultAttrs(),
		modes:       ModeCursorVisible | ModeAutowrap,
		diagnostics: NoopDiagnostics{},
	}
	s.active = s.primary
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Grid returns the currently active grid (primary or alternate).
func (s *Screen) Grid() *Grid {
	return s.active
}

// PrimaryGrid always returns the primary (scrollback-bearing) grid,
// regardless of which grid is active.
func (s *Screen) PrimaryGrid() *Grid {
	return s.primary
}

// Mode reports whether flag is currently set.
func (s *Screen) Mode(flag Mode) bool {
	return s.modes.Has(flag)
}

// Title returns the current window title (OSC 2/OSC 0).
func (s *Screen) Title() string {
	return s.title
}

// IconName returns the current icon name (OSC 1/OSC 0).
func (s *Screen) IconName() string {
	return s.iconName
}

// TakeNotifications returns and clears the transient notification flags
// accumulated since the last call: visual bell, audible bell, and
// title/icon-name updates.
func (s *Screen) TakeNotifications() (visualBell, audibleBell, titleChanged, iconChanged bool) {
	visualBell, audibleBell = s.visualBell, s.audibleBell
	titleChanged, iconChanged = s.updateTitle, s.updateIcon
	s.visualBell, s.audibleBell = false, false
	s.updateTitle, s.updateIcon = false, false
	return
}

// Dirty reports whether text has been printed, the grids swapped, reset
// or resized since the last ClearDirty. Erasing, scrolling and the
// other grid edits made by control sequences do not set it.
func (s *Screen) Dirty() bool {
	return s.dirty
}

// ClearDirty resets the dirty flag.
func (s *Screen) ClearDirty() {
	s.dirty = false
}

// Resize changes both grids' dimensions. The scrollback cap on the
// primary grid is recomputed to match the new row count unless it was
// pinned sticky via WithScrollbackLimit or SetScrollbackLimit.
func (s *Screen) Resize(rows, cols int) {
	s.primary.Resize(rows, cols)
	s.alternate.Resize(rows, cols)
	if !s.scrollbackSticky {
		s.primary.SetScrollbackLimit(rows)
	}
	s.dirty = true
}
