package vtengine

import (
	"strconv"
	"strings"
)

// print handles one decoded printable rune: zero-width combining marks
// attach to a preceding cell, everything else writes a new cell,
// wrapping the line first if it doesn't fit.
func (s *Screen) print(r rune) {
	w := charWidth(r)
	if w == 0 {
		s.printCombining(r)
		return
	}

	g := s.active
	cur := g.Cursor()
	_, cols := g.Max()

	if cur.Col+w > cols {
		g.SetWrapped(cur.Row, true)
		g.MoveDownOrScroll()
		g.MoveToCol(0)
		cur = g.Cursor()
	}

	// A stale wide character to the immediate left (its phantom column
	// is where we're about to write) must not keep rendering as
	// double-width once its right half is overwritten.
	if cur.Col > 0 {
		if left, ok := g.CellAt(cur.Row, cur.Col-1); ok && left.IsWide() {
			left.Reset()
		}
	}

	if cell, ok := g.CellAt(cur.Row, cur.Col); ok {
		cell.setRune(r, w, s.template)
	}
	if w == 2 {
		if phantom, ok := g.CellAt(cur.Row, cur.Col+1); ok {
			phantom.setPhantom(s.template)
		}
	}
	g.AdvanceCol(w)
	s.dirty = true
}

// printCombining attaches a zero-width rune to the cell immediately
// before the cursor, or to the last cell of the previous row when the
// cursor is at column 0 and the previous row soft-wrapped into it.
// With no eligible preceding cell, the mark is discarded.
func (s *Screen) printCombining(r rune) {
	g := s.active
	cur := g.Cursor()

	if cur.Col > 0 {
		if cell, ok := g.CellAt(cur.Row, cur.Col-1); ok && !cell.Empty() {
			cell.appendCombining(r)
			s.dirty = true
		}
		return
	}

	if cur.Row > 0 && g.IsWrapped(cur.Row-1) {
		_, cols := g.Max()
		if cell, ok := g.CellAt(cur.Row-1, cols-1); ok && !cell.Empty() {
			cell.appendCombining(r)
			s.dirty = true
		}
	}
}

// c0 executes a single C0 control code.
func (s *Screen) c0(b byte) {
	g := s.active
	switch b {
	case 0x07: // BEL
		s.audibleBell = true
	case 0x08: // BS
		g.MoveBy(0, -1)
	case 0x09: // HT — fixed 8-column tab stops (spec Non-goals: no custom stops)
		cur := g.Cursor()
		_, cols := g.Max()
		next := ((cur.Col / 8) + 1) * 8
		if next > cols-1 {
			next = cols - 1
		}
		g.MoveToCol(next)
	case 0x0A, 0x0B, 0x0C: // LF, VT, FF
		g.MoveDownOrScroll()
	case 0x0D: // CR
		g.MoveToCol(0)
	}
}

// escDispatch executes a two-character (or intermediate-bearing) escape
// sequence once its final byte arrives.
func (s *Screen) escDispatch(final byte, interm []byte) {
	switch final {
	case '7':
		s.active.SaveCursorPosition()
		s.savedAttrs = s.template
	case '8':
		s.active.RestoreCursorPosition()
		s.template = s.savedAttrs
	case 'D':
		s.active.MoveDownOrScroll()
	case 'M':
		s.active.MoveUpOrScroll()
	case 'c':
		s.fullReset()
	case '=':
		s.modes = s.modes.set(ModeApplicationKeypad, true)
	case '>':
		s.modes = s.modes.set(ModeApplicationKeypad, false)
	}
}

func paramAt(params []int, idx, def int) int {
	if idx >= len(params) || params[idx] == 0 {
		return def
	}
	return params[idx]
}

// csiDispatch executes a complete CSI sequence. prefix is '?' for DEC
// private modes, 0 otherwise; sequences with any other prefix byte
// ('<', '=', '>') are discarded.
func (s *Screen) csiDispatch(prefix byte, params []int, interm []byte, final byte) {
	if prefix == '?' {
		s.csiPrivateMode(params, final)
		return
	}
	if prefix != 0 {
		return
	}

	g := s.active
	switch final {
	case 'A':
		g.MoveBy(-paramAt(params, 0, 1), 0)
	case 'B':
		g.MoveBy(paramAt(params, 0, 1), 0)
	case 'C':
		g.MoveBy(0, paramAt(params, 0, 1))
	case 'D':
		g.MoveBy(0, -paramAt(params, 0, 1))
	case 'E':
		cur := g.Cursor()
		g.MoveTo(cur.Row+paramAt(params, 0, 1), 0)
	case 'F':
		cur := g.Cursor()
		g.MoveTo(cur.Row-paramAt(params, 0, 1), 0)
	case 'G', '`':
		g.MoveToCol(paramAt(params, 0, 1) - 1)
	case 'd':
		cur := g.Cursor()
		g.MoveTo(paramAt(params, 0, 1)-1, cur.Col)
	case 'H', 'f':
		row := paramAt(params, 0, 1) - 1
		col := paramAt(params, 1, 1) - 1
		g.MoveTo(row, col)
	case 'J':
		switch paramAt(params, 0, 0) {
		case 0:
			g.ClearScreenForward()
		case 1:
			g.ClearScreenBackward()
		case 2, 3:
			g.ClearScreenAll()
		}
	case 'K':
		switch paramAt(params, 0, 0) {
		case 0:
			g.KillLineForward()
		case 1:
			g.KillLineBackward()
		case 2:
			g.KillLineAll()
		}
	case 'L':
		g.InsertLines(paramAt(params, 0, 1))
	case 'M':
		g.DeleteLines(paramAt(params, 0, 1))
	case 'P':
		g.DeleteChars(paramAt(params, 0, 1))
	case '@':
		g.InsertChars(paramAt(params, 0, 1))
	case 'X':
		g.EraseChars(paramAt(params, 0, 1))
	case 'S':
		g.ScrollUp(paramAt(params, 0, 1))
	case 'T':
		g.ScrollDown(paramAt(params, 0, 1))
	case 'm':
		applySGR(&s.template, params)
	case 'h':
		s.setAnsiModes(params, true)
	case 'l':
		s.setAnsiModes(params, false)
	case 'r':
		s.setScrollRegion(params)
	case 's':
		g.SaveCursorPosition()
	case 'u':
		g.RestoreCursorPosition()
	}
}

func (s *Screen) setAnsiModes(params []int, on bool) {
	for _, p := range params {
		if bit, ok := ansiModeBits[p]; ok {
			s.modes = s.modes.set(bit, on)
		}
	}
}

// setScrollRegion implements DECSTBM. A row-range region (top;bottom)
// is applied. The column-range extension some terminals layer on top of
// it (a third and fourth parameter restricting the region to a column
// span) is recognized but not implemented: the whole command becomes a
// no-op beyond a diagnostic warning, rather than silently applying only
// the row range.
func (s *Screen) setScrollRegion(params []int) {
	if len(params) > 2 {
		s.diagnostics.Warn("scroll region column-range extension is not supported", "params", params)
		return
	}
	g := s.active
	rows, _ := g.Max()
	top := paramAt(params, 0, 1) - 1
	bottom := paramAt(params, 1, rows) - 1
	if top > bottom {
		return
	}
	g.SetScrollRegion(top, bottom)
	g.MoveTo(0, 0)
}

func (s *Screen) csiPrivateMode(params []int, final byte) {
	if final != 'h' && final != 'l' {
		return
	}
	on := final == 'h'
	for _, p := range params {
		switch p {
		case 47, 1047, 1049:
			// 1049 saves/restores the cursor around the swap; 47 and
			// 1047 swap the buffer alone.
			saveCursor := p == 1049
			if on {
				s.enterAlternateScreen(saveCursor)
			} else {
				s.exitAlternateScreen(saveCursor)
			}
			continue
		}
		if bit, ok := decPrivateModeBits[p]; ok {
			s.modes = s.modes.set(bit, on)
		}
	}
}

// enterAlternateScreen swaps in a freshly zeroed alternate grid. When
// saveCursor is set (DEC private mode 1049), the primary's cursor and
// the attribute template are stashed for exitAlternateScreen to
// restore; modes 47 and 1047 swap the buffer without touching either.
func (s *Screen) enterAlternateScreen(saveCursor bool) {
	if s.active == s.alternate {
		return
	}
	rows, cols := s.primary.Max()
	s.alternate = NewGrid(rows, cols, false)
	if saveCursor {
		s.primary.SaveCursorPosition()
		s.savedAttrs = s.template
	}
	s.active = s.alternate
	s.modes = s.modes.set(ModeAlternateScreen, true)
	s.dirty = true
}

// exitAlternateScreen restores the primary grid. See enterAlternateScreen
// for the saveCursor distinction between mode 1049 and modes 47/1047.
func (s *Screen) exitAlternateScreen(restoreCursor bool) {
	if s.active == s.primary {
		return
	}
	s.active = s.primary
	if restoreCursor {
		s.primary.RestoreCursorPosition()
		s.template = s.savedAttrs
	}
	s.modes = s.modes.set(ModeAlternateScreen, false)
	s.dirty = true
}

// fullReset implements RIS (ESC c): both grids, modes, attributes, and
// titles return to their initial state. Scrollback capacity reverts to
// the rows-sized default even if it had been pinned sticky.
func (s *Screen) fullReset() {
	rows, cols := s.primary.Max()
	s.primary = NewGrid(rows, cols, true)
	s.alternate = NewGrid(rows, cols, false)
	s.active = s.primary
	s.template = DefaultAttrs()
	s.modes = ModeCursorVisible | ModeAutowrap
	s.title, s.iconName = "", ""
	s.scrollbackSticky = false
	s.dirty = true
}

// oscDispatch handles OSC 0 (icon + title), OSC 1 (icon), and OSC 2
// (title) — the only OSC operations this engine tabulates.
// Anything else is silently discarded.
func (s *Screen) oscDispatch(data []byte) {
	str := string(data)
	parts := strings.SplitN(str, ";", 2)
	if len(parts) < 2 {
		return
	}
	n, err := strconv.Atoi(parts[0])
	if err != nil {
		return
	}
	switch n {
	case 0:
		s.title, s.iconName = parts[1], parts[1]
		s.updateTitle, s.updateIcon = true, true
	case 1:
		s.iconName = parts[1]
		s.updateIcon = true
	case 2:
		s.title = parts[1]
		s.updateTitle = true
	}
}

// CursorPos returns the active grid's cursor position in visible
// coordinates.
func (s *Screen) CursorPos() (row, col int) {
	p := s.active.Cursor()
	return p.Row, p.Col
}

// String renders the active grid's viewport as plain text, trailing
// blanks stripped per row.
func (s *Screen) String() string {
	rows, cols := s.active.Max()
	top := s.active.RowTop()
	return s.active.GetStringPlaintext(top, 0, top+rows-1, cols)
}
