package vtengine

// Grid is the row/scrollback/cursor data structure behind a screen buffer.
// A Screen owns two of these: the primary grid (hasScrollback == true)
// and the alternate grid (hasScrollback == false, created fresh on entry
// to alternate-screen mode and discarded on exit).
//
// rows holds the full row store; rows[0:rowTop] is scrollback (empty
// unless hasScrollback) and rows[rowTop:rowTop+maxRows] is the viewport.
// The invariant rowCount == rowTop + maxRows (primary) / rowTop == 0
// (alternate) is maintained by every mutator.
type Grid struct {
	maxRows, maxCols int

	cur   Position
	saved Position

	scrollTop    int // inclusive, visible coords
	scrollBottom int // inclusive, visible coords

	rows   []Row
	rowTop int

	hasScrollback   bool
	scrollbackLimit int // only meaningful when hasScrollback
}

// NewGrid creates a grid sized rows x cols. When scrollback is true, the
// grid starts with a default scrollback capacity equal to rows.
func NewGrid(rows, cols int, scrollback bool) *Grid {
	g := &Grid{
		maxRows:       rows,
		maxCols:       cols,
		scrollTop:     0,
		scrollBottom:  rows - 1,
		hasScrollback: scrollback,
	}
	if scrollback {
		g.scrollbackLimit = rows
	}
	g.rows = make([]Row, rows)
	for i := range g.rows {
		g.rows[i] = newRow(cols)
	}
	return g
}

// Max returns the viewport dimensions.
func (g *Grid) Max() (rows, cols int) {
	return g.maxRows, g.maxCols
}

// Cursor returns the current cursor position in visible coordinates.
func (g *Grid) Cursor() Position {
	return g.cur
}

// RowCount returns the total number of rows currently stored (viewport
// plus scrollback).
func (g *Grid) RowCount() int {
	return len(g.rows)
}

// RowTop returns the index of the first viewport row within the row
// store; rows before it are scrollback.
func (g *Grid) RowTop() int {
	return g.rowTop
}

// ScrollRegion returns the current scroll region bounds (inclusive,
// visible coords).
func (g *Grid) ScrollRegion() (top, bottom int) {
	return g.scrollTop, g.scrollBottom
}

// ScrollbackLimit returns the maximum number of scrollback rows retained.
func (g *Grid) ScrollbackLimit() int {
	return g.scrollbackLimit
}

// SetScrollbackLimit sets the maximum scrollback row count, evicting
// immediately if the grid already holds more.
func (g *Grid) SetScrollbackLimit(n int) {
	if !g.hasScrollback {
		return
	}
	if n < 0 {
		n = 0
	}
	g.scrollbackLimit = n
	g.evictScrollback()
}

// visibleRow returns the row at visible index r (0 = top of viewport).
func (g *Grid) visibleRow(r int) *Row {
	return &g.rows[g.rowTop+r]
}

// AbsoluteRow returns the row at absolute index r in the backing store,
// or nil if out of range. Used by the serializer.
func (g *Grid) AbsoluteRow(r int) *Row {
	if r < 0 || r >= len(g.rows) {
		return nil
	}
	return &g.rows[r]
}

// RowMaxCol returns the column index one past the last non-empty cell
// in the absolute row (spec.md §6's row_max_col query), or 0 if the row
// is empty or out of range. Mirrors the original's
// vt100_screen_row_max_col, which indexes the row store directly by
// absolute coordinates.
func (g *Grid) RowMaxCol(absoluteRow int) int {
	row := g.AbsoluteRow(absoluteRow)
	if row == nil {
		return 0
	}
	return row.lastNonEmptyCol()
}

// CellAt returns the cell at visible (row, col), or (nil, false) if out
// of bounds.
func (g *Grid) CellAt(row, col int) (*Cell, bool) {
	if row < 0 || row >= g.maxRows || col < 0 || col >= g.maxCols {
		return nil, false
	}
	row2 := g.visibleRow(row)
	return &row2.cells[col], true
}

// AbsoluteCellAt returns the cell at absolute (row, col), or
// (nil, false) if out of bounds.
func (g *Grid) AbsoluteCellAt(row, col int) (*Cell, bool) {
	r := g.AbsoluteRow(row)
	if r == nil || col < 0 || col >= len(r.cells) {
		return nil, false
	}
	return &r.cells[col], true
}

// IsWrapped reports whether the visible row soft-wrapped into the next
// row.
func (g *Grid) IsWrapped(row int) bool {
	if row < 0 || row >= g.maxRows {
		return false
	}
	return g.visibleRow(row).wrapped
}

// SetWrapped sets the wrap flag on a visible row.
func (g *Grid) SetWrapped(row int, wrapped bool) {
	if row < 0 || row >= g.maxRows {
		return
	}
	g.visibleRow(row).wrapped = wrapped
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// MoveTo clamps the cursor into [0, maxRows-1] x [0, maxCols-1]. Direct
// cursor positioning always clamps; it never auto-scrolls.
func (g *Grid) MoveTo(row, col int) {
	g.cur.Row = clampInt(row, 0, g.maxRows-1)
	g.cur.Col = clampInt(col, 0, g.maxCols-1)
}

// MoveToCol moves the cursor to col on the current row, clamped.
func (g *Grid) MoveToCol(col int) {
	g.cur.Col = clampInt(col, 0, g.maxCols-1)
}

// AdvanceCol moves the cursor right by w columns after a print,
// allowing cur.Col to land on maxCols itself — the deferred-wrap
// sentinel position that the next printable character's wrap check
// detects.
func (g *Grid) AdvanceCol(w int) {
	g.cur.Col = clampInt(g.cur.Col+w, 0, g.maxCols)
}

// MoveBy shifts the cursor by (dRow, dCol), clamped into bounds. It does
// not wrap and does not scroll.
func (g *Grid) MoveBy(dRow, dCol int) {
	g.cur.Row = clampInt(g.cur.Row+dRow, 0, g.maxRows-1)
	g.cur.Col = clampInt(g.cur.Col+dCol, 0, g.maxCols-1)
}

// MoveDownOrScroll moves the cursor down one row, scrolling the scroll
// region up if the cursor is already on its bottom boundary. Backs
// LF/VT/FF.
func (g *Grid) MoveDownOrScroll() {
	if g.cur.Row == g.scrollBottom {
		g.ScrollUp(1)
		return
	}
	g.cur.Row = clampInt(g.cur.Row+1, 0, g.maxRows-1)
}

// MoveUpOrScroll moves the cursor up one row, scrolling the scroll
// region down if the cursor is already on its top boundary. Backs
// ESC M reverse-index.
func (g *Grid) MoveUpOrScroll() {
	if g.cur.Row == g.scrollTop {
		g.ScrollDown(1)
		return
	}
	g.cur.Row = clampInt(g.cur.Row-1, 0, g.maxRows-1)
}

// SetScrollRegion sets the inclusive scroll region in visible
// coordinates. A no-op when top > bottom, matching the original
// vt100_screen_set_scroll_region's contract (leave the region
// unchanged rather than resetting it); top == bottom is accepted as a
// valid single-row region, not specially rejected. Both bounds are
// clamped into [0, maxRows-1] here — unlike the original's one-sided
// clamp of bottom only — to hold this grid's own invariant that
// 0 <= scrollTop <= scrollBottom < maxRows even when fed an
// out-of-range row.
func (g *Grid) SetScrollRegion(top, bottom int) {
	top = clampInt(top, 0, g.maxRows-1)
	bottom = clampInt(bottom, 0, g.maxRows-1)
	if top > bottom {
		return
	}
	g.scrollTop = top
	g.scrollBottom = bottom
}

// SaveCursorPosition stashes the current cursor for RestoreCursorPosition.
func (g *Grid) SaveCursorPosition() {
	g.saved = g.cur
}

// RestoreCursorPosition restores the cursor saved by SaveCursorPosition.
func (g *Grid) RestoreCursorPosition() {
	g.cur = g.saved
}

// regionScrollUp shifts rows [top, bottom] (visible, inclusive) up by n,
// discarding the top n rows of the window and blanking the bottom n.
// Never touches scrollback — this is the shared primitive behind
// region-scoped ScrollUp and DeleteLines.
func (g *Grid) regionScrollUp(top, bottom, n int) {
	if n <= 0 || top > bottom {
		return
	}
	height := bottom - top + 1
	if n > height {
		n = height
	}
	at, bt := g.rowTop+top, g.rowTop+bottom
	for i := at; i+n <= bt; i++ {
		g.rows[i] = g.rows[i+n]
	}
	for i := bt - n + 1; i <= bt; i++ {
		g.rows[i] = newRow(g.maxCols)
	}
}

// regionScrollDown mirrors regionScrollUp: shifts rows down by n,
// discarding the bottom n and blanking the top n. Never writes to
// scrollback.
func (g *Grid) regionScrollDown(top, bottom, n int) {
	if n <= 0 || top > bottom {
		return
	}
	height := bottom - top + 1
	if n > height {
		n = height
	}
	at, bt := g.rowTop+top, g.rowTop+bottom
	for i := bt; i-n >= at; i-- {
		g.rows[i] = g.rows[i-n]
	}
	for i := at; i < at+n; i++ {
		g.rows[i] = newRow(g.maxCols)
	}
}

// ScrollUp scrolls the active scroll region up by n lines. When the
// region spans the full viewport and the grid keeps scrollback (the
// primary grid with no scroll region in effect), the row store itself
// grows to absorb the scrolled lines, evicting the oldest rows beyond
// the scrollback cap; otherwise (a narrower scroll region, or the
// scrollback-less alternate grid) the region is shifted in place.
func (g *Grid) ScrollUp(n int) {
	if n <= 0 {
		return
	}
	if g.hasScrollback && g.scrollTop == 0 && g.scrollBottom == g.maxRows-1 {
		g.scrollFullUp(n)
		return
	}
	g.regionScrollUp(g.scrollTop, g.scrollBottom, n)
}

// ScrollDown scrolls the active scroll region down by n lines. Always
// region-scoped; scrolling down can never resurrect scrollback rows
// that have already been evicted.
func (g *Grid) ScrollDown(n int) {
	if n <= 0 {
		return
	}
	g.regionScrollDown(g.scrollTop, g.scrollBottom, n)
}

// scrollFullUp grows the row store by n fresh rows at the bottom,
// advances rowTop past them, and evicts the oldest scrollback rows
// beyond the configured cap.
func (g *Grid) scrollFullUp(n int) {
	for i := 0; i < n; i++ {
		g.rows = append(g.rows, newRow(g.maxCols))
	}
	g.rowTop += n
	g.evictScrollback()
}

// evictScrollback trims rows[0:rowTop] down to scrollbackLimit, copying
// into a fresh backing array so evicted rows are released rather than
// kept alive by a re-sliced array.
func (g *Grid) evictScrollback() {
	if !g.hasScrollback {
		return
	}
	if g.rowTop <= g.scrollbackLimit {
		return
	}
	evict := g.rowTop - g.scrollbackLimit
	next := make([]Row, len(g.rows)-evict)
	copy(next, g.rows[evict:])
	g.rows = next
	g.rowTop -= evict
}

// ClearScreenAll blanks every cell in the viewport and clears the wrap
// flag on every viewport row.
func (g *Grid) ClearScreenAll() {
	for r := 0; r < g.maxRows; r++ {
		g.clearRow(r)
	}
}

// ClearScreenForward blanks from the cursor to the end of the screen.
func (g *Grid) ClearScreenForward() {
	g.clearRowRange(g.cur.Row, g.cur.Col, g.maxCols)
	for r := g.cur.Row + 1; r < g.maxRows; r++ {
		g.clearRow(r)
	}
}

// ClearScreenBackward blanks from the beginning of the screen to the
// cursor (inclusive).
func (g *Grid) ClearScreenBackward() {
	for r := 0; r < g.cur.Row; r++ {
		g.clearRow(r)
	}
	g.clearRowRange(g.cur.Row, 0, g.cur.Col+1)
}

// KillLineAll blanks the entire current row.
func (g *Grid) KillLineAll() {
	g.clearRow(g.cur.Row)
}

// KillLineForward blanks from the cursor to the end of the current row.
func (g *Grid) KillLineForward() {
	g.clearRowRange(g.cur.Row, g.cur.Col, g.maxCols)
}

// KillLineBackward blanks from the beginning of the current row to the
// cursor (inclusive), and clears the wrap flag on the previous row.
func (g *Grid) KillLineBackward() {
	g.clearRowRange(g.cur.Row, 0, g.cur.Col+1)
	if g.cur.Row > 0 {
		g.SetWrapped(g.cur.Row-1, false)
	}
}

func (g *Grid) clearRow(row int) {
	g.clearRowRange(row, 0, g.maxCols)
	g.SetWrapped(row, false)
}

func (g *Grid) clearRowRange(row, startCol, endCol int) {
	if row < 0 || row >= g.maxRows {
		return
	}
	if startCol < 0 {
		startCol = 0
	}
	if endCol > g.maxCols {
		endCol = g.maxCols
	}
	r := g.visibleRow(row)
	for c := startCol; c < endCol; c++ {
		r.cells[c].Reset()
	}
}

// InsertChars shifts the current row's content right by n cells
// starting at the cursor, discarding content that falls off the right
// edge and blanking the n vacated cells. Clears the row's wrap flag.
func (g *Grid) InsertChars(n int) {
	if n <= 0 {
		return
	}
	row := g.visibleRow(g.cur.Row)
	cols := g.maxCols
	col := clampInt(g.cur.Col, 0, cols)
	if n > cols-col {
		n = cols - col
	}
	for i := cols - 1; i >= col+n; i-- {
		row.cells[i] = row.cells[i-n]
	}
	for i := col; i < col+n && i < cols; i++ {
		row.cells[i].Reset()
	}
	row.wrapped = false
}

// DeleteChars shifts the current row's content left by n cells starting
// at the cursor, blanking the vacated cells at the end of the row.
// Clears the row's wrap flag.
func (g *Grid) DeleteChars(n int) {
	if n <= 0 {
		return
	}
	row := g.visibleRow(g.cur.Row)
	cols := g.maxCols
	col := clampInt(g.cur.Col, 0, cols)
	if n > cols-col {
		n = cols - col
	}
	for i := col; i < cols-n; i++ {
		row.cells[i] = row.cells[i+n]
	}
	for i := cols - n; i < cols; i++ {
		row.cells[i].Reset()
	}
	row.wrapped = false
}

// EraseChars blanks n cells starting at the cursor without shifting
// content and without disturbing the cells' existing attributes,
// distinct from DeleteChars (which shifts) and KillLine (which resets
// attributes too).
func (g *Grid) EraseChars(n int) {
	if n <= 0 {
		return
	}
	row := g.visibleRow(g.cur.Row)
	cols := g.maxCols
	for i := g.cur.Col; i < g.cur.Col+n && i < cols; i++ {
		if i < 0 {
			continue
		}
		row.cells[i].eraseContent()
	}
}

// InsertLines inserts n blank lines at the cursor row, confined to
// [cur.Row, scrollBottom]; content below is shifted down and whatever
// falls off the region's bottom is discarded. A no-op if
// the cursor sits outside the scroll region.
func (g *Grid) InsertLines(n int) {
	if g.cur.Row < g.scrollTop || g.cur.Row > g.scrollBottom {
		return
	}
	g.regionScrollDown(g.cur.Row, g.scrollBottom, n)
}

// DeleteLines removes n lines at the cursor row, confined to
// [cur.Row, scrollBottom]; content below shifts up. A no-op
// if the cursor sits outside the scroll region.
func (g *Grid) DeleteLines(n int) {
	if g.cur.Row < g.scrollTop || g.cur.Row > g.scrollBottom {
		return
	}
	g.regionScrollUp(g.cur.Row, g.scrollBottom, n)
}

// Resize changes the viewport dimensions, preserving content in the
// overlap, clamping the cursor into the new bounds, and resetting the
// scroll region to the full new viewport. Growing rows extends the row store at the bottom; shrinking
// rows truncates the viewport (surplus rows simply drop out of the
// addressable viewport — they remain in the backing store as
// scrollback on the primary grid, consistent with rowTop = rowCount -
// maxRows).
func (g *Grid) Resize(rows, cols int) {
	if rows <= 0 || cols <= 0 {
		return
	}

	for i := range g.rows {
		g.rows[i].resize(cols)
	}

	switch {
	case rows > g.maxRows:
		for i := 0; i < rows-g.maxRows; i++ {
			g.rows = append(g.rows, newRow(cols))
		}
	case rows < g.maxRows:
		// Keep the row store's total length; only the viewport
		// window shrinks. rowTop is recomputed below.
	}

	g.maxRows = rows
	g.maxCols = cols

	if g.hasScrollback {
		g.rowTop = len(g.rows) - g.maxRows
		if g.rowTop < 0 {
			// Row store has fewer rows than the new viewport; pad.
			for g.rowTop < 0 {
				g.rows = append([]Row{newRow(cols)}, g.rows...)
				g.rowTop++
			}
		}
	} else {
		g.rowTop = 0
		if len(g.rows) < g.maxRows {
			for len(g.rows) < g.maxRows {
				g.rows = append(g.rows, newRow(cols))
			}
		} else if len(g.rows) > g.maxRows {
			g.rows = g.rows[:g.maxRows]
		}
	}

	g.cur.Row = clampInt(g.cur.Row, 0, g.maxRows-1)
	g.cur.Col = clampInt(g.cur.Col, 0, g.maxCols-1)
	g.scrollTop = 0
	g.scrollBottom = g.maxRows - 1
}
