package vtengine

// Row holds one grid line: a column-indexed array of cells and a
// wrapped flag. wrapped is true when printing continued past the right
// margin onto the next row (a soft wrap); it controls whether the
// serializer emits a newline between this row and the next.
type Row struct {
	cells   []Cell
	wrapped bool
}

func newRow(cols int) Row {
	return Row{cells: make([]Cell, cols)}
}

// Wrapped reports whether this row is a soft-wrap continuation point.
func (r *Row) Wrapped() bool {
	return r.wrapped
}

// lastNonEmptyCol returns the column index one past the highest column
// with a non-empty cell, or 0 if the row is entirely empty. Used by the
// region serializer and by Grid.RowMaxCol.
func (r *Row) lastNonEmptyCol() int {
	for c := len(r.cells) - 1; c >= 0; c-- {
		if !r.cells[c].Empty() {
			return c + 1
		}
	}
	return 0
}

func (r *Row) resize(cols int) {
	if cols == len(r.cells) {
		return
	}
	next := make([]Cell, cols)
	copy(next, r.cells)
	r.cells = next
}
