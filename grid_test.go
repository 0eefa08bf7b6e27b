package vtengine

import "testing"

func setCell(t *testing.T, g *Grid, row, col int, r rune) {
	t.Helper()
	cell, ok := g.CellAt(row, col)
	if !ok {
		t.Fatalf("CellAt(%d,%d) out of bounds", row, col)
	}
	cell.setRune(r, 1, DefaultAttrs())
}

func cellRune(t *testing.T, g *Grid, row, col int) string {
	t.Helper()
	cell, ok := g.CellAt(row, col)
	if !ok {
		t.Fatalf("CellAt(%d,%d) out of bounds", row, col)
	}
	return cell.Contents()
}

func TestGridScrollUpGrowsScrollback(t *testing.T) {
	g := NewGrid(2, 1, true)
	setCell(t, g, 0, 0, 'A')
	setCell(t, g, 1, 0, 'B')

	g.ScrollUp(1)

	if got := cellRune(t, g, 0, 0); got != "B" {
		t.Fatalf("row0 after scroll = %q, want B", got)
	}
	if got := cellRune(t, g, 1, 0); got != "" {
		t.Fatalf("row1 after scroll should be blank, got %q", got)
	}
	if g.RowCount() != 3 {
		t.Fatalf("RowCount() = %d, want 3", g.RowCount())
	}
	if g.RowTop() != 1 {
		t.Fatalf("RowTop() = %d, want 1", g.RowTop())
	}
	if got := g.AbsoluteRow(0).cells[0].Contents(); got != "A" {
		t.Fatalf("scrollback row0 = %q, want A", got)
	}
}

func TestGridScrollUpEvictsBeyondScrollbackLimit(t *testing.T) {
	g := NewGrid(2, 1, true)
	g.SetScrollbackLimit(2)

	for _, r := range []rune{'A', 'B', 'C', 'D'} {
		setCell(t, g, 1, 0, r)
		g.ScrollUp(1)
	}
	setCell(t, g, 1, 0, 'E')

	if g.RowTop() > g.ScrollbackLimit() {
		t.Fatalf("RowTop() = %d exceeds ScrollbackLimit() = %d", g.RowTop(), g.ScrollbackLimit())
	}
}

func TestGridScrollRegionConfinesShift(t *testing.T) {
	g := NewGrid(4, 1, false)
	setCell(t, g, 0, 0, '0')
	setCell(t, g, 1, 0, '1')
	setCell(t, g, 2, 0, '2')
	setCell(t, g, 3, 0, '3')

	g.SetScrollRegion(1, 2)
	g.ScrollUp(1)

	want := []string{"0", "2", "", "3"}
	for i, w := range want {
		if got := cellRune(t, g, i, 0); got != w {
			t.Fatalf("row %d = %q, want %q", i, got, w)
		}
	}
}

func TestGridScrollRegionNeverWritesScrollback(t *testing.T) {
	g := NewGrid(4, 1, true)
	g.SetScrollRegion(1, 2)
	g.ScrollUp(1)

	if g.RowTop() != 0 {
		t.Fatalf("region-scoped scroll must not grow scrollback, RowTop() = %d", g.RowTop())
	}
}

func TestGridSetScrollRegionRejectsInverted(t *testing.T) {
	g := NewGrid(4, 1, false)
	g.SetScrollRegion(1, 2)
	g.SetScrollRegion(3, 0) // top > bottom: must leave the region unchanged

	top, bottom := g.ScrollRegion()
	if top != 1 || bottom != 2 {
		t.Fatalf("ScrollRegion() = (%d,%d), want unchanged (1,2)", top, bottom)
	}
}

func TestGridSetScrollRegionAcceptsSingleRow(t *testing.T) {
	g := NewGrid(4, 1, false)
	g.SetScrollRegion(2, 2)

	top, bottom := g.ScrollRegion()
	if top != 2 || bottom != 2 {
		t.Fatalf("ScrollRegion() = (%d,%d), want (2,2)", top, bottom)
	}
}

func TestGridRowMaxCol(t *testing.T) {
	g := NewGrid(2, 5, false)
	setCell(t, g, 0, 0, 'a')
	setCell(t, g, 0, 2, 'b')

	if got := g.RowMaxCol(0); got != 3 {
		t.Fatalf("RowMaxCol(0) = %d, want 3", got)
	}
	if got := g.RowMaxCol(1); got != 0 {
		t.Fatalf("RowMaxCol(1) = %d, want 0 for an empty row", got)
	}
	if got := g.RowMaxCol(99); got != 0 {
		t.Fatalf("RowMaxCol(99) = %d, want 0 for an out-of-range row", got)
	}
}

func TestGridInsertDeleteChars(t *testing.T) {
	g := NewGrid(1, 4, false)
	setCell(t, g, 0, 0, 'a')
	setCell(t, g, 0, 1, 'b')
	setCell(t, g, 0, 2, 'c')
	setCell(t, g, 0, 3, 'd')

	g.MoveTo(0, 1)
	g.InsertChars(1)

	want := []string{"a", "", "b", "c"}
	for i, w := range want {
		if got := cellRune(t, g, 0, i); got != w {
			t.Fatalf("after insert col %d = %q, want %q", i, got, w)
		}
	}

	g.DeleteChars(2)
	want2 := []string{"a", "c", "", ""}
	for i, w := range want2 {
		if got := cellRune(t, g, 0, i); got != w {
			t.Fatalf("after delete col %d = %q, want %q", i, got, w)
		}
	}
}

func TestGridEraseCharsPreservesAttrsElsewhereClears(t *testing.T) {
	g := NewGrid(1, 3, false)
	attrs := CellAttrs{Bg: IndexedColor(2)}
	cell, _ := g.CellAt(0, 0)
	cell.setRune('x', 1, attrs)

	g.MoveTo(0, 0)
	g.EraseChars(1)

	cell, _ = g.CellAt(0, 0)
	if !cell.Empty() {
		t.Fatalf("EraseChars should empty the cell")
	}
	if cell.Attrs() != attrs {
		t.Fatalf("EraseChars must preserve attrs, got %+v want %+v", cell.Attrs(), attrs)
	}
}

func TestGridMoveToClampsWithoutScrolling(t *testing.T) {
	g := NewGrid(3, 3, true)
	g.MoveTo(10, 10)
	cur := g.Cursor()
	if cur.Row != 2 || cur.Col != 2 {
		t.Fatalf("MoveTo clamp = %+v, want (2,2)", cur)
	}
	if g.RowTop() != 0 {
		t.Fatalf("MoveTo must never scroll, RowTop() = %d", g.RowTop())
	}
}

func TestGridMoveDownOrScrollAtBoundary(t *testing.T) {
	g := NewGrid(2, 1, true)
	g.MoveTo(1, 0)
	g.MoveDownOrScroll()

	cur := g.Cursor()
	if cur.Row != 1 {
		t.Fatalf("cursor row after scroll-triggering move = %d, want 1", cur.Row)
	}
	if g.RowTop() != 1 {
		t.Fatalf("RowTop() = %d, want 1", g.RowTop())
	}
}
