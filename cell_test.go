package vtengine

import "testing"

func TestCellSetRune(t *testing.T) {
	var c Cell
	attrs := CellAttrs{Fg: IndexedColor(1), Bold: true}
	c.setRune('x', 1, attrs)

	if c.Empty() {
		t.Fatalf("cell should not be empty after setRune")
	}
	if got := c.Contents(); got != "x" {
		t.Fatalf("Contents() = %q, want %q", got, "x")
	}
	if c.IsWide() {
		t.Fatalf("narrow rune should not be wide")
	}
	if c.Attrs() != attrs {
		t.Fatalf("Attrs() = %+v, want %+v", c.Attrs(), attrs)
	}
}

func TestCellSetRuneWide(t *testing.T) {
	var c Cell
	c.setRune('界', 2, DefaultAttrs())
	if !c.IsWide() {
		t.Fatalf("wide rune should set IsWide")
	}
}

func TestCellReset(t *testing.T) {
	var c Cell
	c.setRune('a', 1, CellAttrs{Bold: true})
	c.Reset()
	if !c.Empty() {
		t.Fatalf("cell should be empty after Reset")
	}
	if c.Attrs() != (CellAttrs{}) {
		t.Fatalf("Reset should clear attrs, got %+v", c.Attrs())
	}
}

func TestCellAppendCombining(t *testing.T) {
	var c Cell
	c.setRune('a', 1, DefaultAttrs())
	c.appendCombining('́') // combining acute accent

	want := "á" // NFC composes a + U+0301 into one rune
	if got := c.Contents(); got != want {
		t.Fatalf("Contents() = %q, want %q", got, want)
	}
}

func TestCellAppendCombiningOnEmptyIsNoop(t *testing.T) {
	var c Cell
	c.appendCombining('́')
	if !c.Empty() {
		t.Fatalf("appendCombining on an empty cell must stay empty")
	}
}

func TestCellAppendCombiningTruncatesAtCapacity(t *testing.T) {
	var c Cell
	c.setRune('a', 1, DefaultAttrs())
	for i := 0; i < 10; i++ {
		c.appendCombining('́')
	}
	if len(c.Contents()) > cellBytes {
		t.Fatalf("Contents() length %d exceeds cellBytes %d", len(c.Contents()), cellBytes)
	}
}

func TestCellEraseContentPreservesAttrs(t *testing.T) {
	var c Cell
	attrs := CellAttrs{Bg: IndexedColor(4)}
	c.setRune('z', 1, attrs)
	c.eraseContent()

	if !c.Empty() {
		t.Fatalf("eraseContent should empty the cell")
	}
	if c.Attrs() != attrs {
		t.Fatalf("eraseContent must not touch attrs, got %+v want %+v", c.Attrs(), attrs)
	}
}
