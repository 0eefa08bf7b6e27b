package vtengine

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// cellBytes is the fixed capacity of a cell's glyph storage: one base
// character plus whatever combining marks fit.
const cellBytes = 8

// CellAttrs bundles the styling in effect when a cell was written.
// Equality is structural, so == is the comparison the
// serializer uses to detect attribute transitions.
type CellAttrs struct {
	Fg        Color
	Bg        Color
	Bold      bool
	Italic    bool
	Underline bool
	Inverse   bool
}

// DefaultAttrs returns the attribute set new Screens start with.
func DefaultAttrs() CellAttrs {
	return CellAttrs{Fg: DefaultColor(), Bg: DefaultColor()}
}

// Cell is the unit stored per grid position: up to 8 bytes of UTF-8 (one
// base glyph plus combining marks, NFC-normalized after each append),
// the attributes in effect when it was written, and a wide-character
// flag.
type Cell struct {
	contents [cellBytes]byte
	len      uint8
	attrs    CellAttrs
	isWide   bool
}

// Empty reports whether the cell holds no glyph (len == 0). An empty
// cell renders as a space but is distinguishable from a cell holding
// U+0020, since Contents() returns "" rather than " ".
func (c *Cell) Empty() bool {
	return c.len == 0
}

// Contents returns the cell's glyph bytes as a string ("" if empty).
func (c *Cell) Contents() string {
	return string(c.contents[:c.len])
}

// Attrs returns the attribute set in effect when the cell was written.
func (c *Cell) Attrs() CellAttrs {
	return c.attrs
}

// IsWide reports whether this cell occupies two display columns. The
// column immediately to the right is a phantom that must not be printed
// independently.
func (c *Cell) IsWide() bool {
	return c.isWide
}

// Reset clears the cell to the empty state: len = 0, no attrs, not
// wide. Used by erase/clear operations that blank cells.
func (c *Cell) Reset() {
	*c = Cell{}
}

// setRune overwrites the cell with a single printable base character
// under the given attributes, marking it wide if w == 2.
func (c *Cell) setRune(r rune, w int, attrs CellAttrs) {
	c.contents = [cellBytes]byte{}
	n := copy(c.contents[:], string(r))
	c.len = uint8(n)
	c.attrs = attrs
	c.isWide = w == 2
}

// setPhantom marks the cell as the (unprintable) right half of a wide
// character immediately to its left.
func (c *Cell) setPhantom(attrs CellAttrs) {
	c.contents = [cellBytes]byte{}
	c.len = 0
	c.attrs = attrs
	c.isWide = false
}

// eraseContent clears the cell's glyph content only, leaving its
// attributes untouched. Distinct from Reset, which also clears
// attributes; EraseChars uses this, DeleteChars and the
// kill/clear family use Reset.
func (c *Cell) eraseContent() {
	c.contents = [cellBytes]byte{}
	c.len = 0
	c.isWide = false
}

// appendCombining appends a zero-width combining mark's bytes to the
// cell's existing contents and re-normalizes to NFC, bounded by the
// 8-byte capacity. If the normalized result would overflow, the append
// is silently truncated to what fits.
func (c *Cell) appendCombining(r rune) {
	if c.len == 0 {
		// Nothing to attach to; the print loop decides whether a
		// preceding cell exists at all before calling this.
		return
	}

	candidate := make([]byte, 0, int(c.len)+utf8.RuneLen(r))
	candidate = append(candidate, c.contents[:c.len]...)
	candidate = utf8.AppendRune(candidate, r)

	normalized := norm.NFC.Bytes(candidate)
	if len(normalized) > cellBytes {
		normalized = normalized[:cellBytes]
	}

	c.contents = [cellBytes]byte{}
	c.len = uint8(copy(c.contents[:], normalized))
}
