package vtengine

import (
	"fmt"
	"strings"
)

// growBuf is a byte buffer that grows its backing array by roughly 1.5x
// when it runs out of room, rather than relying on append's own growth
// curve, to keep the serializer's allocation behavior explicit and
// predictable.
type growBuf struct {
	buf []byte
}

func newGrowBuf() *growBuf {
	return &growBuf{buf: make([]byte, 0, 8)}
}

func (b *growBuf) ensure(extra int) {
	if cap(b.buf)-len(b.buf) >= extra {
		return
	}
	need := len(b.buf) + extra
	newCap := cap(b.buf)
	if newCap == 0 {
		newCap = 8
	}
	for newCap < need {
		newCap += newCap/2 + 1
	}
	next := make([]byte, len(b.buf), newCap)
	copy(next, b.buf)
	b.buf = next
}

func (b *growBuf) writeString(s string) {
	b.ensure(len(s))
	b.buf = append(b.buf, s...)
}

func (b *growBuf) writeByte(c byte) {
	b.ensure(1)
	b.buf = append(b.buf, c)
}

func (b *growBuf) String() string {
	return string(b.buf)
}

// GetStringPlaintext returns the glyph content of absolute rows
// [fromRow, toRow] (inclusive), columns [fromCol, toCol). Trailing
// blank cells at the end of each row are stripped whenever toCol
// reaches the row's full width; an explicit narrower toCol is treated
// as a hard clip instead. Rows are newline-joined, except
// where a row is marked wrapped, which omits the newline so a soft-
// wrapped logical line serializes as one line of text.
func (g *Grid) GetStringPlaintext(fromRow, fromCol, toRow, toCol int) string {
	out := newGrowBuf()
	for r := fromRow; r <= toRow; r++ {
		row := g.AbsoluteRow(r)
		if row == nil {
			continue
		}
		end := toCol
		if end > len(row.cells) {
			end = len(row.cells)
		}
		if toCol >= len(row.cells) {
			if last := row.lastNonEmptyCol(); last < end {
				end = last
			}
		}
		start := fromCol
		if start < 0 {
			start = 0
		}
		writeRowPlaintext(out, row, start, end)
		if r != toRow && !row.wrapped {
			out.writeByte('\n')
		}
	}
	return out.String()
}

func writeRowPlaintext(out *growBuf, row *Row, start, end int) {
	for c := start; c < end && c < len(row.cells); c++ {
		cell := &row.cells[c]
		if cell.IsWide() {
			out.writeString(cell.Contents())
			c++ // right half is a phantom, nothing to print for it
			continue
		}
		if cell.Empty() {
			out.writeByte(' ')
			continue
		}
		out.writeString(cell.Contents())
	}
}

// GetStringFormatted is GetStringPlaintext's sibling: it interleaves
// minimal SGR escape sequences whenever a cell's attributes differ from
// the previous cell's, so the returned text reproduces the region's
// appearance when replayed through another ANSI-aware consumer.
func (g *Grid) GetStringFormatted(fromRow, fromCol, toRow, toCol int) string {
	out := newGrowBuf()
	prev := DefaultAttrs()
	wroteAny := false

	for r := fromRow; r <= toRow; r++ {
		row := g.AbsoluteRow(r)
		if row == nil {
			continue
		}
		end := toCol
		if toCol >= len(row.cells) {
			if last := row.lastNonEmptyCol(); last < end {
				end = last
			}
		}
		start := fromCol
		if start < 0 {
			start = 0
		}
		for c := start; c < end && c < len(row.cells); c++ {
			cell := &row.cells[c]
			attrs := cell.Attrs()
			if !wroteAny || attrs != prev {
				if seq := sgrTransition(prev, attrs); seq != "" {
					out.writeString(seq)
				}
				prev = attrs
				wroteAny = true
			}
			if cell.Empty() {
				out.writeByte(' ')
			} else {
				out.writeString(cell.Contents())
			}
			if cell.IsWide() {
				c++ // skip the phantom right half
			}
		}
		if r != toRow && !row.wrapped {
			out.writeByte('\n')
		}
	}

	if wroteAny && prev != DefaultAttrs() {
		out.writeString("\x1b[0m")
	}
	return out.String()
}

// sgrTransition builds the minimal CSI "m" sequence that moves the
// current SGR state from prev to cur, or "" if they're identical.
func sgrTransition(prev, cur CellAttrs) string {
	if prev == cur {
		return ""
	}
	var codes []string

	if cur == DefaultAttrs() {
		return "\x1b[0m"
	}

	if cur.Bold != prev.Bold {
		if cur.Bold {
			codes = append(codes, "1")
		} else {
			codes = append(codes, "22")
		}
	}
	if cur.Italic != prev.Italic {
		if cur.Italic {
			codes = append(codes, "3")
		} else {
			codes = append(codes, "23")
		}
	}
	if cur.Underline != prev.Underline {
		if cur.Underline {
			codes = append(codes, "4")
		} else {
			codes = append(codes, "24")
		}
	}
	if cur.Inverse != prev.Inverse {
		if cur.Inverse {
			codes = append(codes, "7")
		} else {
			codes = append(codes, "27")
		}
	}
	if cur.Fg != prev.Fg {
		codes = append(codes, fgCode(cur.Fg))
	}
	if cur.Bg != prev.Bg {
		codes = append(codes, bgCode(cur.Bg))
	}

	if len(codes) == 0 {
		return ""
	}
	return "\x1b[" + strings.Join(codes, ";") + "m"
}

func fgCode(c Color) string {
	if c.IsDefault() {
		return "39"
	}
	if idx, ok := c.IsIndexed(); ok {
		return fmt.Sprintf("38;5;%d", idx)
	}
	if r, g, b, ok := c.IsRGB(); ok {
		return fmt.Sprintf("38;2;%d;%d;%d", r, g, b)
	}
	return "39"
}

func bgCode(c Color) string {
	if c.IsDefault() {
		return "49"
	}
	if idx, ok := c.IsIndexed(); ok {
		return fmt.Sprintf("48;5;%d", idx)
	}
	if r, g, b, ok := c.IsRGB(); ok {
		return fmt.Sprintf("48;2;%d;%d;%d", r, g, b)
	}
	return "49"
}
