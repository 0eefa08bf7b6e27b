package vtengine

import (
	"sort"

	"github.com/unilibs/uniwidth"
)

// charWidth returns the display width of r in columns: 0, 1, or 2.
// The base oracle is uniwidth's East-Asian-width table; on top of it
// the engine layers two overrides uniwidth does not make on its own:
//
//   - U+00AD SOFT HYPHEN is forced to width 0, because this engine does
//     not word-wrap and a visible soft hyphen would misalign columns.
//   - Codepoints in the astral-plane emoji ranges (below) are forced to
//     width 2, while BMP emoji are left at whatever uniwidth reports
//     (width 1) to match typical monospace font rendering.
func charWidth(r rune) int {
	if r == softHyphen {
		return 0
	}
	if r > 0xFFFF && isEmojiRange(r) {
		return 2
	}
	return uniwidth.RuneWidth(r)
}

const softHyphen = 0x00AD

// emojiRange is an inclusive [Start, End] interval of astral-plane
// codepoints the engine treats as double-width, drawn from the Unicode
// emoji data tables. BMP emoji are deliberately absent: they
// stay single-width to match common monospace font metrics.
type emojiRange struct {
	Start, End rune
}

// emojiRanges must stay sorted by Start for isEmojiRange's binary search.
var emojiRanges = []emojiRange{
	{0x1F300, 0x1F5FF}, // Misc Symbols and Pictographs
	{0x1F600, 0x1F64F}, // Emoticons
	{0x1F680, 0x1F6FF}, // Transport and Map Symbols
	{0x1F700, 0x1F77F}, // Alchemical Symbols
	{0x1F780, 0x1F7FF}, // Geometric Shapes Extended
	{0x1F800, 0x1F8FF}, // Supplemental Arrows-C
	{0x1F900, 0x1F9FF}, // Supplemental Symbols and Pictographs
	{0x1FA00, 0x1FA6F}, // Chess Symbols
	{0x1FA70, 0x1FAFF}, // Symbols and Pictographs Extended-A
}

// isEmojiRange reports whether r falls in one of emojiRanges via binary
// search over the sorted interval table.
func isEmojiRange(r rune) bool {
	i := sort.Search(len(emojiRanges), func(i int) bool {
		return emojiRanges[i].End >= r
	})
	return i < len(emojiRanges) && emojiRanges[i].Start <= r
}

// StringWidth returns the total display width of s (sum of per-rune
// widths, as charWidth defines them).
func StringWidth(s string) int {
	total := 0
	for _, r := range s {
		total += charWidth(r)
	}
	return total
}
