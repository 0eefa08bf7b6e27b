package vtengine

// applySGR applies one CSI "m" parameter sequence to attrs in place.
// params is the raw parameter list (already
// split on ';'); the indexed-color and RGB forms consume extra
// parameters via i.
func applySGR(attrs *CellAttrs, params []int) {
	if len(params) == 0 {
		params = []int{0}
	}
	for i := 0; i < len(params); i++ {
		p := params[i]
		switch {
		case p == 0:
			*attrs = DefaultAttrs()
		case p == 1:
			attrs.Bold = true
		case p == 3:
			attrs.Italic = true
		case p == 4:
			attrs.Underline = true
		case p == 7:
			attrs.Inverse = true
		case p == 21 || p == 22:
			attrs.Bold = false
		case p == 23:
			attrs.Italic = false
		case p == 24:
			attrs.Underline = false
		case p == 27:
			attrs.Inverse = false
		case p >= 30 && p <= 37:
			attrs.Fg = IndexedColor(uint8(p - 30))
		case p == 38:
			if c, consumed, ok := parseExtendedColor(params[i+1:]); ok {
				attrs.Fg = c
				i += consumed
			}
		case p == 39:
			attrs.Fg = DefaultColor()
		case p >= 40 && p <= 47:
			attrs.Bg = IndexedColor(uint8(p - 40))
		case p == 48:
			if c, consumed, ok := parseExtendedColor(params[i+1:]); ok {
				attrs.Bg = c
				i += consumed
			}
		case p == 49:
			attrs.Bg = DefaultColor()
		case p >= 90 && p <= 97:
			attrs.Fg = IndexedColor(uint8(p - 90 + 8))
		case p >= 100 && p <= 107:
			attrs.Bg = IndexedColor(uint8(p - 100 + 8))
		}
	}
}

// parseExtendedColor parses the tail of an SGR 38/48 sequence: either
// "5;n" (indexed) or "2;r;g;b" (RGB). rest is the parameter slice
// immediately after the 38/48 code. Returns the color, the number of
// extra parameters consumed, and whether the sequence was well-formed.
func parseExtendedColor(rest []int) (Color, int, bool) {
	if len(rest) == 0 {
		return Color(0), 0, false
	}
	switch rest[0] {
	case 5:
		if len(rest) < 2 {
			return Color(0), 0, false
		}
		return IndexedColor(uint8(rest[1])), 2, true
	case 2:
		if len(rest) < 4 {
			return Color(0), 0, false
		}
		return RGBColor(uint8(rest[1]), uint8(rest[2]), uint8(rest[3])), 4, true
	default:
		return Color(0), 0, false
	}
}
