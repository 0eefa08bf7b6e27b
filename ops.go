package vtengine

// Direct operation endpoints mirroring the escape-sequence effects of
// §4.5 (and the mode toggles CSI h/l would otherwise reach), for test
// harnesses and hosts that want to inject an effect without building
// the bytes to parse. Each mirrors one of the original's direct C
// entry points (vt100_screen_set_bold, _set_fg_color, _use_alternate_buffer,
// _show_cursor, ...) rather than a byte sequence.

// SetBold sets or clears the bold attribute on the current template.
func (s *Screen) SetBold(on bool) { s.template.Bold = on }

// SetItalic sets or clears the italic attribute on the current template.
func (s *Screen) SetItalic(on bool) { s.template.Italic = on }

// SetUnderline sets or clears the underline attribute on the current
// template.
func (s *Screen) SetUnderline(on bool) { s.template.Underline = on }

// SetInverse sets or clears the inverse-video attribute on the current
// template.
func (s *Screen) SetInverse(on bool) { s.template.Inverse = on }

// ResetTextAttributes restores the current template to its default
// colors and attributes, equivalent to SGR 0.
func (s *Screen) ResetTextAttributes() { s.template = DefaultAttrs() }

// SetFgColor sets the template foreground to a palette index.
func (s *Screen) SetFgColor(index uint8) { s.template.Fg = IndexedColor(index) }

// SetFgColorRGB sets the template foreground to a direct truecolor value.
func (s *Screen) SetFgColorRGB(r, g, b uint8) { s.template.Fg = RGBColor(r, g, b) }

// ResetFgColor restores the template foreground to the terminal default.
func (s *Screen) ResetFgColor() { s.template.Fg = DefaultColor() }

// SetBgColor sets the template background to a palette index.
func (s *Screen) SetBgColor(index uint8) { s.template.Bg = IndexedColor(index) }

// SetBgColorRGB sets the template background to a direct truecolor value.
func (s *Screen) SetBgColorRGB(r, g, b uint8) { s.template.Bg = RGBColor(r, g, b) }

// ResetBgColor restores the template background to the terminal default.
func (s *Screen) ResetBgColor() { s.template.Bg = DefaultColor() }

// ShowCursor sets DECTCEM (cursor visible).
func (s *Screen) ShowCursor() { s.modes = s.modes.set(ModeCursorVisible, true) }

// HideCursor clears DECTCEM (cursor hidden).
func (s *Screen) HideCursor() { s.modes = s.modes.set(ModeCursorVisible, false) }

// UseAlternateBuffer swaps to the alternate screen without saving the
// cursor, matching DEC private modes 47/1047 (not 1049 — see
// SaveCursorPosition/RestoreCursorPosition for that combination).
func (s *Screen) UseAlternateBuffer() { s.enterAlternateScreen(false) }

// UseNormalBuffer swaps back to the primary screen without restoring a
// saved cursor, the counterpart to UseAlternateBuffer.
func (s *Screen) UseNormalBuffer() { s.exitAlternateScreen(false) }

// SetApplicationKeypad sets DECKPAM (application keypad mode).
func (s *Screen) SetApplicationKeypad(on bool) {
	s.modes = s.modes.set(ModeApplicationKeypad, on)
}

// SetApplicationCursor sets DECCKM (application cursor keys).
func (s *Screen) SetApplicationCursor(on bool) {
	s.modes = s.modes.set(ModeApplicationCursor, on)
}

// SetMouseReportingPress sets or clears DEC private mode 9 (X10 mouse
// reporting: button press only).
func (s *Screen) SetMouseReportingPress(on bool) {
	s.modes = s.modes.set(ModeMouseX10, on)
}

// SetMouseReportingPressRelease sets or clears DEC private mode 1000
// (VT200 mouse reporting: button press and release).
func (s *Screen) SetMouseReportingPressRelease(on bool) {
	s.modes = s.modes.set(ModeMouseVT200, on)
}

// SetMouseReportingButtonMotion sets or clears DEC private mode 1002
// (button-event mouse reporting: press, release, and drag).
func (s *Screen) SetMouseReportingButtonMotion(on bool) {
	s.modes = s.modes.set(ModeMouseButtonEvent, on)
}

// SetMouseReportingSGRMode sets or clears DEC private mode 1006
// (SGR extended mouse coordinate encoding).
func (s *Screen) SetMouseReportingSGRMode(on bool) {
	s.modes = s.modes.set(ModeMouseSGR, on)
}

// SetBracketedPaste sets or clears DEC private mode 2004.
func (s *Screen) SetBracketedPaste(on bool) {
	s.modes = s.modes.set(ModeBracketedPaste, on)
}

// SetWindowTitle sets the window title directly, as OSC 2 would, and
// marks the title-changed notification.
func (s *Screen) SetWindowTitle(title string) {
	s.title = title
	s.updateTitle = true
}

// SetIconName sets the icon name directly, as OSC 1 would, and marks
// the icon-changed notification.
func (s *Screen) SetIconName(name string) {
	s.iconName = name
	s.updateIcon = true
}
