// Package vtengine implements a headless VT100/ANSI terminal emulation
// engine: a grid of cells driven by an ANSI byte stream, with no
// rendering, PTY, or keyboard-encoding concerns attached.
//
// This package emulates the state a terminal emulator keeps, without a
// display, making it suitable for:
//   - Testing terminal applications without a GUI
//   - Building terminal multiplexers and recorders
//   - Screen scraping and automation
//   - Rendering terminal output through a separate UI layer
//
// # Quick Start
//
//	screen := vtengine.New(24, 80)
//	screen.Write([]byte("\x1b[31mHello \x1b[32mWorld\x1b[0m!"))
//	fmt.Println(screen.String()) // "Hello World!" then one "\n" per further row
//
// # Architecture
//
//   - [Screen]: the emulator. Processes ANSI sequences written to it
//     and owns the primary and alternate grids.
//   - [Grid]: a row-indexed cell store with scrollback, a scroll
//     region, and a cursor.
//   - [Cell]: one grid position's glyph bytes, width, and attributes.
//   - [Color]: a packed tagged value (default, indexed, or RGB).
//
// Screen is single-threaded and non-reentrant: it holds no internal
// lock, so a caller sharing one across goroutines must serialize access
// itself.
package vtengine
