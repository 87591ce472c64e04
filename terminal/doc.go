// @focus: #sys { term }
// Package terminal provides the render surface for the rain animation.
//
// Features:
//   - Fixed ANSI dialect: cursor hide, absolute moves, 8-color SGR, clear, RIS
//   - Buffered output, one flush per render tick
//   - Geometry from /dev/tty so piped stdin still resolves the screen size
//   - SIGWINCH resize detection
//   - tcell-backed surface for raw-mode terminals and simulation tests
//   - Clean terminal restoration on exit/panic
//
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
