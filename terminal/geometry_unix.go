//go:build unix

package terminal

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// ttyDevice is opened for geometry so a piped stdin does not matter
const ttyDevice = "/dev/tty"

// TTYSize queries the controlling terminal's geometry
func TTYSize() (rows, cols int, err error) {
	tty, err := os.OpenFile(ttyDevice, os.O_RDWR, 0)
	if err != nil {
		return 0, 0, fmt.Errorf("open %s: %w", ttyDevice, err)
	}
	defer tty.Close()

	return FdSize(int(tty.Fd()))
}

// FdSize queries geometry of the terminal behind fd
func FdSize(fd int) (rows, cols int, err error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, fmt.Errorf("get window size: %w", err)
	}
	return int(ws.Row), int(ws.Col), nil
}
