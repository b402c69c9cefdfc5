//go:build !linux

/*
© 2024–present Harald Rudell <haraldrudell@proton.me> (https://haraldrudell.github.io/haraldrudell/)
All rights reserved
*/

package pexec

import "os"

// portableTerminal implements [Terminal] using only the
// platform-independent isatty check: window size, foreground-process
// detection, FIONREAD sizing and cbreak mode all require Linux-specific
// ioctls ([terminal_linux.go]) and are stubbed out here, so a pty-backed
// run on a non-Linux host always falls back to 1-byte stdin reads and
// skips cbreak save/restore
type portableTerminal struct{}

var _ Terminal = portableTerminal{}

// NewTerminal returns the portable [Terminal] for hosts without a
// Linux-specific implementation
func NewTerminal() (terminal Terminal) { return portableTerminal{} }

func (portableTerminal) IsTTY(f *os.File) (isTTY bool) { return defaultIsTTY(f) }

func (portableTerminal) WindowSize(f *os.File) (rows, cols int, err error) { return }

func (portableTerminal) IsForeground(f *os.File) (isForeground bool) { return false }

func (portableTerminal) FionRead(f *os.File) (n int, err error) { return 0, nil }

func (portableTerminal) IsCbreak(f *os.File) (isCbreak bool, err error) { return false, nil }

func (portableTerminal) SetCbreak(f *os.File) (restore func(), err error) {
	return func() {}, nil
}
