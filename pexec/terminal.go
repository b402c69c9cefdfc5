/*
© 2024–present Harald Rudell <haraldrudell@proton.me> (https://haraldrudell.github.io/haraldrudell/)
All rights reserved
*/

package pexec

import (
	"os"
	"sync"

	"github.com/mattn/go-isatty"
)

// terminalMutex guards cbreak save/restore so concurrent Runners
// targeting the same controlling TTY do not interleave termios state,
// matching the teacher’s convention of package-level synchronization
// for shared host resources (eg. plog.GetLog’s shared log.Logger map)
var terminalMutex sync.Mutex

// Terminal is the injected capability wrapping process-wide TTY state:
// window size, foreground-process check and cbreak save/restore
//   - modeled as an explicit capability so tests can substitute a fake
//     that never touches the real controlling TTY
type Terminal interface {
	// IsTTY returns true if f refers to a terminal device
	IsTTY(f *os.File) (isTTY bool)
	// WindowSize returns the controlling TTY’s current size
	WindowSize(f *os.File) (rows, cols int, err error)
	// IsForeground returns true if the calling process group owns f’s
	// controlling terminal
	IsForeground(f *os.File) (isForeground bool)
	// FionRead returns the number of bytes immediately available to
	// read from f without blocking
	FionRead(f *os.File) (n int, err error)
	// IsCbreak returns true if f already has lflag&(ECHO|ICANON)==0,
	// cc[VMIN]==1 and cc[VTIME]==0
	IsCbreak(f *os.File) (isCbreak bool, err error)
	// SetCbreak saves f’s current attributes and switches to cbreak
	// mode; Restore undoes exactly this change, once
	SetCbreak(f *os.File) (restore func(), err error)
}

// shouldEchoStdin implements the default should_echo_stdin heuristic:
// true iff in and out are both TTYs and the run is not pty-backed
//   - echoStdin, if non-nil, overrides the heuristic unconditionally
func shouldEchoStdin(term Terminal, in, out *os.File, pty bool, echoStdin *bool) (echo bool) {
	if echoStdin != nil {
		return *echoStdin
	}
	if pty {
		return false
	}
	return in != nil && out != nil && term.IsTTY(in) && term.IsTTY(out)
}

// fallbackToPipe decides whether a pty request downgrades to pipe mode
//   - true when stdin is not a TTY or there is no controlling TTY, and
//     fallback was requested
func fallbackToPipe(term Terminal, in *os.File, fallback bool) (usePipe bool) {
	return fallback && (in == nil || !term.IsTTY(in))
}

// defaultIsTTY is the shared, platform-independent isatty check backing
// [Terminal] implementations
func defaultIsTTY(f *os.File) (isTTY bool) {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
