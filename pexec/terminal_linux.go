//go:build linux

/*
© 2024–present Harald Rudell <haraldrudell@proton.me> (https://haraldrudell.github.io/haraldrudell/)
All rights reserved
*/

package pexec

import (
	"os"

	"github.com/haraldrudell/corerun/perrors"
	"golang.org/x/sys/unix"
)

// linuxTerminal is the Linux [Terminal] implementation, backed by
// termios ioctls via golang.org/x/sys/unix
type linuxTerminal struct{}

var _ Terminal = linuxTerminal{}

// NewTerminal returns the host OS’ [Terminal] implementation
func NewTerminal() (terminal Terminal) { return linuxTerminal{} }

func (linuxTerminal) IsTTY(f *os.File) (isTTY bool) { return defaultIsTTY(f) }

func (linuxTerminal) WindowSize(f *os.File) (rows, cols int, err error) {
	var ws *unix.Winsize
	if ws, err = unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ); err != nil {
		err = perrors.ErrorfPF("IoctlGetWinsize %w", err)
		return
	}
	rows, cols = int(ws.Row), int(ws.Col)
	return
}

func (linuxTerminal) IsForeground(f *os.File) (isForeground bool) {
	var pgrp, err = unix.IoctlGetInt(int(f.Fd()), unix.TIOCGPGRP)
	if err != nil {
		return false
	}
	return pgrp == unix.Getpgrp()
}

func (linuxTerminal) FionRead(f *os.File) (n int, err error) {
	if n, err = unix.IoctlGetInt(int(f.Fd()), unix.FIONREAD); err != nil {
		err = perrors.ErrorfPF("FIONREAD %w", err)
	}
	return
}

func (linuxTerminal) IsCbreak(f *os.File) (isCbreak bool, err error) {
	var termios *unix.Termios
	if termios, err = unix.IoctlGetTermios(int(f.Fd()), unix.TCGETS); err != nil {
		err = perrors.ErrorfPF("IoctlGetTermios %w", err)
		return
	}
	isCbreak = termios.Lflag&(unix.ECHO|unix.ICANON) == 0 &&
		termios.Cc[unix.VMIN] == 1 &&
		termios.Cc[unix.VTIME] == 0
	return
}

func (linuxTerminal) SetCbreak(f *os.File) (restore func(), err error) {
	terminalMutex.Lock()
	defer terminalMutex.Unlock()

	var fd = int(f.Fd())
	var saved *unix.Termios
	if saved, err = unix.IoctlGetTermios(fd, unix.TCGETS); err != nil {
		err = perrors.ErrorfPF("IoctlGetTermios %w", err)
		return
	}
	var cbreak = *saved
	cbreak.Lflag &^= unix.ECHO | unix.ICANON
	cbreak.Cc[unix.VMIN] = 1
	cbreak.Cc[unix.VTIME] = 0
	if err = unix.IoctlSetTermios(fd, unix.TCSETS, &cbreak); err != nil {
		err = perrors.ErrorfPF("IoctlSetTermios %w", err)
		return
	}

	var once bool
	restore = func() {
		terminalMutex.Lock()
		defer terminalMutex.Unlock()
		if once {
			return
		}
		once = true
		// TCSETSW waits for queued output to drain, matching TCSADRAIN
		// semantics for terminal-attribute restore
		_ = unix.IoctlSetTermios(fd, unix.TCSETSW, saved)
	}
	return
}
