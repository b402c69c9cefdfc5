/*
© 2024–present Harald Rudell <haraldrudell@proton.me> (https://haraldrudell.github.io/haraldrudell/)
All rights reserved
*/

package pexec

import "os"

// fakeTerminal is a [Terminal] test double that never reports a real TTY,
// so Runner tests never touch the process’s actual controlling terminal
type fakeTerminal struct {
	isTTY      bool
	foreground bool
}

var _ Terminal = &fakeTerminal{}

func (f *fakeTerminal) IsTTY(file *os.File) (isTTY bool) { return f.isTTY }

func (f *fakeTerminal) WindowSize(file *os.File) (rows, cols int, err error) { return 24, 80, nil }

func (f *fakeTerminal) IsForeground(file *os.File) (isForeground bool) { return f.foreground }

func (f *fakeTerminal) FionRead(file *os.File) (n int, err error) { return 0, nil }

func (f *fakeTerminal) IsCbreak(file *os.File) (isCbreak bool, err error) { return false, nil }

func (f *fakeTerminal) SetCbreak(file *os.File) (restore func(), err error) {
	return func() {}, nil
}
