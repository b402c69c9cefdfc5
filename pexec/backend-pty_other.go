//go:build !linux

/*
© 2024–present Harald Rudell <haraldrudell@proton.me> (https://haraldrudell.github.io/haraldrudell/)
All rights reserved
*/

package pexec

import "errors"

// errPtyUnsupported is returned by [NewPtyBackend]’s Start on hosts
// without a Linux-specific pty implementation ([backend-pty_linux.go])
var errPtyUnsupported = errors.New("pty-backed execution is not implemented on this platform")

// ptyBackend stubs [SpawnBackend] on non-Linux hosts: [selectBackend]
// downgrades to [pipeBackend] only when RunOpts.Fallback is set and
// stdin is not a TTY; in every other pty-requested case this stub is
// used and its Start returns a clean error instead of a missing symbol
type ptyBackend struct{}

var _ SpawnBackend = &ptyBackend{}

// NewPtyBackend returns the non-functional pty [SpawnBackend] stub
func NewPtyBackend() (backend SpawnBackend) { return &ptyBackend{} }

func (b *ptyBackend) Start(command, shell string, env map[string]string, replaceEnv bool) (err error) {
	return errPtyUnsupported
}
func (b *ptyBackend) ReadOut(n int) (p []byte, eof bool, err error) { return nil, true, nil }
func (b *ptyBackend) ReadErr(n int) (p []byte, eof bool, err error) { return nil, true, nil }
func (b *ptyBackend) WriteIn(p []byte) (err error)                  { return errPtyUnsupported }
func (b *ptyBackend) CloseIn() (err error)                          { return errPtyUnsupported }
func (b *ptyBackend) Wait() (exitCode int, err error)               { return 0, errPtyUnsupported }
func (b *ptyBackend) Kill() (err error)                             { return errPtyUnsupported }
func (b *ptyBackend) SendInterrupt() (err error)                    { return errPtyUnsupported }
func (b *ptyBackend) Stop() (err error)                             { return nil }
func (b *ptyBackend) WindowSize() (rows, cols int)                  { return 0, 0 }
func (b *ptyBackend) IsPty() (isPty bool)                           { return true }
