/*
© 2024–present Harald Rudell <haraldrudell@proton.me> (https://haraldrudell.github.io/haraldrudell/)
All rights reserved
*/

package pexec

import (
	"io"
	"os"
)

// stdinReader wraps the caller-provided RunOpts.InStream so the
// stdin pump can both read from it and, when it is an *os.File,
// recover the descriptor for the TTY/foreground FIONREAD check
type stdinReader struct{ r io.Reader }

var _ readerWithFd = &stdinReader{}

func (s *stdinReader) Read(p []byte) (n int, err error) { return s.r.Read(p) }

func (s *stdinReader) osFile() (f *os.File, ok bool) {
	f, ok = s.r.(*os.File)
	return
}

// stdinWriter funnels both watcher responses and mirrored caller bytes
// into the child’s stdin through a single path holding the active
// [SpawnBackend], so watchers (invoked from the stdout/stderr pumps) and
// the stdin pump can both reach write_in safely without a second lock of
// their own
type stdinWriter struct {
	backend SpawnBackend
}

func newStdinWriter(backend SpawnBackend) (s *stdinWriter) { return &stdinWriter{backend: backend} }

// write serializes against [stdinWriter.close] and other writers via
// the backend’s own internal lock (see [pipeBackend.inLock],
// [ptyBackend.inLock])
func (s *stdinWriter) write(p []byte) (err error) { return s.backend.WriteIn(p) }

func (s *stdinWriter) close() (err error) { return s.backend.CloseIn() }
