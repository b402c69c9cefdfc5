/*
© 2024–present Harald Rudell <haraldrudell@proton.me> (https://haraldrudell.github.io/haraldrudell/)
All rights reserved
*/

package pexec

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"strings"
	"sync"

	"github.com/haraldrudell/corerun/perrors"
	"golang.org/x/sys/unix"
)

// pipeBackend is the [SpawnBackend] spawning the child with three
// ordinary OS pipes, explicit resolved shell executable and
// merged/replaced environment
type pipeBackend struct {
	cmd *exec.Cmd

	stdinW  io.WriteCloser
	stdoutR io.ReadCloser
	stderrR io.ReadCloser

	// WriteIn is serialized against CloseIn and the stdin pump
	inLock sync.Mutex
	closed bool
}

var _ SpawnBackend = &pipeBackend{}

// NewPipeBackend returns a pipe-based [SpawnBackend]
func NewPipeBackend() (backend SpawnBackend) { return &pipeBackend{} }

func (b *pipeBackend) Start(command, shell string, env map[string]string, replaceEnv bool) (err error) {
	b.cmd = exec.Command(shell, "-c", command)
	b.cmd.Env = resolveEnv(env, replaceEnv)

	if b.stdinW, err = b.cmd.StdinPipe(); err != nil {
		err = perrors.ErrorfPF("StdinPipe %w", err)
		return
	}
	if b.stdoutR, err = b.cmd.StdoutPipe(); err != nil {
		err = perrors.ErrorfPF("StdoutPipe %w", err)
		return
	}
	if b.stderrR, err = b.cmd.StderrPipe(); err != nil {
		err = perrors.ErrorfPF("StderrPipe %w", err)
		return
	}
	if err = b.cmd.Start(); err != nil {
		err = perrors.ErrorfPF("Start %w", err)
	}
	return
}

// resolveEnv merges or replaces the inherited environment with env
func resolveEnv(env map[string]string, replaceEnv bool) (result []string) {
	if len(env) == 0 {
		if replaceEnv {
			return []string{}
		}
		return nil // nil: exec.Cmd uses os.Environ()
	}
	if !replaceEnv {
		result = os.Environ()
	}
	for k, v := range env {
		result = append(result, k+"="+v)
	}
	return
}

func (b *pipeBackend) ReadOut(n int) (p []byte, eof bool, err error) { return readChunk(b.stdoutR, n) }
func (b *pipeBackend) ReadErr(n int) (p []byte, eof bool, err error) { return readChunk(b.stderrR, n) }

// readChunk reads up to n bytes, translating io.EOF to eof=true, err=nil
//   - also tolerates fs.ErrClosed as eof: if the process terminates
//     quickly, Wait may have already closed the pipe's read end out from
//     under a racing read
func readChunk(r io.Reader, n int) (p []byte, eof bool, err error) {
	if n <= 0 {
		n = 1
	}
	p = make([]byte, n)
	var nRead int
	nRead, err = r.Read(p)
	p = p[:nRead]
	if err == io.EOF || errors.Is(err, fs.ErrClosed) {
		eof = nRead == 0
		err = nil
	} else if err != nil {
		err = perrors.ErrorfPF("read %w", err)
	}
	return
}

func (b *pipeBackend) WriteIn(p []byte) (err error) {
	b.inLock.Lock()
	defer b.inLock.Unlock()
	if b.closed {
		return
	}
	if _, err = b.stdinW.Write(p); err != nil {
		err = perrors.ErrorfPF("stdin write %w", err)
	}
	return
}

func (b *pipeBackend) CloseIn() (err error) {
	b.inLock.Lock()
	defer b.inLock.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	if err = b.stdinW.Close(); err != nil {
		err = perrors.ErrorfPF("stdin close %w", err)
	}
	return
}

func (b *pipeBackend) Wait() (exitCode int, err error) {
	var waitErr = b.cmd.Wait()
	if waitErr == nil {
		return // exitCode 0 return
	}
	var hasStatusCode bool
	var signal unix.Signal
	hasStatusCode, exitCode, signal, _ = ExitError(waitErr)
	if !hasStatusCode {
		err = perrors.ErrorfPF("Wait %w", waitErr)
		return
	}
	if exitCode == TerminatedBySignal && signal != 0 {
		exitCode = -int(signal)
	}
	return
}

func (b *pipeBackend) Kill() (err error) {
	if b.cmd.Process == nil {
		return
	}
	if err = b.cmd.Process.Kill(); err != nil {
		err = perrors.ErrorfPF("Kill %w", err)
	}
	return
}

func (b *pipeBackend) SendInterrupt() (err error) { return b.WriteIn([]byte{0x03}) }

func (b *pipeBackend) Stop() (err error) {
	for _, c := range []io.Closer{b.stdinW, b.stdoutR, b.stderrR} {
		if c == nil {
			continue
		}
		if e := c.Close(); e != nil && !strings.Contains(e.Error(), "file already closed") {
			err = perrors.AppendError(err, perrors.ErrorfPF("close %w", e))
		}
	}
	return
}

func (b *pipeBackend) WindowSize() (rows, cols int) { return 0, 0 }

func (b *pipeBackend) IsPty() (isPty bool) { return false }
