//go:build linux

/*
© 2024–present Harald Rudell <haraldrudell@proton.me> (https://haraldrudell.github.io/haraldrudell/)
All rights reserved
*/

package pexec

import (
	"os"
	"os/exec"
	"strconv"
	"strings"
	"sync"
	"syscall"

	"github.com/haraldrudell/corerun/perrors"
	"golang.org/x/sys/unix"
)

// ptyBackend is the [SpawnBackend] forking the child into a
// pseudoterminal: one combined master fd carries both directions of
// the merged stdout/stderr stream
type ptyBackend struct {
	cmd    *exec.Cmd
	master *os.File

	inLock sync.Mutex
	closed bool
}

var _ SpawnBackend = &ptyBackend{}

// NewPtyBackend returns a pty-based [SpawnBackend]
func NewPtyBackend() (backend SpawnBackend) { return &ptyBackend{} }

func (b *ptyBackend) Start(command, shell string, env map[string]string, replaceEnv bool) (err error) {
	var master, slave *os.File
	if master, slave, err = openPty(); err != nil {
		return
	}
	defer slave.Close()
	b.master = master

	// propagate the controlling TTY’s window size to the slave pty
	if size, sizeErr := unix.IoctlGetWinsize(int(os.Stdin.Fd()), unix.TIOCGWINSZ); sizeErr == nil {
		_ = unix.IoctlSetWinsize(int(slave.Fd()), unix.TIOCSWINSZ, size)
	}

	b.cmd = exec.Command(shell, "-c", command)
	b.cmd.Env = resolveEnv(env, replaceEnv)
	b.cmd.Stdin = slave
	b.cmd.Stdout = slave
	b.cmd.Stderr = slave
	b.cmd.SysProcAttr = &syscall.SysProcAttr{
		Setsid:  true,
		Setctty: true,
	}
	if err = b.cmd.Start(); err != nil {
		err = perrors.ErrorfPF("Start %w", err)
		_ = master.Close()
	}
	return
}

// openPty opens /dev/ptmx and its paired slave device
func openPty() (master, slave *os.File, err error) {
	if master, err = os.OpenFile("/dev/ptmx", os.O_RDWR|unix.O_NOCTTY, 0); err != nil {
		err = perrors.ErrorfPF("open /dev/ptmx %w", err)
		return
	}
	var n uint32
	if n, err = unix.IoctlGetUint32(int(master.Fd()), unix.TIOCGPTN); err != nil {
		err = perrors.ErrorfPF("TIOCGPTN %w", err)
		_ = master.Close()
		return
	}
	if err = unix.IoctlSetPointerInt(int(master.Fd()), unix.TIOCSPTLCK, 0); err != nil {
		err = perrors.ErrorfPF("TIOCSPTLCK %w", err)
		_ = master.Close()
		return
	}
	var slavePath = "/dev/pts/" + strconv.Itoa(int(n))
	if slave, err = os.OpenFile(slavePath, os.O_RDWR, 0); err != nil {
		err = perrors.ErrorfPF("open %s %w", slavePath, err)
		_ = master.Close()
		return
	}
	return
}

func (b *ptyBackend) ReadOut(n int) (p []byte, eof bool, err error) {
	if n <= 0 {
		n = 1
	}
	p = make([]byte, n)
	var nRead int
	nRead, err = b.master.Read(p)
	p = p[:nRead]
	if err != nil {
		eof = isPtyEOF(err)
		if eof {
			err = nil
		} else {
			err = perrors.ErrorfPF("pty read %w", err)
		}
	}
	return
}

// isPtyEOF treats pty read errors that mean "the slave side is gone" as
// EOF: actual io.EOF, and EIO, which a pty master returns once its
// slave side has no more open references
//   - the documented open question: detect via errno where possible but
//     accept the historical "Input/output error"/"I/O error" string
//     forms identically
func isPtyEOF(err error) (eof bool) {
	if err == nil {
		return false
	}
	if errIsEOF(err) {
		return true
	}
	if errIsErrno(err, unix.EIO) {
		return true
	}
	var msg = err.Error()
	return strings.Contains(msg, "Input/output error") || strings.Contains(msg, "I/O error")
}

func (b *ptyBackend) ReadErr(n int) (p []byte, eof bool, err error) { return nil, true, nil }

func (b *ptyBackend) WriteIn(p []byte) (err error) {
	b.inLock.Lock()
	defer b.inLock.Unlock()
	if b.closed {
		return
	}
	if _, err = b.master.Write(p); err != nil {
		err = perrors.ErrorfPF("pty write %w", err)
	}
	return
}

// CloseIn is never invoked for a pty-backed run: stdin is not
// separately closable from the combined master fd
func (b *ptyBackend) CloseIn() (err error) {
	return &SubprocessPipeError{Cause: ErrSubprocessPipe}
}

func (b *ptyBackend) Wait() (exitCode int, err error) {
	var state *os.ProcessState
	state, err = b.cmd.Process.Wait()
	if err != nil {
		err = perrors.ErrorfPF("Wait %w", err)
		return
	}
	if ws, ok := state.Sys().(syscall.WaitStatus); ok {
		switch {
		case ws.Exited():
			exitCode = ws.ExitStatus()
		case ws.Signaled():
			exitCode = -int(ws.Signal())
		}
	}
	return
}

func (b *ptyBackend) Kill() (err error) {
	if b.cmd.Process == nil {
		return
	}
	if err = unix.Kill(-b.cmd.Process.Pid, unix.SIGKILL); err != nil {
		err = perrors.ErrorfPF("Kill %w", err)
	}
	return
}

func (b *ptyBackend) SendInterrupt() (err error) { return b.WriteIn([]byte{0x03}) }

func (b *ptyBackend) Stop() (err error) {
	if b.master != nil {
		_ = b.master.Close() // pty close errors are tolerated
	}
	return
}

func (b *ptyBackend) WindowSize() (rows, cols int) {
	if b.master == nil {
		return
	}
	if ws, wsErr := unix.IoctlGetWinsize(int(b.master.Fd()), unix.TIOCGWINSZ); wsErr == nil {
		rows, cols = int(ws.Row), int(ws.Col)
	}
	return
}

func (b *ptyBackend) IsPty() (isPty bool) { return true }
