/*
© 2024–present Harald Rudell <haraldrudell@proton.me> (https://haraldrudell.github.io/haraldrudell/)
All rights reserved
*/

package pexec

import "sync"

// fakeBackend is an in-memory [SpawnBackend] test double: stdout/stderr
// are pre-loaded chunk sequences, stdin writes are captured, Wait
// returns the configured exit code, and Kill records the call and
// drains the remaining chunks
type fakeBackend struct {
	lock sync.Mutex

	outChunks [][]byte
	errChunks [][]byte
	outIdx    int
	errIdx    int

	exitCode int
	killed   bool
	pty      bool

	stdinWritten []byte
	started      bool
	startErr     error
}

var _ SpawnBackend = &fakeBackend{}

func (f *fakeBackend) Start(command, shell string, env map[string]string, replaceEnv bool) (err error) {
	f.started = true
	return f.startErr
}

func (f *fakeBackend) ReadOut(n int) (p []byte, eof bool, err error) { return f.readChunks(&f.outIdx, f.outChunks) }
func (f *fakeBackend) ReadErr(n int) (p []byte, eof bool, err error) { return f.readChunks(&f.errIdx, f.errChunks) }

func (f *fakeBackend) readChunks(idx *int, chunks [][]byte) (p []byte, eof bool, err error) {
	f.lock.Lock()
	defer f.lock.Unlock()
	if *idx >= len(chunks) {
		return nil, true, nil
	}
	p = chunks[*idx]
	*idx++
	return
}

func (f *fakeBackend) WriteIn(p []byte) (err error) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.stdinWritten = append(f.stdinWritten, p...)
	return
}

func (f *fakeBackend) CloseIn() (err error) { return }

func (f *fakeBackend) Wait() (exitCode int, err error) {
	f.lock.Lock()
	defer f.lock.Unlock()
	return f.exitCode, nil
}

func (f *fakeBackend) Kill() (err error) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.killed = true
	f.outIdx = len(f.outChunks)
	f.errIdx = len(f.errChunks)
	return
}

func (f *fakeBackend) SendInterrupt() (err error) { return f.WriteIn([]byte{0x03}) }

func (f *fakeBackend) Stop() (err error) { return }

func (f *fakeBackend) WindowSize() (rows, cols int) { return 0, 0 }

func (f *fakeBackend) IsPty() (isPty bool) { return f.pty }

func chunksOf(s string) (chunks [][]byte) {
	for i := 0; i < len(s); i++ {
		chunks = append(chunks, []byte{s[i]})
	}
	return
}
