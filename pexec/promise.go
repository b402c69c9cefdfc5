/*
© 2024–present Harald Rudell <haraldrudell@proton.me> (https://haraldrudell.github.io/haraldrudell/)
All rights reserved
*/

package pexec

import "sync"

// Promise wraps a running, asynchronous command run
//   - exposes read-only run parameters; Stdout/Stderr are not finalized
//     until [Promise.Join] returns
//   - a Promise constructed with RunOpts.Disown is never created: [Run]
//     returns nothing instead in that case
//   - as a scoped resource, [Promise.Join] must be called exactly once;
//     calling it again after the first call returns the same outcome
type Promise struct {
	// the command string as provided to [Run]
	Command string
	// true if the command executes inside a pseudo-terminal
	Pty bool
	// the codec decoding the child’s output bytes
	Encoding string
	// the shell used to invoke Command
	Shell string

	run      *runState
	joinOnce sync.Once
	result   *Result
	joinErr  error
}

// newPromise wraps an already-started, already-launched run
func newPromise(run *runState) (promise *Promise) {
	return &Promise{
		Command:  run.command,
		Pty:      run.backend.IsPty(),
		Encoding: run.opts.encoding,
		Shell:    run.opts.shell,
		run:      run,
	}
}

// Join performs wait+stop+outcome-decision exactly once, returning or
// erroring exactly as the synchronous [Run] path would
//   - safe to call from multiple goroutines: the underlying wait+stop
//     sequence executes once, and every caller observes the same result
func (p *Promise) Join() (result *Result, err error) {
	p.joinOnce.Do(func() { p.result, p.joinErr = p.run.join() })
	return p.result, p.joinErr
}

// Interrupt writes byte 0x03 to the child’s stdin, the same effect a
// controlling terminal’s SIGINT has, then lets the child’s own
// reaction to that byte drive it towards natural exit and [Promise.Join]
//   - callers wanting SIGINT-style interruptibility on a blocking
//     synchronous run should use RunOpts.Asynchronous and call Interrupt
//     from their own signal.Notify goroutine concurrently with Join,
//     since a synchronous run otherwise blocks the calling goroutine
//     for the run’s entire duration
func (p *Promise) Interrupt() (err error) { return p.run.backend.SendInterrupt() }
