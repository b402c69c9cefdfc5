/*
© 2024–present Harald Rudell <haraldrudell@proton.me> (https://haraldrudell.github.io/haraldrudell/)
All rights reserved
*/

package pexec

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/haraldrudell/corerun/perrors"
)

// RunWith executes command per opts and blocks until it completes,
// returning a [Result]
//   - backend and term are injected explicitly, letting tests substitute
//     fakes; [Run] is the host-facing entry point that supplies the real
//     OS backend and [Terminal]
//   - if opts.Asynchronous is true, RunWith instead returns a non-nil
//     [Promise] and a nil error once the child has started; option and
//     start errors are still returned directly, any later failure
//     surfaces from [Promise.Join]
//   - if opts.Disown is true, RunWith starts the child and returns
//     immediately with both return values nil
//
// runs as a single-function orchestration over the twelve-step sequence
// of argument validation, echo, start, worker supervision, timer, wait,
// join and outcome decision
func RunWith(command string, opts RunOpts, config *Config, backend SpawnBackend, term Terminal) (result *Result, promise *Promise, err error) {
	var r resolvedOpts
	if r, err = opts.resolve(config); err != nil {
		return
	}

	// step 8 (applied up front): asynchronous forces hide=both and, unless
	// the caller explicitly passed an InStream, disables stdin entirely
	if r.Asynchronous {
		r.Hide = HideBoth
		if r.InStream == nil {
			r.InStreamDisabled = true
		}
	}

	// step 2: dry-run short circuit — always prints, regardless of Hide
	if r.Dry {
		r.Echo = true
		echoCommand(command, r.EchoFormat, r.OutStream)
		var exited = 0
		result = &Result{Command: command, Shell: r.shell, Env: r.Env, Exited: &exited, Encoding: r.encoding, Hide: r.Hide}
		return
	}

	// step 3: echo
	if r.Echo && !r.Hide.Stdout {
		echoCommand(command, r.EchoFormat, r.OutStream)
	}

	if backend == nil {
		backend = selectBackend(r, term)
	}
	var run = &runState{
		command: command,
		opts:    r,
		backend: backend,
		term:    term,
		wg:      &sync.WaitGroup{},
	}
	run.exceptions = perrors.NewParlError(nil)

	if err = run.start(); err != nil {
		return
	}

	// step 4: disown
	if r.Disown {
		return
	}

	run.launchWorkers()
	run.armTimer()

	// step 8: asynchronous branch
	if r.Asynchronous {
		promise = newPromise(run)
		return
	}

	result, err = run.join()
	return
}

// echoCommand writes the formatted command line, followed by a
// newline, to the user stdout sink
//   - callers decide whether Hide gates this call; the dry-run short
//     circuit always calls it, the normal echo path only when stdout
//     is not hidden
func echoCommand(command, format string, out io.Writer) {
	if out == nil {
		return
	}
	var line = strings.ReplaceAll(format, "{command}", command) + "\n"
	_, _ = out.Write([]byte(line))
}

// runState is the Runner’s live, per-invocation state: the resolved
// options, the backend handle and the workers’ shared exception sink
//   - not exported: callers interact with Run and [Promise] only
type runState struct {
	command string
	opts    resolvedOpts
	backend SpawnBackend
	term    Terminal

	wg         *sync.WaitGroup
	exceptions *perrors.ParlError

	outCapture strings.Builder
	errCapture strings.Builder
	stdin      *stdinWriter

	timer      *time.Timer
	timedOut   bool
	timerMutex sync.Mutex

	watcherErr error

	restoreCbreak func()
}

// start resolves the shell and invokes the backend’s Start
func (s *runState) start() (err error) {
	if err = s.backend.Start(s.command, s.opts.shell, s.opts.Env, s.opts.ReplaceEnv); err != nil {
		return
	}
	s.stdin = newStdinWriter(s.backend)

	if s.term != nil {
		if inFile, ok := s.opts.InStream.(*os.File); ok && inFile != nil {
			if s.term.IsTTY(inFile) && s.term.IsForeground(inFile) {
				if isCbreak, cbErr := s.term.IsCbreak(inFile); cbErr == nil && !isCbreak {
					// SetCbreak and its returned restore both guard
					// terminalMutex internally; no external locking here
					s.restoreCbreak, _ = s.term.SetCbreak(inFile)
				}
			}
		}
	}
	return
}

// launchWorkers starts the stdout pump always, the stderr pump unless
// the run is pty-backed, and the stdin pump unless stdin was disabled
func (s *runState) launchWorkers() {
	var decoderOut = NewIncrementalDecoder(s.opts.encoding)
	var outWorker = newWorker("stdout", s.wg, s.exceptions)
	outWorker.run(func() (err error) {
		return pumpOut(
			"stdout",
			s.backend.ReadOut,
			decoderOut,
			&s.outCapture,
			toWriteFlusher(s.opts.OutStream),
			s.opts.Watchers,
			s.stdin,
			&s.watcherErr,
			4096,
		)
	})

	if !s.backend.IsPty() {
		var decoderErr = NewIncrementalDecoder(s.opts.encoding)
		var errWorker = newWorker("stderr", s.wg, s.exceptions)
		errWorker.run(func() (err error) {
			return pumpOut(
				"stderr",
				s.backend.ReadErr,
				decoderErr,
				&s.errCapture,
				toWriteFlusher(s.opts.ErrStream),
				s.opts.Watchers,
				s.stdin,
				&s.watcherErr,
				4096,
			)
		})
	}

	if !s.opts.InStreamDisabled && s.opts.InStream != nil {
		var echo bool
		if s.opts.EchoStdin != nil {
			echo = *s.opts.EchoStdin
		} else if s.term != nil {
			echo = shouldEchoStdin(s.term, asFile(s.opts.InStream), asFile(s.opts.OutStream), s.backend.IsPty(), s.opts.EchoStdin)
		}
		var inWorker = newWorker("stdin", s.wg, s.exceptions)
		inWorker.run(func() (err error) {
			return pumpIn(&stdinReader{r: s.opts.InStream}, s.stdin, s.term, s.backend.IsPty(), echo, toWriteFlusher(s.opts.OutStream))
		})
	}
}

// asFile returns f as an *os.File if it is one, nil otherwise
func asFile(f any) (file *os.File) {
	file, _ = f.(*os.File)
	return
}

// armTimer schedules a one-shot kill on expiry when a timeout is configured
func (s *runState) armTimer() {
	if s.opts.Timeout <= 0 {
		return
	}
	s.timer = time.AfterFunc(time.Duration(s.opts.Timeout*float64(time.Second)), func() {
		s.timerMutex.Lock()
		s.timedOut = true
		s.timerMutex.Unlock()
		_ = s.backend.Kill()
	})
}

// isTimedOut reports whether the timer fired
func (s *runState) isTimedOut() (timedOut bool) {
	s.timerMutex.Lock()
	defer s.timerMutex.Unlock()
	return s.timedOut
}

// join performs steps 9–12: join workers, wait, stop, decide outcome
//   - grounded on spec.md §4.1 steps 9–12; workers are drained before the
//     backend's Wait is invoked, not after: os/exec documents that Wait
//     closes the StdoutPipe/StderrPipe read ends on process exit, so
//     calling it before the pump workers finish their reads races the
//     pipe closing out from under them
//   - stop is deferred so it always runs, even if waitForExit panics
func (s *runState) join() (result *Result, err error) {
	s.wg.Wait()

	defer s.stop()

	var exitCode int
	var waitErr = s.waitForExit(&exitCode)

	result = &Result{
		Command:  s.command,
		Shell:    s.opts.shell,
		Env:      s.opts.Env,
		Stdout:   s.outCapture.String(),
		Stderr:   s.errCapture.String(),
		Exited:   &exitCode,
		Pty:      s.backend.IsPty(),
		Hide:     s.opts.Hide,
		Encoding: s.opts.encoding,
	}

	err = s.decideOutcome(result, waitErr)
	return
}

// waitForExit blocks on the backend’s Wait, recording the exit code
func (s *runState) waitForExit(exitCode *int) (err error) {
	*exitCode, err = s.backend.Wait()
	return
}

// stop always runs: cancels the timer, restores terminal attributes
// and invokes the backend’s Stop
func (s *runState) stop() {
	if s.timer != nil {
		s.timer.Stop()
	}
	if s.restoreCbreak != nil {
		// the closure itself guards terminalMutex; see start()
		s.restoreCbreak()
	}
	_ = s.backend.Stop()
}

// decideOutcome implements spec.md §4.1 step 12’s priority order
func (s *runState) decideOutcome(result *Result, waitErr error) (err error) {
	if threadErr := s.exceptions.GetError(); threadErr != nil {
		return NewThreadException(threadExceptionItems(threadErr))
	}
	if s.isTimedOut() {
		return NewCommandTimedOut(result, s.opts.Timeout)
	}
	if s.watcherErr != nil {
		result.Exited = nil
		return &Failure{Result: result, Reason: ReasonWatcherError, Cause: s.watcherErr}
	}
	if waitErr != nil {
		return perrors.ErrorfPF("wait %w", waitErr)
	}
	if result.Exited != nil && *result.Exited != 0 {
		if s.opts.Warn {
			return
		}
		return NewUnexpectedExit(result)
	}
	return
}

// threadExceptionItems flattens a [perrors.ParlError]’s aggregate into
// labeled items for [ThreadException]
//   - a single worker label is not individually recoverable from the
//     aggregate error chain produced by [perrors.AppendError]-joined
//     errors, so all captured worker failures are reported under the
//     single label "worker"
func threadExceptionItems(err error) (items []ThreadExceptionItem) {
	return []ThreadExceptionItem{{Label: "worker", Err: err}}
}

// selectBackend resolves Pty/Fallback into a concrete [SpawnBackend]
func selectBackend(opts resolvedOpts, term Terminal) (backend SpawnBackend) {
	if !opts.Pty {
		return NewPipeBackend()
	}
	if term != nil && fallbackToPipe(term, asFile(opts.InStream), opts.Fallback) {
		return NewPipeBackend()
	}
	return NewPtyBackend()
}
