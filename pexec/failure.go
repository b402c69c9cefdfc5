/*
© 2024–present Harald Rudell <haraldrudell@proton.me> (https://haraldrudell.github.io/haraldrudell/)
All rights reserved
*/

package pexec

import (
	"errors"
	"fmt"
	"strings"

	"github.com/haraldrudell/corerun/perrors"
)

// ErrInvalidArgument is returned for unknown options, unknown `hide` values
// and mutually exclusive option combinations
var ErrInvalidArgument = errors.New("invalid argument")

// ErrSubprocessPipe is the cause of [SubprocessPipeError]:
// closing the child’s stdin while running inside a pty
var ErrSubprocessPipe = errors.New("cannot close stdin of a pty-backed process")

// FailureReason classifies why a [Failure] was raised
type FailureReason int

const (
	// a watcher’s Submit method returned an error
	ReasonWatcherError FailureReason = iota + 1
	// the command exited with a non-zero status and warn was false
	ReasonUnexpectedExit
	// the timer armed by RunOpts.Timeout fired
	ReasonCommandTimedOut
)

// Failure is the base type for command runs that did not succeed
//   - [Failure.Unwrap] exposes the underlying cause, if any
type Failure struct {
	// the result as far as it was determined, Exited may be nil
	Result *Result
	// why the run failed
	Reason FailureReason
	// optional underlying cause, eg. a watcher’s error
	Cause error
}

var _ error = &Failure{}

// Error implements the error interface
func (f *Failure) Error() (s string) { return f.message() }

// Unwrap allows errors.Is/errors.As to reach Cause
func (f *Failure) Unwrap() (err error) { return f.Cause }

// GoString is the repr-style representation: “<Failure: cmd='<cmd>'>”
func (f *Failure) GoString() (s string) {
	return fmt.Sprintf("<Failure: cmd='%s'>", f.command())
}

func (f *Failure) command() (command string) {
	if f.Result != nil {
		command = f.Result.Command
	}
	return
}

func (f *Failure) message() (s string) {
	switch f.Reason {
	case ReasonWatcherError:
		var cause string
		if f.Cause != nil {
			cause = ": " + f.Cause.Error()
		}
		return fmt.Sprintf("watcher error for command '%s'%s", f.command(), cause)
	default:
		return fmt.Sprintf("command '%s' did not succeed", f.command())
	}
}

// streamSections renders the Stdout:/Stderr: sections shared by
// [UnexpectedExit] and [CommandTimedOut]
//   - hidden streams show the last 10 lines; every stream that is not
//     hidden shows the literal "already printed", whether or not a sink
//     was provided for it
func streamSections(result *Result) (s string) {
	var b strings.Builder
	b.WriteString("Stdout:")
	if result.Hide.Stdout {
		b.WriteString(tail(result.Stdout, 10))
	} else {
		b.WriteString(" already printed")
	}
	b.WriteString("\nStderr:")
	if result.Pty {
		b.WriteString(" n/a (PTYs have no stderr)")
	} else if result.Hide.Stderr {
		b.WriteString(tail(result.Stderr, 10))
	} else {
		b.WriteString(" already printed")
	}
	return b.String()
}

// tail returns two leading newlines followed by the last count lines of
// stream, no trailing newline
func tail(stream string, count int) (s string) {
	var lines = strings.Split(strings.TrimSuffix(stream, "\n"), "\n")
	if len(lines) > count {
		lines = lines[len(lines)-count:]
	}
	return "\n\n" + strings.Join(lines, "\n")
}

// UnexpectedExit indicates the command exited with a non-zero status and
// RunOpts.Warn was false
type UnexpectedExit struct{ Failure }

var _ error = &UnexpectedExit{}

// NewUnexpectedExit creates an [UnexpectedExit] failure for result
func NewUnexpectedExit(result *Result) (err error) {
	return &UnexpectedExit{Failure: Failure{Result: result, Reason: ReasonUnexpectedExit}}
}

// ExitCode returns the child’s exit code, 0 if the result never exited
func (u *UnexpectedExit) ExitCode() (exited int) {
	if u.Result != nil && u.Result.Exited != nil {
		exited = *u.Result.Exited
	}
	return
}

// Error implements the error interface with the documented message shape:
//
//	Encountered a bad command exit code!
//	Command: '<cmd>'
//	Exit code: <n>
//	Stdout: …
//	Stderr: …
func (u *UnexpectedExit) Error() (s string) {
	return fmt.Sprintf(
		"Encountered a bad command exit code!\nCommand: '%s'\nExit code: %d\n%s",
		u.command(), u.ExitCode(), streamSections(u.Result),
	)
}

// GoString is the repr-style representation: “<UnexpectedExit: cmd='<cmd>' exited=<n>>”
func (u *UnexpectedExit) GoString() (s string) {
	return fmt.Sprintf("<UnexpectedExit: cmd='%s' exited=%d>", u.command(), u.ExitCode())
}

// CommandTimedOut indicates the timer armed by RunOpts.Timeout fired
// before the child process exited
type CommandTimedOut struct {
	Failure
	// the configured timeout, in seconds
	Timeout float64
}

var _ error = &CommandTimedOut{}

// NewCommandTimedOut creates a [CommandTimedOut] failure
func NewCommandTimedOut(result *Result, timeoutSeconds float64) (err error) {
	return &CommandTimedOut{
		Failure: Failure{Result: result, Reason: ReasonCommandTimedOut},
		Timeout: timeoutSeconds,
	}
}

// Error implements the error interface with the documented message shape
func (c *CommandTimedOut) Error() (s string) {
	return fmt.Sprintf(
		"Command did not complete within %v seconds!\nCommand: '%s'\n%s",
		c.Timeout, c.command(), streamSections(c.Result),
	)
}

// GoString is the repr-style representation
func (c *CommandTimedOut) GoString() (s string) {
	return fmt.Sprintf("<CommandTimedOut: cmd='%s' timeout=%v>", c.command(), c.Timeout)
}

// WatcherError is returned by a [StreamWatcher]’s Submit method to
// signal a failed expectation. The Runner wraps it into a [Failure]
// with Reason [ReasonWatcherError] and Result.Exited left nil
type WatcherError struct {
	// the watcher-provided message
	Message string
	// optional underlying cause
	Cause error
}

var _ error = &WatcherError{}

// NewWatcherError creates a [WatcherError]
func NewWatcherError(message string, cause error) (err error) {
	return &WatcherError{Message: message, Cause: cause}
}

func (w *WatcherError) Error() (s string) {
	if w.Cause != nil {
		return fmt.Sprintf("%s: %s", w.Message, w.Cause.Error())
	}
	return w.Message
}

func (w *WatcherError) Unwrap() (err error) { return w.Cause }

// ThreadExceptionItem captures a single worker-body panic or returned error
type ThreadExceptionItem struct {
	// the label the item is reported under; the Runner reports all
	// captured worker failures under "worker", with each failing
	// worker’s own label ("stdout", "stderr" or "stdin") prefixed to
	// its message inside Err
	Label string
	// the recovered error, stack-carrying via perrors
	Err error
}

// ThreadException aggregates the exceptions captured from the Runner’s
// supervised workers
type ThreadException struct {
	Exceptions []ThreadExceptionItem
}

var _ error = &ThreadException{}

// NewThreadException creates a [ThreadException] from worker items
func NewThreadException(items []ThreadExceptionItem) (err error) {
	return &ThreadException{Exceptions: items}
}

func (t *ThreadException) Error() (s string) {
	var parts = make([]string, len(t.Exceptions))
	for i, item := range t.Exceptions {
		parts[i] = fmt.Sprintf("%s: %s", item.Label, perrors.Short(item.Err))
	}
	return fmt.Sprintf("worker thread exceptions: %s", strings.Join(parts, "; "))
}

// SubprocessPipeError is raised when closing the child’s stdin while the
// run uses a pty, where stdin is never explicitly closed
type SubprocessPipeError struct{ Cause error }

var _ error = &SubprocessPipeError{}

func (s *SubprocessPipeError) Error() (msg string) {
	if s.Cause != nil {
		return s.Cause.Error()
	}
	return ErrSubprocessPipe.Error()
}

func (s *SubprocessPipeError) Unwrap() (err error) { return s.Cause }
