/*
© 2024–present Harald Rudell <haraldrudell@proton.me> (https://haraldrudell.github.io/haraldrudell/)
All rights reserved
*/

package pexec

import (
	"errors"
	"strings"
	"testing"
)

func TestUnexpectedExitExitCode(t *testing.T) {
	var exited = 7
	var result = &Result{Command: "false", Exited: &exited}
	var err = NewUnexpectedExit(result)
	var unexpected *UnexpectedExit
	if !errors.As(err, &unexpected) {
		t.Fatalf("expected *UnexpectedExit, got %T", err)
	}
	if unexpected.ExitCode() != 7 {
		t.Errorf("ExitCode() = %d, want 7", unexpected.ExitCode())
	}
	if !strings.Contains(unexpected.Error(), "Exit code: 7") {
		t.Errorf("Error() missing exit code: %s", unexpected.Error())
	}
}

func TestUnexpectedExitHiddenStreamsShowTail(t *testing.T) {
	var exited = 1
	var result = &Result{
		Command: "cmd",
		Stdout:  "l1\nl2\nl3",
		Hide:    HideStdout,
		Exited:  &exited,
	}
	var err = NewUnexpectedExit(result)
	if !strings.Contains(err.Error(), "l1\nl2\nl3") {
		t.Errorf("hidden stdout should be included in the message: %s", err.Error())
	}
}

func TestUnexpectedExitVisibleStreamSaysAlreadyPrinted(t *testing.T) {
	var exited = 1
	var result = &Result{Command: "cmd", Exited: &exited}
	var err = NewUnexpectedExit(result)
	if !strings.Contains(err.Error(), "already printed") {
		t.Errorf("visible stdout should say already printed: %s", err.Error())
	}
}

func TestCommandTimedOutError(t *testing.T) {
	var result = &Result{Command: "sleep 10"}
	var err = NewCommandTimedOut(result, 2.5)
	if !strings.Contains(err.Error(), "2.5 seconds") {
		t.Errorf("Error() missing timeout value: %s", err.Error())
	}
	var timedOut *CommandTimedOut
	if !errors.As(err, &timedOut) {
		t.Fatalf("expected *CommandTimedOut, got %T", err)
	}
}

func TestWatcherErrorUnwrap(t *testing.T) {
	var cause = errors.New("pattern not found")
	var err = NewWatcherError("stdout", cause)
	if !errors.Is(err, cause) {
		t.Error("WatcherError must unwrap to its cause")
	}
}

func TestFailureUnwrapReachesCause(t *testing.T) {
	var cause = errors.New("boom")
	var failure = &Failure{Reason: ReasonWatcherError, Cause: cause}
	if !errors.Is(failure, cause) {
		t.Error("Failure must unwrap to its Cause")
	}
}

func TestThreadExceptionAggregatesLabels(t *testing.T) {
	var err = NewThreadException([]ThreadExceptionItem{
		{Label: "stdout", Err: errors.New("panic: out")},
		{Label: "stdin", Err: errors.New("panic: in")},
	})
	if !strings.Contains(err.Error(), "stdout") || !strings.Contains(err.Error(), "stdin") {
		t.Errorf("Error() should mention both labels: %s", err.Error())
	}
}

func TestSubprocessPipeErrorFallsBackToSentinel(t *testing.T) {
	var err = &SubprocessPipeError{}
	if err.Error() != ErrSubprocessPipe.Error() {
		t.Errorf("Error() = %q, want %q", err.Error(), ErrSubprocessPipe.Error())
	}
}
