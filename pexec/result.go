/*
© 2024–present Harald Rudell <haraldrudell@proton.me> (https://haraldrudell.github.io/haraldrudell/)
All rights reserved
*/

package pexec

import "fmt"

// Result is the value object describing a completed or aborted command run
//   - Exited is nil if the command was aborted before the child process
//     produced an exit status, eg. on [WatcherError]
//   - Stdout and Stderr are the complete decoded capture regardless of
//     [RunOpts] Hide
//   - if Pty is true, Stderr is always empty: a pty merges the streams
type Result struct {
	// the command string as provided to [Run]
	Command string
	// the shell used to invoke Command, eg. “bash” or “cmd.exe”
	Shell string
	// the environment the child process received
	Env map[string]string
	// complete decoded standard-output capture
	Stdout string
	// complete decoded standard-error capture, always empty when Pty is true
	Stderr string
	// the child’s exit status, nil if the run did not reach a exit status,
	// eg. it was aborted by a watcher error
	//   - 0: success
	//   - negative: the child was terminated by signal -Exited
	//   - positive: the child’s own exit code
	Exited *int
	// true if the command executed inside a pseudo-terminal
	Pty bool
	// which of stdout, stderr were marked hidden for the run
	Hide HideSet
	// the codec used to decode the child’s output bytes
	Encoding string
}

// IsOk returns true if the command exited with status code 0
func (r *Result) IsOk() (ok bool) { return r.Exited != nil && *r.Exited == 0 }

// IsFailed is the complement of [Result.IsOk]
func (r *Result) IsFailed() (failed bool) { return !r.IsOk() }

// String describes the result for logging and error messages
//   - “<cmd> exited with status 0”
//   - “<cmd> not fully executed due to watcher error”
func (r *Result) String() (s string) {
	if r.Exited == nil {
		return fmt.Sprintf("%q not fully executed due to watcher error", r.Command)
	}
	return fmt.Sprintf("%q exited with status %d", r.Command, *r.Exited)
}

// GoString implements the repr-style representation
//   - “<Result cmd='<cmd>' exited=<n>>”
func (r *Result) GoString() (s string) {
	var exited = -1
	if r.Exited != nil {
		exited = *r.Exited
	}
	return fmt.Sprintf("<Result cmd='%s' exited=%d>", r.Command, exited)
}
