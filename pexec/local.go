/*
© 2024–present Harald Rudell <haraldrudell@proton.me> (https://haraldrudell.github.io/haraldrudell/)
All rights reserved
*/

package pexec

// Run executes command against the host’s real [SpawnBackend] and
// [Terminal]: pipe-backed by default, pty-backed when opts.Pty is set
// and the host has a usable controlling TTY, falling back to pipe mode
// per opts.Fallback otherwise
//   - the concrete counterpart to [RunWith]: production callers use
//     Run, tests inject fakes directly via RunWith
func Run(command string, opts RunOpts, config *Config) (result *Result, promise *Promise, err error) {
	var term = NewTerminal()
	var r resolvedOpts
	if r, err = opts.resolve(config); err != nil {
		return
	}
	var backend = selectBackend(r, term)
	return RunWith(command, opts, config, backend, term)
}
