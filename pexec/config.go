/*
© 2024–present Harald Rudell <haraldrudell@proton.me> (https://haraldrudell.github.io/haraldrudell/)
All rights reserved
*/

package pexec

import "github.com/haraldrudell/corerun/pflags"

// Config is the hierarchical settings object a caller resolves RunOpts
// against. It models the `run.*` and `timeouts.command` configuration
// namespace as a plain struct, declarative like [pflags.OptionData],
// without pulling in flag-registration: building a [flag.FlagSet] from
// these fields is the CLI front-end’s responsibility, out of scope here
type Config struct {
	// run.warn: whether a non-zero exit is returned as Result rather than
	// raised as UnexpectedExit
	Warn bool
	// run.hide: "none", "both", "out", "err"
	Hide string
	// run.pty: whether to execute inside a pseudo-terminal
	Pty bool
	// run.fallback: downgrade pty to pipe when no controlling TTY exists
	Fallback bool
	// run.echo: print the command line before running it
	Echo bool
	// run.echo_format: printf-style format for the echoed command line,
	// substituting {command}
	EchoFormat string
	// run.echo_stdin: tri-state override of the default
	// should_echo_stdin heuristic; nil means auto
	EchoStdin *bool
	// run.encoding: codec name, empty means resolve from locale
	Encoding string
	// run.env: additional or replacement environment variables
	Env map[string]string
	// run.replace_env: Env replaces rather than extends the inherited
	// environment
	ReplaceEnv bool
	// run.shell: the shell used to execute the command string
	Shell string
	// timeouts.command: command timeout in seconds, 0 means no timeout
	TimeoutCommand float64
}

// DefaultConfig returns the built-in defaults applied when neither an
// explicit RunOpts field nor a Config value provides one
func DefaultConfig() (config Config) {
	return Config{
		Hide:       "none",
		Fallback:   true,
		EchoFormat: DefaultEchoFormat,
		Shell:      DefaultShell,
	}
}

// Entries exposes Config fields in the teacher’s declarative
// [pflags.OptionData] shape, for a CLI front end to register as flags
func (c *Config) Entries() (entries []pflags.OptionData) {
	return []pflags.OptionData{
		{P: &c.Warn, Name: "warn", Value: false, Usage: "return non-zero exit as a result instead of failing"},
		{P: &c.Hide, Name: "hide", Value: "none", Usage: "suppress user-visible output: none, both, out, err"},
		{P: &c.Pty, Name: "pty", Value: false, Usage: "execute inside a pseudo-terminal"},
		{P: &c.Fallback, Name: "fallback", Value: true, Usage: "fall back to pipe mode when no controlling TTY exists"},
		{P: &c.Echo, Name: "echo", Value: false, Usage: "print the command line before running it"},
		{P: &c.EchoFormat, Name: "echo-format", Value: DefaultEchoFormat, Usage: "format string for the echoed command line"},
		{P: &c.Encoding, Name: "encoding", Value: "", Usage: "output codec name"},
		{P: &c.ReplaceEnv, Name: "replace-env", Value: false, Usage: "replace rather than extend the inherited environment"},
		{P: &c.Shell, Name: "shell", Value: DefaultShell, Usage: "shell used to execute the command string"},
		{P: &c.TimeoutCommand, Name: "timeout", Value: float64(0), Usage: "command timeout in seconds, 0 disables"},
	}
}
