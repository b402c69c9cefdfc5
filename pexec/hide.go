/*
© 2024–present Harald Rudell <haraldrudell@proton.me> (https://haraldrudell.github.io/haraldrudell/)
All rights reserved
*/

package pexec

import "fmt"

// HideSet is which output streams a run marks as hidden
//   - captured Stdout/Stderr on [Result] are unaffected by HideSet
//   - a non-nil RunOpts.OutStream/ErrStream receives all output
//     regardless of HideSet; hidden stdout suppresses the command echo,
//     and a hidden stream’s tail is shown in [UnexpectedExit] and
//     [CommandTimedOut] messages instead of “already printed”
type HideSet struct {
	Stdout bool
	Stderr bool
}

// HideNone leaves both streams visible
var HideNone HideSet

// HideBoth suppresses both streams
var HideBoth = HideSet{Stdout: true, Stderr: true}

// HideStdout suppresses only standard output
var HideStdout = HideSet{Stdout: true}

// HideStderr suppresses only standard error
var HideStderr = HideSet{Stderr: true}

// ParseHide normalizes the many accepted representations of the `hide`
// run option to a [HideSet]
//   - accepted: true, false, nil, "both", "out", "stdout", "err", "stderr"
//   - any other value is an invalid-argument error whose message contains value
func ParseHide(value any) (hide HideSet, err error) {
	switch v := value.(type) {
	case nil:
		return // HideNone return
	case bool:
		if v {
			hide = HideBoth
		}
		return
	case HideSet:
		hide = v
		return
	case string:
		switch v {
		case "", "none":
			return // HideNone return
		case "both":
			hide = HideBoth
			return
		case "out", "stdout":
			hide = HideStdout
			return
		case "err", "stderr":
			hide = HideStderr
			return
		}
	}
	err = fmt.Errorf("%w: hide value %v", ErrInvalidArgument, value)
	return
}
