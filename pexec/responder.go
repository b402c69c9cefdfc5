/*
© 2024–present Harald Rudell <haraldrudell@proton.me> (https://haraldrudell.github.io/haraldrudell/)
All rights reserved
*/

package pexec

import (
	"regexp"
	"strings"
)

// Responder is the built-in [StreamWatcher]: it searches the stream
// text after its last matched position for pattern and emits response
// on every non-overlapping match, advancing past the match end so a
// given occurrence never fires twice
type Responder struct {
	pattern  string
	regex    *regexp.Regexp
	response string
	// index into the stream text: only text after index has been
	// searched so far
	index int
}

var _ StreamWatcher = &Responder{}

// NewResponder returns a [StreamWatcher] matching the literal substring
// pattern and emitting response on every occurrence
func NewResponder(pattern, response string) (responder *Responder) {
	return &Responder{pattern: pattern, response: response}
}

// NewRegexResponder returns a [StreamWatcher] matching pattern as a
// regular expression and emitting response on every occurrence
//   - panics if pattern does not compile, matching the teacher’s
//     convention of panicking on caller-provided bad regular expressions
//     at construction time rather than at first use
func NewRegexResponder(pattern, response string) (responder *Responder) {
	return &Responder{regex: regexp.MustCompile(pattern), response: response}
}

// Submit implements [StreamWatcher]
func (r *Responder) Submit(accumulatedText string) (responses []string, err error) {
	if r.index > len(accumulatedText) {
		// the stream is not supposed to shrink; defensive reset
		r.index = 0
	}
	var unseen = accumulatedText[r.index:]
	for {
		var start, end int
		if r.regex != nil {
			var loc = r.regex.FindStringIndex(unseen)
			if loc == nil {
				break
			}
			start, end = loc[0], loc[1]
		} else {
			var i = strings.Index(unseen, r.pattern)
			if i < 0 {
				break
			}
			start, end = i, i+len(r.pattern)
		}
		responses = append(responses, r.response)
		r.index += end
		unseen = unseen[end:]
		_ = start
	}
	return
}
