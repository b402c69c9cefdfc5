/*
© 2024–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package pruntimelib

import (
	"bytes"
	"strconv"
)

// ParseFileLine parses the source-location line of a stack-trace frame pair.
//   - fileLine: “␉/opt/sw/privates/parl/mains/executable.go:35␠+0x68”
//   - file: “/opt/sw/privates/parl/mains/executable.go”
//   - line: 35
func ParseFileLine(fileLine []byte) (file string, line int) {
	var s = bytes.TrimPrefix(fileLine, []byte{'\t'})

	// drop the trailing “ +0x68” byte-offset
	if index := bytes.IndexByte(s, '\x20'); index != -1 {
		s = s[:index]
	}

	var lastColon = bytes.LastIndexByte(s, ':')
	if lastColon == -1 {
		file = string(s)
		return
	}
	file = string(s[:lastColon])
	line, _ = strconv.Atoi(string(s[lastColon+1:]))

	return
}
