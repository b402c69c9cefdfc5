/*
© 2022–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package pterm

const (
	// foregorund color red
	Red = "\x1b[38:5:9m"
	// foregorund color green
	Green = "\x1b[38:5:2m"
	// foreground color reset to default
	ResetColors = "\x1b[39;49m"
)
