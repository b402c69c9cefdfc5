/*
© 2022–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

// Package pterm provides an ANSI-based status terminal and password-input.
//
// separate module because of import of golang.org/x/term
package pterm
