/*
© 2023–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

// Package pio provides a context-cancelable stream copier, a closable buffer, line-based reader
// and other io functions.
package pio
