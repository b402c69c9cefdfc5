/*
© 2022–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

// Set provides a collection of unique elements of a particular type T that are printable,
// type convertible and have verifiable validity.
// Element represents an element of a set that has a unique value and is printable.
// SetElements provides an iterator for all elements of a set intended for SetFactory.NewSet.
package sets
