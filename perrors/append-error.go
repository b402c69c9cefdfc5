/*
© 2022–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package perrors

import "github.com/haraldrudell/corerun/perrors/errorglue"

// AppendError associates err2 with err, allowing a single error value to
// carry multiple error instances
//   - if err is nil, err2 is returned, possibly nil
//   - if err2 is nil, err is returned unaltered
//   - the returned error’s chain is err first, err2 is retrievable via [ErrorList]
//     or the [errorglue.RelatedError] interface
func AppendError(err, err2 error) (e error) {
	if err2 == nil {
		e = err
		return
	} else if err == nil {
		e = err2
		return
	}
	e = errorglue.NewRelatedError(err, err2)
	return
}
