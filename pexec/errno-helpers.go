/*
© 2024–present Harald Rudell <haraldrudell@proton.me> (https://haraldrudell.github.io/haraldrudell/)
All rights reserved
*/

package pexec

import (
	"errors"
	"io"
	"syscall"

	"github.com/haraldrudell/corerun/punix"
	"golang.org/x/sys/unix"
)

// errIsEOF reports whether err’s chain contains io.EOF
func errIsEOF(err error) (isEOF bool) { return errors.Is(err, io.EOF) }

// errIsErrno reports whether err’s chain contains the given errno value
//   - checks both [golang.org/x/sys/unix.Errno] (eg. from ioctl calls)
//     and the standard library’s [syscall.Errno] (eg. from os.File
//     reads/writes), since the two identical-valued but distinctly
//     typed errno representations both appear in this codebase’s error
//     chains depending on which package produced them
func errIsErrno(err error, errno unix.Errno) (is bool) {
	if punix.Errno(err) == errno {
		return true
	}
	var sysErrno syscall.Errno
	return errors.As(err, &sysErrno) && unix.Errno(sysErrno) == errno
}

// errIsEBADF reports whether err’s chain contains unix.EBADF, the
// detached-session case silently swallowed on stdin reads
func errIsEBADF(err error) (isEBADF bool) { return errIsErrno(err, unix.EBADF) }
