/*
© 2024–present Harald Rudell <haraldrudell@proton.me> (https://haraldrudell.github.io/haraldrudell/)
All rights reserved
*/

package pexec

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/haraldrudell/corerun/perrors"
	"github.com/haraldrudell/corerun/recover"
)

// worker runs one of the Runner’s three supervised pump bodies: stdout,
// stderr or stdin
//   - a worker body never lets a panic escape its own goroutine; instead the panic or
//     returned error is captured into a per-run [perrors.ParlError] and
//     the Runner’s join step drains it into a [ThreadException]
type worker struct {
	label string
	wg    *sync.WaitGroup
	// exceptions is the shared per-run sink every worker appends its
	// captured failure to, if any
	exceptions *perrors.ParlError
}

// newWorker registers one more worker with wg and returns its handle
func newWorker(label string, wg *sync.WaitGroup, exceptions *perrors.ParlError) (w *worker) {
	wg.Add(1)
	return &worker{label: label, wg: wg, exceptions: exceptions}
}

// run launches body in its own goroutine, capturing panics and the
// returned error into w.exceptions
func (w *worker) run(body func() (err error)) {
	go func() {
		defer w.wg.Done()
		var err error
		defer func() {
			if err != nil {
				w.exceptions.AddError(perrors.ErrorfPF("%s: %w", w.label, err))
			}
		}()
		defer recover.Recover(w.label+" worker", &err, nil)
		err = body()
	}()
}

// pumpOut runs the stdout or stderr pump body: read until backend EOF,
// decode, capture, write to the user sink and offer to each watcher
//   - a non-nil sink is by definition caller-overridden, so it always
//     receives output; hidden only narrows the error-message tail
//     ([Failure]'s streamSections), never a provided sink
func pumpOut(
	label string,
	read func(n int) (p []byte, eof bool, err error),
	decoder *IncrementalDecoder,
	capture stringsBuilder,
	sink writeFlusher,
	watchers []StreamWatcher,
	stdin *stdinWriter,
	watcherErr *error,
	readChunkSize int,
) (err error) {
	if readChunkSize <= 0 {
		readChunkSize = 4096
	}
	for {
		var p []byte
		var eof bool
		if p, eof, err = read(readChunkSize); err != nil {
			return
		}
		if len(p) > 0 {
			var text = decoder.Write(p, false)
			if text != "" {
				capture.WriteString(text)
				if sink != nil {
					_, _ = sink.Write([]byte(text))
					sink.Flush()
				}
				for _, watcher := range watchers {
					var responses []string
					var wErr error
					responses, wErr = watcher.Submit(capture.String())
					if wErr != nil {
						if *watcherErr == nil {
							*watcherErr = NewWatcherError(label, wErr)
						}
						continue
					}
					for _, response := range responses {
						if stdin != nil {
							_ = stdin.write([]byte(response))
						}
					}
				}
			}
		}
		if eof {
			if trailing := decoder.Write(nil, true); trailing != "" {
				capture.WriteString(trailing)
				if sink != nil {
					_, _ = sink.Write([]byte(trailing))
					sink.Flush()
				}
			}
			return
		}
		time.Sleep(DefaultInputSleep)
	}
}

// pumpIn runs the stdin pump body: mirror caller input into the
// child’s stdin one read at a time, optionally echoing to the user’s
// stdout sink
func pumpIn(
	in readerWithFd,
	stdin *stdinWriter,
	term Terminal,
	isPty bool,
	echo bool,
	echoSink writeFlusher,
) (err error) {
	for {
		var n int
		var useFionRead bool
		if f, ok := in.osFile(); ok && term != nil && term.IsTTY(f) && term.IsForeground(f) {
			if n, err = term.FionRead(f); err == nil && n > 0 {
				useFionRead = true
			} else {
				n = 1
			}
		} else {
			n = 1
		}

		var p = make([]byte, n)
		var nRead int
		nRead, err = in.Read(p)
		if err != nil {
			if errIsEBADF(err) {
				err = nil
				return
			}
			if errIsEOF(err) {
				err = nil
			}
			break
		}
		if nRead == 0 {
			break
		}
		p = p[:nRead]
		if err = stdin.write(p); err != nil {
			return
		}
		if echo && echoSink != nil {
			_, _ = echoSink.Write(p)
			echoSink.Flush()
		}
		_ = useFionRead
	}
	if !isPty {
		_ = stdin.close()
	}
	return
}

// stringsBuilder is the minimal surface pumpOut needs from a capture
// buffer; satisfied by *strings.Builder
type stringsBuilder interface {
	WriteString(s string) (n int, err error)
	String() (s string)
}

// writeFlusher is a user-visible sink: a writer that can be flushed
// after every write, per the ordering guarantee that each write is
// followed by a flush
type writeFlusher interface {
	Write(p []byte) (n int, err error)
	Flush()
}

// readerWithFd is satisfied by wrappers around the caller’s stdin
// stream that can also expose the underlying *os.File, when there is
// one, for the stdin-pump’s TTY/foreground check
type readerWithFd interface {
	Read(p []byte) (n int, err error)
	osFile() (f *os.File, ok bool)
}

// flushWriter adapts a plain io.Writer to [writeFlusher]: if w also
// implements Flush, it is called; otherwise Flush is a no-op, since
// the pumps write fully decoded text in one call rather than through a
// buffered writer
type flushWriter struct{ w io.Writer }

// toWriteFlusher wraps w, or returns nil if w is nil
func toWriteFlusher(w io.Writer) (wf writeFlusher) {
	if w == nil {
		return nil
	}
	return &flushWriter{w: w}
}

func (f *flushWriter) Write(p []byte) (n int, err error) { return f.w.Write(p) }

func (f *flushWriter) Flush() {
	if flusher, ok := f.w.(interface{ Flush() }); ok {
		flusher.Flush()
	}
}
