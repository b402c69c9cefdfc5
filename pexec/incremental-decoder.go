/*
© 2024–present Harald Rudell <haraldrudell@proton.me> (https://haraldrudell.github.io/haraldrudell/)
All rights reserved
*/

package pexec

import (
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// IncrementalDecoder converts a stream of bytes arriving in arbitrary
// chunk sizes to text, buffering a trailing partial multi-byte sequence
// across calls so correctness never depends on chunk size
//   - a trailing partial sequence that is never completed decodes to
//     the Unicode replacement character U+FFFD
//   - not thread-safe: the Runner serializes decoding per stream by
//     construction, one IncrementalDecoder per stdout/stderr pump
type IncrementalDecoder struct {
	transformer transform.Transformer
	// pending holds bytes not yet consumed because they may be the
	// start of a multi-byte sequence split across chunks
	pending []byte
}

// NewIncrementalDecoder returns a decoder for the named codec
//   - encodingName: eg. "utf-8", "utf-16le"; empty or unrecognized
//     resolves to UTF-8
func NewIncrementalDecoder(encodingName string) (decoder *IncrementalDecoder) {
	return &IncrementalDecoder{transformer: resolveEncoding(encodingName).NewDecoder()}
}

// resolveEncoding maps a codec name to a [golang.org/x/text/encoding.Encoding]
func resolveEncoding(encodingName string) (enc encoding.Encoding) {
	switch encodingName {
	case "utf-16", "utf-16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	case "utf-16be":
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	default:
		return unicode.UTF8
	}
}

// Write decodes the next chunk of bytes, returning the text fragment
// decodable so far
//   - a multi-byte sequence split across two Write calls is held in
//     pending and completed on the following call
//   - final: true on the last chunk of the stream — any pending bytes
//     that can never complete are flushed as U+FFFD
func (d *IncrementalDecoder) Write(p []byte, final bool) (text string) {
	var input = append(d.pending, p...)
	d.pending = d.pending[:0]

	var dst = make([]byte, len(input)*4+utf8.UTFMax)
	var nDst, nSrc int
	var err error
	nDst, nSrc, err = d.transformer.Transform(dst, input, final)
	if err == transform.ErrShortSrc && !final {
		// input ends mid-sequence: hold the unconsumed tail for next call
		d.pending = append(d.pending, input[nSrc:]...)
	} else if final && nSrc < len(input) {
		// unresolvable trailing partial sequence: surface replacement char
		dst = append(dst[:nDst], "�"...)
		nDst = len(dst)
	}
	text = string(dst[:nDst])
	return
}

// Reset clears any pending partial sequence, eg. between runs
func (d *IncrementalDecoder) Reset() {
	d.transformer.Reset()
	d.pending = d.pending[:0]
}
