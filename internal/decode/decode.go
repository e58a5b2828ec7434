// Package decode turns raw file bytes into text under a named encoding.
//
// Decoders are strict: bytes that do not form a legal representation
// under the encoding produce a *DecodeError instead of replacement
// characters, so callers can tell a wrong guess of encoding apart from
// an I/O failure.
package decode

import (
	"errors"
	"fmt"
)

// ErrUnknownEncoding is returned by Get for names with no registered decoder.
var ErrUnknownEncoding = errors.New("unknown encoding")

// Decoder converts a complete byte slice to text.
type Decoder interface {
	Name() string
	Decode(b []byte) (string, error)
}

// DecodeError reports bytes that are not valid under an encoding.
type DecodeError struct {
	Encoding string
	Offset   int    // byte offset of the first invalid unit
	Reason   string // e.g. "truncated data", "illegal encoding"
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: can't decode byte at offset %d: %s", e.Encoding, e.Offset, e.Reason)
}

// IsDecodeError reports whether err, or anything it wraps, is a *DecodeError.
func IsDecodeError(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}
