package decode

import (
	"errors"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

type utf8Decoder struct{}

// UTF8 returns a strict UTF-8 decoder. A leading UTF-8 BOM is kept as text.
func UTF8() Decoder { return utf8Decoder{} }

func (utf8Decoder) Name() string { return "utf-8" }

func (utf8Decoder) Decode(b []byte) (string, error) {
	out, n, err := transform.Bytes(encoding.UTF8Validator, b)
	if err == nil {
		return string(out), nil
	}
	if !errors.Is(err, encoding.ErrInvalidUTF8) {
		return "", err
	}
	return "", &DecodeError{Encoding: "utf-8", Offset: n, Reason: utf8Reason(b[n:])}
}

// utf8Reason classifies the invalid sequence at the start of b.
func utf8Reason(b []byte) string {
	switch {
	case len(b) == 0:
		return "invalid data"
	case b[0] < 0xC2 || b[0] > 0xF4:
		return "invalid start byte"
	case !utf8.FullRune(b):
		return "unexpected end of data"
	default:
		return "invalid continuation byte"
	}
}
