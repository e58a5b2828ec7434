package decode

import (
	"fmt"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const (
	surrHighStart = 0xD800
	surrLowStart  = 0xDC00
	surrEnd       = 0xE000
)

type utf16Decoder struct{}

// UTF16 returns a strict UTF-16 decoder. A leading byte-order mark selects
// the endianness and is stripped; without one the input is read as
// little-endian.
func UTF16() Decoder { return utf16Decoder{} }

func (utf16Decoder) Name() string { return "utf-16" }

func (d utf16Decoder) Decode(b []byte) (string, error) {
	bigEndian, bom := sniffBOM(b)
	if err := validateUTF16(b[bom:], bom, bigEndian); err != nil {
		return "", err
	}

	// Input is well-formed at this point, so the x/text decoder never
	// substitutes U+FFFD.
	dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	out, _, err := transform.Bytes(dec, b)
	if err != nil {
		return "", fmt.Errorf("%s: %w", d.Name(), err)
	}
	return string(out), nil
}

// sniffBOM reports the byte order selected by a leading BOM and the BOM length.
func sniffBOM(b []byte) (bigEndian bool, n int) {
	if len(b) >= 2 {
		switch {
		case b[0] == 0xFF && b[1] == 0xFE:
			return false, 2
		case b[0] == 0xFE && b[1] == 0xFF:
			return true, 2
		}
	}
	return false, 0
}

// validateUTF16 checks surrogate pairing and length. base is the offset of
// b within the original input, used for error positions.
func validateUTF16(b []byte, base int, bigEndian bool) error {
	unit := func(i int) uint16 {
		if bigEndian {
			return uint16(b[i])<<8 | uint16(b[i+1])
		}
		return uint16(b[i+1])<<8 | uint16(b[i])
	}
	fail := func(off int, reason string) error {
		return &DecodeError{Encoding: "utf-16", Offset: base + off, Reason: reason}
	}

	n := len(b) &^ 1
	for i := 0; i < n; i += 2 {
		u := unit(i)
		switch {
		case u >= surrHighStart && u < surrLowStart:
			if i+2 >= n {
				return fail(i, "unexpected end of data")
			}
			next := unit(i + 2)
			if next < surrLowStart || next >= surrEnd {
				return fail(i, "illegal UTF-16 surrogate")
			}
			i += 2
		case u >= surrLowStart && u < surrEnd:
			return fail(i, "illegal encoding")
		}
	}
	if n != len(b) {
		return fail(n, "truncated data")
	}
	return nil
}
