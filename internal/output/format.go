package output

import (
	"fmt"
	"strings"
)

// Format selects how documents are rendered.
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
)

// ParseFormat converts "text" or "json" (case-insensitive) to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case Text, JSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q", s)
	}
}
