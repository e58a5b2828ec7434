package decode

import (
	"fmt"
	"sort"
	"strings"
)

var registry = map[string]Decoder{}

func init() {
	Register("utf-16", UTF16())
	Register("utf16", UTF16())
	Register("utf-8", UTF8())
	Register("utf8", UTF8())
}

// Register adds a decoder under the given encoding name.
// Names are case-insensitive.
func Register(name string, d Decoder) {
	registry[strings.ToLower(name)] = d
}

// Get returns the decoder registered for the given encoding name.
func Get(name string) (Decoder, error) {
	d, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	return d, nil
}

// Names returns all registered encoding names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
