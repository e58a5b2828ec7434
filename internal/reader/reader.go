// Package reader loads a whole file and decodes it as text.
package reader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/crimson-sun/readlog/internal/decode"
	"github.com/crimson-sun/readlog/internal/model"
)

// Options controls post-decode processing.
type Options struct {
	// TranslateNewlines rewrites "\r\n" and lone "\r" to "\n".
	TranslateNewlines bool
}

// Read opens path, reads it to the end and decodes it with dec.
// The file is closed on every return path. I/O errors wrap the
// underlying *os.PathError; decoding failures wrap *decode.DecodeError.
func Read(path string, dec decode.Decoder, opts Options) (model.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.Document{}, fmt.Errorf("reader: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return model.Document{}, fmt.Errorf("reader: stat %s: %w", path, err)
	}
	if info.IsDir() {
		return model.Document{}, fmt.Errorf("reader: %w", &os.PathError{Op: "read", Path: path, Err: errIsDir})
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return model.Document{}, fmt.Errorf("reader: read %s: %w", path, err)
	}

	text, err := dec.Decode(data)
	if err != nil {
		return model.Document{}, fmt.Errorf("reader: %s: %w", path, err)
	}
	if opts.TranslateNewlines {
		text = translateNewlines(text)
	}

	return model.Document{
		Path:     path,
		Encoding: dec.Name(),
		Size:     int64(len(data)),
		Text:     text,
	}, nil
}

var errIsDir = errors.New("is a directory")

var newlineReplacer = strings.NewReplacer("\r\n", "\n", "\r", "\n")

func translateNewlines(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}
	return newlineReplacer.Replace(s)
}
