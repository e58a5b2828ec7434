// Package printer reads a log file and prints it, retrying with a second
// encoding when the first cannot decode the file.
package printer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/crimson-sun/readlog/internal/decode"
	"github.com/crimson-sun/readlog/internal/output"
	"github.com/crimson-sun/readlog/internal/output/stdout"
	"github.com/crimson-sun/readlog/internal/reader"
)

// FallbackError is returned by Run when the retry with the fallback
// encoding fails. It is not recovered.
type FallbackError struct {
	Path     string
	Encoding string
	Err      error
}

func (e *FallbackError) Error() string {
	return fmt.Sprintf("reading %s as %s: %v", e.Path, e.Encoding, e.Err)
}

func (e *FallbackError) Unwrap() error { return e.Err }

// Printer prints one log file.
type Printer struct {
	path     string
	primary  decode.Decoder
	fallback decode.Decoder
	out      output.Output
	logger   *slog.Logger
	readOpts reader.Options
}

// New creates a Printer. Without options it reads error.log as UTF-16,
// falls back to UTF-8 and prints text to stdout.
func New(opts ...Option) *Printer {
	p := &Printer{
		path:     DefaultPath,
		primary:  decode.UTF16(),
		fallback: decode.UTF8(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.out == nil {
		p.out = stdout.New(output.Text)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	return p
}

// Run reads the file with the primary encoding and prints it.
//
// A decoding failure triggers one retry with the fallback encoding. Any
// other failure on the first attempt is printed as a diagnostic and Run
// returns nil. A failure of the retry is returned as *FallbackError.
// Errors writing the output are returned as-is.
func (p *Printer) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.logger.Debug("reading log file", "path", p.path, "encoding", p.primary.Name())
	doc, err := reader.Read(p.path, p.primary, p.readOpts)
	if err == nil {
		return p.out.Write(ctx, doc)
	}

	// The decoding check must come before the generic branch, or the
	// fallback is unreachable.
	if !decode.IsDecodeError(err) {
		p.logger.Debug("read failed", "path", p.path, "err", err)
		return p.out.Diagnostic(ctx, p.path, describe(err))
	}

	p.logger.Warn("decoding failed, retrying",
		"path", p.path,
		"encoding", p.primary.Name(),
		"fallback", p.fallback.Name(),
		"err", err,
	)
	if err := ctx.Err(); err != nil {
		return err
	}

	doc, err = reader.Read(p.path, p.fallback, p.readOpts)
	if err != nil {
		return &FallbackError{Path: p.path, Encoding: p.fallback.Name(), Err: err}
	}
	doc.Fallback = true
	return p.out.Write(ctx, doc)
}

// describe strips package prefixes so the diagnostic reads like the OS
// error, e.g. "open error.log: no such file or directory".
func describe(err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe
	}
	return err
}
