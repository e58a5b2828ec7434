package printer

import (
	"log/slog"

	"github.com/crimson-sun/readlog/internal/decode"
	"github.com/crimson-sun/readlog/internal/output"
)

// DefaultPath is the file read when no path is configured.
const DefaultPath = "error.log"

// Option configures a Printer.
type Option func(*Printer)

// WithPath sets the file to read. Relative paths resolve against the
// working directory. Default: error.log.
func WithPath(path string) Option {
	return func(p *Printer) {
		p.path = path
	}
}

// WithEncodings sets the primary decoder and the decoder retried when the
// primary reports a decoding failure. Default: utf-16, then utf-8.
func WithEncodings(primary, fallback decode.Decoder) Option {
	return func(p *Printer) {
		p.primary = primary
		p.fallback = fallback
	}
}

// WithOutput sets where documents and diagnostics are printed.
func WithOutput(out output.Output) Option {
	return func(p *Printer) {
		p.out = out
	}
}

// WithLogger sets the logger. Default: slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(p *Printer) {
		p.logger = l
	}
}

// WithTranslateNewlines enables "\r\n" and "\r" to "\n" translation.
func WithTranslateNewlines(on bool) Option {
	return func(p *Printer) {
		p.readOpts.TranslateNewlines = on
	}
}
