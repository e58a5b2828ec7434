package stdout

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/crimson-sun/readlog/internal/model"
	"github.com/crimson-sun/readlog/internal/output"
)

// Output prints documents to stdout, either as raw text or as JSON lines.
type Output struct {
	w      io.Writer
	enc    *json.Encoder
	format output.Format
}

// New creates a stdout Output in the given format.
func New(format output.Format) *Output {
	return NewWriter(os.Stdout, format)
}

// NewWriter creates an Output that writes to w instead of stdout.
func NewWriter(w io.Writer, format output.Format) *Output {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &Output{w: w, enc: enc, format: format}
}

type diagnostic struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

// Write prints the document text followed by a newline.
func (o *Output) Write(_ context.Context, doc model.Document) error {
	var err error
	if o.format == output.JSON {
		err = o.enc.Encode(doc)
	} else {
		_, err = fmt.Fprintln(o.w, doc.Text)
	}
	if err != nil {
		return fmt.Errorf("stdout output: %w", err)
	}
	return nil
}

// Diagnostic prints a read failure as "Error reading file: <err>".
func (o *Output) Diagnostic(_ context.Context, path string, cause error) error {
	var err error
	if o.format == output.JSON {
		err = o.enc.Encode(diagnostic{Path: path, Error: cause.Error()})
	} else {
		_, err = fmt.Fprintln(o.w, output.DiagnosticPrefix+cause.Error())
	}
	if err != nil {
		return fmt.Errorf("stdout output: %w", err)
	}
	return nil
}

func (o *Output) Close() error {
	return nil
}
