package output

import (
	"context"

	"github.com/crimson-sun/readlog/internal/model"
)

// DiagnosticPrefix starts every diagnostic line in text format.
const DiagnosticPrefix = "Error reading file: "

// Output defines the interface for where decoded documents are printed.
type Output interface {
	Write(ctx context.Context, doc model.Document) error
	Diagnostic(ctx context.Context, path string, err error) error
	Close() error
}
