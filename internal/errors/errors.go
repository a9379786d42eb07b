// Package errors carries the evaluation core's single-line diagnostics.
//
// Every user-facing failure collapses to exactly one line of the form
// "Line N: message" — the core has no source text to show a caret
// against, since building the AST is someone else's job, so Diagnostic
// only ever renders that one line.
package errors

import "fmt"

// Diagnostic is a single evaluation failure, tagged with the line
// number of the node that raised it.
type Diagnostic struct {
	Line    int
	Message string
}

// New builds a Diagnostic from a line number and a message, without the
// "Line N: " prefix (added by Error()).
func New(line int, format string, args ...any) *Diagnostic {
	return &Diagnostic{Line: line, Message: fmt.Sprintf(format, args...)}
}

// Error implements the error interface, rendering exactly the wire
// contract's single diagnostic line.
func (d *Diagnostic) Error() string {
	return fmt.Sprintf("Line %d: %s", d.Line, d.Message)
}

// AsDiagnostic unwraps err into a *Diagnostic if it is one (directly or
// via errors.As-style unwrapping is unnecessary here since the core
// never wraps a Diagnostic in another error type — every internal
// failure path constructs one directly).
func AsDiagnostic(err error) (*Diagnostic, bool) {
	d, ok := err.(*Diagnostic)
	return d, ok
}
