// Package errors defines the single error taxonomy used across the
// compiler: every user-facing failure, from a lexer syntax error to a
// schema validation failure, is surfaced as a *QueryError carrying a
// source Location and a Rule tag identifying which check raised it.
package errors

import (
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// Location is a 1-based line/column position into the original source
// text, matching the `locations` field of the GraphQL-over-HTTP error
// format.
type Location struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Before reports whether a comes strictly before b in source order.
func (a Location) Before(b Location) bool {
	return a.Line < b.Line || (a.Line == b.Line && a.Column < b.Column)
}

// QueryError is the taxonomy of spec.md §7 collapsed into one wire type.
// Rule identifies which named check raised the error (e.g. "UnknownType",
// "InterfaceMismatch", "Overflow", "InvalidKind", "DuplicateKey") so a
// caller can branch on failure class without string-matching Message.
type QueryError struct {
	Message       string                 `json:"message"`
	Locations     []Location             `json:"locations,omitempty"`
	Path          []interface{}          `json:"path,omitempty"`
	Rule          string                 `json:"-"`
	ResolverError error                  `json:"-"`
	Extensions    map[string]interface{} `json:"extensions,omitempty"`
}

// Errorf builds a QueryError with no location, for contexts where the
// caller attaches position information afterward.
func Errorf(format string, a ...interface{}) *QueryError {
	return &QueryError{
		Message: fmt.Sprintf(format, a...),
	}
}

// WithRule is a fluent helper for tagging a freshly built QueryError with
// the named check that produced it.
func (err *QueryError) WithRule(rule string) *QueryError {
	err.Rule = rule
	return err
}

// At attaches a single source location to the error.
func (err *QueryError) At(loc Location) *QueryError {
	err.Locations = []Location{loc}
	return err
}

func (err *QueryError) Error() string {
	if err == nil {
		return "<nil>"
	}
	str := fmt.Sprintf("graphql: %s", err.Message)
	for _, loc := range err.Locations {
		str += fmt.Sprintf(" (line %d, column %d)", loc.Line, loc.Column)
	}
	return str
}

var _ error = (*QueryError)(nil)

// Wrap attaches a cause to an internal (non-user-facing) failure, such as
// a tokenizer error from the JSON decoder in package value. It keeps the
// underlying cause inspectable via
// pkgerrors.Cause, matching how the teacher repo carries github.com/pkg/errors
// as a dependency for this class of internal error.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return pkgerrors.Wrap(err, message)
}

// Cause unwraps an error built with Wrap back to its root cause.
func Cause(err error) error {
	return pkgerrors.Cause(err)
}
