// Package errors defines the error taxonomy shared by the votable builders,
// serializer, and query facility.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// ErrorCode classifies builder and query failures.
type ErrorCode string

const (
	// ErrInvalidArgument indicates a contract violation by the caller:
	// a missing mandatory attribute, an unknown datatype, an unsupported
	// serialization mode, or a column inconsistent with its field.
	ErrInvalidArgument ErrorCode = "vot-invalid-argument"
	// ErrNotFound indicates an XPath query matched no nodes.
	ErrNotFound ErrorCode = "vot-not-found"
	// ErrInternal indicates a failure inside the XML engine: serialization
	// producing no output, namespace reconciliation failure, or XPath
	// construction or evaluation failure.
	ErrInternal ErrorCode = "vot-internal-error"
)

// Build describes a failed VOTable operation with its classification, the
// operation that failed, and, when applicable, the offending attribute.
type Build struct {
	Code    ErrorCode
	Op      string
	Attr    string
	Message string
}

// Error formats the failure for display, including code, operation, and the
// offending attribute when one is known.
func (e *Build) Error() string {
	if e == nil {
		return "votable <nil>"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s] %s: %s", e.Code, e.Op, e.Message))
	if e.Attr != "" {
		b.WriteString(fmt.Sprintf(" (attribute %q)", e.Attr))
	}
	return b.String()
}

// InvalidArgument returns a caller-contract violation for op. attr names
// the offending attribute and may be empty.
func InvalidArgument(op, attr, message string) *Build {
	return &Build{Code: ErrInvalidArgument, Op: op, Attr: attr, Message: message}
}

// NotFound returns a no-match query failure for op.
func NotFound(op, message string) *Build {
	return &Build{Code: ErrNotFound, Op: op, Message: message}
}

// Internal returns an XML-engine failure for op.
func Internal(op, message string) *Build {
	return &Build{Code: ErrInternal, Op: op, Message: message}
}

// CodeOf returns the ErrorCode carried by err, or the empty code when err
// does not wrap a Build error.
func CodeOf(err error) ErrorCode {
	var b *Build
	if stderrors.As(err, &b) {
		return b.Code
	}
	return ""
}
