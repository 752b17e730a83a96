package strlit

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedEscape indicates a backslash followed by bytes that do not
	// form a recognized escape sequence, including truncated \x and \u forms.
	// It is the only failure the literal decoders produce.
	ErrMalformedEscape = errors.New("strlit: malformed escape sequence")
	// ErrMissingQuote indicates that DecodeQuoted was not given an opening quote.
	ErrMissingQuote = errors.New("strlit: string literal does not start with '\"'")
	// ErrUnterminatedLiteral indicates that input ended before a closing quote.
	ErrUnterminatedLiteral = errors.New("strlit: unterminated string literal")
)

// IssueSeverity represents the severity level of an issue found while
// scanning a document for string literals.
type IssueSeverity int

const (
	// SeverityCritical indicates an issue that loses literal content.
	SeverityCritical IssueSeverity = iota
	// SeverityMajor indicates a significant issue that may affect the result
	// but leaves the decoded content usable.
	SeverityMajor
	// SeverityMinor indicates an issue that can be safely ignored in most cases.
	SeverityMinor
)

// String returns a human-readable representation of the issue severity.
func (s IssueSeverity) String() string {
	switch s {
	case SeverityCritical:
		return "CRITICAL"
	case SeverityMajor:
		return "MAJOR"
	case SeverityMinor:
		return "MINOR"
	default:
		return "UNKNOWN"
	}
}

// DecodeError represents an error encountered while scanning a document for
// string literals. Errors are accumulated during the scan and can be
// inspected after it completes.
type DecodeError struct {
	Offset   int           // Byte offset into the scanned document
	Literal  int           // Zero-based index of the literal being decoded
	Issue    string        // Human-readable description of the issue
	Severity IssueSeverity // Severity level of the error
}

// Error implements the error interface.
func (e DecodeError) Error() string {
	return fmt.Sprintf("[%s] literal #%d at offset %d: %s", e.Severity, e.Literal, e.Offset, e.Issue)
}

// DecodeWarning represents a non-critical issue encountered while scanning.
// Warnings indicate potential problems but do not invalidate decoded content.
type DecodeWarning struct {
	Offset  int    // Byte offset into the scanned document
	Literal int    // Zero-based index of the literal concerned
	Issue   string // Human-readable description of the warning
}

// String returns a human-readable representation of the warning.
func (w DecodeWarning) String() string {
	return fmt.Sprintf("[WARNING] literal #%d at offset %d: %s", w.Literal, w.Offset, w.Issue)
}

// issueCollector accumulates errors and warnings during a document scan.
// This is an internal helper used by the scanner to collect issues as they
// are discovered.
type issueCollector struct {
	errors   []DecodeError
	warnings []DecodeWarning
}

// addError records a scanning error.
func (ic *issueCollector) addError(offset, literal int, issue string, severity IssueSeverity) {
	ic.errors = append(ic.errors, DecodeError{
		Offset:   offset,
		Literal:  literal,
		Issue:    issue,
		Severity: severity,
	})
}

// addWarning records a scanning warning.
func (ic *issueCollector) addWarning(offset, literal int, issue string) {
	ic.warnings = append(ic.warnings, DecodeWarning{
		Offset:  offset,
		Literal: literal,
		Issue:   issue,
	})
}

// hasErrors returns true if any errors have been recorded.
func (ic *issueCollector) hasErrors() bool {
	return len(ic.errors) > 0
}
