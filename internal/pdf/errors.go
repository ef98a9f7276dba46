package pdf

import "fmt"

// FailureKind categorizes document-level failures so callers can distinguish
// problems with the input file from problems parsing its contents
type FailureKind int

const (
	// FailureInput covers missing, empty, oversized or unreadable files
	FailureInput FailureKind = iota
	// FailureParse covers files that open but cannot be decoded as PDF
	FailureParse
)

// String returns a human-readable name for the failure kind
func (k FailureKind) String() string {
	switch k {
	case FailureInput:
		return "input"
	case FailureParse:
		return "parse"
	default:
		return "unknown"
	}
}

// DocumentError is a document-level load failure with its category and the
// offending file path attached
type DocumentError struct {
	Kind FailureKind
	Path string
	Err  error
}

// Error implements the error interface
func (e *DocumentError) Error() string {
	return fmt.Sprintf("%s error for %s: %v", e.Kind, e.Path, e.Err)
}

// Unwrap exposes the underlying cause for errors.Is / errors.As
func (e *DocumentError) Unwrap() error {
	return e.Err
}

// inputError wraps a file-level problem
func inputError(path string, format string, args ...interface{}) error {
	return &DocumentError{
		Kind: FailureInput,
		Path: path,
		Err:  fmt.Errorf(format, args...),
	}
}

// parseError wraps a decode-level problem
func parseError(path string, format string, args ...interface{}) error {
	return &DocumentError{
		Kind: FailureParse,
		Path: path,
		Err:  fmt.Errorf(format, args...),
	}
}

// IsInputError reports whether err is a document error caused by the input
// file itself rather than by its contents
func IsInputError(err error) bool {
	docErr, ok := err.(*DocumentError)
	return ok && docErr.Kind == FailureInput
}
