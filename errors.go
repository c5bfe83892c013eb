package jsonrepair

import (
	"errors"
	"fmt"
)

// Sentinel errors for the boundary error taxonomy (SPEC_FULL.md §7, §10.1).
// Each is surfaced wrapped with positional or path context via fmt.Errorf so
// callers can still match with errors.Is.
var (
	// ErrUnrepairable indicates the post-repair strict parse of the engine's
	// own output failed. This signals a bug in the engine; it is surfaced
	// as-is rather than retried.
	ErrUnrepairable = errors.New("jsonrepair: repaired output failed strict validation")

	// ErrIO indicates a file or reader failure.
	ErrIO = errors.New("jsonrepair: i/o error")

	// ErrEncoding indicates the input was not valid UTF-8.
	ErrEncoding = errors.New("jsonrepair: invalid UTF-8 input")

	// ErrInvalidConfiguration indicates an Options combination, or CLI flag
	// combination, that cannot be honoured.
	ErrInvalidConfiguration = errors.New("jsonrepair: invalid configuration")

	// ErrNestingLimitExceeded indicates the context stack depth exceeded
	// maxNestingDepth while parsing.
	ErrNestingLimitExceeded = errors.New("jsonrepair: input nested too deeply")
)

func unrepairablef(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUnrepairable, fmt.Sprintf(format, args...))
}

func encodingErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrEncoding, fmt.Sprintf(format, args...))
}

func ioErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrIO, fmt.Sprintf(format, args...))
}

func nestingLimitErrorf(depth int) error {
	return fmt.Errorf("%w: depth %d exceeds limit of %d", ErrNestingLimitExceeded, depth, maxNestingDepth)
}
