// SPDX-License-Identifier: MIT

package matrixio

import (
	"errors"
	"fmt"
	"strings"
)

// Reason classifies why an input could not be turned into a system.
type Reason int

const (
	// ReasonNotFound: the named file does not exist.
	ReasonNotFound Reason = iota + 1
	// ReasonEmpty: no non-blank lines.
	ReasonEmpty
	// ReasonBadSize: the first line is not a single positive integer.
	ReasonBadSize
	// ReasonLineCount: the number of rows does not match the declared size.
	ReasonLineCount
	// ReasonFieldCount: a row has the wrong number of values.
	ReasonFieldCount
	// ReasonBadNumber: a value is not a finite decimal number.
	ReasonBadNumber
	// ReasonShape: the parsed values were rejected by linsys.
	ReasonShape
)

var reasonNames = map[Reason]string{
	ReasonNotFound:   "file not found",
	ReasonEmpty:      "empty input",
	ReasonBadSize:    "first line must be a single positive integer (number of variables)",
	ReasonLineCount:  "wrong number of rows",
	ReasonFieldCount: "wrong number of values in row",
	ReasonBadNumber:  "invalid number format",
	ReasonShape:      "invalid system shape",
}

// String returns a human readable name for r.
func (r Reason) String() string {
	if s, ok := reasonNames[r]; ok {
		return s
	}

	return fmt.Sprintf("Reason(%d)", int(r))
}

// FormatError is the failure variant of every read in this package.
// Line is 1-based and counts blank lines; 0 means "not tied to a line".
type FormatError struct {
	Reason Reason
	Line   int
	Detail string
	Err    error
}

func (e *FormatError) Error() string {
	var sb strings.Builder
	sb.WriteString("matrixio: ")
	sb.WriteString(e.Reason.String())
	if e.Line > 0 {
		fmt.Fprintf(&sb, " (line %d)", e.Line)
	}
	if e.Detail != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Detail)
	}

	return sb.String()
}

// Unwrap exposes the underlying cause (a strconv, fs or linsys error).
func (e *FormatError) Unwrap() error { return e.Err }

// ReasonOf returns the Reason carried by err, or 0 when err is not a
// *FormatError.
func ReasonOf(err error) Reason {
	var fe *FormatError
	if errors.As(err, &fe) {
		return fe.Reason
	}

	return 0
}

// IsNotFound reports whether err is a FormatError for a missing file.
func IsNotFound(err error) bool { return ReasonOf(err) == ReasonNotFound }

func formatErrorf(reason Reason, line int, cause error, format string, args ...any) *FormatError {
	return &FormatError{Reason: reason, Line: line, Detail: fmt.Sprintf(format, args...), Err: cause}
}
