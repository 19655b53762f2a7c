// Package errors defines the coded errors depinfo reports.
//
// Every failure that reaches the command line is an [*Error] carrying a
// [Code]. The command maps codes to exit statuses through [IsUsage]:
//
//   - usage codes (INVALID_INPUT, INVALID_DEPTH, INVALID_PACKAGE,
//     INVALID_FORMAT, INVALID_LOG_LEVEL, INVALID_CONFIG) exit with 2
//   - everything else (INVALID_METADATA, FILE_NOT_FOUND, INTERNAL_ERROR, ...)
//     exits with 1
//
// INVALID_DEPTH is logged at CRITICAL with its message only, which is why
// [ValidateDepth] phrases it for the user. Other failures are logged with
// [FullMessage], which follows the cause chain but leaves out the codes.
//
// A package missing from a metadata index is not a failure: indexes return
// a PACKAGE_NOT_FOUND error wrapping deps.ErrNotFound, and the report records
// the package as missing instead of stopping.
//
//	if err := errors.ValidateDepth(depth, 5); err != nil {
//	    return err // INVALID_DEPTH, exit status 2
//	}
//	meta, err := readMetadata(path)
//	if err != nil {
//	    return errors.Wrap(errors.ErrCodeInvalidMetadata, err, "parsing %s", path)
//	}
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code identifies a class of failure.
type Code string

const (
	// Rejected command-line input or configuration.
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidDepth    Code = "INVALID_DEPTH"
	ErrCodeInvalidPackage  Code = "INVALID_PACKAGE"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidLogLevel Code = "INVALID_LOG_LEVEL"
	ErrCodeInvalidConfig   Code = "INVALID_CONFIG"

	// Unreadable METADATA, PKG-INFO, requires.txt or poetry.lock contents.
	ErrCodeInvalidMetadata Code = "INVALID_METADATA"

	// A distribution absent from an index, or an absent file or executable.
	ErrCodePackageNotFound Code = "PACKAGE_NOT_FOUND"
	ErrCodeFileNotFound    Code = "FILE_NOT_FOUND"

	// Column widths requested for a table without rows.
	ErrCodeEmptyTable Code = "EMPTY_TABLE"

	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error pairs a Code with a message for the user and an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

// Error formats the error as "CODE: message[: cause]".
func (e *Error) Error() string {
	if e.Cause == nil {
		return string(e.Code) + ": " + e.Message
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an Error with a formatted message and no cause.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap returns an Error with a formatted message around cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether the outermost *Error in err's chain has code.
func Is(err error, code Code) bool {
	return GetCode(err) == code && code != ""
}

// GetCode returns the code of the outermost *Error in err's chain, or ""
// when there is none.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns the message of the outermost *Error in err's chain,
// or err.Error() for uncoded errors.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// FullMessage joins the messages along err's cause chain with ": ",
// leaving out codes. An uncoded cause contributes its Error() text.
func FullMessage(err error) string {
	var parts []string
	for err != nil {
		e, ok := err.(*Error)
		if !ok {
			parts = append(parts, UserMessage(err))
			break
		}
		parts = append(parts, e.Message)
		err = e.Cause
	}
	return strings.Join(parts, ": ")
}

// IsUsage reports whether err stems from invalid user input rather than
// a failure while building or rendering a report.
func IsUsage(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidInput, ErrCodeInvalidDepth, ErrCodeInvalidPackage,
		ErrCodeInvalidFormat, ErrCodeInvalidLogLevel, ErrCodeInvalidConfig:
		return true
	}
	return false
}
