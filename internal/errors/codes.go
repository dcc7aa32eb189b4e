package errors

import (
	"errors"
	"fmt"
)

// ErrorCode classifies failures that cross package boundaries.
type ErrorCode string

const (
	// ErrCodeDataError indicates a malformed stored value, such as a
	// non-numeric water intake or a date that does not parse.
	ErrCodeDataError ErrorCode = "DATA_ERROR"
	// ErrCodeShapeMismatch indicates an embedding dimension inconsistency
	// in the similarity index. This is a configuration error, not user input.
	ErrCodeShapeMismatch ErrorCode = "SHAPE_MISMATCH"
	// ErrCodeExternalService indicates a failed call to an external
	// collaborator such as the text generator.
	ErrCodeExternalService ErrorCode = "EXTERNAL_SERVICE"
	// ErrCodeInvalidArgument indicates invalid input parameters.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// ErrCodeUnsupported indicates the backing driver cannot serve the
	// requested operation.
	ErrCodeUnsupported ErrorCode = "UNSUPPORTED"
)

// CodedError carries an ErrorCode alongside a message and optional cause.
type CodedError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

func (e *CodedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *CodedError) Unwrap() error {
	return e.Cause
}

// DataError creates a DATA_ERROR wrapping cause.
func DataError(msg string, cause error) *CodedError {
	return &CodedError{Code: ErrCodeDataError, Message: msg, Cause: cause}
}

// DataErrorf creates a DATA_ERROR with a formatted message.
func DataErrorf(format string, args ...any) *CodedError {
	return &CodedError{Code: ErrCodeDataError, Message: fmt.Sprintf(format, args...)}
}

// ShapeMismatch creates a SHAPE_MISMATCH error.
func ShapeMismatch(format string, args ...any) *CodedError {
	return &CodedError{Code: ErrCodeShapeMismatch, Message: fmt.Sprintf(format, args...)}
}

// ExternalService creates an EXTERNAL_SERVICE error wrapping cause.
func ExternalService(msg string, cause error) *CodedError {
	return &CodedError{Code: ErrCodeExternalService, Message: msg, Cause: cause}
}

// InvalidArgument creates an INVALID_ARGUMENT error.
func InvalidArgument(format string, args ...any) *CodedError {
	return &CodedError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

// Unsupported creates an UNSUPPORTED error.
func Unsupported(msg string) *CodedError {
	return &CodedError{Code: ErrCodeUnsupported, Message: msg}
}

// IsCode reports whether err or any error in its chain carries code.
func IsCode(err error, code ErrorCode) bool {
	var coded *CodedError
	if errors.As(err, &coded) {
		return coded.Code == code
	}
	return false
}
