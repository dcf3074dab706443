package errors

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the relay pipeline
const (
	CodeValidation    = "ValidationError"
	CodeUpstreamFetch = "UpstreamFetchError"
	CodeSummarization = "SummarizationError"
	CodePublish       = "PublishError"
)

// Error represents a custom error type
type Error struct {
	Code    string
	Message string
	Err     error
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new error with a message
func New(message string) error {
	return &Error{
		Message: message,
	}
}

// NewWithCode creates a new error with a code and message
func NewWithCode(code, message string) error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional message
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Message: message,
		Err:     err,
	}
}

// WrapWithCode wraps an error with a code and message
func WrapWithCode(err error, code, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// GetCode returns the outermost error code in the chain, if any
func GetCode(err error) string {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return ""
		}
		if e.Code != "" {
			return e.Code
		}
		err = e.Err
	}
	return ""
}

// GetMessage returns the error message
func GetMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsValidation returns true if the error is a validation error
func IsValidation(err error) bool {
	return GetCode(err) == CodeValidation
}

// IsUpstreamFetch returns true if the error came from the ingest provider
func IsUpstreamFetch(err error) bool {
	return GetCode(err) == CodeUpstreamFetch
}

// IsSummarization returns true if the error came from the LLM provider
func IsSummarization(err error) bool {
	return GetCode(err) == CodeSummarization
}

// IsPublish returns true if the error came from the posting provider
func IsPublish(err error) bool {
	return GetCode(err) == CodePublish
}
