// Package errors provides structured error types for the buycraft client.
//
// Every hard failure raised by the API client carries a machine-readable
// [Code] so callers can branch on the kind of failure without string
// matching:
//   - INVALID_*: bad input supplied by the caller
//   - NEED_MORE_INFO, UNKNOWN_ACTION: the API rejected the request shape
//   - SECRET_*: the secret key was rejected, now or earlier
//   - UNEXPECTED_STATUS, MALFORMED_RESPONSE: the API answered outside the protocol
//   - NETWORK_ERROR: transport failures
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidSecret, "no secret key supplied")
//	if errors.Is(err, errors.ErrCodeInvalidSecret) {
//	    // Handle missing secret
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeNetwork, origErr, "GET %s", action)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidSecret Code = "INVALID_SECRET"

	// API status errors
	ErrCodeNeedMoreInfo     Code = "NEED_MORE_INFO"
	ErrCodeSecretNotFound   Code = "SECRET_NOT_FOUND"
	ErrCodeSecretBlocked    Code = "SECRET_BLOCKED"
	ErrCodeUnknownAction    Code = "UNKNOWN_ACTION"
	ErrCodeUnexpectedStatus Code = "UNEXPECTED_STATUS"

	// Transport errors
	ErrCodeNetwork           Code = "NETWORK_ERROR"
	ErrCodeMalformedResponse Code = "MALFORMED_RESPONSE"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsAPIRejection reports whether err is one of the status codes the API
// uses to reject a well-formed request.
func IsAPIRejection(err error) bool {
	switch GetCode(err) {
	case ErrCodeNeedMoreInfo, ErrCodeSecretNotFound, ErrCodeSecretBlocked, ErrCodeUnknownAction:
		return true
	}
	return false
}
