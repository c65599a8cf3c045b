// Package errors provides structured error handling for rolodex.
// It defines sentinel errors, exit codes, and helpers for attaching
// details and suggestions to errors that reach the CLI.
//
//nolint:revive // Package name intentionally shadows stdlib for domain-specific error handling
package errors

import (
	"errors"
	"fmt"
	"sort"
)

// Exit codes returned by the rolodex binary.
const (
	ExitSuccess    = 0 // Successful execution
	ExitGeneral    = 1 // General/unknown error
	ExitInput      = 2 // Invalid input
	ExitAuth       = 3 // Passphrase required or rejected
	ExitNotFound   = 4 // Contact or key not found
	ExitStorage    = 5 // Underlying store failed
	codeGeneral    = "GENERAL_ERROR"
	detailsPattern = "%s (%s: %s)"
)

// RolodexError is the structured error type used across rolodex.
type RolodexError struct {
	Code       string            // Machine-readable error code
	Message    string            // Human-readable message
	Details    map[string]string // Additional context
	Suggestion string            // Actionable suggestion for the user
	Cause      error             // Underlying error
	ExitCode   int               // Exit code for the CLI
}

func (e *RolodexError) Error() string {
	msg := e.Message

	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			msg = fmt.Sprintf(detailsPattern, msg, k, e.Details[k])
		}
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *RolodexError) Unwrap() error {
	return e.Cause
}

// Is reports whether target carries the same error code.
func (e *RolodexError) Is(target error) bool {
	var t *RolodexError
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// Sentinel errors.
var (
	ErrGeneral = &RolodexError{
		Code:     codeGeneral,
		Message:  "an error occurred",
		ExitCode: ExitGeneral,
	}

	ErrInvalidInput = &RolodexError{
		Code:     "INVALID_INPUT",
		Message:  "invalid input",
		ExitCode: ExitInput,
	}

	// Storage errors.
	ErrStorageRead = &RolodexError{
		Code:     "STORAGE_READ_FAILED",
		Message:  "reading contacts from storage failed",
		ExitCode: ExitStorage,
	}

	ErrStorageWrite = &RolodexError{
		Code:     "STORAGE_WRITE_FAILED",
		Message:  "writing contacts to storage failed",
		ExitCode: ExitStorage,
	}

	// Contact errors.
	ErrContactNotFound = &RolodexError{
		Code:     "CONTACT_NOT_FOUND",
		Message:  "contact not found",
		ExitCode: ExitNotFound,
	}

	ErrDuplicateContact = &RolodexError{
		Code:     "DUPLICATE_CONTACT",
		Message:  "a contact with this id already exists",
		ExitCode: ExitInput,
	}

	ErrMissingContact = &RolodexError{
		Code:     "MISSING_CONTACT",
		Message:  "no contact supplied",
		ExitCode: ExitInput,
	}

	ErrNotSendable = &RolodexError{
		Code:     "NOT_SENDABLE",
		Message:  "entry is display-only and cannot be sent to",
		ExitCode: ExitInput,
	}

	ErrPassphraseRequired = &RolodexError{
		Code:     "PASSPHRASE_REQUIRED",
		Message:  "a passphrase is required to open the encrypted store",
		ExitCode: ExitAuth,
	}

	// Config errors.
	ErrConfigInvalid = &RolodexError{
		Code:     "CONFIG_INVALID",
		Message:  "configuration file is invalid",
		ExitCode: ExitInput,
	}
)

// New creates a new RolodexError with the given code and message.
func New(code, message string) *RolodexError {
	return &RolodexError{
		Code:     code,
		Message:  message,
		ExitCode: ExitGeneral,
	}
}

// Wrap wraps an error with additional context.
// Wrapping a RolodexError keeps its code and exit code.
func Wrap(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, args...)

	var re *RolodexError
	if errors.As(err, &re) {
		return &RolodexError{
			Code:       re.Code,
			Message:    fmt.Sprintf("%s: %s", msg, re.Message),
			Details:    re.Details,
			Suggestion: re.Suggestion,
			Cause:      err,
			ExitCode:   re.ExitCode,
		}
	}

	return &RolodexError{
		Code:     codeGeneral,
		Message:  msg,
		Cause:    err,
		ExitCode: ExitGeneral,
	}
}

// WithCause returns a copy of the sentinel carrying cause as its underlying error.
// errors.Is matches both the sentinel (by code) and the cause.
func WithCause(sentinel *RolodexError, cause error) error {
	return &RolodexError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		Details:    sentinel.Details,
		Suggestion: sentinel.Suggestion,
		Cause:      cause,
		ExitCode:   sentinel.ExitCode,
	}
}

// WithDetails adds details to an error.
func WithDetails(err error, details map[string]string) error {
	if err == nil {
		return nil
	}

	var re *RolodexError
	if errors.As(err, &re) {
		return &RolodexError{
			Code:       re.Code,
			Message:    re.Message,
			Details:    details,
			Suggestion: re.Suggestion,
			Cause:      re.Cause,
			ExitCode:   re.ExitCode,
		}
	}

	return &RolodexError{
		Code:     codeGeneral,
		Message:  err.Error(),
		Details:  details,
		Cause:    err,
		ExitCode: ExitGeneral,
	}
}

// WithSuggestion adds a suggestion to an error.
func WithSuggestion(err error, suggestion string) error {
	if err == nil {
		return nil
	}

	var re *RolodexError
	if errors.As(err, &re) {
		return &RolodexError{
			Code:       re.Code,
			Message:    re.Message,
			Details:    re.Details,
			Suggestion: suggestion,
			Cause:      re.Cause,
			ExitCode:   re.ExitCode,
		}
	}

	return &RolodexError{
		Code:       codeGeneral,
		Message:    err.Error(),
		Suggestion: suggestion,
		Cause:      err,
		ExitCode:   ExitGeneral,
	}
}

// ExitCode returns the appropriate exit code for an error.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var re *RolodexError
	if errors.As(err, &re) {
		return re.ExitCode
	}

	return ExitGeneral
}

// Code returns the error code for an error.
func Code(err error) string {
	var re *RolodexError
	if errors.As(err, &re) {
		return re.Code
	}
	return codeGeneral
}

// Is wraps errors.Is for convenience.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience.
func As(err error, target any) bool {
	return errors.As(err, target)
}
