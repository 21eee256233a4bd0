package errors

import (
	"errors"
	"fmt"
)

// Common application errors with proper types for error handling

var (
	// ErrInvalidInput indicates invalid input data
	ErrInvalidInput = errors.New("invalid input")

	// ErrFileTypeInvalid indicates a selected file's content type is not in
	// the accepted set for its slot
	ErrFileTypeInvalid = errors.New("file type invalid")

	// ErrFileTooLarge indicates a selected file exceeds the size ceiling
	ErrFileTooLarge = errors.New("file too large")

	// ErrConditionalFileMissing indicates the author permission file is
	// absent while the director is not the playwright
	ErrConditionalFileMissing = errors.New("author permission file missing")

	// ErrGeneratorFailure indicates the confirmation message generator
	// rejected or was unreachable
	ErrGeneratorFailure = errors.New("message generation failed")

	// ErrSubmissionInFlight indicates another submission is being processed
	ErrSubmissionInFlight = errors.New("submission already in flight")

	// ErrInternal indicates an internal server error
	ErrInternal = errors.New("internal error")
)

// InvalidInputError creates an invalid input error with context
func InvalidInputError(field, reason string) error {
	return fmt.Errorf("%s: %s: %w", field, reason, ErrInvalidInput)
}

// FileTypeInvalidError creates a file type error naming the offending type
func FileTypeInvalidError(contentType string) error {
	return fmt.Errorf("unsupported content type %q: %w", contentType, ErrFileTypeInvalid)
}

// InternalError creates an internal error with context
func InternalError(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrInternal)
}

// Is checks if an error matches a target error (works with wrapped errors)
func Is(err, target error) bool {
	return errors.Is(err, target)
}
