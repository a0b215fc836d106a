package shared

import (
	"errors"
	"fmt"
)

// Error codes for programmatic handling
// Internal details are wrapped but never part of Message
const (
	ErrCodeInvalidInput       = "INVALID_INPUT"
	ErrCodeInvalidConfig      = "INVALID_CONFIG"
	ErrCodeRandomSourceFailed = "RANDOM_SOURCE_FAILED"
	ErrCodeInvalidKeyLength   = "INVALID_KEY_LENGTH"
	ErrCodeScalarOutOfRange   = "SCALAR_OUT_OF_RANGE"
	ErrCodeInvalidKeyFormat   = "INVALID_KEY_FORMAT"
)

// KeygenError wraps an internal error with a message that is safe to print
type KeygenError struct {
	Code     string // Error code for programmatic handling
	Message  string // Safe message for the user
	internal error  // Underlying cause (not printed)
}

func (e *KeygenError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the internal error
func (e *KeygenError) Unwrap() error {
	return e.internal
}

// ErrorCode returns the KeygenError code anywhere in err's chain, or "" if there is none
func ErrorCode(err error) string {
	var ke *KeygenError
	if errors.As(err, &ke) {
		return ke.Code
	}
	return ""
}

// UserMessage returns the text to show on the terminal for err
func UserMessage(err error) string {
	var ke *KeygenError
	if errors.As(err, &ke) {
		return ke.Message
	}
	return err.Error()
}

// ErrInvalidValue is returned for a CLI argument that is not an integer in [MinKeyPairs, MaxKeyPairs]
func ErrInvalidValue(program string, internal error) error {
	return &KeygenError{
		Code: ErrCodeInvalidInput,
		Message: fmt.Sprintf("Invalid value submitted. Please provide an integer between %d and %d, or run '%s %s' for the help menu.",
			MinKeyPairs, MaxKeyPairs, program, HelpFlag),
		internal: internal,
	}
}

// ErrInvalidCount is returned when a batch is requested with an out of range count
func ErrInvalidCount(count int) error {
	return &KeygenError{
		Code:     ErrCodeInvalidInput,
		Message:  fmt.Sprintf("Invalid number of key pairs. Please provide an integer between %d and %d.", MinKeyPairs, MaxKeyPairs),
		internal: fmt.Errorf("count %d out of range", count),
	}
}

func ErrInvalidConfig(variable string, internal error) error {
	return &KeygenError{
		Code:     ErrCodeInvalidConfig,
		Message:  fmt.Sprintf("invalid value for environment variable %s", variable),
		internal: internal,
	}
}

func ErrRandomSource(internal error) error {
	return &KeygenError{
		Code:     ErrCodeRandomSourceFailed,
		Message:  "secure random source unavailable",
		internal: internal,
	}
}

func ErrInvalidKeyLength(got int) error {
	return &KeygenError{
		Code:    ErrCodeInvalidKeyLength,
		Message: fmt.Sprintf("invalid private key length: expected %d bytes, got %d", PrivateKeyLength, got),
	}
}

func ErrScalarOutOfRange() error {
	return &KeygenError{
		Code:    ErrCodeScalarOutOfRange,
		Message: "private key must be non-zero and below the curve order",
	}
}

func ErrInvalidKeyFormat(internal error) error {
	return &KeygenError{
		Code:     ErrCodeInvalidKeyFormat,
		Message:  "private key must be 64 hex characters, optionally 0x prefixed",
		internal: internal,
	}
}
