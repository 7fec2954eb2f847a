package jsonsafe

import (
	"errors"
	"fmt"
)

// Core error definitions - sentinel errors for the closed failure taxonomy
var (
	ErrParseFailure     = errors.New("invalid JSON format")
	ErrSerializeFailure = errors.New("serialization failed")
	ErrInvalidUTF8      = errors.New("string is not valid UTF-8")
	ErrTypeMismatch     = errors.New("type mismatch")
	ErrKeyNotFound      = errors.New("key not found")
	ErrNotAnObject      = errors.New("not an object")
	ErrNotAnArray       = errors.New("not an array")
	ErrPointerSyntax    = errors.New("invalid pointer syntax")
	ErrPointerNotFound  = errors.New("pointer not found")
	ErrPathNotCreatable = errors.New("cannot create path")

	// Limit-related errors
	ErrSizeLimit  = errors.New("size limit exceeded")
	ErrDepthLimit = errors.New("depth limit exceeded")

	// ErrOperationFailed covers failures outside the closed taxonomy
	ErrOperationFailed = errors.New("operation failed")
)

// JsonError represents a processing error with essential context
type JsonError struct {
	Op      string `json:"op"`      // Operation that failed
	Path    string `json:"path"`    // Pointer or key where the error occurred
	Message string `json:"message"` // Human-readable error message
	Err     error  `json:"err"`     // Underlying sentinel error
}

func (e *JsonError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("jsonsafe %s failed at '%s': %s", e.Op, e.Path, e.Message)
	}
	return fmt.Sprintf("jsonsafe %s failed: %s", e.Op, e.Message)
}

// Unwrap returns the underlying error for error chain support
func (e *JsonError) Unwrap() error {
	return e.Err
}

// Is implements error matching for errors.Is chains
func (e *JsonError) Is(target error) bool {
	if target == nil {
		return false
	}
	if targetErr, ok := target.(*JsonError); ok {
		return e.Op == targetErr.Op && errors.Is(e.Err, targetErr.Err)
	}
	return errors.Is(e.Err, target)
}

// newOperationError creates a JsonError for operation failures
func newOperationError(operation, message string, err error) *JsonError {
	return &JsonError{
		Op:      operation,
		Message: message,
		Err:     err,
	}
}

// newKeyError creates a JsonError for object key access failures
func newKeyError(operation, key, message string, err error) *JsonError {
	return &JsonError{
		Op:      operation,
		Path:    key,
		Message: message,
		Err:     err,
	}
}

// newTypeMismatchError reports an accessor applied to the wrong variant
func newTypeMismatchError(operation, want, got string) *JsonError {
	return &JsonError{
		Op:      operation,
		Message: fmt.Sprintf("value is %s, not %s", got, want),
		Err:     ErrTypeMismatch,
	}
}

// newSizeLimitError creates a JsonError for size limit violations
func newSizeLimitError(operation string, actual, limit int64) *JsonError {
	return &JsonError{
		Op:      operation,
		Message: fmt.Sprintf("size %d exceeds limit %d", actual, limit),
		Err:     ErrSizeLimit,
	}
}

// newDepthLimitError creates a JsonError for depth limit violations
func newDepthLimitError(operation string, actual, limit int) *JsonError {
	return &JsonError{
		Op:      operation,
		Message: fmt.Sprintf("depth %d exceeds limit %d", actual, limit),
		Err:     ErrDepthLimit,
	}
}
