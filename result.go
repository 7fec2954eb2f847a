package jsonsafe

import "errors"

// Result is the uniform success/failure envelope returned by every fallible
// Value operation. Good reports whether the operation succeeded; Failure is
// a human-readable diagnostic, populated only when Good is false; Value is
// meaningful only when Good is true and otherwise holds the zero value.
//
// The envelope exists so that no error ever crosses the boundary as a panic
// and so FFI consumers can inspect outcomes field by field.
type Result[T any] struct {
	Good    bool   `json:"good"`
	Failure string `json:"failure,omitempty"`
	Value   T      `json:"value,omitempty"`
}

// VoidResult is the no-payload variant of Result, used by operations that
// produce no value on success.
type VoidResult struct {
	Good    bool   `json:"good"`
	Failure string `json:"failure,omitempty"`
}

// Ok wraps a successful value into a Result
func Ok[T any](value T) Result[T] {
	return Result[T]{Good: true, Value: value}
}

// Fail wraps a failure diagnostic into a Result
func Fail[T any](failure string) Result[T] {
	return Result[T]{Failure: failure}
}

// failErr wraps an error into a failed Result
func failErr[T any](err error) Result[T] {
	return Result[T]{Failure: err.Error()}
}

// OkVoid returns a successful VoidResult
func OkVoid() VoidResult {
	return VoidResult{Good: true}
}

// FailVoid returns a failed VoidResult carrying the diagnostic
func FailVoid(failure string) VoidResult {
	return VoidResult{Failure: failure}
}

// Unpack converts the envelope into idiomatic Go returns. On failure the
// error carries the Failure diagnostic.
func (r Result[T]) Unpack() (T, error) {
	if r.Good {
		return r.Value, nil
	}
	return r.Value, errors.New(r.Failure)
}

// Err returns nil on success and an error carrying the diagnostic otherwise
func (r VoidResult) Err() error {
	if r.Good {
		return nil
	}
	return errors.New(r.Failure)
}
