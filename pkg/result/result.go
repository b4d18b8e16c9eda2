// Package result holds the value-or-error outcome of a single remote call.
package result

import "fmt"

// ErrorInfo describes a failed call. Message is what gets reported; Cause is
// the original error, kept for structured inspection.
type ErrorInfo struct {
	Message string
	Cause   error
}

// NewErrorInfo derives an ErrorInfo from err.
func NewErrorInfo(err error) ErrorInfo {
	if err == nil {
		return ErrorInfo{Message: "unknown error"}
	}
	return ErrorInfo{Message: err.Error(), Cause: err}
}

func (e ErrorInfo) Error() string {
	return e.Message
}

func (e ErrorInfo) Unwrap() error {
	return e.Cause
}

// Result is either Ok (holds a value) or Err (holds an ErrorInfo).
type Result[T any] struct {
	val T
	err *ErrorInfo
}

// Ok creates a successful Result.
func Ok[T any](val T) Result[T] {
	return Result[T]{val: val}
}

// Err creates a failed Result.
func Err[T any](info ErrorInfo) Result[T] {
	return Result[T]{err: &info}
}

// From turns a (value, error) pair into a Result.
func From[T any](val T, err error) Result[T] {
	if err != nil {
		return Err[T](NewErrorInfo(err))
	}
	return Ok(val)
}

// IsOk returns true if the Result holds a value.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// IsErr returns true if the Result holds an error.
func (r Result[T]) IsErr() bool {
	return r.err != nil
}

// Value returns the held value and whether the Result is Ok.
func (r Result[T]) Value() (T, bool) {
	return r.val, r.err == nil
}

// Error returns the held ErrorInfo and whether the Result is Err.
func (r Result[T]) Error() (ErrorInfo, bool) {
	if r.err == nil {
		return ErrorInfo{}, false
	}
	return *r.err, true
}

// Unwrap returns the contained value.
// Panics if the Result is Err.
func (r Result[T]) Unwrap() T {
	if r.err != nil {
		panic(fmt.Sprintf("called Unwrap on an Err Result: %s", r.err.Message))
	}
	return r.val
}

// UnwrapOr returns the contained value or the provided default.
func (r Result[T]) UnwrapOr(def T) T {
	if r.err == nil {
		return r.val
	}
	return def
}

// Recover replaces an Err with the outcome of f when match accepts it.
// Ok results pass through untouched.
func (r Result[T]) Recover(match func(ErrorInfo) bool, f func(ErrorInfo) T) Result[T] {
	if r.err == nil || !match(*r.err) {
		return r
	}
	return Ok(f(*r.err))
}

// Map applies a function to the contained value (if Ok), or keeps the error (if Err).
func Map[T any, U any](r Result[T], f func(T) U) Result[U] {
	if r.err == nil {
		return Ok(f(r.val))
	}
	return Result[U]{err: r.err}
}

// String implements fmt.Stringer.
func (r Result[T]) String() string {
	if r.err == nil {
		return fmt.Sprintf("Ok(%v)", r.val)
	}
	return fmt.Sprintf("Err(%s)", r.err.Message)
}
