package outcome

import "fmt"

// Result holds exactly one of two payloads: a success value of type T or
// a failure value of type E. Which slot is valid is determined solely by
// the discriminant set at construction; the inactive slot always holds the
// zero value of its type.
//
// The zero Result is a failure carrying the zero value of E.
type Result[T, E any] struct {
	value     T
	err       E
	isSuccess bool
}

// Success returns a success result carrying value.
func Success[T, E any](value T) Result[T, E] {
	return Result[T, E]{
		value:     value,
		isSuccess: true,
	}
}

// Failure returns a failure result carrying err.
func Failure[T, E any](err E) Result[T, E] {
	return Result[T, E]{
		err:       err,
		isSuccess: false,
	}
}

// From adapts a (value, error) pair: a nil error yields Success(value),
// anything else yields Failure(err).
func From[T any](value T, err error) Result[T, error] {
	if err != nil {
		return Failure[T, error](err)
	}
	return Success[T, error](value)
}

// IsSuccess reports whether the success payload is the valid one.
func (r Result[T, E]) IsSuccess() bool {
	return r.isSuccess
}

// IsFailure reports whether the failure payload is the valid one.
func (r Result[T, E]) IsFailure() bool {
	return !r.isSuccess
}

// Value returns the success slot as stored. On a failure result the slot
// holds the zero value of T, not the payload: check IsSuccess first, or
// reach for TryValue, Get or MustValue instead.
func (r Result[T, E]) Value() T {
	return r.value
}

// Err returns the failure slot as stored. On a success result the slot
// holds the zero value of E: check IsFailure first, or reach for TryErr,
// GetErr or MustErr instead.
func (r Result[T, E]) Err() E {
	return r.err
}

// TryValue returns the success payload and true, or T's zero value and
// false when the result is a failure.
func (r Result[T, E]) TryValue() (T, bool) {
	if !r.isSuccess {
		var zero T
		return zero, false
	}
	return r.value, true
}

// TryErr returns the failure payload and true, or E's zero value and
// false when the result is a success.
func (r Result[T, E]) TryErr() (E, bool) {
	if r.isSuccess {
		var zero E
		return zero, false
	}
	return r.err, true
}

// MustValue returns the success payload and panics on a failure result.
func (r Result[T, E]) MustValue() T {
	if !r.isSuccess {
		panic(fmt.Sprintf("outcome: MustValue on a failure result: %v", r.err))
	}
	return r.value
}

// MustErr returns the failure payload and panics on a success result.
func (r Result[T, E]) MustErr() E {
	if r.isSuccess {
		panic(fmt.Sprintf("outcome: MustErr on a success result: %v", r.value))
	}
	return r.err
}

// ValueOr returns the success payload, or fallback when the result is a
// failure.
func (r Result[T, E]) ValueOr(fallback T) T {
	if !r.isSuccess {
		return fallback
	}
	return r.value
}

// String renders the active variant with its payload.
func (r Result[T, E]) String() string {
	if r.isSuccess {
		return fmt.Sprintf("Success -> Value: %v", r.value)
	}
	return fmt.Sprintf("Failure -> Error: %v", r.err)
}
