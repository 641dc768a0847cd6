package outcome

import "github.com/zeebo/errs"

// ErrInvalidCast classifies every error returned by the checked
// conversions Get and GetErr. No other operation produces it.
var ErrInvalidCast = errs.Class("invalid cast")

// Get converts the result to its success payload. It fails with an
// ErrInvalidCast error when the result is a failure; the failure payload
// is rendered into the error message.
func (r Result[T, E]) Get() (T, error) {
	if !r.isSuccess {
		var zero T
		return zero, ErrInvalidCast.New("result is a failure: %v", r.err)
	}
	return r.value, nil
}

// GetErr converts the result to its failure payload. It fails with an
// ErrInvalidCast error when the result is a success.
func (r Result[T, E]) GetErr() (E, error) {
	if r.isSuccess {
		var zero E
		return zero, ErrInvalidCast.New("result is a success: %v", r.value)
	}
	return r.err, nil
}

// IsInvalidCast reports whether err came from one of the checked
// conversions.
func IsInvalidCast(err error) bool {
	return ErrInvalidCast.Has(err)
}
