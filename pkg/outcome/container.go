package outcome

// Container is the read-only view shared by Result and the wrappers built
// on top of it, such as stamp.Stamped.
type Container[T, E any] interface {
	// IsSuccess reports whether the success payload is the valid one.
	IsSuccess() bool
	// IsFailure reports whether the failure payload is the valid one.
	IsFailure() bool
	// TryValue returns the success payload, comma-ok.
	TryValue() (T, bool)
	// TryErr returns the failure payload, comma-ok.
	TryErr() (E, bool)
}
