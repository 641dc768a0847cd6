package outcome

// Match invokes exactly one of the two callbacks with the active payload.
func (r Result[T, E]) Match(onSuccess func(T), onFailure func(E)) {
	if r.isSuccess {
		onSuccess(r.value)
		return
	}
	onFailure(r.err)
}

// Match reduces a result to a single value of type R, invoking exactly one
// of the two callbacks with the active payload.
func Match[T, E, R any](r Result[T, E], onSuccess func(T) R, onFailure func(E) R) R {
	if r.isSuccess {
		return onSuccess(r.value)
	}
	return onFailure(r.err)
}

// Map transforms the success payload. The transform runs at most once and
// never on a failure; a failure passes through with its payload untouched.
func Map[T, E, U any](r Result[T, E], transform func(T) U) Result[U, E] {
	if !r.isSuccess {
		return Failure[U, E](r.err)
	}
	return Success[U, E](transform(r.value))
}

// MapErr transforms the failure payload; a success passes through with its
// payload untouched.
func MapErr[T, E, U any](r Result[T, E], transform func(E) U) Result[T, U] {
	if r.isSuccess {
		return Success[T, U](r.value)
	}
	return Failure[T, U](transform(r.err))
}

// FlatMap switches a success into the next result-producing step; a
// failure short-circuits past next.
func FlatMap[T, E, U any](r Result[T, E], next func(T) Result[U, E]) Result[U, E] {
	if !r.isSuccess {
		return Failure[U, E](r.err)
	}
	return next(r.value)
}
