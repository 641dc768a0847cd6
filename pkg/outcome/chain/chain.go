package chain

import (
	"github.com/ib-77/outcome/pkg/outcome"
)

// Chain wraps an outcome.Result to enable fluent chaining
type Chain[T, E any] struct {
	res outcome.Result[T, E]
}

// Start creates a new chain from an outcome.Result
func Start[T, E any](r outcome.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{res: r}
}

// FromValue creates a new chain from a successful value
func FromValue[T, E any](v T) Chain[T, E] {
	return Start(outcome.Success[T, E](v))
}

// Result returns the underlying outcome.Result
func (c Chain[T, E]) Result() outcome.Result[T, E] {
	return c.res
}

// Then composes functions that already return outcome.Result[T, E]
func (c Chain[T, E]) Then(onSuccess func(t T) outcome.Result[T, E]) Chain[T, E] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T, E]{res: onSuccess(c.res.Value())}
}

// Map transforms the successful value to a new value
func (c Chain[T, E]) Map(onSuccess func(t T) T) Chain[T, E] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T, E]{res: outcome.Success[T, E](onSuccess(c.res.Value()))}
}

// MapErr transforms the failure payload, leaving successes untouched
func (c Chain[T, E]) MapErr(onFailure func(e E) E) Chain[T, E] {
	if c.res.IsSuccess() {
		return c
	}
	return Chain[T, E]{res: outcome.Failure[T, E](onFailure(c.res.Err()))}
}

// While keeps applying the step while the chain succeeds and the condition holds
func (c Chain[T, E]) While(step func(t T) outcome.Result[T, E],
	while func(t T) bool) Chain[T, E] {

	for !c.res.IsFailure() && while(c.res.Value()) {
		c = c.Then(step)
	}
	return c
}

// Or prefers the first successful chain; with no success it keeps the first failure
func (c Chain[T, E]) Or(alternative Chain[T, E]) Chain[T, E] {
	return c.or(alternative)
}

func (c Chain[T, E]) or(chains ...Chain[T, E]) Chain[T, E] {
	candidates := make([]Chain[T, E], 0, len(chains)+1)
	candidates = append(candidates, c)
	candidates = append(candidates, chains...)

	for _, ch := range candidates {
		if ch.res.IsSuccess() {
			return ch
		}
	}

	return c
}

// And keeps the first failing chain; with no failure it keeps the last success
func (c Chain[T, E]) And(required Chain[T, E]) Chain[T, E] {
	return c.and(required)
}

func (c Chain[T, E]) and(chains ...Chain[T, E]) Chain[T, E] {
	candidates := make([]Chain[T, E], 0, len(chains)+1)
	candidates = append(candidates, c)
	candidates = append(candidates, chains...)

	last := c
	for _, ch := range candidates {
		if ch.res.IsFailure() {
			return ch
		}
		last = ch
	}

	return last
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T, E]) Ensure(onSuccess func(T), onFailure func(E)) Chain[T, E] {
	if c.res.IsFailure() {
		if onFailure != nil {
			onFailure(c.res.Err())
		}
		return c
	}

	if onSuccess != nil {
		onSuccess(c.res.Value())
	}
	return c
}

// Match invokes exactly one of the callbacks with the active payload
func (c Chain[T, E]) Match(onSuccess func(T), onFailure func(E)) {
	c.res.Match(onSuccess, onFailure)
}

// Then chains a function that switches the success type to U
func Then[T, E, U any](c Chain[T, E], onSuccess func(t T) outcome.Result[U, E]) Chain[U, E] {
	return Chain[U, E]{res: outcome.FlatMap(c.res, onSuccess)}
}

// Map chains a pure transformation function
func Map[T, E, U any](c Chain[T, E], onSuccess func(t T) U) Chain[U, E] {
	return Chain[U, E]{res: outcome.Map(c.res, onSuccess)}
}

// ThenTry chains a function that returns (U, error), converting the error to a failure
func ThenTry[T, U any](c Chain[T, error], try func(t T) (U, error)) Chain[U, error] {
	if c.res.IsFailure() {
		return Chain[U, error]{res: outcome.Failure[U, error](c.res.Err())}
	}
	return Chain[U, error]{res: outcome.From(try(c.res.Value()))}
}

// Finally collapses the chain into a final value via the matching handler
func Finally[T, E, R any](c Chain[T, E], onSuccess func(t T) R, onFailure func(e E) R) R {
	return outcome.Match(c.res, onSuccess, onFailure)
}
