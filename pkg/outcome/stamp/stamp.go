package stamp

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Stamped couples a result with a unique id and its creation time.
type Stamped[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	res       outcome.Result[T, E]
}

// Wrap stamps an existing result
func Wrap[T, E any](r outcome.Result[T, E]) Stamped[T, E] {
	return Stamped[T, E]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		res:       r,
	}
}

// Succeed builds and stamps a fresh success
func Succeed[T, E any](v T) Stamped[T, E] {
	return Wrap(outcome.Success[T, E](v))
}

// Fail builds and stamps a fresh failure
func Fail[T, E any](e E) Stamped[T, E] {
	return Wrap(outcome.Failure[T, E](e))
}

// Derive retypes a stamped result while keeping its provenance
func Derive[In, Out, E any](from Stamped[In, E], r outcome.Result[Out, E]) Stamped[Out, E] {
	return Stamped[Out, E]{
		id:        from.id,
		createdAt: from.createdAt,
		res:       r,
	}
}

func (s Stamped[T, E]) Id() uuid.UUID {
	return s.id
}

func (s Stamped[T, E]) CreatedAt() time.Time {
	return s.createdAt
}

// Result returns the wrapped result
func (s Stamped[T, E]) Result() outcome.Result[T, E] {
	return s.res
}

func (s Stamped[T, E]) IsSuccess() bool {
	return s.res.IsSuccess()
}

func (s Stamped[T, E]) IsFailure() bool {
	return s.res.IsFailure()
}

func (s Stamped[T, E]) TryValue() (T, bool) {
	return s.res.TryValue()
}

func (s Stamped[T, E]) TryErr() (E, bool) {
	return s.res.TryErr()
}

// String renders the result prefixed with the short id, for log lines
func (s Stamped[T, E]) String() string {
	return fmt.Sprintf("[%s] %s", s.id.String()[:8], s.res)
}
