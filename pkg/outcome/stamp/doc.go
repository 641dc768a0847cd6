// Package stamp couples results with provenance for logging and audit
// trails: every stamped result carries a unique id and the UTC time it
// was wrapped.
//
// Key operations:
// - Wrap: stamp an existing Result[T, E]
// - Succeed/Fail: build and stamp a fresh result
// - Derive: retype a stamped result while keeping its id and time
// - Id/CreatedAt/Result: read the provenance and the wrapped result
//
// Stamped satisfies outcome.Container, so code that only inspects
// results accepts stamped and plain results alike.
package stamp
