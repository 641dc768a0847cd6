// Package outcome provides Result[T, E], a two-variant value container
// holding either a success payload of type T or a failure payload of
// type E, as a return-value alternative to raised faults.
//
// A Result is built by exactly one of the factories and never changes
// afterwards; transforms return new values:
// - Success/Failure: construct from a value or an error value
// - From: bridge from the classic (value, error) return shape
// - IsSuccess/IsFailure: inspect the active variant
// - Value/Err, TryValue/TryErr, MustValue/MustErr, Get/GetErr: payload
//   access at increasing strictness tiers
// - Match/Map/MapErr/FlatMap: branch on or transform the payloads
// - Equal/EqualFunc/Hash: structural comparison and hashing
//
// Results are plain values: copying one is as safe as copying its
// payloads, no operation blocks or locks, and nothing is shared between
// copies. For fluent composition see the chain subpackage; for stamping
// results with provenance see the stamp subpackage.
package outcome
