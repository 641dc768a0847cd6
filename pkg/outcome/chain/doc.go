// Package chain provides a fluent wrapper around Result[T, E]
// for building synchronous pipelines that stop at the first failure.
//
// Same-type steps are methods on Chain; steps that change the success
// type are package-level functions, since Go methods cannot introduce
// new type parameters.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T, E] or a value
// - Then: switch to a new Result via a function (the method keeps T,
//   the package function retypes to U)
// - ThenTry: call a function returning (U, error) and convert the error
//   to a failure
// - Map/MapErr: transform the success or failure payload
// - Ensure: run side effects without changing the result
// - Or/And: pick between two chains by state
// - While: repeat a step while a condition holds
// - Finally: collapse the chain into a final value via handlers
package chain
