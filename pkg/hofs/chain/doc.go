// Package chain provides a fluent wrapper around a pending hofs.Result[T]
// for composing the async higher-order functions of package res.
//
// Building a chain never blocks: each step starts a goroutine that awaits the
// previous future, applies the res combinator, and resolves the next one. A
// failed or cancelled result short-circuits through every remaining step. A
// context that ends while a step is awaiting surfaces as a cancelled result.
//
// Key operations:
// - Start/FromValue/FromFuture: begin a chain
// - Then/ThenTry/Map: compose result-returning, error-returning or pure functions
// - Ensure: run side effects on success without changing the result
// - Result/Future: await, or take the pending result as-is
// - Finally: collapse the chain into a final value via handlers
//
// Methods on Chain[T] keep the value type; the package-level Then, ThenTry
// and Map move a chain from T to U.
package chain
