// Package future provides Future[T], the pending computation returned by the
// async higher-order functions in opt, res and chain.
//
// A Future is resolved exactly once and can be awaited any number of times.
// Resolution is broadcast through a closed channel, so there are no locks and
// no shared mutable state beyond the single value slot.
//
// Key operations:
// - Go: start a function in its own goroutine, resolve with its result
// - Resolved: wrap an already-known value; awaiting never suspends
// - Await: block until resolution or context end
// - Wait/TryGet/IsResolved: blocking and non-blocking accessors
package future
