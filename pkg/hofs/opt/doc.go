// Package opt contains asynchronous higher-order functions over
// hofs.Option[T]. Each function dispatches on presence first: an absent
// input resolves immediately, without invoking the supplied function and
// without starting a goroutine. A present value is handed to the function in
// its own goroutine and the resulting Future resolves when it returns.
//
// Key operations:
// - AsyncMap: transform the present value (In -> Out)
// - AsyncAndThen: chain an option-producing function
// - AsyncFilter: drop the value when the predicate rejects it
package opt
