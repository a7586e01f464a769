// Package res contains asynchronous higher-order functions over
// hofs.Result[T]. Each function dispatches on the branch first: a failed or
// cancelled input resolves immediately with the failure carried over
// losslessly (error, cancel flag and provenance id included), without
// invoking the supplied function and without starting a goroutine. A
// successful value is handed to the function in its own goroutine.
//
// Key operations:
// - AsyncAndThen: chain a result-producing function
// - AsyncMap: transform the successful value (In -> Out)
// - AsyncTry: call a function (Out, error) and convert error to failure
// - AsyncTee: run a side effect on success without changing the result
//
// None of these functions fails on its own behalf; whatever failure the
// supplied function encodes in its result is returned verbatim.
package res
