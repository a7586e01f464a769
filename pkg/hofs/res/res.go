package res

import (
	"context"

	"github.com/ib-77/ahofs/pkg/hofs"
	"github.com/ib-77/ahofs/pkg/hofs/future"
)

// AsyncAndThen chains onSuccess over the successful value; the resolved
// result is exactly the one onSuccess produces. The failure branch resolves
// immediately and losslessly: same error, same cancel flag, same provenance,
// onSuccess never invoked.
func AsyncAndThen[In, Out any](ctx context.Context, input hofs.Result[In],
	onSuccess func(ctx context.Context, r In) hofs.Result[Out]) future.Future[hofs.Result[Out]] {

	if input.IsFailure() {
		return future.Resolved(hofs.FailureFrom[In, Out](input))
	}

	return future.Go(ctx, func(ctx context.Context) hofs.Result[Out] {
		return onSuccess(ctx, input.Result())
	})
}

// AsyncMap transforms the successful value, wrapping the mapped value back
// into a success. Failure passes through as in AsyncAndThen.
func AsyncMap[In, Out any](ctx context.Context, input hofs.Result[In],
	onSuccess func(ctx context.Context, r In) Out) future.Future[hofs.Result[Out]] {

	if input.IsFailure() {
		return future.Resolved(hofs.FailureFrom[In, Out](input))
	}

	return future.Go(ctx, func(ctx context.Context) hofs.Result[Out] {
		return hofs.Success(onSuccess(ctx, input.Result()))
	})
}

// AsyncTry calls a (Out, error) function and converts a non-nil error to
// failure, or to cancellation when the error stems from the context.
func AsyncTry[In, Out any](ctx context.Context, input hofs.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) future.Future[hofs.Result[Out]] {

	if input.IsFailure() {
		return future.Resolved(hofs.FailureFrom[In, Out](input))
	}

	return future.Go(ctx, func(ctx context.Context) hofs.Result[Out] {
		out, err := onTryExecute(ctx, input.Result())
		if err != nil {
			if hofs.IsCancellationError(err) {
				return hofs.Cancel[Out](err)
			}
			return hofs.Fail[Out](err)
		}
		return hofs.Success(out)
	})
}

// AsyncTee runs a side effect on the successful value and resolves with the
// input unchanged. Failure skips the side effect.
func AsyncTee[T any](ctx context.Context, input hofs.Result[T],
	onSuccess func(ctx context.Context, r T)) future.Future[hofs.Result[T]] {

	if input.IsFailure() {
		return future.Resolved(input)
	}

	return future.Go(ctx, func(ctx context.Context) hofs.Result[T] {
		onSuccess(ctx, input.Result())
		return input
	})
}
