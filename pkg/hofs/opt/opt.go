package opt

import (
	"context"

	"github.com/ib-77/ahofs/pkg/hofs"
	"github.com/ib-77/ahofs/pkg/hofs/future"
)

// AsyncMap applies onSome to the contained value in its own goroutine and
// resolves with the mapped option. An absent input resolves immediately:
// onSome is never invoked and no goroutine is started.
func AsyncMap[In, Out any](ctx context.Context, input hofs.Option[In],
	onSome func(ctx context.Context, v In) Out) future.Future[hofs.Option[Out]] {

	if input.IsNone() {
		return future.Resolved(hofs.NoneFrom[In, Out](input))
	}

	return future.Go(ctx, func(ctx context.Context) hofs.Option[Out] {
		return hofs.Some(onSome(ctx, input.Value()))
	})
}

// AsyncAndThen chains onSome over the contained value; the resolved option is
// exactly the one onSome produces. Absence passes through without invoking
// onSome.
func AsyncAndThen[In, Out any](ctx context.Context, input hofs.Option[In],
	onSome func(ctx context.Context, v In) hofs.Option[Out]) future.Future[hofs.Option[Out]] {

	if input.IsNone() {
		return future.Resolved(hofs.NoneFrom[In, Out](input))
	}

	return future.Go(ctx, func(ctx context.Context) hofs.Option[Out] {
		return onSome(ctx, input.Value())
	})
}

// AsyncFilter keeps the contained value only when predicate holds. Absence
// passes through untouched.
func AsyncFilter[T any](ctx context.Context, input hofs.Option[T],
	predicate func(ctx context.Context, v T) bool) future.Future[hofs.Option[T]] {

	if input.IsNone() {
		return future.Resolved(input)
	}

	return future.Go(ctx, func(ctx context.Context) hofs.Option[T] {
		if predicate(ctx, input.Value()) {
			return input
		}
		return hofs.NoneFrom[T, T](input)
	})
}
