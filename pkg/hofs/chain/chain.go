package chain

import (
	"context"

	"github.com/ib-77/ahofs/pkg/hofs"
	"github.com/ib-77/ahofs/pkg/hofs/future"
	"github.com/ib-77/ahofs/pkg/hofs/res"
)

// Chain wraps a pending hofs.Result with context to enable fluent chaining.
// Every step awaits the previous future inside a new one, so building a chain
// never blocks; only Result/Finally do.
type Chain[T any] struct {
	ctx context.Context
	fut future.Future[hofs.Result[T]]
}

// Start creates a new chain from a hofs.Result
func Start[T any](ctx context.Context, result hofs.Result[T]) Chain[T] {
	return Chain[T]{
		ctx: ctx,
		fut: future.Resolved(result),
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) Chain[T] {
	return Start(ctx, hofs.Success(value))
}

// FromFuture creates a new chain from an already-pending result
func FromFuture[T any](ctx context.Context, f future.Future[hofs.Result[T]]) Chain[T] {
	return Chain[T]{ctx: ctx, fut: f}
}

// Future returns the pending result without awaiting it
func (c Chain[T]) Future() future.Future[hofs.Result[T]] {
	return c.fut
}

// Result awaits the chain. A context ended mid-await surfaces as a cancelled
// result.
func (c Chain[T]) Result() hofs.Result[T] {
	r, err := c.fut.Await(c.ctx)
	if err != nil {
		return hofs.Cancel[T](err)
	}
	return r
}

// Then composes functions that already return hofs.Result[T]
func (c Chain[T]) Then(onSuccess func(ctx context.Context, t T) hofs.Result[T]) Chain[T] {
	return Then(c, onSuccess)
}

// ThenTry composes functions that return (T, error)
func (c Chain[T]) ThenTry(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	return ThenTry(c, try)
}

// Map transforms the successful value to a new value
func (c Chain[T]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T] {
	return Map(c, onSuccess)
}

// Ensure performs a side effect on success without changing the result
func (c Chain[T]) Ensure(onSuccess func(ctx context.Context, t T)) Chain[T] {
	return Chain[T]{
		ctx: c.ctx,
		fut: future.Go(c.ctx, func(ctx context.Context) hofs.Result[T] {
			return step(ctx, c.fut, func(in hofs.Result[T]) future.Future[hofs.Result[T]] {
				return res.AsyncTee(ctx, in, onSuccess)
			})
		}),
	}
}

// Finally collapses the chain into a final value via handlers
func Finally[T, Out any](c Chain[T],
	onSuccess func(ctx context.Context, t T) Out,
	onFailure func(ctx context.Context, err error) Out,
	onCancel func(ctx context.Context, err error) Out) Out {

	in := c.Result()

	if in.IsSuccess() {
		return onSuccess(c.ctx, in.Result())
	}
	if in.IsCancel() {
		return onCancel(c.ctx, in.Err())
	}
	return onFailure(c.ctx, in.Err())
}

// Then chains a function that returns hofs.Result[U]
func Then[T, U any](c Chain[T], onSuccess func(ctx context.Context, t T) hofs.Result[U]) Chain[U] {
	return Chain[U]{
		ctx: c.ctx,
		fut: future.Go(c.ctx, func(ctx context.Context) hofs.Result[U] {
			return step(ctx, c.fut, func(in hofs.Result[T]) future.Future[hofs.Result[U]] {
				return res.AsyncAndThen(ctx, in, onSuccess)
			})
		}),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c Chain[T], try func(ctx context.Context, t T) (U, error)) Chain[U] {
	return Chain[U]{
		ctx: c.ctx,
		fut: future.Go(c.ctx, func(ctx context.Context) hofs.Result[U] {
			return step(ctx, c.fut, func(in hofs.Result[T]) future.Future[hofs.Result[U]] {
				return res.AsyncTry(ctx, in, try)
			})
		}),
	}
}

// Map chains a pure transformation function
func Map[T, U any](c Chain[T], onSuccess func(ctx context.Context, t T) U) Chain[U] {
	return Chain[U]{
		ctx: c.ctx,
		fut: future.Go(c.ctx, func(ctx context.Context) hofs.Result[U] {
			return step(ctx, c.fut, func(in hofs.Result[T]) future.Future[hofs.Result[U]] {
				return res.AsyncMap(ctx, in, onSuccess)
			})
		}),
	}
}

// awaited resolves the previous step, turning an interrupted await into a
// cancelled result.
func awaited[T any](ctx context.Context, f future.Future[hofs.Result[T]]) hofs.Result[T] {
	in, err := f.Await(ctx)
	if err != nil {
		return hofs.Cancel[T](err)
	}
	return in
}

func step[T, U any](ctx context.Context, prev future.Future[hofs.Result[T]],
	apply func(in hofs.Result[T]) future.Future[hofs.Result[U]]) hofs.Result[U] {

	in := awaited(ctx, prev)
	out, err := apply(in).Await(ctx)
	if err != nil {
		return hofs.Cancel[U](err)
	}
	return out
}
