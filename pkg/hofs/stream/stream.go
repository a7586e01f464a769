package stream

import (
	"context"

	"github.com/ib-77/ahofs/pkg/hofs"
	"github.com/ib-77/ahofs/pkg/hofs/future"
	"github.com/ib-77/ahofs/pkg/hofs/res"
)

// Map applies f to every element of in, strictly one at a time: the next
// element is not taken until the previous computation has completed and its
// result has been emitted.
func Map[In, Out any](ctx context.Context, in <-chan In,
	f func(ctx context.Context, v In) Out) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				return
			case v, ok := <-in:
				if !ok {
					return
				}

				mapped := f(ctx, v)

				select {
				case out <- mapped:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}

// MapResults lifts res.AsyncMap over a channel of results, sequentially.
// Failed elements pass through without invoking f.
func MapResults[In, Out any](ctx context.Context, in <-chan hofs.Result[In],
	f func(ctx context.Context, v In) Out) <-chan hofs.Result[Out] {

	return Map(ctx, in, func(ctx context.Context, r hofs.Result[In]) hofs.Result[Out] {
		return awaited(ctx, res.AsyncMap(ctx, r, f))
	})
}

// AndThenResults lifts res.AsyncAndThen over a channel of results,
// sequentially. Failed elements pass through without invoking f.
func AndThenResults[In, Out any](ctx context.Context, in <-chan hofs.Result[In],
	f func(ctx context.Context, v In) hofs.Result[Out]) <-chan hofs.Result[Out] {

	return Map(ctx, in, func(ctx context.Context, r hofs.Result[In]) hofs.Result[Out] {
		return awaited(ctx, res.AsyncAndThen(ctx, r, f))
	})
}

// TryResults lifts res.AsyncTry over a channel of results, sequentially.
func TryResults[In, Out any](ctx context.Context, in <-chan hofs.Result[In],
	f func(ctx context.Context, v In) (Out, error)) <-chan hofs.Result[Out] {

	return Map(ctx, in, func(ctx context.Context, r hofs.Result[In]) hofs.Result[Out] {
		return awaited(ctx, res.AsyncTry(ctx, r, f))
	})
}

// awaited drives one pending element to completion, turning an interrupted
// await into a cancelled result.
func awaited[Out any](ctx context.Context, f future.Future[hofs.Result[Out]]) hofs.Result[Out] {
	out, err := f.Await(ctx)
	if err != nil {
		return hofs.Cancel[Out](err)
	}
	return out
}
