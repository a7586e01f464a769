package future

import "context"

// Future is a single-value pending computation. It resolves exactly once;
// any number of callers may await it afterwards.
type Future[T any] struct {
	s *state[T]
}

type state[T any] struct {
	done chan struct{}
	val  T
}

// Go starts fn in its own goroutine and returns a Future that resolves with
// its result. The computation begins immediately; Await only waits for it.
func Go[T any](ctx context.Context, fn func(ctx context.Context) T) Future[T] {
	s := &state[T]{done: make(chan struct{})}

	go func() {
		s.val = fn(ctx)
		close(s.done)
	}()

	return Future[T]{s: s}
}

// Resolved returns an already-completed Future. No goroutine is started and
// awaiting it never suspends.
func Resolved[T any](v T) Future[T] {
	s := &state[T]{done: make(chan struct{}), val: v}
	close(s.done)
	return Future[T]{s: s}
}

// Await blocks until the future resolves or ctx ends, whichever comes first.
// A future that is already resolved wins over an already-cancelled context.
func (f Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.s.done:
		return f.s.val, nil
	default:
	}

	select {
	case <-f.s.done:
		return f.s.val, nil
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Wait blocks until the future resolves, ignoring context.
func (f Future[T]) Wait() T {
	<-f.s.done
	return f.s.val
}

// TryGet returns the value without blocking when the future has already
// resolved.
func (f Future[T]) TryGet() (T, bool) {
	select {
	case <-f.s.done:
		return f.s.val, true
	default:
		var zero T
		return zero, false
	}
}

func (f Future[T]) IsResolved() bool {
	select {
	case <-f.s.done:
		return true
	default:
		return false
	}
}
