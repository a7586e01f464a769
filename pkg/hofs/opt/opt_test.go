package opt

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/ib-77/ahofs/pkg/hofs"
)

func TestAsyncMap_Some(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out, err := AsyncMap(ctx, hofs.Some(1),
		func(ctx context.Context, x int) int { return x + 2 }).Await(ctx)

	if err != nil {
		t.Fatalf("unexpected await error: %v", err)
	}
	if !out.IsSome() || out.Value() != 3 {
		t.Fatalf("expected Some(3), got: some=%v, val=%v", out.IsSome(), out.Value())
	}
}

func TestAsyncMap_None_NeverInvokesAndNeverSuspends(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	var calls atomic.Int32

	f := AsyncMap(ctx, hofs.None[int](), func(ctx context.Context, x int) int {
		calls.Add(1)
		return x + 2
	})

	if !f.IsResolved() {
		t.Fatalf("expected absent input to resolve immediately")
	}
	out, ok := f.TryGet()
	if !ok || !out.IsNone() {
		t.Fatalf("expected immediate None, got: ok=%v, some=%v", ok, out.IsSome())
	}
	if calls.Load() != 0 {
		t.Fatalf("expected mapper not to be invoked, got %d calls", calls.Load())
	}
}

func TestAsyncMap_InvokedExactlyOnce(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	var calls atomic.Int32

	out := AsyncMap(ctx, hofs.Some(10), func(ctx context.Context, x int) int {
		calls.Add(1)
		return x * x
	}).Wait()

	if !out.IsSome() || out.Value() != 100 {
		t.Fatalf("expected Some(100), got: some=%v, val=%v", out.IsSome(), out.Value())
	}
	if calls.Load() != 1 {
		t.Fatalf("expected exactly one invocation, got %d", calls.Load())
	}
}

func TestAsyncMap_Identity(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	identity := func(ctx context.Context, x int) int { return x }

	some := AsyncMap(ctx, hofs.Some(9), identity).Wait()
	if !some.IsSome() || some.Value() != 9 {
		t.Fatalf("expected identity to preserve Some(9), got: some=%v, val=%v", some.IsSome(), some.Value())
	}

	none := AsyncMap(ctx, hofs.None[int](), identity).Wait()
	if !none.IsNone() {
		t.Fatalf("expected identity to preserve None")
	}
}

func TestAsyncAndThen_SomeToSome(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := AsyncAndThen(ctx, hofs.Some(4),
		func(ctx context.Context, x int) hofs.Option[string] {
			return hofs.Some("ok")
		}).Wait()

	if !out.IsSome() || out.Value() != "ok" {
		t.Fatalf("expected Some('ok'), got: some=%v, val=%q", out.IsSome(), out.Value())
	}
}

func TestAsyncAndThen_SomeToNone(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := AsyncAndThen(ctx, hofs.Some(4),
		func(ctx context.Context, x int) hofs.Option[string] {
			return hofs.None[string]()
		}).Wait()

	if !out.IsNone() {
		t.Fatalf("expected None when the chained function drops the value")
	}
}

func TestAsyncAndThen_None_ShortCircuits(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	var calls atomic.Int32

	f := AsyncAndThen(ctx, hofs.None[int](),
		func(ctx context.Context, x int) hofs.Option[string] {
			calls.Add(1)
			return hofs.Some("never")
		})

	if !f.IsResolved() {
		t.Fatalf("expected absent input to resolve immediately")
	}
	if out := f.Wait(); !out.IsNone() {
		t.Fatalf("expected None")
	}
	if calls.Load() != 0 {
		t.Fatalf("expected chained function not to be invoked, got %d calls", calls.Load())
	}
}

func TestAsyncFilter_Keeps(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := AsyncFilter(ctx, hofs.Some(8),
		func(ctx context.Context, x int) bool { return x%2 == 0 }).Wait()

	if !out.IsSome() || out.Value() != 8 {
		t.Fatalf("expected Some(8), got: some=%v, val=%v", out.IsSome(), out.Value())
	}
}

func TestAsyncFilter_Drops(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := AsyncFilter(ctx, hofs.Some(7),
		func(ctx context.Context, x int) bool { return x%2 == 0 }).Wait()

	if !out.IsNone() {
		t.Fatalf("expected None for rejected value")
	}
}

func TestAsyncFilter_None_PassesThrough(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	var calls atomic.Int32

	f := AsyncFilter(ctx, hofs.None[int](), func(ctx context.Context, x int) bool {
		calls.Add(1)
		return true
	})

	if !f.IsResolved() {
		t.Fatalf("expected absent input to resolve immediately")
	}
	if calls.Load() != 0 {
		t.Fatalf("expected predicate not to be invoked, got %d calls", calls.Load())
	}
}
