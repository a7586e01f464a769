package stream

import (
	"context"

	"github.com/ib-77/ahofs/pkg/hofs"
)

// ToChan feeds values into a channel, stopping early when ctx ends.
func ToChan[T any](ctx context.Context, values ...T) <-chan T {
	in := make(chan T)

	go func() {
		defer close(in)

		for _, v := range values {
			select {
			case in <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// ToChanResults feeds values into a channel as successful results.
func ToChanResults[T any](ctx context.Context, values ...T) <-chan hofs.Result[T] {
	in := make(chan hofs.Result[T])

	go func() {
		defer close(in)

		for _, v := range values {
			select {
			case in <- hofs.Success(v):
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// FromChan collects the channel into a slice until it closes or ctx ends.
func FromChan[T any](ctx context.Context, out <-chan T) []T {
	res := make([]T, 0)

	for {
		select {
		case v, ok := <-out:
			if !ok {
				return res
			}
			res = append(res, v)
		case <-ctx.Done():
			return res
		}
	}
}

// FromChanFirst returns the first value of the channel, or defaultV when the
// channel closes empty or ctx ends first.
func FromChanFirst[T any](ctx context.Context, out <-chan T, defaultV T) T {
	select {
	case v, ok := <-out:
		if !ok {
			return defaultV
		}
		return v
	case <-ctx.Done():
		return defaultV
	}
}
