package hofs

import (
	"time"

	"github.com/google/uuid"
)

type Option[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	present   bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{
		value:     v,
		present:   true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func None[T any]() Option[T] {
	return Option[T]{
		present:   false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// NoneFrom carries the absent branch of an Option[In] into an Option[Out],
// keeping the provenance fields of the original container.
func NoneFrom[In, Out any](from Option[In]) Option[Out] {
	return Option[Out]{
		present:   false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (o Option[T]) Value() T {
	return o.value
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

func (o Option[T]) IsSome() bool {
	return o.present
}

func (o Option[T]) IsNone() bool {
	return !o.present
}

// OrElse returns the value when present, otherwise def.
func (o Option[T]) OrElse(def T) T {
	if o.present {
		return o.value
	}
	return def
}

func (o Option[T]) CreatedAt() time.Time {
	return o.createdAt
}

func (o Option[T]) Id() uuid.UUID {
	return o.id
}
