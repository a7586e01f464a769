package hofs

import "time"

type ResultProvider[T any] interface {
	// Result returns the successful result value
	Result() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithError defines an interface for types that can return a result or an error
type WithError[T any] interface {
	ResultProvider[T]
	// Err returns the error if operation failed
	Err() error
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
}

// WithCancel extends WithError with cancellation support
type WithCancel[T any] interface {
	WithError[T]
	// IsCancel returns true if the operation was cancelled
	IsCancel() bool
}

// ValueProvider defines an interface for types that may hold a single value
type ValueProvider[T any] interface {
	// Value returns the contained value
	Value() T
	// IsSome returns true if a value is present
	IsSome() bool
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}
