package hofs

import (
	"context"
	"errors"
	"reflect"
)

func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}

// GetErrors flattens a joined error into its parts, or wraps a plain error
// into a single-element slice.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	if e, ok := err.(interface{ Unwrap() []error }); ok {
		return e.Unwrap()
	}

	return []error{err}
}

// IsCancellationError reports whether err originates from context
// cancellation or an expired deadline.
func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
