package wait

import (
	"context"
	"reflect"
)

// Predicate decides whether an attempt's result ends the poll run
// successfully.
type Predicate[T any] func(T) bool

// Not inverts a predicate.
func Not[T any](pred Predicate[T]) Predicate[T] {
	return func(v T) bool {
		return !pred(v)
	}
}

// Truthy is satisfied by any value other than the zero value of its
// type: true, non-zero numbers, non-empty strings, non-nil pointers and
// so on.
func Truthy[T any]() Predicate[T] {
	return func(v T) bool {
		return isTruthy(v)
	}
}

// Falsy is satisfied by the zero value of the result's type.
func Falsy[T any]() Predicate[T] {
	return Not(Truthy[T]())
}

// EqualTo is satisfied by values deeply equal to want.
func EqualTo[T any](want T) Predicate[T] {
	return func(v T) bool {
		return reflect.DeepEqual(v, want)
	}
}

// NotEqualTo is satisfied by values not deeply equal to want.
func NotEqualTo[T any](want T) Predicate[T] {
	return Not(EqualTo(want))
}

// IsTrue is satisfied only by the boolean value true. A truthy
// non-boolean result, such as the number 1, does not satisfy it.
func IsTrue[T any]() Predicate[T] {
	return func(v T) bool {
		b, ok := any(v).(bool)
		return ok && b
	}
}

// IsFalse is satisfied only by the boolean value false, not by every
// falsy result.
func IsFalse[T any]() Predicate[T] {
	return func(v T) bool {
		b, ok := any(v).(bool)
		return ok && !b
	}
}

// IsNone is satisfied by nil results: nil interfaces as well as nil
// pointers, maps, slices, channels and functions.
func IsNone[T any]() Predicate[T] {
	return func(v T) bool {
		return isNil(v)
	}
}

// NotNone is satisfied by any non-nil result.
func NotNone[T any]() Predicate[T] {
	return Not(IsNone[T]())
}

// UntilTruthy polls until the action returns a truthy value.
func (w *Waiter[T]) UntilTruthy(ctx context.Context) (T, error) {
	return w.poll(ctx, Truthy[T]())
}

// UntilFalsy polls until the action returns its type's zero value.
func (w *Waiter[T]) UntilFalsy(ctx context.Context) (T, error) {
	return w.poll(ctx, Falsy[T]())
}

// UntilEqualTo polls until the action returns a value deeply equal to
// want.
func (w *Waiter[T]) UntilEqualTo(ctx context.Context, want T) (T, error) {
	return w.poll(ctx, EqualTo(want))
}

// UntilNotEqualTo polls until the action returns a value not deeply
// equal to want.
func (w *Waiter[T]) UntilNotEqualTo(ctx context.Context, want T) (T, error) {
	return w.poll(ctx, NotEqualTo(want))
}

// UntilTrue polls until the action returns the boolean value true.
func (w *Waiter[T]) UntilTrue(ctx context.Context) (T, error) {
	return w.poll(ctx, IsTrue[T]())
}

// UntilFalse polls until the action returns the boolean value false.
func (w *Waiter[T]) UntilFalse(ctx context.Context) (T, error) {
	return w.poll(ctx, IsFalse[T]())
}

// UntilNone polls until the action returns a nil result.
func (w *Waiter[T]) UntilNone(ctx context.Context) (T, error) {
	return w.poll(ctx, IsNone[T]())
}

// UntilNotNone polls until the action returns a non-nil result.
func (w *Waiter[T]) UntilNotNone(ctx context.Context) (T, error) {
	return w.poll(ctx, NotNone[T]())
}

func isTruthy(v any) bool {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return false
	}
	return !rv.IsZero()
}

func isNil(v any) bool {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
