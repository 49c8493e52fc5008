// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package option

import "iter"

// none is the absent variant. It is zero-sized; every instance is
// interchangeable with every other.
type none[T any] struct{}

// None returns the empty option.
func None[T any]() Option[T] { return none[T]{} }

func (none[T]) IsDefined() bool { return false }

func (none[T]) IsEmpty() bool { return true }

func (none[T]) Get() T {
	fail("Get", ErrEmptyValue, "None has no value")
	panic("unreachable")
}

func (none[T]) Value() (T, bool) {
	var zero T
	return zero, false
}

func (none[T]) GetOrElse(d T) T { return d }

func (none[T]) GetOrCall(f func() T) T {
	mustFunc("GetOrCall", f == nil)
	return f()
}

func (none[T]) GetOrThrow(err error) (T, error) {
	var zero T
	if err == nil {
		return zero, &Error{Op: "GetOrThrow", Err: ErrInvalidArgument, Msg: "error must not be nil"}
	}
	return zero, err
}

func (none[T]) OrElse(alt Option[T]) Option[T] {
	if isNilOption(alt) {
		fail("OrElse", ErrInvalidArgument, "alternative must be an Option")
	}
	return alt
}

func (o none[T]) ForAll(func(T)) Option[T] { return o }

func (o none[T]) Map(func(T) T) Option[T] { return o }

func (o none[T]) FlatMap(func(T) Option[T]) Option[T] { return o }

func (o none[T]) Filter(func(T) bool) Option[T] { return o }

func (o none[T]) FilterNot(func(T) bool) Option[T] { return o }

func (o none[T]) Select(T) Option[T] { return o }

func (o none[T]) Reject(T) Option[T] { return o }

func (none[T]) All() iter.Seq[T] {
	return func(func(T) bool) {}
}

func (none[T]) String() string { return "None()" }

func (o none[T]) resolve() Option[T] { return o }
