// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package option

import (
	"fmt"
	"iter"
)

// some is the present variant. Its value is fixed at construction.
type some[T any] struct {
	value T
}

// Some returns a defined option holding v.
// Panics with ErrInvalidArgument if v is nil; use [Of] to classify instead.
func Some[T any](v T) Option[T] {
	if isMissing(v) {
		fail("Some", ErrInvalidArgument, "value must not be nil")
	}
	return some[T]{value: v}
}

func (some[T]) IsDefined() bool { return true }

func (some[T]) IsEmpty() bool { return false }

func (o some[T]) Get() T { return o.value }

func (o some[T]) Value() (T, bool) { return o.value, true }

func (o some[T]) GetOrElse(T) T { return o.value }

// GetOrCall ignores f but still rejects a nil f.
func (o some[T]) GetOrCall(f func() T) T {
	mustFunc("GetOrCall", f == nil)
	return o.value
}

// GetOrThrow ignores err but still rejects a nil err.
func (o some[T]) GetOrThrow(err error) (T, error) {
	if err == nil {
		return o.value, &Error{Op: "GetOrThrow", Err: ErrInvalidArgument, Msg: "error must not be nil"}
	}
	return o.value, nil
}

func (o some[T]) OrElse(Option[T]) Option[T] { return o }

func (o some[T]) ForAll(f func(T)) Option[T] {
	mustFunc("ForAll", f == nil)
	f(o.value)
	return o
}

// Map wraps f's result directly; a nil result is still a defined option.
func (o some[T]) Map(f func(T) T) Option[T] {
	mustFunc("Map", f == nil)
	return some[T]{value: f(o.value)}
}

func (o some[T]) FlatMap(f func(T) Option[T]) Option[T] {
	mustFunc("FlatMap", f == nil)
	r := f(o.value)
	if isNilOption(r) {
		fail("FlatMap", ErrContractViolation, "function must return an Option; did you mean Map?")
	}
	return r
}

func (o some[T]) Filter(f func(T) bool) Option[T] {
	mustFunc("Filter", f == nil)
	if f(o.value) {
		return o
	}
	return none[T]{}
}

func (o some[T]) FilterNot(f func(T) bool) Option[T] {
	mustFunc("FilterNot", f == nil)
	if !f(o.value) {
		return o
	}
	return none[T]{}
}

func (o some[T]) Select(v T) Option[T] {
	if strictEqual(v, o.value) {
		return o
	}
	return none[T]{}
}

func (o some[T]) Reject(v T) Option[T] {
	if strictEqual(v, o.value) {
		return none[T]{}
	}
	return o
}

func (o some[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		yield(o.value)
	}
}

func (o some[T]) String() string {
	return fmt.Sprintf("Some(%v)", o.value)
}

func (o some[T]) resolve() Option[T] { return o }
