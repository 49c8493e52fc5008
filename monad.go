// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package option

import "iter"

// Type-changing combinators.
//
// Go methods cannot introduce type parameters, so the combinators whose result
// element type differs from the input live here as functions. Each accepts any
// Option, forcing a *Lazy first, and never calls its callback on an empty
// option.

// Map applies f to the value of o.
// Map(Some(x), f) is Some(f(x)); Map(None, f) is None and f is not called.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	switch x := mustOption("Map", o).(type) {
	case some[T]:
		mustFunc("Map", f == nil)
		return some[U]{value: f(x.value)}
	default:
		return none[U]{}
	}
}

// FlatMap sequences o with f (monadic bind).
// FlatMap(Some(x), f) is exactly f(x); f must not return nil.
func FlatMap[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	switch x := mustOption("FlatMap", o).(type) {
	case some[T]:
		mustFunc("FlatMap", f == nil)
		r := f(x.value)
		if isNilOption(r) {
			fail("FlatMap", ErrContractViolation, "function must return an Option; did you mean Map?")
		}
		return r
	default:
		return none[U]{}
	}
}

// FoldLeft returns f(init, value) when o is defined, init otherwise.
func FoldLeft[T, A any](o Option[T], init A, f func(A, T) A) A {
	switch x := mustOption("FoldLeft", o).(type) {
	case some[T]:
		mustFunc("FoldLeft", f == nil)
		return f(init, x.value)
	default:
		return init
	}
}

// FoldRight returns f(value, init) when o is defined, init otherwise.
func FoldRight[T, A any](o Option[T], init A, f func(T, A) A) A {
	switch x := mustOption("FoldRight", o).(type) {
	case some[T]:
		mustFunc("FoldRight", f == nil)
		return f(x.value, init)
	default:
		return init
	}
}

// Flatten removes one level of nesting.
// A defined outer option holding a nil inner option is None.
func Flatten[T any](o Option[Option[T]]) Option[T] {
	if x, ok := mustOption("Flatten", o).(some[Option[T]]); ok && !isNilOption(x.value) {
		return x.value
	}
	return none[T]{}
}

// Collect yields the values of the defined options in seq, in order,
// skipping empty ones.
func Collect[T any](seq iter.Seq[Option[T]]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for o := range seq {
			if isNilOption(o) {
				continue
			}
			for v := range o.All() {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// mustOption resolves o to its eager variant, rejecting a nil option.
func mustOption[T any](op string, o Option[T]) Option[T] {
	if isNilOption(o) {
		fail(op, ErrInvalidArgument, "option must not be nil")
	}
	return o.resolve()
}
