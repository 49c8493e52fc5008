// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package option

// Of lifts a value into an option.
// A nil pointer, interface, map, slice, channel or func becomes None;
// every other value becomes Some.
func Of[T any](v T) Option[T] {
	if isMissing(v) {
		return none[T]{}
	}
	return some[T]{value: v}
}

// OfUnless is Of with an additional empty marker.
// v becomes None when it is nil or the same value as empty. Floats compare
// with same-value semantics: NaN matches NaN, -0 does not match +0.
func OfUnless[T comparable](v, empty T) Option[T] {
	if isMissing(v) || sameValue(v, empty) {
		return none[T]{}
	}
	return some[T]{value: v}
}

// Ensure returns v unchanged when it already is an Option[T], classifies it
// through Of when it holds a T, and returns None for untyped nil.
// Any other value panics with ErrInvalidArgument.
func Ensure[T any](v any) Option[T] {
	switch x := v.(type) {
	case Option[T]:
		return x
	case T:
		return Of(x)
	case nil:
		return none[T]{}
	}
	fail("Ensure", ErrInvalidArgument, "value is neither an Option nor the element type")
	panic("unreachable")
}

// FromReturn calls f once, synchronously, and classifies the result through Of.
func FromReturn[T any](f func() T) Option[T] {
	mustFunc("FromReturn", f == nil)
	return Of(f())
}

// FromCall calls f once with args and classifies the result through Of.
func FromCall[A, T any](f func(...A) T, args ...A) Option[T] {
	mustFunc("FromCall", f == nil)
	return Of(f(args...))
}

// IsOption reports whether v is an option of any element type:
// a defined or empty option, or a *Lazy.
func IsOption(v any) bool {
	_, ok := v.(variant)
	return ok
}

// variant is implemented by every type of this package that satisfies
// Option for some element type.
type variant interface {
	isVariant()
}

func (some[T]) isVariant() {}
func (none[T]) isVariant() {}
func (*Lazy[T]) isVariant() {}
