// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package option

import (
	"iter"
	"math"
	"reflect"
)

// Option is the capability set shared by every optional value.
//
// It is implemented by the present variant returned from [Some], the absent
// variant returned from [None], and the deferred [Lazy] wrapper. Callers
// discriminate with IsDefined or IsEmpty; identity is never significant.
//
// Combinators on an empty option return it unchanged and never invoke their
// callback. Type-changing combinators are package functions: [Map],
// [FlatMap], [FoldLeft], [FoldRight].
type Option[T any] interface {
	// IsDefined reports whether a value is present.
	IsDefined() bool
	// IsEmpty reports whether no value is present.
	IsEmpty() bool

	// Get returns the value or panics with ErrEmptyValue.
	Get() T
	// Value returns the value and true, or zero and false.
	Value() (T, bool)
	// GetOrElse returns the value or d.
	GetOrElse(d T) T
	// GetOrCall returns the value or the result of f.
	GetOrCall(f func() T) T
	// GetOrThrow returns the value, or zero and err when empty.
	GetOrThrow(err error) (T, error)
	// OrElse returns the receiver when defined, alt otherwise.
	OrElse(alt Option[T]) Option[T]

	// ForAll calls f with the value for its side effect.
	ForAll(f func(T)) Option[T]
	// Map transforms the value, keeping its type.
	Map(f func(T) T) Option[T]
	// FlatMap returns f(value) unchanged; f must not return nil.
	FlatMap(f func(T) Option[T]) Option[T]
	// Filter keeps the value when f reports true.
	Filter(f func(T) bool) Option[T]
	// FilterNot keeps the value when f reports false.
	FilterNot(f func(T) bool) Option[T]
	// Select keeps the value when it strictly equals v.
	Select(v T) Option[T]
	// Reject drops the value when it strictly equals v.
	Reject(v T) Option[T]

	// All yields the value once when defined, nothing otherwise.
	All() iter.Seq[T]

	String() string

	// resolve returns the eager variant backing this option.
	resolve() Option[T]
}

// isMissing reports whether v is the nil value of a nilable kind.
func isMissing(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// strictEqual compares with == when both dynamic values are comparable.
// Slices, maps, funcs and structs containing them never match.
func strictEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() || !va.Comparable() || !vb.Comparable() {
		return false
	}
	return a == b
}

// isNilOption reports whether o cannot act as an option: a nil interface,
// or a *Lazy that is nil or was not built by NewLazy.
func isNilOption[T any](o Option[T]) bool {
	if o == nil {
		return true
	}
	l, ok := o.(*Lazy[T])
	return ok && (l == nil || l.force == nil)
}

// sameValue is equality in which NaN equals NaN and -0 differs from +0.
// Complex values compare component-wise under the same rule.
func sameValue[T comparable](a, b T) bool {
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.IsValid() && rb.IsValid() && ra.Type() == rb.Type() {
		switch ra.Kind() {
		case reflect.Float32, reflect.Float64:
			return sameFloat(ra.Float(), rb.Float())
		case reflect.Complex64, reflect.Complex128:
			x, y := ra.Complex(), rb.Complex()
			return sameFloat(real(x), real(y)) && sameFloat(imag(x), imag(y))
		}
	}
	return strictEqual(a, b)
}

func sameFloat(x, y float64) bool {
	if math.IsNaN(x) || math.IsNaN(y) {
		return math.IsNaN(x) && math.IsNaN(y)
	}
	return x == y && math.Signbit(x) == math.Signbit(y)
}
