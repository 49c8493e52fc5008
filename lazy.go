// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package option

import (
	"iter"
	"slices"
	"sync"
	"sync/atomic"
)

// Lazy is an option whose contents are computed on first use.
//
// The callback runs at most once, on the first call to any Option method
// other than String and IsResolved. Its result is cached for the lifetime of
// the Lazy; every combinator delegates to that result and returns the result's
// own option, never another Lazy.
//
// Forcing is safe for concurrent use: concurrent callers block until the
// single evaluation finishes. If the callback panics, the panic is cached and
// raised again on every later use; the callback is not retried.
type Lazy[T any] struct {
	resolved atomic.Bool
	result   Option[T]
	force    func() Option[T]
}

// NewLazy creates an unresolved Lazy. f is not called until the Lazy is used
// and must return a non-nil Option.
// Panics with ErrInvalidArgument if f is nil.
func NewLazy[T any](f func() Option[T]) *Lazy[T] {
	mustFunc("NewLazy", f == nil)
	l := &Lazy[T]{}
	l.force = sync.OnceValue(func() Option[T] {
		r := f()
		if isNilOption(r) {
			fail("Lazy", ErrContractViolation, "callback must return an Option")
		}
		l.result = r
		l.resolved.Store(true)
		return r
	})
	return l
}

// LazyCall creates an unresolved Lazy that calls f with args when forced.
// args is copied; later changes to the caller's slice are not observed.
func LazyCall[A, T any](f func(...A) Option[T], args ...A) *Lazy[T] {
	mustFunc("LazyCall", f == nil)
	bound := slices.Clone(args)
	return NewLazy(func() Option[T] {
		return f(bound...)
	})
}

// IsResolved reports whether the callback has completed. It never forces.
func (l *Lazy[T]) IsResolved() bool {
	return l != nil && l.resolved.Load()
}

// eval forces l and returns the cached option.
func (l *Lazy[T]) eval() Option[T] {
	if l == nil || l.force == nil {
		fail("Lazy", ErrInvalidArgument, "Lazy must be created with NewLazy or LazyCall")
	}
	return l.force()
}

func (l *Lazy[T]) IsDefined() bool { return l.eval().IsDefined() }

func (l *Lazy[T]) IsEmpty() bool { return l.eval().IsEmpty() }

func (l *Lazy[T]) Get() T { return l.eval().Get() }

func (l *Lazy[T]) Value() (T, bool) { return l.eval().Value() }

func (l *Lazy[T]) GetOrElse(d T) T { return l.eval().GetOrElse(d) }

func (l *Lazy[T]) GetOrCall(f func() T) T { return l.eval().GetOrCall(f) }

func (l *Lazy[T]) GetOrThrow(err error) (T, error) { return l.eval().GetOrThrow(err) }

func (l *Lazy[T]) OrElse(alt Option[T]) Option[T] { return l.eval().OrElse(alt) }

func (l *Lazy[T]) ForAll(f func(T)) Option[T] { return l.eval().ForAll(f) }

func (l *Lazy[T]) Map(f func(T) T) Option[T] { return l.eval().Map(f) }

func (l *Lazy[T]) FlatMap(f func(T) Option[T]) Option[T] { return l.eval().FlatMap(f) }

func (l *Lazy[T]) Filter(f func(T) bool) Option[T] { return l.eval().Filter(f) }

func (l *Lazy[T]) FilterNot(f func(T) bool) Option[T] { return l.eval().FilterNot(f) }

func (l *Lazy[T]) Select(v T) Option[T] { return l.eval().Select(v) }

func (l *Lazy[T]) Reject(v T) Option[T] { return l.eval().Reject(v) }

// All forces l when the sequence is first ranged over.
func (l *Lazy[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range l.eval().All() {
			if !yield(v) {
				return
			}
		}
	}
}

// String describes l without forcing it.
func (l *Lazy[T]) String() string {
	if !l.IsResolved() {
		return "Lazy(<unresolved>)"
	}
	return "Lazy(" + l.result.String() + ")"
}

func (l *Lazy[T]) resolve() Option[T] { return l.eval().resolve() }
