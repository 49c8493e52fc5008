// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package option provides an optional value type with eager and lazy variants.
//
// An [Option] is either defined, holding exactly one value, or empty. The
// deferred [Lazy] variant postpones computing its option until first used and
// caches the result.
//
// # Design Philosophy
//
// option provides:
//   - One capability set, [Option], implemented by the defined variant, the
//     empty variant and [Lazy]; callers never depend on concrete types
//   - Uniform short-circuiting: every combinator on an empty option returns
//     it unchanged without calling the supplied callback
//   - At-most-once evaluation for [Lazy], safe under concurrent use
//
// # Construction
//
//   - [Some]: Defined option (panics on a nil value)
//   - [None]: Empty option
//   - [Of]: Classify a value; nil pointers, maps, slices, ... become None
//   - [OfUnless]: Classify against an additional empty marker (same-value equality)
//   - [Ensure]: Pass options through, classify everything else
//   - [FromReturn], [FromCall]: Classify the result of an eager call
//   - [IsOption]: Capability check across element types
//
// # Combinators
//
// Methods keep the element type:
//
//   - [Option.Map], [Option.FlatMap]: Functor and monad operations
//   - [Option.Filter], [Option.FilterNot]: Keep or drop by predicate
//   - [Option.Select], [Option.Reject]: Keep or drop by strict equality
//   - [Option.ForAll]: Side effect on the value
//   - [Option.OrElse]: Alternative option
//
// Functions change it:
//
//   - [Map]: Map(Some(x), f) ≡ Some(f(x))
//   - [FlatMap]: FlatMap(Some(x), f) ≡ f(x)
//   - [FoldLeft], [FoldRight]: Reduce with an initial value
//   - [Flatten]: Remove one level of nesting
//   - [Collect]: Values of the defined options in a sequence
//
// # Access
//
//   - [Option.Get]: Value, or panic with [ErrEmptyValue]
//   - [Option.Value]: Comma-ok access
//   - [Option.GetOrElse], [Option.GetOrCall]: Value or fallback
//   - [Option.GetOrThrow]: Value, or the given error
//   - [Option.All]: Range over the zero or one values
//
// # Laziness
//
//   - [NewLazy]: Defer a func() Option[T]
//   - [LazyCall]: Defer a call with bound arguments
//   - [Lazy.IsResolved]: Inspect without forcing
//
// Every [Option] method on a [Lazy] forces it, then delegates to the cached
// result and returns that result's own option. String never forces.
//
// # Errors
//
// Misuse panics with an [*Error] wrapping one of [ErrInvalidArgument],
// [ErrEmptyValue] or [ErrContractViolation]. [Try] converts such a panic into
// an error return.
//
// # Serialization
//
// Options implement json.Marshaler and yaml.Marshaler (None is null).
// [DecodeJSON], [DecodeYAML] and [UnmarshalYAML] decode null to None.
//
// # Example
//
//	o := option.Of("some string").
//		Filter(func(s string) bool { return strings.HasPrefix(s, "s") }).
//		Map(strings.ToUpper)
//	// o.String() == "Some(SOME STRING)"
//
//	l := option.LazyCall(func(v ...int) option.Option[int] {
//		return option.Of(v[0])
//	}, 42)
//	n := l.Filter(func(v int) bool { return v == 42 }).GetOrElse(0)
//	// n == 42, callback invoked once
package option
