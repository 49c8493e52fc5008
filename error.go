// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package option

import (
	"errors"
	"fmt"
)

// Error taxonomy.
// Every failure is a precondition violation by the caller; nothing is retried.

var (
	// ErrInvalidArgument reports a nil callback, a nil error, or a nil Option
	// where a usable one is required.
	ErrInvalidArgument = errors.New("option: invalid argument")

	// ErrEmptyValue reports Get on an empty option.
	ErrEmptyValue = errors.New("option: empty value access")

	// ErrContractViolation reports a callback that broke a structural promise,
	// such as a FlatMap function or Lazy callback returning a nil Option.
	ErrContractViolation = errors.New("option: contract violation")
)

// Error describes a failed operation.
// Op names the operation, Err is one of the sentinel errors above.
type Error struct {
	Op  string
	Err error
	Msg string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("%v (%s)", e.Err, e.Op)
	}
	return fmt.Sprintf("%v (%s): %s", e.Err, e.Op, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// fail panics with an *Error.
// Misuse is a programming error and surfaces immediately at the call site.
func fail(op string, err error, msg string) {
	panic(&Error{Op: op, Err: err, Msg: msg})
}

// mustFunc panics with ErrInvalidArgument when f is nil.
func mustFunc(op string, isNil bool) {
	if isNil {
		fail(op, ErrInvalidArgument, "callback must not be nil")
	}
}

// Try runs f and converts an *Error panic raised by this package into an
// error return. Other panics propagate unchanged.
func Try[A any](f func() A) (a A, err error) {
	if f == nil {
		return a, &Error{Op: "Try", Err: ErrInvalidArgument, Msg: "callback must not be nil"}
	}
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(*Error)
			if !ok {
				panic(r)
			}
			err = e
		}
	}()
	return f(), nil
}
