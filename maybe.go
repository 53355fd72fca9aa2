/*
Package maybe provides an optional-value container.

The aim of the Maybe type is to avoid using nil references and ad-hoc
sentinel values for "this value may not exist". A Maybe[T] represents a
possibly non-existent value of type T and makes it impossible (without
deliberate effort to circumvent the API) to use the value when it does
not exist. Typical producers of Maybe values are lookups, parsers and
configuration resolution; consumers chain combinators to transform the
value, substitute a default, or extract it while deciding what happens
in the absent case.

A Maybe is always in exactly one of two states:

▪︎ known — it wraps an actual value of type T

▪︎ unknown — it wraps nothing

Instances are immutable once constructed; combinators produce new
instances. Because of this, Maybe values may be shared between
goroutines without coordination.

Absent instances carry the zero value of T internally, therefore native
`==` on Maybe[T] (for comparable T) agrees with Equal: all unknown
instances of the same element type are equal to each other and unequal
to every known instance. The same holds for map-key hashing.

Extraction which must not fail silently is done with OtherwiseFail,
which takes a deferred error supplier; sister package supply provides
ready-made suppliers.

# Status

The API is stable. Collection helpers beyond the zero-or-one iterator
are out of scope.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package maybe

import (
	"errors"
	"fmt"
	"iter"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'maybe'
func tracer() tracing.Trace {
	return tracing.Select("maybe")
}

// Maybe is a container for a possibly non-existent value of type T.
// The zero value of Maybe is the unknown (absent) instance.
type Maybe[T any] struct {
	value T
	known bool
}

// --- Construction ----------------------------------------------------------

// Definitely wraps a value which is known to exist.
func Definitely[T any](value T) Maybe[T] {
	return Maybe[T]{value: value, known: true}
}

// Unknown returns an absent instance, i.e. a Maybe wrapping no value.
func Unknown[T any]() Maybe[T] {
	return Maybe[T]{}
}

// Nothing is synonymous with Unknown.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// Of wraps a possibly absent external value. A nil pointer input yields
// an unknown instance, otherwise the pointee is wrapped as known.
// Note that a pointer to a zero value is a present value: unknown and
// "present but empty" are distinct unless the caller collapses them here.
func Of[T any](p *T) Maybe[T] {
	if p == nil {
		return Unknown[T]()
	}
	return Definitely(*p)
}

// FromOk bridges the comma-ok protocol of map lookups and type
// assertions:
//
//	v, ok := registry[key]
//	m := maybe.FromOk(v, ok)
func FromOk[T any](value T, ok bool) Maybe[T] {
	if !ok {
		return Unknown[T]()
	}
	return Definitely(value)
}

// --- Observers -------------------------------------------------------------

// IsKnown returns true if a value is wrapped, false for an absent instance.
func (m Maybe[T]) IsKnown() bool {
	return m.known
}

// IsEmpty is the negation of IsKnown.
func (m Maybe[T]) IsEmpty() bool {
	return !m.known
}

func (m Maybe[T]) String() string {
	if !m.known {
		return "unknown"
	}
	return fmt.Sprintf("definitely %v", m.value)
}

// --- Combinators -----------------------------------------------------------

// Otherwise returns the wrapped value if known, otherwise the given
// default value.
func (m Maybe[T]) Otherwise(defaultValue T) T {
	if m.known {
		return m.value
	}
	return defaultValue
}

// OtherwiseMaybe returns m if known, otherwise the given default Maybe.
// This allows fallback sources to be chained:
//
//	fromFlag.OtherwiseMaybe(fromEnv).OtherwiseMaybe(fromFile)
func (m Maybe[T]) OtherwiseMaybe(defaultMaybe Maybe[T]) Maybe[T] {
	if m.known {
		return m
	}
	return defaultMaybe
}

// Map applies f to the wrapped value, if any, and wraps the result.
// An unknown instance stays unknown and f is guaranteed not to be
// invoked (f may be partial, valid for the present case only).
// For transforms changing the element type, see function To.
func (m Maybe[T]) Map(f func(T) T) Maybe[T] {
	if !m.known {
		return m
	}
	return Definitely(f(m.value))
}

// Query applies predicate p to the wrapped value, if any. An unknown
// instance yields an unknown result, keeping "no value to test"
// distinct from "tested false"; p is not invoked then.
func (m Maybe[T]) Query(p func(T) bool) Maybe[bool] {
	if !m.known {
		return Unknown[bool]()
	}
	return Definitely(p(m.value))
}

// To applies f to the wrapped value of m, if any, and wraps the result.
// An unknown input yields an unknown Maybe[U] and f is not invoked.
//
// To is a free function because Go methods cannot introduce additional
// type parameters; for element-type-preserving transforms the Map
// method reads better.
func To[T, U any](m Maybe[T], f func(T) U) Maybe[U] {
	if !m.known {
		return Unknown[U]()
	}
	return Definitely(f(m.value))
}

// AndThen chains a computation which itself may fail to produce a
// result. An unknown input short-circuits and f is not invoked.
func AndThen[T, U any](m Maybe[T], f func(T) Maybe[U]) Maybe[U] {
	if !m.known {
		return Unknown[U]()
	}
	return f(m.value)
}

// --- Iteration -------------------------------------------------------------

// Range returns a lazy sequence of the wrapped value: one element if
// known, no elements if unknown. This lets a Maybe be consumed by any
// code ranging over a zero-or-one sequence without special-casing:
//
//	for v := range m.Range() { … }
func (m Maybe[T]) Range() iter.Seq[T] {
	return func(yield func(T) bool) {
		if m.known {
			yield(m.value)
		}
	}
}

// --- Fail-fast extraction --------------------------------------------------

// ErrSupplierFailure reports that an error supplier passed to
// OtherwiseFail misbehaved: it was nil, panicked, or yielded a nil
// error. This is a configuration error in the calling code, distinct
// from the absence condition the supplier was meant to signal, and is
// never converted to a default value. Check with errors.Is.
var ErrSupplierFailure = errors.New("error supplier failure")

// OtherwiseFail returns the wrapped value if known; the supplier is not
// invoked then. For an unknown instance it invokes the supplier and
// fails with the error produced. Package supply provides ready-made
// suppliers:
//
//	addr, err := maybeAddr.OtherwiseFail(supply.Text("no address configured"))
//
// A misbehaving supplier is reported via ErrSupplierFailure.
func (m Maybe[T]) OtherwiseFail(supplier func() error) (T, error) {
	if m.known {
		return m.value, nil
	}
	tracer().Debugf("extraction from unknown value, failing")
	return m.value, invokeSupplier(supplier)
}

// OtherwiseError returns the wrapped value if known, otherwise it fails
// with the given ready-made error. A nil err is a supplier failure, not
// a license to succeed.
func (m Maybe[T]) OtherwiseError(err error) (T, error) {
	if m.known {
		return m.value, nil
	}
	tracer().Debugf("extraction from unknown value, failing")
	if err == nil {
		return m.value, fmt.Errorf("nil error given for absent value: %w", ErrSupplierFailure)
	}
	return m.value, err
}

// invokeSupplier guards the call into client-provided supplier code.
// Supplier misbehavior must surface as ErrSupplierFailure, never as
// success and never as the client's intended error kind.
func invokeSupplier(supplier func() error) (err error) {
	if supplier == nil {
		tracer().Errorf("nil error supplier given for absent value")
		return fmt.Errorf("nil error supplier given for absent value: %w", ErrSupplierFailure)
	}
	defer func() {
		if r := recover(); r != nil {
			tracer().Errorf("error supplier panicked: %v", r)
			err = fmt.Errorf("error supplier panicked (%v): %w", r, ErrSupplierFailure)
		}
	}()
	if err = supplier(); err == nil {
		tracer().Errorf("error supplier produced a nil error")
		err = fmt.Errorf("error supplier produced a nil error: %w", ErrSupplierFailure)
	}
	return err
}
