/*
Package supply provides deferred construction of errors.

A Supplier is a zero-argument function producing an error instance only
when invoked. Used in conjunction with Maybe's fail-fast extraction, the
error for the absent case is constructed lazily, avoiding cost and
side effects when the value turns out to be present:

	username, err := maybeUsername.OtherwiseFail(supply.InvalidArgument("missing username"))

Suppliers may be stored and reused across many extractions; each
invocation independently produces a valid error instance.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package supply

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'maybe.supply'
func tracer() tracing.Trace {
	return tracing.Select("maybe.supply")
}

// Supplier produces an error when invoked. Invocation is lazy and may
// be repeated; every invocation must yield a non-nil error.
type Supplier func() error

// --- Generic suppliers -----------------------------------------------------

// Error returns a Supplier for a ready-made error value, typically a
// package-level sentinel. The identical instance is handed out on every
// invocation, which is fine for errors without call-site state.
func Error(err error) Supplier {
	return func() error {
		return err
	}
}

// Text returns a Supplier constructing an error from a message. The
// message is captured now; the error instance is created per invocation.
func Text(msg string) Supplier {
	return func() error {
		return errors.New(msg)
	}
}

// Textf is like Text with a format string. Arguments are captured at
// creation time, not at invocation time.
func Textf(format string, args ...any) Supplier {
	return func() error {
		return fmt.Errorf(format, args...)
	}
}

// Failure returns a Supplier backed by a constructor for a concrete
// error kind E:
//
//	supply.Failure(func() *ParseError { return &ParseError{Pos: pos} })
//
// The constructor runs once per invocation, so errors carrying mutable
// or call-site state are built fresh every time.
func Failure[E error](construct func() E) Supplier {
	return func() error {
		return construct()
	}
}

// Message returns a Supplier backed by a message-accepting constructor
// for a concrete error kind E. The message is captured at creation time.
func Message[E error](construct func(string) E, msg string) Supplier {
	return func() error {
		return construct(msg)
	}
}

// --- Stock suppliers -------------------------------------------------------

// Sentinel errors for the stock suppliers below. Callers match them
// with errors.Is, also when a message was attached.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidState    = errors.New("invalid state")
	ErrNilReference    = errors.New("nil reference")
)

// InvalidArgument returns a Supplier for an invalid-argument error,
// with an optional message. Without a message the sentinel
// ErrInvalidArgument itself is supplied.
func InvalidArgument(msg ...string) Supplier {
	return stock(ErrInvalidArgument, msg)
}

// InvalidState returns a Supplier for an invalid-state error, with an
// optional message. Without a message the sentinel ErrInvalidState
// itself is supplied.
func InvalidState(msg ...string) Supplier {
	return stock(ErrInvalidState, msg)
}

// NilReference returns a Supplier for a nil-reference error, with an
// optional message. Without a message the sentinel ErrNilReference
// itself is supplied.
func NilReference(msg ...string) Supplier {
	return stock(ErrNilReference, msg)
}

func stock(sentinel error, msg []string) Supplier {
	if len(msg) == 0 {
		return Error(sentinel)
	}
	if len(msg) > 1 {
		tracer().Errorf("stock supplier given %d messages, using the first", len(msg))
	}
	m := msg[0]
	return func() error {
		return fmt.Errorf("%w: %s", sentinel, m)
	}
}
