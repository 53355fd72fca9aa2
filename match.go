package maybe

// Pattern matching on optionals. The two variants of Maybe are a closed
// set and the tag is not exported; Match offers a switch-friendly
// dispatch instead:
//
//	var v T
//	switch m := x.Match(); m {
//	case m.Just(&v):
//		// v has been bound to the wrapped value
//	case m.Nothing():
//		// x is unknown
//	}
//
// Exactly one of the two cases matches for any Maybe value.

// Matcher dispatches over the two variants of a Maybe.
type Matcher[T any] interface {
	// Just matches a known instance and binds the wrapped value to *v.
	Just(v *T) Matcher[T]
	// Nothing matches an unknown instance.
	Nothing() Matcher[T]
}

// Match returns a Matcher for dispatching over m's variant.
func (m Maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

type matcher[T any] struct {
	m Maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.known {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.known {
		return mm
	}
	return nil
}
