package maybe

import "golang.org/x/exp/constraints"

// Equality of optionals. Two known instances are equal iff their wrapped
// values are equal; unknown instances of the same element type are all
// equal to each other and unequal to every known instance. (Native `==`
// on Maybe[T] behaves identically, since absent instances hold the zero
// value of T; Equal exists for use as a function value and for
// documentation of the policy.)

// Equal reports whether a and b wrap equal values or are both unknown.
func Equal[T comparable](a, b Maybe[T]) bool {
	if a.known != b.known {
		return false
	}
	if !a.known {
		return true
	}
	return a.value == b.value
}

// Compare orders optionals: an unknown instance sorts before every known
// one, two known instances compare by their wrapped values. The result
// is -1, 0 or +1, suitable for slices.SortFunc and friends.
func Compare[T constraints.Ordered](a, b Maybe[T]) int {
	switch {
	case !a.known && !b.known:
		return 0
	case !a.known:
		return -1
	case !b.known:
		return +1
	case a.value < b.value:
		return -1
	case a.value > b.value:
		return +1
	}
	return 0
}
