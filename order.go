package maxima

import "cmp"

// Order is a strict weak ordering over T: it reports whether x orders
// strictly before y.
//
// An Order may fail. A non-nil error aborts the operation in progress and is
// returned to the caller unchanged, after the Function has been restored to
// its previous state. Orders violating strict weak ordering result in
// undefined behaviour; this is neither detected nor reported.
type Order[T any] func(x, y T) (bool, error)

// Less returns the natural order of an ordered type. It never fails.
func Less[T cmp.Ordered]() Order[T] {
	return func(x, y T) (bool, error) {
		return cmp.Less(x, y), nil
	}
}

// Infallible wraps a plain less-function as an Order.
func Infallible[T any](less func(x, y T) bool) Order[T] {
	return func(x, y T) (bool, error) {
		return less(x, y), nil
	}
}

// equivalent reports whether neither of x and y orders before the other.
func equivalent[T any](less Order[T], x, y T) (bool, error) {
	lt, err := less(x, y)
	if err != nil || lt {
		return false, err
	}
	gt, err := less(y, x)
	if err != nil {
		return false, err
	}
	return !gt, nil
}
