package maxima

import "fmt"

// Point pairs an argument with the function's value at that argument.
//
// Points are immutable and are handed out by a Function only.
type Point[A, V any] struct {
	arg   A
	value V
}

// Arg returns the argument of p.
func (p Point[A, V]) Arg() A {
	return p.arg
}

// Value returns the value of p.
func (p Point[A, V]) Value() V {
	return p.value
}

func (p Point[A, V]) String() string {
	return fmt.Sprintf("(%v,%v)", p.arg, p.value)
}
