package index

import "fmt"

// LessFunc reports whether x orders strictly before y.
//
// It must implement a strict weak ordering. A non-nil error aborts the
// operation in progress; the tree is left as it was before the call.
type LessFunc[T any] func(x, y T) (bool, error)

// Config configures an ordered tree.
type Config[T any] struct {
	// Less orders the items of the tree.
	Less LessFunc[T]
}

func (cfg Config[T]) normalized() Config[T] {
	return cfg
}

func (cfg Config[T]) validate() error {
	cfg = cfg.normalized()
	if cfg.Less == nil {
		return fmt.Errorf("%w: less function is required", ErrInvalidConfig)
	}
	return nil
}
