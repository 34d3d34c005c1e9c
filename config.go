package maxima

import (
	"cmp"
	"fmt"
)

// Config configures a Function.
type Config[A, V any] struct {
	// ArgLess orders the domain. Required.
	ArgLess Order[A]
	// ValueLess orders the range. Required.
	ValueLess Order[V]
	// OnCommit, if set, is called after every mutation which changed the
	// function. It is not called for failed or no-op mutations.
	OnCommit func(Change[A, V])
}

func (cfg Config[A, V]) normalized() Config[A, V] {
	return cfg
}

func (cfg Config[A, V]) validate() error {
	cfg = cfg.normalized()
	if cfg.ArgLess == nil {
		return fmt.Errorf("%w: argument order is required", ErrInvalidConfig)
	}
	if cfg.ValueLess == nil {
		return fmt.Errorf("%w: value order is required", ErrInvalidConfig)
	}
	return nil
}

// OrderedConfig returns a configuration using the natural orders of A and V.
func OrderedConfig[A, V cmp.Ordered]() Config[A, V] {
	return Config[A, V]{
		ArgLess:   Less[A](),
		ValueLess: Less[V](),
	}
}
