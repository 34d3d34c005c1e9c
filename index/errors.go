package index

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("index: invalid configuration")
	// ErrCorrupt signals a violated structural invariant, as reported by Check.
	ErrCorrupt = errors.New("index: invariant violated")
)
