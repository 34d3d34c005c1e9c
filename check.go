package maxima

import "fmt"

// Check validates both indexes and recomputes the maxima from scratch,
// comparing them with the maintained maxima index.
//
// Check compares values and arguments and returns an order's error if it
// fails. It is intended for tests.
func (f *Function[A, V]) Check() error {
	if f == nil || f.domain == nil || f.maxima == nil {
		return fmt.Errorf("%w: function not initialized", ErrInvalidConfig)
	}
	if err := f.domain.Check(); err != nil {
		return err
	}
	if err := f.maxima.Check(); err != nil {
		return err
	}
	members := 0
	for node := range f.domain.Nodes() {
		e := node.Item()
		if prev := node.Prev(); prev != nil {
			same, err := equivalent(f.cfg.ArgLess, prev.Item().pt.arg, e.pt.arg)
			if err != nil {
				return err
			}
			if same {
				return fmt.Errorf("%w: duplicate argument %v", ErrCorrupt, e.pt.arg)
			}
		}
		isMax, err := f.isMaximum(node.Prev(), node, node.Next())
		if err != nil {
			return err
		}
		if isMax != (e.max != nil) {
			return fmt.Errorf("%w: point %v has maximum=%v, should be %v", ErrCorrupt, e.pt, e.max != nil, isMax)
		}
		if e.max == nil {
			continue
		}
		if !e.max.Live() {
			return fmt.Errorf("%w: point %v references a removed maximum", ErrCorrupt, e.pt)
		}
		same, err := equivalent(f.cfg.ArgLess, e.max.Item().arg, e.pt.arg)
		if err != nil {
			return err
		}
		if !same {
			return fmt.Errorf("%w: point %v references maximum %v", ErrCorrupt, e.pt, e.max.Item())
		}
		members++
	}
	if members != f.maxima.Len() {
		return fmt.Errorf("%w: %d maxima referenced, index holds %d", ErrCorrupt, members, f.maxima.Len())
	}
	return nil
}
