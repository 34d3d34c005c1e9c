package maxima

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/npillmayer/maxima/index"
)

// entry is the domain index element for one argument. max is the entry's
// handle into the maxima index, nil if the point is not a maximum.
type entry[A, V any] struct {
	pt  Point[A, V]
	max *index.Node[Point[A, V]]
}

// Function is a partial function from A to V which keeps track of its local
// maxima.
//
// The domain index holds exactly one entry per argument and is the authority
// on existence. The maxima index holds a copy of every point which is a local
// maximum, ordered by value descending and argument ascending.
//
//	Operation     |   Cost
//	--------------+-------------------
//	ValueAt/Find  |   O(log n) comparisons
//	SetValue      |   O(log n) comparisons
//	Erase         |   O(log n) comparisons
//	Points/Maxima |   O(n), no comparisons
//
// A Function must be created with New or NewOrdered.
type Function[A, V any] struct {
	cfg    Config[A, V]
	domain *index.Tree[*entry[A, V]]
	maxima *index.Tree[Point[A, V]]
}

// New creates an empty function with validated configuration.
func New[A, V any](cfg Config[A, V]) (*Function[A, V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	f := &Function[A, V]{cfg: cfg}
	var err error
	f.domain, err = index.New(index.Config[*entry[A, V]]{
		Less: func(x, y *entry[A, V]) (bool, error) {
			return cfg.ArgLess(x.pt.arg, y.pt.arg)
		},
	})
	if err != nil {
		return nil, err
	}
	f.maxima, err = index.New(index.Config[Point[A, V]]{
		Less: maximaOrder(cfg.ArgLess, cfg.ValueLess),
	})
	if err != nil {
		return nil, err
	}
	return f, nil
}

// NewOrdered creates an empty function using the natural orders of A and V.
func NewOrdered[A, V cmp.Ordered]() *Function[A, V] {
	f, err := New(OrderedConfig[A, V]())
	assert(err == nil, "NewOrdered: cannot create function")
	return f
}

// maximaOrder orders points by value descending, then by argument ascending.
func maximaOrder[A, V any](argLess Order[A], valueLess Order[V]) index.LessFunc[Point[A, V]] {
	return func(p, q Point[A, V]) (bool, error) {
		gt, err := valueLess(q.value, p.value)
		if err != nil || gt {
			return gt, err
		}
		lt, err := valueLess(p.value, q.value)
		if err != nil || lt {
			return false, err
		}
		return argLess(p.arg, q.arg)
	}
}

// lookup returns the domain node for argument a, or nil.
func (f *Function[A, V]) lookup(a A) (*index.Node[*entry[A, V]], error) {
	return f.domain.Find(&entry[A, V]{pt: Point[A, V]{arg: a}})
}

// ValueAt returns the value at argument a.
//
// If a is not part of the domain, ValueAt returns an error wrapping
// ErrNotFound. Errors of the argument order are returned unchanged.
func (f *Function[A, V]) ValueAt(a A) (V, error) {
	var zero V
	node, err := f.lookup(a)
	if err != nil {
		return zero, err
	}
	if node == nil {
		return zero, fmt.Errorf("%w: %v", ErrNotFound, a)
	}
	return node.Item().pt.value, nil
}

// Find returns the point at argument a. The boolean result is false if a is
// not part of the domain.
func (f *Function[A, V]) Find(a A) (Point[A, V], bool, error) {
	node, err := f.lookup(a)
	if err != nil || node == nil {
		return Point[A, V]{}, false, err
	}
	return node.Item().pt, true, nil
}

// Len returns the number of arguments in the domain.
func (f *Function[A, V]) Len() int {
	if f == nil {
		return 0
	}
	return f.domain.Len()
}

// MaximaCount returns the number of local maxima.
func (f *Function[A, V]) MaximaCount() int {
	if f == nil {
		return 0
	}
	return f.maxima.Len()
}

// Points returns an iterator over all points in ascending order of arguments.
//
// The function must not be modified during iteration.
func (f *Function[A, V]) Points() iter.Seq[Point[A, V]] {
	return func(yield func(Point[A, V]) bool) {
		if f == nil {
			return
		}
		f.domain.ForEachItem(func(e *entry[A, V]) bool {
			return yield(e.pt)
		})
	}
}

// Maxima returns an iterator over all local maxima, ordered by value
// descending and, for equivalent values, by argument ascending.
//
// The function must not be modified during iteration.
func (f *Function[A, V]) Maxima() iter.Seq[Point[A, V]] {
	return func(yield func(Point[A, V]) bool) {
		if f == nil {
			return
		}
		f.maxima.ForEachItem(yield)
	}
}

// Annotated returns an iterator over all points in ascending order of
// arguments, each paired with a flag telling whether the point is a local
// maximum. It never compares.
func (f *Function[A, V]) Annotated() iter.Seq2[Point[A, V], bool] {
	return func(yield func(Point[A, V], bool) bool) {
		if f == nil {
			return
		}
		f.domain.ForEachItem(func(e *entry[A, V]) bool {
			return yield(e.pt, e.max != nil)
		})
	}
}

// IsMaximum reports whether the point at argument a is a local maximum.
// It returns false if a is not part of the domain.
func (f *Function[A, V]) IsMaximum(a A) (bool, error) {
	node, err := f.lookup(a)
	if err != nil || node == nil {
		return false, err
	}
	return node.Item().max != nil, nil
}

// Clone returns an independent copy of f. The OnCommit hook is not copied.
func (f *Function[A, V]) Clone() *Function[A, V] {
	if f == nil {
		return nil
	}
	cloned := &Function[A, V]{cfg: f.cfg}
	cloned.cfg.OnCommit = nil
	cloned.domain = f.domain.Clone(func(e *entry[A, V]) *entry[A, V] {
		c := *e
		return &c
	})
	cloned.maxima = f.maxima.Clone(nil)
	// both maxima trees have identical shape, so handles pair up in order
	remap := make(map[*index.Node[Point[A, V]]]*index.Node[Point[A, V]], f.maxima.Len())
	for from, to := f.maxima.First(), cloned.maxima.First(); from != nil; from, to = from.Next(), to.Next() {
		remap[from] = to
	}
	cloned.domain.ForEachItem(func(e *entry[A, V]) bool {
		if e.max != nil {
			e.max = remap[e.max]
		}
		return true
	})
	return cloned
}

func (f *Function[A, V]) String() string {
	return fmt.Sprintf("Function{len=%d, maxima=%d}", f.Len(), f.MaximaCount())
}
