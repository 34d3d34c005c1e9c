package index

import "iter"

// ForEachItem walks items in ascending order.
//
// Iteration stops early if callback returns false.
func (t *Tree[T]) ForEachItem(fn func(item T) bool) {
	if t == nil || fn == nil {
		return
	}
	for n := t.First(); n != nil; n = n.Next() {
		if !fn(n.item) {
			return
		}
	}
}

// All returns an iterator over all items in ascending order.
//
// Modifying the tree during iteration is not supported.
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		t.ForEachItem(yield)
	}
}

// Nodes returns an iterator over all handles in ascending order of their items.
//
// Modifying the tree during iteration is not supported.
func (t *Tree[T]) Nodes() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		if t == nil {
			return
		}
		for n := t.First(); n != nil; n = n.Next() {
			if !yield(n) {
				return
			}
		}
	}
}
