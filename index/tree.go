package index

import (
	"math/rand/v2"
)

// Tree is an ordered multiset of items of type T.
//
// The zero value is not usable, as it has no ordering; create trees with New.
// A Tree is not safe for concurrent use.
type Tree[T any] struct {
	cfg  Config[T]
	root *Node[T]
	n    int
}

// New creates an empty tree with validated configuration.
func New[T any](cfg Config[T]) (*Tree[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	return &Tree[T]{cfg: cfg}, nil
}

// Len returns the number of items in the tree.
func (t *Tree[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.n
}

// IsEmpty reports whether the tree has no items.
func (t *Tree[T]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// First returns the node with the smallest item, or nil for an empty tree.
func (t *Tree[T]) First() *Node[T] {
	if t.IsEmpty() {
		return nil
	}
	return t.root.minNode()
}

// Last returns the node with the largest item, or nil for an empty tree.
func (t *Tree[T]) Last() *Node[T] {
	if t.IsEmpty() {
		return nil
	}
	return t.root.maxNode()
}

// Find returns a node holding an item equivalent to x, or nil if there is none.
//
// If several equivalent items are present, any one of them may be returned.
// An error from the less function is returned unchanged.
func (t *Tree[T]) Find(x T) (*Node[T], error) {
	if t == nil {
		return nil, nil
	}
	cur := t.root
	for cur != nil {
		less, err := t.cfg.Less(x, cur.item)
		if err != nil {
			return nil, err
		}
		if less {
			cur = cur.left
			continue
		}
		greater, err := t.cfg.Less(cur.item, x)
		if err != nil {
			return nil, err
		}
		if !greater {
			return cur, nil
		}
		cur = cur.right
	}
	return nil, nil
}

// Insert adds x to the tree and returns its handle.
//
// x is placed after all items equivalent to it. Insert compares only while
// locating the attach position; if the less function fails, the tree is
// unchanged and the error is returned unchanged.
func (t *Tree[T]) Insert(x T) (*Node[T], error) {
	pos := &t.root
	var parent *Node[T]
	for cur := *pos; cur != nil; cur = *pos {
		less, err := t.cfg.Less(x, cur.item)
		if err != nil {
			return nil, err
		}
		parent = cur
		if less {
			pos = &cur.left
		} else {
			pos = &cur.right
		}
	}
	node := &Node[T]{
		tree:   t,
		parent: parent,
		item:   x,
		pri:    rand.Uint64() | 1,
	}
	*pos = node
	t.n++
	t.rotateUp(node)
	return node, nil
}

// Remove deletes the element denoted by n from the tree.
//
// Remove never compares items and cannot fail for a live handle of t. It
// returns false, leaving the tree unchanged, if n is nil, already removed, or
// belongs to another tree.
func (t *Tree[T]) Remove(n *Node[T]) bool {
	if !n.Live() || n.tree != t {
		tracer().Debugf("index: ignoring removal of stale handle")
		return false
	}
	// Rotate n down to be a leaf, respecting priorities.
	for n.left != nil || n.right != nil {
		if n.right == nil || n.left != nil && n.left.pri < n.right.pri {
			t.rotateRight(n)
		} else {
			t.rotateLeft(n)
		}
	}
	switch p := n.parent; {
	case p == nil:
		t.root = nil
	case p.left == n:
		p.left = nil
	default:
		p.right = nil
	}
	n.parent = nil
	n.pri = 0
	t.n--
	return true
}

// Clone returns a structural copy of the tree. Items are passed through
// copyItem, which may be nil to copy items by assignment.
//
// Handles of t do not denote elements of the clone.
func (t *Tree[T]) Clone(copyItem func(T) T) *Tree[T] {
	if t == nil {
		return nil
	}
	cloned := &Tree[T]{cfg: t.cfg, n: t.n}
	cloned.root = cloned.cloneNode(t.root, nil, copyItem)
	return cloned
}

func (t *Tree[T]) cloneNode(n, parent *Node[T], copyItem func(T) T) *Node[T] {
	if n == nil {
		return nil
	}
	c := &Node[T]{tree: t, parent: parent, item: n.item, pri: n.pri}
	if copyItem != nil {
		c.item = copyItem(n.item)
	}
	c.left = t.cloneNode(n.left, c, copyItem)
	c.right = t.cloneNode(n.right, c, copyItem)
	return c
}

// rotateUp rotates x upward in the tree to correct any priority inversions.
func (t *Tree[T]) rotateUp(x *Node[T]) {
	for x.parent != nil && x.parent.pri > x.pri {
		if x.parent.left == x {
			t.rotateRight(x.parent)
		} else {
			t.rotateLeft(x.parent)
		}
	}
}

// rotateLeft rotates x's right child up into x's place.
func (t *Tree[T]) rotateLeft(x *Node[T]) {
	y := x.right
	assert(y != nil, "rotateLeft called without right child")
	x.right = y.left
	if y.left != nil {
		y.left.parent = x
	}
	t.replaceChild(x, y)
	y.left = x
	x.parent = y
}

// rotateRight rotates x's left child up into x's place.
func (t *Tree[T]) rotateRight(x *Node[T]) {
	y := x.left
	assert(y != nil, "rotateRight called without left child")
	x.left = y.right
	if y.right != nil {
		y.right.parent = x
	}
	t.replaceChild(x, y)
	y.right = x
	x.parent = y
}

// replaceChild makes y take x's place below x's parent.
func (t *Tree[T]) replaceChild(x, y *Node[T]) {
	p := x.parent
	y.parent = p
	switch {
	case p == nil:
		t.root = y
	case p.left == x:
		p.left = y
	default:
		p.right = y
	}
}
