package index

// Node is a stable handle to one element of a Tree.
//
// A Node stays valid until its element is removed from the tree, regardless
// of other insertions and removals.
type Node[T any] struct {
	tree   *Tree[T]
	parent *Node[T]
	left   *Node[T]
	right  *Node[T]
	item   T
	pri    uint64 // heap priority; 0 marks a removed node
}

// Item returns the element denoted by n.
func (n *Node[T]) Item() T {
	return n.item
}

// Live reports whether n still denotes an element of its tree.
func (n *Node[T]) Live() bool {
	return n != nil && n.pri != 0
}

// Next returns the in-order successor of n, or nil if n is the last node
// or has been removed.
func (n *Node[T]) Next() *Node[T] {
	if !n.Live() {
		return nil
	}
	if n.right != nil {
		return n.right.minNode()
	}
	x := n
	for x.parent != nil && x.parent.right == x {
		x = x.parent
	}
	return x.parent
}

// Prev returns the in-order predecessor of n, or nil if n is the first node
// or has been removed.
func (n *Node[T]) Prev() *Node[T] {
	if !n.Live() {
		return nil
	}
	if n.left != nil {
		return n.left.maxNode()
	}
	x := n
	for x.parent != nil && x.parent.left == x {
		x = x.parent
	}
	return x.parent
}

// minNode returns the node in n's subtree with the smallest item.
// n must not be nil.
func (n *Node[T]) minNode() *Node[T] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// maxNode returns the node in n's subtree with the largest item.
// n must not be nil.
func (n *Node[T]) maxNode() *Node[T] {
	for n.right != nil {
		n = n.right
	}
	return n
}
