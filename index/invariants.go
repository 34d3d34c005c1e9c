package index

import "fmt"

// Check validates structural tree invariants: parent links, heap order of
// priorities, item order and the item count.
//
// Check compares items and returns the less function's error if it fails.
// It is intended for tests.
func (t *Tree[T]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if t.root == nil {
		if t.n != 0 {
			return fmt.Errorf("%w: empty tree must have count 0, has %d", ErrCorrupt, t.n)
		}
		return nil
	}
	if t.root.parent != nil {
		return fmt.Errorf("%w: root has a parent", ErrCorrupt)
	}
	count, err := t.checkNode(t.root)
	if err != nil {
		return err
	}
	if count != t.n {
		return fmt.Errorf("%w: count mismatch (%d != %d)", ErrCorrupt, count, t.n)
	}
	var prev *Node[T]
	for n := t.First(); n != nil; n = n.Next() {
		if prev != nil {
			less, err := t.cfg.Less(n.item, prev.item)
			if err != nil {
				return err
			}
			if less {
				return fmt.Errorf("%w: items out of order", ErrCorrupt)
			}
		}
		prev = n
	}
	return nil
}

func (t *Tree[T]) checkNode(n *Node[T]) (int, error) {
	if n == nil {
		return 0, nil
	}
	if n.tree != t {
		return 0, fmt.Errorf("%w: node owned by another tree", ErrCorrupt)
	}
	if n.pri == 0 {
		return 0, fmt.Errorf("%w: removed node still linked", ErrCorrupt)
	}
	for _, child := range []*Node[T]{n.left, n.right} {
		if child == nil {
			continue
		}
		if child.parent != n {
			return 0, fmt.Errorf("%w: broken parent link", ErrCorrupt)
		}
		if child.pri < n.pri {
			return 0, fmt.Errorf("%w: heap order violated", ErrCorrupt)
		}
	}
	l, err := t.checkNode(n.left)
	if err != nil {
		return 0, err
	}
	r, err := t.checkNode(n.right)
	if err != nil {
		return 0, err
	}
	return l + r + 1, nil
}
