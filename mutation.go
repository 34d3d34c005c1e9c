package maxima

import (
	"github.com/npillmayer/maxima/index"
)

type domainNode[A, V any] = *index.Node[*entry[A, V]]

// txn is a single-point mutation of a Function, split into two phases.
//
// The decide phase performs only operations which can be undone without
// comparing: it inserts the new domain entry and any maxima index entries
// that become necessary, logging each, and collects maxima entries to drop.
// Any comparison may fail during decide. The commit phase only removes
// entries by handle and cannot fail.
type txn[A, V any] struct {
	f        *Function[A, V]
	added    domainNode[A, V] // domain entry inserted during decide
	undo     []*entry[A, V]   // entries whose maxima handle was set during decide
	drop     []*entry[A, V]   // entries to leave the maxima index on commit
	retired  domainNode[A, V] // domain entry to remove on commit
	change   Change[A, V]
	finished bool
}

func (f *Function[A, V]) begin(kind ChangeKind) *txn[A, V] {
	return &txn[A, V]{f: f, change: Change[A, V]{Kind: kind}}
}

// SetValue sets the function's value at argument a to v.
//
// If a already maps to a value equivalent to v, SetValue returns without any
// change. Otherwise the point at a is inserted or replaced and the maxima are
// re-synchronized. If one of the orders fails, SetValue returns its error and
// the function is left unchanged. If an order panics, the function is restored
// before the panic is propagated.
func (f *Function[A, V]) SetValue(a A, v V) error {
	old, err := f.lookup(a)
	if err != nil {
		return err
	}
	if old != nil {
		same, err := equivalent(f.cfg.ValueLess, old.Item().pt.value, v)
		if err != nil {
			return err
		}
		if same {
			return nil
		}
	}
	kind := Inserted
	if old != nil {
		kind = Updated
	}
	tx := f.begin(kind)
	defer tx.abandon()
	if err := tx.set(old, Point[A, V]{arg: a, value: v}); err != nil {
		tx.rollback()
		return err
	}
	tx.commit()
	return nil
}

// Erase removes argument a from the domain. Erasing an argument not in the
// domain is a no-op.
//
// If one of the orders fails, Erase returns its error and the function is left
// unchanged. If an order panics, the function is restored before the panic is
// propagated.
func (f *Function[A, V]) Erase(a A) error {
	node, err := f.lookup(a)
	if err != nil || node == nil {
		return err
	}
	tx := f.begin(Erased)
	defer tx.abandon()
	if err := tx.erase(node); err != nil {
		tx.rollback()
		return err
	}
	tx.commit()
	return nil
}

// set is the decide phase of SetValue. old is the domain node currently at the
// argument of p, or nil.
func (tx *txn[A, V]) set(old domainNode[A, V], p Point[A, V]) error {
	var left, right domainNode[A, V]
	if old != nil {
		// captured before the insertion, which places the new entry right
		// after old
		left, right = old.Prev(), old.Next()
	}
	mid, err := tx.f.domain.Insert(&entry[A, V]{pt: p})
	if err != nil {
		return err
	}
	tx.added = mid
	tx.change.Point = p
	if old == nil {
		left, right = mid.Prev(), mid.Next()
	}
	leftmost, rightmost := left.Prev(), right.Next()
	if err := tx.reevaluate(leftmost, left, mid); err != nil {
		return err
	}
	if err := tx.reevaluate(mid, right, rightmost); err != nil {
		return err
	}
	if err := tx.reevaluate(left, mid, right); err != nil {
		return err
	}
	if old != nil {
		tx.change.Prior = old.Item().pt
		tx.retire(old)
	}
	return nil
}

// erase is the decide phase of Erase. The domain is not touched before commit.
func (tx *txn[A, V]) erase(node domainNode[A, V]) error {
	tx.change.Point = node.Item().pt
	left, right := node.Prev(), node.Next()
	leftmost, rightmost := left.Prev(), right.Next()
	// left and right become neighbours
	if err := tx.reevaluate(leftmost, left, right); err != nil {
		return err
	}
	if err := tx.reevaluate(left, right, rightmost); err != nil {
		return err
	}
	tx.retire(node)
	return nil
}

// reevaluate decides maxima membership of mid given its future neighbours.
// Entering the maxima index happens now and is logged for undo; leaving is
// deferred to commit.
func (tx *txn[A, V]) reevaluate(left, mid, right domainNode[A, V]) error {
	if mid == nil {
		return nil
	}
	isMax, err := tx.f.isMaximum(left, mid, right)
	if err != nil {
		return err
	}
	e := mid.Item()
	switch {
	case e.max != nil && !isMax:
		tx.drop = append(tx.drop, e)
	case e.max == nil && isMax:
		h, err := tx.f.maxima.Insert(e.pt)
		if err != nil {
			return err
		}
		e.max = h
		tx.undo = append(tx.undo, e)
	}
	return nil
}

// retire schedules removal of a domain node and its maxima membership.
func (tx *txn[A, V]) retire(node domainNode[A, V]) {
	if e := node.Item(); e.max != nil {
		tx.drop = append(tx.drop, e)
	}
	tx.retired = node
}

// isMaximum reports whether mid is a local maximum between left and right.
// Neighbours of equivalent value do not disqualify mid.
func (f *Function[A, V]) isMaximum(left, mid, right domainNode[A, V]) (bool, error) {
	v := mid.Item().pt.value
	for _, n := range [2]domainNode[A, V]{left, right} {
		if n == nil {
			continue
		}
		dominated, err := f.cfg.ValueLess(v, n.Item().pt.value)
		if err != nil || dominated {
			return false, err
		}
	}
	return true, nil
}

// commit applies deferred removals. It never compares and cannot fail.
func (tx *txn[A, V]) commit() {
	assert(!tx.finished, "commit called on finished transaction")
	tx.finished = true
	f := tx.f
	for _, e := range tx.drop {
		removed := f.maxima.Remove(e.max)
		assert(removed, "commit: stale maxima handle")
		e.max = nil
		tx.change.Lost = append(tx.change.Lost, e.pt)
	}
	if tx.retired != nil {
		removed := f.domain.Remove(tx.retired)
		assert(removed, "commit: stale domain handle")
	}
	for _, e := range tx.undo {
		tx.change.Gained = append(tx.change.Gained, e.pt)
	}
	if f.cfg.OnCommit != nil {
		f.cfg.OnCommit(tx.change)
	}
}

// rollback undoes the decide phase in reverse order. It never compares and
// cannot fail.
func (tx *txn[A, V]) rollback() {
	if tx.finished {
		return
	}
	tx.finished = true
	T().Debugf("maxima: rolling back %s with %d maxima insertions", tx.change.Kind, len(tx.undo))
	for i := len(tx.undo) - 1; i >= 0; i-- {
		e := tx.undo[i]
		removed := tx.f.maxima.Remove(e.max)
		assert(removed, "rollback: stale maxima handle")
		e.max = nil
	}
	if tx.added != nil {
		removed := tx.f.domain.Remove(tx.added)
		assert(removed, "rollback: stale domain handle")
	}
}

// abandon is deferred by every mutation. If the decide phase panics, it
// restores the function and re-raises the panic.
func (tx *txn[A, V]) abandon() {
	if tx.finished {
		return
	}
	if r := recover(); r != nil {
		tx.rollback()
		panic(r)
	}
}
