package duallist

import "fmt"

// Remove deletes every element equal to v and returns how many were
// removed.
func (l *List[T]) Remove(v T) (int, error) {
	if l.len == 0 {
		return 0, fmt.Errorf("remove: %w", ErrEmpty)
	}
	return l.removeWhere(func(x T) bool { return l.compare(x, v) == 0 }), nil
}

// RemoveIf deletes every element for which pred returns true and returns
// how many were removed.
func (l *List[T]) RemoveIf(pred func(T) bool) (int, error) {
	if l.len == 0 {
		return 0, fmt.Errorf("remove if: %w", ErrEmpty)
	}
	return l.removeWhere(pred), nil
}

func (l *List[T]) removeWhere(pred func(T) bool) int {
	var removed int
	for cur := l.head; cur != nil; {
		next := cur.next
		if pred(cur.Value) {
			l.release(cur)
			removed++
		}
		cur = next
	}
	return removed
}

// Splice copies the values of other, in other's insertion order, into l at
// consecutive positions starting at pos. other is left untouched and may be
// l itself.
func (l *List[T]) Splice(pos int, other *List[T]) error {
	if l.len == 0 {
		return fmt.Errorf("splice: %w", ErrEmpty)
	}
	if pos < 0 || pos > l.len {
		return fmt.Errorf("splice at %d (size %d): %w", pos, l.len, ErrOutOfRange)
	}
	values := other.Values()
	succ := l.nodeAt(pos)
	for _, v := range values {
		l.adopt(l.before(succ), &Node[T]{Value: v}, succ)
	}
	return nil
}

// Reverse flips the insertion chain. Sorted order is not affected.
func (l *List[T]) Reverse() {
	for cur := l.head; cur != nil; {
		next := cur.next
		cur.next, cur.prev = cur.prev, next
		cur = next
	}
	l.head, l.tail = l.tail, l.head
}

// Unique removes every element that equals its lesser neighbour on the
// sorted chain, so that one element per distinct value remains. It returns
// the number of removed elements.
func (l *List[T]) Unique() int {
	var removed int
	cur := l.ascHead
	for cur != nil && cur.greater != nil {
		if dup := cur.greater; l.compare(cur.Value, dup.Value) == 0 {
			l.release(dup)
			removed++
			continue
		}
		cur = cur.greater
	}
	return removed
}

// Sort makes the insertion chain mirror the sorted chain. Later insertions
// append or prepend as usual, so the two orders may diverge again.
func (l *List[T]) Sort() {
	l.head, l.tail = l.ascHead, l.descHead
	for cur := l.head; cur != nil; cur = cur.next {
		cur.next, cur.prev = cur.greater, cur.lesser
	}
}

// Merge moves every node of other to the back of l's insertion chain,
// ranking each one into l's sorted chain. other is left empty. No values are
// copied.
func (l *List[T]) Merge(other *List[T]) {
	if l == other {
		return
	}
	for cur := other.head; cur != nil; {
		next := cur.next
		cur.detach()
		l.adopt(l.tail, cur, nil)
		cur = next
	}
	other.reset()
}

// Values returns the elements in insertion order.
func (l *List[T]) Values() []T {
	return l.collect(l.head, (*Node[T]).Next)
}

// BackwardValues returns the elements in reverse insertion order.
func (l *List[T]) BackwardValues() []T {
	return l.collect(l.tail, (*Node[T]).Prev)
}

// AscendingValues returns the elements in ascending order.
func (l *List[T]) AscendingValues() []T {
	return l.collect(l.ascHead, (*Node[T]).Greater)
}

// DescendingValues returns the elements in descending order.
func (l *List[T]) DescendingValues() []T {
	return l.collect(l.descHead, (*Node[T]).Lesser)
}

func (l *List[T]) collect(from *Node[T], step func(*Node[T]) *Node[T]) []T {
	values := make([]T, 0, l.len)
	for cur := from; cur != nil; cur = step(cur) {
		values = append(values, cur.Value)
	}
	return values
}
