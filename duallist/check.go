package duallist

import "fmt"

// Check walks both chains and returns an error wrapping ErrCorrupt that
// describes the first broken invariant, or nil if the list is consistent.
func (l *List[T]) Check() error {
	if l.len == 0 {
		if l.head != nil || l.tail != nil || l.ascHead != nil || l.descHead != nil {
			return fmt.Errorf("empty list with dangling boundary: %w", ErrCorrupt)
		}
		return nil
	}

	members := make(map[*Node[T]]struct{}, l.len)

	// Insertion chain.
	if l.head == nil || l.head.prev != nil {
		return fmt.Errorf("head is nil or has a predecessor: %w", ErrCorrupt)
	}
	var last *Node[T]
	for cur := l.head; cur != nil; cur = cur.next {
		if cur.prev != last {
			return fmt.Errorf("insertion link mismatch at position %d: %w", len(members), ErrCorrupt)
		}
		if _, seen := members[cur]; seen || len(members) == l.len {
			return fmt.Errorf("insertion chain longer than %d or cyclic: %w", l.len, ErrCorrupt)
		}
		members[cur] = struct{}{}
		last = cur
	}
	if last != l.tail {
		return fmt.Errorf("tail does not end the insertion chain: %w", ErrCorrupt)
	}
	if len(members) != l.len {
		return fmt.Errorf("insertion chain holds %d nodes, size is %d: %w", len(members), l.len, ErrCorrupt)
	}

	// Sorted chain.
	if l.ascHead == nil || l.ascHead.lesser != nil {
		return fmt.Errorf("ascending head is nil or has a lesser node: %w", ErrCorrupt)
	}
	var count int
	last = nil
	for cur := l.ascHead; cur != nil; cur = cur.greater {
		if cur.lesser != last {
			return fmt.Errorf("sorted link mismatch at rank %d: %w", count, ErrCorrupt)
		}
		if last != nil && l.compare(last.Value, cur.Value) > 0 {
			return fmt.Errorf("sorted chain decreases at rank %d: %w", count, ErrCorrupt)
		}
		if _, ok := members[cur]; !ok {
			return fmt.Errorf("node at rank %d is not on the insertion chain: %w", count, ErrCorrupt)
		}
		if count == l.len {
			return fmt.Errorf("sorted chain longer than %d or cyclic: %w", l.len, ErrCorrupt)
		}
		count++
		last = cur
	}
	if last != l.descHead {
		return fmt.Errorf("descending head does not end the sorted chain: %w", ErrCorrupt)
	}
	if count != l.len {
		return fmt.Errorf("sorted chain holds %d nodes, size is %d: %w", count, l.len, ErrCorrupt)
	}
	return nil
}
