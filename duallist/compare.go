package duallist

// The comparisons below are positional: both insertion chains are walked in
// lockstep and the walk stops at the first pair that decides the result.
// Lists of different sizes are never equal, and are neither less nor greater
// than each other, so Less/Greater do not form a total order.

// Equal reports whether l and other hold equal values at every position.
func (l *List[T]) Equal(other *List[T]) bool {
	return l.pairwise(other, func(c int) bool { return c == 0 })
}

// NotEqual is the negation of Equal.
func (l *List[T]) NotEqual(other *List[T]) bool {
	return !l.Equal(other)
}

// Less reports whether l and other have the same size and every value of l
// is strictly less than the value of other at the same position.
func (l *List[T]) Less(other *List[T]) bool {
	return l.pairwise(other, func(c int) bool { return c < 0 })
}

// LessEqual reports whether l and other have the same size and no value of
// l is greater than the value of other at the same position.
func (l *List[T]) LessEqual(other *List[T]) bool {
	return l.pairwise(other, func(c int) bool { return c <= 0 })
}

// Greater reports whether other is Less than l. It is not the negation of
// Less: lists that Less leaves unordered are not Greater either.
func (l *List[T]) Greater(other *List[T]) bool {
	return other.Less(l)
}

// GreaterEqual reports whether other is LessEqual to l. Like Greater, it is
// not the negation of LessEqual.
func (l *List[T]) GreaterEqual(other *List[T]) bool {
	return other.LessEqual(l)
}

func (l *List[T]) pairwise(other *List[T], holds func(c int) bool) bool {
	if l.len != other.len {
		return false
	}
	for a, b := l.head, other.head; a != nil; a, b = a.next, b.next {
		if !holds(l.compare(a.Value, b.Value)) {
			return false
		}
	}
	return true
}
