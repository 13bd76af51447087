// Package duallist provides a doubly-linked list whose nodes are kept on two
// chains at once: the order in which values were positioned (insertion
// order) and ascending value order. Both chains are maintained incrementally
// on every mutation; no operation re-sorts the list.
//
// A List is not safe for concurrent use. Callers that share one across
// goroutines must serialize access themselves.
package duallist

import (
	"cmp"
	"fmt"
)

// List is a container whose elements can be walked in insertion order
// (Head/Tail, Next/Prev) and in sorted order (Ascending/Descending,
// Greater/Lesser).
type List[T any] struct {
	head, tail        *Node[T]
	ascHead, descHead *Node[T]
	len               int

	compare func(a, b T) int
}

// New returns an empty list ordered by the natural ordering of T.
func New[T cmp.Ordered]() *List[T] {
	return NewFunc(cmp.Compare[T])
}

// NewFunc returns an empty list ordered by compare, which must return a
// negative number when a < b, zero when a == b and a positive number when
// a > b.
func NewFunc[T any](compare func(a, b T) int) *List[T] {
	if compare == nil {
		panic("duallist: nil compare function")
	}
	return &List[T]{compare: compare}
}

// Of returns a list holding values in the given insertion order.
func Of[T cmp.Ordered](values ...T) *List[T] {
	return OfFunc(cmp.Compare[T], values...)
}

// OfFunc is like Of but orders values with compare.
func OfFunc[T any](compare func(a, b T) int, values ...T) *List[T] {
	l := NewFunc(compare)
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

// Clone returns a deep copy of the list. The copy owns fresh nodes.
func (l *List[T]) Clone() *List[T] {
	c := NewFunc(l.compare)
	for cur := l.head; cur != nil; cur = cur.next {
		c.PushBack(cur.Value)
	}
	return c
}

// CopyFrom replaces the contents of l with copies of the values in other,
// keeping other's insertion order.
func (l *List[T]) CopyFrom(other *List[T]) {
	if l == other {
		return
	}
	l.Clear()
	for cur := other.head; cur != nil; cur = cur.next {
		l.PushBack(cur.Value)
	}
}

// Take moves every node of l into a new list and leaves l empty.
func (l *List[T]) Take() *List[T] {
	moved := *l
	l.reset()
	return &moved
}

// MoveFrom releases the contents of l and takes ownership of every node in
// other, which is left empty.
func (l *List[T]) MoveFrom(other *List[T]) {
	if l == other {
		return
	}
	l.Clear()
	*l = *other
	other.reset()
}

func (l *List[T]) reset() {
	l.head, l.tail = nil, nil
	l.ascHead, l.descHead = nil, nil
	l.len = 0
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int { return l.len }

// Empty reports whether the list holds no elements.
func (l *List[T]) Empty() bool { return l.len == 0 }

// Head returns the first node in insertion order, or nil.
func (l *List[T]) Head() *Node[T] { return l.head }

// Tail returns the last node in insertion order, or nil.
func (l *List[T]) Tail() *Node[T] { return l.tail }

// Ascending returns the smallest node, or nil.
func (l *List[T]) Ascending() *Node[T] { return l.ascHead }

// Descending returns the largest node, or nil.
func (l *List[T]) Descending() *Node[T] { return l.descHead }

// Front returns the first value in insertion order.
func (l *List[T]) Front() (T, error) {
	if l.head == nil {
		var zero T
		return zero, fmt.Errorf("front: %w", ErrEmpty)
	}
	return l.head.Value, nil
}

// Back returns the last value in insertion order.
func (l *List[T]) Back() (T, error) {
	if l.tail == nil {
		var zero T
		return zero, fmt.Errorf("back: %w", ErrEmpty)
	}
	return l.tail.Value, nil
}

// PushBack appends v to the insertion chain and ranks it in sorted order.
func (l *List[T]) PushBack(v T) {
	l.adopt(l.tail, &Node[T]{Value: v}, nil)
}

// PushFront prepends v to the insertion chain and ranks it in sorted order.
func (l *List[T]) PushFront(v T) {
	l.adopt(nil, &Node[T]{Value: v}, l.head)
}

// Insert places v so that it ends up at zero-based position pos of the
// insertion chain. Valid positions are 0 through Len().
func (l *List[T]) Insert(v T, pos int) error {
	if pos < 0 || pos > l.len {
		return fmt.Errorf("insert at %d (size %d): %w", pos, l.len, ErrOutOfRange)
	}
	succ := l.nodeAt(pos)
	l.adopt(l.before(succ), &Node[T]{Value: v}, succ)
	return nil
}

// InsertN places count copies of v starting at position pos.
func (l *List[T]) InsertN(v T, pos, count int) error {
	if count < 0 {
		return fmt.Errorf("insert %d values: %w", count, ErrInvalidArgument)
	}
	if pos < 0 || pos > l.len {
		return fmt.Errorf("insert at %d (size %d): %w", pos, l.len, ErrOutOfRange)
	}
	succ := l.nodeAt(pos)
	for i := 0; i < count; i++ {
		l.adopt(l.before(succ), &Node[T]{Value: v}, succ)
	}
	return nil
}

// Erase removes the element at position pos. Valid positions are 0 through
// Len()-1.
func (l *List[T]) Erase(pos int) error {
	if pos < 0 || pos >= l.len {
		return fmt.Errorf("erase at %d (size %d): %w", pos, l.len, ErrOutOfRange)
	}
	l.release(l.nodeAt(pos))
	return nil
}

// EraseN removes count consecutive elements starting at position pos.
func (l *List[T]) EraseN(pos, count int) error {
	if count < 0 {
		return fmt.Errorf("erase %d values: %w", count, ErrInvalidArgument)
	}
	if pos < 0 || pos >= l.len || count > l.len-pos {
		return fmt.Errorf("erase %d values at %d (size %d): %w", count, pos, l.len, ErrOutOfRange)
	}
	cur := l.nodeAt(pos)
	for i := 0; i < count; i++ {
		next := cur.next
		l.release(cur)
		cur = next
	}
	return nil
}

// PopBack removes and returns the last value in insertion order.
func (l *List[T]) PopBack() (T, error) {
	if l.tail == nil {
		var zero T
		return zero, fmt.Errorf("pop back: %w", ErrEmpty)
	}
	return l.release(l.tail), nil
}

// PopFront removes and returns the first value in insertion order.
func (l *List[T]) PopFront() (T, error) {
	if l.head == nil {
		var zero T
		return zero, fmt.Errorf("pop front: %w", ErrEmpty)
	}
	return l.release(l.head), nil
}

// Clear removes every element.
func (l *List[T]) Clear() {
	for cur := l.head; cur != nil; {
		next := cur.next
		cur.detach()
		cur = next
	}
	l.reset()
}

// Assign replaces the contents of l with count copies of v.
func (l *List[T]) Assign(v T, count int) error {
	if count <= 0 {
		return fmt.Errorf("assign %d values: %w", count, ErrInvalidArgument)
	}
	l.Clear()
	for i := 0; i < count; i++ {
		l.PushBack(v)
	}
	return nil
}

// AssignValues replaces the contents of l with values.
func (l *List[T]) AssignValues(values ...T) {
	l.Clear()
	for _, v := range values {
		l.PushBack(v)
	}
}

// Resize grows the list by appending zero values, or shrinks it by dropping
// values from the back, until it holds count elements.
func (l *List[T]) Resize(count int) error {
	if count <= 0 {
		return fmt.Errorf("resize to %d: %w", count, ErrInvalidArgument)
	}
	var zero T
	for l.len < count {
		l.PushBack(zero)
	}
	for l.len > count {
		l.release(l.tail)
	}
	return nil
}

// EmplaceFront is Resize working on the front of the insertion chain: zero
// values are prepended, surplus values are dropped from the front.
func (l *List[T]) EmplaceFront(count int) error {
	if count <= 0 {
		return fmt.Errorf("emplace front to %d: %w", count, ErrInvalidArgument)
	}
	var zero T
	for l.len < count {
		l.PushFront(zero)
	}
	for l.len > count {
		l.release(l.head)
	}
	return nil
}

// Swap exchanges the contents of l and other in constant time.
func (l *List[T]) Swap(other *List[T]) {
	*l, *other = *other, *l
}

// nodeAt returns the node at position pos, or nil when pos == l.len.
func (l *List[T]) nodeAt(pos int) *Node[T] {
	if pos == l.len {
		return nil
	}
	if pos == l.len-1 {
		return l.tail
	}
	cur := l.head
	for i := 0; i < pos; i++ {
		cur = cur.next
	}
	return cur
}

// before returns the insertion-chain predecessor of succ, treating nil as
// the position past the tail.
func (l *List[T]) before(succ *Node[T]) *Node[T] {
	if succ == nil {
		return l.tail
	}
	return succ.prev
}
