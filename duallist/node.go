package duallist

// Node is a value holder that sits on two doubly-linked chains at once: the
// insertion chain (next/prev) and the sorted chain (greater/lesser).
//
// Value must not be changed while the node is linked into a list: the sorted
// chain is not repositioned, and Check reports the list as corrupt.
type Node[T any] struct {
	Value T

	prev, next      *Node[T]
	lesser, greater *Node[T]
}

// Next returns the following node in insertion order, or nil.
func (n *Node[T]) Next() *Node[T] { return n.next }

// Prev returns the preceding node in insertion order, or nil.
func (n *Node[T]) Prev() *Node[T] { return n.prev }

// Greater returns the following node in ascending order, or nil.
func (n *Node[T]) Greater() *Node[T] { return n.greater }

// Lesser returns the preceding node in ascending order, or nil.
func (n *Node[T]) Lesser() *Node[T] { return n.lesser }

// Clone returns a detached copy of the node. Only the value is copied; the
// copy never inherits a position on either chain.
func (n *Node[T]) Clone() *Node[T] {
	return &Node[T]{Value: n.Value}
}

func (n *Node[T]) detach() {
	n.prev, n.next, n.lesser, n.greater = nil, nil, nil, nil
}
