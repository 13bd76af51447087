package duallist

// The four functions below are the only ones that splice single nodes in or
// out of a chain. A nil pred or succ stands for the corresponding boundary.

func (l *List[T]) linkInsertion(pred, n, succ *Node[T]) {
	n.prev, n.next = pred, succ
	if pred != nil {
		pred.next = n
	} else {
		l.head = n
	}
	if succ != nil {
		succ.prev = n
	} else {
		l.tail = n
	}
}

func (l *List[T]) unlinkInsertion(n *Node[T]) {
	prev, next := n.prev, n.next
	if prev != nil {
		prev.next = next
	} else {
		l.head = next
	}
	if next != nil {
		next.prev = prev
	} else {
		l.tail = prev
	}
	n.prev, n.next = nil, nil
}

func (l *List[T]) linkSorted(lesser, n, greater *Node[T]) {
	n.lesser, n.greater = lesser, greater
	if lesser != nil {
		lesser.greater = n
	} else {
		l.ascHead = n
	}
	if greater != nil {
		greater.lesser = n
	} else {
		l.descHead = n
	}
}

func (l *List[T]) unlinkSorted(n *Node[T]) {
	lesser, greater := n.lesser, n.greater
	if lesser != nil {
		lesser.greater = greater
	} else {
		l.ascHead = greater
	}
	if greater != nil {
		greater.lesser = lesser
	} else {
		l.descHead = lesser
	}
	n.lesser, n.greater = nil, nil
}

// insertSorted ranks n into the sorted chain. The scan stops at the first
// node strictly greater than n, so n lands after every equal value.
func (l *List[T]) insertSorted(n *Node[T]) {
	var lesser *Node[T]
	cur := l.ascHead
	for cur != nil && l.compare(cur.Value, n.Value) <= 0 {
		lesser, cur = cur, cur.greater
	}
	l.linkSorted(lesser, n, cur)
}

// adopt places n between pred and succ on the insertion chain and at its
// rank on the sorted chain.
func (l *List[T]) adopt(pred, n, succ *Node[T]) {
	l.linkInsertion(pred, n, succ)
	l.insertSorted(n)
	l.len++
}

// release takes n off both chains and returns its value.
func (l *List[T]) release(n *Node[T]) T {
	l.unlinkInsertion(n)
	l.unlinkSorted(n)
	l.len--
	return n.Value
}
