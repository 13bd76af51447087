package duallist

import (
	"fmt"
	"io"
	"strings"
)

// EmptyMsg is written by the Print methods when the list holds no elements.
const EmptyMsg = "List is empty"

// PrintNext writes the values in insertion order.
func (l *List[T]) PrintNext(w io.Writer) error {
	return l.print(w, l.head, (*Node[T]).Next)
}

// PrintPrev writes the values in reverse insertion order.
func (l *List[T]) PrintPrev(w io.Writer) error {
	return l.print(w, l.tail, (*Node[T]).Prev)
}

// PrintAsc writes the values in ascending order.
func (l *List[T]) PrintAsc(w io.Writer) error {
	return l.print(w, l.ascHead, (*Node[T]).Greater)
}

// PrintDesc writes the values in descending order.
func (l *List[T]) PrintDesc(w io.Writer) error {
	return l.print(w, l.descHead, (*Node[T]).Lesser)
}

// Each value is followed by a single space and the line ends with a newline.
func (l *List[T]) print(w io.Writer, from *Node[T], step func(*Node[T]) *Node[T]) error {
	if from == nil {
		_, err := fmt.Fprintln(w, EmptyMsg)
		return err
	}
	var sb strings.Builder
	for cur := from; cur != nil; cur = step(cur) {
		fmt.Fprintf(&sb, "%v ", cur.Value)
	}
	sb.WriteByte('\n')
	_, err := io.WriteString(w, sb.String())
	return err
}
