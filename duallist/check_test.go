package duallist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	t.Run("consistent", func(t *testing.T) {
		require.NoError(t, Of(3, 1, 2).Check())
		require.NoError(t, New[int]().Check())
	})

	t.Run("dangling boundary on empty list", func(t *testing.T) {
		l := New[int]()
		l.ascHead = &Node[int]{}
		require.ErrorIs(t, l.Check(), ErrCorrupt)
	})

	t.Run("broken back-link", func(t *testing.T) {
		l := Of(3, 1, 2)
		l.head.next.prev = nil
		require.ErrorIs(t, l.Check(), ErrCorrupt)
	})

	t.Run("size mismatch", func(t *testing.T) {
		l := Of(3, 1, 2)
		l.len++
		require.ErrorIs(t, l.Check(), ErrCorrupt)
	})

	t.Run("sorted chain out of order", func(t *testing.T) {
		l := Of(3, 1, 2)
		l.ascHead.Value = 10
		require.ErrorIs(t, l.Check(), ErrCorrupt)
	})

	t.Run("node missing from insertion chain", func(t *testing.T) {
		l := Of(3, 1, 2)
		l.unlinkInsertion(l.head)
		require.ErrorIs(t, l.Check(), ErrCorrupt)
	})

	t.Run("insertion cycle", func(t *testing.T) {
		l := Of(3, 1)
		l.tail.next = l.head
		require.ErrorIs(t, l.Check(), ErrCorrupt)
	})
}

func TestLinkPrimitives(t *testing.T) {
	l := New[int]()
	a, b, c := &Node[int]{Value: 1}, &Node[int]{Value: 2}, &Node[int]{Value: 3}

	l.linkInsertion(nil, b, nil)
	l.linkInsertion(nil, a, b)
	l.linkInsertion(b, c, nil)
	require.Equal(t, a, l.head)
	require.Equal(t, c, l.tail)
	require.Equal(t, b, a.next)
	require.Equal(t, b, c.prev)

	l.linkSorted(nil, c, nil)
	l.linkSorted(nil, a, c)
	l.linkSorted(a, b, c)
	require.Equal(t, a, l.ascHead)
	require.Equal(t, c, l.descHead)
	l.len = 3
	require.NoError(t, l.Check())

	l.unlinkInsertion(b)
	l.unlinkSorted(b)
	l.len--
	require.NoError(t, l.Check())
	require.Nil(t, b.next)
	require.Nil(t, b.prev)
	require.Nil(t, b.greater)
	require.Nil(t, b.lesser)

	l.unlinkInsertion(a)
	l.unlinkSorted(a)
	l.unlinkInsertion(c)
	l.unlinkSorted(c)
	l.len = 0
	require.NoError(t, l.Check())
}
