package duallist_test

import (
	"testing"

	"github.com/kchristidis/duallist/duallist"
	"github.com/stretchr/testify/require"
)

func TestRemove(t *testing.T) {
	t.Run("every occurrence", func(t *testing.T) {
		l := duallist.Of(5, 3, 8, 5)
		n, err := l.Remove(5)
		require.NoError(t, err)
		require.Equal(t, 2, n)
		requireChains(t, l, []int{3, 8}, []int{3, 8})
	})

	t.Run("boundaries and absent values", func(t *testing.T) {
		l := duallist.Of(1, 2, 1)
		n, err := l.Remove(7)
		require.NoError(t, err)
		require.Zero(t, n)

		n, err = l.Remove(1)
		require.NoError(t, err)
		require.Equal(t, 2, n)
		requireChains(t, l, []int{2}, []int{2})

		n, err = l.Remove(2)
		require.NoError(t, err)
		require.Equal(t, 1, n)
		requireEmpty(t, l)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := duallist.New[int]().Remove(1)
		require.ErrorIs(t, err, duallist.ErrEmpty)
	})
}

func TestRemoveIf(t *testing.T) {
	l := duallist.Of(4, 7, 1, 9, 2)
	n, err := l.RemoveIf(func(v int) bool { return v > 3 })
	require.NoError(t, err)
	require.Equal(t, 3, n)
	requireChains(t, l, []int{1, 2}, []int{1, 2})

	_, err = duallist.New[int]().RemoveIf(func(int) bool { return true })
	require.ErrorIs(t, err, duallist.ErrEmpty)
}

func TestSplice(t *testing.T) {
	t.Run("middle", func(t *testing.T) {
		l := duallist.Of(1, 2, 3)
		other := duallist.Of(9, 8)
		require.NoError(t, l.Splice(1, other))
		requireChains(t, l, []int{1, 9, 8, 2, 3}, []int{1, 2, 3, 8, 9})
		requireChains(t, other, []int{9, 8}, []int{8, 9})
	})

	t.Run("ends", func(t *testing.T) {
		l := duallist.Of(1, 2)
		require.NoError(t, l.Splice(0, duallist.Of(5)))
		require.NoError(t, l.Splice(l.Len(), duallist.Of(6, 0)))
		requireChains(t, l, []int{5, 1, 2, 6, 0}, []int{0, 1, 2, 5, 6})
	})

	t.Run("itself", func(t *testing.T) {
		l := duallist.Of(2, 1)
		require.NoError(t, l.Splice(1, l))
		requireChains(t, l, []int{2, 2, 1, 1}, []int{1, 1, 2, 2})
	})

	t.Run("from empty", func(t *testing.T) {
		l := duallist.Of(2, 1)
		require.NoError(t, l.Splice(1, duallist.New[int]()))
		requireChains(t, l, []int{2, 1}, []int{1, 2})
	})

	t.Run("errors", func(t *testing.T) {
		require.ErrorIs(t, duallist.New[int]().Splice(0, duallist.Of(1)), duallist.ErrEmpty)

		l := duallist.Of(2, 1)
		require.ErrorIs(t, l.Splice(-1, duallist.Of(1)), duallist.ErrOutOfRange)
		require.ErrorIs(t, l.Splice(3, duallist.Of(1)), duallist.ErrOutOfRange)
		requireChains(t, l, []int{2, 1}, []int{1, 2})
	})
}

func TestReverse(t *testing.T) {
	l := duallist.Of(5, 3, 8)
	l.Reverse()
	requireChains(t, l, []int{8, 3, 5}, []int{3, 5, 8})

	l.Reverse()
	requireChains(t, l, []int{5, 3, 8}, []int{3, 5, 8})

	empty := duallist.New[int]()
	empty.Reverse()
	requireEmpty(t, empty)
}

func TestUnique(t *testing.T) {
	t.Run("keeps the first of each value", func(t *testing.T) {
		l := duallist.Of(5, 3, 5, 3, 1)
		require.Equal(t, 2, l.Unique())
		requireChains(t, l, []int{5, 3, 1}, []int{1, 3, 5})
	})

	t.Run("idempotent", func(t *testing.T) {
		l := duallist.Of(2, 2, 2, 4, 4, 1)
		require.Equal(t, 3, l.Unique())
		once := l.Values()
		require.Zero(t, l.Unique())
		require.Equal(t, once, l.Values())
		requireChains(t, l, []int{2, 4, 1}, []int{1, 2, 4})
	})

	t.Run("all equal", func(t *testing.T) {
		l := duallist.Of(7, 7, 7)
		require.Equal(t, 2, l.Unique())
		requireChains(t, l, []int{7}, []int{7})
	})

	t.Run("empty", func(t *testing.T) {
		l := duallist.New[int]()
		require.Zero(t, l.Unique())
		requireEmpty(t, l)
	})
}

func TestSort(t *testing.T) {
	l := duallist.Of(5, 3, 8)
	before := l.AscendingValues()
	l.Sort()
	requireChains(t, l, []int{3, 5, 8}, []int{3, 5, 8})
	require.Equal(t, before, l.Values())

	l.PushBack(1)
	l.PushFront(9)
	requireChains(t, l, []int{9, 3, 5, 8, 1}, []int{1, 3, 5, 8, 9})

	empty := duallist.New[int]()
	empty.Sort()
	requireEmpty(t, empty)
}

func TestMerge(t *testing.T) {
	t.Run("into non-empty", func(t *testing.T) {
		l := duallist.Of(1, 3)
		other := duallist.Of(2, 4)
		moved := other.Head()

		l.Merge(other)
		requireChains(t, l, []int{1, 3, 2, 4}, []int{1, 2, 3, 4})
		requireEmpty(t, other)
		require.Same(t, moved, l.Head().Next().Next())
	})

	t.Run("into empty", func(t *testing.T) {
		l := duallist.New[int]()
		other := duallist.Of(4, 2)
		l.Merge(other)
		requireChains(t, l, []int{4, 2}, []int{2, 4})
		requireEmpty(t, other)
	})

	t.Run("from empty", func(t *testing.T) {
		l := duallist.Of(4, 2)
		l.Merge(duallist.New[int]())
		requireChains(t, l, []int{4, 2}, []int{2, 4})
	})

	t.Run("itself", func(t *testing.T) {
		l := duallist.Of(4, 2)
		l.Merge(l)
		requireChains(t, l, []int{4, 2}, []int{2, 4})
	})
}
