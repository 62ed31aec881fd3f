package avlmap

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDummyMap(t *testing.T) *Map[int, string] {
	t.Helper()
	m := New[int, string]()
	*m.Index(3) = "l"
	*m.Index(1) = "H"
	*m.Index(2) = "e"
	*m.Index(5) = "o"
	*m.Index(4) = "l"
	require.NoError(t, m.Verify())
	return m
}

func entries(m *Map[int, string]) (ks []int, vs []string) {
	m.Ascend(func(k int, v string) bool {
		ks = append(ks, k)
		vs = append(vs, v)
		return true
	})
	return ks, vs
}

func TestDefault(t *testing.T) {
	m := New[int, string]()
	assert.Equal(t, 0, m.Len())
	assert.True(t, m.Empty())
	assert.True(t, m.Begin() == m.End())
}

func TestElementAccess(t *testing.T) {
	m := setupDummyMap(t)
	assert.Equal(t, "o", *m.Index(5))
	assert.Equal(t, 5, m.Len())
	assert.Equal(t, "", *m.Index(7))
	assert.Equal(t, 6, m.Len())

	v, err := m.At(5)
	require.NoError(t, err)
	assert.Equal(t, "o", *v)
	*v = "O"
	got, ok := m.Get(5)
	assert.True(t, ok)
	assert.Equal(t, "O", got)

	_, err = m.At(8)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 6, m.Len())
}

func TestFindAndCount(t *testing.T) {
	m := setupDummyMap(t)
	it := m.Find(5)
	require.True(t, it.Valid())
	assert.Equal(t, 5, it.Key())
	assert.Equal(t, "o", it.Value())
	assert.True(t, m.Find(7) == m.End())
	assert.Equal(t, 1, m.Count(5))
	assert.Equal(t, 0, m.Count(7))
}

func TestInsert(t *testing.T) {
	m := setupDummyMap(t)

	it, inserted := m.Insert(5, "x")
	assert.False(t, inserted)
	assert.Equal(t, "o", it.Value())
	assert.Equal(t, 5, m.Len())
	assert.True(t, it == m.Find(5))

	it, inserted = m.Insert(7, "!")
	assert.True(t, inserted)
	assert.Equal(t, 6, m.Len())
	j := m.Begin()
	for j != m.End() && j != it {
		j.Next()
	}
	assert.True(t, j == it)
}

func TestErase(t *testing.T) {
	m := setupDummyMap(t)
	j := m.Begin()
	j.Next()
	i, err := m.EraseAt(m.Begin())
	require.NoError(t, err)
	assert.True(t, i == j)
	assert.Equal(t, 4, m.Len())

	_, err = m.EraseAt(m.End())
	require.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, 1, m.Erase(5))
	assert.Equal(t, 0, m.Erase(5))
	assert.Equal(t, 3, m.Len())
	assert.True(t, m.Find(5) == m.End())
	ks, _ := entries(m)
	assert.Equal(t, []int{2, 3, 4}, ks)
}

func TestEraseAtStalePosition(t *testing.T) {
	m := setupDummyMap(t)
	it := m.Find(3)
	m.Clear()
	_, err := m.EraseAt(it)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, m.Len())
	require.NoError(t, m.Verify())

	m = setupDummyMap(t)
	it = m.Find(3)
	m.CopyFrom(New[int, string]())
	_, err = m.EraseAt(it)
	require.ErrorIs(t, err, ErrNotFound)
	assert.True(t, m.Empty())
	require.NoError(t, m.Verify())

	var zero Iterator[int, string]
	_, err = m.EraseAt(zero)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCopy(t *testing.T) {
	m1 := setupDummyMap(t)
	for _, tc := range []struct {
		name string
		copy func() *Map[int, string]
	}{
		{"clone", m1.Clone},
		{"assign", func() *Map[int, string] {
			m2 := New[int, string]()
			*m2.Index(4) = "*"
			m2.CopyFrom(m1)
			return m2
		}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m2 := tc.copy()
			require.NoError(t, m2.Verify())
			for it := m2.Begin(); it != m2.End(); it.Next() {
				it.SetValue("w")
			}
			require.Equal(t, m1.Len(), m2.Len())
			_, vs1 := entries(m1)
			_, vs2 := entries(m2)
			assert.NotContains(t, vs1, "w")
			assert.Equal(t, []string{"w", "w", "w", "w", "w"}, vs2)
		})
	}
}

func TestClear(t *testing.T) {
	m := setupDummyMap(t)
	c := m.Clone()
	m.Clear()
	assert.True(t, m.Empty())
	assert.Equal(t, ";", m.String())
	require.NoError(t, m.Verify())
	assert.Equal(t, 5, c.Len())
	*m.Index(1) = "again"
	assert.Equal(t, 1, m.Len())
}

func TestDescend(t *testing.T) {
	m := setupDummyMap(t)
	var ks []int
	m.Descend(func(k int, _ string) bool {
		ks = append(ks, k)
		return k > 3
	})
	assert.Equal(t, []int{5, 4, 3}, ks)
}

func TestIterationOrder(t *testing.T) {
	t.Parallel()
	const N = 10000
	m := New[int, int]()
	perm := rand.Perm(N)
	for _, k := range perm {
		_, inserted := m.Insert(k, -k)
		require.True(t, inserted)
	}
	require.NoError(t, m.Verify())
	prev := -1
	for it := m.Begin(); it != m.End(); it.Next() {
		require.Greater(t, it.Key(), prev)
		require.Equal(t, -it.Key(), it.Value())
		prev = it.Key()
	}
	require.Equal(t, N-1, prev)
	next := N
	for it := m.Last(); it != m.End(); it.Prev() {
		require.Less(t, it.Key(), next)
		next = it.Key()
	}
	require.Equal(t, 0, next)

	for _, k := range perm[:N/2] {
		require.Equal(t, 1, m.Erase(k))
	}
	require.NoError(t, m.Verify())
	require.Equal(t, N/2, m.Len())
}
