// Package avlmap provides an ordered map backed by an AVL tree.
//
// Keys are unique and ordered by a caller supplied comparison function.
// Lookup, insertion and removal take O(log n) time regardless of the order
// of operations, and entries can be visited in either direction through an
// Iterator.
//
// A Map is not safe for concurrent mutation. Callers which share a Map
// between goroutines must serialize all mutating calls (Insert, Index,
// Erase, EraseAt, Clear, CopyFrom) and may only read concurrently while no
// mutation is in flight.
package avlmap

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"

	"github.com/ajwerner/avlmap/internal/avl"
)

// ErrNotFound is returned when an operation requires an entry which is not in
// the Map.
var ErrNotFound = errors.New("avlmap: not found")

// Compare is a comparison function for the naturally ordered types.
func Compare[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a == b:
		return 0
	default:
		return 1
	}
}

// Map is an ordered map from unique keys of type K to values of type V. Use
// MakeMap or New to create one.
type Map[K, V any] struct {
	t avl.Map[K, V]
}

// MakeMap returns an empty Map ordered by cmp.
func MakeMap[K, V any](cmp func(K, K) int) *Map[K, V] {
	return &Map[K, V]{t: avl.MakeMap[K, V](cmp)}
}

// New returns an empty Map over a naturally ordered key type.
func New[K constraints.Ordered, V any]() *Map[K, V] {
	return MakeMap[K, V](Compare[K])
}

// Clone returns a deep copy of m.
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{t: *m.t.Clone()}
}

// CopyFrom replaces the contents of m with a deep copy of src.
func (m *Map[K, V]) CopyFrom(src *Map[K, V]) {
	m.t.CopyFrom(&src.t)
}

// Len returns the number of entries in m.
func (m *Map[K, V]) Len() int { return m.t.Len() }

// Empty reports whether m holds no entries.
func (m *Map[K, V]) Empty() bool { return m.t.Len() == 0 }

// Height returns the height of the underlying tree.
func (m *Map[K, V]) Height() int { return m.t.Height() }

// Index returns a pointer to the value of k, inserting the zero value first
// if k is absent. The pointer stays valid until k is erased.
func (m *Map[K, V]) Index(k K) *V {
	return m.t.Index(k)
}

// At returns a pointer to the value of k. It returns ErrNotFound, and does
// not insert anything, if k is absent.
func (m *Map[K, V]) At(k K) (*V, error) {
	if v := m.t.Lookup(k); v != nil {
		return v, nil
	}
	return nil, errors.Wrapf(ErrNotFound, "key %v", k)
}

// Get returns the value of k and whether k was found.
func (m *Map[K, V]) Get(k K) (v V, ok bool) {
	if p := m.t.Lookup(k); p != nil {
		return *p, true
	}
	return v, false
}

// Insert adds k with value v if k is absent. An existing entry is left
// untouched. The returned Iterator is positioned at k either way.
func (m *Map[K, V]) Insert(k K, v V) (it Iterator[K, V], inserted bool) {
	it.it, inserted = m.t.Insert(k, v)
	return it, inserted
}

// Erase removes k and returns the number of removed entries, 0 or 1.
func (m *Map[K, V]) Erase(k K) int {
	return m.t.Delete(k)
}

// EraseAt removes the entry at it and returns an Iterator positioned at the
// following entry. It returns ErrNotFound if it is positioned at the end,
// belongs to another Map, or was obtained before m was cleared or
// overwritten by CopyFrom. Other Iterators positioned at the erased entry
// must not be used afterwards.
func (m *Map[K, V]) EraseAt(it Iterator[K, V]) (Iterator[K, V], error) {
	next, ok := m.t.EraseAt(it.it)
	if !ok {
		return Iterator[K, V]{next}, errors.Wrap(ErrNotFound, "erase at invalid position")
	}
	return Iterator[K, V]{next}, nil
}

// Clear removes all entries.
func (m *Map[K, V]) Clear() {
	m.t.Reset()
}

// Find returns an Iterator positioned at k, or End() if k is absent.
func (m *Map[K, V]) Find(k K) Iterator[K, V] {
	return Iterator[K, V]{m.t.Find(k)}
}

// Count returns 1 if k is present and 0 otherwise.
func (m *Map[K, V]) Count(k K) int {
	return m.t.Count(k)
}

// Begin returns an Iterator positioned at the smallest key.
func (m *Map[K, V]) Begin() Iterator[K, V] { return Iterator[K, V]{m.t.Begin()} }

// Last returns an Iterator positioned at the largest key.
func (m *Map[K, V]) Last() Iterator[K, V] { return Iterator[K, V]{m.t.Last()} }

// End returns the Iterator positioned past the largest key. It is the
// position reached by stepping past either end of the Map.
func (m *Map[K, V]) End() Iterator[K, V] { return Iterator[K, V]{m.t.End()} }

// MakeIter returns an Iterator positioned at the end.
func (m *Map[K, V]) MakeIter() Iterator[K, V] { return Iterator[K, V]{m.t.MakeIter()} }

// Ascend calls fn for every entry in key order until fn returns false.
func (m *Map[K, V]) Ascend(fn func(k K, v V) bool) {
	for it := m.t.Begin(); it.Valid(); it.Next() {
		if !fn(it.Key(), it.Value()) {
			return
		}
	}
}

// Descend calls fn for every entry in reverse key order until fn returns
// false.
func (m *Map[K, V]) Descend(fn func(k K, v V) bool) {
	for it := m.t.Last(); it.Valid(); it.Prev() {
		if !fn(it.Key(), it.Value()) {
			return
		}
	}
}

// Verify checks the structural invariants of the underlying tree. A non-nil
// error indicates a bug in this package.
func (m *Map[K, V]) Verify() error {
	return m.t.Verify()
}

func (m *Map[K, V]) String() string {
	return m.t.String()
}
