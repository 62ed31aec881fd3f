package avlmap

import "github.com/ajwerner/avlmap/internal/avl"

// Iterator is a position in a Map. Iterators compare equal with == when they
// are positioned at the same entry of the same Map. Iterators are obtained
// from a Map; the zero Iterator belongs to no Map and is never valid.
type Iterator[K, V any] struct {
	it avl.Iterator[K, V]
}

func (it *Iterator[K, V]) First() { it.it.First() }

func (it *Iterator[K, V]) Last() { it.it.Last() }

func (it *Iterator[K, V]) Next() { it.it.Next() }

func (it *Iterator[K, V]) Prev() { it.it.Prev() }

func (it *Iterator[K, V]) SeekGE(k K) { it.it.SeekGE(k) }

func (it *Iterator[K, V]) SeekLT(k K) { it.it.SeekLT(k) }

func (it *Iterator[K, V]) Valid() bool { return it.it.Valid() }

func (it *Iterator[K, V]) Key() K { return it.it.Key() }

func (it *Iterator[K, V]) Value() V { return it.it.Value() }

// ValuePtr returns a pointer to the value at the current position.
func (it *Iterator[K, V]) ValuePtr() *V { return it.it.ValuePtr() }

func (it *Iterator[K, V]) SetValue(v V) { it.it.SetValue(v) }
