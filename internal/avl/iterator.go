// Copyright 2018 The Cockroach Authors.
// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package avl

// Iterator is a position within a Map. Two Iterators are equal, by ==, when
// they are positioned at the same node of the same Map.
//
// The end position is held by the super-root. Prev from the end moves to the
// largest key and Prev from the smallest key moves back to the end.
type Iterator[K, V any] struct {
	t *Map[K, V]
	n *node[K, V]
}

// Reset positions the Iterator at the end. The zero Iterator belongs to no
// Map and always stays at the end.
func (i *Iterator[K, V]) Reset() {
	if i.t == nil {
		i.n = nil
		return
	}
	i.n = i.t.root
}

// SeekGE seeks to the first key greater-than or equal to the provided
// key.
func (i *Iterator[K, V]) SeekGE(key K) {
	if i.Reset(); i.t == nil {
		return
	}
	n := i.t.root.left
	for n.isInternal() {
		c := i.t.cfg.Compare(key, n.key)
		switch {
		case c == 0:
			i.n = n
			return
		case c < 0:
			i.n = n
			n = n.left
		default:
			n = n.right
		}
	}
}

// SeekLT seeks to the first key less-than the provided key.
func (i *Iterator[K, V]) SeekLT(key K) {
	if i.Reset(); i.t == nil {
		return
	}
	n := i.t.root.left
	for n.isInternal() {
		if i.t.cfg.Compare(key, n.key) <= 0 {
			n = n.left
		} else {
			i.n = n
			n = n.right
		}
	}
}

// First seeks to the first key in the Map.
func (i *Iterator[K, V]) First() {
	if i.t == nil {
		return
	}
	i.n = i.t.root.leftmost()
}

// Last seeks to the last key in the Map.
func (i *Iterator[K, V]) Last() {
	if i.t == nil {
		return
	}
	i.n = i.t.root.prev()
}

// Next positions the Iterator to the key immediately following
// its current position.
func (i *Iterator[K, V]) Next() {
	if i.n != nil {
		i.n = i.n.next()
	}
}

// Prev positions the Iterator to the key immediately preceding
// its current position.
func (i *Iterator[K, V]) Prev() {
	if i.n != nil {
		i.n = i.n.prev()
	}
}

// Valid returns whether the Iterator is positioned at an entry.
func (i *Iterator[K, V]) Valid() bool {
	return i.n != nil && !i.n.isSuperRoot()
}

// Key returns the key at the Iterator's current position. It is illegal
// to call Key if the Iterator is not valid.
func (i *Iterator[K, V]) Key() K {
	return i.n.key
}

// Value returns the value at the Iterator's current position. It is illegal
// to call Value if the Iterator is not valid.
func (i *Iterator[K, V]) Value() V {
	return i.n.value
}

// ValuePtr returns a pointer to the value at the Iterator's current
// position. The key is not reachable for mutation.
func (i *Iterator[K, V]) ValuePtr() *V {
	return &i.n.value
}

// SetValue overwrites the value at the Iterator's current position.
func (i *Iterator[K, V]) SetValue(v V) {
	i.n.value = v
}
