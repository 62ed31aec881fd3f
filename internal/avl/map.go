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

import (
	"fmt"
	"strings"

	"github.com/ajwerner/avlmap/internal/invariants"
)

// Map is an AVL tree with explicit external sentinel leaves.
//
// The real root of the tree is the left child of a synthetic super-root which
// carries no entry and doubles as the end position of iteration.
//
// Map is not safe for concurrent use. Reads may run concurrently only while
// no mutation is in flight.
type Map[K, V any] struct {
	root   *node[K, V]
	length int
	cfg    config[K, V]
}

// MakeMap constructs a new, empty Map ordered by cmp.
func MakeMap[K, V any](cmp func(K, K) int) Map[K, V] {
	m := Map[K, V]{cfg: makeConfig[K, V](cmp)}
	m.init()
	return m
}

func (t *Map[K, V]) init() {
	t.root = t.cfg.np.getExternalNode()
	t.cfg.np.expand(t.root)
	t.length = 0
}

// locate returns the internal node holding k or, if k is absent, the
// external node where k belongs.
func (t *Map[K, V]) locate(k K) *node[K, V] {
	n := t.root.left
	for n.isInternal() {
		c := t.cfg.Compare(k, n.key)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}
	return n
}

// put inserts k with value v if k is absent. It returns the node holding k
// and whether an insertion happened.
func (t *Map[K, V]) put(k K, v V) (*node[K, V], bool) {
	n := t.locate(k)
	if n.isInternal() {
		return n, false
	}
	t.cfg.np.expand(n)
	n.replace(k, v)
	rebalance(n)
	t.length++
	t.assertValid()
	return n, true
}

// erase removes the entry held by the internal node n and returns the node
// holding the entry which followed it.
func (t *Map[K, V]) erase(n *node[K, V]) *node[K, V] {
	var w, next *node[K, V]
	switch {
	case n.left.isExternal():
		w, next = n.left, n.next()
	case n.right.isExternal():
		w, next = n.right, n.next()
	default:
		s := n.right.leftmost()
		n.replace(s.key, s.value)
		w, next = s.left, n
	}
	rebalance(t.cfg.np.removeAboveExternal(w))
	t.length--
	t.assertValid()
	return next
}

// Insert adds k with value v unless k is already present, in which case the
// Map is left untouched. It returns an Iterator positioned at k and whether
// an insertion happened.
func (t *Map[K, V]) Insert(k K, v V) (Iterator[K, V], bool) {
	n, inserted := t.put(k, v)
	return t.iterAt(n), inserted
}

// Index returns a pointer to the value stored for k, inserting the zero value
// first if k is absent.
func (t *Map[K, V]) Index(k K) *V {
	var zero V
	n, _ := t.put(k, zero)
	return &n.value
}

// Lookup returns a pointer to the value stored for k or nil if k is absent.
func (t *Map[K, V]) Lookup(k K) *V {
	if n := t.locate(k); n.isInternal() {
		return &n.value
	}
	return nil
}

// Find returns an Iterator positioned at k, or at the end position if k is
// absent.
func (t *Map[K, V]) Find(k K) Iterator[K, V] {
	if n := t.locate(k); n.isInternal() {
		return t.iterAt(n)
	}
	return t.End()
}

// Count returns 1 if k is present and 0 otherwise.
func (t *Map[K, V]) Count(k K) int {
	if t.locate(k).isInternal() {
		return 1
	}
	return 0
}

// Delete removes k from the Map, returning the number of removed entries.
func (t *Map[K, V]) Delete(k K) int {
	n := t.locate(k)
	if n.isExternal() {
		return 0
	}
	t.erase(n)
	return 1
}

// EraseAt removes the entry at the position of it and returns an Iterator
// positioned at the following entry. It reports false if it is not
// positioned at an entry of t, including when it was positioned before t
// was Reset or overwritten by CopyFrom.
func (t *Map[K, V]) EraseAt(it Iterator[K, V]) (Iterator[K, V], bool) {
	if it.t != t || !it.Valid() || !t.holds(it.n) {
		return t.End(), false
	}
	return t.iterAt(t.erase(it.n)), true
}

// holds reports whether n is attached to the current tree of t. Trees
// dropped by Reset or CopyFrom keep their links, so this walks up to the
// super-root.
func (t *Map[K, V]) holds(n *node[K, V]) bool {
	for n.parent != nil {
		n = n.parent
	}
	return n == t.root
}

// Reset removes all entries from the Map. The old tree is dropped as a whole
// and left to the garbage collector.
func (t *Map[K, V]) Reset() {
	t.init()
}

// Clone returns a deep copy of the Map. No node is shared between the
// receiver and the copy.
func (t *Map[K, V]) Clone() *Map[K, V] {
	c := &Map[K, V]{cfg: t.cfg, length: t.length}
	c.root = t.cfg.np.clone(t.root, nil)
	return c
}

// CopyFrom replaces the contents of the receiver with a deep copy of src.
func (t *Map[K, V]) CopyFrom(src *Map[K, V]) {
	if t == src {
		return
	}
	t.cfg = src.cfg
	t.root = src.cfg.np.clone(src.root, nil)
	t.length = src.length
}

// Len returns the number of entries currently in the Map.
func (t *Map[K, V]) Len() int {
	return t.length
}

// Height returns the height of the tree, not counting external nodes.
func (t *Map[K, V]) Height() int {
	return t.root.left.height
}

// MakeIter returns a new Iterator positioned at the end. It is not safe to
// continue using an Iterator positioned at an entry after that entry has been
// removed.
func (t *Map[K, V]) MakeIter() Iterator[K, V] {
	return t.End()
}

// Begin returns an Iterator positioned at the smallest key, or at the end if
// the Map is empty.
func (t *Map[K, V]) Begin() Iterator[K, V] {
	return t.iterAt(t.root.leftmost())
}

// Last returns an Iterator positioned at the largest key, or at the end if the
// Map is empty.
func (t *Map[K, V]) Last() Iterator[K, V] {
	return t.iterAt(t.root.prev())
}

// End returns the Iterator positioned one past the largest key.
func (t *Map[K, V]) End() Iterator[K, V] {
	return t.iterAt(t.root)
}

func (t *Map[K, V]) iterAt(n *node[K, V]) Iterator[K, V] {
	return Iterator[K, V]{t: t, n: n}
}

// String returns a string description of the tree. The format is
// similar to the https://en.wikipedia.org/wiki/Newick_format.
func (t *Map[K, V]) String() string {
	if t.length == 0 {
		return ";"
	}
	var b strings.Builder
	writeString(&b, t.root.left)
	b.WriteString(";")
	return b.String()
}

func writeString[K, V any](b *strings.Builder, n *node[K, V]) {
	if n.left.isInternal() || n.right.isInternal() {
		b.WriteString("(")
		if n.left.isInternal() {
			writeString(b, n.left)
		}
		b.WriteString(",")
		if n.right.isInternal() {
			writeString(b, n.right)
		}
		b.WriteString(")")
	}
	fmt.Fprintf(b, "%v:%v", n.key, n.value)
}

func (t *Map[K, V]) assertValid() {
	if !invariants.Enabled {
		return
	}
	if err := t.Verify(); err != nil {
		panic(err)
	}
}
