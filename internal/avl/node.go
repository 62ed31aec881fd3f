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

// node is either internal, holding a key and value and exactly two children,
// or external, a valueless sentinel with no children. The children are owned
// by the node; parent is a back-pointer and is never followed to free or copy
// anything. The only node with a nil parent is the super-root of a Map.
type node[K, V any] struct {
	parent *node[K, V]
	left   *node[K, V]
	right  *node[K, V]
	// height is 0 for external nodes.
	height int
	key    K
	value  V
}

func (n *node[K, V]) isExternal() bool { return n.left == nil && n.right == nil }
func (n *node[K, V]) isInternal() bool { return !n.isExternal() }
func (n *node[K, V]) isSuperRoot() bool { return n.parent == nil }

func (n *node[K, V]) setHeight() {
	hl, hr := n.left.height, n.right.height
	if hl < hr {
		hl = hr
	}
	n.height = hl + 1
}

func (n *node[K, V]) balance() int {
	return n.left.height - n.right.height
}

func (n *node[K, V]) balanced() bool {
	b := n.balance()
	return b >= -1 && b <= 1
}

// replace overwrites the payload of n. The identity of n, and with it every
// link pointing at n, is unchanged.
func (n *node[K, V]) replace(k K, v V) {
	n.key = k
	n.value = v
}

// setChildren links l and r below n.
func (n *node[K, V]) setChildren(l, r *node[K, V]) {
	n.left, n.right = l, r
	l.parent, r.parent = n, n
}

// replaceChild swaps the child link of n pointing at old so that it points at
// repl.
func (n *node[K, V]) replaceChild(old, repl *node[K, V]) {
	if n.left == old {
		n.left = repl
	} else {
		n.right = repl
	}
	repl.parent = n
}

// sibling returns the other child of n's parent.
func (n *node[K, V]) sibling() *node[K, V] {
	if p := n.parent; p.left != n {
		return p.left
	}
	return n.parent.right
}

// leftmost returns the left-most internal node of the subtree rooted at n,
// or n's parent if n is external.
func (n *node[K, V]) leftmost() *node[K, V] {
	for n.isInternal() {
		n = n.left
	}
	return n.parent
}

// rightmost is the mirror of leftmost.
func (n *node[K, V]) rightmost() *node[K, V] {
	for n.isInternal() {
		n = n.right
	}
	return n.parent
}

// next returns the in-order successor of n. The super-root is returned when
// n holds the largest key, and next of the super-root is the super-root.
func (n *node[K, V]) next() *node[K, V] {
	if n.right.isInternal() {
		return n.right.leftmost()
	}
	for w := n.parent; w != nil; n, w = w, w.parent {
		if n == w.left {
			return w
		}
	}
	return n
}

// prev returns the in-order predecessor of n. prev of the super-root is the
// node holding the largest key and prev of the smallest key is the
// super-root.
func (n *node[K, V]) prev() *node[K, V] {
	if n.left.isInternal() {
		return n.left.rightmost()
	}
	for w := n.parent; w != nil; n, w = w, w.parent {
		if n == w.right {
			return w
		}
	}
	return n
}
