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

import "sync"

// nodePool recycles the nodes released by removals. Both internal and
// external nodes share the pool since they have the same shape.
type nodePool[K, V any] struct {
	pool sync.Pool
}

var syncPoolMap sync.Map

func getNodePool[K, V any]() *nodePool[K, V] {
	var nilNode *node[K, V]
	v, ok := syncPoolMap.Load(nilNode)
	if !ok {
		v, _ = syncPoolMap.LoadOrStore(nilNode, newNodePool[K, V]())
	}
	return v.(*nodePool[K, V])
}

func newNodePool[K, V any]() *nodePool[K, V] {
	np := nodePool[K, V]{}
	np.pool = sync.Pool{
		New: func() interface{} {
			return new(node[K, V])
		},
	}
	return &np
}

// getExternalNode returns a fresh external node with a zero height and no
// links.
func (np *nodePool[K, V]) getExternalNode() *node[K, V] {
	return np.pool.Get().(*node[K, V])
}

func (np *nodePool[K, V]) putNode(n *node[K, V]) {
	*n = node[K, V]{}
	np.pool.Put(n)
}

// expand turns the external node n into an internal node by growing two
// fresh external children below it.
func (np *nodePool[K, V]) expand(n *node[K, V]) {
	n.setChildren(np.getExternalNode(), np.getExternalNode())
	n.setHeight()
}

// removeAboveExternal removes the external node w together with its parent,
// promoting w's sibling into the parent's slot. The promoted sibling is
// returned.
func (np *nodePool[K, V]) removeAboveExternal(w *node[K, V]) *node[K, V] {
	p := w.parent
	sib := w.sibling()
	p.parent.replaceChild(p, sib)
	np.putNode(w)
	np.putNode(p)
	return sib
}

// clone returns a deep copy of the subtree rooted at n, attached to parent.
func (np *nodePool[K, V]) clone(n, parent *node[K, V]) *node[K, V] {
	c := np.getExternalNode()
	c.parent = parent
	c.height = n.height
	c.key, c.value = n.key, n.value
	if n.isInternal() {
		c.left = np.clone(n.left, c)
		c.right = np.clone(n.right, c)
	}
	return c
}
