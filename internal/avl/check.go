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

import "github.com/cockroachdb/errors"

// Verify checks every structural invariant of the tree: sentinel topology,
// parent links, stored heights, AVL balance, key order and the entry count.
// A non-nil error is always an assertion failure; it can only be caused by a
// bug in the tree itself.
func (t *Map[K, V]) Verify() error {
	r := t.root
	switch {
	case r == nil:
		return errors.AssertionFailedf("missing super-root")
	case r.parent != nil:
		return errors.AssertionFailedf("super-root has a parent")
	case r.left == nil || r.right == nil:
		return errors.AssertionFailedf("super-root is missing a child")
	case r.left.parent != r || r.right.parent != r:
		return errors.AssertionFailedf("super-root children are not linked back")
	case r.right.isInternal():
		return errors.AssertionFailedf("super-root right child holds an entry")
	}
	v := verifier[K, V]{cmp: t.cfg.cmp}
	if _, err := v.check(r.left); err != nil {
		return err
	}
	if v.count != t.length {
		return errors.AssertionFailedf("tree holds %d entries, length is %d", v.count, t.length)
	}
	return nil
}

type verifier[K, V any] struct {
	cmp     func(K, K) int
	count   int
	prev    K
	hasPrev bool
}

// check walks the subtree rooted at n in order and returns its height.
func (v *verifier[K, V]) check(n *node[K, V]) (int, error) {
	if (n.left == nil) != (n.right == nil) {
		return 0, errors.AssertionFailedf("node %v has exactly one child", n.key)
	}
	if n.isExternal() {
		if n.height != 0 {
			return 0, errors.AssertionFailedf("external node has height %d", n.height)
		}
		return 0, nil
	}
	if n.left.parent != n || n.right.parent != n {
		return 0, errors.AssertionFailedf("children of %v are not linked back", n.key)
	}
	hl, err := v.check(n.left)
	if err != nil {
		return 0, err
	}
	if v.hasPrev && v.cmp(v.prev, n.key) >= 0 {
		return 0, errors.AssertionFailedf("keys out of order: %v before %v", v.prev, n.key)
	}
	v.prev, v.hasPrev = n.key, true
	v.count++
	hr, err := v.check(n.right)
	if err != nil {
		return 0, err
	}
	h := hl
	if hr > h {
		h = hr
	}
	h++
	if n.height != h {
		return 0, errors.AssertionFailedf("node %v has height %d, expected %d", n.key, n.height, h)
	}
	if d := hl - hr; d < -1 || d > 1 {
		return 0, errors.AssertionFailedf("node %v is out of balance by %d", n.key, d)
	}
	return h, nil
}
