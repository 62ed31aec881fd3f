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

// trinode is the result of resolving a grandparent z, child y and grandchild
// x into in-order position. a, b and c are the three nodes sorted by key and
// t0..t3 are the subtrees hanging off the path, also in key order.
type trinode[K, V any] struct {
	a, b, c        *node[K, V]
	t0, t1, t2, t3 *node[K, V]
}

// shape orders the path z -> y -> x. yRight reports whether y is the right
// child of z and xRight whether x is the right child of y.
//
//	single left      single right     double left      double right
//	(yRight,xRight)  (!yR, !xR)       (yR, !xR)        (!yR, xR)
//
//	  z                    z            z                  z
//	 / \                  / \          / \                / \
//	t0  y                y  t3        t0  y              y  t3
//	   / \              / \              / \            / \
//	  t1  x            x  t2            x  t3          t0  x
//	     / \          / \              / \                / \
//	    t2 t3        t0 t1            t1 t2              t1 t2
func shape[K, V any](z, y, x *node[K, V], yRight, xRight bool) trinode[K, V] {
	switch {
	case yRight && xRight:
		return trinode[K, V]{a: z, b: y, c: x, t0: z.left, t1: y.left, t2: x.left, t3: x.right}
	case !yRight && !xRight:
		return trinode[K, V]{a: x, b: y, c: z, t0: x.left, t1: x.right, t2: y.right, t3: z.right}
	case yRight && !xRight:
		return trinode[K, V]{a: z, b: x, c: y, t0: z.left, t1: x.left, t2: x.right, t3: y.right}
	default:
		return trinode[K, V]{a: y, b: x, c: z, t0: y.left, t1: x.left, t2: x.right, t3: z.right}
	}
}

// link re-roots the trinode at b below parent, in the slot previously held by
// old, and recomputes the heights of a, c and b.
//
//	      b
//	    /   \
//	   a     c
//	  / \   / \
//	 t0 t1 t2 t3
func (t trinode[K, V]) link(parent, old *node[K, V]) *node[K, V] {
	parent.replaceChild(old, t.b)
	t.a.setChildren(t.t0, t.t1)
	t.c.setChildren(t.t2, t.t3)
	t.b.setChildren(t.a, t.c)
	t.a.setHeight()
	t.c.setHeight()
	t.b.setHeight()
	return t.b
}

// restructure performs a trinode restructuring around the tall grandchild x
// and returns the new local root.
func restructure[K, V any](x *node[K, V]) *node[K, V] {
	y := x.parent
	z := y.parent
	return shape(z, y, x, z.right == y, y.right == x).link(z.parent, z)
}

// tallGrandchild returns the grandchild of z reached by descending toward the
// taller child twice. When the grandchildren have equal height the one on the
// same side as the child is chosen, which yields a single rotation.
func tallGrandchild[K, V any](z *node[K, V]) *node[K, V] {
	zl, zr := z.left, z.right
	if zl.height >= zr.height {
		if zl.left.height >= zl.right.height {
			return zl.left
		}
		return zl.right
	}
	if zr.right.height >= zr.left.height {
		return zr.right
	}
	return zr.left
}

// rebalance walks from v toward the super-root, recomputing heights and
// restructuring every ancestor found out of balance. The super-root itself is
// never touched.
func rebalance[K, V any](v *node[K, V]) {
	z := v
	for !z.parent.isSuperRoot() {
		z = z.parent
		z.setHeight()
		if !z.balanced() {
			z = restructure(tallGrandchild(z))
		}
	}
}
