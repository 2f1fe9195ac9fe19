package Trees

import (
	"golang.org/x/exp/constraints"
)

// A node in the arena.
// The zero value is a fresh leaf. ifs[0] is the absent node: a loopback with
// height 0 that is never written.
type info[S constraints.Unsigned] struct {
	l, r, p S // children and parent; 0 means absent.
	h       S // cached height.
}

type base[S constraints.Unsigned] struct {
	root, free S         // free is the beginning of the linked list that contains all the free indexes, in which case we use l as next.
	ifs        []info[S] // all index is based on ifs.
}

// height of the subtree rooting at i. Cached, O(1).
func (u *base[S]) height(i S) S {
	return u.ifs[i].h
}

// balanceFactor is height(left)-height(right), 0 for the absent node.
func (u *base[S]) balanceFactor(i S) int {
	if i == 0 {
		return 0
	}
	n := &u.ifs[i]
	return int(u.ifs[n.l].h) - int(u.ifs[n.r].h)
}

// recomputeHeight of i from its children. i mustn't be 0.
func (u *base[S]) recomputeHeight(i S) {
	n := &u.ifs[i]
	n.h = 1 + max(u.ifs[n.l].h, u.ifs[n.r].h)
}

func (u *base[S]) setL(i, c S) {
	u.ifs[i].l = c
	if c != 0 {
		u.ifs[c].p = i
	}
}

func (u *base[S]) setR(i, c S) {
	u.ifs[i].r = c
	if c != 0 {
		u.ifs[c].p = i
	}
}

// rotateRight around y and return the new local root, the former y.l.
//
//	    y          x
//	   / \        / \
//	  x   c  ->  a   y
//	 / \            / \
//	a   b          b   c
//
// Time: O(1); Space: O(1)
func (u *base[S]) rotateRight(y S) S {
	x := u.ifs[y].l
	b := u.ifs[x].r

	u.ifs[y].l = b
	if b != 0 {
		u.ifs[b].p = y
	}
	u.ifs[x].r, u.ifs[x].p = y, u.ifs[y].p
	u.ifs[y].p = x

	u.recomputeHeight(y) //y is now below x.
	u.recomputeHeight(x)
	return x
}

// rotateLeft is the mirror of rotateRight: x.r becomes the new local root.
// Time: O(1); Space: O(1)
func (u *base[S]) rotateLeft(x S) S {
	y := u.ifs[x].r
	b := u.ifs[y].l

	u.ifs[x].r = b
	if b != 0 {
		u.ifs[b].p = x
	}
	u.ifs[y].l, u.ifs[y].p = x, u.ifs[x].p
	u.ifs[x].p = y

	u.recomputeHeight(x)
	u.recomputeHeight(y)
	return y
}

// rebalanceRemove restores the balance of i after a removal below it, choosing the
// rotation by the balance factor of the taller child. i's height must be up-to-date.
func (u *base[S]) rebalanceRemove(i S) S {
	switch bf := u.balanceFactor(i); {
	case bf > 1 && u.balanceFactor(u.ifs[i].l) >= 0:
		return u.rotateRight(i)
	case bf > 1:
		u.setL(i, u.rotateLeft(u.ifs[i].l))
		return u.rotateRight(i)
	case bf < -1 && u.balanceFactor(u.ifs[i].r) <= 0:
		return u.rotateLeft(i)
	case bf < -1:
		u.setR(i, u.rotateRight(u.ifs[i].r))
		return u.rotateLeft(i)
	}
	return i
}

// minimum index in the subtree rooting at i. i mustn't be 0.
func (u *base[S]) minimum(i S) S {
	for u.ifs[i].l != 0 {
		i = u.ifs[i].l
	}
	return i
}

// addFree index once.
func (u *base[S]) addFree(a S) {
	u.ifs[a] = info[S]{l: u.free}
	u.free = a
}

// popFree index once. Returns 0 when there's no free index(when u.free==0).
func (u *base[S]) popFree() S {
	b := u.free
	u.free = u.ifs[u.free].l
	return b
}

// full reports whether every index S can address is taken.
func (u *base[S]) full() bool {
	return u.free == 0 && uint64(len(u.ifs)) > uint64(^S(0))
}

// setRoot and detach it from any parent.
func (u *base[S]) setRoot(i S) {
	if u.root = i; i != 0 {
		u.ifs[i].p = 0
	}
}

// Height of the tree according to the cached heights.
func (u *base[S]) Height() S {
	return u.ifs[u.root].h
}

// fits calls f with every pair of heights (a, b) that the subtrees l and r can
// take while differing by at most 1, smaller a first then smaller b. d and m are
// as in span. It stops as soon as f returns false.
func fits[S constraints.Unsigned](l, r S, d []S, m []uint8, f func(a, b S) bool) {
	for x := S(0); x < 2; x++ {
		if m[l]>>x&1 == 0 {
			continue
		}
		for y := S(0); y < 2; y++ {
			if m[r]>>y&1 == 0 {
				continue
			}
			if a, b := d[l]+x, d[r]+y; a <= b+1 && b <= a+1 && !f(a, b) {
				return
			}
		}
	}
}

// span fills, post-order, d[i] with the number of edges on the longest downward
// path from i and m[i] with the heights i can cache with every node below it
// balanced: bit 0 for d[i], bit 1 for d[i]+1. A leaf can cache 0 or 1.
// Returns the first node that can't be balanced, 0 if there's none.
func (u *base[S]) span(i S, d []S, m []uint8) S {
	n := u.ifs[i]
	if n.l == 0 && n.r == 0 {
		d[i], m[i] = 0, 3
		return 0
	}
	for _, c := range [2]S{n.l, n.r} {
		if c != 0 {
			if bad := u.span(c, d, m); bad != 0 {
				return bad
			}
		}
	}
	d[i], m[i] = 1+max(d[n.l], d[n.r]), 0
	fits(n.l, n.r, d, m, func(a, b S) bool {
		m[i] |= 1 << (1 + max(a, b) - d[i])
		return true
	})
	if m[i] == 0 {
		return i
	}
	return 0
}

// assign h to i and the lowest fitting heights to the nodes below it.
func (u *base[S]) assign(i, h S, d []S, m []uint8) {
	n := &u.ifs[i]
	if n.h = h; n.l == 0 && n.r == 0 {
		return
	}
	l, r := n.l, n.r
	fits(l, r, d, m, func(a, b S) bool {
		if 1+max(a, b) != h {
			return true
		}
		if l != 0 {
			u.assign(l, a, d, m)
		}
		if r != 0 {
			u.assign(r, b, d, m)
		}
		return false
	})
}

// settle the cached heights of a tree whose links are final but whose heights
// aren't known, picking the lowest heights that keep every node balanced.
// Returns a node whose subtree can't be balanced, 0 on success. Recursive.
// Time: O(n)
func (u *base[S]) settle() S {
	if u.root == 0 {
		return 0
	}
	d, m := make([]S, len(u.ifs)), make([]uint8, len(u.ifs))
	m[0] = 1 //the absent node only has height 0.
	if bad := u.span(u.root, d, m); bad != 0 {
		return bad
	}
	h := d[u.root]
	if m[u.root]&1 == 0 {
		h++
	}
	u.assign(u.root, h, d, m)
	return 0
}
