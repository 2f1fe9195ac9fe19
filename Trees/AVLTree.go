package Trees

import (
	"golang.org/x/exp/constraints"
)

// AVLTree is a binary search tree with no repeated values. It maintains
// balance through rotations by checking the cached heights of subtrees,
// so that the heights of the two subtrees of any node differ by at most 1.
// T is the type of the keys; S is the type of the indexes into the node arena,
// it must be wide enough to index every node the tree will hold.
// A freshly inserted leaf caches height 0, the same as an absent child; it
// caches 1+max(children) once recomputed by a rotation or a removal.
// All the operations are recursive; the recursion depth is bounded by the height.
// An AVLTree isn't safe for concurrent use.
type AVLTree[T constraints.Integer, S constraints.Unsigned] struct {
	base[S]
	vs []T // vs[i] is the key of ifs[i+1].
	sz S
}

// New returns an empty tree with room for hint nodes.
func New[T constraints.Integer, S constraints.Unsigned](hint S) *AVLTree[T, S] {
	return &AVLTree[T, S]{base: base[S]{ifs: make([]info[S], 1, int(hint)+1)}, vs: make([]T, 0, hint)}
}

// key of node i. i mustn't be 0.
func (u *AVLTree[T, S]) key(i S) T {
	return u.vs[i-1]
}

// alloc a fresh leaf holding v, reusing a free index if there's one.
func (u *AVLTree[T, S]) alloc(v T) S {
	if i := u.popFree(); i != 0 {
		u.ifs[i] = info[S]{}
		u.vs[i-1] = v
		return i
	}
	u.ifs = append(u.ifs, info[S]{})
	u.vs = append(u.vs, v)
	return S(len(u.ifs) - 1)
}

// Size of the tree.
// Time: O(1); Space: O(1)
func (u *AVLTree[T, S]) Size() uint {
	return uint(u.sz)
}

// insert v to the subtree rooting at i and return the new root of that subtree.
// The bool reports whether v was added; the subtree is untouched otherwise.
func (u *AVLTree[T, S]) insert(i S, v T) (S, bool) {
	if i == 0 {
		return u.alloc(v), true
	}
	inserted := false
	if k := u.key(i); v < k {
		var c S
		c, inserted = u.insert(u.ifs[i].l, v)
		u.setL(i, c)
	} else if v > k {
		var c S
		c, inserted = u.insert(u.ifs[i].r, v)
		u.setR(i, c)
	} else {
		return i, false
	}
	if !inserted {
		return i, false
	}
	u.recomputeHeight(i)
	return u.rebalanceInsert(i, v), true
}

// rebalanceInsert restores the balance of i after v was inserted below it. The
// single or double rotation is chosen by comparing v with the key of the child
// on the heavy side.
func (u *AVLTree[T, S]) rebalanceInsert(i S, v T) S {
	switch bf := u.balanceFactor(i); {
	case bf > 1 && v < u.key(u.ifs[i].l):
		return u.rotateRight(i)
	case bf < -1 && v > u.key(u.ifs[i].r):
		return u.rotateLeft(i)
	case bf > 1 && v > u.key(u.ifs[i].l):
		u.setL(i, u.rotateLeft(u.ifs[i].l))
		return u.rotateRight(i)
	case bf < -1 && v < u.key(u.ifs[i].r):
		u.setR(i, u.rotateRight(u.ifs[i].r))
		return u.rotateLeft(i)
	}
	return i
}

// Insert [Tree.Insert]. Inserting an existing key is a no-op that returns false.
// So is inserting into a tree that already holds as many nodes as S can index.
// Time: O(log n)
func (u *AVLTree[T, S]) Insert(v T) bool {
	if u.full() {
		return false
	}
	r, inserted := u.insert(u.root, v)
	if inserted {
		u.sz++
	}
	u.setRoot(r)
	return inserted
}

// remove v from the subtree rooting at i and return the new root of that subtree.
// A node with two children takes the key of its inorder successor, which is
// then removed from the right subtree instead.
func (u *AVLTree[T, S]) remove(i S, v T) (S, bool) {
	if i == 0 {
		return 0, false
	}
	removed := false
	if k := u.key(i); v < k {
		var c S
		c, removed = u.remove(u.ifs[i].l, v)
		u.setL(i, c)
	} else if v > k {
		var c S
		c, removed = u.remove(u.ifs[i].r, v)
		u.setR(i, c)
	} else {
		removed = true
		if n := u.ifs[i]; n.l == 0 || n.r == 0 {
			c := n.l
			if c == 0 {
				c = n.r
			}
			u.addFree(i)
			if c == 0 {
				return 0, true
			}
			i = c //the spliced child is recomputed and rebalanced in place of i.
		} else {
			s := u.key(u.minimum(n.r))
			u.vs[i-1] = s
			c, _ := u.remove(n.r, s)
			u.setR(i, c)
		}
	}
	if !removed {
		return i, false
	}
	u.recomputeHeight(i)
	return u.rebalanceRemove(i), true
}

// Remove [Tree.Remove]. Removing an absent key is a no-op that returns false.
// Time: O(log n)
func (u *AVLTree[T, S]) Remove(v T) bool {
	r, removed := u.remove(u.root, v)
	if removed {
		u.sz--
	}
	u.setRoot(r)
	return removed
}

// Has [Tree.Has]
// Time: O(log n); Space: O(1)
func (u *AVLTree[T, S]) Has(v T) bool {
	for cur := u.root; cur != 0; {
		if k := u.key(cur); v < k {
			cur = u.ifs[cur].l
		} else if v > k {
			cur = u.ifs[cur].r
		} else {
			return true
		}
	}
	return false
}

// corrupt reports whether the subtree rooting at i, whose parent is p and whose
// keys must lie strictly between the bounds, breaks any AVLTree property.
func (u *AVLTree[T, S]) corrupt(i, p S, lo, hi *T) bool {
	if i == 0 {
		return false
	}
	n, k := u.ifs[i], u.key(i)
	if n.p != p || (lo != nil && k <= *lo) || (hi != nil && k >= *hi) {
		return true
	}
	if n.l == 0 && n.r == 0 {
		return n.h > 1
	}
	if n.h != 1+max(u.ifs[n.l].h, u.ifs[n.r].h) {
		return true
	}
	if bf := u.balanceFactor(i); bf > 1 || bf < -1 {
		return true
	}
	return u.corrupt(n.l, i, lo, &k) || u.corrupt(n.r, i, &k, hi)
}

// Corrupt [Tree.Corrupt]. Checks search order, key uniqueness, cached heights,
// balance and parent indexes of every node.
// Time: O(n)
func (u *AVLTree[T, S]) Corrupt() bool {
	return u.ifs[0] != info[S]{} || u.corrupt(u.root, 0, nil, nil)
}
