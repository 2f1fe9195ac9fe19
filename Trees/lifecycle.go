package Trees

// clone the subtree rooting at i of u into dst and return the index of the copy.
// Keys and cached heights are copied; links are rebuilt in dst's arena.
func (u *AVLTree[T, S]) clone(dst *AVLTree[T, S], i S) S {
	if i == 0 {
		return 0
	}
	c := dst.alloc(u.key(i))
	dst.ifs[c].h = u.ifs[i].h
	l := u.clone(dst, u.ifs[i].l)
	dst.setL(c, l)
	r := u.clone(dst, u.ifs[i].r)
	dst.setR(c, r)
	return c
}

// Clone returns a deep copy of the tree. The copy shares nothing with u, and
// behaves exactly as u under further operations. Recursive.
// The cached heights are copied rather than recomputed from the links.
// Time: O(n)
func (u *AVLTree[T, S]) Clone() *AVLTree[T, S] {
	t := New[T, S](u.sz)
	t.setRoot(u.clone(t, u.root))
	t.sz = u.sz
	return t
}

// CopyFrom replaces the contents of u with a deep copy of o, reusing u's memory.
// Copying a tree into itself is a no-op. Recursive.
// Time: O(n)
func (u *AVLTree[T, S]) CopyFrom(o *AVLTree[T, S]) {
	if u == o {
		return
	}
	u.Clear()
	u.setRoot(o.clone(u, o.root))
	u.sz = o.sz
}

// MoveFrom hands the contents of o over to u, dropping what u held before.
// o is left empty and can be used again. Moving a tree into itself is a no-op.
// Time: O(1)
func (u *AVLTree[T, S]) MoveFrom(o *AVLTree[T, S]) {
	if u == o {
		return
	}
	*u = *o
	*o = AVLTree[T, S]{}
	o.Clear()
}

// Clear [Tree.Clear]. The underlying arrays keep their capacity.
// Time: O(1)
func (u *AVLTree[T, S]) Clear() {
	u.ifs = append(u.ifs[:0], info[S]{})
	u.vs = u.vs[:0]
	u.root, u.free, u.sz = 0, 0, 0
}
