package Trees

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func build(t *testing.T, n int) *AVLTree[int, uint16] {
	t.Helper()
	tree := New[int, uint16](0)
	for _, v := range _R.Perm(n) {
		tree.Insert(v)
	}
	for _, v := range _R.Perm(n)[:n/3] {
		tree.Remove(v)
	}
	require.False(t, tree.Corrupt())
	return tree
}

func TestAVLTree_Clone(t *testing.T) {
	tree := build(t, 300)
	s := tree.Serialize()
	c := tree.Clone()
	require.Equal(t, s, c.Serialize())
	require.Equal(t, tree.Size(), c.Size())
	assert.False(t, c.Corrupt())
	assert.Equal(t, tree.Height(), c.Height())

	for v := range 300 {
		c.Insert(v)
	}
	assert.Equal(t, s, tree.Serialize(), "changing the clone changed the source")
	cs := c.Serialize()
	for v := range 150 {
		tree.Remove(v)
	}
	assert.Equal(t, cs, c.Serialize(), "changing the source changed the clone")
	assert.False(t, tree.Corrupt())
	assert.False(t, c.Corrupt())
}

// TestAVLTree_CloneBehaves checks that a clone carries the cached heights, so it
// keeps producing the same shapes as the source.
func TestAVLTree_CloneBehaves(t *testing.T) {
	tree := build(t, 200)
	c := tree.Clone()
	for range 500 {
		v := _R.Intn(400)
		if _R.Intn(2) == 0 {
			tree.Insert(v)
			c.Insert(v)
		} else {
			tree.Remove(v)
			c.Remove(v)
		}
		require.Equal(t, tree.Serialize(), c.Serialize())
	}
}

func TestAVLTree_CopyFrom(t *testing.T) {
	dst, src := build(t, 100), build(t, 250)
	dst.CopyFrom(src)
	assert.Equal(t, src.Serialize(), dst.Serialize())
	assert.Equal(t, src.Size(), dst.Size())
	assert.False(t, dst.Corrupt())

	dst.Insert(1000)
	assert.False(t, src.Has(1000))

	s := dst.Serialize()
	dst.CopyFrom(dst)
	assert.Equal(t, s, dst.Serialize(), "copying into itself changed the tree")

	dst.CopyFrom(New[int, uint16](0))
	assert.Zero(t, dst.Size())
	assert.Equal(t, "", dst.Serialize())
}

func TestAVLTree_MoveFrom(t *testing.T) {
	dst, src := build(t, 100), build(t, 250)
	s, n := src.Serialize(), src.Size()
	dst.MoveFrom(src)
	assert.Equal(t, s, dst.Serialize())
	assert.Equal(t, n, dst.Size())
	assert.False(t, dst.Corrupt())

	assert.Zero(t, src.Size())
	assert.Equal(t, "", src.Serialize())
	assert.False(t, src.Corrupt())
	src.Clear()
	assert.True(t, src.Insert(5), "a moved from tree is usable")
	assert.Equal(t, "5,#,#", src.Serialize())
	assert.False(t, dst.Has(5))

	dst.MoveFrom(dst)
	assert.Equal(t, s, dst.Serialize(), "moving into itself changed the tree")
}

func TestAVLTree_Clear(t *testing.T) {
	tree := build(t, 100)
	c := cap(tree.vs)
	tree.Clear()
	assert.Zero(t, tree.Size())
	assert.Equal(t, "", tree.Serialize())
	assert.False(t, tree.Corrupt())
	assert.Equal(t, c, cap(tree.vs))
	tree.Clear()
	assert.Zero(t, tree.Size())

	for v := range 50 {
		tree.Insert(v)
	}
	assert.Equal(t, uint(50), tree.Size())
	assert.False(t, tree.Corrupt())
}
