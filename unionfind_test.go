package phdim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnionFind_SingletonsAreDistinct(t *testing.T) {
	uf := newUnionFind(4)
	for i := 0; i < 4; i++ {
		assert.Equal(t, i, uf.find(i))
	}
}

func TestUnionFind_UnionMerges(t *testing.T) {
	uf := newUnionFind(4)

	assert.True(t, uf.union(0, 1))
	assert.Equal(t, uf.find(0), uf.find(1))
	assert.NotEqual(t, uf.find(0), uf.find(2))

	// Re-merging the same pair is a no-op.
	assert.False(t, uf.union(1, 0))
}

func TestUnionFind_TransitiveMerge(t *testing.T) {
	uf := newUnionFind(6)
	uf.union(0, 1)
	uf.union(2, 3)
	uf.union(1, 3)

	root := uf.find(0)
	for _, x := range []int{1, 2, 3} {
		assert.Equal(t, root, uf.find(x))
	}
	assert.NotEqual(t, root, uf.find(4))
	assert.NotEqual(t, root, uf.find(5))
}
