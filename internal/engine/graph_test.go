package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeAdjacency(t *testing.T) {
	a := NewNode(0)
	b := NewNode(1)
	assert.False(t, a.Adjacent(b))
	a.AddNeighbor(b)
	assert.True(t, a.Adjacent(b))
	assert.True(t, b.Adjacent(a))
	assert.Equal(t, 1, a.Degree())
	assert.Equal(t, 1, b.Degree())
}

func TestNodeAddNeighborSelfIsNoop(t *testing.T) {
	a := NewNode(0)
	a.AddNeighbor(a)
	assert.Equal(t, 0, a.Degree())
}

func TestNewEdgeCanonicalizesOrder(t *testing.T) {
	a := NewNode(0)
	b := NewNode(1)
	assert.Equal(t, NewEdge(a, b), NewEdge(b, a))
}

func TestMatchingInsertAndPartner(t *testing.T) {
	a := NewNode(0)
	b := NewNode(1)
	m := NewMatching()
	m.Insert(a, b)

	partner, ok := m.Partner(a)
	require.True(t, ok)
	assert.Equal(t, b, partner)
	assert.True(t, m.HasEdge(a, b))
	assert.Equal(t, 1, m.Size())
}

func TestMatchingInsertAlreadyMatchedPanics(t *testing.T) {
	a := NewNode(0)
	b := NewNode(1)
	c := NewNode(2)
	m := NewMatching()
	m.Insert(a, b)
	assert.Panics(t, func() {
		m.Insert(a, c)
	})
}

func TestMatchingPairsDeduplicates(t *testing.T) {
	a, b, c, d := NewNode(0), NewNode(1), NewNode(2), NewNode(3)
	m := NewMatching()
	m.Insert(a, b)
	m.Insert(c, d)
	assert.Len(t, m.Pairs(), 2)
}

func TestInitialMatchingEmpty(t *testing.T) {
	m := InitialMatching(nil)
	assert.Equal(t, 0, m.Size())
}

func TestInitialMatchingChain(t *testing.T) {
	a, b, c, d := NewNode(0), NewNode(1), NewNode(2), NewNode(3)
	a.AddNeighbor(b)
	b.AddNeighbor(c)
	c.AddNeighbor(d)

	m := InitialMatching([]*Node{a, b, c, d})
	// Every node ends up matched to an adjacent node; the deque heuristic
	// guarantees legality, not any particular pairing.
	assert.Equal(t, 2, m.Size())
	for _, n := range []*Node{a, b, c, d} {
		partner, ok := m.Partner(n)
		require.True(t, ok)
		assert.True(t, n.Adjacent(partner))
	}
}
