package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlossomSimplePath(t *testing.T) {
	a, b, c := NewNode(0), NewNode(1), NewNode(2)
	a.AddNeighbor(b)
	b.AddNeighbor(c)
	g := NewGraph([]*Node{a, b, c})

	m := Blossom(g, NewMatching())
	assert.Equal(t, 1, m.Size())
}

func TestBlossomFindsPerfectMatchingOnEvenCycle(t *testing.T) {
	nodes := make([]*Node, 4)
	for i := range nodes {
		nodes[i] = NewNode(i)
	}
	for i := range nodes {
		nodes[i].AddNeighbor(nodes[(i+1)%len(nodes)])
	}
	g := NewGraph(nodes)

	m := Blossom(g, NewMatching())
	assert.Equal(t, 2, m.Size())
	for _, n := range nodes {
		_, ok := m.Partner(n)
		assert.True(t, ok)
	}
}

func TestBlossomContractsOddCycle(t *testing.T) {
	// A 5-cycle (0-1-2-3-4-0) plus a pendant (5) hanging off node 0. A
	// matching that only looks at immediate neighbors would get stuck in the
	// odd cycle; Blossom must contract it to free up node 0 for the pendant.
	nodes := make([]*Node, 6)
	for i := range nodes {
		nodes[i] = NewNode(i)
	}
	for i := 0; i < 5; i++ {
		nodes[i].AddNeighbor(nodes[(i+1)%5])
	}
	nodes[0].AddNeighbor(nodes[5])
	g := NewGraph(nodes)

	m := Blossom(g, NewMatching())
	// Maximum matching on this graph has size 3: one edge must free node 0 to
	// pair with the pendant, leaving two more edges among the remaining four
	// cycle nodes.
	assert.Equal(t, 3, m.Size())
	_, ok := m.Partner(nodes[5])
	require.True(t, ok)
}

func TestBlossomExtendsSeedMatching(t *testing.T) {
	a, b, c, d := NewNode(0), NewNode(1), NewNode(2), NewNode(3)
	a.AddNeighbor(b)
	b.AddNeighbor(c)
	c.AddNeighbor(d)
	g := NewGraph([]*Node{a, b, c, d})

	seed := NewMatching()
	seed.Insert(b, c)

	m := Blossom(g, seed)
	assert.Equal(t, 2, m.Size())
}

func TestBlossomEmptyGraph(t *testing.T) {
	g := NewGraph(nil)
	m := Blossom(g, NewMatching())
	assert.Equal(t, 0, m.Size())
}
