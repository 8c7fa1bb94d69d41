// internal/engine/pairing.go
// Swiss pairing for one bucket of same-match-point competitors: builds the
// "legal pairing" graph (an edge iff the two have not already played), trims
// the trivial degree-0/degree-1 cases, and hands the rest to Blossom for a
// maximum matching.

package engine

import "math/rand"

// pairedCompetitors is one resolved pairing within a bucket.
type pairedCompetitors struct {
	a, b *Competitor
}

// chunkPairing is the result of pairing one bucket: resolved pairs, plus
// competitors this bucket could not legally pair (carried to the next,
// lower-point bucket by the caller).
type chunkPairing struct {
	paired   []pairedCompetitors
	unpaired []*Competitor
}

// pairChunk randomly shuffles players (to approximate a uniformly random
// choice among maximum matchings) and pairs as many as possible without
// repeating a prior opponent.
func pairChunk(players []*Competitor, rng *rand.Rand) chunkPairing {
	shuffled := make([]*Competitor, len(players))
	copy(shuffled, players)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return pairChunkInternal(shuffled)
}

func pairChunkInternal(players []*Competitor) chunkPairing {
	nodes := make([]*Node, len(players))
	nodeToPlayer := make(map[*Node]*Competitor, len(players))
	for i, p := range players {
		n := NewNode(i)
		nodes[i] = n
		nodeToPlayer[n] = p
	}

	for i := range nodes {
		for j := 0; j < i; j++ {
			if players[i].HasPlayedOpp(players[j]) {
				continue
			}
			nodes[i].AddNeighbor(nodes[j])
		}
	}

	var out chunkPairing
	// settled tracks every node no longer in play for the Blossom pass,
	// whether because it was already paired off or because it was isolated
	// from the start - both are excluded from the rebuilt subgraph below.
	settled := make(map[*Node]bool, len(nodes))
	var degreeOne []*Node

	for _, n := range nodes {
		switch n.Degree() {
		case 0:
			out.unpaired = append(out.unpaired, nodeToPlayer[n])
			settled[n] = true
		case 1:
			degreeOne = append(degreeOne, n)
		}
	}

	// A degree-1 node must take its only legal opponent, unless a second
	// degree-1 node shares that same sole neighbor and got there first (two
	// pendants on one hub: only one of them can actually have it). Checking
	// both !settled[n] and !settled[adj] is what prevents the hub from being
	// claimed twice over.
	for _, n := range degreeOne {
		if settled[n] {
			continue
		}
		var adj *Node
		for neighbor := range n.Neighbors() {
			adj = neighbor
			break
		}
		if !settled[adj] {
			out.paired = append(out.paired, pairedCompetitors{a: nodeToPlayer[n], b: nodeToPlayer[adj]})
			settled[n] = true
			settled[adj] = true
		}
	}

	// Everything left unpaired - higher-degree nodes, and any degree-1 node
	// that lost the race for its only opponent - goes to Blossom. Rebuilt as
	// a fresh node set rather than reusing the bucket-wide Neighbors(), since
	// those may still reference nodes already settled above.
	var remainingPlayers []*Competitor
	for _, n := range nodes {
		if !settled[n] {
			remainingPlayers = append(remainingPlayers, nodeToPlayer[n])
		}
	}

	graphNodes := make([]*Node, len(remainingPlayers))
	gNodeToPlayer := make(map[*Node]*Competitor, len(remainingPlayers))
	for i, p := range remainingPlayers {
		n := NewNode(i)
		graphNodes[i] = n
		gNodeToPlayer[n] = p
	}
	for i := range graphNodes {
		for j := 0; j < i; j++ {
			if remainingPlayers[i].HasPlayedOpp(remainingPlayers[j]) {
				continue
			}
			graphNodes[i].AddNeighbor(graphNodes[j])
		}
	}

	initial := InitialMatching(graphNodes)
	g := NewGraph(graphNodes)
	maximal := Blossom(g, initial)

	matched := make(map[*Node]bool, len(graphNodes))
	for _, n := range graphNodes {
		if matched[n] {
			continue
		}
		if adj, ok := maximal.Partner(n); ok {
			out.paired = append(out.paired, pairedCompetitors{a: gNodeToPlayer[n], b: gNodeToPlayer[adj]})
			matched[n] = true
			matched[adj] = true
		} else {
			out.unpaired = append(out.unpaired, gNodeToPlayer[n])
		}
	}

	return out
}
