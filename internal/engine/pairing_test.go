package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPairChunkInternalPairsFreshCompetitors(t *testing.T) {
	players := []*Competitor{
		NewCompetitor(1, "A"),
		NewCompetitor(2, "B"),
		NewCompetitor(3, "C"),
		NewCompetitor(4, "D"),
	}
	result := pairChunkInternal(players)
	assert.Len(t, result.paired, 2)
	assert.Empty(t, result.unpaired)
}

func TestPairChunkInternalOddCountLeavesOneUnpaired(t *testing.T) {
	players := []*Competitor{
		NewCompetitor(1, "A"),
		NewCompetitor(2, "B"),
		NewCompetitor(3, "C"),
	}
	result := pairChunkInternal(players)
	assert.Len(t, result.paired, 1)
	assert.Len(t, result.unpaired, 1)
}

func TestPairChunkInternalAvoidsRepeatOpponents(t *testing.T) {
	a := NewCompetitor(1, "A")
	b := NewCompetitor(2, "B")
	c := NewCompetitor(3, "C")
	d := NewCompetitor(4, "D")

	id := MatchId{Round: 1, Number: 1}
	_, err := CreatePairing(a, b, id)
	require.NoError(t, err)
	// a and b have already played; a legal re-pairing of this bucket must
	// avoid facing them against each other again.
	result := pairChunkInternal([]*Competitor{a, b, c, d})
	for _, p := range result.paired {
		if (p.a == a && p.b == b) || (p.a == b && p.b == a) {
			t.Fatalf("pairChunkInternal repeated an existing opponent pair")
		}
	}
}

func TestPairChunkInternalTwoPendantsSharingOneHubEachPairOnce(t *testing.T) {
	u := NewCompetitor(1, "U")
	v1 := NewCompetitor(2, "V1")
	v2 := NewCompetitor(3, "V2")

	id := MatchId{Round: 1, Number: 1}
	_, err := CreatePairing(v1, v2, id)
	require.NoError(t, err)
	// u hasn't played either v1 or v2, so u has degree 2 while v1 and v2 each
	// have degree 1 pointing only at u. Only one of them may actually claim
	// u; the other must be left unpaired rather than both latching onto u.
	result := pairChunkInternal([]*Competitor{u, v1, v2})

	require.Len(t, result.paired, 1)
	require.Len(t, result.unpaired, 1)

	seen := make(map[*Competitor]int)
	for _, p := range result.paired {
		seen[p.a]++
		seen[p.b]++
	}
	seen[result.unpaired[0]]++
	for _, c := range []*Competitor{u, v1, v2} {
		assert.Equal(t, 1, seen[c], "competitor %s must appear exactly once across paired/unpaired", c.DisplayName())
	}

	pair := result.paired[0]
	assert.True(t, pair.a == u || pair.b == u, "u must be the one pairing, since it is the shared hub")
	other := pair.a
	if other == u {
		other = pair.b
	}
	assert.True(t, other == v1 || other == v2)
}

func TestPairChunkShufflesWithSuppliedRand(t *testing.T) {
	players := []*Competitor{
		NewCompetitor(1, "A"),
		NewCompetitor(2, "B"),
	}
	rng := rand.New(rand.NewSource(1))
	result := pairChunk(players, rng)
	assert.Len(t, result.paired, 1)
}

func TestPairChunkInternalEmptyBucket(t *testing.T) {
	result := pairChunkInternal(nil)
	assert.Empty(t, result.paired)
	assert.Empty(t, result.unpaired)
}
