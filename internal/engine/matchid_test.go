package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundIdBracketBit(t *testing.T) {
	swiss := RoundId(3)
	assert.True(t, swiss.IsSwiss())
	assert.False(t, swiss.IsBracket())
	assert.EqualValues(t, 3, swiss.Number())

	bracket := swiss | bracketBit
	assert.True(t, bracket.IsBracket())
	assert.False(t, bracket.IsSwiss())
	assert.EqualValues(t, 3, bracket.Number())
}

func TestMatchIdPackRoundTrip(t *testing.T) {
	id := MatchId{Round: RoundId(5), Number: 42}
	packed := id.Pack()
	got := MatchIdFromPacked(packed)
	assert.Equal(t, id, got)
}

func TestMatchIdOrdering(t *testing.T) {
	r1m2 := MatchId{Round: 1, Number: 2}
	r1m3 := MatchId{Round: 1, Number: 3}
	r2m1 := MatchId{Round: 2, Number: 1}
	bracketR1 := MatchId{Round: RoundId(1) | bracketBit, Number: 1}

	assert.True(t, r1m2.Less(r1m3))
	assert.True(t, r1m3.Less(r2m1))
	assert.True(t, r2m1.Less(bracketR1))
	assert.False(t, r1m2.Less(r1m2))
}

func TestMatchIdEqual(t *testing.T) {
	a := MatchId{Round: 1, Number: 1}
	b := MatchId{Round: 1, Number: 1}
	c := MatchId{Round: 1, Number: 2}
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestMatchIdBracketAccessors(t *testing.T) {
	swissMatch := MatchId{Round: 1, Number: 1}
	bracketMatch := MatchId{Round: RoundId(1) | bracketBit, Number: 1}
	assert.True(t, swissMatch.IsSwiss())
	assert.True(t, bracketMatch.IsBracket())
}

func TestMatchIdGeneratorSequential(t *testing.T) {
	gen := newMatchIdGenerator(RoundId(2))
	first := gen.Next()
	second := gen.Next()
	assert.EqualValues(t, 1, first.Number)
	assert.EqualValues(t, 2, second.Number)
	assert.Equal(t, RoundId(2), first.Round)
}

func TestMatchIdString(t *testing.T) {
	id := MatchId{Round: 3, Number: 4}
	assert.Equal(t, "R3M4", id.String())
}
