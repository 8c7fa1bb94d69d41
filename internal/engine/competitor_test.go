package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func winnerResult(id MatchId, winner CompetitorId, won, lost, drawn uint16) MatchResult {
	w := winner
	return MatchResult{Id: id, Winner: &w, WinnerGamesWon: won, WinnerGamesLost: lost, GamesDrawn: drawn}
}

func drawResult(id MatchId, games uint16) MatchResult {
	return MatchResult{Id: id, Winner: nil, WinnerGamesWon: games, WinnerGamesLost: games}
}

func TestCompetitorFreshHasDefaultBreakers(t *testing.T) {
	c := NewCompetitor(1, "Alice")
	breakers := c.ComputeBreakers()
	assert.EqualValues(t, 0, breakers.MatchPoints)
	assert.True(t, breakers.OppMwp.Equal(One))
	assert.True(t, breakers.Gwp.Equal(One))
	assert.True(t, breakers.OppGwp.Equal(One))
}

func TestCompetitorCommitResultUpdatesTotals(t *testing.T) {
	a := NewCompetitor(1, "Alice")
	b := NewCompetitor(2, "Bob")
	id := MatchId{Round: 1, Number: 1}
	m, err := CreatePairing(a, b, id)
	require.NoError(t, err)

	result := winnerResult(id, 1, 2, 0, 0)
	require.NoError(t, a.CommitResult(result, nil))
	require.NoError(t, b.CommitResult(result, nil))

	assert.EqualValues(t, 3, a.MatchPoints())
	assert.EqualValues(t, 0, b.MatchPoints())
	assert.True(t, a.HasPlayedOpp(b))
	assert.True(t, b.HasPlayedOpp(a))
	_ = m
}

func TestCompetitorCommitResultReversesPrevious(t *testing.T) {
	a := NewCompetitor(1, "Alice")
	b := NewCompetitor(2, "Bob")
	id := MatchId{Round: 1, Number: 1}
	_, err := CreatePairing(a, b, id)
	require.NoError(t, err)

	first := winnerResult(id, 1, 2, 0, 0)
	require.NoError(t, a.CommitResult(first, nil))
	require.NoError(t, b.CommitResult(first, nil))
	assert.EqualValues(t, 3, a.MatchPoints())

	second := winnerResult(id, 2, 2, 1, 0)
	require.NoError(t, a.CommitResult(second, &first))
	require.NoError(t, b.CommitResult(second, &first))
	assert.EqualValues(t, 0, a.MatchPoints())
	assert.EqualValues(t, 3, b.MatchPoints())
}

func TestCompetitorCommitResultWithoutPriorMatchFails(t *testing.T) {
	a := NewCompetitor(1, "Alice")
	id := MatchId{Round: 1, Number: 1}
	result := winnerResult(id, 1, 2, 0, 0)
	err := a.CommitResult(result, nil)
	require.Error(t, err)
	assert.Equal(t, KindFailedPrecondition, KindOf(err))
}

func TestCompetitorAddMatchRejectsNonParticipant(t *testing.T) {
	a := NewCompetitor(1, "Alice")
	b := NewCompetitor(2, "Bob")
	other := NewCompetitor(3, "Carol")
	id := MatchId{Round: 1, Number: 1}
	m, err := CreatePairing(a, b, id)
	require.NoError(t, err)

	err = other.AddMatch(m)
	require.Error(t, err)
	assert.Equal(t, KindInvalidArgument, KindOf(err))
}

func TestCompetitorDrawSplitsMatchPoints(t *testing.T) {
	a := NewCompetitor(1, "Alice")
	b := NewCompetitor(2, "Bob")
	id := MatchId{Round: 1, Number: 1}
	_, err := CreatePairing(a, b, id)
	require.NoError(t, err)

	result := drawResult(id, 1)
	require.NoError(t, a.CommitResult(result, nil))
	require.NoError(t, b.CommitResult(result, nil))
	assert.EqualValues(t, 1, a.MatchPoints())
	assert.EqualValues(t, 1, b.MatchPoints())
}

func TestCompetitorBreakersExcludeBracketOpponentAverage(t *testing.T) {
	a := NewCompetitor(1, "Alice")
	b := NewCompetitor(2, "Bob")

	swissId := MatchId{Round: 1, Number: 1}
	_, err := CreatePairing(a, b, swissId)
	require.NoError(t, err)
	swissResult := winnerResult(swissId, 1, 2, 0, 0)
	require.NoError(t, a.CommitResult(swissResult, nil))
	require.NoError(t, b.CommitResult(swissResult, nil))

	bracketId := MatchId{Round: RoundId(1) | bracketBit, Number: 1}
	_, err = CreatePairing(a, b, bracketId)
	require.NoError(t, err)
	bracketResult := winnerResult(bracketId, 2, 2, 1, 0)
	require.NoError(t, a.CommitResult(bracketResult, nil))
	require.NoError(t, b.CommitResult(bracketResult, nil))

	// a's own gwp reflects both matches (3 games won, 2 lost across 2 matches:
	// swiss 2-0 plus bracket loss 1-2), but a's opponent average only counts
	// the swiss match since the bracket opponent is excluded from averaging.
	breakers := a.ComputeBreakers()
	assert.EqualValues(t, 3, breakers.MatchPoints) // bracket loss contributes 0
	assert.False(t, breakers.OppMwp.Equal(One))
}

func TestCompetitorByeHasNoOpponentToAverage(t *testing.T) {
	a := NewCompetitor(1, "Alice")
	id := MatchId{Round: 1, Number: 1}
	_, err := CreateBye(a, id)
	require.NoError(t, err)

	breakers := a.ComputeBreakers()
	assert.EqualValues(t, 3, breakers.MatchPoints)
	assert.True(t, breakers.OppMwp.Equal(One))
	assert.True(t, breakers.OppGwp.Equal(One))
}
