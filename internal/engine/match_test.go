package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateByeCommitsImmediately(t *testing.T) {
	p := NewCompetitor(1, "Alice")
	id := MatchId{Round: 1, Number: 1}
	m, err := CreateBye(p, id)
	require.NoError(t, err)
	assert.True(t, m.IsBye())

	result, err := m.ConfirmedResult()
	require.NoError(t, err)
	require.NotNil(t, result.Winner)
	assert.Equal(t, p.Id(), *result.Winner)
	assert.EqualValues(t, 3, p.MatchPoints())
}

func TestCreatePairingOrdersByAscendingId(t *testing.T) {
	high := NewCompetitor(9, "High")
	low := NewCompetitor(2, "Low")
	id := MatchId{Round: 1, Number: 1}

	m, err := CreatePairing(high, low, id)
	require.NoError(t, err)
	a, b := m.Participants()
	assert.Equal(t, low.Id(), a)
	require.NotNil(t, b)
	assert.Equal(t, high.Id(), *b)
}

func TestCreatePairingRejectsSelfPairing(t *testing.T) {
	a := NewCompetitor(1, "Alice")
	_, err := CreatePairing(a, a, MatchId{Round: 1, Number: 1})
	require.Error(t, err)
	assert.Equal(t, KindInvalidArgument, KindOf(err))
}

func TestPlayerReportResultRequiresAgreement(t *testing.T) {
	a := NewCompetitor(1, "Alice")
	b := NewCompetitor(2, "Bob")
	id := MatchId{Round: 1, Number: 1}
	m, err := CreatePairing(a, b, id)
	require.NoError(t, err)

	aReport := winnerResult(id, a.Id(), 2, 0, 0)
	require.NoError(t, m.PlayerReportResult(a, aReport))
	_, err = m.ConfirmedResult()
	require.Error(t, err)
	assert.Equal(t, KindFailedPrecondition, KindOf(err))

	bReport := winnerResult(id, a.Id(), 2, 0, 0)
	require.NoError(t, m.PlayerReportResult(b, bReport))

	confirmed, err := m.ConfirmedResult()
	require.NoError(t, err)
	assert.Equal(t, a.Id(), *confirmed.Winner)
	assert.EqualValues(t, 3, a.MatchPoints())
}

func TestPlayerReportResultDisagreementStaysUnconfirmed(t *testing.T) {
	a := NewCompetitor(1, "Alice")
	b := NewCompetitor(2, "Bob")
	id := MatchId{Round: 1, Number: 1}
	m, err := CreatePairing(a, b, id)
	require.NoError(t, err)

	require.NoError(t, m.PlayerReportResult(a, winnerResult(id, a.Id(), 2, 0, 0)))
	require.NoError(t, m.PlayerReportResult(b, winnerResult(id, b.Id(), 2, 1, 0)))

	_, err = m.ConfirmedResult()
	require.Error(t, err)
	assert.Equal(t, KindInvalidArgument, KindOf(err))
}

func TestPlayerReportResultRejectsNonParticipant(t *testing.T) {
	a := NewCompetitor(1, "Alice")
	b := NewCompetitor(2, "Bob")
	stranger := NewCompetitor(3, "Carol")
	id := MatchId{Round: 1, Number: 1}
	m, err := CreatePairing(a, b, id)
	require.NoError(t, err)

	err = m.PlayerReportResult(stranger, winnerResult(id, a.Id(), 2, 0, 0))
	require.Error(t, err)
	assert.Equal(t, KindInvalidArgument, KindOf(err))
}

func TestPlayerReportResultOnByeFails(t *testing.T) {
	a := NewCompetitor(1, "Alice")
	id := MatchId{Round: 1, Number: 1}
	m, err := CreateBye(a, id)
	require.NoError(t, err)

	err = m.PlayerReportResult(a, winnerResult(id, a.Id(), 2, 0, 0))
	require.Error(t, err)
	assert.Equal(t, KindFailedPrecondition, KindOf(err))
}

func TestCheckResultValidityRejectsInvalidWinnerScore(t *testing.T) {
	a := NewCompetitor(1, "Alice")
	b := NewCompetitor(2, "Bob")
	id := MatchId{Round: 1, Number: 1}
	m, err := CreatePairing(a, b, id)
	require.NoError(t, err)

	bad := winnerResult(id, a.Id(), 1, 2, 0) // winner has fewer games than loser
	err = m.PlayerReportResult(a, bad)
	require.Error(t, err)
	assert.Equal(t, KindInvalidArgument, KindOf(err))
}

func TestCheckResultValidityRejectsUnequalDraw(t *testing.T) {
	a := NewCompetitor(1, "Alice")
	b := NewCompetitor(2, "Bob")
	id := MatchId{Round: 1, Number: 1}
	m, err := CreatePairing(a, b, id)
	require.NoError(t, err)

	bad := MatchResult{Id: id, Winner: nil, WinnerGamesWon: 2, WinnerGamesLost: 1}
	err = m.PlayerReportResult(a, bad)
	require.Error(t, err)
	assert.Equal(t, KindInvalidArgument, KindOf(err))
}

func TestJudgeSetResultOverridesExistingCommit(t *testing.T) {
	a := NewCompetitor(1, "Alice")
	b := NewCompetitor(2, "Bob")
	id := MatchId{Round: 1, Number: 1}
	m, err := CreatePairing(a, b, id)
	require.NoError(t, err)

	require.NoError(t, m.PlayerReportResult(a, winnerResult(id, a.Id(), 2, 0, 0)))
	require.NoError(t, m.PlayerReportResult(b, winnerResult(id, a.Id(), 2, 0, 0)))
	assert.EqualValues(t, 3, a.MatchPoints())

	override := winnerResult(id, b.Id(), 2, 1, 0)
	require.NoError(t, m.JudgeSetResult(override))

	assert.EqualValues(t, 0, a.MatchPoints())
	assert.EqualValues(t, 3, b.MatchPoints())

	confirmed, err := m.ConfirmedResult()
	require.NoError(t, err)
	assert.Equal(t, b.Id(), *confirmed.Winner)
}

func TestMatchResultPointsHelpers(t *testing.T) {
	id := MatchId{Round: 1, Number: 1}
	winner := CompetitorId(1)
	loser := CompetitorId(2)
	result := MatchResult{Id: id, Winner: &winner, WinnerGamesWon: 2, WinnerGamesLost: 1, GamesDrawn: 0}

	assert.EqualValues(t, 3, result.MatchPoints(winner))
	assert.EqualValues(t, 0, result.MatchPoints(loser))
	assert.EqualValues(t, 6, result.GamePoints(winner))
	assert.EqualValues(t, 3, result.GamePoints(loser))
	assert.EqualValues(t, 3, result.GamesPlayed())

	draw := MatchResult{Id: id, Winner: nil, WinnerGamesWon: 1, WinnerGamesLost: 1, GamesDrawn: 1}
	assert.EqualValues(t, 1, draw.MatchPoints(winner))
	assert.EqualValues(t, 1, draw.MatchPoints(loser))
}

func TestCommitLockedRollsBackOnPartialFailure(t *testing.T) {
	a := NewCompetitor(1, "A")
	b := NewCompetitor(2, "B")
	id := MatchId{Round: 1, Number: 1}
	m, err := CreatePairing(a, b, id)
	require.NoError(t, err)

	beforeMatchPoints := a.MatchPoints()
	beforeGwp := a.Gwp()
	// Force b's side of the commit to fail without touching a, simulating
	// the invariant violation the rollback guards against.
	delete(b.matches, id.Pack())

	result := winnerResult(id, a.Id(), 2, 0, 0)
	err = m.JudgeSetResult(result)
	require.Error(t, err)
	assert.Equal(t, KindInternal, KindOf(err))
	assert.Equal(t, beforeMatchPoints, a.MatchPoints())
	assert.True(t, beforeGwp.Equal(a.Gwp()))
}
