package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTournament(t *testing.T, swissRounds uint8, competitorCount int) (*Tournament, []CompetitorId) {
	t.Helper()
	tr := NewTournament(Options{SwissRounds: swissRounds, TableOne: 1})
	ids := make([]CompetitorId, 0, competitorCount)
	for i := 0; i < competitorCount; i++ {
		id := CompetitorId(i + 1)
		require.NoError(t, tr.AddCompetitor(CompetitorOptions{Id: id, DisplayName: "Player"}))
		ids = append(ids, id)
	}
	return tr, ids
}

func TestTournamentAddCompetitorRejectsDuplicateId(t *testing.T) {
	tr := NewTournament(Options{SwissRounds: 3})
	require.NoError(t, tr.AddCompetitor(CompetitorOptions{Id: 1, DisplayName: "Alice"}))
	err := tr.AddCompetitor(CompetitorOptions{Id: 1, DisplayName: "Alice Again"})
	require.Error(t, err)
	assert.Equal(t, KindAlreadyExists, KindOf(err))
}

func TestTournamentDropCompetitorRemovesFromActivePool(t *testing.T) {
	tr, ids := newTestTournament(t, 3, 4)
	require.NoError(t, tr.DropCompetitor(ids[0]))

	buckets := tr.ActivePlayersByPoints()
	total := 0
	for _, bucket := range buckets {
		total += len(bucket)
	}
	assert.Equal(t, 3, total)
}

func TestTournamentDropCompetitorTwiceFails(t *testing.T) {
	tr, ids := newTestTournament(t, 3, 2)
	require.NoError(t, tr.DropCompetitor(ids[0]))
	err := tr.DropCompetitor(ids[0])
	require.Error(t, err)
	assert.Equal(t, KindFailedPrecondition, KindOf(err))
}

func TestTournamentDropUnknownCompetitorFails(t *testing.T) {
	tr := NewTournament(Options{SwissRounds: 3})
	err := tr.DropCompetitor(99)
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestTournamentCurrentRoundBeforePairingFails(t *testing.T) {
	tr := NewTournament(Options{SwissRounds: 3})
	_, err := tr.CurrentRound()
	require.Error(t, err)
	assert.Equal(t, KindFailedPrecondition, KindOf(err))
}

func TestTournamentPairNextRoundGeneratesMatchesForEveryCompetitor(t *testing.T) {
	tr, ids := newTestTournament(t, 3, 4)
	round, err := tr.PairNextRound(false)
	require.NoError(t, err)
	assert.EqualValues(t, 1, round.Id().Number())
	assert.True(t, round.Id().IsSwiss())

	for _, id := range ids {
		c, err := tr.GetCompetitor(id)
		require.NoError(t, err)
		assert.Len(t, c.matches, 1)
	}
}

func TestTournamentPairNextRoundOddCompetitorGetsBye(t *testing.T) {
	tr, _ := newTestTournament(t, 3, 3)
	round, err := tr.PairNextRound(false)
	require.NoError(t, err)
	assert.False(t, round.RoundComplete())

	byeCount := 0
	for _, m := range round.reported {
		if m.IsBye() {
			byeCount++
		}
	}
	assert.Equal(t, 1, byeCount)
}

func TestTournamentPairNextRoundBeforePreviousCompleteFails(t *testing.T) {
	tr, _ := newTestTournament(t, 3, 4)
	_, err := tr.PairNextRound(false)
	require.NoError(t, err)

	_, err = tr.PairNextRound(false)
	require.Error(t, err)
	assert.Equal(t, KindFailedPrecondition, KindOf(err))
}

func TestTournamentReportResultCommitsOnAgreement(t *testing.T) {
	tr, ids := newTestTournament(t, 3, 2)
	round, err := tr.PairNextRound(false)
	require.NoError(t, err)

	var matchId MatchId
	for _, m := range round.outstanding {
		matchId = m.Id()
	}

	result := winnerResult(matchId, ids[0], 2, 0, 0)
	require.NoError(t, tr.ReportResult(ids[0], result))
	assert.False(t, round.RoundComplete())

	require.NoError(t, tr.ReportResult(ids[1], result))
	assert.True(t, round.RoundComplete())
}

func TestTournamentJudgeSetResultMovesMatchToReported(t *testing.T) {
	tr, ids := newTestTournament(t, 3, 2)
	round, err := tr.PairNextRound(false)
	require.NoError(t, err)

	var matchId MatchId
	for _, m := range round.outstanding {
		matchId = m.Id()
	}

	result := winnerResult(matchId, ids[0], 2, 0, 0)
	require.NoError(t, tr.JudgeSetResult(result))
	assert.True(t, round.RoundComplete())
}

func TestTournamentReportResultUnknownCompetitorFails(t *testing.T) {
	tr, _ := newTestTournament(t, 3, 2)
	round, err := tr.PairNextRound(false)
	require.NoError(t, err)

	var matchId MatchId
	for _, m := range round.outstanding {
		matchId = m.Id()
	}

	err = tr.ReportResult(999, winnerResult(matchId, 999, 2, 0, 0))
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestTournamentGenerateStandingsRanksByMatchPoints(t *testing.T) {
	tr, ids := newTestTournament(t, 3, 4)
	round, err := tr.PairNextRound(false)
	require.NoError(t, err)

	for _, m := range round.outstanding {
		a, b := m.Participants()
		result := winnerResult(m.Id(), a, 2, 0, 0)
		require.NoError(t, tr.ReportResult(a, result))
		require.NoError(t, tr.ReportResult(*b, result))
	}

	standings := tr.GenerateStandings()
	require.Len(t, standings, 4)
	assert.EqualValues(t, 1, standings[0].Place)
	for i := 1; i < len(standings); i++ {
		assert.False(t, standings[i-1].Info.Less(standings[i].Info))
	}
	_ = ids
}

func TestTournamentPairNextRoundAdvancesToBracketAfterSwiss(t *testing.T) {
	tr, _ := newTestTournament(t, 1, 2)
	round, err := tr.PairNextRound(false)
	require.NoError(t, err)
	assert.True(t, round.Id().IsSwiss())

	for _, m := range round.outstanding {
		a, b := m.Participants()
		result := winnerResult(m.Id(), a, 2, 0, 0)
		require.NoError(t, tr.ReportResult(a, result))
		require.NoError(t, tr.ReportResult(*b, result))
	}

	bracketRound, err := tr.PairNextRound(false)
	require.NoError(t, err)
	assert.True(t, bracketRound.Id().IsBracket())
	// Bracket seeding is deferred: the round is recorded with no matches.
	assert.True(t, bracketRound.RoundComplete())
}

func TestTournamentPairNextRoundSnapshotsStandings(t *testing.T) {
	tr, _ := newTestTournament(t, 3, 2)
	round, err := tr.PairNextRound(false)
	require.NoError(t, err)
	for _, m := range round.outstanding {
		a, b := m.Participants()
		result := winnerResult(m.Id(), a, 2, 0, 0)
		require.NoError(t, tr.ReportResult(a, result))
		require.NoError(t, tr.ReportResult(*b, result))
	}

	_, err = tr.PairNextRound(true)
	require.NoError(t, err)
	assert.NotEmpty(t, tr.standings)
}

func TestChildRandReturnsIndependentGenerators(t *testing.T) {
	tr := NewTournament(Options{SwissRounds: 1})
	r1 := tr.childRand()
	r2 := tr.childRand()
	assert.NotSame(t, r1, r2)
}
