// internal/engine/match.go
// Match is the two-party (or bye) result-confirmation state machine: both
// participants report a result independently, and the match auto-commits
// once their reports agree, or a judge can commit a result directly.

package engine

import "sync"

// MatchResult is an immutable reported or committed outcome for one match.
// Winner is nil for a draw.
type MatchResult struct {
	Id              MatchId
	Winner          *CompetitorId
	WinnerGamesWon  uint16
	WinnerGamesLost uint16
	GamesDrawn      uint16
}

// Equal reports whether two results carry identical values.
func (r MatchResult) Equal(o MatchResult) bool {
	if !r.Id.Equal(o.Id) {
		return false
	}
	if (r.Winner == nil) != (o.Winner == nil) {
		return false
	}
	if r.Winner != nil && *r.Winner != *o.Winner {
		return false
	}
	return r.WinnerGamesWon == o.WinnerGamesWon &&
		r.WinnerGamesLost == o.WinnerGamesLost &&
		r.GamesDrawn == o.GamesDrawn
}

// MatchPoints returns the match points earned by competitor p under this
// result: 3 for a win, 1 for a draw (awarded to both sides), 0 for a loss.
func (r MatchResult) MatchPoints(p CompetitorId) uint16 {
	if r.Winner == nil {
		return 1
	}
	if *r.Winner == p {
		return 3
	}
	return 0
}

// GamePoints returns the game points earned by competitor p: 3 per game won
// plus 1 per game drawn.
func (r MatchResult) GamePoints(p CompetitorId) uint16 {
	if r.Winner == nil || *r.Winner == p {
		return 3*r.WinnerGamesWon + r.GamesDrawn
	}
	return 3*r.WinnerGamesLost + r.GamesDrawn
}

// GamesPlayed returns the total number of games played in the match.
func (r MatchResult) GamesPlayed() uint16 {
	return r.WinnerGamesWon + r.WinnerGamesLost + r.GamesDrawn
}

// Match holds two competitors' independently reported results (or one, for
// a bye) and the committed result once confirmed. Its lock is taken after
// the Tournament lock has been released (ReportResult and JudgeSetResult
// drop it before calling in), and commitLocked acquires each Competitor's
// lock while holding it, so Match sits above Competitor in the lock order.
type Match struct {
	mu sync.Mutex

	id   MatchId
	a    *Competitor
	b    *Competitor // nil for a bye

	aResult   *MatchResult
	bResult   *MatchResult
	committed *MatchResult
}

// CreateBye builds a bye match for p and immediately commits the regulation
// bye result: a 2-0 win awarded to p, no opponent.
func CreateBye(p *Competitor, id MatchId) (*Match, error) {
	m := &Match{id: id, a: p}
	if err := p.AddMatch(m); err != nil {
		return nil, err
	}
	won := p.Id()
	result := MatchResult{Id: id, Winner: &won, WinnerGamesWon: 2}
	m.mu.Lock()
	err := m.commitLocked(result)
	m.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return m, nil
}

// CreatePairing builds a match between a and b. The two competitors are
// assigned to the a/b slots in ascending-id order regardless of argument
// order, so that any two goroutines racing to build the same pairing (or to
// later lock both competitors while committing a result) always acquire
// competitor locks in the same order.
func CreatePairing(x, y *Competitor, id MatchId) (*Match, error) {
	if x.Id() == y.Id() {
		return nil, invalidArgf("cannot pair competitor %d against itself", x.Id())
	}
	left, right := x, y
	if right.Id() < left.Id() {
		left, right = right, left
	}
	m := &Match{id: id, a: left, b: right}
	if err := left.AddMatch(m); err != nil {
		return nil, err
	}
	if err := right.AddMatch(m); err != nil {
		return nil, err
	}
	return m, nil
}

// Id returns the match's identity.
func (m *Match) Id() MatchId { return m.id }

// isBye reports whether this match has only one participant. Callers must
// not hold m.mu; a and b are set at construction and never change.
func (m *Match) isBye() bool { return m.b == nil }

// IsBye reports whether this match has only one participant.
func (m *Match) IsBye() bool { return m.isBye() }

// hasPlayer reports whether c is a participant.
func (m *Match) hasPlayer(c *Competitor) bool {
	return m.a.Id() == c.Id() || (m.b != nil && m.b.Id() == c.Id())
}

// HasPlayer reports whether c is a participant in this match.
func (m *Match) HasPlayer(c *Competitor) bool { return m.hasPlayer(c) }

// HasPlayerId reports whether the competitor identified by id is a
// participant.
func (m *Match) HasPlayerId(id CompetitorId) bool {
	return m.a.Id() == id || (m.b != nil && m.b.Id() == id)
}

// opponentOf returns c's opponent in this match. Errors if c does not play
// in this match or if the match is a bye.
func (m *Match) opponentOf(c *Competitor) (*Competitor, error) {
	if !m.hasPlayer(c) {
		return nil, invalidArgf("competitor %d is not in %s", c.Id(), m.id.ErrorStringId())
	}
	if m.isBye() {
		return nil, failedPreconditionf("%s is a bye, it has no opponent", m.id.ErrorStringId())
	}
	if c.Id() == m.a.Id() {
		return m.b, nil
	}
	return m.a, nil
}

// OpponentOf returns c's opponent in this match.
func (m *Match) OpponentOf(c *Competitor) (*Competitor, error) { return m.opponentOf(c) }

// Participants returns the two competitor ids in this match. b is nil for a
// bye. a and b never change after construction, so this needs no lock.
func (m *Match) Participants() (a CompetitorId, b *CompetitorId) {
	if m.b == nil {
		return m.a.Id(), nil
	}
	bid := m.b.Id()
	return m.a.Id(), &bid
}

// ConfirmedResult returns the match's committed result, if any. For a
// non-bye match with no committed result yet, it returns the agreed result
// if both sides have reported the same thing, without committing it (commit
// happens only via PlayerReportResult/JudgeSetResult).
func (m *Match) ConfirmedResult() (MatchResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.confirmedResultLocked()
}

func (m *Match) confirmedResultLocked() (MatchResult, error) {
	if m.committed != nil {
		return *m.committed, nil
	}
	if m.aResult == nil {
		return MatchResult{}, failedPreconditionf("competitor %d has not reported for %s", m.a.Id(), m.id.ErrorStringId())
	}
	if m.bResult == nil {
		return MatchResult{}, failedPreconditionf("competitor %d has not reported for %s", m.b.Id(), m.id.ErrorStringId())
	}
	if !m.aResult.Equal(*m.bResult) {
		return MatchResult{}, invalidArgf("competitors %d and %d reported different results for %s", m.a.Id(), m.b.Id(), m.id.ErrorStringId())
	}
	return *m.aResult, nil
}

// checkResultValidity verifies result is well-formed for this match:
// correct id, internally consistent draw/win game counts, and a winner (if
// any) who is actually a participant.
func (m *Match) checkResultValidity(result MatchResult) error {
	if !result.Id.Equal(m.id) {
		return invalidArgf("reported %s does not match this match's id %s", result.Id.ErrorStringId(), m.id.ErrorStringId())
	}
	if result.Winner == nil {
		if result.WinnerGamesWon != result.WinnerGamesLost {
			return invalidArgf("reported draw for %s does not have equal game wins between competitors %d and %d", m.id.ErrorStringId(), m.a.Id(), m.b.Id())
		}
		return nil
	}
	if !m.HasPlayerId(*result.Winner) {
		return invalidArgf("%s report has winner %d not in this match", m.id.ErrorStringId(), *result.Winner)
	}
	if result.WinnerGamesWon <= result.WinnerGamesLost {
		return invalidArgf("%s report has a winner %d but reported game score is invalid for a won match", m.id.ErrorStringId(), *result.Winner)
	}
	return nil
}

// PlayerReportResult records reporter's report of result. Once both
// participants have reported the same result, it is committed automatically.
func (m *Match) PlayerReportResult(reporter *Competitor, result MatchResult) error {
	if m.isBye() {
		return failedPreconditionf("trying to report a result for a bye for competitor %d", m.a.Id())
	}
	if !m.hasPlayer(reporter) {
		return invalidArgf("reporting competitor %d is not in %s", reporter.Id(), m.id.ErrorStringId())
	}
	if err := m.checkResultValidity(result); err != nil {
		return err
	}

	m.mu.Lock()
	if reporter.Id() == m.a.Id() {
		m.aResult = &result
	} else {
		m.bResult = &result
	}
	confirmed, err := m.confirmedResultLocked()
	if err != nil {
		// Reported successfully even though the match isn't confirmed yet.
		m.mu.Unlock()
		return nil
	}
	err = m.commitLocked(confirmed)
	m.mu.Unlock()
	return err
}

// JudgeSetResult commits result directly, bypassing player confirmation.
// Permitted unconditionally, including overriding a result the players had
// already agreed on.
func (m *Match) JudgeSetResult(result MatchResult) error {
	if err := m.checkResultValidity(result); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.commitLocked(result)
}

// commitLocked pushes result to the participating competitors, replacing
// any previously committed result, and records it as committed. Must be
// called with m.mu held.
func (m *Match) commitLocked(result MatchResult) error {
	if err := m.a.CommitResult(result, m.committed); err != nil {
		return err
	}
	if m.b != nil {
		if err := m.b.CommitResult(result, m.committed); err != nil {
			// b's commit failing here is an invariant violation, not a normal
			// validation failure: both competitors share the same
			// precondition (AddMatch at pairing time), so if a's commit
			// succeeded, b's should too. Roll a back rather than leave the
			// match half-committed.
			m.a.uncommitResult(result, m.committed)
			return internalf("match %s: competitor %d committed but %d failed, rolled back: %v", m.id.ErrorStringId(), m.a.Id(), m.b.Id(), err)
		}
	}
	m.committed = &result
	return nil
}
