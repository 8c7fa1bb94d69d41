// internal/engine/competitor.go
// Competitor tracks one entrant's accumulated results and opponent history,
// and derives the MTR-defined tie-break ordering from them.

package engine

import "sync"

// TieBreakInfo is the lexicographic ranking key: match points, then average
// opponent match-win percentage, then the competitor's own game-win
// percentage, then average opponent game-win percentage. Comparisons use
// exact Rational arithmetic only, never Float64.
type TieBreakInfo struct {
	MatchPoints uint16
	OppMwp      Rational
	Gwp         Rational
	OppGwp      Rational
}

// Less reports whether t ranks below other (other is the stronger record).
func (t TieBreakInfo) Less(other TieBreakInfo) bool {
	if t.MatchPoints != other.MatchPoints {
		return t.MatchPoints < other.MatchPoints
	}
	if !t.OppMwp.Equal(other.OppMwp) {
		return t.OppMwp.Less(other.OppMwp)
	}
	if !t.Gwp.Equal(other.Gwp) {
		return t.Gwp.Less(other.Gwp)
	}
	return t.OppGwp.Less(other.OppGwp)
}

// Equal reports whether t and other carry the same ranking key.
func (t TieBreakInfo) Equal(other TieBreakInfo) bool {
	return t.MatchPoints == other.MatchPoints &&
		t.OppMwp.Equal(other.OppMwp) &&
		t.Gwp.Equal(other.Gwp) &&
		t.OppGwp.Equal(other.OppGwp)
}

// Competitor is one tournament entrant. Its lock sits below Match in the
// lock-ordering discipline (Tournament -> Round -> Match -> Competitor):
// code holding a Match lock may acquire a Competitor lock, never the reverse.
type Competitor struct {
	mu sync.Mutex

	id          CompetitorId
	displayName string

	gamePoints  uint16
	gamesPlayed uint16
	matchPoints uint16

	opponents map[CompetitorId]*Competitor
	matches   map[uint32]*Match // keyed by MatchId.Pack()
}

// NewCompetitor constructs a Competitor with no history.
func NewCompetitor(id CompetitorId, displayName string) *Competitor {
	return &Competitor{
		id:          id,
		displayName: displayName,
		opponents:   make(map[CompetitorId]*Competitor),
		matches:     make(map[uint32]*Match),
	}
}

// Id returns the competitor's identity.
func (c *Competitor) Id() CompetitorId { return c.id }

// DisplayName returns the competitor's display name.
func (c *Competitor) DisplayName() string { return c.displayName }

// MatchPoints returns the competitor's accumulated match points.
func (c *Competitor) MatchPoints() uint16 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.matchPoints
}

// mwp is match-win percentage, clamped to the regulation 1/3 floor. Must be
// called with c.mu held.
func (c *Competitor) mwpLocked() Rational {
	if len(c.matches) == 0 {
		return Zero.ClampFloor()
	}
	return NewRational(uint64(c.matchPoints), uint64(3*len(c.matches))).ClampFloor()
}

// gwp is game-win percentage, clamped to the regulation 1/3 floor. Must be
// called with c.mu held.
func (c *Competitor) gwpLocked() Rational {
	if c.gamesPlayed == 0 {
		return Zero.ClampFloor()
	}
	return NewRational(uint64(c.gamePoints), uint64(3*c.gamesPlayed)).ClampFloor()
}

// Mwp returns the competitor's own match-win percentage.
func (c *Competitor) Mwp() Rational {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mwpLocked()
}

// Gwp returns the competitor's own game-win percentage.
func (c *Competitor) Gwp() Rational {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gwpLocked()
}

// HasPlayedOpp reports whether c has previously faced opp in a non-bye
// match.
func (c *Competitor) HasPlayedOpp(opp *Competitor) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.opponents[opp.id]
	return ok
}

// AddMatch registers m in c's history. If m is not a bye, the opponent is
// recorded for future has-played-opp checks. Returns an error if c is not
// actually a participant in m.
func (c *Competitor) AddMatch(m *Match) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !m.hasPlayer(c) {
		return invalidArgf("trying to add %s in which competitor %d is not a participant", m.id.ErrorStringId(), c.id)
	}
	c.matches[m.id.Pack()] = m
	if !m.isBye() {
		opp, err := m.opponentOf(c)
		if err != nil {
			return err
		}
		c.opponents[opp.id] = opp
	}
	return nil
}

// CommitResult applies result to c's running totals, first reversing prev
// (the previously committed result for the same match, if any). c must
// already have the match in its history via AddMatch.
func (c *Competitor) CommitResult(result MatchResult, prev *MatchResult) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.matches[result.Id.Pack()]; !ok {
		return failedPreconditionf("trying to commit result for %s, competitor %d hasn't played it", result.Id.ErrorStringId(), c.id)
	}
	if prev != nil && !prev.Id.Equal(result.Id) {
		return invalidArgf("trying to update competitor %d's %s result with a result for a different match", c.id, prev.Id.ErrorStringId())
	}

	c.gamesPlayed += result.GamesPlayed()
	c.gamePoints += result.GamePoints(c.id)
	c.matchPoints += result.MatchPoints(c.id)

	if prev != nil {
		c.gamesPlayed -= prev.GamesPlayed()
		c.gamePoints -= prev.GamePoints(c.id)
		c.matchPoints -= prev.MatchPoints(c.id)
	}
	return nil
}

// uncommitResult exactly inverts a prior, successful CommitResult(result,
// prev) call, restoring c's totals to what they were beforehand. Used to
// roll back one competitor's side of a two-competitor commit when the
// other's subsequently fails.
func (c *Competitor) uncommitResult(result MatchResult, prev *MatchResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gamesPlayed -= result.GamesPlayed()
	c.gamePoints -= result.GamePoints(c.id)
	c.matchPoints -= result.MatchPoints(c.id)

	if prev != nil {
		c.gamesPlayed += prev.GamesPlayed()
		c.gamePoints += prev.GamePoints(c.id)
		c.matchPoints += prev.MatchPoints(c.id)
	}
}

// ComputeBreakers derives c's current TieBreakInfo. Elimination-bracket
// matches are excluded from the opponent-average terms (opp_mwp, opp_gwp)
// but the competitor's own gwp reflects every game it has played, bracket
// included — see DESIGN.md's Open Question decision on this split.
// With zero counted opponents (e.g. a round-one bye only), all three terms
// (opp_mwp, gwp and opp_gwp) default to 1, own gwp included, matching the
// regulation's treatment of that corner case.
func (c *Competitor) ComputeBreakers() TieBreakInfo {
	// Snapshot own state and opponents first, then release c's lock before
	// querying opponents' Mwp/Gwp: those calls take the opponent's own
	// lock, and holding c's lock across them would invert lock order
	// against a concurrent ComputeBreakers on that opponent.
	c.mu.Lock()
	matchPoints := c.matchPoints
	ownGwp := c.gwpLocked()
	type counted struct{ opp *Competitor }
	var toCount []counted
	for _, m := range c.matches {
		if m.id.IsBracket() {
			continue
		}
		opp, err := m.opponentOf(c)
		if err != nil {
			continue // bye: no opponent to average in
		}
		toCount = append(toCount, counted{opp: opp})
	}
	c.mu.Unlock()

	omwpSum := Zero
	ogwpSum := Zero
	numOpps := uint64(len(toCount))
	for _, tc := range toCount {
		omwpSum = omwpSum.Add(tc.opp.Mwp())
		ogwpSum = ogwpSum.Add(tc.opp.Gwp())
	}

	out := TieBreakInfo{MatchPoints: matchPoints}
	if numOpps == 0 {
		out.OppMwp = One
		out.Gwp = One
		out.OppGwp = One
		return out
	}
	divisor := IntRational(numOpps)
	out.OppMwp = omwpSum.Div(divisor)
	out.Gwp = ownGwp
	out.OppGwp = ogwpSum.Div(divisor)
	return out
}
