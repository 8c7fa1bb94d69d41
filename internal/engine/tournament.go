// internal/engine/tournament.go
// Tournament is the root of the engine: it owns every Competitor, Match, and
// Round canonically, and is the entry point for every core operation.

package engine

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	mathrand "math/rand"
	"sort"
	"sync"
)

// BracketSize is the number of competitors who advance to the elimination
// bracket after Swiss play. Only these fixed sizes are supported; seeding
// the bracket itself remains deferred (see DESIGN.md).
type BracketSize uint8

const (
	NoBracket BracketSize = 0
	Top2      BracketSize = 2
	Top4      BracketSize = 4
	Top6      BracketSize = 6
	Top8      BracketSize = 8
)

// Options configures a new Tournament.
type Options struct {
	SwissRounds uint8
	Bracket     BracketSize
	// TableOne is the first table number handed out; Non-goal beyond this
	// bare numbering, no physical scheduling.
	TableOne uint32
}

// CompetitorOptions describes a competitor being added to a tournament.
type CompetitorOptions struct {
	Id          CompetitorId
	DisplayName string
}

// Standing is one row of a standings snapshot: a competitor's rank and the
// tie-break key that produced it.
type Standing struct {
	Place      uint32
	Competitor *Competitor
	Info       TieBreakInfo
}

// Tournament owns every Competitor, Match, and Round for one event. Its lock
// sits above Round, Match, and Competitor in the lock-ordering discipline:
// code must never hold a Round/Match/Competitor lock while acquiring the
// Tournament lock.
type Tournament struct {
	mu sync.Mutex

	opts Options
	rng  *mathrand.Rand

	competitors        map[CompetitorId]*Competitor
	activeCompetitors  map[CompetitorId]*Competitor
	droppedCompetitors map[CompetitorId]*Competitor
	matches            map[uint32]*Match
	rounds             map[RoundId]*Round
	roundOrder         []RoundId

	standings map[RoundId][]Standing
}

// NewTournament constructs an empty tournament, seeding its pairing RNG from
// hardware entropy so pairing order is not reproducible across runs.
func NewTournament(opts Options) *Tournament {
	return &Tournament{
		opts:               opts,
		rng:                mathrand.New(mathrand.NewSource(seedFromEntropy())),
		competitors:        make(map[CompetitorId]*Competitor),
		activeCompetitors:  make(map[CompetitorId]*Competitor),
		droppedCompetitors: make(map[CompetitorId]*Competitor),
		matches:            make(map[uint32]*Match),
		rounds:             make(map[RoundId]*Round),
		standings:          make(map[RoundId][]Standing),
	}
}

func seedFromEntropy() int64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand failing means the platform's entropy source is broken;
		// fall back to a fixed seed rather than panicking the whole engine.
		return 1
	}
	return int64(binary.LittleEndian.Uint64(buf[:]))
}

// childRand derives a fresh, independently usable *mathrand.Rand from the
// tournament's shared PRNG. The shared generator itself is only ever touched
// here, under t.mu, so two concurrent PairNextRound calls each get their own
// unsynchronized generator to shuffle with instead of racing on one shared
// *rand.Rand across the round-pairing call, which runs unlocked.
func (t *Tournament) childRand() *mathrand.Rand {
	t.mu.Lock()
	seed := t.rng.Int63()
	t.mu.Unlock()
	return mathrand.New(mathrand.NewSource(seed))
}

// AddCompetitor registers a new competitor, active from the next pairing
// onward. Returns an error if the id is already in use.
func (t *Tournament) AddCompetitor(opts CompetitorOptions) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.competitors[opts.Id]; ok {
		return alreadyExistsf("competitor %d is already registered", opts.Id)
	}
	c := NewCompetitor(opts.Id, opts.DisplayName)
	t.competitors[opts.Id] = c
	t.activeCompetitors[opts.Id] = c
	return nil
}

// DropCompetitor removes a competitor from the active pool; past matches and
// accumulated record are untouched, so standings remain correct for
// completed rounds.
func (t *Tournament) DropCompetitor(id CompetitorId) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	c, ok := t.activeCompetitors[id]
	if !ok {
		if _, known := t.competitors[id]; known {
			return failedPreconditionf("competitor %d has already been dropped", id)
		}
		return notFoundf("no competitor %d in this tournament", id)
	}
	delete(t.activeCompetitors, id)
	t.droppedCompetitors[id] = c
	return nil
}

// GetCompetitor returns the competitor registered under id.
func (t *Tournament) GetCompetitor(id CompetitorId) (*Competitor, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.getCompetitorLocked(id)
}

func (t *Tournament) getCompetitorLocked(id CompetitorId) (*Competitor, error) {
	if c, ok := t.competitors[id]; ok {
		return c, nil
	}
	return nil, notFoundf("no competitor in this tournament for id %d", id)
}

// GetMatch returns the match registered under id.
func (t *Tournament) GetMatch(id MatchId) (*Match, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.getMatchLocked(id)
}

func (t *Tournament) getMatchLocked(id MatchId) (*Match, error) {
	if m, ok := t.matches[id.Pack()]; ok {
		return m, nil
	}
	return nil, notFoundf("no match in this tournament for id %s", id.ErrorStringId())
}

func (t *Tournament) getRoundLocked(id RoundId) (*Round, error) {
	if r, ok := t.rounds[id]; ok {
		return r, nil
	}
	return nil, notFoundf("no %s in this tournament", (&Round{id: id}).ErrorStringId())
}

// CurrentRound returns the most recently paired round. Errors if no round
// has been paired yet.
func (t *Tournament) CurrentRound() (*Round, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.currentRoundLocked()
}

func (t *Tournament) currentRoundLocked() (*Round, error) {
	if len(t.roundOrder) == 0 {
		return nil, failedPreconditionf("round 1 has not yet started")
	}
	return t.rounds[t.roundOrder[len(t.roundOrder)-1]], nil
}

// activeCompetitorsByPoints buckets active competitors by their current
// match point total, for Swiss pairing.
func (t *Tournament) activeCompetitorsByPoints() map[uint16][]*Competitor {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make(map[uint16][]*Competitor)
	for _, c := range t.activeCompetitors {
		pts := c.MatchPoints()
		out[pts] = append(out[pts], c)
	}
	return out
}

// ActivePlayersByPoints is the public accessor mirroring the same view.
func (t *Tournament) ActivePlayersByPoints() map[uint16][]*Competitor {
	return t.activeCompetitorsByPoints()
}

// ReportResult records a player-submitted result for any match registered in
// the tournament, whichever round it belongs to. The Tournament lock is released before dispatching into the match
// and round, preserving the engine's top-down, never-held-while-descending
// lock discipline.
func (t *Tournament) ReportResult(reporter CompetitorId, result MatchResult) error {
	t.mu.Lock()
	c, err := t.getCompetitorLocked(reporter)
	if err != nil {
		t.mu.Unlock()
		return err
	}
	m, err := t.getMatchLocked(result.Id)
	if err != nil {
		t.mu.Unlock()
		return err
	}
	r, err := t.getRoundLocked(result.Id.Round)
	if err != nil {
		t.mu.Unlock()
		return err
	}
	t.mu.Unlock()

	if err := m.PlayerReportResult(c, result); err != nil {
		return err
	}
	if _, err := m.ConfirmedResult(); err == nil {
		return r.CommitMatchResult(m)
	}
	return nil
}

// JudgeSetResult commits a judge-overridden result directly, bypassing
// player confirmation.
func (t *Tournament) JudgeSetResult(result MatchResult) error {
	t.mu.Lock()
	m, err := t.getMatchLocked(result.Id)
	if err != nil {
		t.mu.Unlock()
		return err
	}
	r, err := t.getRoundLocked(result.Id.Round)
	if err != nil {
		t.mu.Unlock()
		return err
	}
	t.mu.Unlock()

	if err := m.JudgeSetResult(result); err != nil {
		return err
	}
	return r.JudgeSetResult(m)
}

// PairNextRound pairs and starts the next round: Swiss while rounds remain,
// then bracket rounds once Swiss play is exhausted. Errors if the current
// round has unresolved matches. When snapshotStandings is true, a standings
// snapshot is recorded for the round about to begin (used by callers that
// want a "standings entering round N" view alongside the live one).
func (t *Tournament) PairNextRound(snapshotStandings bool) (*Round, error) {
	t.mu.Lock()

	nextNum := RoundId(len(t.roundOrder) + 1)
	if uint8(nextNum) > t.opts.SwissRounds {
		nextNum |= bracketBit
	}

	if len(t.roundOrder) > 0 {
		prev := t.rounds[t.roundOrder[len(t.roundOrder)-1]]
		if !prev.RoundComplete() {
			t.mu.Unlock()
			return nil, failedPreconditionf("%s is not complete", prev.ErrorStringId())
		}
		if snapshotStandings {
			standing := t.generateStandingsLocked()
			t.standings[nextNum] = standing
		}
	}

	next := newRound(nextNum, t)
	t.rounds[nextNum] = next
	t.roundOrder = append(t.roundOrder, nextNum)
	t.mu.Unlock()

	if err := next.init(); err != nil {
		return nil, err
	}

	t.mu.Lock()
	for key, m := range next.outstanding {
		t.matches[key] = m
	}
	for key, m := range next.reported {
		t.matches[key] = m
	}
	t.mu.Unlock()

	return next, nil
}

// GenerateStandings computes the current tie-break ranking of every
// competitor ever registered (including dropped ones, whose record stands
// as of their drop).
func (t *Tournament) GenerateStandings() []Standing {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.generateStandingsLocked()
}

func (t *Tournament) generateStandingsLocked() []Standing {
	standing := make([]Standing, 0, len(t.competitors))
	for _, c := range t.competitors {
		standing = append(standing, Standing{Competitor: c, Info: c.ComputeBreakers()})
	}
	sort.SliceStable(standing, func(i, j int) bool {
		return standing[j].Info.Less(standing[i].Info)
	})
	for i := range standing {
		standing[i].Place = uint32(i + 1)
	}
	return standing
}

// String renders a brief human-readable summary, useful in logs.
func (t *Tournament) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return fmt.Sprintf("Tournament(%d competitors, %d rounds)", len(t.competitors), len(t.roundOrder))
}
