// internal/engine/round.go
// Round owns the matches generated for one round and tracks which are still
// outstanding (no committed result yet).

package engine

import (
	"fmt"
	"sync"
)

// Round is one round of a tournament: a fixed set of matches generated at
// pairing time, tracked until every one of them has a committed result.
type Round struct {
	mu sync.Mutex

	id     RoundId
	parent *Tournament

	outstanding map[uint32]*Match
	reported    map[uint32]*Match
}

func newRound(id RoundId, parent *Tournament) *Round {
	return &Round{
		id:          id,
		parent:      parent,
		outstanding: make(map[uint32]*Match),
		reported:    make(map[uint32]*Match),
	}
}

// ErrorStringId renders this round's identifier for error messages.
func (r *Round) ErrorStringId() string {
	return fmt.Sprintf("Round %d", r.id.Number())
}

// Id returns the round's identity.
func (r *Round) Id() RoundId { return r.id }

// init generates this round's pairings. Swiss rounds are paired immediately
// against the parent tournament's active competitor pool; bracket rounds are
// left empty, per the deferred elimination-bracket seeding decision.
func (r *Round) init() error {
	if r.id.IsBracket() {
		return nil
	}
	return r.generateSwissPairings()
}

// RoundComplete reports whether every match generated for this round has a
// committed result.
func (r *Round) RoundComplete() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.outstanding) == 0
}

// CommitMatchResult moves m from outstanding to reported once its result has
// been confirmed by both participants.
func (r *Round) CommitMatchResult(m *Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := m.Id().Pack()
	delete(r.outstanding, key)
	r.reported[key] = m
	return nil
}

// JudgeSetResult records a judge override the same way a normal commit is
// recorded: the match moves (or stays) in the reported set regardless of
// whether players had already agreed on a value.
func (r *Round) JudgeSetResult(m *Match) error {
	return r.CommitMatchResult(m)
}

// generateSwissPairings pairs the tournament's active competitors bracket by
// bracket, highest match-point total first, carrying any competitor a
// bracket could not legally pair down into the next, lower bracket.
func (r *Round) generateSwissPairings() error {
	buckets := r.parent.activeCompetitorsByPoints()

	keys := make([]uint16, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	// Highest match points first.
	for i := 0; i < len(keys); i++ {
		for j := i + 1; j < len(keys); j++ {
			if keys[j] > keys[i] {
				keys[i], keys[j] = keys[j], keys[i]
			}
		}
	}

	var allPaired []pairedCompetitors
	var remainders []*Competitor
	rng := r.parent.childRand()

	for _, k := range keys {
		current := append(remainders, buckets[k]...)
		remainders = nil
		chunk := pairChunk(current, rng)
		allPaired = append(allPaired, chunk.paired...)
		remainders = chunk.unpaired
	}

	if len(remainders) > 1 {
		return internalf("generateSwissPairings left %d competitors unpaired, want at most 1", len(remainders))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	gen := newMatchIdGenerator(r.id)
	for _, p := range allPaired {
		id := gen.Next()
		m, err := CreatePairing(p.a, p.b, id)
		if err != nil {
			return err
		}
		r.outstanding[id.Pack()] = m
	}
	for _, p := range remainders {
		id := gen.Next()
		m, err := CreateBye(p, id)
		if err != nil {
			return err
		}
		r.reported[id.Pack()] = m
	}
	return nil
}
