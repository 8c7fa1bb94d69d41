// internal/engine/matchid.go
// MatchId packs a round and an in-round match number into a totally ordered,
// hashable 32-bit value.

package engine

import "fmt"

const (
	bracketBit RoundId = 1 << 7
	roundMask  RoundId = ^bracketBit
)

// RoundId is the round portion of a MatchId. The high bit distinguishes
// Swiss rounds (0) from elimination-bracket rounds (1).
type RoundId uint8

// IsBracket reports whether r belongs to the elimination bracket.
func (r RoundId) IsBracket() bool { return r&bracketBit != 0 }

// IsSwiss reports whether r belongs to the Swiss rounds.
func (r RoundId) IsSwiss() bool { return !r.IsBracket() }

// Number returns the round's display number, with the bracket bit masked off.
func (r RoundId) Number() uint8 { return uint8(r & roundMask) }

// MatchId uniquely identifies a match within a tournament. The round occupies
// the high byte and the in-round number the low 24 bits, so that the natural
// order of the packed integer matches tournament chronology: Swiss rounds
// sort before bracket rounds, and matches within a round sort ascending by
// number.
type MatchId struct {
	Round  RoundId
	Number uint32 // effectively 24 bits; values above 1<<24-1 are a caller bug
}

// Pack returns the canonical 32-bit encoding of id.
func (id MatchId) Pack() uint32 {
	return uint32(id.Round)<<24 | (id.Number & 0x00FFFFFF)
}

// MatchIdFromPacked reconstructs a MatchId from its packed encoding.
func MatchIdFromPacked(packed uint32) MatchId {
	return MatchId{Round: RoundId(packed >> 24), Number: packed & 0x00FFFFFF}
}

// Less gives the total order over MatchId: Swiss before bracket, then
// ascending round, then ascending in-round number.
func (id MatchId) Less(other MatchId) bool {
	return id.Pack() < other.Pack()
}

// Equal reports whether id and other refer to the same match.
func (id MatchId) Equal(other MatchId) bool {
	return id.Pack() == other.Pack()
}

// IsBracket reports whether this match belongs to the elimination bracket.
func (id MatchId) IsBracket() bool { return id.Round.IsBracket() }

// IsSwiss reports whether this match belongs to a Swiss round.
func (id MatchId) IsSwiss() bool { return id.Round.IsSwiss() }

// String renders a human-readable identifier, e.g. "R3M4".
func (id MatchId) String() string {
	return fmt.Sprintf("R%dM%d", id.Round.Number(), id.Number)
}

// ErrorStringId renders the canonical form used in error messages.
func (id MatchId) ErrorStringId() string {
	return fmt.Sprintf("Match (%s)", id)
}

// matchIdGenerator assigns sequential, 1-based match numbers within a round.
type matchIdGenerator struct {
	round RoundId
	next  uint32
}

func newMatchIdGenerator(round RoundId) *matchIdGenerator {
	return &matchIdGenerator{round: round, next: 1}
}

func (g *matchIdGenerator) Next() MatchId {
	id := MatchId{Round: g.round, Number: g.next}
	g.next++
	return id
}

// CompetitorId is an opaque identifier supplied by the external identity
// provider. The engine treats it as an inert handle.
type CompetitorId uint64
