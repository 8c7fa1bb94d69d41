// internal/models/match.go
// MatchAuditRecord is a single committed-result event, written to the Mongo
// audit log whenever a match result is confirmed or judge-overridden. It
// exists alongside (not instead of) engine.Match's live state: the engine
// owns the authoritative result, this is the durable trail of how it got
// there.

package models

import (
	"time"
)

// MatchAuditRecord documents one commit against a match.
type MatchAuditRecord struct {
	TournamentID    string    `json:"tournament_id" bson:"tournament_id"`
	MatchIdPacked   uint32    `json:"match_id" bson:"match_id"`
	Round           uint8     `json:"round" bson:"round"`
	CompetitorA     uint64    `json:"competitor_a" bson:"competitor_a"`
	CompetitorB     *uint64   `json:"competitor_b,omitempty" bson:"competitor_b,omitempty"`
	Winner          *uint64   `json:"winner,omitempty" bson:"winner,omitempty"`
	WinnerGamesWon  uint16    `json:"winner_games_won" bson:"winner_games_won"`
	WinnerGamesLost uint16    `json:"winner_games_lost" bson:"winner_games_lost"`
	GamesDrawn      uint16    `json:"games_drawn" bson:"games_drawn"`
	JudgeOverride   bool      `json:"judge_override" bson:"judge_override"`
	ReportedBy      *uint64   `json:"reported_by,omitempty" bson:"reported_by,omitempty"`
	CommittedAt     time.Time `json:"committed_at" bson:"committed_at"`
}
