// internal/models/roster.go
// RosterEntry links a tournament's engine.CompetitorId to a display name
// and, optionally, a registered User account. The roster is the durable
// record of who was added to a tournament; the engine itself only ever
// sees CompetitorId and a display name.

package models

import (
	"time"
)

// RosterEntry is one competitor's membership record for a tournament.
type RosterEntry struct {
	TournamentID string    `json:"tournament_id" bson:"tournament_id"`
	CompetitorID uint64    `json:"competitor_id" bson:"competitor_id"`
	UserID       *string   `json:"user_id,omitempty" bson:"user_id,omitempty"`
	DisplayName  string    `json:"display_name" bson:"display_name"`
	Dropped      bool      `json:"dropped" bson:"dropped"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}
