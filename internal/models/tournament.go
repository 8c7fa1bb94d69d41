// internal/models/tournament.go
// TournamentRecord is the durable archive row for a tournament. Live
// mutable state (competitors, matches, rounds, standings) lives in
// engine.Tournament; this record is written at creation and refreshed on
// completion so a tournament survives process restarts and stays listable
// after it finishes.

package models

import (
	"time"
)

// TournamentStatus tracks the archive's view of a tournament's lifecycle.
type TournamentStatus string

const (
	TournamentActive    TournamentStatus = "active"
	TournamentCompleted TournamentStatus = "completed"
)

// TournamentRecord is the MySQL-backed archive row for one tournament.
type TournamentRecord struct {
	ID          string           `json:"id" db:"id"`
	OrganizerID string           `json:"organizer_id" db:"organizer_id"`
	Name        string           `json:"name" db:"name"`
	SwissRounds uint8            `json:"swiss_rounds" db:"swiss_rounds"`
	Bracket     uint8            `json:"bracket" db:"bracket"`
	TableOne    uint32           `json:"table_one" db:"table_one"`
	Status      TournamentStatus `json:"status" db:"status"`
	CreatedAt   time.Time        `json:"created_at" db:"created_at"`
	CompletedAt *time.Time       `json:"completed_at,omitempty" db:"completed_at"`
}
