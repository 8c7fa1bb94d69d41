// internal/repositories/container.go
// Repository container for dependency injection

package repositories

import (
	"context"
	"database/sql"

	"swisscore/internal/database"
)

// Container holds all repository instances
type Container struct {
	User            *UserRepository
	UserPreferences *UserPreferencesRepository
	Tournament      *TournamentRepository
	Roster          *RosterRepository
	Audit           *AuditRepository
	db              *sql.DB
}

// NewContainer creates a new repository container
func NewContainer(conn *database.Connections) *Container {
	return &Container{
		User:            NewUserRepository(conn.MySQL),
		Tournament:      NewTournamentRepository(conn.MySQL),
		Roster:          NewRosterRepository(conn.MongoDB),
		Audit:           NewAuditRepository(conn.MongoDB),
		UserPreferences: NewUserPreferencesRepository(conn.MongoDB),
		db:              conn.MySQL,
	}
}

// BeginTx starts a new database transaction
func (c *Container) BeginTx(ctx context.Context) (*sql.Tx, error) {
	return c.db.BeginTx(ctx, nil)
}
