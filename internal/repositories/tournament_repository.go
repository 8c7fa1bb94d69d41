// internal/repositories/tournament_repository.go
// Tournament archive data access layer (MySQL)

package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"swisscore/internal/models"
)

// TournamentRepository persists the durable archive record for a
// tournament. Live state lives in the engine; this is only ever written at
// creation and refreshed on completion.
type TournamentRepository struct {
	db *sql.DB
}

// NewTournamentRepository creates a new tournament archive repository.
func NewTournamentRepository(db *sql.DB) *TournamentRepository {
	return &TournamentRepository{db: db}
}

// Create inserts a new tournament archive row.
func (r *TournamentRepository) Create(ctx context.Context, t *models.TournamentRecord) error {
	query := `
		INSERT INTO tournaments (
			id, organizer_id, name, swiss_rounds, bracket, table_one,
			status, created_at, completed_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		t.ID, t.OrganizerID, t.Name, t.SwissRounds, t.Bracket, t.TableOne,
		t.Status, t.CreatedAt, t.CompletedAt,
	)
	return err
}

// GetByID retrieves a tournament archive row by id.
func (r *TournamentRepository) GetByID(ctx context.Context, id string) (*models.TournamentRecord, error) {
	query := `
		SELECT id, organizer_id, name, swiss_rounds, bracket, table_one,
			status, created_at, completed_at
		FROM tournaments
		WHERE id = ?
	`
	var t models.TournamentRecord
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&t.ID, &t.OrganizerID, &t.Name, &t.SwissRounds, &t.Bracket, &t.TableOne,
		&t.Status, &t.CreatedAt, &t.CompletedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("tournament not found")
	}
	return &t, err
}

// MarkCompleted sets a tournament's archive status to completed and records
// completedAt. It does not check the tournament's rounds or results.
func (r *TournamentRepository) MarkCompleted(ctx context.Context, id string, completedAt interface{}) error {
	query := `UPDATE tournaments SET status = ?, completed_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, models.TournamentCompleted, completedAt, id)
	return err
}

// ListFilter narrows a tournament listing.
type ListFilter struct {
	Page        int
	Limit       int
	OrganizerID string
	Status      string
}

// List retrieves tournament archive rows with pagination and filters.
func (r *TournamentRepository) List(ctx context.Context, filter ListFilter) ([]*models.TournamentRecord, int, error) {
	var conditions []string
	var args []interface{}

	baseQuery := "FROM tournaments WHERE 1=1"
	if filter.OrganizerID != "" {
		conditions = append(conditions, "organizer_id = ?")
		args = append(args, filter.OrganizerID)
	}
	if filter.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, filter.Status)
	}
	if len(conditions) > 0 {
		baseQuery += " AND " + strings.Join(conditions, " AND ")
	}

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) "+baseQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	selectQuery := `
		SELECT id, organizer_id, name, swiss_rounds, bracket, table_one,
			status, created_at, completed_at
		` + baseQuery + " ORDER BY created_at DESC LIMIT ? OFFSET ?"
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := r.db.QueryContext(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]*models.TournamentRecord, 0)
	for rows.Next() {
		var t models.TournamentRecord
		if err := rows.Scan(
			&t.ID, &t.OrganizerID, &t.Name, &t.SwissRounds, &t.Bracket, &t.TableOne,
			&t.Status, &t.CreatedAt, &t.CompletedAt,
		); err != nil {
			return nil, 0, err
		}
		out = append(out, &t)
	}
	return out, total, nil
}
