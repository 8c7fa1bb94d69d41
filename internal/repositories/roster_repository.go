// internal/repositories/roster_repository.go
// Competitor roster data access layer (MongoDB)

package repositories

import (
	"context"
	"time"

	"swisscore/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// RosterRepository persists the durable record of which competitors were
// added to which tournament. The engine itself only knows CompetitorId and
// display name; this is the queryable, cross-restart record of membership.
type RosterRepository struct {
	collection *mongo.Collection
}

// NewRosterRepository creates a new roster repository.
func NewRosterRepository(db *mongo.Database) *RosterRepository {
	return &RosterRepository{collection: db.Collection("roster")}
}

// Add records a competitor's addition to a tournament.
func (r *RosterRepository) Add(ctx context.Context, entry *models.RosterEntry) error {
	entry.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, entry)
	return err
}

// MarkDropped flags a competitor as dropped without deleting their history.
func (r *RosterRepository) MarkDropped(ctx context.Context, tournamentID string, competitorID uint64) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"tournament_id": tournamentID, "competitor_id": competitorID},
		bson.M{"$set": bson.M{"dropped": true}},
	)
	return err
}

// ListByTournament returns every roster entry for a tournament.
func (r *RosterRepository) ListByTournament(ctx context.Context, tournamentID string) ([]*models.RosterEntry, error) {
	cur, err := r.collection.Find(ctx, bson.M{"tournament_id": tournamentID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]*models.RosterEntry, 0)
	for cur.Next(ctx) {
		var entry models.RosterEntry
		if err := cur.Decode(&entry); err != nil {
			return nil, err
		}
		out = append(out, &entry)
	}
	return out, cur.Err()
}
