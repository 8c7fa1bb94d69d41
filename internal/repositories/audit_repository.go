// internal/repositories/audit_repository.go
// Match-result audit log data access layer (MongoDB)

package repositories

import (
	"context"

	"swisscore/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AuditRepository records every committed match result, player-reported or
// judge-overridden, as an append-only trail separate from the engine's own
// live state.
type AuditRepository struct {
	collection *mongo.Collection
}

// NewAuditRepository creates a new audit repository.
func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{collection: db.Collection("match_audit")}
}

// Record appends a commit event.
func (r *AuditRepository) Record(ctx context.Context, entry *models.MatchAuditRecord) error {
	_, err := r.collection.InsertOne(ctx, entry)
	return err
}

// ListByTournament returns the commit trail for a tournament in chronological order.
func (r *AuditRepository) ListByTournament(ctx context.Context, tournamentID string) ([]*models.MatchAuditRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "committed_at", Value: 1}})
	cur, err := r.collection.Find(ctx, bson.M{"tournament_id": tournamentID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]*models.MatchAuditRecord, 0)
	for cur.Next(ctx) {
		var rec models.MatchAuditRecord
		if err := cur.Decode(&rec); err != nil {
			return nil, err
		}
		out = append(out, &rec)
	}
	return out, cur.Err()
}

// ListByMatch returns every commit recorded against one match id, in case a
// judge override followed a player-reported result.
func (r *AuditRepository) ListByMatch(ctx context.Context, tournamentID string, matchIDPacked uint32) ([]*models.MatchAuditRecord, error) {
	cur, err := r.collection.Find(ctx, bson.M{"tournament_id": tournamentID, "match_id": matchIDPacked})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]*models.MatchAuditRecord, 0)
	for cur.Next(ctx) {
		var rec models.MatchAuditRecord
		if err := cur.Decode(&rec); err != nil {
			return nil, err
		}
		out = append(out, &rec)
	}
	return out, cur.Err()
}
