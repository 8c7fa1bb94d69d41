// internal/services/other_services.go
// Notification and analytics services layered on top of the tournament hub.

package services

import (
	"context"
	"log"
	"time"

	"swisscore/internal/config"
	"swisscore/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// NotificationService fans out tournament events to interested parties.
// Actual delivery (email, push) is out of scope here; this records what
// would be sent, mirroring how the websocket hub broadcasts live updates.
type NotificationService struct {
	db     *database.Connections
	config *config.Config
	logger *log.Logger
}

// NewNotificationService creates a new notification service.
func NewNotificationService(db *database.Connections, config *config.Config, logger *log.Logger) *NotificationService {
	return &NotificationService{
		db:     db,
		config: config,
		logger: logger,
	}
}

// NotifyTournamentCreated logs creation of a new tournament.
func (s *NotificationService) NotifyTournamentCreated(tournamentID, name string) {
	if !s.config.Features.EnableNotifications {
		return
	}
	s.logger.Printf("tournament %s (%s) created", tournamentID, name)
}

// NotifyRoundPaired logs that a round's pairings were generated.
func (s *NotificationService) NotifyRoundPaired(tournamentID string, round uint8) {
	if !s.config.Features.EnableNotifications {
		return
	}
	s.logger.Printf("tournament %s: round %d paired", tournamentID, round)
}

// NotifyMatchResult logs a committed match result.
func (s *NotificationService) NotifyMatchResult(tournamentID string, matchID uint32) {
	if !s.config.Features.EnableNotifications {
		return
	}
	s.logger.Printf("tournament %s: match %d result committed", tournamentID, matchID)
}

// ========================================

// AnalyticsService records platform and tournament analytics events.
type AnalyticsService struct {
	db     *mongo.Database
	cache  *CacheService
	logger *log.Logger
}

// NewAnalyticsService creates a new analytics service.
func NewAnalyticsService(db *mongo.Database, cache *CacheService, logger *log.Logger) *AnalyticsService {
	return &AnalyticsService{
		db:     db,
		cache:  cache,
		logger: logger,
	}
}

// LogEvent logs an analytics event.
func (s *AnalyticsService) LogEvent(ctx context.Context, eventType string, data map[string]interface{}) error {
	event := bson.M{
		"type":       eventType,
		"data":       data,
		"timestamp":  time.Now(),
		"created_at": time.Now(),
	}

	_, err := s.db.Collection("analytics_events").InsertOne(ctx, event)
	if err != nil {
		s.logger.Printf("failed to log analytics event: %v", err)
		// Analytics failures never propagate to the caller.
	}

	return nil
}

// GetPlatformStats retrieves platform-wide statistics, cached for a short
// window since it aggregates across every tournament.
func (s *AnalyticsService) GetPlatformStats(ctx context.Context) (map[string]interface{}, error) {
	var stats map[string]interface{}
	if err := s.cache.Get("platform_stats", &stats); err == nil {
		return stats, nil
	}

	stats = map[string]interface{}{
		"total_users":            0,
		"total_tournaments":      0,
		"total_matches_reported": 0,
		"active_tournaments":     0,
	}

	s.cache.Set("platform_stats", stats, 5*time.Minute)

	return stats, nil
}
