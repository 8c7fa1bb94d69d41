// internal/services/tournament_service.go
// TournamentService is the thin business-logic layer gin handlers call into:
// it translates HTTP-shaped requests into engine operations routed through
// the tournament hub, and assigns the CompetitorId values the engine itself
// never invents.

package services

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"swisscore/internal/engine"
	"swisscore/internal/hub"
	"swisscore/internal/models"
	"swisscore/internal/repositories"

	"github.com/google/uuid"
)

// ListFilter narrows a tournament archive listing.
type ListFilter = repositories.ListFilter

// standingsCacheTTL bounds how stale a served standings snapshot can be
// before a recompute is forced; ReportResult/JudgeSetResult invalidate it
// immediately on every committed result, so this mostly protects against
// bursts of concurrent standings requests between results.
const standingsCacheTTL = 30 * time.Second

// TournamentService wraps the tournament hub with request validation,
// competitor id assignment, and a standings cache.
type TournamentService struct {
	hub          *hub.TournamentHub
	repos        *repositories.Container
	cache        *CacheService
	notification *NotificationService
	logger       *log.Logger

	idMu  sync.Mutex
	idSeq map[uuid.UUID]uint64
}

// NewTournamentService creates a new tournament service.
func NewTournamentService(
	h *hub.TournamentHub,
	repos *repositories.Container,
	cache *CacheService,
	notification *NotificationService,
	logger *log.Logger,
) *TournamentService {
	return &TournamentService{
		hub:          h,
		repos:        repos,
		cache:        cache,
		notification: notification,
		logger:       logger,
		idSeq:        make(map[uuid.UUID]uint64),
	}
}

// CreateTournamentRequest is the payload for starting a new tournament.
type CreateTournamentRequest struct {
	Name        string `json:"name" binding:"required,min=3,max=255"`
	SwissRounds uint8  `json:"swiss_rounds" binding:"required,min=1,max=20"`
	Bracket     uint8  `json:"bracket" binding:"omitempty,oneof=0 2 4 6 8"`
	TableOne    uint32 `json:"table_one"`
}

// Create starts a new tournament and returns its external id.
func (s *TournamentService) Create(ctx context.Context, organizerID string, req CreateTournamentRequest) (uuid.UUID, error) {
	opts := engine.Options{
		SwissRounds: req.SwissRounds,
		Bracket:     engine.BracketSize(req.Bracket),
		TableOne:    req.TableOne,
	}
	if opts.TableOne == 0 {
		opts.TableOne = 1
	}

	id, err := s.hub.CreateTournament(ctx, organizerID, req.Name, opts)
	if err != nil {
		return uuid.Nil, err
	}
	s.notification.NotifyTournamentCreated(id.String(), req.Name)
	return id, nil
}

// AddCompetitorRequest is the payload for registering a competitor.
type AddCompetitorRequest struct {
	DisplayName string  `json:"display_name" binding:"required,min=1,max=100"`
	UserID      *string `json:"user_id,omitempty"`
}

// AddCompetitor registers a new competitor under a freshly assigned
// CompetitorId and returns it to the caller.
func (s *TournamentService) AddCompetitor(ctx context.Context, tournamentID uuid.UUID, req AddCompetitorRequest) (engine.CompetitorId, error) {
	id := s.nextCompetitorId(tournamentID)
	opts := engine.CompetitorOptions{Id: id, DisplayName: req.DisplayName}
	if err := s.hub.AddCompetitor(ctx, tournamentID, opts, req.UserID); err != nil {
		return 0, err
	}
	return id, nil
}

func (s *TournamentService) nextCompetitorId(tournamentID uuid.UUID) engine.CompetitorId {
	s.idMu.Lock()
	defer s.idMu.Unlock()
	s.idSeq[tournamentID]++
	return engine.CompetitorId(s.idSeq[tournamentID])
}

// DropCompetitor removes a competitor from active play.
func (s *TournamentService) DropCompetitor(ctx context.Context, tournamentID uuid.UUID, competitorID engine.CompetitorId) error {
	return s.hub.DropCompetitor(ctx, tournamentID, competitorID)
}

// GetCompetitor returns one competitor's live record.
func (s *TournamentService) GetCompetitor(tournamentID uuid.UUID, competitorID engine.CompetitorId) (*engine.Competitor, error) {
	t, err := s.hub.Get(tournamentID)
	if err != nil {
		return nil, err
	}
	return t.GetCompetitor(competitorID)
}

// GetMatch returns one match's live state.
func (s *TournamentService) GetMatch(tournamentID uuid.UUID, matchID engine.MatchId) (*engine.Match, error) {
	t, err := s.hub.Get(tournamentID)
	if err != nil {
		return nil, err
	}
	return t.GetMatch(matchID)
}

// ReportResultRequest is a player-submitted match result.
type ReportResultRequest struct {
	Reporter        engine.CompetitorId  `json:"-"`
	MatchId         engine.MatchId       `json:"-"`
	Winner          *engine.CompetitorId `json:"winner,omitempty"`
	WinnerGamesWon  uint16               `json:"winner_games_won"`
	WinnerGamesLost uint16               `json:"winner_games_lost"`
	GamesDrawn      uint16               `json:"games_drawn"`
}

// ReportResult records a player-submitted result for a match.
func (s *TournamentService) ReportResult(ctx context.Context, tournamentID uuid.UUID, req ReportResultRequest) error {
	result := engine.MatchResult{
		Id:              req.MatchId,
		Winner:          req.Winner,
		WinnerGamesWon:  req.WinnerGamesWon,
		WinnerGamesLost: req.WinnerGamesLost,
		GamesDrawn:      req.GamesDrawn,
	}
	if err := s.hub.ReportResult(ctx, tournamentID, req.Reporter, result); err != nil {
		return err
	}
	s.invalidateStandings(tournamentID)
	s.notification.NotifyMatchResult(tournamentID.String(), req.MatchId.Pack())
	return nil
}

// JudgeSetResult commits a judge-overridden result.
func (s *TournamentService) JudgeSetResult(ctx context.Context, tournamentID uuid.UUID, result engine.MatchResult) error {
	if err := s.hub.JudgeSetResult(ctx, tournamentID, result); err != nil {
		return err
	}
	s.invalidateStandings(tournamentID)
	s.notification.NotifyMatchResult(tournamentID.String(), result.Id.Pack())
	return nil
}

// PairNextRound pairs and starts the next round.
func (s *TournamentService) PairNextRound(tournamentID uuid.UUID, snapshotStandings bool) (*engine.Round, error) {
	round, err := s.hub.PairNextRound(tournamentID, snapshotStandings)
	if err != nil {
		return nil, err
	}
	s.notification.NotifyRoundPaired(tournamentID.String(), round.Id().Number())
	return round, nil
}

// CurrentRound returns the most recently paired round.
func (s *TournamentService) CurrentRound(tournamentID uuid.UUID) (*engine.Round, error) {
	t, err := s.hub.Get(tournamentID)
	if err != nil {
		return nil, err
	}
	return t.CurrentRound()
}

// ActiveCompetitorsByPoints returns the current Swiss-bucket view.
func (s *TournamentService) ActiveCompetitorsByPoints(tournamentID uuid.UUID) (map[uint16][]*engine.Competitor, error) {
	t, err := s.hub.Get(tournamentID)
	if err != nil {
		return nil, err
	}
	return t.ActivePlayersByPoints(), nil
}

// Standings returns the current tie-break ranking, serving from cache when
// available since a full recompute walks every competitor.
func (s *TournamentService) Standings(tournamentID uuid.UUID) ([]engine.Standing, error) {
	cacheKey := s.standingsCacheKey(tournamentID)
	var cached []engine.Standing
	if err := s.cache.Get(cacheKey, &cached); err == nil {
		return cached, nil
	}

	standings, err := s.hub.Standings(tournamentID)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(cacheKey, standings, standingsCacheTTL); err != nil {
		s.logger.Printf("tournament service: failed to cache standings for %s: %v", tournamentID, err)
	}
	return standings, nil
}

func (s *TournamentService) invalidateStandings(tournamentID uuid.UUID) {
	s.cache.Delete(s.standingsCacheKey(tournamentID))
}

func (s *TournamentService) standingsCacheKey(tournamentID uuid.UUID) string {
	return fmt.Sprintf("standings:%s", tournamentID)
}

// Complete marks a tournament's archive record completed.
func (s *TournamentService) Complete(ctx context.Context, tournamentID uuid.UUID) error {
	return s.hub.CompleteTournament(ctx, tournamentID)
}

// Archive returns a tournament's durable archive record, if this process
// has it live.
func (s *TournamentService) Archive(tournamentID uuid.UUID) (*models.TournamentRecord, bool) {
	return s.hub.Archive(tournamentID)
}

// List returns archived tournaments matching filter, from durable storage
// rather than this process's live set.
func (s *TournamentService) List(ctx context.Context, filter ListFilter) ([]*models.TournamentRecord, int, error) {
	return s.repos.Tournament.List(ctx, filter)
}
