// internal/hub/hub.go
// TournamentHub is the bridge between the pure in-memory engine and the rest
// of the service: it keeps one live engine.Tournament per active event,
// keyed by an externally-facing uuid.UUID, and fires archive writes and
// broadcast notifications alongside engine operations without ever blocking
// them.

package hub

import (
	"context"
	"log"
	"sync"
	"time"

	"swisscore/internal/engine"
	"swisscore/internal/models"
	"swisscore/internal/repositories"

	"github.com/google/uuid"
)

// notifyFunc is called asynchronously after an engine mutation succeeds.
// It carries enough context for a caller (websocket hub, notification
// service) to broadcast or log without this package depending on either.
type notifyFunc func(tournamentID uuid.UUID, eventType string, payload interface{})

// TournamentHub owns every live tournament in the process.
type TournamentHub struct {
	mu          sync.RWMutex
	tournaments map[uuid.UUID]*engine.Tournament
	archives    map[uuid.UUID]*models.TournamentRecord

	repos  *repositories.Container
	logger *log.Logger

	notify notifyFunc
	events chan hubEvent
}

type hubEvent struct {
	tournamentID uuid.UUID
	eventType    string
	payload      interface{}
}

// New constructs an empty hub and starts its background event-processing
// goroutine. Call SetNotifier to plug in a broadcast function (typically
// websocket.Hub.BroadcastTournamentUpdate); until then events are dropped.
func New(repos *repositories.Container, logger *log.Logger) *TournamentHub {
	h := &TournamentHub{
		tournaments: make(map[uuid.UUID]*engine.Tournament),
		archives:    make(map[uuid.UUID]*models.TournamentRecord),
		repos:       repos,
		logger:      logger,
		events:      make(chan hubEvent, 256),
	}
	go h.drainEvents()
	return h
}

// SetNotifier wires a broadcast callback invoked for every event this hub
// emits. This never runs on the caller's goroutine.
func (h *TournamentHub) SetNotifier(fn notifyFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.notify = fn
}

func (h *TournamentHub) drainEvents() {
	for ev := range h.events {
		h.mu.RLock()
		notify := h.notify
		h.mu.RUnlock()
		if notify != nil {
			notify(ev.tournamentID, ev.eventType, ev.payload)
		}
	}
}

func (h *TournamentHub) emit(id uuid.UUID, eventType string, payload interface{}) {
	select {
	case h.events <- hubEvent{tournamentID: id, eventType: eventType, payload: payload}:
	default:
		h.logger.Printf("hub: dropping event %s for %s, event queue full", eventType, id)
	}
}

// CreateTournament starts a new live tournament, persists its archive
// record, and returns the id callers will use to address it externally.
func (h *TournamentHub) CreateTournament(ctx context.Context, organizerID, name string, opts engine.Options) (uuid.UUID, error) {
	id := uuid.New()
	t := engine.NewTournament(opts)

	record := &models.TournamentRecord{
		ID:          id.String(),
		OrganizerID: organizerID,
		Name:        name,
		SwissRounds: opts.SwissRounds,
		Bracket:     uint8(opts.Bracket),
		TableOne:    opts.TableOne,
		Status:      models.TournamentActive,
		CreatedAt:   time.Now(),
	}
	if err := h.repos.Tournament.Create(ctx, record); err != nil {
		return uuid.Nil, err
	}

	h.mu.Lock()
	h.tournaments[id] = t
	h.archives[id] = record
	h.mu.Unlock()

	h.emit(id, "tournament_created", record)
	return id, nil
}

// Get returns the live engine for a tournament id.
func (h *TournamentHub) Get(id uuid.UUID) (*engine.Tournament, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	t, ok := h.tournaments[id]
	if !ok {
		return nil, engine.NewError(engine.KindNotFound, "no tournament %s is live in this process", id)
	}
	return t, nil
}

// Archive returns the durable archive record for a tournament id, if known
// to this process (it is populated on CreateTournament and refreshed on
// completion, not reloaded from storage for other tournaments).
func (h *TournamentHub) Archive(id uuid.UUID) (*models.TournamentRecord, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	rec, ok := h.archives[id]
	return rec, ok
}

// AddCompetitor adds a competitor to the live tournament and records the
// roster entry durably.
func (h *TournamentHub) AddCompetitor(ctx context.Context, id uuid.UUID, opts engine.CompetitorOptions, userID *string) error {
	t, err := h.Get(id)
	if err != nil {
		return err
	}
	if err := t.AddCompetitor(opts); err != nil {
		return err
	}

	entry := &models.RosterEntry{
		TournamentID: id.String(),
		CompetitorID: uint64(opts.Id),
		UserID:       userID,
		DisplayName:  opts.DisplayName,
	}
	if err := h.repos.Roster.Add(ctx, entry); err != nil {
		h.logger.Printf("hub: failed to persist roster entry for %s/%d: %v", id, opts.Id, err)
	}

	h.emit(id, "competitor_added", entry)
	return nil
}

// DropCompetitor removes a competitor from the active pool and marks the
// roster entry dropped.
func (h *TournamentHub) DropCompetitor(ctx context.Context, id uuid.UUID, competitorID engine.CompetitorId) error {
	t, err := h.Get(id)
	if err != nil {
		return err
	}
	if err := t.DropCompetitor(competitorID); err != nil {
		return err
	}
	if err := h.repos.Roster.MarkDropped(ctx, id.String(), uint64(competitorID)); err != nil {
		h.logger.Printf("hub: failed to mark roster entry dropped for %s/%d: %v", id, competitorID, err)
	}
	h.emit(id, "competitor_dropped", competitorID)
	return nil
}

// ReportResult forwards a player-submitted result to the engine, then
// records an audit event if it committed (both sides agreed).
func (h *TournamentHub) ReportResult(ctx context.Context, id uuid.UUID, reporter engine.CompetitorId, result engine.MatchResult) error {
	t, err := h.Get(id)
	if err != nil {
		return err
	}
	if err := t.ReportResult(reporter, result); err != nil {
		return err
	}

	if m, mErr := t.GetMatch(result.Id); mErr == nil {
		if confirmed, cErr := m.ConfirmedResult(); cErr == nil {
			h.recordAudit(ctx, id, m, confirmed, &reporter, false)
			h.emit(id, "match_result_committed", confirmed)
		}
	}
	return nil
}

// JudgeSetResult forwards a judge override to the engine and always records
// an audit event, since a judge commit is unconditional.
func (h *TournamentHub) JudgeSetResult(ctx context.Context, id uuid.UUID, result engine.MatchResult) error {
	t, err := h.Get(id)
	if err != nil {
		return err
	}
	if err := t.JudgeSetResult(result); err != nil {
		return err
	}
	if m, mErr := t.GetMatch(result.Id); mErr == nil {
		h.recordAudit(ctx, id, m, result, nil, true)
	}
	h.emit(id, "match_result_committed", result)
	return nil
}

func (h *TournamentHub) recordAudit(ctx context.Context, id uuid.UUID, m *engine.Match, result engine.MatchResult, reporter *engine.CompetitorId, judge bool) {
	a, b := m.Participants()
	rec := &models.MatchAuditRecord{
		TournamentID:    id.String(),
		MatchIdPacked:   result.Id.Pack(),
		Round:           result.Id.Round.Number(),
		CompetitorA:     uint64(a),
		WinnerGamesWon:  result.WinnerGamesWon,
		WinnerGamesLost: result.WinnerGamesLost,
		GamesDrawn:      result.GamesDrawn,
		JudgeOverride:   judge,
		CommittedAt:     time.Now(),
	}
	if b != nil {
		bb := uint64(*b)
		rec.CompetitorB = &bb
	}
	if result.Winner != nil {
		w := uint64(*result.Winner)
		rec.Winner = &w
	}
	if reporter != nil {
		r := uint64(*reporter)
		rec.ReportedBy = &r
	}
	if err := h.repos.Audit.Record(ctx, rec); err != nil {
		h.logger.Printf("hub: failed to record audit entry for %s/%s: %v", id, result.Id, err)
	}
}

// PairNextRound pairs the next round for a live tournament and broadcasts
// the new pairings.
func (h *TournamentHub) PairNextRound(id uuid.UUID, snapshotStandings bool) (*engine.Round, error) {
	t, err := h.Get(id)
	if err != nil {
		return nil, err
	}
	round, err := t.PairNextRound(snapshotStandings)
	if err != nil {
		return nil, err
	}
	h.emit(id, "round_paired", round.Id())
	return round, nil
}

// Standings computes and broadcasts the current standings snapshot.
func (h *TournamentHub) Standings(id uuid.UUID) ([]engine.Standing, error) {
	t, err := h.Get(id)
	if err != nil {
		return nil, err
	}
	standings := t.GenerateStandings()
	h.emit(id, "standings_updated", standings)
	return standings, nil
}

// CompleteTournament marks a tournament's archive record completed. The
// live engine.Tournament is left in the hub unchanged so standings and
// match history remain queryable.
func (h *TournamentHub) CompleteTournament(ctx context.Context, id uuid.UUID) error {
	h.mu.Lock()
	record, ok := h.archives[id]
	h.mu.Unlock()
	if !ok {
		return engine.NewError(engine.KindNotFound, "no tournament %s is live in this process", id)
	}

	now := time.Now()
	if err := h.repos.Tournament.MarkCompleted(ctx, id.String(), now); err != nil {
		return err
	}

	h.mu.Lock()
	record.Status = models.TournamentCompleted
	record.CompletedAt = &now
	h.mu.Unlock()

	h.emit(id, "tournament_completed", record)
	return nil
}
