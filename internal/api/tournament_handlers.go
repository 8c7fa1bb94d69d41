// internal/api/tournament_handlers.go
// Tournament lifecycle HTTP handlers

package api

import (
	"net/http"
	"strconv"

	"swisscore/internal/engine"
	"swisscore/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HandleCreateTournament handles tournament creation
func HandleCreateTournament(tournamentService *services.TournamentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		organizerID := c.GetString("user_id")

		var req services.CreateTournamentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
			return
		}

		id, err := tournamentService.Create(c.Request.Context(), organizerID, req)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create tournament", "details": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"id": id})
	}
}

// HandleGetTournament retrieves a tournament's archive record
func HandleGetTournament(tournamentService *services.TournamentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tournament id"})
			return
		}

		record, ok := tournamentService.Archive(id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tournament not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"tournament": record})
	}
}

// HandleListTournaments lists tournament archive records with filters
func HandleListTournaments(tournamentService *services.TournamentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

		filter := services.ListFilter{
			Page:        page,
			Limit:       limit,
			OrganizerID: c.Query("organizer_id"),
			Status:      c.Query("status"),
		}

		tournaments, total, err := tournamentService.List(c.Request.Context(), filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list tournaments"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"tournaments": tournaments,
			"pagination": gin.H{
				"page":  page,
				"limit": limit,
				"total": total,
			},
		})
	}
}

// HandleCompleteTournament marks a tournament's archive record completed
func HandleCompleteTournament(tournamentService *services.TournamentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tournament id"})
			return
		}

		if err := tournamentService.Complete(c.Request.Context(), id); err != nil {
			writeEngineError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Tournament completed"})
	}
}

// HandleAddCompetitor registers a competitor to the live tournament
func HandleAddCompetitor(tournamentService *services.TournamentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tournament id"})
			return
		}

		var req services.AddCompetitorRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
			return
		}

		competitorID, err := tournamentService.AddCompetitor(c.Request.Context(), id, req)
		if err != nil {
			writeEngineError(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"competitor_id": competitorID})
	}
}

// HandleDropCompetitor removes a competitor from active play
func HandleDropCompetitor(tournamentService *services.TournamentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tournament id"})
			return
		}

		competitorID, err := parseCompetitorId(c.Param("competitorId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid competitor id"})
			return
		}

		if err := tournamentService.DropCompetitor(c.Request.Context(), id, competitorID); err != nil {
			writeEngineError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Competitor dropped"})
	}
}

// HandleGetCompetitor retrieves one competitor's live standing
func HandleGetCompetitor(tournamentService *services.TournamentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tournament id"})
			return
		}

		competitorID, err := parseCompetitorId(c.Param("competitorId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid competitor id"})
			return
		}

		competitor, err := tournamentService.GetCompetitor(id, competitorID)
		if err != nil {
			writeEngineError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"id":           competitor.Id(),
			"display_name": competitor.DisplayName(),
			"match_points": competitor.MatchPoints(),
			"breakers":     competitor.ComputeBreakers(),
		})
	}
}

// HandlePairNextRound pairs and starts the next round
func HandlePairNextRound(tournamentService *services.TournamentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tournament id"})
			return
		}

		var req struct {
			SnapshotStandings bool `json:"snapshot_standings"`
		}
		c.ShouldBindJSON(&req)

		round, err := tournamentService.PairNextRound(id, req.SnapshotStandings)
		if err != nil {
			writeEngineError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"round":           round.Id().Number(),
			"round_complete":  round.RoundComplete(),
			"is_bracket_round": round.Id().IsBracket(),
		})
	}
}

// HandleGetCurrentRound returns the most recently paired round
func HandleGetCurrentRound(tournamentService *services.TournamentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tournament id"})
			return
		}

		round, err := tournamentService.CurrentRound(id)
		if err != nil {
			writeEngineError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"round":          round.Id().Number(),
			"round_complete": round.RoundComplete(),
		})
	}
}

// HandleGetStandings returns the current tie-break ranking
func HandleGetStandings(tournamentService *services.TournamentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tournament id"})
			return
		}

		standings, err := tournamentService.Standings(id)
		if err != nil {
			writeEngineError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"standings": standings})
	}
}

// writeEngineError maps an engine.Error's kind to an HTTP status code. Any
// other error is treated as an internal failure.
func writeEngineError(c *gin.Context, err error) {
	switch engine.KindOf(err) {
	case engine.KindNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case engine.KindInvalidArgument:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case engine.KindFailedPrecondition, engine.KindAlreadyExists:
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func parseCompetitorId(raw string) (engine.CompetitorId, error) {
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	return engine.CompetitorId(v), nil
}
