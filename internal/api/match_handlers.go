// internal/api/match_handlers.go
// Match result HTTP handlers

package api

import (
	"net/http"
	"strconv"

	"swisscore/internal/engine"
	"swisscore/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// matchResultRequest is the shared payload shape for both player-reported
// and judge-set results; the engine distinguishes them by which endpoint
// committed them, not by any field on the result itself.
type matchResultRequest struct {
	Winner          *uint64 `json:"winner,omitempty"`
	WinnerGamesWon  uint16  `json:"winner_games_won"`
	WinnerGamesLost uint16  `json:"winner_games_lost"`
	GamesDrawn      uint16  `json:"games_drawn"`
}

// HandleGetMatch retrieves a single match's live state
func HandleGetMatch(tournamentService *services.TournamentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tournament id"})
			return
		}

		matchID, err := parseMatchId(c.Param("matchId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid match id"})
			return
		}

		match, err := tournamentService.GetMatch(id, matchID)
		if err != nil {
			writeEngineError(c, err)
			return
		}

		a, b := match.Participants()
		resp := gin.H{
			"id":          match.Id(),
			"competitor_a": a,
			"is_bye":      match.IsBye(),
		}
		if b != nil {
			resp["competitor_b"] = *b
		}
		if result, err := match.ConfirmedResult(); err == nil {
			resp["result"] = result
		}

		c.JSON(http.StatusOK, resp)
	}
}

// HandleReportResult records a player-submitted match result. Commit only
// happens once both competitors have reported the same result.
func HandleReportResult(tournamentService *services.TournamentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tournament id"})
			return
		}

		matchID, err := parseMatchId(c.Param("matchId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid match id"})
			return
		}

		reporterID, err := parseCompetitorId(c.Query("as"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid ?as= reporter competitor id"})
			return
		}

		var req matchResultRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}

		svcReq := services.ReportResultRequest{
			Reporter:        reporterID,
			MatchId:         matchID,
			Winner:          competitorIdPtr(req.Winner),
			WinnerGamesWon:  req.WinnerGamesWon,
			WinnerGamesLost: req.WinnerGamesLost,
			GamesDrawn:      req.GamesDrawn,
		}

		if err := tournamentService.ReportResult(c.Request.Context(), id, svcReq); err != nil {
			writeEngineError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Result reported"})
	}
}

// HandleJudgeSetResult commits a judge override for a match, bypassing the
// two-party confirmation requirement.
func HandleJudgeSetResult(tournamentService *services.TournamentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tournament id"})
			return
		}

		matchID, err := parseMatchId(c.Param("matchId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid match id"})
			return
		}

		var req matchResultRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}

		result := engine.MatchResult{
			Id:              matchID,
			Winner:          competitorIdPtr(req.Winner),
			WinnerGamesWon:  req.WinnerGamesWon,
			WinnerGamesLost: req.WinnerGamesLost,
			GamesDrawn:      req.GamesDrawn,
		}

		if err := tournamentService.JudgeSetResult(c.Request.Context(), id, result); err != nil {
			writeEngineError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Result committed by judge"})
	}
}

func competitorIdPtr(v *uint64) *engine.CompetitorId {
	if v == nil {
		return nil
	}
	id := engine.CompetitorId(*v)
	return &id
}

func parseMatchId(raw string) (engine.MatchId, error) {
	packed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return engine.MatchId{}, err
	}
	return engine.MatchIdFromPacked(uint32(packed)), nil
}
