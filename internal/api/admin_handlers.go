// internal/api/admin_handlers.go
// Admin-only HTTP handlers

package api

import (
	"net/http"
	"strconv"

	"swisscore/internal/models"
	"swisscore/internal/services"

	"github.com/gin-gonic/gin"
)

// HandleGetPlatformStats retrieves platform-wide statistics
func HandleGetPlatformStats(analyticsService *services.AnalyticsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := analyticsService.GetPlatformStats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve statistics"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"statistics": stats,
		})
	}
}

// HandleListUsers answers every request (admin only) with 501 Not
// Implemented; it lists no users
func HandleListUsers(userService *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		// TODO: Implement user listing with pagination
		c.JSON(http.StatusNotImplemented, gin.H{"error": "User listing not implemented yet"})
	}
}

// HandleUpdateUserRole updates a user's role
func HandleUpdateUserRole(userService *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("id")

		var req struct {
			Role string `json:"role" binding:"required,oneof=user judge organizer admin"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}

		if err := userService.SetRole(c.Request.Context(), userID, models.UserRole(req.Role)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update role"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Role updated"})
	}
}

// HandleListAllTournaments lists every tournament archive record, regardless
// of organizer.
func HandleListAllTournaments(tournamentService *services.TournamentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

		tournaments, total, err := tournamentService.List(c.Request.Context(), services.ListFilter{
			Page:  page,
			Limit: limit,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list tournaments"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"tournaments": tournaments, "total": total})
	}
}
