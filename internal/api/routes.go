// internal/api/routes.go
// Central route registration for all API endpoints

package api

import (
	"swisscore/internal/middleware"
	"swisscore/internal/models"
	"swisscore/internal/services"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers authentication-related routes
func RegisterAuthRoutes(router *gin.RouterGroup, services *services.Container) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", HandleRegister(services.Auth))
		auth.POST("/login", HandleLogin(services.Auth))
		auth.POST("/logout", middleware.RequireAuth(services.Auth), HandleLogout(services.Auth))
		auth.POST("/refresh", HandleRefreshToken(services.Auth))
		auth.POST("/forgot-password", HandleForgotPassword(services.Auth))
		auth.POST("/reset-password", HandleResetPassword(services.Auth))
		auth.POST("/verify-email", HandleVerifyEmail(services.Auth))
	}
}

// RegisterUserRoutes registers user-related routes
func RegisterUserRoutes(router *gin.RouterGroup, services *services.Container) {
	users := router.Group("/users")
	users.Use(middleware.RequireAuth(services.Auth))
	{
		users.GET("/me", HandleGetCurrentUser(services.User))
		users.PUT("/me", HandleUpdateProfile(services.User))
		users.PUT("/me/password", HandleChangePassword(services.Auth))
		users.GET("/me/preferences", HandleGetPreferences(services.User))
		users.PUT("/me/preferences", HandleUpdatePreferences(services.User))
		users.GET("/me/statistics", HandleGetUserStatistics(services.User))
	}
}

// RegisterTournamentRoutes registers tournament and engine-facing routes
func RegisterTournamentRoutes(router *gin.RouterGroup, services *services.Container) {
	tournaments := router.Group("/tournaments")
	{
		// Public routes
		tournaments.GET("", HandleListTournaments(services.Tournament))
		tournaments.GET("/:id", HandleGetTournament(services.Tournament))
		tournaments.GET("/:id/standings", HandleGetStandings(services.Tournament))
		tournaments.GET("/:id/rounds/current", HandleGetCurrentRound(services.Tournament))
		tournaments.GET("/:id/competitors/:competitorId", HandleGetCompetitor(services.Tournament))
		tournaments.GET("/:id/matches/:matchId", HandleGetMatch(services.Tournament))

		// Reporting a result requires a reporter competitor id (?as=) but not
		// a platform account, matching in-person tabletop tournament play.
		tournaments.POST("/:id/matches/:matchId/result", HandleReportResult(services.Tournament))

		// Organizer/judge-only routes
		tournaments.Use(middleware.RequireAuth(services.Auth))
		tournaments.POST("", middleware.RequireRole(
			string(models.RoleOrganizer), string(models.RoleAdmin),
		), HandleCreateTournament(services.Tournament))
		tournaments.POST("/:id/competitors", middleware.RequireTournamentOwner(services), HandleAddCompetitor(services.Tournament))
		tournaments.DELETE("/:id/competitors/:competitorId", middleware.RequireTournamentOwner(services), HandleDropCompetitor(services.Tournament))
		tournaments.POST("/:id/rounds", middleware.RequireTournamentOwner(services), HandlePairNextRound(services.Tournament))
		tournaments.POST("/:id/complete", middleware.RequireTournamentOwner(services), HandleCompleteTournament(services.Tournament))
		tournaments.POST("/:id/matches/:matchId/judge-result", middleware.RequireRole(
			string(models.RoleJudge), string(models.RoleOrganizer), string(models.RoleAdmin),
		), HandleJudgeSetResult(services.Tournament))
	}
}

// RegisterAdminRoutes registers admin-only routes
func RegisterAdminRoutes(router *gin.RouterGroup, services *services.Container) {
	admin := router.Group("/admin")
	admin.Use(middleware.RequireAuth(services.Auth))
	admin.Use(middleware.RequireRole(string(models.RoleAdmin)))
	{
		admin.GET("/stats", HandleGetPlatformStats(services.Analytics))
		admin.GET("/users", HandleListUsers(services.User))
		admin.PUT("/users/:id/role", HandleUpdateUserRole(services.User))
		admin.GET("/tournaments", HandleListAllTournaments(services.Tournament))
	}
}
