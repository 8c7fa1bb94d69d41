// internal/models/user.go
// Account records for the people who run and judge tournaments.

package models

import (
	"time"
)

// User represents an organizer or judge account. Competitors themselves are
// not accounts in this system — they're engine.CompetitorId values attached
// to a roster entry, optionally linked back to a User via UserID.
type User struct {
	ID            string    `json:"id" db:"id"`
	Email         string    `json:"email" db:"email"`
	PasswordHash  string    `json:"-" db:"password_hash"`
	FullName      string    `json:"full_name" db:"full_name"`
	Role          UserRole  `json:"role" db:"role"`
	EmailVerified bool      `json:"email_verified" db:"email_verified"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// UserRole defines access levels over tournament administration.
type UserRole string

const (
	// RoleUser can register as a competitor and report their own results.
	RoleUser UserRole = "user"
	// RoleJudge can override match results through the judge-result route.
	RoleJudge UserRole = "judge"
	// RoleOrganizer owns tournaments: creates them, adds competitors, drops
	// them, and holds every judge permission within their own tournaments.
	RoleOrganizer UserRole = "organizer"
	// RoleAdmin has platform-wide administrative access.
	RoleAdmin UserRole = "admin"
)

// TokenPair represents JWT access and refresh tokens.
type TokenPair struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// LoginRequest represents authentication credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// RegisterRequest represents new account registration data.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name" binding:"required,min=2,max=100"`
}
