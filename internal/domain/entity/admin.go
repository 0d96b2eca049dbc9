// Package entity contains the core business objects of the portfolio service.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultAdminUsername is the account name used when none is configured.
const DefaultAdminUsername = "admin"

// AdminCredential is the hashed password of the single dashboard administrator.
type AdminCredential struct {
	ID           uuid.UUID // Unique ID of the credential row.
	Username     string    // Account name, unique.
	PasswordHash string    // bcrypt hash of the password. The plaintext is never stored.
	CreatedAt    time.Time
	UpdatedAt    time.Time // Last time the password was replaced.
}

// AdminSession is an opaque bearer session issued on successful login.
type AdminSession struct {
	ID        uuid.UUID `json:"id"`
	TokenHash string    `json:"-"` // SHA-256 hex of the raw bearer token.
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
	Revoked   bool      `json:"revoked"`
	CreatedAt time.Time `json:"created_at"`
}

// IsValid reports whether the session may authorize a request at the given instant.
// Expired or revoked sessions are never valid.
func (s *AdminSession) IsValid(now time.Time) bool {
	return s != nil && !s.Revoked && now.Before(s.ExpiresAt)
}

// PasswordResetToken is a single-use credential that permits one password replacement.
type PasswordResetToken struct {
	ID        uuid.UUID
	TokenHash string // SHA-256 hex of the raw token; the raw token is only ever sent to the admin.
	Username  string
	ExpiresAt time.Time
	Used      bool
	UsedAt    *time.Time
	CreatedAt time.Time
}

// IsExpired reports whether the token's TTL has elapsed at the given instant.
func (t *PasswordResetToken) IsExpired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
