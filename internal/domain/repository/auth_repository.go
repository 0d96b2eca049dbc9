// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"folio/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for admin authentication persistence.
var (
	// ErrCredentialNotFound is returned when no credential exists for a username.
	ErrCredentialNotFound = errors.New("admin credential not found")
	// ErrCredentialAlreadyExists is returned when a credential row already exists for a username.
	ErrCredentialAlreadyExists = errors.New("admin credential already exists")
	// ErrSessionNotFound is returned when no session matches a token hash.
	ErrSessionNotFound = errors.New("admin session not found")
	// ErrResetTokenNotFound is returned when no reset token matches a token hash.
	ErrResetTokenNotFound = errors.New("password reset token not found")
)

// CredentialRepository persists the admin password hash.
type CredentialRepository interface {
	// FindByUsername retrieves the credential of a single account.
	FindByUsername(ctx context.Context, username string) (*entity.AdminCredential, error)

	// Exists reports whether any credential has been provisioned.
	Exists(ctx context.Context) (bool, error)

	// Create stores a new credential. It fails with ErrCredentialAlreadyExists on a duplicate username.
	Create(ctx context.Context, credential *entity.AdminCredential) error

	// UpdatePasswordHash replaces the stored hash of an existing account.
	UpdatePasswordHash(ctx context.Context, username, passwordHash string, updatedAt time.Time) error
}

// SessionRepository persists opaque admin sessions keyed by the hash of their bearer token.
type SessionRepository interface {
	Create(ctx context.Context, session *entity.AdminSession) error

	// FindByTokenHash looks a session up by exact hash match. Reads go to the primary database.
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.AdminSession, error)

	// UpdateExpiry moves the expiry of a non-revoked session.
	UpdateExpiry(ctx context.Context, id uuid.UUID, expiresAt time.Time) error

	// Revoke marks one session revoked. Revoking an already revoked session is not an error.
	Revoke(ctx context.Context, tokenHash string) error

	// RevokeAllByUsername revokes every outstanding session of the account and returns how many changed.
	RevokeAllByUsername(ctx context.Context, username string) (int64, error)

	// DeleteExpiredBefore removes sessions whose expiry is older than the cutoff.
	DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// PasswordResetRepository persists one-time password reset tokens.
type PasswordResetRepository interface {
	Create(ctx context.Context, token *entity.PasswordResetToken) error

	// FindByTokenHash looks a token up by exact hash match. Reads go to the primary database.
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.PasswordResetToken, error)

	// MarkUsed consumes the token only when it is still unused and unexpired at now.
	// It reports false when another consumer won or the token is no longer eligible.
	MarkUsed(ctx context.Context, id uuid.UUID, now time.Time) (bool, error)

	// Delete removes a token that must never become usable, for example when its mail could not be sent.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteStaleBefore removes tokens that expired or were used before the cutoff.
	DeleteStaleBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
