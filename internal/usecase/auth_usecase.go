// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"folio/internal/domain/entity"
)

// --- Input DTOs ---

// LoginInput carries the submitted admin password.
type LoginInput struct {
	Password string
}

// ChangePasswordInput defines the data required to replace the admin password.
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// PerformResetInput defines the data required to complete a password reset.
type PerformResetInput struct {
	Token       string
	NewPassword string
}

// --- Output DTOs ---

// LoginOutput returns the raw session token. It is the only place the raw token ever exists server-side.
type LoginOutput struct {
	Token     string
	ExpiresAt time.Time
}

// RequestResetOutput reports how the reset token reached the admin.
// Token is only populated when mail is unavailable and exposing the token is enabled.
type RequestResetOutput struct {
	Delivered bool
	Token     string
	ExpiresAt time.Time
}

// PurgeOutput reports how many stale auth rows were removed.
type PurgeOutput struct {
	Sessions    int64
	ResetTokens int64
}

// AuthUsecase defines the admin authentication operations.
type AuthUsecase interface {
	// EnsureProvisioned stores the configured bootstrap hash when no credential exists yet.
	EnsureProvisioned(ctx context.Context) error
	Provision(ctx context.Context, username, password string) error

	VerifyPassword(ctx context.Context, password string) (bool, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	RequireSession(ctx context.Context, token string) (*entity.AdminSession, error)
	Refresh(ctx context.Context, token string) (*entity.AdminSession, error)
	Logout(ctx context.Context, token string) error

	ChangePassword(ctx context.Context, session *entity.AdminSession, input *ChangePasswordInput) error
	RequestReset(ctx context.Context) (*RequestResetOutput, error)
	PerformReset(ctx context.Context, input *PerformResetInput) error
}

// HousekeepingUsecase removes auth rows that can no longer be used.
type HousekeepingUsecase interface {
	Purge(ctx context.Context) (*PurgeOutput, error)
}
