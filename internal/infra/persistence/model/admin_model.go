// Package model contains the GORM row structs mirroring the PostgreSQL schema.
package model

import (
	"time"

	"github.com/google/uuid"
)

// AdminCredentialModel mirrors the 'admin_credentials' table.
type AdminCredentialModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdminCredentialModel) TableName() string {
	return "admin_credentials"
}

// AdminSessionModel mirrors the 'admin_sessions' table. Only the SHA-256 of the bearer token is stored.
type AdminSessionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	TokenHash string    `gorm:"type:char(64);uniqueIndex;not null"`
	Username  string    `gorm:"type:varchar(100);index;not null"`
	ExpiresAt time.Time `gorm:"not null"`
	Revoked   bool      `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdminSessionModel) TableName() string {
	return "admin_sessions"
}

// PasswordResetModel mirrors the 'admin_password_resets' table.
type PasswordResetModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	TokenHash string    `gorm:"type:char(64);uniqueIndex;not null"`
	Username  string    `gorm:"type:varchar(100);not null"`
	ExpiresAt time.Time `gorm:"not null"`
	Used      bool      `gorm:"not null"`
	UsedAt    *time.Time
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PasswordResetModel) TableName() string {
	return "admin_password_resets"
}
