// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"folio/internal/domain/entity"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/domain/repository"
	"folio/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// credentialRepository implements the domain.CredentialRepository interface.
type credentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository(db *gorm.DB) repository.CredentialRepository {
	return &credentialRepository{db: db}
}

func (repo *credentialRepository) FindByUsername(ctx context.Context, username string) (*entity.AdminCredential, error) {
	var credentialM model.AdminCredentialModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("username = ?", username).
		First(&credentialM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, errors.Wrap(err, "failed to find admin credential")
	}

	return toCredentialDomain(&credentialM), nil
}

func (repo *credentialRepository) Exists(ctx context.Context) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.AdminCredentialModel{}).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to count admin credentials")
	}

	return count > 0, nil
}

func (repo *credentialRepository) Create(ctx context.Context, credential *entity.AdminCredential) error {
	if credential.ID == uuid.Nil {
		credential.ID = uuid.New()
	}
	credentialM := fromCredentialDomain(credential)

	if err := repo.db.WithContext(ctx).Create(credentialM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrCredentialAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create admin credential")
	}

	credential.CreatedAt = credentialM.CreatedAt
	credential.UpdatedAt = credentialM.UpdatedAt

	return nil
}

func (repo *credentialRepository) UpdatePasswordHash(ctx context.Context, username, passwordHash string, updatedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AdminCredentialModel{}).
		Where("username = ?", username).
		Updates(map[string]any{
			"password_hash": passwordHash,
			"updated_at":    updatedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update admin password")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCredentialNotFound
	}

	return nil
}

// sessionRepository implements the domain.SessionRepository interface.
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

func (repo *sessionRepository) Create(ctx context.Context, session *entity.AdminSession) error {
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	sessionM := fromSessionDomain(session)

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(err, "session token collision")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create admin session")
	}

	session.CreatedAt = sessionM.CreatedAt

	return nil
}

// FindByTokenHash reads from the primary so that a session created a moment ago is always visible.
func (repo *sessionRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*entity.AdminSession, error) {
	var sessionM model.AdminSessionModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("token_hash = ?", tokenHash).
		First(&sessionM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find admin session")
	}

	return toSessionDomain(&sessionM), nil
}

func (repo *sessionRepository) UpdateExpiry(ctx context.Context, id uuid.UUID, expiresAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AdminSessionModel{}).
		Where("id = ? AND revoked = ?", id, false).
		Update("expires_at", expiresAt)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to extend admin session")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSessionNotFound
	}

	return nil
}

func (repo *sessionRepository) Revoke(ctx context.Context, tokenHash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AdminSessionModel{}).
		Where("token_hash = ?", tokenHash).
		Update("revoked", true)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to revoke admin session")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSessionNotFound
	}

	return nil
}

func (repo *sessionRepository) RevokeAllByUsername(ctx context.Context, username string) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.AdminSessionModel{}).
		Where("username = ? AND revoked = ?", username, false).
		Update("revoked", true)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to revoke admin sessions")
	}

	return result.RowsAffected, nil
}

func (repo *sessionRepository) DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at < ?", cutoff).
		Delete(&model.AdminSessionModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete expired admin sessions")
	}

	return result.RowsAffected, nil
}

// passwordResetRepository implements the domain.PasswordResetRepository interface.
type passwordResetRepository struct {
	db *gorm.DB
}

// NewPasswordResetRepository is the constructor for passwordResetRepository.
func NewPasswordResetRepository(db *gorm.DB) repository.PasswordResetRepository {
	return &passwordResetRepository{db: db}
}

func (repo *passwordResetRepository) Create(ctx context.Context, token *entity.PasswordResetToken) error {
	if token.ID == uuid.Nil {
		token.ID = uuid.New()
	}
	tokenM := fromResetDomain(token)

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create password reset token")
	}

	token.CreatedAt = tokenM.CreatedAt

	return nil
}

func (repo *passwordResetRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*entity.PasswordResetToken, error) {
	var tokenM model.PasswordResetModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("token_hash = ?", tokenHash).
		First(&tokenM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrResetTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find password reset token")
	}

	return toResetDomain(&tokenM), nil
}

// MarkUsed is a conditional update, so of two concurrent consumers only one sees a changed row.
func (repo *passwordResetRepository) MarkUsed(ctx context.Context, id uuid.UUID, now time.Time) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.PasswordResetModel{}).
		Where("id = ? AND used = ? AND expires_at > ?", id, false, now).
		Updates(map[string]any{
			"used":    true,
			"used_at": now,
		})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to consume password reset token")
	}

	return result.RowsAffected == 1, nil
}

func (repo *passwordResetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PasswordResetModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete password reset token")
	}

	return nil
}

func (repo *passwordResetRepository) DeleteStaleBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at < ? OR (used = ? AND used_at < ?)", cutoff, true, cutoff).
		Delete(&model.PasswordResetModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete stale password reset tokens")
	}

	return result.RowsAffected, nil
}
