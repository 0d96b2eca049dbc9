// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"folio/config"
	deliverycontext "folio/internal/delivery/context"
	"folio/internal/domain/entity"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/domain/repository"
	"folio/internal/domain/service"
	"folio/internal/usecase"
	"folio/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// bcrypt ignores everything past 72 bytes, so longer passwords are refused instead of silently truncated.
const maxPasswordBytes = 72

// authService implements the AuthUsecase interface.
type authService struct {
	txManager      repository.TransactionManager
	credentialRepo repository.CredentialRepository
	sessionRepo    repository.SessionRepository
	resetRepo      repository.PasswordResetRepository
	profileRepo    repository.ProfileRepository
	hasher         service.PasswordHasher
	tokenService   service.TokenService
	mailer         service.Mailer
	cfg            *config.AuthConfig
	logger         *slog.Logger
	now            func() time.Time
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager         repository.TransactionManager
	CredentialRepo    repository.CredentialRepository
	SessionRepo       repository.SessionRepository
	PasswordResetRepo repository.PasswordResetRepository
	ProfileRepo       repository.ProfileRepository
	Hasher            service.PasswordHasher
	TokenService      service.TokenService
	Mailer            service.Mailer
	Config            *config.Config
	Logger            *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:      params.TxManager,
		credentialRepo: params.CredentialRepo,
		sessionRepo:    params.SessionRepo,
		resetRepo:      params.PasswordResetRepo,
		profileRepo:    params.ProfileRepo,
		hasher:         params.Hasher,
		tokenService:   params.TokenService,
		mailer:         params.Mailer,
		cfg:            params.Config.Auth,
		logger:         params.Logger,
		now:            time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// EnsureProvisioned seeds the credential from auth.bootstrapPasswordHash on first start.
// Without a configured hash the service still starts, but every login fails until an operator provisions the admin.
func (srv *authService) EnsureProvisioned(ctx context.Context) error {
	exists, err := srv.credentialRepo.Exists(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to check admin credential")
	}
	if exists {
		return nil
	}

	if srv.cfg.BootstrapPasswordHash == "" {
		srv.log(ctx).Warn("Admin credential is not provisioned; run `folioctl provision-admin`",
			slog.String("username", srv.cfg.Username))

		return nil
	}

	if !srv.hasher.IsHash(srv.cfg.BootstrapPasswordHash) {
		return domainerrors.ErrValidationFailed.WithDetails("auth.bootstrapPasswordHash is not a bcrypt hash")
	}

	err = srv.credentialRepo.Create(ctx, &entity.AdminCredential{
		Username:     srv.cfg.Username,
		PasswordHash: srv.cfg.BootstrapPasswordHash,
	})
	if errors.Is(err, repository.ErrCredentialAlreadyExists) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to store bootstrap admin credential")
	}

	srv.log(ctx).Info("Admin credential provisioned from bootstrap hash", slog.String("username", srv.cfg.Username))

	return nil
}

// Provision creates the admin credential from a plaintext password.
func (srv *authService) Provision(ctx context.Context, username, password string) error {
	if username == "" {
		username = srv.cfg.Username
	}

	if err := srv.validatePassword(password); err != nil {
		return err
	}

	exists, err := srv.credentialRepo.Exists(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to check admin credential")
	}
	if exists {
		return domainerrors.ErrAdminAlreadyProvisioned
	}

	hash, err := srv.hasher.Hash(password)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.WithDetails(err.Error())
	}

	err = srv.credentialRepo.Create(ctx, &entity.AdminCredential{Username: username, PasswordHash: hash})
	if errors.Is(err, repository.ErrCredentialAlreadyExists) {
		return domainerrors.ErrAdminAlreadyProvisioned
	}
	if err != nil {
		return errors.Wrap(err, "failed to create admin credential")
	}

	srv.log(ctx).Info("Admin credential provisioned", slog.String("username", username))

	return nil
}

// VerifyPassword compares the candidate with the stored hash.
func (srv *authService) VerifyPassword(ctx context.Context, password string) (bool, error) {
	credential, err := srv.loadCredential(ctx)
	if err != nil {
		return false, err
	}

	return srv.hasher.Check(password, credential.PasswordHash), nil
}

// Login issues a new session for the admin when the password matches.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	credential, err := srv.loadCredential(ctx)
	if err != nil {
		return nil, err
	}

	if !srv.hasher.Check(input.Password, credential.PasswordHash) {
		srv.log(ctx).Warn("Admin login rejected", slog.String("username", credential.Username))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.GenerateSessionToken()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token")
	}

	session := &entity.AdminSession{
		TokenHash: srv.tokenService.HashToken(token),
		Username:  credential.Username,
		ExpiresAt: srv.now().Add(srv.cfg.SessionTTL),
	}
	if err := srv.sessionRepo.Create(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to create admin session")
	}

	srv.log(ctx).Info("Admin logged in", slog.String("username", credential.Username), slog.Any("sessionID", session.ID))

	return &usecase.LoginOutput{Token: token, ExpiresAt: session.ExpiresAt}, nil
}

// RequireSession resolves a bearer token to a live session.
func (srv *authService) RequireSession(ctx context.Context, token string) (*entity.AdminSession, error) {
	if token == "" {
		return nil, domainerrors.ErrSessionInvalid
	}

	session, err := srv.sessionRepo.FindByTokenHash(ctx, srv.tokenService.HashToken(token))
	if errors.Is(err, repository.ErrSessionNotFound) {
		return nil, domainerrors.ErrSessionInvalid
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up admin session")
	}

	if !session.IsValid(srv.now()) {
		return nil, domainerrors.ErrSessionInvalid
	}

	return session, nil
}

// Refresh slides the expiry of a live session forward by one TTL.
func (srv *authService) Refresh(ctx context.Context, token string) (*entity.AdminSession, error) {
	session, err := srv.RequireSession(ctx, token)
	if err != nil {
		return nil, err
	}

	expiresAt := srv.now().Add(srv.cfg.SessionTTL)
	err = srv.sessionRepo.UpdateExpiry(ctx, session.ID, expiresAt)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return nil, domainerrors.ErrSessionInvalid
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to extend admin session")
	}

	session.ExpiresAt = expiresAt

	return session, nil
}

// Logout revokes the presented session. Unknown and already revoked tokens are accepted.
func (srv *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return domainerrors.ErrSessionInvalid
	}

	err := srv.sessionRepo.Revoke(ctx, srv.tokenService.HashToken(token))
	if errors.Is(err, repository.ErrSessionNotFound) {
		srv.log(ctx).Debug("Logout for unknown session")

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to revoke admin session")
	}

	return nil
}

// ChangePassword replaces the hash and signs out every session, including the caller's.
func (srv *authService) ChangePassword(ctx context.Context, session *entity.AdminSession, input *usecase.ChangePasswordInput) error {
	if session == nil {
		return domainerrors.ErrSessionInvalid
	}
	if err := srv.validatePassword(input.NewPassword); err != nil {
		return err
	}

	var revoked int64
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		credentialRepo := repoFactory.NewCredentialRepository()
		sessionRepo := repoFactory.NewSessionRepository()

		credential, err := credentialRepo.FindByUsername(ctx, session.Username)
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return domainerrors.ErrAdminNotProvisioned
		}
		if err != nil {
			return errors.Wrap(err, "failed to find admin credential")
		}

		if !srv.hasher.Check(input.CurrentPassword, credential.PasswordHash) {
			return domainerrors.ErrInvalidCredentials
		}

		hash, err := srv.hasher.Hash(input.NewPassword)
		if err != nil {
			return domainerrors.ErrPasswordHashFailed.WithDetails(err.Error())
		}

		if err := credentialRepo.UpdatePasswordHash(ctx, credential.Username, hash, srv.now()); err != nil {
			return errors.Wrap(err, "failed to update admin password")
		}

		revoked, err = sessionRepo.RevokeAllByUsername(ctx, credential.Username)
		if err != nil {
			return errors.Wrap(err, "failed to revoke admin sessions")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Password change failed", slog.String("username", session.Username), slog.Any("error", err))

		return errors.Wrap(err, "failed to change admin password")
	}

	srv.log(ctx).Info("Admin password changed", slog.String("username", session.Username), slog.Int64("revokedSessions", revoked))

	return nil
}

// RequestReset mints a reset token and mails the reset link to the profile's contact address.
func (srv *authService) RequestReset(ctx context.Context) (*usecase.RequestResetOutput, error) {
	profile, err := srv.profileRepo.Get(ctx)
	if err != nil && !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, errors.Wrap(err, "failed to load profile")
	}
	if profile == nil || strings.TrimSpace(profile.Email) == "" {
		return nil, domainerrors.ErrProfileEmailMissing
	}

	credential, err := srv.loadCredential(ctx)
	if err != nil {
		return nil, err
	}

	token, err := srv.tokenService.GenerateResetToken()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate reset token")
	}

	record := &entity.PasswordResetToken{
		TokenHash: srv.tokenService.HashToken(token),
		Username:  credential.Username,
		ExpiresAt: srv.now().Add(srv.cfg.ResetTokenTTL),
	}
	if err := srv.resetRepo.Create(ctx, record); err != nil {
		return nil, errors.Wrap(err, "failed to store reset token")
	}

	sendErr := service.ErrMailerDisabled
	if srv.mailer.Enabled() {
		sendErr = srv.mailer.Send(ctx, srv.resetMessage(profile.Email, token))
	}
	if sendErr == nil {
		srv.log(ctx).Info("Password reset mail sent", slog.String("username", credential.Username))

		return &usecase.RequestResetOutput{Delivered: true, ExpiresAt: record.ExpiresAt}, nil
	}

	if srv.cfg.ExposeResetTokenWithoutMail {
		srv.log(ctx).Warn("Mail unavailable, returning reset token to caller",
			slog.String("username", credential.Username), slog.Any("error", sendErr))

		return &usecase.RequestResetOutput{Token: token, ExpiresAt: record.ExpiresAt}, nil
	}

	srv.log(ctx).Error("Mail unavailable, reset token discarded", slog.Any("error", sendErr))
	if err := srv.resetRepo.Delete(ctx, record.ID); err != nil {
		srv.log(ctx).Error("Failed to discard undelivered reset token", slog.Any("resetID", record.ID), slog.Any("error", err))
	}

	return nil, domainerrors.ErrMailUnavailable
}

// PerformReset consumes the reset token, replaces the password and signs out every session.
func (srv *authService) PerformReset(ctx context.Context, input *usecase.PerformResetInput) error {
	if input.Token == "" {
		return domainerrors.ErrResetTokenInvalid
	}
	if err := srv.validatePassword(input.NewPassword); err != nil {
		return err
	}

	hash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.WithDetails(err.Error())
	}

	tokenHash := srv.tokenService.HashToken(input.Token)
	var username string
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		resetRepo := repoFactory.NewPasswordResetRepository()
		credentialRepo := repoFactory.NewCredentialRepository()
		sessionRepo := repoFactory.NewSessionRepository()

		record, err := resetRepo.FindByTokenHash(ctx, tokenHash)
		if errors.Is(err, repository.ErrResetTokenNotFound) {
			return domainerrors.ErrResetTokenInvalid
		}
		if err != nil {
			return errors.Wrap(err, "failed to find reset token")
		}

		now := srv.now()
		if record.Used {
			return domainerrors.ErrResetTokenUsed
		}
		if record.IsExpired(now) {
			return domainerrors.ErrResetTokenExpired
		}

		consumed, err := resetRepo.MarkUsed(ctx, record.ID, now)
		if err != nil {
			return errors.Wrap(err, "failed to consume reset token")
		}
		if !consumed {
			return domainerrors.ErrResetTokenUsed
		}

		err = credentialRepo.UpdatePasswordHash(ctx, record.Username, hash, now)
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return domainerrors.ErrAdminNotProvisioned
		}
		if err != nil {
			return errors.Wrap(err, "failed to update admin password")
		}

		if _, err := sessionRepo.RevokeAllByUsername(ctx, record.Username); err != nil {
			return errors.Wrap(err, "failed to revoke admin sessions")
		}
		username = record.Username

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to reset admin password")
	}

	srv.log(ctx).Info("Admin password reset", slog.String("username", username))

	return nil
}

func (srv *authService) loadCredential(ctx context.Context) (*entity.AdminCredential, error) {
	credential, err := srv.credentialRepo.FindByUsername(ctx, srv.cfg.Username)
	if errors.Is(err, repository.ErrCredentialNotFound) {
		return nil, domainerrors.ErrAdminNotProvisioned
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find admin credential")
	}

	return credential, nil
}

func (srv *authService) validatePassword(password string) error {
	if utf8.RuneCountInString(password) < srv.cfg.MinPasswordLength {
		return domainerrors.ErrPasswordStrength.WithDetails(
			fmt.Sprintf("password must be at least %d characters", srv.cfg.MinPasswordLength))
	}
	if len(password) > maxPasswordBytes {
		return domainerrors.ErrPasswordStrength.WithDetails(
			fmt.Sprintf("password must be at most %d bytes", maxPasswordBytes))
	}

	return nil
}

func (srv *authService) resetMessage(to, token string) service.MailMessage {
	link := resetLink(srv.cfg.ResetURL, token)
	validity := util.FormatDuration(srv.cfg.ResetTokenTTL)

	text := fmt.Sprintf("A password reset was requested for the portfolio dashboard.\n\n"+
		"Open %s to choose a new password. The link expires in %s.\n\n"+
		"If you did not request this, ignore this message.\n", link, validity)
	html := fmt.Sprintf("<p>A password reset was requested for the portfolio dashboard.</p>"+
		"<p><a href=\"%s\">Choose a new password</a>. The link expires in %s.</p>"+
		"<p>If you did not request this, ignore this message.</p>", link, validity)

	return service.MailMessage{
		To:      to,
		Subject: "Reset your dashboard password",
		Text:    text,
		HTML:    html,
	}
}

// resetLink appends the token to base, or returns the bare token when no reset page is configured.
func resetLink(base, token string) string {
	if base == "" {
		return token
	}

	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}

	return base + sep + "token=" + url.QueryEscape(token)
}
