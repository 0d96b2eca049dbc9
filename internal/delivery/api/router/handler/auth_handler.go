package handler

import (
	"log/slog"
	"net/http"
	"time"

	"folio/internal/delivery/api/response"
	deliverycontext "folio/internal/delivery/context"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler serves login, session and password routes.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// PasswordRequest carries a password to check or log in with.
type PasswordRequest struct {
	Password string `json:"password" validate:"required"`
}

// ChangePasswordRequest represents the request body for changing the admin password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required"`
}

// PerformResetRequest represents the request body for completing a password reset
type PerformResetRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}

// LoginResponse returns the session token. It is the only response that ever carries it.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionResponse describes the session that authenticated the request.
type SessionResponse struct {
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ResetRequestResponse reports how the reset token was delivered.
type ResetRequestResponse struct {
	Delivered bool      `json:"delivered"`
	Token     string    `json:"token,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req PasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{Password: req.Password})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &LoginResponse{Token: out.Token, ExpiresAt: out.ExpiresAt})
}

// VerifyPassword answers whether the password matches without creating a session.
func (h *AuthHandler) VerifyPassword(c echo.Context) error {
	var req PasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid password input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	valid, err := h.authUC.VerifyPassword(c.Request().Context(), req.Password)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"valid": valid})
}

func (h *AuthHandler) Session(c echo.Context) error {
	session, ok := deliverycontext.GetAdminSession(c)
	if !ok {
		return response.AppError(c, domainerrors.ErrSessionInvalid)
	}

	return response.Success(c, http.StatusOK, &SessionResponse{Username: session.Username, ExpiresAt: session.ExpiresAt})
}

// Refresh slides the session expiry forward.
func (h *AuthHandler) Refresh(c echo.Context) error {
	token, ok := deliverycontext.GetSessionToken(c)
	if !ok {
		return response.AppError(c, domainerrors.ErrSessionInvalid)
	}

	session, err := h.authUC.Refresh(c.Request().Context(), token)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &SessionResponse{Username: session.Username, ExpiresAt: session.ExpiresAt})
}

func (h *AuthHandler) Logout(c echo.Context) error {
	token, ok := deliverycontext.GetSessionToken(c)
	if !ok {
		return response.AppError(c, domainerrors.ErrSessionInvalid)
	}

	if err := h.authUC.Logout(c.Request().Context(), token); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// ChangePassword replaces the password and revokes every session, including the caller's.
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	session, ok := deliverycontext.GetAdminSession(c)
	if !ok {
		return response.AppError(c, domainerrors.ErrSessionInvalid)
	}

	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid password input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.authUC.ChangePassword(c.Request().Context(), session, &usecase.ChangePasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	}); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// RequestReset mails a reset link to the profile e-mail.
func (h *AuthHandler) RequestReset(c echo.Context) error {
	out, err := h.authUC.RequestReset(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, &ResetRequestResponse{
		Delivered: out.Delivered,
		Token:     out.Token,
		ExpiresAt: out.ExpiresAt,
	})
}

func (h *AuthHandler) PerformReset(c echo.Context) error {
	var req PerformResetRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid reset input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.authUC.PerformReset(c.Request().Context(), &usecase.PerformResetInput{
		Token:       req.Token,
		NewPassword: req.NewPassword,
	}); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
