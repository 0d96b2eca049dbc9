package handler

import (
	"io"
	"log/slog"
	"net/http"

	"folio/internal/delivery/api/response"
	"folio/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler serves the singleton portfolio profile.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// GetProfile returns the profile, or 404 before it was first saved.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	profile, err := h.profileUC.GetProfile(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// SaveProfile upserts the profile from a canonical or versioned legacy body.
func (h *ProfileHandler) SaveProfile(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.BindingError(c, "Invalid profile input")
	}

	req, err := decodeProfileRequest(body)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := c.Validate(req); err != nil {
		return response.HandleAppError(c, err)
	}

	profile, err := h.profileUC.SaveProfile(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}
