package handler

import (
	"log/slog"
	"net/http"

	"folio/internal/delivery/api/response"
	"folio/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ExperienceHandlerParams holds dependencies for ExperienceHandler, injected by Fx.
type ExperienceHandlerParams struct {
	fx.In

	ExperienceUC usecase.ExperienceUsecase
	Logger       *slog.Logger
}

// ExperienceHandler serves the career timeline.
type ExperienceHandler struct {
	experienceUC usecase.ExperienceUsecase
	logger       *slog.Logger
}

// NewExperienceHandler is the constructor for ExperienceHandler
func NewExperienceHandler(params ExperienceHandlerParams) *ExperienceHandler {
	return &ExperienceHandler{
		experienceUC: params.ExperienceUC,
		logger:       params.Logger,
	}
}

// ExperienceRequest represents the request body for creating or replacing an experience
type ExperienceRequest struct {
	Company     string `json:"company" validate:"required"`
	Period      string `json:"period" validate:"required"`
	Description string `json:"description" validate:"required"`
}

func (r *ExperienceRequest) toInput() *usecase.ExperienceInput {
	return &usecase.ExperienceInput{
		Company:     r.Company,
		Period:      r.Period,
		Description: r.Description,
	}
}

// ListExperiences returns the timeline, newest first.
func (h *ExperienceHandler) ListExperiences(c echo.Context) error {
	experiences, err := h.experienceUC.ListExperiences(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, experiences)
}

func (h *ExperienceHandler) GetExperience(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	experience, err := h.experienceUC.GetExperience(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, experience)
}

func (h *ExperienceHandler) CreateExperience(c echo.Context) error {
	var req ExperienceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid experience input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	experience, err := h.experienceUC.CreateExperience(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, experience)
}

func (h *ExperienceHandler) UpdateExperience(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ExperienceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid experience input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	experience, err := h.experienceUC.UpdateExperience(c.Request().Context(), id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, experience)
}

func (h *ExperienceHandler) DeleteExperience(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.experienceUC.DeleteExperience(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
