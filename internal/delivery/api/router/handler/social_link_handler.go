package handler

import (
	"log/slog"
	"net/http"

	"folio/internal/delivery/api/response"
	"folio/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SocialLinkHandlerParams holds dependencies for SocialLinkHandler, injected by Fx.
type SocialLinkHandlerParams struct {
	fx.In

	SocialLinkUC usecase.SocialLinkUsecase
	Logger       *slog.Logger
}

// SocialLinkHandler serves the outbound profile links.
type SocialLinkHandler struct {
	socialLinkUC usecase.SocialLinkUsecase
	logger       *slog.Logger
}

// NewSocialLinkHandler is the constructor for SocialLinkHandler
func NewSocialLinkHandler(params SocialLinkHandlerParams) *SocialLinkHandler {
	return &SocialLinkHandler{
		socialLinkUC: params.SocialLinkUC,
		logger:       params.Logger,
	}
}

// SocialLinkRequest represents the request body for creating or replacing a social link
type SocialLinkRequest struct {
	Label string `json:"label" validate:"required"`
	Href  string `json:"href" validate:"required,url"`
}

func (r *SocialLinkRequest) toInput() *usecase.SocialLinkInput {
	return &usecase.SocialLinkInput{
		Label: r.Label,
		Href:  r.Href,
	}
}

// ListSocialLinks returns the links ordered by label.
func (h *SocialLinkHandler) ListSocialLinks(c echo.Context) error {
	links, err := h.socialLinkUC.ListSocialLinks(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, links)
}

func (h *SocialLinkHandler) GetSocialLink(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	link, err := h.socialLinkUC.GetSocialLink(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, link)
}

func (h *SocialLinkHandler) CreateSocialLink(c echo.Context) error {
	var req SocialLinkRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid social link input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	link, err := h.socialLinkUC.CreateSocialLink(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, link)
}

func (h *SocialLinkHandler) UpdateSocialLink(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req SocialLinkRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid social link input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	link, err := h.socialLinkUC.UpdateSocialLink(c.Request().Context(), id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, link)
}

func (h *SocialLinkHandler) DeleteSocialLink(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.socialLinkUC.DeleteSocialLink(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
