package handler

import (
	"log/slog"
	"net/http"

	"folio/internal/delivery/api/response"
	"folio/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MetadataHandlerParams holds dependencies for MetadataHandler, injected by Fx.
type MetadataHandlerParams struct {
	fx.In

	MetadataUC usecase.MetadataUsecase
	Logger     *slog.Logger
}

// MetadataHandler publishes and serves the page metadata snapshot.
type MetadataHandler struct {
	metadataUC usecase.MetadataUsecase
	logger     *slog.Logger
}

// NewMetadataHandler is the constructor for MetadataHandler
func NewMetadataHandler(params MetadataHandlerParams) *MetadataHandler {
	return &MetadataHandler{
		metadataUC: params.MetadataUC,
		logger:     params.Logger,
	}
}

func (h *MetadataHandler) Publish(c echo.Context) error {
	snapshot, err := h.metadataUC.Publish(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, snapshot)
}

// GetPublished returns the last published snapshot, or 404 before the first publish.
func (h *MetadataHandler) GetPublished(c echo.Context) error {
	snapshot, err := h.metadataUC.GetPublished(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, snapshot)
}
