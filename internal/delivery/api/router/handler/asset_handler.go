package handler

import (
	"log/slog"
	"net/http"

	"folio/internal/delivery/api/response"
	"folio/internal/domain/entity"
	"folio/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AssetHandlerParams holds dependencies for AssetHandler, injected by Fx.
type AssetHandlerParams struct {
	fx.In

	AssetUC usecase.AssetUsecase
	Logger  *slog.Logger
}

// AssetHandler serves favicon and Open Graph image uploads.
type AssetHandler struct {
	assetUC usecase.AssetUsecase
	logger  *slog.Logger
}

// NewAssetHandler is the constructor for AssetHandler
func NewAssetHandler(params AssetHandlerParams) *AssetHandler {
	return &AssetHandler{
		assetUC: params.AssetUC,
		logger:  params.Logger,
	}
}

// FaviconResponse names the stored favicon.
type FaviconResponse struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

// UploadedAssetResponse names a stored asset.
type UploadedAssetResponse struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

func (h *AssetHandler) UploadFavicon(c echo.Context) error {
	file, err := readUpload(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	asset, err := h.assetUC.UploadFavicon(c.Request().Context(), file)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &FaviconResponse{Filename: asset.Name, URL: asset.URL})
}

func (h *AssetHandler) UploadOGImage(c echo.Context) error {
	file, err := readUpload(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	asset, err := h.assetUC.UploadOGImage(c.Request().Context(), file)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, &UploadedAssetResponse{Name: asset.Name, URL: asset.URL})
}

// ListOGImages returns the stored OG images, newest first.
func (h *AssetHandler) ListOGImages(c echo.Context) error {
	objects, err := h.assetUC.ListOGImages(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if objects == nil {
		objects = []*entity.StoredObject{}
	}

	return response.Success(c, http.StatusOK, objects)
}

func (h *AssetHandler) DeleteOGImage(c echo.Context) error {
	if err := h.assetUC.DeleteOGImage(c.Request().Context(), c.Param("name")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
