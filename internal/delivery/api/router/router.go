// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"folio/config"
	"folio/internal/delivery/api/middleware"
	"folio/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	ProfileHandler    *handler.ProfileHandler
	ExperienceHandler *handler.ExperienceHandler
	SocialLinkHandler *handler.SocialLinkHandler
	GalleryHandler    *handler.GalleryHandler
	AssetHandler      *handler.AssetHandler
	MetadataHandler   *handler.MetadataHandler
	AuthMiddleware    *middleware.AuthMiddleware
	Config            *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	profileHandler    *handler.ProfileHandler
	experienceHandler *handler.ExperienceHandler
	socialLinkHandler *handler.SocialLinkHandler
	galleryHandler    *handler.GalleryHandler
	assetHandler      *handler.AssetHandler
	metadataHandler   *handler.MetadataHandler
	authMiddleware    *middleware.AuthMiddleware
	config            *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		profileHandler:    params.ProfileHandler,
		experienceHandler: params.ExperienceHandler,
		socialLinkHandler: params.SocialLinkHandler,
		galleryHandler:    params.GalleryHandler,
		assetHandler:      params.AssetHandler,
		metadataHandler:   params.MetadataHandler,
		authMiddleware:    params.AuthMiddleware,
		config:            params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Reads of public content are open; every write requires an admin session.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	requireSession := r.authMiddleware.Authenticate
	rateLimited := middleware.NewAuthRateLimiter(r.config)

	api := e.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login, rateLimited)
		authGroup.POST("/verify-password", r.authHandler.VerifyPassword, rateLimited)
		authGroup.POST("/reset-password", r.authHandler.RequestReset, rateLimited)
		authGroup.POST("/perform-reset", r.authHandler.PerformReset, rateLimited)

		authGroup.GET("/session", r.authHandler.Session, requireSession)
		authGroup.POST("/refresh", r.authHandler.Refresh, requireSession)
		authGroup.POST("/logout", r.authHandler.Logout, requireSession)
		authGroup.POST("/change-password", r.authHandler.ChangePassword, requireSession)
	}

	api.GET("/portfolio", r.profileHandler.GetProfile)
	api.PUT("/portfolio", r.profileHandler.SaveProfile, requireSession)

	experiencesGroup := api.Group("/experiences")
	{
		experiencesGroup.GET("", r.experienceHandler.ListExperiences)
		experiencesGroup.GET("/:id", r.experienceHandler.GetExperience)
		experiencesGroup.POST("", r.experienceHandler.CreateExperience, requireSession)
		experiencesGroup.PUT("/:id", r.experienceHandler.UpdateExperience, requireSession)
		experiencesGroup.DELETE("/:id", r.experienceHandler.DeleteExperience, requireSession)
	}

	socialLinksGroup := api.Group("/social-links")
	{
		socialLinksGroup.GET("", r.socialLinkHandler.ListSocialLinks)
		socialLinksGroup.GET("/:id", r.socialLinkHandler.GetSocialLink)
		socialLinksGroup.POST("", r.socialLinkHandler.CreateSocialLink, requireSession)
		socialLinksGroup.PUT("/:id", r.socialLinkHandler.UpdateSocialLink, requireSession)
		socialLinksGroup.DELETE("/:id", r.socialLinkHandler.DeleteSocialLink, requireSession)
	}

	galleryGroup := api.Group("/gallery")
	{
		galleryGroup.GET("", r.galleryHandler.ListImages)
		galleryGroup.POST("", r.galleryHandler.CreateImage, requireSession)
		galleryGroup.DELETE("/:id", r.galleryHandler.DeleteImage, requireSession)
	}

	api.GET("/metadata", r.metadataHandler.GetPublished)

	uploadsGroup := api.Group("/uploads")
	{
		uploadsGroup.GET("/og-image", r.assetHandler.ListOGImages)
		uploadsGroup.POST("/og-image", r.assetHandler.UploadOGImage, requireSession)
		uploadsGroup.DELETE("/og-image/:name", r.assetHandler.DeleteOGImage, requireSession)
		uploadsGroup.POST("/favicon", r.assetHandler.UploadFavicon, requireSession)
		uploadsGroup.POST("/gallery", r.galleryHandler.UploadImage, requireSession)
		uploadsGroup.POST("/gallery/import", r.galleryHandler.Import, requireSession)
	}

	adminGroup := api.Group("/admin")
	adminGroup.Use(requireSession)
	{
		adminGroup.POST("/gallery/cleanup", r.galleryHandler.Cleanup)
		adminGroup.POST("/gallery/migrate", r.galleryHandler.Migrate)
		adminGroup.POST("/metadata/publish", r.metadataHandler.Publish)
	}
}

// RegisterStorageRoutes serves objects of the file storage driver under /storage/<bucket>/<name>.
func (r *router) RegisterStorageRoutes(e *echo.Echo) {
	if r.config.Storage.Driver == config.StorageDriverFile {
		e.Static("/storage", r.config.Storage.LocalDir)
	}
}
