package restapi

import (
	"github.com/andreyxaxa/Photo-Gallery/config"
	v1 "github.com/andreyxaxa/Photo-Gallery/internal/controller/restapi/v1"
	"github.com/andreyxaxa/Photo-Gallery/internal/usecase"
	"github.com/andreyxaxa/Photo-Gallery/pkg/logger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

// @title Photo gallery
// @version 1.0.0
// @host localhost:8080
// @BasePath /v1
func NewRouter(app *fiber.App, cfg *config.Config, gallery usecase.GalleryUseCase, auth usecase.AuthUseCase, l logger.Interface) {
	// Swagger
	if cfg.Swagger.Enabled {
		app.Get("/swagger/*", swagger.HandlerDefault)
	}

	// Routers
	apiV1Group := app.Group("/v1")
	{
		v1.NewGalleryRoutes(apiV1Group, gallery, auth, l, cfg.Upload.MaxFileSize, cfg.Upload.MaxFiles)
	}
}
