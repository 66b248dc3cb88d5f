package v1

import (
	"github.com/andreyxaxa/Photo-Gallery/internal/usecase"
	"github.com/andreyxaxa/Photo-Gallery/pkg/logger"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

func NewGalleryRoutes(
	apiV1Group fiber.Router,
	gallery usecase.GalleryUseCase,
	auth usecase.AuthUseCase,
	l logger.Interface,
	maxFileSize int64,
	maxFiles int,
) {
	r := &V1{
		gallery:     gallery,
		auth:        auth,
		v:           validator.New(validator.WithRequiredStructEnabled()),
		logger:      l,
		maxFileSize: maxFileSize,
		maxFiles:    maxFiles,
	}

	{
		// UI
		apiV1Group.Get("/", r.showUI)
		apiV1Group.Get("/ui/transitions", r.transitions)

		// Auth
		authGroup := apiV1Group.Group("/auth")
		authGroup.Post("/login", r.login)
		authGroup.Post("/logout", r.requireSession, r.logout)
		authGroup.Get("/session", r.requireSession, r.session)

		// Gallery
		galleryGroup := apiV1Group.Group("/gallery", r.requireSession)
		galleryGroup.Get("/", r.loadGallery)
		galleryGroup.Post("/prev", r.prevMonth)
		galleryGroup.Post("/next", r.nextMonth)

		// Images
		imagesGroup := apiV1Group.Group("/images", r.requireSession)
		imagesGroup.Post("/", r.uploadImages)
		imagesGroup.Delete("/:id", r.deleteImage)
	}
}
