package v1

import (
	"github.com/andreyxaxa/Photo-Gallery/internal/usecase"
	"github.com/andreyxaxa/Photo-Gallery/pkg/logger"
	"github.com/go-playground/validator/v10"
)

type V1 struct {
	gallery usecase.GalleryUseCase
	auth    usecase.AuthUseCase
	v       *validator.Validate
	logger  logger.Interface

	maxFileSize int64
	maxFiles    int
}
