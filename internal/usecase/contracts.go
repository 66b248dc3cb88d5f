package usecase

import (
	"context"

	"github.com/andreyxaxa/Photo-Gallery/internal/dto"
	"github.com/andreyxaxa/Photo-Gallery/internal/entity"
	"github.com/google/uuid"
)

type (
	GalleryUseCase interface {
		Load(ctx context.Context, view *entity.ViewState) (*dto.GalleryPage, error)
		Navigate(ctx context.Context, view *entity.ViewState, direction dto.Direction) (*dto.GalleryPage, error)
		Upload(ctx context.Context, files []dto.UploadFile) []dto.UploadResult
		Delete(ctx context.Context, id uuid.UUID) error
	}

	AuthUseCase interface {
		SignIn(ctx context.Context, email, password string) (*entity.Session, error)
		SignOut(ctx context.Context, token string) error
		Session(ctx context.Context, token string) (*entity.Session, error)
		SaveView(ctx context.Context, session *entity.Session) error
		OnAuthStateChange(listener dto.AuthListener) (unsubscribe func())
		CreateUser(ctx context.Context, email, password string) (*entity.User, error)
	}

	ExportUseCase interface {
		Run(ctx context.Context) (*dto.ExportSummary, error)
	}
)
