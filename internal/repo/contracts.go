package repo

import (
	"context"
	"time"

	"github.com/andreyxaxa/Photo-Gallery/internal/entity"
	"github.com/google/uuid"
)

type (
	ObjectStore interface {
		Upload(ctx context.Context, path string, data []byte, contentType string, opts entity.UploadOptions) error
		Download(ctx context.Context, path string) ([]byte, error)
		PublicURL(path string) string
		Remove(ctx context.Context, paths []string) error
	}

	ImageMetadataRepo interface {
		Create(ctx context.Context, record *entity.ImageRecord) error
		GetByID(ctx context.Context, id uuid.UUID) (*entity.ImageRecord, error)
		ListAll(ctx context.Context) ([]entity.ImageRecord, error)
		ListBetween(ctx context.Context, from, to time.Time) ([]entity.ImageRecord, error)
		ListCreatedAt(ctx context.Context) ([]time.Time, error)
		Delete(ctx context.Context, id uuid.UUID) error
	}

	UserRepo interface {
		Create(ctx context.Context, user *entity.User) error
		GetByEmail(ctx context.Context, email string) (*entity.User, error)
	}

	SessionRepo interface {
		Save(ctx context.Context, session *entity.Session) error
		Get(ctx context.Context, token string) (*entity.Session, error)
		Delete(ctx context.Context, token string) error
	}
)
