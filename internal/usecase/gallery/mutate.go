package gallery

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/andreyxaxa/Photo-Gallery/internal/dto"
	"github.com/andreyxaxa/Photo-Gallery/internal/entity"
	"github.com/andreyxaxa/Photo-Gallery/pkg/types/errs"
	"github.com/google/uuid"
)

const cacheControlSeconds = "3600"

// Upload stores files one by one. A failed file is reported in its result and
// never stops the rest.
func (uc *GalleryUseCase) Upload(ctx context.Context, files []dto.UploadFile) []dto.UploadResult {
	results := make([]dto.UploadResult, 0, len(files))

	for _, f := range files {
		record, err := uc.uploadOne(ctx, f)
		if err != nil {
			uc.logger.Error(err, "GalleryUseCase - Upload - file=%s", f.OriginalName)
		}

		results = append(results, dto.UploadResult{
			OriginalName: f.OriginalName,
			Record:       record,
			Err:          err,
		})
	}

	return results
}

func (uc *GalleryUseCase) uploadOne(ctx context.Context, f dto.UploadFile) (*entity.ImageRecord, error) {
	mimeType := detectMimeType(f.ContentType, f.Data)
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, fmt.Errorf("GalleryUseCase - uploadOne - type=%s: %w", mimeType, errs.ErrUnsupportedMediaType)
	}

	now := uc.now().In(uc.loc)
	filename := generateFilename(now, f.OriginalName)
	path := storagePath(now, filename)

	// 1. объект в хранилище
	err := uc.objects.Upload(ctx, path, f.Data, mimeType, entity.UploadOptions{
		CacheControl: cacheControlSeconds,
		Upsert:       false,
	})
	if err != nil {
		return nil, fmt.Errorf("GalleryUseCase - uploadOne - uc.objects.Upload: %w", err)
	}

	record := &entity.ImageRecord{
		Filename:     filename,
		OriginalName: f.OriginalName,
		StoragePath:  path,
		PublicURL:    uc.objects.PublicURL(path),
		Size:         int64(len(f.Data)),
		MimeType:     mimeType,
	}

	// 2. метаданные; при ошибке объект остается без записи
	err = uc.metadata.Create(ctx, record)
	if err != nil {
		uc.logger.Warn("GalleryUseCase - uploadOne - object %s stored without metadata row", path)

		return nil, fmt.Errorf("GalleryUseCase - uploadOne - uc.metadata.Create: %w", err)
	}

	id := record.ID
	uc.publish(ctx, entity.GalleryEvent{
		ID:          uuid.New(),
		Type:        entity.ImageUploaded,
		ImageID:     &id,
		StoragePath: path,
		OccurredAt:  time.Now(),
	})

	return record, nil
}

// Delete removes the object and then its metadata row. The first failing step
// aborts the delete.
func (uc *GalleryUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	record, err := uc.metadata.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("GalleryUseCase - Delete - uc.metadata.GetByID: %w", err)
	}

	// 1. объект
	err = uc.objects.Remove(ctx, []string{record.StoragePath})
	if err != nil {
		return fmt.Errorf("GalleryUseCase - Delete - uc.objects.Remove: %w", err)
	}

	// 2. метаданные
	err = uc.metadata.Delete(ctx, id)
	if err != nil {
		uc.logger.Warn("GalleryUseCase - Delete - row %s kept after object %s was removed", id, record.StoragePath)

		return fmt.Errorf("GalleryUseCase - Delete - uc.metadata.Delete: %w", err)
	}

	uc.publish(ctx, entity.GalleryEvent{
		ID:          uuid.New(),
		Type:        entity.ImageDeleted,
		ImageID:     &id,
		StoragePath: record.StoragePath,
		OccurredAt:  time.Now(),
	})

	return nil
}
