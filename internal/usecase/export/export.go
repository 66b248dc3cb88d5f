package export

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/andreyxaxa/Photo-Gallery/internal/dto"
	"github.com/andreyxaxa/Photo-Gallery/internal/entity"
	"github.com/andreyxaxa/Photo-Gallery/internal/repo"
	"github.com/andreyxaxa/Photo-Gallery/pkg/logger"
	"github.com/andreyxaxa/Photo-Gallery/pkg/types/errs"
)

const (
	MetadataFile = "metadata.json"
	ImagesDir    = "images"

	storagePrefix = "images/"
	progressEvery = 10
	separatorLen  = 50
)

type ExportUseCase struct {
	metadata repo.ImageMetadataRepo
	objects  repo.ObjectStore

	root string

	logger logger.Interface
}

func New(metadata repo.ImageMetadataRepo, objects repo.ObjectStore, root string, l logger.Interface) *ExportUseCase {
	return &ExportUseCase{
		metadata: metadata,
		objects:  objects,
		root:     root,
		logger:   l,
	}
}

// Run dumps all metadata and then downloads every image, one at a time. Only
// setup and the metadata phase can fail the run; per-image failures are
// counted in the summary.
func (uc *ExportUseCase) Run(ctx context.Context) (*dto.ExportSummary, error) {
	uc.logger.Info("Starting export...")

	imagesDir := filepath.Join(uc.root, ImagesDir)

	err := os.MkdirAll(imagesDir, 0o755)
	if err != nil {
		return nil, fmt.Errorf("ExportUseCase - Run - os.MkdirAll: %w", err)
	}

	// 1. метаданные
	records, err := uc.dumpMetadata(ctx)
	if err != nil {
		return nil, fmt.Errorf("ExportUseCase - Run: %w", err)
	}

	// 2. изображения
	summary := uc.downloadAll(ctx, records, imagesDir)

	// 3. итог
	uc.report(summary)

	return summary, nil
}

func (uc *ExportUseCase) dumpMetadata(ctx context.Context) ([]entity.ImageRecord, error) {
	uc.logger.Info("Exporting metadata...")

	records, err := uc.metadata.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("ExportUseCase - dumpMetadata - uc.metadata.ListAll: %w", err)
	}

	b, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("ExportUseCase - dumpMetadata - json.MarshalIndent: %w", err)
	}

	err = os.WriteFile(filepath.Join(uc.root, MetadataFile), b, 0o644)
	if err != nil {
		return nil, fmt.Errorf("ExportUseCase - dumpMetadata - os.WriteFile: %w", err)
	}

	uc.logger.Info("Exported %d metadata records", len(records))

	return records, nil
}

func (uc *ExportUseCase) downloadAll(ctx context.Context, records []entity.ImageRecord, imagesDir string) *dto.ExportSummary {
	uc.logger.Info("Downloading images...")

	summary := &dto.ExportSummary{
		Location:     uc.root,
		MetadataFile: MetadataFile,
		Total:        len(records),
	}

	for _, record := range records {
		err := uc.downloadOne(ctx, record, imagesDir)
		if err != nil {
			uc.logger.Error(err, "Failed to download %s", record.Filename)

			summary.Failed++
			summary.Failures = append(summary.Failures, dto.ExportFailure{
				Filename:    record.Filename,
				StoragePath: record.StoragePath,
				Err:         err,
			})

			continue
		}

		summary.Downloaded++

		if summary.Downloaded%progressEvery == 0 {
			uc.logger.Info("Downloaded %d/%d images...", summary.Downloaded, summary.Total)
		}
	}

	return summary
}

func (uc *ExportUseCase) downloadOne(ctx context.Context, record entity.ImageRecord, imagesDir string) error {
	target, err := LocalPath(imagesDir, record.StoragePath)
	if err != nil {
		return err
	}

	data, err := uc.objects.Download(ctx, record.StoragePath)
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(target), 0o755)
	if err != nil {
		return fmt.Errorf("os.MkdirAll: %w", err)
	}

	err = os.WriteFile(target, data, 0o644)
	if err != nil {
		return fmt.Errorf("os.WriteFile: %w", err)
	}

	return nil
}

func (uc *ExportUseCase) report(summary *dto.ExportSummary) {
	line := strings.Repeat("=", separatorLen)

	uc.logger.Info(line)
	uc.logger.Info("Export Complete!")
	uc.logger.Info(line)
	uc.logger.Info("Location: %s", summary.Location)
	uc.logger.Info("Images downloaded: %d/%d", summary.Downloaded, summary.Total)
	if summary.Failed > 0 {
		uc.logger.Warn("Failed: %d", summary.Failed)
	}
	uc.logger.Info("Metadata saved: %s", summary.MetadataFile)
	uc.logger.Info(line)
}

// LocalPath maps a storage path onto imagesDir: images/2025/03/x.jpg becomes
// <imagesDir>/2025/03/x.jpg. Paths leaving imagesDir are rejected.
func LocalPath(imagesDir, storagePath string) (string, error) {
	rel := strings.TrimPrefix(storagePath, storagePrefix)
	rel = filepath.Clean(filepath.FromSlash(rel))

	if rel == "." || filepath.IsAbs(rel) || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("LocalPath - %q: %w", storagePath, errs.ErrInvalidStoragePath)
	}

	return filepath.Join(imagesDir, rel), nil
}
