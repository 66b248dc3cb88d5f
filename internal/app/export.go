package app

import (
	"context"
	"fmt"

	"github.com/andreyxaxa/Photo-Gallery/config"
	"github.com/andreyxaxa/Photo-Gallery/internal/dto"
	"github.com/andreyxaxa/Photo-Gallery/internal/repo/persistent"
	"github.com/andreyxaxa/Photo-Gallery/internal/usecase"
	"github.com/andreyxaxa/Photo-Gallery/internal/usecase/export"
	"github.com/andreyxaxa/Photo-Gallery/pkg/logger"
	"github.com/andreyxaxa/Photo-Gallery/pkg/postgres"
	"github.com/andreyxaxa/Photo-Gallery/pkg/s3client"
)

// RunExport connects to both backends and copies every image with its
// metadata into cfg.Export.Dir. The object store is not probed up front:
// an unreachable store shows up as per-image failures in the summary, not
// as an error.
func RunExport(ctx context.Context, cfg *config.ExportConfig, l logger.Interface) (*dto.ExportSummary, error) {
	s3Ctx, s3Cancel := context.WithTimeout(ctx, cfg.S3.CfgLoadTimeout)
	defer s3Cancel()
	s3c, err := s3client.New(s3Ctx, cfg.S3.Endpoint, cfg.S3.AccessKey, cfg.S3.SecretKey, cfg.S3.Bucket,
		s3client.Region(cfg.S3.Region),
		s3client.SkipBucketCheck(),
	)
	if err != nil {
		return nil, fmt.Errorf("app - RunExport - s3client.New: %w", err)
	}

	pg, err := postgres.New(cfg.PG.URL, postgres.MaxPoolSize(cfg.PG.PoolMax))
	if err != nil {
		return nil, fmt.Errorf("app - RunExport - postgres.New: %w", err)
	}
	defer pg.Close()

	var exportUseCase usecase.ExportUseCase = export.New(
		persistent.NewImageMetadataRepo(pg),
		persistent.NewObjectRepo(s3c, cfg.S3.Bucket, cfg.S3.Endpoint, cfg.S3.PublicURL),
		cfg.Export.Dir,
		l,
	)

	summary, err := exportUseCase.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("app - RunExport - exportUseCase.Run: %w", err)
	}

	return summary, nil
}
