package persistent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/andreyxaxa/Photo-Gallery/internal/entity"
	"github.com/andreyxaxa/Photo-Gallery/pkg/postgres"
	"github.com/andreyxaxa/Photo-Gallery/pkg/types/errs"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	// Table
	imagesTable = "image_metadata"

	// Columns
	idColumn           = "id"
	filenameColumn     = "filename"
	originalNameColumn = "original_name"
	storagePathColumn  = "storage_path"
	publicURLColumn    = "public_url"
	sizeColumn         = "size"
	mimeTypeColumn     = "mime_type"
	createdAtColumn    = "created_at"
)

var imageColumns = []string{
	idColumn,
	filenameColumn,
	originalNameColumn,
	storagePathColumn,
	publicURLColumn,
	sizeColumn,
	mimeTypeColumn,
	createdAtColumn,
}

type ImageMetadataRepo struct {
	*postgres.Postgres
}

func NewImageMetadataRepo(pg *postgres.Postgres) *ImageMetadataRepo {
	return &ImageMetadataRepo{pg}
}

// Create inserts the record; id and created_at are assigned by the store and
// written back into record.
func (r *ImageMetadataRepo) Create(ctx context.Context, record *entity.ImageRecord) error {
	sql, args, err := r.Builder.
		Insert(imagesTable).
		Columns(
			filenameColumn,
			originalNameColumn,
			storagePathColumn,
			publicURLColumn,
			sizeColumn,
			mimeTypeColumn,
		).
		Values(
			record.Filename,
			record.OriginalName,
			record.StoragePath,
			record.PublicURL,
			record.Size,
			record.MimeType,
		).
		Suffix("RETURNING " + idColumn + ", " + createdAtColumn).
		ToSql()
	if err != nil {
		return fmt.Errorf("ImageMetadataRepo - Create - r.Builder.ToSql: %w", err)
	}

	err = r.Pool.QueryRow(ctx, sql, args...).Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		return fmt.Errorf("ImageMetadataRepo - Create - r.Pool.QueryRow: %w", err)
	}

	return nil
}

func (r *ImageMetadataRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.ImageRecord, error) {
	sql, args, err := r.Builder.
		Select(imageColumns...).
		From(imagesTable).
		Where(squirrel.Eq{idColumn: id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("ImageMetadataRepo - GetByID - r.Builder.ToSql: %w", err)
	}

	image, err := scanImage(r.Pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("ImageMetadataRepo - GetByID: %w", errs.ErrRecordNotFound)
		}
		return nil, fmt.Errorf("ImageMetadataRepo - GetByID - r.Pool.QueryRow: %w", err)
	}

	return image, nil
}

func (r *ImageMetadataRepo) ListAll(ctx context.Context) ([]entity.ImageRecord, error) {
	sql, args, err := r.listQuery(time.Time{}, time.Time{}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("ImageMetadataRepo - ListAll - r.Builder.ToSql: %w", err)
	}

	images, err := r.query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("ImageMetadataRepo - ListAll: %w", err)
	}

	return images, nil
}

// ListBetween returns records with from <= created_at < to, newest first.
func (r *ImageMetadataRepo) ListBetween(ctx context.Context, from, to time.Time) ([]entity.ImageRecord, error) {
	sql, args, err := r.listQuery(from, to).ToSql()
	if err != nil {
		return nil, fmt.Errorf("ImageMetadataRepo - ListBetween - r.Builder.ToSql: %w", err)
	}

	images, err := r.query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("ImageMetadataRepo - ListBetween: %w", err)
	}

	return images, nil
}

func (r *ImageMetadataRepo) ListCreatedAt(ctx context.Context) ([]time.Time, error) {
	sql, args, err := r.Builder.
		Select(createdAtColumn).
		From(imagesTable).
		OrderBy(createdAtColumn + " DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("ImageMetadataRepo - ListCreatedAt - r.Builder.ToSql: %w", err)
	}

	rows, err := r.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("ImageMetadataRepo - ListCreatedAt - r.Pool.Query: %w", err)
	}

	times, err := pgx.CollectRows(rows, pgx.RowTo[time.Time])
	if err != nil {
		return nil, fmt.Errorf("ImageMetadataRepo - ListCreatedAt - pgx.CollectRows: %w", err)
	}

	return times, nil
}

func (r *ImageMetadataRepo) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := r.Builder.
		Delete(imagesTable).
		Where(squirrel.Eq{idColumn: id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("ImageMetadataRepo - Delete - r.Builder.ToSql: %w", err)
	}

	tag, err := r.Pool.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("ImageMetadataRepo - Delete - r.Pool.Exec: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("ImageMetadataRepo - Delete: %w", errs.ErrRecordNotFound)
	}

	return nil
}

// listQuery selects every record, newest first; a non-zero window narrows it
// to [from, to).
func (r *ImageMetadataRepo) listQuery(from, to time.Time) squirrel.SelectBuilder {
	q := r.Builder.
		Select(imageColumns...).
		From(imagesTable)

	if !from.IsZero() {
		q = q.Where(squirrel.GtOrEq{createdAtColumn: from})
	}
	if !to.IsZero() {
		q = q.Where(squirrel.Lt{createdAtColumn: to})
	}

	return q.OrderBy(createdAtColumn + " DESC")
}

func (r *ImageMetadataRepo) query(ctx context.Context, sql string, args ...any) ([]entity.ImageRecord, error) {
	rows, err := r.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("r.Pool.Query: %w", err)
	}
	defer rows.Close()

	images := make([]entity.ImageRecord, 0)
	for rows.Next() {
		image, err := scanImage(rows)
		if err != nil {
			return nil, fmt.Errorf("rows.Scan: %w", err)
		}
		images = append(images, *image)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}

	return images, nil
}

func scanImage(row pgx.Row) (*entity.ImageRecord, error) {
	var image entity.ImageRecord

	err := row.Scan(
		&image.ID,
		&image.Filename,
		&image.OriginalName,
		&image.StoragePath,
		&image.PublicURL,
		&image.Size,
		&image.MimeType,
		&image.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &image, nil
}
